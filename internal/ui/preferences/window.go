package preferences

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	maxParticles  = 5000
	particlesStep = 100
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	deadline   *widget.Entry
	timezone   *widget.Entry
	phrases    *widget.Entry
	sound      *widget.Check
	fullscreen *widget.Check
	particles  *widget.Slider
	count      *widget.Label
	status     *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("AlgoForge Settings")

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		deadline:   widget.NewEntry(),
		timezone:   widget.NewEntry(),
		phrases:    widget.NewMultiLineEntry(),
		sound:      widget.NewCheck("Play a chime when the countdown ends", nil),
		fullscreen: widget.NewCheck("Start fullscreen", nil),
		particles:  widget.NewSlider(0, maxParticles),
		count:      widget.NewLabel(""),
		status:     widget.NewLabel(""),
	}
	prefs.deadline.SetPlaceHolder(DefaultDeadline)
	prefs.timezone.SetPlaceHolder("Local")
	prefs.phrases.SetMinRowsVisible(4)
	prefs.particles.Step = particlesStep
	prefs.particles.OnChanged = func(value float64) {
		prefs.count.SetText(fmt.Sprintf("%d stars", int(value)))
	}
	prefs.status.Wrapping = fyne.TextWrapWord
	prefs.status.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Countdown", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Deadline", prefs.deadline),
			widget.NewFormItem("Timezone", prefs.timezone),
		),
		widget.NewLabelWithStyle("Tagline phrases, one per line", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.phrases,
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		prefs.fullscreen,
		container.NewBorder(nil, nil, widget.NewLabel("Backdrop"), prefs.count, prefs.particles),
		prefs.status,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 480))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.deadline.SetText(settings.Deadline)
	prefs.timezone.SetText(settings.Timezone)
	prefs.phrases.SetText(strings.Join(settings.Phrases, "\n"))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.particles.SetValue(float64(settings.Particles))
	prefs.count.SetText(fmt.Sprintf("%d stars", settings.Particles))
	prefs.status.Hide()
}

// Settings returns the last saved values.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// handleSave validates the form. An invalid deadline keeps the window open
// and reports the problem instead of saving.
func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.Deadline = strings.TrimSpace(prefs.deadline.Text)
	settings.Timezone = strings.TrimSpace(prefs.timezone.Text)
	settings.Phrases = splitPhrases(prefs.phrases.Text)
	settings.SoundEnabled = prefs.sound.Checked
	settings.Fullscreen = prefs.fullscreen.Checked
	settings.Particles = int(prefs.particles.Value)

	if _, err := settings.CountdownConfig(); err != nil {
		prefs.status.SetText(err.Error())
		prefs.status.Show()
		return
	}
	prefs.status.Hide()

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func splitPhrases(text string) []string {
	var phrases []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			phrases = append(phrases, trimmed)
		}
	}
	return phrases
}
