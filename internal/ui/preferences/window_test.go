package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestSaveRejectsInvalidDeadline(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	saved := 0
	prefs := New(app, DefaultSettings(), func(Settings) { saved++ })
	prefs.deadline.SetText("tomorrow-ish")
	prefs.handleSave()

	if saved != 0 {
		t.Fatal("invalid deadline was saved")
	}
	if prefs.status.Hidden || prefs.status.Text == "" {
		t.Error("expected an error message for the invalid deadline")
	}
	if prefs.Settings().Deadline != DefaultDeadline {
		t.Errorf("stored deadline changed to %q", prefs.Settings().Deadline)
	}
}

func TestSaveCollectsForm(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var got Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) { got = settings })
	prefs.deadline.SetText(" 2026-01-10 09:30 ")
	prefs.timezone.SetText("UTC")
	prefs.phrases.SetText("Ship it.\n\n  Again.  \n")
	prefs.sound.SetChecked(false)
	prefs.fullscreen.SetChecked(true)
	prefs.particles.SetValue(1200)
	prefs.handleSave()

	if got.Deadline != "2026-01-10 09:30" || got.Timezone != "UTC" {
		t.Errorf("deadline/timezone = %q/%q", got.Deadline, got.Timezone)
	}
	if len(got.Phrases) != 2 || got.Phrases[0] != "Ship it." || got.Phrases[1] != "Again." {
		t.Errorf("Phrases = %q", got.Phrases)
	}
	if got.SoundEnabled || !got.Fullscreen || got.Particles != 1200 {
		t.Errorf("flags = sound %v fullscreen %v particles %d", got.SoundEnabled, got.Fullscreen, got.Particles)
	}
	if !prefs.status.Hidden {
		t.Error("status should stay hidden after a valid save")
	}
}
