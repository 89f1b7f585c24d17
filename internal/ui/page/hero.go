package page

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hackpulse/internal/core/model"
)

// heroBanner is the banner at the top of the page: the logo, revealed content and
// the countdown.
type heroBanner struct {
	root     fyne.CanvasObject
	reveal   *fyne.Container
	tagline  *canvas.Text
	cursor   *canvas.Text
	units    [4]*canvas.Text
	register *widget.Button
}

func newHero(content model.Content, logo fyne.Resource, onRegister func()) *heroBanner {
	banner := &heroBanner{}

	image := canvas.NewImageFromResource(logo)
	image.FillMode = canvas.ImageFillContain
	image.SetMinSize(fyne.NewSize(112, 112))

	title := canvas.NewText(content.Title, colorText)
	title.TextSize = 56
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := canvas.NewText(content.Subtitle, colorMuted)
	subtitle.TextSize = 14
	subtitle.Alignment = fyne.TextAlignCenter

	banner.tagline = canvas.NewText("", colorCyan)
	banner.tagline.TextSize = 24
	banner.tagline.TextStyle = fyne.TextStyle{Monospace: true}
	banner.cursor = canvas.NewText("|", colorCyan)
	banner.cursor.TextSize = 24
	banner.cursor.TextStyle = fyne.TextStyle{Monospace: true}
	banner.cursor.Hide()

	boxes := make([]fyne.CanvasObject, 0, len(banner.units))
	for i := range banner.units {
		banner.units[i] = canvas.NewText(placeholderUnit, colorText)
		banner.units[i].TextSize = 40
		banner.units[i].TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
		banner.units[i].Alignment = fyne.TextAlignCenter
		boxes = append(boxes, countdownBox(banner.units[i], unitLabels[i]))
	}

	banner.register = widget.NewButton("Register your team", onRegister)
	banner.register.Importance = widget.HighImportance

	banner.reveal = container.NewVBox(
		subtitle,
		title,
		container.NewCenter(container.NewHBox(banner.tagline, banner.cursor)),
		container.NewCenter(container.NewGridWithColumns(len(boxes), boxes...)),
		container.NewCenter(banner.register),
	)
	banner.reveal.Hide()

	banner.root = container.NewPadded(container.NewVBox(container.NewCenter(image), banner.reveal))
	return banner
}

func countdownBox(value *canvas.Text, label string) fyne.CanvasObject {
	caption := canvas.NewText(label, colorMuted)
	caption.TextSize = 12
	caption.Alignment = fyne.TextAlignCenter

	background := canvas.NewRectangle(colorPanel)
	background.CornerRadius = 8
	background.StrokeColor = colorOutline
	background.StrokeWidth = 1
	background.SetMinSize(fyne.NewSize(110, 96))

	return container.NewStack(background, container.NewCenter(container.NewVBox(value, caption)))
}

func (banner *heroBanner) setUnits(values [4]string) {
	for i, value := range values {
		if banner.units[i].Text == value {
			continue
		}
		banner.units[i].Text = value
		banner.units[i].Refresh()
	}
}

func (banner *heroBanner) setTagline(text string) {
	banner.tagline.Text = text
	banner.tagline.Refresh()
}

func (banner *heroBanner) setCursor(visible bool) {
	if visible {
		banner.cursor.Show()
		return
	}
	banner.cursor.Hide()
}

func (banner *heroBanner) showContent() {
	banner.reveal.Show()
}

func (banner *heroBanner) reset() {
	banner.reveal.Hide()
	banner.setCursor(false)
	banner.setTagline("")
	banner.setUnits([4]string{placeholderUnit, placeholderUnit, placeholderUnit, placeholderUnit})
}
