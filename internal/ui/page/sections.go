package page

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"hackpulse/internal/core/model"
)

// Section IDs in page order.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionDomains    = "domains"
	SectionTimeline   = "timeline"
	SectionGuidelines = "guidelines"
	SectionPrizes     = "prizes"
	SectionContact    = "contact"
)

// NavItem is a navigation entry.
type NavItem struct {
	ID    string
	Label string
}

// Navigation lists the sections reachable from the nav bar and tray.
var Navigation = []NavItem{
	{ID: SectionHome, Label: "Home"},
	{ID: SectionAbout, Label: "About"},
	{ID: SectionDomains, Label: "Domains"},
	{ID: SectionTimeline, Label: "Timeline"},
	{ID: SectionGuidelines, Label: "Guidelines"},
	{ID: SectionPrizes, Label: "Prizes"},
	{ID: SectionContact, Label: "Contact"},
}

type section struct {
	id     string
	object fyne.CanvasObject
}

func buildSections(content model.Content, jump func(id string), open func(link string)) []section {
	return []section{
		{id: SectionAbout, object: aboutSection(content.About)},
		{id: SectionDomains, object: domainsSection(content.Tracks, content.Domains)},
		{id: SectionTimeline, object: timelineSection(content.Schedule)},
		{id: SectionGuidelines, object: guidelinesSection(content.Guidelines)},
		{id: SectionPrizes, object: prizesSection(content.Prizes)},
		{id: SectionContact, object: footerSection(content.Footer, jump, open)},
	}
}

func heading(title string) fyne.CanvasObject {
	text := canvas.NewText(title, colorCyan)
	text.TextSize = 28
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter
	underline := canvas.NewRectangle(colorRed)
	underline.SetMinSize(fyne.NewSize(64, 3))
	return container.NewVBox(text, container.NewCenter(underline))
}

func paragraph(value string) *widget.Label {
	label := widget.NewLabel(value)
	label.Wrapping = fyne.TextWrapWord
	return label
}

func panel(objects ...fyne.CanvasObject) fyne.CanvasObject {
	background := canvas.NewRectangle(colorPanel)
	background.CornerRadius = 10
	background.StrokeColor = colorOutline
	background.StrokeWidth = 1
	return container.NewStack(background, container.NewPadded(container.NewVBox(objects...)))
}

func titled(title string, textColor color.Color) *canvas.Text {
	text := canvas.NewText(title, textColor)
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = 18
	return text
}

func aboutSection(about model.About) fyne.CanvasObject {
	items := []fyne.CanvasObject{heading("About AlgoForge")}
	for _, value := range about.Paragraphs {
		items = append(items, paragraph(value))
	}

	highlights := make([]fyne.CanvasObject, 0, len(about.Highlights))
	for _, highlight := range about.Highlights {
		highlights = append(highlights, panel(titled(highlight.Title, colorCyan), paragraph(highlight.Text)))
	}
	if len(highlights) > 0 {
		items = append(items, container.NewGridWithColumns(2, highlights...))
	}
	return container.NewVBox(items...)
}

func domainsSection(tracks []model.Track, domains []string) fyne.CanvasObject {
	trackPanels := make([]fyne.CanvasObject, 0, len(tracks))
	for _, track := range tracks {
		trackPanels = append(trackPanels, panel(titled(track.Name, colorRed), paragraph(track.Description)))
	}

	domainPanels := make([]fyne.CanvasObject, 0, len(domains))
	for _, domain := range domains {
		label := widget.NewLabelWithStyle(domain, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		domainPanels = append(domainPanels, panel(label))
	}

	return container.NewVBox(
		heading("Tracks"),
		container.NewGridWithColumns(maxColumns(len(trackPanels), 3), trackPanels...),
		heading("Domains"),
		container.NewGridWithColumns(maxColumns(len(domainPanels), 3), domainPanels...),
	)
}

func timelineSection(days []model.ScheduleDay) fyne.CanvasObject {
	items := []fyne.CanvasObject{heading("Timeline")}
	for _, day := range days {
		rows := []fyne.CanvasObject{titled(day.Label, colorRed)}
		for _, event := range day.Events {
			at := canvas.NewText(event.Time, colorCyan)
			at.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
			rows = append(rows, container.NewBorder(nil, nil, at, nil, paragraph(event.Title)))
		}
		items = append(items, panel(rows...))
	}
	return container.NewVBox(items...)
}

func guidelinesSection(guidelines model.Guidelines) fyne.CanvasObject {
	rules := make([]fyne.CanvasObject, 0, len(guidelines.Rules))
	for index, rule := range guidelines.Rules {
		number := canvas.NewText(fmt.Sprintf("%d.", index+1), colorCyan)
		number.TextStyle = fyne.TextStyle{Bold: true}
		rules = append(rules, container.NewBorder(nil, nil, number, nil, paragraph(rule)))
	}

	items := []fyne.CanvasObject{heading("Guidelines"), panel(rules...)}
	if guidelines.Notice != "" {
		notice := paragraph(guidelines.Notice)
		notice.Importance = widget.WarningImportance
		items = append(items, notice)
	}
	return container.NewVBox(items...)
}

func prizesSection(prizes model.Prizes) fyne.CanvasObject {
	pool := canvas.NewText(prizes.Pool, colorCyan)
	pool.TextSize = 40
	pool.TextStyle = fyne.TextStyle{Bold: true}
	pool.Alignment = fyne.TextAlignCenter
	note := widget.NewLabelWithStyle(prizes.Note, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	places := make([]fyne.CanvasObject, 0, len(prizes.Places))
	for _, place := range prizes.Places {
		amount := canvas.NewText(place.Amount, colorText)
		amount.TextSize = 24
		amount.TextStyle = fyne.TextStyle{Bold: true}
		amount.Alignment = fyne.TextAlignCenter
		name := widget.NewLabelWithStyle(place.Name, fyne.TextAlignCenter, fyne.TextStyle{})
		places = append(places, panel(amount, name))
	}

	return container.NewVBox(
		heading("Prizes"),
		panel(widget.NewLabelWithStyle("Total prize pool", fyne.TextAlignCenter, fyne.TextStyle{}), pool, note),
		container.NewGridWithColumns(maxColumns(len(places), 3), places...),
	)
}

func footerSection(footer model.Footer, jump func(id string), open func(link string)) fyne.CanvasObject {
	links := make([]fyne.CanvasObject, 0, len(footer.Links))
	for _, link := range footer.Links {
		var action func()
		if id, ok := anchorID(link.URL); ok {
			action = func() { jump(id) }
		} else if externalLink(link.URL) {
			target := link.URL
			action = func() { open(target) }
		} else {
			continue
		}
		button := widget.NewButton(link.Label, action)
		button.Importance = widget.LowImportance
		links = append(links, button)
	}

	contacts := make([]fyne.CanvasObject, 0, len(footer.Contacts))
	for _, contact := range footer.Contacts {
		contacts = append(contacts, widget.NewLabel(contact))
	}

	copyright := canvas.NewText(footer.Copyright, colorMuted)
	copyright.TextSize = 12
	copyright.Alignment = fyne.TextAlignCenter

	return container.NewVBox(
		heading("Contact"),
		container.NewCenter(container.NewHBox(links...)),
		panel(contacts...),
		layout.NewSpacer(),
		copyright,
	)
}

// anchorID maps an in-page link such as "#prizes" to a section ID.
func anchorID(target string) (string, bool) {
	if !strings.HasPrefix(target, "#") || len(target) == 1 {
		return "", false
	}
	id := strings.TrimPrefix(target, "#")
	for _, item := range Navigation {
		if item.ID == id {
			return id, true
		}
	}
	return "", false
}

func externalLink(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

func maxColumns(count, limit int) int {
	if count < 1 {
		return 1
	}
	if count > limit {
		return limit
	}
	return count
}
