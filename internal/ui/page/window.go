package page

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"hackpulse/internal/core/countdown"
	"hackpulse/internal/core/model"
	"hackpulse/internal/core/particles"
	"hackpulse/internal/core/sections"
	"hackpulse/internal/core/typewriter"
	"hackpulse/internal/ui/animation"
	"hackpulse/internal/ui/backdrop"
)

const (
	defaultWidth  = float32(1100)
	defaultHeight = float32(760)
	completedText = "The hackathon has begun. Good luck, builders!"
)

// Config defines page visuals.
type Config struct {
	Fullscreen bool
	Entrance   model.EntranceConfig
}

// Engines are the per-session engines driving the page. Countdown is nil
// when the deadline was rejected; CountdownErr then says why.
type Engines struct {
	Countdown    *countdown.Engine
	CountdownErr error
	Typewriter   *typewriter.Engine
	Renderer     *particles.Renderer
}

// Window manages the page UI. Its methods must be called on the fyne thread.
type Window struct {
	app      fyne.App
	window   fyne.Window
	config   Config
	content  model.Content
	backdrop *backdrop.Backdrop
	hero     *heroBanner
	notice   *fyne.Container
	message  *canvas.Text
	scroll   *container.Scroll
	sections []section
	nav      map[string]*widget.Button
	tracker  *sections.Tracker
	entrance *animation.Engine
	blink    *animation.Engine

	engines   Engines
	running   bool
	session   uint64
	complete  bool
	announced time.Time
	dismissed bool

	onCountdown func(countdown.Snapshot)
	onCompleted func()
	onHidden    func()
	onBanner    func(visible bool)
}

// New creates the page window.
func New(app fyne.App, content model.Content, logo fyne.Resource, config Config) *Window {
	window := app.NewWindow(content.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	page := &Window{
		app:      app,
		window:   window,
		config:   config,
		content:  content,
		backdrop: backdrop.New(),
		nav:      map[string]*widget.Button{},
		tracker:  sections.NewTracker(SectionHome),
		entrance: animation.New(config.Entrance),
		blink:    animation.New(config.Entrance),
	}

	page.hero = newHero(content, logo, page.openRegistration)
	page.sections = append([]section{{id: SectionHome, object: page.hero.root}}, buildSections(content, page.ScrollTo, page.openLink)...)

	body := make([]fyne.CanvasObject, 0, len(page.sections))
	for _, item := range page.sections {
		body = append(body, container.NewPadded(item.object))
	}
	page.scroll = container.NewVScroll(container.NewVBox(body...))
	page.scroll.OnScrolled = func(offset fyne.Position) {
		page.trackScroll(offset.Y)
	}

	window.SetContent(container.NewStack(
		page.backdrop,
		container.NewBorder(container.NewVBox(page.navBar(), page.completionBanner()), nil, nil, nil, page.scroll),
	))
	window.SetCloseIntercept(page.Hide)
	page.highlight(SectionHome)

	return page
}

// SetOnCountdown sets a handler called on every countdown update.
func (page *Window) SetOnCountdown(handler func(countdown.Snapshot)) {
	page.onCountdown = handler
}

// SetOnCompleted sets a handler called once when the countdown completes.
func (page *Window) SetOnCompleted(handler func()) {
	page.onCompleted = handler
}

// SetOnBanner sets a handler called when the banner is shown or hidden.
func (page *Window) SetOnBanner(handler func(visible bool)) {
	page.onBanner = handler
}

// SetOnHidden sets a handler called after the window is hidden.
func (page *Window) SetOnHidden(handler func()) {
	page.onHidden = handler
}

// UpdateConfig applies window mode changes.
func (page *Window) UpdateConfig(config Config) {
	page.config = config
	page.applyWindowMode()
}

// Running reports whether a session is active.
func (page *Window) Running() bool {
	return page.running
}

// Start begins a session: mounts the backdrop, starts the countdown and
// plays the entrance before arming the typewriter. A running session is
// stopped first.
func (page *Window) Start(engines Engines) {
	page.Stop()
	page.session++
	session := page.session
	page.engines = engines
	page.running = true
	page.complete = false
	page.hero.reset()
	page.setBanner(false)

	if engines.Renderer != nil {
		if err := engines.Renderer.Mount(page.backdrop.Host()); err != nil {
			log.Printf("particle backdrop unavailable: %v", err)
		}
	}

	if engines.Countdown != nil {
		page.showSnapshot(engines.Countdown.Snapshot())
		events := engines.Countdown.Subscribe(4)
		go page.watchCountdown(session, events)
		engines.Countdown.Start()
	} else {
		page.showCountdownError(engines.CountdownErr)
	}

	typing := engines.Typewriter
	if typing != nil {
		typing.SetOnChange(func(snapshot typewriter.Snapshot) {
			fyne.Do(func() {
				if page.session == session {
					page.hero.setTagline(snapshot.Text)
				}
			})
		})
	}

	page.entrance.StartEntrance(context.Background(), animation.EntranceSpec{
		OnMainContent: func() {
			fyne.Do(func() {
				if page.session == session {
					page.hero.showContent()
				}
			})
			if typing != nil {
				typing.Reset()
			}
		},
		OnArm: func() {
			if typing != nil {
				typing.Arm()
			}
		},
	})
	page.blink.StartBlink(context.Background(), animation.BlinkSpec{
		OnToggle: func(visible bool) {
			fyne.Do(func() {
				if page.session == session {
					page.hero.setCursor(visible)
				}
			})
		},
	})
}

// Stop ends the session: cancels the entrance and cursor, stops both engines
// and unmounts the backdrop. It is safe to call repeatedly.
func (page *Window) Stop() {
	if !page.running {
		return
	}
	page.running = false
	page.session++

	page.entrance.Stop()
	page.blink.Stop()

	engines := page.engines
	page.engines = Engines{}
	if engines.Typewriter != nil {
		engines.Typewriter.Stop()
		engines.Typewriter.SetOnChange(nil)
	}
	if engines.Countdown != nil {
		engines.Countdown.Stop()
	}
	if engines.Renderer != nil {
		engines.Renderer.Unmount()
	}
}

// Show displays the window.
func (page *Window) Show() {
	page.applyWindowMode()
	page.window.Show()
	page.window.RequestFocus()
}

// Hide stops the session and hides the window.
func (page *Window) Hide() {
	page.Stop()
	page.window.Hide()
	if page.onHidden != nil {
		page.onHidden()
	}
}

// Close stops the session and releases the window.
func (page *Window) Close() {
	page.Stop()
	page.backdrop.Close()
	page.window.Close()
}

// Dismiss hides the completion banner. The countdown stays complete and
// later sessions counting to the same deadline keep the banner hidden.
func (page *Window) Dismiss() {
	if page.complete {
		page.dismissed = true
	}
	page.setBanner(false)
}

// ScrollTo brings section id to the top of the viewport.
func (page *Window) ScrollTo(id string) {
	page.measure()
	top, ok := page.tracker.Offset(id)
	if !ok {
		return
	}
	page.scroll.Offset = fyne.NewPos(0, top)
	page.scroll.Refresh()
	page.trackScroll(page.scroll.Offset.Y)
}

// ActiveSection returns the section currently in view.
func (page *Window) ActiveSection() string {
	return page.tracker.Active()
}

func (page *Window) watchCountdown(session uint64, events <-chan countdown.Event) {
	for event := range events {
		fyne.Do(func() {
			if page.session != session {
				return
			}
			page.showSnapshot(event.Snapshot)
			if event.Type == countdown.EventCompleted {
				page.showCompletion()
			}
		})
	}
}

func (page *Window) showSnapshot(snapshot countdown.Snapshot) {
	page.hero.setUnits(unitValues(snapshot.Remaining))
	if page.onCountdown != nil {
		page.onCountdown(snapshot)
	}
}

// showCompletion announces a deadline once per page; reopening the window
// for the same deadline only restores the banner unless it was dismissed.
func (page *Window) showCompletion() {
	if page.complete {
		return
	}
	page.complete = true

	var target time.Time
	if page.engines.Countdown != nil {
		target = page.engines.Countdown.Target()
	}
	fresh := page.announced.IsZero() || !target.Equal(page.announced)
	if fresh {
		page.announced = target
		page.dismissed = false
	}
	if !page.dismissed {
		page.message.Text = completedText
		page.message.Refresh()
		page.setBanner(true)
	}
	if fresh && page.onCompleted != nil {
		page.onCompleted()
	}
}

func (page *Window) showCountdownError(err error) {
	page.hero.setUnits([4]string{placeholderUnit, placeholderUnit, placeholderUnit, placeholderUnit})
	if err == nil {
		err = countdown.ErrInvalidTarget
	}
	page.message.Text = fmt.Sprintf("Countdown unavailable: %v", err)
	page.message.Refresh()
	page.setBanner(true)
}

func (page *Window) setBanner(visible bool) {
	if visible == page.notice.Visible() {
		return
	}
	if visible {
		page.notice.Show()
	} else {
		page.notice.Hide()
	}
	if page.onBanner != nil {
		page.onBanner(visible)
	}
}

func (page *Window) navBar() fyne.CanvasObject {
	buttons := make([]fyne.CanvasObject, 0, len(Navigation))
	for _, item := range Navigation {
		id := item.ID
		button := widget.NewButton(item.Label, func() { page.ScrollTo(id) })
		page.nav[id] = button
		buttons = append(buttons, button)
	}
	return container.NewHBox(append(append([]fyne.CanvasObject{layout.NewSpacer()}, buttons...), layout.NewSpacer())...)
}

func (page *Window) completionBanner() fyne.CanvasObject {
	page.message = canvas.NewText("", colorText)
	page.message.TextStyle = fyne.TextStyle{Bold: true}
	background := canvas.NewRectangle(colorBanner)
	dismiss := widget.NewButton("Dismiss", page.Dismiss)
	page.notice = container.NewStack(background, container.NewPadded(
		container.NewBorder(nil, nil, nil, dismiss, container.NewCenter(page.message)),
	))
	page.notice.Hide()
	return page.notice
}

func (page *Window) measure() {
	spans := make([]sections.Span, 0, len(page.sections))
	for _, item := range page.sections {
		// Sections are padded inside the scrolled VBox; the padding
		// container carries the position.
		holder := page.holderOf(item.object)
		spans = append(spans, sections.Span{
			ID:     item.id,
			Top:    holder.Position().Y,
			Height: holder.Size().Height,
		})
	}
	page.tracker.SetSpans(spans)
}

func (page *Window) holderOf(object fyne.CanvasObject) fyne.CanvasObject {
	body, ok := page.scroll.Content.(*fyne.Container)
	if !ok {
		return object
	}
	for _, holder := range body.Objects {
		padded, ok := holder.(*fyne.Container)
		if !ok {
			continue
		}
		for _, child := range padded.Objects {
			if child == object {
				return holder
			}
		}
	}
	return object
}

func (page *Window) trackScroll(offset float32) {
	page.measure()
	if active, changed := page.tracker.Update(offset, page.scroll.Size().Height); changed {
		page.highlight(active)
	}
}

func (page *Window) highlight(active string) {
	for id, button := range page.nav {
		importance := widget.LowImportance
		if id == active {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}
}

func (page *Window) openRegistration() {
	if page.content.RegisterURL == "" {
		return
	}
	page.openLink(page.content.RegisterURL)
}

func (page *Window) openLink(raw string) {
	target, err := url.Parse(raw)
	if err != nil {
		log.Printf("invalid link %q: %v", raw, err)
		return
	}
	if err := page.app.OpenURL(target); err != nil {
		log.Printf("open link %q: %v", raw, err)
	}
}

func (page *Window) applyWindowMode() {
	if page.config.Fullscreen {
		page.window.SetFullScreen(true)
		return
	}
	page.window.SetFullScreen(false)
	page.window.Resize(fyne.NewSize(defaultWidth, defaultHeight))
	page.window.CenterOnScreen()
}
