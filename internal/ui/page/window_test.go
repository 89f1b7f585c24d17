package page

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"hackpulse/internal/core/countdown"
	"hackpulse/internal/core/model"
	"hackpulse/internal/core/particles"
	"hackpulse/internal/core/typewriter"
)

type fixedClock struct {
	now time.Time
}

func (clock fixedClock) Now() (time.Time, error) {
	return clock.now, nil
}

func testContent() model.Content {
	return model.Content{
		Title:    "AlgoForge",
		Subtitle: "test",
		About:    model.About{Paragraphs: []string{"about"}},
		Tracks:   []model.Track{{Name: "SaaS", Description: "tools"}},
		Domains:  []string{"AI & ML"},
		Schedule: []model.ScheduleDay{{Label: "DAY 1", Events: []model.ScheduleEvent{{Time: "13:00", Title: "Kickoff"}}}},
		Guidelines: model.Guidelines{
			Rules:  []string{"be kind"},
			Notice: "or else",
		},
		Prizes: model.Prizes{Pool: "₹50,000", Places: []model.Place{{Name: "Winner", Amount: "₹25,000"}}},
		Footer: model.Footer{
			Links:     []model.Link{{Label: "Prizes", URL: "#prizes"}},
			Copyright: "© AlgoForge",
		},
	}
}

func newTestPage(t *testing.T) *Window {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	// The countdown digits use bold monospace, which only the default theme ships.
	app.Settings().SetTheme(theme.DefaultTheme())
	page := New(app, testContent(), nil, Config{
		Entrance: model.EntranceConfig{LogoHold: 0, TypingDelay: 0, CursorBlink: 10 * time.Millisecond},
	})
	t.Cleanup(page.Stop)
	return page
}

func TestNewHighlightsHome(t *testing.T) {
	page := newTestPage(t)
	if page.ActiveSection() != SectionHome {
		t.Errorf("ActiveSection() = %q", page.ActiveSection())
	}
	if page.nav[SectionHome].Importance != widget.HighImportance {
		t.Error("home nav button not highlighted")
	}
	if page.nav[SectionPrizes].Importance != widget.LowImportance {
		t.Error("prizes nav button highlighted")
	}
	if len(page.sections) != len(Navigation) {
		t.Errorf("built %d sections for %d nav items", len(page.sections), len(Navigation))
	}
}

func TestStartAndStopMountBackdrop(t *testing.T) {
	page := newTestPage(t)
	renderer := particles.New(model.ParticleConfig{Stars: 20, CircuitLines: 2, Seed: 1}, nil)
	page.Start(Engines{Renderer: renderer, CountdownErr: countdown.ErrInvalidTarget})

	if !renderer.Mounted() {
		t.Fatal("backdrop not mounted on start")
	}
	if page.notice.Hidden || !strings.Contains(page.message.Text, "Countdown unavailable") {
		t.Errorf("expected the countdown error banner, got hidden=%v %q", page.notice.Hidden, page.message.Text)
	}
	if page.hero.units[0].Text != placeholderUnit {
		t.Errorf("days = %q, want placeholder", page.hero.units[0].Text)
	}

	page.Stop()
	if renderer.Mounted() {
		t.Error("backdrop still mounted after stop")
	}
	if page.backdrop.Listeners() != 0 {
		t.Errorf("listeners after stop = %d", page.backdrop.Listeners())
	}
	page.Stop()
	if page.Running() {
		t.Error("page reports running after stop")
	}
}

func TestStartShowsInitialSnapshot(t *testing.T) {
	page := newTestPage(t)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	target := now.Add(26*time.Hour + 3*time.Minute + 4*time.Second)
	engine, err := countdown.New(target, countdown.Config{TickInterval: time.Hour, Clock: fixedClock{now: now}})
	if err != nil {
		t.Fatalf("countdown.New() error = %v", err)
	}

	var status string
	page.SetOnCountdown(func(snapshot countdown.Snapshot) { status = StatusText(snapshot) })
	page.Start(Engines{Countdown: engine})

	got := [4]string{}
	for i, unit := range page.hero.units {
		got[i] = unit.Text
	}
	if got != [4]string{"01", "02", "03", "04"} {
		t.Errorf("units = %v", got)
	}
	if status != "Starts in 1d 02h 03m" {
		t.Errorf("status = %q", status)
	}
	if !page.notice.Hidden {
		t.Error("banner shown before completion")
	}

	page.Stop()
	if engine.Running() {
		t.Error("countdown still running after stop")
	}
}

func TestCompletionBannerFiresOnceAndDismisses(t *testing.T) {
	page := newTestPage(t)
	now := time.Date(2025, time.March, 21, 13, 0, 1, 0, time.UTC)
	engine, err := countdown.New(now.Add(-time.Second), countdown.Config{
		TickInterval: 5 * time.Millisecond,
		Clock:        fixedClock{now: now},
	})
	if err != nil {
		t.Fatalf("countdown.New() error = %v", err)
	}

	completed := make(chan struct{}, 4)
	page.SetOnCompleted(func() { completed <- struct{}{} })
	page.Start(Engines{Countdown: engine})

	select {
	case <-completed:
	case <-time.After(2 * time.Second):
		t.Fatal("completion never reported")
	}
	page.showCompletion()
	select {
	case <-completed:
		t.Fatal("completion reported twice")
	case <-time.After(30 * time.Millisecond):
	}

	if page.notice.Hidden || page.message.Text != completedText {
		t.Errorf("banner hidden=%v text=%q", page.notice.Hidden, page.message.Text)
	}
	page.Dismiss()
	if !page.notice.Hidden {
		t.Error("banner still visible after Dismiss")
	}
	if !engine.Snapshot().Complete {
		t.Error("dismissing changed the countdown")
	}
}

func TestEntranceArmsTypewriter(t *testing.T) {
	page := newTestPage(t)
	typing := typewriter.New(model.TypewriterConfig{Phrases: []string{"Code."}}, nil)
	page.Start(Engines{Typewriter: typing, CountdownErr: errors.New("unset")})

	deadline := time.Now().Add(2 * time.Second)
	for !typing.Snapshot().Armed {
		if time.Now().After(deadline) {
			t.Fatal("typewriter never armed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	page.Stop()
	if typing.Snapshot().Armed {
		t.Error("typewriter still armed after stop")
	}
}

func TestScrollToUnknownSection(t *testing.T) {
	page := newTestPage(t)
	page.ScrollTo("nowhere")
	if page.ActiveSection() != SectionHome {
		t.Errorf("ActiveSection() = %q", page.ActiveSection())
	}
}

func idleCountdown(t *testing.T, target, now time.Time) *countdown.Engine {
	t.Helper()
	engine, err := countdown.New(target, countdown.Config{TickInterval: time.Hour, Clock: fixedClock{now: now}})
	if err != nil {
		t.Fatalf("countdown.New() error = %v", err)
	}
	return engine
}

func TestDismissedCompletionStaysDismissedAcrossSessions(t *testing.T) {
	page := newTestPage(t)
	now := time.Date(2025, time.March, 21, 14, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Hour)

	completions := 0
	page.SetOnCompleted(func() { completions++ })

	page.Start(Engines{Countdown: idleCountdown(t, deadline, now)})
	page.showCompletion()
	if completions != 1 || page.notice.Hidden {
		t.Fatalf("first session: completions=%d hidden=%v", completions, page.notice.Hidden)
	}
	page.Dismiss()
	page.Stop()

	page.Start(Engines{Countdown: idleCountdown(t, deadline, now)})
	page.showCompletion()
	if completions != 1 {
		t.Errorf("reopening announced the same deadline again: completions=%d", completions)
	}
	if !page.notice.Hidden {
		t.Error("dismissed banner came back on reopen")
	}
	page.Stop()

	page.Start(Engines{Countdown: idleCountdown(t, deadline.Add(-time.Minute), now)})
	page.showCompletion()
	if completions != 2 || page.notice.Hidden {
		t.Errorf("new deadline: completions=%d hidden=%v", completions, page.notice.Hidden)
	}
}

func TestUndismissedBannerReturnsWithoutReannouncing(t *testing.T) {
	page := newTestPage(t)
	now := time.Date(2025, time.March, 21, 14, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Hour)

	completions := 0
	page.SetOnCompleted(func() { completions++ })

	page.Start(Engines{Countdown: idleCountdown(t, deadline, now)})
	page.showCompletion()
	page.Stop()

	page.Start(Engines{Countdown: idleCountdown(t, deadline, now)})
	if !page.notice.Hidden {
		t.Error("banner visible before the new session completed")
	}
	page.showCompletion()
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
	if page.notice.Hidden || page.message.Text != completedText {
		t.Errorf("banner hidden=%v text=%q", page.notice.Hidden, page.message.Text)
	}
}

func findButton(object fyne.CanvasObject, label string) *widget.Button {
	switch item := object.(type) {
	case *widget.Button:
		if item.Text == label {
			return item
		}
	case *fyne.Container:
		for _, child := range item.Objects {
			if button := findButton(child, label); button != nil {
				return button
			}
		}
	case *container.Scroll:
		return findButton(item.Content, label)
	}
	return nil
}

func TestFooterLinks(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	footer := model.Footer{Links: []model.Link{
		{Label: "Prizes", URL: "#prizes"},
		{Label: "GitHub", URL: "https://github.com/IEEE-KJSIEIT"},
		{Label: "Mail", URL: "mailto:team@example.org"},
		{Label: "Missing", URL: "#nowhere"},
	}}

	var jumped, opened []string
	section := footerSection(footer,
		func(id string) { jumped = append(jumped, id) },
		func(link string) { opened = append(opened, link) },
	)

	if button := findButton(section, "Mail"); button != nil {
		t.Error("unsupported link rendered")
	}
	if button := findButton(section, "Missing"); button != nil {
		t.Error("unknown anchor rendered")
	}

	prizes := findButton(section, "Prizes")
	github := findButton(section, "GitHub")
	if prizes == nil || github == nil {
		t.Fatalf("missing footer buttons: prizes=%v github=%v", prizes != nil, github != nil)
	}
	test.Tap(prizes)
	test.Tap(github)

	if len(jumped) != 1 || jumped[0] != SectionPrizes {
		t.Errorf("jumped = %v", jumped)
	}
	if len(opened) != 1 || opened[0] != "https://github.com/IEEE-KJSIEIT" {
		t.Errorf("opened = %v", opened)
	}
}
