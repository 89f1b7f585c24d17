package animation

import (
	"context"
	"sync"
	"testing"
	"time"

	"hackpulse/internal/core/model"
)

func TestEntranceOrder(t *testing.T) {
	engine := New(model.EntranceConfig{LogoHold: 5 * time.Millisecond, TypingDelay: 5 * time.Millisecond})
	var mu sync.Mutex
	var order []string
	armed := make(chan struct{})

	engine.StartEntrance(context.Background(), EntranceSpec{
		OnMainContent: func() {
			mu.Lock()
			order = append(order, "content")
			mu.Unlock()
		},
		OnArm: func() {
			mu.Lock()
			order = append(order, "arm")
			mu.Unlock()
			close(armed)
		},
	})

	select {
	case <-armed:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for arm")
	}
	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "content" || order[1] != "arm" {
		t.Errorf("order = %v, want [content arm]", order)
	}
}

func TestStopCancelsEntrance(t *testing.T) {
	engine := New(model.EntranceConfig{LogoHold: time.Hour, TypingDelay: time.Hour})
	fired := false
	engine.StartEntrance(context.Background(), EntranceSpec{
		OnMainContent: func() { fired = true },
	})
	engine.Stop()
	engine.Stop()
	if fired {
		t.Error("entrance callback fired after Stop")
	}
}

func TestRestartCancelsPrevious(t *testing.T) {
	engine := New(model.EntranceConfig{LogoHold: 30 * time.Millisecond, TypingDelay: time.Hour})
	var mu sync.Mutex
	firstFired := false
	engine.StartEntrance(context.Background(), EntranceSpec{
		OnMainContent: func() {
			mu.Lock()
			firstFired = true
			mu.Unlock()
		},
	})

	done := make(chan struct{})
	engine.StartEntrance(context.Background(), EntranceSpec{
		OnMainContent: func() { close(done) },
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("restarted entrance never fired")
	}
	time.Sleep(50 * time.Millisecond)
	engine.Stop()

	mu.Lock()
	defer mu.Unlock()
	if firstFired {
		t.Error("first sequence survived the restart")
	}
}

func TestBlinkToggles(t *testing.T) {
	engine := New(model.EntranceConfig{CursorBlink: time.Millisecond})
	values := make(chan bool, 16)
	engine.StartBlink(context.Background(), BlinkSpec{
		OnToggle: func(visible bool) {
			select {
			case values <- visible:
			default:
			}
		},
	})

	first := <-values
	second := <-values
	engine.Stop()
	if !first || second {
		t.Errorf("blink sequence = %v, %v; want true, false", first, second)
	}
}
