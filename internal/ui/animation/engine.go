package animation

import (
	"context"
	"sync"
	"time"

	"hackpulse/internal/core/model"
)

// Engine runs one timed sequence at a time. Starting a new sequence cancels
// the previous one.
type Engine struct {
	mu     sync.Mutex
	config model.EntranceConfig
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a new animation engine.
func New(config model.EntranceConfig) *Engine {
	defaults := DefaultConfig()
	if config.LogoHold < 0 {
		config.LogoHold = defaults.LogoHold
	}
	if config.TypingDelay < 0 {
		config.TypingDelay = defaults.TypingDelay
	}
	if config.CursorBlink <= 0 {
		config.CursorBlink = defaults.CursorBlink
	}
	return &Engine{config: config}
}

// StartEntrance reveals the main content after the logo hold, then arms
// typing after the typing delay.
func (engine *Engine) StartEntrance(ctx context.Context, spec EntranceSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		if !sleepWithContext(runCtx, engine.config.LogoHold) {
			return
		}
		if spec.OnMainContent != nil {
			spec.OnMainContent()
		}
		if !sleepWithContext(runCtx, engine.config.TypingDelay) {
			return
		}
		if spec.OnArm != nil {
			spec.OnArm()
		}
	})
}

// StartBlink toggles the cursor until the context is cancelled.
func (engine *Engine) StartBlink(ctx context.Context, spec BlinkSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		visible := true
		for {
			if spec.OnToggle != nil {
				spec.OnToggle(visible)
			}
			if !sleepWithContext(runCtx, engine.config.CursorBlink) {
				return
			}
			visible = !visible
		}
	})
}

// Stop terminates any active sequence and waits for it to return.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel, done := engine.cancel, engine.done
	engine.cancel = nil
	engine.done = nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.Stop()

	engine.mu.Lock()
	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		run(runCtx)
	}()
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
