package typewriter

import (
	"sync"
	"time"

	"hackpulse/internal/core/model"
)

// Snapshot is what the presentation layer reads from the engine.
type Snapshot struct {
	Text        string
	PhraseIndex int
	Mode        Mode
	Delay       time.Duration
	Armed       bool
}

// Engine drives a Machine from a single pending scheduled callback.
type Engine struct {
	mu         sync.Mutex
	machine    Machine
	scheduler  Scheduler
	state      State
	armed      bool
	generation uint64
	pending    Timer
	onChange   func(Snapshot)
}

// New creates an idle engine. Nothing is scheduled until Arm is called.
func New(config model.TypewriterConfig, scheduler Scheduler) *Engine {
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	machine := NewMachine(config)
	return &Engine{
		machine:   machine,
		scheduler: scheduler,
		state:     machine.Initial(),
	}
}

// SetOnChange sets an observer called after every tick and reset.
func (engine *Engine) SetOnChange(handler func(Snapshot)) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.onChange = handler
}

// Arm opens the gate and starts the cycle if it is not already running.
func (engine *Engine) Arm() {
	engine.mu.Lock()
	engine.armed = true
	if engine.pending == nil {
		engine.scheduleLocked()
	}
	snapshot, handler := engine.snapshotLocked(), engine.onChange
	engine.mu.Unlock()

	if handler != nil {
		handler(snapshot)
	}
}

// Reset cancels any pending tick and returns to the first phrase. An armed
// engine restarts with exactly one freshly scheduled tick.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.cancelLocked()
	engine.state = engine.machine.Initial()
	if engine.armed {
		engine.scheduleLocked()
	}
	snapshot, handler := engine.snapshotLocked(), engine.onChange
	engine.mu.Unlock()

	if handler != nil {
		handler(snapshot)
	}
}

// Stop cancels the pending tick and closes the gate.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.cancelLocked()
	engine.armed = false
}

// Snapshot returns the current display state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

func (engine *Engine) tick(generation uint64) {
	engine.mu.Lock()
	if generation != engine.generation || !engine.armed {
		// Stale callback from before a reset or stop.
		engine.mu.Unlock()
		return
	}
	engine.pending = nil
	engine.state = engine.machine.Step(engine.state)
	engine.scheduleLocked()
	snapshot, handler := engine.snapshotLocked(), engine.onChange
	engine.mu.Unlock()

	if handler != nil {
		handler(snapshot)
	}
}

func (engine *Engine) scheduleLocked() {
	if engine.machine.Len() == 0 {
		return
	}
	generation := engine.generation
	engine.pending = engine.scheduler.AfterFunc(engine.state.Delay, func() {
		engine.tick(generation)
	})
}

func (engine *Engine) cancelLocked() {
	engine.generation++
	if engine.pending != nil {
		engine.pending.Stop()
		engine.pending = nil
	}
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Text:        engine.machine.Visible(engine.state),
		PhraseIndex: engine.state.PhraseIndex,
		Mode:        engine.state.Mode,
		Delay:       engine.state.Delay,
		Armed:       engine.armed,
	}
}
