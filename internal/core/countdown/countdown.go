package countdown

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidTarget indicates the deadline is not a representable point in time.
var ErrInvalidTarget = errors.New("invalid countdown target")

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// Layouts accepted by ParseTarget, tried in order.
var targetLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// Remaining is the calendar breakdown of the time left.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Snapshot is the last computed countdown state.
type Snapshot struct {
	Remaining Remaining
	Complete  bool
	At        time.Time
}

// Config contains runtime options for the engine.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
}

// Engine derives the remaining time toward a fixed deadline.
type Engine struct {
	mu       sync.Mutex
	target   time.Time
	options  Config
	snapshot Snapshot
	events   []chan Event
	stopCh   chan struct{}
	running  bool
	closed   bool
	notified bool
}

// ParseTarget parses a deadline in local wall time or RFC3339.
func ParseTarget(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range targetLayouts {
		parsed, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return parsed, validateTarget(parsed)
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidTarget, value)
}

// Compute decomposes target-now into days, hours, minutes and seconds.
// The result is all zero and complete once now reaches the target.
func Compute(target, now time.Time) (Remaining, bool) {
	diff := target.UnixMilli() - now.UnixMilli()
	if diff <= 0 {
		return Remaining{}, true
	}
	return Remaining{
		Days:    int(diff / millisPerDay),
		Hours:   int(diff / millisPerHour % 24),
		Minutes: int(diff / millisPerMinute % 60),
		Seconds: int(diff / millisPerSecond % 60),
	}, false
}

// New creates an engine for the given deadline.
func New(target time.Time, options Config) (*Engine, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}

	engine := &Engine{
		target:  target,
		options: options,
	}
	if now, err := options.Clock.Now(); err == nil {
		remaining, complete := Compute(target, now)
		engine.snapshot = Snapshot{Remaining: remaining, Complete: complete, At: now}
	}
	return engine, nil
}

// Target returns the deadline.
func (engine *Engine) Target() time.Time {
	return engine.target
}

// Snapshot returns the last computed state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshot
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Start launches the ticking loop. It is a no-op once the deadline has passed.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.running || engine.closed || engine.notified {
		engine.mu.Unlock()
		return
	}
	engine.running = true
	engine.stopCh = make(chan struct{})
	stopCh := engine.stopCh
	engine.mu.Unlock()

	go engine.run(stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	if engine.running {
		close(engine.stopCh)
		engine.running = false
	}
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Running reports whether the ticking loop is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

// Poll reads the clock and ticks. On a clock failure the previous snapshot is kept.
func (engine *Engine) Poll() (Snapshot, error) {
	now, err := engine.options.Clock.Now()
	if err != nil {
		return engine.Snapshot(), fmt.Errorf("read clock: %w", err)
	}
	return engine.Tick(now), nil
}

// Tick recomputes the snapshot from the absolute deadline. Completion is
// sticky: once reached, later readings never revert it, and EventCompleted
// is emitted exactly once.
func (engine *Engine) Tick(now time.Time) Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.notified {
		return engine.snapshot
	}

	if !engine.snapshot.Complete {
		remaining, complete := Compute(engine.target, now)
		engine.snapshot = Snapshot{Remaining: remaining, Complete: complete, At: now}
	}

	if engine.snapshot.Complete {
		engine.notified = true
		engine.emitLocked(Event{
			Type:     EventCompleted,
			Snapshot: engine.snapshot,
			At:       now,
		})
		return engine.snapshot
	}

	engine.emitLocked(Event{
		Type:     EventTick,
		Snapshot: engine.snapshot,
		At:       now,
	})
	return engine.snapshot
}

func (engine *Engine) run(stopCh chan struct{}) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			snapshot, err := engine.Poll()
			if err != nil {
				continue
			}
			if snapshot.Complete {
				engine.finish(stopCh)
				return
			}
		}
	}
}

func (engine *Engine) finish(stopCh chan struct{}) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running && engine.stopCh == stopCh {
		engine.running = false
	}
}

// emitLocked delivers the newest event to every observer, dropping the
// oldest queued one when a buffer is full.
func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}

func validateTarget(target time.Time) error {
	if target.IsZero() {
		return fmt.Errorf("%w: zero time", ErrInvalidTarget)
	}
	if year := target.Year(); year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidTarget, year)
	}
	return nil
}
