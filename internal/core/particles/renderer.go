package particles

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"hackpulse/internal/core/model"
)

// ErrAlreadyMounted indicates Mount was called on a running renderer.
var ErrAlreadyMounted = errors.New("renderer already mounted")

// Host is the window side a renderer draws into. Present must not retain
// frame after it returns; the buffer is redrawn on the next frame.
type Host interface {
	Size() (width, height int)
	Attach(width, height int) error
	Present(frame *image.NRGBA)
	Detach()
	OnPointerMove(handler func(x, y float32)) (remove func())
	OnResize(handler func(width, height int)) (remove func())
}

// FrameClock paces the render loop.
type FrameClock interface {
	Frames() <-chan time.Time
	Stop()
}

type tickerClock struct {
	ticker *time.Ticker
}

func (clock tickerClock) Frames() <-chan time.Time { return clock.ticker.C }
func (clock tickerClock) Stop()                    { clock.ticker.Stop() }

// NewTickerClock returns a FrameClock backed by time.Ticker.
func NewTickerClock(interval time.Duration) FrameClock {
	return tickerClock{ticker: time.NewTicker(interval)}
}

// DefaultConfig returns the backdrop used behind the hero banner.
func DefaultConfig() model.ParticleConfig {
	return model.ParticleConfig{
		Stars:         2500,
		CircuitLines:  15,
		FrameInterval: time.Second / 60,
		Seed:          time.Now().UnixNano(),
	}
}

// Renderer runs the particle field render loop against a Host.
type Renderer struct {
	mu       sync.Mutex
	config   model.ParticleConfig
	newClock func(time.Duration) FrameClock
	mounted  bool
	cancel   context.CancelFunc
	done     chan struct{}
	cleanups []func()

	inputMu sync.Mutex
	pointer [2]float32
	size    [2]int
	resized bool
}

// New creates an unmounted renderer. A nil newClock uses NewTickerClock.
func New(config model.ParticleConfig, newClock func(time.Duration) FrameClock) *Renderer {
	defaults := DefaultConfig()
	if config.Stars < 0 {
		config.Stars = 0
	}
	if config.CircuitLines < 0 {
		config.CircuitLines = 0
	}
	if config.FrameInterval <= 0 {
		config.FrameInterval = defaults.FrameInterval
	}
	if newClock == nil {
		newClock = NewTickerClock
	}
	return &Renderer{config: config, newClock: newClock}
}

// Mounted reports whether the render loop is attached.
func (renderer *Renderer) Mounted() bool {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	return renderer.mounted
}

// Mount registers the pointer and resize listeners, acquires the surface and
// starts the frame loop. A failed mount releases everything it acquired.
func (renderer *Renderer) Mount(host Host) (err error) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	if renderer.mounted {
		return ErrAlreadyMounted
	}

	var cleanups []func()
	defer func() {
		if err != nil {
			release(cleanups)
		}
	}()

	width, height := host.Size()
	renderer.inputMu.Lock()
	renderer.size = [2]int{width, height}
	renderer.pointer = [2]float32{float32(width) / 2, float32(height) / 2}
	renderer.resized = true
	renderer.inputMu.Unlock()

	cleanups = append(cleanups, host.OnPointerMove(renderer.pointerMoved))
	cleanups = append(cleanups, host.OnResize(renderer.surfaceResized))

	if err := host.Attach(width, height); err != nil {
		return fmt.Errorf("attach surface: %w", err)
	}
	cleanups = append(cleanups, host.Detach)

	clock := renderer.newClock(renderer.config.FrameInterval)
	cleanups = append(cleanups, clock.Stop)

	scene := NewScene(renderer.config.Stars, renderer.config.CircuitLines, renderer.config.Seed)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go renderer.loop(ctx, done, host, clock, scene)

	renderer.mounted = true
	renderer.cancel = cancel
	renderer.done = done
	renderer.cleanups = cleanups
	return nil
}

// Unmount halts the frame loop, removes both listeners and releases the
// surface. No frame is presented after it returns.
func (renderer *Renderer) Unmount() {
	renderer.mu.Lock()
	if !renderer.mounted {
		renderer.mu.Unlock()
		return
	}
	cancel, done, cleanups := renderer.cancel, renderer.done, renderer.cleanups
	renderer.mounted = false
	renderer.cancel = nil
	renderer.done = nil
	renderer.cleanups = nil
	renderer.mu.Unlock()

	cancel()
	<-done
	release(cleanups)
}

func (renderer *Renderer) loop(ctx context.Context, done chan struct{}, host Host, clock FrameClock, scene *Scene) {
	defer close(done)

	var frame *image.NRGBA
	for {
		select {
		case <-ctx.Done():
			return
		case <-clock.Frames():
		}
		if ctx.Err() != nil {
			return
		}

		pointer, size, resized := renderer.input()
		if resized || frame == nil {
			scene.SetAspect(size[0], size[1])
			frame = image.NewNRGBA(image.Rect(0, 0, maxInt(size[0], 0), maxInt(size[1], 0)))
		}
		biasX, biasY := PointerBias(pointer[0], pointer[1], size[0], size[1])
		scene.Advance(biasX, biasY)
		if size[0] <= 0 || size[1] <= 0 {
			continue
		}
		scene.Render(frame)
		host.Present(frame)
	}
}

func (renderer *Renderer) input() ([2]float32, [2]int, bool) {
	renderer.inputMu.Lock()
	defer renderer.inputMu.Unlock()
	resized := renderer.resized
	renderer.resized = false
	return renderer.pointer, renderer.size, resized
}

func (renderer *Renderer) pointerMoved(x, y float32) {
	renderer.inputMu.Lock()
	renderer.pointer = [2]float32{x, y}
	renderer.inputMu.Unlock()
}

func (renderer *Renderer) surfaceResized(width, height int) {
	renderer.inputMu.Lock()
	renderer.size = [2]int{width, height}
	renderer.resized = true
	renderer.inputMu.Unlock()
}

// release runs cleanups in reverse acquisition order.
func release(cleanups []func()) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		if cleanups[i] != nil {
			cleanups[i]()
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
