package backdrop

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"hackpulse/internal/core/particles"
)

// ErrClosed indicates the widget was closed and cannot host a renderer again.
var ErrClosed = errors.New("backdrop closed")

var (
	_ fyne.Widget       = (*Backdrop)(nil)
	_ desktop.Hoverable = (*Backdrop)(nil)
)

// Backdrop is a fyne widget that shows frames produced by a particle
// renderer. Frames are presented from the render goroutine; the raster is
// refreshed on the fyne thread.
type Backdrop struct {
	widget.BaseWidget

	raster *canvas.Raster
	queued atomic.Bool

	mu       sync.Mutex
	frame    *image.NRGBA
	size     fyne.Size
	attached bool
	closed   bool
	nextID   int
	pointer  map[int]func(x, y float32)
	resize   map[int]func(width, height int)
}

// New creates an empty backdrop.
func New() *Backdrop {
	backdrop := &Backdrop{
		pointer: map[int]func(x, y float32){},
		resize:  map[int]func(width, height int){},
	}
	backdrop.raster = canvas.NewRaster(backdrop.frameImage)
	backdrop.ExtendBaseWidget(backdrop)
	return backdrop
}

// CreateRenderer implements fyne.Widget.
func (backdrop *Backdrop) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.NRGBA{R: 0x03, G: 0x05, B: 0x0c, A: 0xff})
	return &backdropRenderer{backdrop: backdrop, background: background}
}

// SurfaceSize reports the surface size in device independent units.
func (backdrop *Backdrop) SurfaceSize() (int, int) {
	backdrop.mu.Lock()
	defer backdrop.mu.Unlock()
	return int(backdrop.size.Width), int(backdrop.size.Height)
}

// Host adapts the widget to particles.Host.
func (backdrop *Backdrop) Host() particles.Host {
	return surface{backdrop}
}

type surface struct {
	*Backdrop
}

func (host surface) Size() (int, int) {
	return host.SurfaceSize()
}

// Attach marks the surface as owned by a renderer.
func (backdrop *Backdrop) Attach(width, height int) error {
	backdrop.mu.Lock()
	defer backdrop.mu.Unlock()
	if backdrop.closed {
		return ErrClosed
	}
	backdrop.attached = true
	return nil
}

// Detach releases the surface and clears the last frame.
func (backdrop *Backdrop) Detach() {
	backdrop.mu.Lock()
	backdrop.attached = false
	backdrop.frame = nil
	backdrop.mu.Unlock()
	backdrop.requestRefresh()
}

// Present copies frame for display.
func (backdrop *Backdrop) Present(frame *image.NRGBA) {
	clone := image.NewNRGBA(frame.Rect)
	copy(clone.Pix, frame.Pix)

	backdrop.mu.Lock()
	if !backdrop.attached {
		backdrop.mu.Unlock()
		return
	}
	backdrop.frame = clone
	backdrop.mu.Unlock()
	backdrop.requestRefresh()
}

// OnPointerMove registers handler for pointer movement over the widget.
func (backdrop *Backdrop) OnPointerMove(handler func(x, y float32)) func() {
	backdrop.mu.Lock()
	defer backdrop.mu.Unlock()
	id := backdrop.nextID
	backdrop.nextID++
	backdrop.pointer[id] = handler
	return func() {
		backdrop.mu.Lock()
		defer backdrop.mu.Unlock()
		delete(backdrop.pointer, id)
	}
}

// OnResize registers handler for layout size changes.
func (backdrop *Backdrop) OnResize(handler func(width, height int)) func() {
	backdrop.mu.Lock()
	defer backdrop.mu.Unlock()
	id := backdrop.nextID
	backdrop.nextID++
	backdrop.resize[id] = handler
	return func() {
		backdrop.mu.Lock()
		defer backdrop.mu.Unlock()
		delete(backdrop.resize, id)
	}
}

// Listeners returns the number of registered handlers.
func (backdrop *Backdrop) Listeners() int {
	backdrop.mu.Lock()
	defer backdrop.mu.Unlock()
	return len(backdrop.pointer) + len(backdrop.resize)
}

// Close refuses further Attach calls.
func (backdrop *Backdrop) Close() {
	backdrop.mu.Lock()
	defer backdrop.mu.Unlock()
	backdrop.closed = true
}

// MouseIn implements desktop.Hoverable.
func (backdrop *Backdrop) MouseIn(event *desktop.MouseEvent) {
	backdrop.MouseMoved(event)
}

// MouseMoved implements desktop.Hoverable.
func (backdrop *Backdrop) MouseMoved(event *desktop.MouseEvent) {
	backdrop.mu.Lock()
	handlers := make([]func(float32, float32), 0, len(backdrop.pointer))
	for _, handler := range backdrop.pointer {
		handlers = append(handlers, handler)
	}
	backdrop.mu.Unlock()

	for _, handler := range handlers {
		handler(event.Position.X, event.Position.Y)
	}
}

// MouseOut implements desktop.Hoverable.
func (backdrop *Backdrop) MouseOut() {}

func (backdrop *Backdrop) resized(size fyne.Size) {
	backdrop.mu.Lock()
	if backdrop.size == size {
		backdrop.mu.Unlock()
		return
	}
	backdrop.size = size
	handlers := make([]func(int, int), 0, len(backdrop.resize))
	for _, handler := range backdrop.resize {
		handlers = append(handlers, handler)
	}
	backdrop.mu.Unlock()

	for _, handler := range handlers {
		handler(int(size.Width), int(size.Height))
	}
}

// frameImage is the raster generator. It returns the last presented frame, which
// is never written to again.
func (backdrop *Backdrop) frameImage(width, height int) image.Image {
	backdrop.mu.Lock()
	defer backdrop.mu.Unlock()
	if backdrop.frame == nil {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	return backdrop.frame
}

// requestRefresh coalesces refreshes so a slow fyne thread sees at most one
// pending request.
func (backdrop *Backdrop) requestRefresh() {
	if !backdrop.queued.CompareAndSwap(false, true) {
		return
	}
	fyne.Do(func() {
		backdrop.queued.Store(false)
		backdrop.raster.Refresh()
	})
}

type backdropRenderer struct {
	backdrop   *Backdrop
	background *canvas.Rectangle
}

func (renderer *backdropRenderer) Layout(size fyne.Size) {
	renderer.background.Resize(size)
	renderer.backdrop.raster.Resize(size)
	renderer.backdrop.resized(size)
}

func (renderer *backdropRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (renderer *backdropRenderer) Refresh() {
	renderer.background.Refresh()
	renderer.backdrop.raster.Refresh()
}

func (renderer *backdropRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{renderer.background, renderer.backdrop.raster}
}

func (renderer *backdropRenderer) Destroy() {}
