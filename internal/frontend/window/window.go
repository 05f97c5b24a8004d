//go:build !headless

// Package window implements a desktop window frontend based on ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

// DefaultScale is the default size of a display pixel in screen pixels.
const DefaultScale = 10

var (
	colorOn  = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	colorOff = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
)

// keyboard binds physical keys to the characters of the shared keymap.
var keyboard = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.Key1, '1'}, {ebiten.Key2, '2'}, {ebiten.Key3, '3'}, {ebiten.Key4, '4'},
	{ebiten.KeyQ, 'q'}, {ebiten.KeyW, 'w'}, {ebiten.KeyE, 'e'}, {ebiten.KeyR, 'r'},
	{ebiten.KeyA, 'a'}, {ebiten.KeyS, 's'}, {ebiten.KeyD, 'd'}, {ebiten.KeyF, 'f'},
	{ebiten.KeyZ, 'z'}, {ebiten.KeyX, 'x'}, {ebiten.KeyC, 'c'}, {ebiten.KeyV, 'v'},
}

// Config configures the window.
type Config struct {
	Scale int
	Title string
}

// Window shows the display scaled up in a desktop window.
type Window struct {
	logger *log.Logger
	scale  int
	title  string

	keys      chan frontend.KeyEvent
	done      chan struct{}
	closeOnce sync.Once

	mu          sync.Mutex
	pixels      []byte // RGBA pixels of the last frame
	showOverlay bool

	image *ebiten.Image
	held  [interpreter.KeyCount]bool
}

// New returns a new window frontend. Start opens the window.
func New(logger *log.Logger, cfg Config) (*Window, error) {
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	if cfg.Title == "" {
		cfg.Title = "retrochip8"
	}

	w := &Window{
		logger: logger,
		scale:  cfg.Scale,
		title:  cfg.Title,
		keys:   make(chan frontend.KeyEvent, 32),
		done:   make(chan struct{}),
		pixels: make([]byte, interpreter.Width*interpreter.Height*4),
	}
	var empty interpreter.Framebuffer
	fillPixels(w.pixels, &empty)
	return w, nil
}

// Start opens the window and runs the ebiten game loop in the background.
func (w *Window) Start() error {
	ebiten.SetWindowSize(interpreter.Width*w.scale, interpreter.Height*w.scale)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)

	go func() {
		defer w.shutdown()
		if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
			w.logger.Error("Running window failed", log.Err(err))
		}
	}()
	return nil
}

// Update handles keyboard input, called by ebiten at its tick rate.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		w.mu.Lock()
		w.showOverlay = !w.showOverlay
		w.mu.Unlock()
	}

	for _, binding := range keyboard {
		key, ok := frontend.KeyForRune(binding.r)
		if !ok {
			continue
		}
		pressed := ebiten.IsKeyPressed(binding.key)
		if pressed == w.held[key] {
			continue
		}
		w.held[key] = pressed

		select {
		case w.keys <- frontend.KeyEvent{Key: key, Pressed: pressed}:
		case <-w.done:
			return ebiten.Termination
		}
	}
	return nil
}

// Draw draws the last frame scaled to the window size.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(interpreter.Width, interpreter.Height)
	}

	w.mu.Lock()
	w.image.WritePixels(w.pixels)
	showOverlay := w.showOverlay
	w.mu.Unlock()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.image, opts)

	if showOverlay {
		status := fmt.Sprintf("FPS %0.1f TPS %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.RGBA{R: 0xFF, G: 0xC0, A: 0xFF})
	}
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return interpreter.Width * w.scale, interpreter.Height * w.scale
}

// Render converts the frame to pixels that are shown on the next Draw.
func (w *Window) Render(frame *interpreter.Framebuffer) error {
	w.mu.Lock()
	fillPixels(w.pixels, frame)
	w.mu.Unlock()
	return nil
}

// fillPixels writes the frame as RGBA pixels into dst.
func fillPixels(dst []byte, frame *interpreter.Framebuffer) {
	for index, pixel := range frame {
		c := colorOff
		if pixel != 0 {
			c = colorOn
		}
		offset := index * 4
		dst[offset] = c.R
		dst[offset+1] = c.G
		dst[offset+2] = c.B
		dst[offset+3] = c.A
	}
}

// Keys returns the key event channel.
func (w *Window) Keys() <-chan frontend.KeyEvent {
	return w.keys
}

// Done is closed when the window was closed.
func (w *Window) Done() <-chan struct{} {
	return w.done
}

// Close stops the game loop, the window closes on its next update.
func (w *Window) Close() error {
	w.shutdown()
	return nil
}

func (w *Window) shutdown() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
}
