// Package headless implements a frontend without display or input that keeps
// the last rendered frame, for batch runs and tests.
package headless

import (
	"fmt"
	"io"
	"sync"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/interpreter"
)

// Headless records frames instead of displaying them.
type Headless struct {
	output io.Writer // receives the last frame on Close, may be nil

	mu     sync.Mutex
	frame  interpreter.Framebuffer
	frames int

	keys      chan frontend.KeyEvent
	done      chan struct{}
	closeOnce sync.Once
}

// New returns a headless frontend. If output is not nil, the last rendered
// frame is written to it when the frontend is closed.
func New(output io.Writer) *Headless {
	return &Headless{
		output: output,
		keys:   make(chan frontend.KeyEvent, 16),
		done:   make(chan struct{}),
	}
}

// Render stores a copy of the frame.
func (h *Headless) Render(frame *interpreter.Framebuffer) error {
	h.mu.Lock()
	h.frame = *frame
	h.frames++
	h.mu.Unlock()
	return nil
}

// Keys returns the key event channel. Events are only produced by Press.
func (h *Headless) Keys() <-chan frontend.KeyEvent {
	return h.keys
}

// Press queues a key event as if it was produced by a user.
func (h *Headless) Press(key uint8, pressed bool) {
	select {
	case h.keys <- frontend.KeyEvent{Key: key, Pressed: pressed}:
	case <-h.done:
	}
}

// Done is closed by Close.
func (h *Headless) Done() <-chan struct{} {
	return h.done
}

// Frame returns the last rendered frame.
func (h *Headless) Frame() interpreter.Framebuffer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frame
}

// Frames returns the number of rendered frames.
func (h *Headless) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Close writes the last frame to the output.
func (h *Headless) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.done)
		if h.output == nil {
			return
		}

		frame := h.Frame()
		if _, werr := io.WriteString(h.output, frame.String()); werr != nil {
			err = fmt.Errorf("writing frame: %w", werr)
		}
	})
	return err
}
