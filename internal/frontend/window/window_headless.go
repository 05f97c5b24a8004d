//go:build headless

package window

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/log"
)

// DefaultScale is the default size of a display pixel in screen pixels.
const DefaultScale = 10

// ErrUnavailable is returned when the binary was built without window support.
var ErrUnavailable = errors.New("window frontend not available in headless build")

// Config configures the window.
type Config struct {
	Scale int
	Title string
}

// Window is not available in headless builds.
type Window struct{}

// New always fails in headless builds.
func New(_ *log.Logger, _ Config) (*Window, error) {
	return nil, ErrUnavailable
}

func (w *Window) Start() error { return ErrUnavailable }
func (w *Window) Render(_ *interpreter.Framebuffer) error { return ErrUnavailable }
func (w *Window) Keys() <-chan frontend.KeyEvent { return nil }
func (w *Window) Done() <-chan struct{} { return nil }
func (w *Window) Close() error { return nil }
