// Package terminal implements a frontend that renders the display into a text
// terminal and reads keypad input from it in raw mode.
package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// DefaultHoldTime is how long a key counts as pressed after its last
// keystroke. Terminals only report key presses, never releases.
const DefaultHoldTime = 150 * time.Millisecond

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B

	escClearScreen = "\x1b[2J"
	escCursorHome  = "\x1b[H"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
)

// Config configures the terminal frontend.
type Config struct {
	Input    io.Reader // keyboard input, raw mode is enabled if it is a terminal
	Output   io.Writer
	HoldTime time.Duration
}

// Terminal renders two pixel rows per text line using half block characters.
type Terminal struct {
	logger   *log.Logger
	input    io.Reader
	output   io.Writer
	holdTime time.Duration

	fd       int
	oldState *term.State

	keys      chan frontend.KeyEvent
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	releases map[uint8]*time.Timer // pending automatic key releases
	buf      bytes.Buffer
}

// New returns a terminal frontend. Start must be called before rendering.
func New(logger *log.Logger, cfg Config) *Terminal {
	if cfg.HoldTime <= 0 {
		cfg.HoldTime = DefaultHoldTime
	}
	return &Terminal{
		logger:   logger,
		input:    cfg.Input,
		output:   cfg.Output,
		holdTime: cfg.HoldTime,
		fd:       -1,
		keys:     make(chan frontend.KeyEvent, 32),
		done:     make(chan struct{}),
		releases: map[uint8]*time.Timer{},
	}
}

// Start switches the input terminal to raw mode and starts reading keys.
func (t *Terminal) Start() error {
	if f, ok := t.input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		oldState, err := term.MakeRaw(t.fd)
		if err != nil {
			return fmt.Errorf("setting terminal raw mode: %w", err)
		}
		t.oldState = oldState
	}
	t.checkSize()

	if _, err := io.WriteString(t.output, escClearScreen+escHideCursor); err != nil {
		t.restore()
		return fmt.Errorf("preparing terminal: %w", err)
	}

	go t.readInput()
	return nil
}

// checkSize warns if the output terminal is too small to show the display.
func (t *Terminal) checkSize() {
	f, ok := t.output.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		t.logger.Debug("Querying terminal size failed", log.Err(err))
		return
	}
	if width < interpreter.Width || height < interpreter.Height/2 {
		t.logger.Warn("Terminal is smaller than the display",
			log.Int("columns", width),
			log.Int("rows", height))
	}
}

// readInput translates keystrokes into key events until the input ends or
// the frontend is closed.
func (t *Terminal) readInput() {
	buf := make([]byte, 16)
	for {
		n, err := t.input.Read(buf)
		if n > 0 && t.handleInput(buf[:n]) {
			t.shutdown()
			return
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.logger.Error("Reading terminal input failed", log.Err(err))
			}
			return
		}

		select {
		case <-t.done:
			return
		default:
		}
	}
}

// handleInput processes one chunk of input and returns whether the user
// requested to quit.
func (t *Terminal) handleInput(data []byte) bool {
	// a lone escape is the Esc key, longer chunks are escape sequences
	if data[0] == keyEscape {
		return len(data) == 1
	}

	for _, b := range data {
		if b == keyCtrlC {
			return true
		}
		if key, ok := frontend.KeyForRune(rune(b)); ok {
			t.press(key)
		}
	}
	return false
}

// press emits a key press and schedules its release. Repeated keystrokes
// from key repeat extend the hold time of a pressed key.
func (t *Terminal) press(key uint8) {
	t.mu.Lock()
	timer, held := t.releases[key]
	if held && timer.Stop() {
		timer.Reset(t.holdTime)
		t.mu.Unlock()
		return
	}
	var release *time.Timer
	release = time.AfterFunc(t.holdTime, func() { t.release(key, release) })
	t.releases[key] = release
	t.mu.Unlock()

	t.send(frontend.KeyEvent{Key: key, Pressed: true})
}

// release emits the key release scheduled by timer. A timer that fired
// while a newer press replaced it is stale and does nothing.
func (t *Terminal) release(key uint8, timer *time.Timer) {
	t.mu.Lock()
	if t.releases[key] != timer {
		t.mu.Unlock()
		return
	}
	delete(t.releases, key)
	t.mu.Unlock()

	t.send(frontend.KeyEvent{Key: key, Pressed: false})
}

func (t *Terminal) send(event frontend.KeyEvent) {
	select {
	case t.keys <- event:
	case <-t.done:
	}
}

// Render draws the frame at the top left corner of the terminal.
func (t *Terminal) Render(frame *interpreter.Framebuffer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf.Reset()
	t.buf.WriteString(escCursorHome)
	writeFrame(&t.buf, frame)

	if _, err := t.output.Write(t.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// writeFrame renders two pixel rows per line. Lines end with CR LF as the
// terminal does not translate line feeds in raw mode.
func writeFrame(buf *bytes.Buffer, frame *interpreter.Framebuffer) {
	for y := 0; y < interpreter.Height; y += 2 {
		for x := range interpreter.Width {
			top := frame.Pixel(x, y)
			bottom := frame.Pixel(x, y+1)
			switch {
			case top && bottom:
				buf.WriteRune('█')
			case top:
				buf.WriteRune('▀')
			case bottom:
				buf.WriteRune('▄')
			default:
				buf.WriteByte(' ')
			}
		}
		buf.WriteString("\r\n")
	}
}

// Keys returns the key event channel.
func (t *Terminal) Keys() <-chan frontend.KeyEvent {
	return t.keys
}

// Done is closed when the user pressed Esc or Ctrl-C.
func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	t.shutdown()

	_, err := io.WriteString(t.output, escShowCursor)
	t.restore()
	if err != nil {
		return fmt.Errorf("restoring cursor: %w", err)
	}
	return nil
}

func (t *Terminal) shutdown() {
	t.closeOnce.Do(func() {
		close(t.done)

		t.mu.Lock()
		for key, timer := range t.releases {
			timer.Stop()
			delete(t.releases, key)
		}
		t.mu.Unlock()
	})
}

func (t *Terminal) restore() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return
	}
	if err := term.Restore(t.fd, t.oldState); err != nil {
		t.logger.Error("Restoring terminal state failed", log.Err(err))
	}
	t.oldState = nil
}
