// Package frontend contains the types shared by the display and input frontends.
package frontend

import (
	"unicode"

	"github.com/retroenv/retrochip8/internal/interpreter"
)

// Names of the supported frontends.
const (
	Terminal = "terminal"
	Window   = "window"
	Headless = "headless"
)

// Names lists all supported frontend names.
var Names = []string{Terminal, Window, Headless}

// KeyEvent is a press or release of a keypad key 0x0-0xF.
type KeyEvent struct {
	Key     uint8
	Pressed bool
}

// Frontend presents the framebuffer and produces keypad events.
type Frontend interface {
	// Render shows a new frame. The frame must not be retained after the call.
	Render(frame *interpreter.Framebuffer) error

	// Keys returns the channel that key events are delivered on.
	Keys() <-chan KeyEvent

	// Done is closed when the user closes the frontend.
	Done() <-chan struct{}

	Close() error
}

// Keymap maps keyboard characters to keypad keys. The 4×4 block starting at
// the 1 key of a QWERTY keyboard mirrors the layout of the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R      4 5 6 D
//	A S D F  ->  7 8 9 E
//	Z X C V      A 0 B F
var Keymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyForRune returns the keypad key for a keyboard character, ignoring case.
func KeyForRune(r rune) (uint8, bool) {
	key, ok := Keymap[unicode.ToLower(r)]
	return key, ok
}
