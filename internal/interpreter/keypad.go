package interpreter

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// State is the execution state of the interpreter.
type State uint8

const (
	// StateRunning means the next Step fetches the instruction at PC.
	StateRunning State = iota
	// StateAwaitingKey means an Fx0A instruction waits for a key press.
	// PC keeps pointing at the waiting instruction until a key is pressed.
	StateAwaitingKey
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateAwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// SetKey updates the pressed state of a keypad key 0x0-0xF.
func (i *Interpreter) SetKey(key uint8, pressed bool) error {
	if int(key) >= KeyCount {
		return fmt.Errorf("%w: key %X", ErrInvalidKey, key)
	}

	if pressed && !i.keys[key] && i.state == StateAwaitingKey && i.keyPressed < 0 {
		i.keyPressed = int(key)
	}
	i.keys[key] = pressed
	return nil
}

// KeyPressed returns whether the given key is currently pressed.
// Keys outside of 0x0-0xF are never pressed.
func (i *Interpreter) KeyPressed(key uint8) bool {
	if int(key) >= KeyCount {
		return false
	}
	return i.keys[key]
}

// waitForKey handles Fx0A. If a key is held already the instruction completes,
// otherwise the interpreter switches to the awaiting key state. A key pressed
// through SetKey while waiting completes the instruction on the next Step.
func (i *Interpreter) waitForKey(x uint8) {
	if i.state != StateAwaitingKey {
		i.keyPressed = -1
		for key, pressed := range i.keys {
			if pressed {
				i.keyPressed = key
				break
			}
		}
	}

	if i.keyPressed < 0 {
		if i.state != StateAwaitingKey {
			i.logger.Debug("Waiting for key press", log.Hex("pc", i.pc))
		}
		i.state = StateAwaitingKey
		return
	}

	i.v[x] = uint8(i.keyPressed)
	i.keyPressed = -1
	i.state = StateRunning
}
