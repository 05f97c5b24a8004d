package headless

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/assert"
)

// compile time check that the headless frontend implements the interface.
var _ frontend.Frontend = (*Headless)(nil)

func TestHeadless_Render(t *testing.T) {
	h := New(nil)

	var frame interpreter.Framebuffer
	frame[0] = 1
	assert.NoError(t, h.Render(&frame))

	// later changes to the rendered frame are not visible
	frame[1] = 1

	got := h.Frame()
	assert.True(t, got.Pixel(0, 0))
	assert.False(t, got.Pixel(1, 0))
	assert.Equal(t, 1, h.Frames())
}

func TestHeadless_Press(t *testing.T) {
	h := New(nil)
	h.Press(0xA, true)

	event := <-h.Keys()
	assert.Equal(t, uint8(0xA), event.Key)
	assert.True(t, event.Pressed)
}

func TestHeadless_Close(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf)

	var frame interpreter.Framebuffer
	frame[interpreter.Width-1] = 1
	assert.NoError(t, h.Render(&frame))

	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())

	select {
	case <-h.Done():
	default:
		t.Fatal("done channel not closed")
	}

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, strings.Repeat(".", interpreter.Width-1)+"#", lines[0])
	assert.Equal(t, interpreter.Height+1, len(lines))
}
