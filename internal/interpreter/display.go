package interpreter

import (
	"strings"
)

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Framebuffer is a monochrome 64×32 pixel grid stored row-major, one byte
// per pixel holding 0 or 1. Index of pixel (x, y) is y*Width + x.
type Framebuffer [Width * Height]byte

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates outside the display return false.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f[y*Width+x] != 0
}

// String renders the framebuffer as text, '#' for set pixels and '.' for
// cleared pixels, one line per row.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := range Height {
		for x := range Width {
			if f[y*Width+x] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// clear turns all pixels off.
func (f *Framebuffer) clear() {
	*f = Framebuffer{}
}

// drawSprite XORs the sprite rows onto the framebuffer with its top left
// corner at (x, y). Every pixel coordinate wraps around the display edges.
// It returns true if any set pixel was cleared.
func (f *Framebuffer) drawSprite(x, y uint8, sprite []byte) bool {
	collision := false
	originX := int(x) % Width
	originY := int(y) % Height

	for row, line := range sprite {
		py := (originY + row) % Height
		for bit := range 8 {
			if line&(0x80>>bit) == 0 {
				continue
			}
			px := (originX + bit) % Width
			index := py*Width + px
			if f[index] == 1 {
				collision = true
			}
			f[index] ^= 1
		}
	}
	return collision
}
