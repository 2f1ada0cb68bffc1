package simulation

import "image/color"

// packColor encodes an RGBA color as 0xRRGGBBAA for the wire.
func packColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// UnpackColor is the inverse of packColor.
func UnpackColor(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// Darken shifts a boid color toward the muted palette used in dark mode.
func Darken(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R / 2,
		G: c.G / 2,
		B: uint8(min(int(c.B)+40, 255)),
		A: c.A,
	}
}
