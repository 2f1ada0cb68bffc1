package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a clickable UI toggle for boolean values
type Checkbox struct {
	Label   string
	Value   bool
	X, Y    float64
	Size    float64
	clicked bool // Track if already clicked this frame

	// Styling
	BoxColor   color.RGBA
	HoverColor color.RGBA
	CheckColor color.RGBA
}

// NewCheckbox creates a checkbox styled to match the panel theme
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label:      label,
		Value:      value,
		X:          x,
		Y:          y,
		Size:       16,
		BoxColor:   color.RGBA{R: 100, G: 100, B: 110, A: 255},
		HoverColor: color.RGBA{R: 100, G: 150, B: 220, A: 255},
		CheckColor: color.RGBA{R: 80, G: 120, B: 180, A: 255},
	}
}

// Toggle flips the checkbox state
func (c *Checkbox) Toggle() {
	c.Value = !c.Value
}

// contains reports whether a screen point falls on the box
func (c *Checkbox) contains(x, y float64) bool {
	return x >= c.X && x <= c.X+c.Size && y >= c.Y && y <= c.Y+c.Size
}

// Update checks for mouse interaction
func (c *Checkbox) Update() {
	mx, my := ebiten.CursorPosition()
	isOver := c.contains(float64(mx), float64(my))

	// Toggle on click (with debouncing)
	if isOver && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !c.clicked {
			c.Toggle()
			c.clicked = true
		}
	} else {
		c.clicked = false
	}
}

// Draw renders the checkbox
func (c *Checkbox) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()

	border := c.BoxColor
	if c.contains(float64(mx), float64(my)) {
		border = c.HoverColor
	}

	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2, border, true)

	// Inner fill marks the checked state
	if c.Value {
		vector.FillRect(screen,
			float32(c.X+3), float32(c.Y+3),
			float32(c.Size-6), float32(c.Size-6),
			c.CheckColor, true)
	}
}
