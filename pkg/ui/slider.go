package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal UI widget for numeric values
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64

	// Styling
	TrackColor color.RGBA
	FillColor  color.RGBA
	HoverColor color.RGBA
}

// NewSlider creates a slider with the default track height, styled to
// match the panel theme
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min, Max: max,
		X: x, Y: y,
		W: w, H: 14,
		TrackColor: color.RGBA{R: 60, G: 60, B: 70, A: 255},
		FillColor:  color.RGBA{R: 80, G: 120, B: 180, A: 255},
		HoverColor: color.RGBA{R: 100, G: 150, B: 220, A: 255},
	}
}

// Ratio reports the filled fraction of the track, 0 at Min and 1 at Max
func (s *Slider) Ratio() float64 {
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// contains reports whether a screen point falls on the track
func (s *Slider) contains(x, y float64) bool {
	return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		s.contains(float64(mx), float64(my)) {
		// Map the horizontal cursor position onto [Min, Max]
		p := (float64(mx) - s.X) / s.W
		s.Value = s.Min + p*(s.Max-s.Min)

		// Clamp value
		if s.Value < s.Min {
			s.Value = s.Min
		}
		if s.Value > s.Max {
			s.Value = s.Max
		}
	}
}

// Draw renders the slider track and its filled portion
func (s *Slider) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()

	fill := s.FillColor
	if s.contains(float64(mx), float64(my)) {
		fill = s.HoverColor
	}

	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), s.TrackColor, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), fill, true)
}
