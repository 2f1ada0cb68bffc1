// Package sprite holds the animated cat companion that wanders along the
// bottom of the screen and walks to wherever the user clicks.
package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// State enumerates the cat animations.
type State int

const (
	IdleBack State = iota
	WalkLeft
	WalkRight
	WalkUp
)

// Strip is a horizontal sprite sheet for one animation state.
type Strip struct {
	Img      *ebiten.Image // frames laid out left to right, may be nil in tests
	FW, FH   int           // frame size in pixels
	Frames   int
	FrameDur float64 // seconds per frame
}

// Cat is the animated character. It has no influence on the flock, it just
// keeps the screensaver company.
type Cat struct {
	X, Y      float64
	Scale     float64
	Speed     float64 // pixels per second
	ArriveEps float64 // distance to target to consider "arrived"

	state  State
	frame  int
	tAcc   float64 // time accumulator for frame switching
	moving bool
	tx, ty float64

	strips map[State]*Strip
}

// NewCat builds a cat with all four animation strips.
func NewCat() *Cat {
	return &Cat{
		X:         40,
		Scale:     3,
		Speed:     140,
		ArriveEps: 6,
		state:     IdleBack,
		strips:    buildStrips(),
	}
}

// State returns the current animation state.
func (c *Cat) State() State { return c.state }

// Moving reports whether the cat is walking toward a target.
func (c *Cat) Moving() bool { return c.moving }

// Frame returns the current animation frame index.
func (c *Cat) Frame() int { return c.frame }

// cur returns the strip of the current state, falling back to IdleBack.
func (c *Cat) cur() *Strip {
	if s, ok := c.strips[c.state]; ok && s != nil {
		return s
	}
	if s, ok := c.strips[IdleBack]; ok && s != nil {
		return s
	}
	return &Strip{FW: 1, FH: 1, Frames: 1, FrameDur: 1}
}

func (s *Strip) frameCount() int {
	if s.Frames > 0 {
		return s.Frames
	}
	return 1
}

// PlaceAtBottom parks the cat near the bottom edge of the window.
func (c *Cat) PlaceAtBottom(w, h float64) {
	s := c.cur()
	c.Y = h - float64(s.FH)*c.Scale - 20
}

// GoTo sets a walk target. The cat only walks along the bottom band, so the
// vertical target is pinned to its own center line.
func (c *Cat) GoTo(px, _ float64) {
	c.tx = px

	s := c.cur()
	c.ty = c.Y + float64(s.FH)*c.Scale*0.5
	c.moving = true
	c.pickWalkState()
	c.frame = 0
	c.tAcc = 0
}

// pickWalkState chooses the walk animation from the direction to the target.
func (c *Cat) pickWalkState() {
	s := c.cur()
	cx := c.X + float64(s.FW)*c.Scale*0.5
	cy := c.Y + float64(s.FH)*c.Scale*0.5
	dx, dy := c.tx-cx, c.ty-cy
	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			c.state = WalkLeft
		} else {
			c.state = WalkRight
		}
	} else {
		c.state = WalkUp
	}
}

// Update advances walking and the frame animation by dt seconds.
func (c *Cat) Update(dt float64) {
	s := c.cur()
	if c.moving {
		cx := c.X + float64(s.FW)*c.Scale*0.5
		cy := c.Y + float64(s.FH)*c.Scale*0.5
		dx, dy := c.tx-cx, c.ty-cy
		d := math.Sqrt(dx*dx + dy*dy)

		if d <= c.ArriveEps {
			c.moving = false
			c.state = IdleBack
			c.frame = 0
			c.tAcc = 0
		} else if d > 0.0001 {
			c.X += dx / d * c.Speed * dt
			c.Y += dy / d * c.Speed * dt
		}
	} else {
		c.state = IdleBack
	}

	s2 := c.cur()
	fcount := s2.frameCount()
	c.tAcc += dt
	for c.tAcc >= s2.FrameDur {
		c.tAcc -= s2.FrameDur
		c.frame = (c.frame + 1) % fcount
	}
}

// Draw renders the current frame scaled at the cat position.
func (c *Cat) Draw(screen *ebiten.Image) {
	s := c.cur()
	if s.Img == nil {
		return
	}
	col := c.frame % s.frameCount()

	src := s.Img.SubImage(image.Rect(col*s.FW, 0, (col+1)*s.FW, s.FH)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.Scale, c.Scale)
	op.GeoM.Translate(c.X, c.Y)
	screen.DrawImage(src, op)
}

// ClampToWindow keeps the whole sprite inside the window.
func (c *Cat) ClampToWindow(w, h float64) {
	s := c.cur()
	dw := float64(s.FW) * c.Scale
	dh := float64(s.FH) * c.Scale
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.X+dw > w {
		c.X = w - dw
	}
	if c.Y+dh > h {
		c.Y = h - dh
	}
}

// catPalette maps ASCII pixels to fur colors.
// Legend:
// . = Transparent
// K = Black outline
// O = Orange fur
// D = Dark orange stripes
// W = White chest/paws
// P = Pink nose/ears
// G = Green eyes
var catPalette = map[rune]color.RGBA{
	'K': {R: 30, G: 20, B: 15, A: 255},
	'O': {R: 230, G: 130, B: 40, A: 255},
	'D': {R: 180, G: 90, B: 25, A: 255},
	'W': {R: 245, G: 240, B: 230, A: 255},
	'P': {R: 240, G: 140, B: 150, A: 255},
	'G': {R: 80, G: 200, B: 120, A: 255},
}

// Each animation is a list of same-sized ASCII frames. The back view swishes
// its tail, the walk cycles alternate the legs.
var catFrames = map[State][][]string{
	IdleBack: {
		{
			"..K......K....",
			".KPK....KPK...",
			".KOOKKKKOOK...",
			".KOODOODOOK...",
			".KOOOOOOOOK..K",
			".KODOODOOOK.KO",
			".KOOOOOOOOKKO.",
			".KODOODOODKO..",
			".KOOOOOOOOKK..",
			"..KOOKKKOOK...",
			"..KOK..KOK....",
			"..KKK..KKK....",
		},
		{
			"..K......K....",
			".KPK....KPK...",
			".KOOKKKKOOK...",
			".KOODOODOOK...",
			".KOOOOOOOOK...",
			".KODOODOOOK...",
			".KOOOOOOOOKK..",
			".KODOODOODKOK.",
			".KOOOOOOOOKKO.",
			"..KOOKKKOOK...",
			"..KOK..KOK....",
			"..KKK..KKK....",
		},
	},
	WalkLeft: {
		{
			"......K...K...",
			".....KPK.KPK.K",
			".....KOOKOOKKO",
			"....KGOOOOOKO.",
			"..KKKOOPOODK..",
			".KOOOOOKODDK..",
			"KODOOOOOODOK..",
			"KOODOODOODOK..",
			".KWOOOOOOWK...",
			".KWK..KWK.....",
			".KKK..KKK.....",
			"..............",
		},
		{
			"......K...K...",
			".....KPK.KPK..",
			".....KOOKOOKK.",
			"....KGOOOOOKOK",
			"..KKKOOPOODKO.",
			".KOOOOOKODDK..",
			"KODOOOOOODOK..",
			"KOODOODOODOK..",
			".KOWOOOOWOK...",
			"..KWK.KWK.....",
			"..KKK.KKK.....",
			"..............",
		},
	},
	WalkRight: {
		{
			"...K...K......",
			"K.KPK.KPK.....",
			"OKKOOKOOK.....",
			".OKOOOOOGK....",
			"..KDOOPOOKKK..",
			"..KDDOKOOOOOK.",
			"..KODOOOOOODOK",
			"..KODOODOODOOK",
			"...KWOOOOOOWK.",
			".....KWK..KWK.",
			".....KKK..KKK.",
			"..............",
		},
		{
			"...K...K......",
			"..KPK.KPK.....",
			".KKOOKOOK.....",
			"KOKOOOOOGK....",
			".OKDOOPOOKKK..",
			"..KDDOKOOOOOK.",
			"..KODOOOOOODOK",
			"..KODOODOODOOK",
			"...KOWOOOOWOK.",
			".....KWK.KWK..",
			".....KKK.KKK..",
			"..............",
		},
	},
	WalkUp: {
		{
			"..K......K....",
			".KPK....KPK...",
			".KOOKKKKOOK...",
			".KOODOODOOK...",
			".KOOOOOOOOK..K",
			".KODOODOOOK.KO",
			".KOOOOOOOOKKO.",
			".KODOODOODKO..",
			".KWOOOOOOWK...",
			".KWK....KWK...",
			".KKK....KKK...",
			"..............",
		},
		{
			"..K......K....",
			".KPK....KPK...",
			".KOOKKKKOOK...",
			".KOODOODOOK...",
			".KOOOOOOOOK...",
			".KODOODOOOK.K.",
			".KOOOOOOOOKKOK",
			".KODOODOODKO..",
			".KOWOOOOWOK...",
			"..KWK..KWK....",
			"..KKK..KKK....",
			"..............",
		},
	},
}

// buildStrips renders the ASCII frames into one sheet image per state.
func buildStrips() map[State]*Strip {
	strips := make(map[State]*Strip, len(catFrames))
	for st, frames := range catFrames {
		fh := len(frames[0])
		fw := len(frames[0][0])
		sheet := ebiten.NewImage(fw*len(frames), fh)

		for f, design := range frames {
			for y, row := range design {
				for x, char := range row {
					if col, ok := catPalette[char]; ok {
						sheet.Set(f*fw+x, y, col)
					}
				}
			}
		}

		dur := 0.12
		if st == IdleBack {
			dur = 0.4
		}
		strips[st] = &Strip{
			Img:      sheet,
			FW:       fw,
			FH:       fh,
			Frames:   len(frames),
			FrameDur: dur,
		}
	}
	return strips
}
