package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera owns zoom & pan parameters for the world view.
type Camera struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

func NewCamera() *Camera { return &Camera{Scale: 1.0} }

// ScreenPos converts world coordinates to screen-space using the current
// camera transform.
func (c *Camera) ScreenPos(x, y float64) (sx, sy float64) {
	sx = x*c.Scale + c.OffsetX
	sy = y*c.Scale + c.OffsetY
	return
}

// GeoM returns the affine transform applied to world-space drawings, with
// the translation rounded to integer pixels so strip edges stay crisp.
func (c *Camera) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(c.Scale, c.Scale)
	m.Translate(math.Round(c.OffsetX), math.Round(c.OffsetY))
	return m
}

// Snap clamps the camera offsets to integer pixels and limits their
// magnitude so panning across huge distances doesn't accumulate
// floating-point error.
func (c *Camera) Snap() {
	c.OffsetX = math.Round(c.OffsetX)
	c.OffsetY = math.Round(c.OffsetY)
	const limit = 1e6
	if c.OffsetX > limit {
		c.OffsetX = limit
	} else if c.OffsetX < -limit {
		c.OffsetX = -limit
	}
	if c.OffsetY > limit {
		c.OffsetY = limit
	} else if c.OffsetY < -limit {
		c.OffsetY = -limit
	}
}

// HandleWheel zooms toward the cursor by reading the wheel state.
func (c *Camera) HandleWheel() {
	_, wheelY := wheel()
	if wheelY == 0 {
		return
	}
	mx, my := cursorPosition()
	wx := (float64(mx) - c.OffsetX) / c.Scale
	wy := (float64(my) - c.OffsetY) / c.Scale
	const (
		zoomFactor      = 1.05
		zoomSensitivity = 0.1
		minScale        = 0.25
		maxScale        = 4.0
	)
	newScale := c.Scale * math.Pow(zoomFactor, wheelY*zoomSensitivity)
	if newScale < minScale {
		newScale = minScale
	} else if newScale > maxScale {
		newScale = maxScale
	}
	c.OffsetX = float64(mx) - wx*newScale
	c.OffsetY = float64(my) - wy*newScale
	c.Scale = newScale
	c.Snap()
}
