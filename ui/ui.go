// Package ui provides fadeable UI targets and the fade helpers that drive them.
//
// A Graphic fades its color alpha. A CanvasGroup fades a group alpha and can
// toggle its interactable and blocks-input flags around the fade, so that a
// group accepts input only while fully visible.
//
// Every helper returns a [fader.Step]; the host advances it once per frame,
// directly or through a [fader.Runner].
package ui

import "github.com/mgnsk/conveniences/fader"

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Graphic is a colored element whose alpha channel can be faded.
type Graphic struct {
	Color Color
}

// NewGraphic creates a graphic with the given color.
func NewGraphic(c Color) *Graphic {
	return &Graphic{Color: c}
}

// AlphaSink returns a sink writing the alpha channel, leaving RGB untouched.
func (g *Graphic) AlphaSink() fader.Sink {
	return func(alpha float64) {
		c := g.Color
		c.A = alpha
		g.Color = c
	}
}

// CanvasGroup is a group of elements sharing an alpha and input flags.
type CanvasGroup struct {
	Alpha        float64
	Interactable bool
	BlocksInput  bool
}

// NewCanvasGroup creates a fully visible, interactive group.
func NewCanvasGroup() *CanvasGroup {
	return &CanvasGroup{Alpha: 1, Interactable: true, BlocksInput: true}
}

// AlphaSink returns a sink writing the group alpha.
func (c *CanvasGroup) AlphaSink() fader.Sink {
	return func(alpha float64) {
		c.Alpha = alpha
	}
}

// SetInteractable implements fader.Gate.
func (c *CanvasGroup) SetInteractable(v bool) {
	c.Interactable = v
}

// SetBlocksInput implements fader.Gate.
func (c *CanvasGroup) SetBlocksInput(v bool) {
	c.BlocksInput = v
}
