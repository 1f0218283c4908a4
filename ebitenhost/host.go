// Package ebitenhost drives fade timelines from an Ebitengine game loop.
//
// Call [Host.Update] from the game's Update method. Each call advances every
// playing step by one tick of 1/TPS seconds, scaled by the host clock for
// steps that use scaled time.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mgnsk/conveniences/fader"
	"github.com/mgnsk/conveniences/ui"
)

// Host owns the running fades of a game.
type Host struct {
	Clock  fader.Clock
	runner *fader.Runner[string]
	tps    func() int
}

// New creates a host with a time scale of 1.
func New() *Host {
	return &Host{
		Clock:  fader.Clock{Scale: 1},
		runner: fader.NewRunner[string](),
		tps:    ebiten.TPS,
	}
}

// Play starts step under name, replacing a step already playing under it.
func (h *Host) Play(name string, step fader.Step) {
	h.runner.Play(name, step)
}

// Stop aborts the step playing under name.
func (h *Host) Stop(name string) bool {
	return h.runner.Stop(name)
}

// Playing reports whether a step is playing under name.
func (h *Host) Playing(name string) bool {
	return h.runner.Running(name)
}

// Update advances all playing steps by one tick.
func (h *Host) Update() {
	tps := h.tps()
	if tps <= 0 {
		return
	}
	h.runner.Update(h.Clock.Frame(1 / float64(tps)))
}

// ColorScale returns the color scale for drawing a graphic.
func ColorScale(g *ui.Graphic) ebiten.ColorScale {
	var cs ebiten.ColorScale
	c := g.Color
	// ColorScale is premultiplied.
	cs.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	return cs
}

// DrawGraphic draws img onto dst tinted by the graphic color and scaled by
// the alpha of the enclosing group. A nil group is fully opaque.
func DrawGraphic(dst, img *ebiten.Image, g *ui.Graphic, group *ui.CanvasGroup, geoM ebiten.GeoM) {
	op := &ebiten.DrawImageOptions{GeoM: geoM}
	op.ColorScale = groupColorScale(g, group)
	dst.DrawImage(img, op)
}

func groupColorScale(g *ui.Graphic, group *ui.CanvasGroup) ebiten.ColorScale {
	cs := ColorScale(g)
	if group != nil {
		cs.ScaleAlpha(float32(group.Alpha))
	}
	return cs
}
