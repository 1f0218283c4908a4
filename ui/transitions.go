package ui

import "github.com/mgnsk/conveniences/fader"

// Options shared by the fade helpers.
type Options struct {
	Source fader.TimeSource
	// SetInteractable toggles canvas group flags around the fade.
	SetInteractable bool
}

func easeShift(peak float64) fader.Curve {
	return fader.EaseShiftCurve(peak)
}

// LerpFadeIn linearly fades a graphic from 0 to endOpacity.
func LerpFadeIn(g *Graphic, duration, endOpacity float64, opt Options) fader.Step {
	return fader.FadeIn(duration, endOpacity, fader.Linear, opt.Source, g.AlphaSink())
}

// LerpFadeOut linearly fades a graphic from startOpacity to 0.
func LerpFadeOut(g *Graphic, duration, startOpacity float64, opt Options) fader.Step {
	return fader.FadeOut(duration, startOpacity, fader.Linear, opt.Source, g.AlphaSink())
}

// LerpFadeInOut fades a graphic in, holds for hold seconds and fades it out.
func LerpFadeInOut(g *Graphic, hold, in, out, opacity float64, opt Options) *fader.SequenceStep {
	return fader.FadeInOut(fader.FadeInOutConfig{
		In: in, Hold: hold, Out: out, Opacity: opacity,
		Curve: fader.Linear, Source: opt.Source,
	}, g.AlphaSink())
}

// EaseShiftFadeIn fades a graphic from 0 to endOpacity along the ease-shift curve.
func EaseShiftFadeIn(g *Graphic, duration, peak, endOpacity float64, opt Options) fader.Step {
	return fader.FadeIn(duration, endOpacity, easeShift(peak), opt.Source, g.AlphaSink())
}

// EaseShiftFadeOut fades a graphic from startOpacity to 0 along the ease-shift curve.
func EaseShiftFadeOut(g *Graphic, duration, peak, startOpacity float64, opt Options) fader.Step {
	return fader.FadeOut(duration, startOpacity, easeShift(peak), opt.Source, g.AlphaSink())
}

// EaseShiftFadeInOut is LerpFadeInOut along the ease-shift curve.
func EaseShiftFadeInOut(g *Graphic, peak, hold, in, out, opacity float64, opt Options) *fader.SequenceStep {
	return fader.FadeInOut(fader.FadeInOutConfig{
		In: in, Hold: hold, Out: out, Opacity: opacity,
		Curve: easeShift(peak), Source: opt.Source,
	}, g.AlphaSink())
}

// LerpFadeGroupIn linearly fades a canvas group from 0 to endOpacity.
func LerpFadeGroupIn(c *CanvasGroup, duration, endOpacity float64, opt Options) fader.Step {
	return fader.Gated(fader.FadeIn(duration, endOpacity, fader.Linear, opt.Source, c.AlphaSink()), c, opt.SetInteractable)
}

// LerpFadeGroupOut linearly fades a canvas group from startOpacity to 0.
func LerpFadeGroupOut(c *CanvasGroup, duration, startOpacity float64, opt Options) fader.Step {
	return fader.Gated(fader.FadeOut(duration, startOpacity, fader.Linear, opt.Source, c.AlphaSink()), c, opt.SetInteractable)
}

// LerpFadeGroupInOut fades a canvas group in, holds and fades it out.
func LerpFadeGroupInOut(c *CanvasGroup, hold, in, out, opacity float64, opt Options) *fader.SequenceStep {
	return fader.GatedFadeInOut(fader.FadeInOutConfig{
		In: in, Hold: hold, Out: out, Opacity: opacity,
		Curve: fader.Linear, Source: opt.Source,
	}, c.AlphaSink(), c, opt.SetInteractable)
}

// EaseShiftFadeGroupIn fades a canvas group from 0 to endOpacity along the ease-shift curve.
func EaseShiftFadeGroupIn(c *CanvasGroup, duration, peak, endOpacity float64, opt Options) fader.Step {
	return fader.Gated(fader.FadeIn(duration, endOpacity, easeShift(peak), opt.Source, c.AlphaSink()), c, opt.SetInteractable)
}

// EaseShiftFadeGroupOut fades a canvas group from startOpacity to 0 along the ease-shift curve.
func EaseShiftFadeGroupOut(c *CanvasGroup, duration, peak, startOpacity float64, opt Options) fader.Step {
	return fader.Gated(fader.FadeOut(duration, startOpacity, easeShift(peak), opt.Source, c.AlphaSink()), c, opt.SetInteractable)
}

// EaseShiftFadeGroupInOut is LerpFadeGroupInOut along the ease-shift curve.
func EaseShiftFadeGroupInOut(c *CanvasGroup, peak, hold, in, out, opacity float64, opt Options) *fader.SequenceStep {
	return fader.GatedFadeInOut(fader.FadeInOutConfig{
		In: in, Hold: hold, Out: out, Opacity: opacity,
		Curve: easeShift(peak), Source: opt.Source,
	}, c.AlphaSink(), c, opt.SetInteractable)
}
