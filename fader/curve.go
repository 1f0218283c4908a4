package fader

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// Curve maps an elapsed fraction in [0, 1] to an interpolation fraction.
type Curve func(t float64) float64

// ErrUnknownCurve is returned for curve names that are not registered.
var ErrUnknownCurve = errors.New("unknown curve")

// Linear is the identity curve.
var Linear Curve = ease.Linear

var curves = map[string]Curve{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-bounce":   ease.OutBounce,
}

// EaseShiftName is the registry name of the ease-shift curve.
const EaseShiftName = "ease-shift"

// CurveByName returns a registered curve. The peak is only used by ease-shift.
func CurveByName(name string, peak float64) (Curve, error) {
	if name == EaseShiftName {
		return EaseShiftCurve(peak), nil
	}

	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}

	return c, nil
}

// CurveNames lists the registered curve names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curves)+1)
	for name := range curves {
		names = append(names, name)
	}
	names = append(names, EaseShiftName)
	sort.Strings(names)

	return names
}

// EaseShift is a piecewise quadratic that accelerates from 0 towards the
// peak and decelerates from the peak to 1. ease(0) = 0, ease(peak) = peak
// and ease(1) = 1. The slope is not continuous at the peak unless peak is 0.5.
func EaseShift(t, peak float64) float64 {
	t = clamp01(t)
	p := clamp(peak, MinPeak, MaxPeak)

	if t < p {
		x := t / p
		return x * x * p
	}

	x := (1 - t) / (1 - p)
	return 1 - x*x*(1-p)
}

// EaseShiftCurve binds EaseShift to a peak.
func EaseShiftCurve(peak float64) Curve {
	return func(t float64) float64 {
		return EaseShift(t, peak)
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp01(t)
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
