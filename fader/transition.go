package fader

import "regexp"

type transition struct {
	selector *regexp.Regexp
	from     float64
	to       float64
	curve    Curve
}

func newTransition(selector *regexp.Regexp, from, to float64, curve Curve) *transition {
	return &transition{
		selector: selector,
		from:     from,
		to:       to,
		curve:    curve,
	}
}

// fade creates a fade of the transition lasting duration seconds.
func (t *transition) fade(duration float64, sink Sink) *Fade {
	return NewFade(FadeConfig{
		Duration: duration,
		From:     t.from,
		To:       t.to,
		Curve:    t.curve,
		Source:   Unscaled,
	}, sink)
}

type transitionList []*transition

func (list transitionList) find(s string) *transition {
	for _, t := range list {
		if t.selector.MatchString(s) {
			return t
		}
	}
	return nil
}
