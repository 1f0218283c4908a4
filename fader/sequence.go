package fader

// SequenceStep runs steps strictly one after another. Each frame is
// consumed by exactly one step; steps that complete on Start do not
// consume a frame.
type SequenceStep struct {
	steps []Step
	cur   int
	ticks int
}

// Sequence creates a step running steps in order.
func Sequence(steps ...Step) *SequenceStep {
	return &SequenceStep{steps: steps}
}

// Start starts the first step and skips any that complete immediately.
func (s *SequenceStep) Start() {
	s.skip()
}

func (s *SequenceStep) skip() {
	for s.cur < len(s.steps) {
		s.steps[s.cur].Start()
		if !s.steps[s.cur].Done() {
			return
		}
		s.cur++
	}
}

// Tick advances the current step. When it completes the next step is
// started, but only ticked from the following frame on.
func (s *SequenceStep) Tick(frame Frame) bool {
	if s.cur == 0 && s.ticks == 0 {
		s.skip()
	}
	if s.Done() {
		return true
	}

	s.ticks++
	if s.steps[s.cur].Tick(frame) {
		s.cur++
		s.skip()
	}

	return s.Done()
}

// Done reports whether every step has completed.
func (s *SequenceStep) Done() bool {
	return s.cur >= len(s.steps)
}

// Ticks returns the number of frames consumed so far.
func (s *SequenceStep) Ticks() int {
	return s.ticks
}

// FadeInOutConfig configures a fade-in, hold, fade-out sequence.
type FadeInOutConfig struct {
	In      float64
	Hold    float64
	Out     float64
	Opacity float64
	Curve   Curve
	Source  TimeSource
}

// FadeInOut fades sink from 0 to Opacity, holds, then fades back to 0.
func FadeInOut(cfg FadeInOutConfig, sink Sink) *SequenceStep {
	return Sequence(
		FadeIn(cfg.In, cfg.Opacity, cfg.Curve, cfg.Source, sink),
		NewHold(cfg.Hold, cfg.Source),
		FadeOut(cfg.Out, cfg.Opacity, cfg.Curve, cfg.Source, sink),
	)
}

// GatedFadeInOut is FadeInOut with the gate applied around both fades.
func GatedFadeInOut(cfg FadeInOutConfig, sink Sink, gate Gate, enabled bool) *SequenceStep {
	return Sequence(
		Gated(FadeIn(cfg.In, cfg.Opacity, cfg.Curve, cfg.Source, sink), gate, enabled),
		NewHold(cfg.Hold, cfg.Source),
		Gated(FadeOut(cfg.Out, cfg.Opacity, cfg.Curve, cfg.Source, sink), gate, enabled),
	)
}
