package fader

// Gate receives the interactivity flags of a group-level target.
type Gate interface {
	SetInteractable(bool)
	SetBlocksInput(bool)
}

// Visible reports whether an opacity counts as fully visible.
func Visible(opacity float64) bool {
	return opacity >= VisibleThreshold
}

func applyGate(g Gate, opacity float64) {
	v := Visible(opacity)
	g.SetInteractable(v)
	g.SetBlocksInput(v)
}

// GatedStep wraps a fade and toggles a gate from the fade endpoints:
// before the first write using From, after the terminal write using To.
type GatedStep struct {
	fade    *Fade
	gate    Gate
	enabled bool
	closed  bool
}

// Gated wraps fade with gate. When enabled is false the gate is left untouched.
func Gated(fade *Fade, gate Gate, enabled bool) *GatedStep {
	return &GatedStep{fade: fade, gate: gate, enabled: enabled && gate != nil}
}

// Start applies the gate for the start endpoint and starts the fade.
func (s *GatedStep) Start() {
	if s.fade.started {
		return
	}
	if s.enabled {
		applyGate(s.gate, s.fade.cfg.From)
	}
	s.fade.Start()
	s.finish()
}

// Tick advances the wrapped fade.
func (s *GatedStep) Tick(frame Frame) bool {
	if !s.fade.started {
		s.Start()
	}
	s.fade.Tick(frame)
	s.finish()
	return s.Done()
}

// Done reports whether the fade completed and the gate was applied.
func (s *GatedStep) Done() bool {
	return s.fade.Done()
}

// Fade returns the wrapped fade.
func (s *GatedStep) Fade() *Fade {
	return s.fade
}

func (s *GatedStep) finish() {
	if s.closed || !s.fade.Done() {
		return
	}
	s.closed = true
	if s.enabled {
		applyGate(s.gate, s.fade.cfg.To)
	}
}
