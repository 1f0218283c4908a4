package fader

// TimeSource selects which frame delta a timeline accumulates.
type TimeSource uint8

const (
	Scaled   TimeSource = iota // frame delta affected by the host time scale
	Unscaled                   // real frame delta
)

// Frame carries the time deltas of one host frame, in seconds.
type Frame struct {
	Delta         float64
	UnscaledDelta float64
}

func (f Frame) delta(src TimeSource) float64 {
	if src == Unscaled {
		return f.UnscaledDelta
	}
	return f.Delta
}

// Clock converts real frame durations into frames using a time scale.
type Clock struct {
	Scale float64
}

// Frame returns the frame for a real delta of d seconds.
func (c Clock) Frame(d float64) Frame {
	scale := c.Scale
	if scale < 0 {
		scale = 0
	}
	return Frame{Delta: d * scale, UnscaledDelta: d}
}

// Sink receives the value of a timeline.
type Sink func(float64)

// Step is a unit of a timeline advanced once per host frame.
type Step interface {
	// Start performs the writes due before the first frame.
	Start()
	// Tick advances the step by one frame and reports whether it is done.
	Tick(Frame) bool
	// Done reports whether the step has completed.
	Done() bool
}

// FadeConfig configures a fade.
type FadeConfig struct {
	// Duration in seconds. Non-positive durations complete on Start.
	Duration float64
	From     float64
	To       float64
	// Curve defaults to Linear.
	Curve  Curve
	Source TimeSource
}

// Fade interpolates a single value from From to To over Duration.
// The terminal write is always exactly To.
type Fade struct {
	cfg     FadeConfig
	sink    Sink
	elapsed float64
	value   float64
	started bool
	done    bool
}

// NewFade creates a fade writing to sink.
func NewFade(cfg FadeConfig, sink Sink) *Fade {
	if cfg.Curve == nil {
		cfg.Curve = Linear
	}
	if sink == nil {
		sink = func(float64) {}
	}
	return &Fade{cfg: cfg, sink: sink}
}

// LinearFade creates a fade with linear interpolation.
func LinearFade(duration, from, to float64, src TimeSource, sink Sink) *Fade {
	return NewFade(FadeConfig{Duration: duration, From: from, To: to, Curve: Linear, Source: src}, sink)
}

// EaseShiftFade creates a fade shaped by the ease-shift curve.
func EaseShiftFade(duration, peak, from, to float64, src TimeSource, sink Sink) *Fade {
	return NewFade(FadeConfig{Duration: duration, From: from, To: to, Curve: EaseShiftCurve(peak), Source: src}, sink)
}

// FadeIn fades from 0 to the given opacity.
func FadeIn(duration, to float64, curve Curve, src TimeSource, sink Sink) *Fade {
	return NewFade(FadeConfig{Duration: duration, From: 0, To: to, Curve: curve, Source: src}, sink)
}

// FadeOut fades from the given opacity to 0.
func FadeOut(duration, from float64, curve Curve, src TimeSource, sink Sink) *Fade {
	return NewFade(FadeConfig{Duration: duration, From: from, To: 0, Curve: curve, Source: src}, sink)
}

// Start writes the initial value. A fade with a non-positive or NaN
// duration writes To and completes immediately.
func (f *Fade) Start() {
	if f.started {
		return
	}
	f.started = true

	if !(f.cfg.Duration > 0) {
		f.write(f.cfg.To)
		f.done = true
		return
	}

	f.write(f.cfg.From)
}

// Tick advances the fade by one frame.
func (f *Fade) Tick(frame Frame) bool {
	f.Advance(frame)
	return f.done
}

// Advance advances the fade by one frame and returns the written value.
// Each call writes the sink once. The call that reaches the duration
// writes To exactly.
func (f *Fade) Advance(frame Frame) (value float64, done bool) {
	if !f.started {
		f.Start()
	}
	if f.done {
		return f.value, true
	}

	f.elapsed += frame.delta(f.cfg.Source)
	if f.elapsed >= f.cfg.Duration {
		f.write(f.cfg.To)
		f.done = true
	} else {
		f.write(lerp(f.cfg.From, f.cfg.To, f.cfg.Curve(clamp01(f.elapsed/f.cfg.Duration))))
	}

	return f.value, f.done
}

// Done reports whether the fade has written its final value.
func (f *Fade) Done() bool {
	return f.done
}

// Value returns the last written value.
func (f *Fade) Value() float64 {
	return f.value
}

// Elapsed returns the accumulated time in seconds.
func (f *Fade) Elapsed() float64 {
	return f.elapsed
}

func (f *Fade) write(v float64) {
	f.value = v
	f.sink(v)
}

// Hold waits for a number of seconds without writing anything.
type Hold struct {
	seconds float64
	source  TimeSource
	elapsed float64
	done    bool
}

// NewHold creates a hold. Non-positive holds complete on Start.
func NewHold(seconds float64, src TimeSource) *Hold {
	return &Hold{seconds: seconds, source: src}
}

// Start completes the hold if there is nothing to wait for.
func (h *Hold) Start() {
	if h.seconds <= 0 {
		h.done = true
	}
}

// Tick accumulates the frame delta.
func (h *Hold) Tick(frame Frame) bool {
	if h.done {
		return true
	}

	h.elapsed += frame.delta(h.source)
	if h.elapsed >= h.seconds {
		h.done = true
	}

	return h.done
}

// Done reports whether the accumulated time reached the hold duration.
func (h *Hold) Done() bool {
	return h.done
}
