package fader

import "time"

// Fader constants.
const (
	DefaultFrom     = 0.7
	DefaultTo       = 1.0
	DefaultFPS      = 120.0
	DefaultDuration = 200 * time.Millisecond
	DefaultPeak     = 0.5
)

// VisibleThreshold is the opacity at and above which a target counts as visible.
const VisibleThreshold = 0.99

// Ease-shift peak bounds.
const (
	MinPeak = 0.01
	MaxPeak = 0.99
)
