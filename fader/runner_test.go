package fader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunnerUpdate(t *testing.T) {
	r := NewRunner[string]()

	var a, b recorder
	r.Play("a", LinearFade(1, 0, 1, Scaled, a.sink))
	r.Play("b", LinearFade(0.5, 1, 0, Scaled, b.sink))
	require.Equal(t, 2, r.Len())

	r.Update(frameOf(0.5))
	require.False(t, r.Running("b"))
	require.True(t, r.Running("a"))
	require.Equal(t, 0.0, b.last())

	r.Update(frameOf(0.5))
	require.Equal(t, 0, r.Len())
	require.Equal(t, 1.0, a.last())
}

func TestRunnerPlayReplacesAndLeavesLastValue(t *testing.T) {
	r := NewRunner[int]()

	var first recorder
	r.Play(1, LinearFade(1, 0, 1, Scaled, first.sink))
	r.Update(frameOf(0.25))

	r.Play(1, LinearFade(1, 1, 0, Scaled, nil))
	r.Update(frameOf(0.25))

	require.Equal(t, 1, r.Len())
	require.Equal(t, []float64{0, 0.25}, first.values)
}

func TestRunnerImmediateStepIsNotKept(t *testing.T) {
	r := NewRunner[string]()

	var rec recorder
	r.Play("x", LinearFade(0, 0, 1, Scaled, rec.sink))

	require.False(t, r.Running("x"))
	require.Equal(t, []float64{1}, rec.values)
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner[string]()

	var rec recorder
	r.Play("x", LinearFade(1, 0, 1, Scaled, rec.sink))
	r.Update(frameOf(0.5))

	require.True(t, r.Stop("x"))
	require.False(t, r.Stop("x"))

	r.Update(frameOf(0.5))
	require.Equal(t, []float64{0, 0.5}, rec.values)
}
