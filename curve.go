package main

import (
	"fmt"

	"github.com/mgnsk/conveniences/fader"
	"github.com/spf13/cobra"
)

var (
	curveFrom  = 0.0
	curveTo    = 1.0
	curveDelta = 1.0 / fader.DefaultFPS
	curveHold  float64
	curveOut   float64
)

func init() {
	curveCmd.Flags().Float64Var(&curveFrom, "from", curveFrom, "Start value")
	curveCmd.Flags().Float64Var(&curveTo, "to", curveTo, "End value")
	curveCmd.Flags().Float64Var(&curveDelta, "delta", curveDelta, "Frame delta in seconds")
	curveCmd.Flags().Float64Var(&curveHold, "hold", curveHold, "Seconds to hold before fading out; implies a fade-in-out from 0 to --to")
	curveCmd.Flags().Float64Var(&curveOut, "out", curveOut, "Fade-out duration in seconds; implies a fade-in-out from 0 to --to")
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Prints the values a fade writes on each frame.",
	RunE: func(c *cobra.Command, args []string) error {
		if curveDelta <= 0 {
			return fmt.Errorf("invalid frame delta: %v", curveDelta)
		}

		curve, err := fader.CurveByName(curveName, peak)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		frame := 0
		sink := func(v float64) {
			fmt.Fprintf(out, "%d\t%.4f\n", frame, v)
		}

		var step fader.Step
		if curveHold > 0 || curveOut > 0 {
			step = fader.FadeInOut(fader.FadeInOutConfig{
				In:      fadeDuration.Seconds(),
				Hold:    curveHold,
				Out:     curveOut,
				Opacity: curveTo,
				Curve:   curve,
			}, sink)
		} else {
			step = fader.NewFade(fader.FadeConfig{
				Duration: fadeDuration.Seconds(),
				From:     curveFrom,
				To:       curveTo,
				Curve:    curve,
			}, sink)
		}

		step.Start()
		for !step.Done() {
			frame++
			step.Tick(fader.Frame{Delta: curveDelta, UnscaledDelta: curveDelta})
		}

		return nil
	},
}
