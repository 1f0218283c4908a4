package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mgnsk/conveniences/fader"
	"github.com/spf13/cobra"
)

var (
	fps                        = fader.DefaultFPS
	fadeDuration time.Duration = fader.DefaultDuration
	curveName                  = "linear"
	peak                       = fader.DefaultPeak
	configPath   string
	logLevel     = "info"
	logFormat    = "text"
)

func init() {
	root.PersistentFlags().Float64Var(&fps, "fps", fps, "Frames per second for the fade")
	root.PersistentFlags().DurationVarP(&fadeDuration, "duration", "d", fadeDuration, "Duration of the fade")
	root.PersistentFlags().StringVar(&curveName, "curve", curveName, "Fade curve, one of: "+strings.Join(fader.CurveNames(), ", "))
	root.PersistentFlags().Float64Var(&peak, "peak", peak, "Peak position of the ease-shift curve, clamped to [0.01, 0.99]")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "YAML config file; flags given on the command line take precedence")
	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logFormat, "Log format: text or json")

	root.AddCommand(curveCmd, collectCmd, sceneCmd, windowsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

var root = &cobra.Command{
	Use:   "conveniences",
	Short: "Opacity fades, asset collection and scene references.",
	Long: `Tools around the conveniences packages.

  curve    prints the values a fade writes on each frame
  collect  lists the assets of a folder by type
  scene    resolves a scene reference to its build index
  windows  runs fades on sway or i3 windows, one of the fade hosts`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		return cfg.apply(c.Flags())
	},
}
