package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/mgnsk/conveniences/fader"
	"github.com/mitchellh/go-ps"
	"github.com/spf13/cobra"
	"go.i3wm.org/i3/v4"
)

var (
	defaultFrom  = fader.DefaultFrom
	defaultTo    = fader.DefaultTo
	appIDTargets []string
	classTargets []string
)

func init() {
	windowsCmd.Flags().Float64Var(&defaultFrom, "default-from", defaultFrom, "Default opacity when fade starts")
	windowsCmd.Flags().Float64Var(&defaultTo, "default-to", defaultTo, "Default final opacity of fade")
	windowsCmd.Flags().StringArrayVar(&appIDTargets, "app_id", appIDTargets, `Override fade settings per container app_id. Format: "regex:from:to". Example: --app_id="foot:0.7:0.97" --app_id="org.telegram.desktop:0.8:1.0"`)
	windowsCmd.Flags().StringArrayVar(&classTargets, "class", classTargets, `Override fade settings per container class. Format: "regex:from:to". Example: --class="FreeTube:0.7:1.0" --class="Firefox:0.8:1.0"`)
}

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "Fades in sway or i3 windows on workspace focus and window new events.",
	RunE: func(c *cobra.Command, args []string) error {
		log := newLogger(logLevel, logFormat, os.Stderr)

		socketPath, err := getSocketPath(os.Getenv)
		if err != nil {
			return err
		}
		log.Debug("using ipc socket", "path", socketPath)

		i3.SocketPathHook = func() (string, error) {
			return socketPath, nil
		}

		f, err := newFader(log)
		if err != nil {
			return err
		}
		defer f.Stop()

		tree, err := i3.GetTree()
		if err != nil {
			return err
		}
		forEachCon(tree.Root, f.StartFade)

		errs := make(chan error, 1)
		go func() {
			errs <- subscribe(c.Context(), f, log)
		}()

		select {
		case <-c.Context().Done():
			return nil
		case err := <-errs:
			return err
		}
	},
}

// subscribe fades new windows and the windows of a focused workspace until
// the subscription ends.
func subscribe(ctx context.Context, f *fader.Fader, log *slog.Logger) error {
	r := i3.Subscribe(i3.WorkspaceEventType, i3.WindowEventType)
	context.AfterFunc(ctx, func() {
		r.Close()
	})

	for r.Next() {
		switch ev := r.Event().(type) {
		case *i3.WindowEvent:
			if ev.Change == "new" {
				log.Debug("window new", "con_id", ev.Container.ID)
				f.StartFade(&ev.Container)
			}
		case *i3.WorkspaceEvent:
			if ev.Change == "focus" {
				log.Debug("workspace focus", "name", ev.Current.Name)
				forEachCon(&ev.Current, f.StartFade)
			}
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	if err := r.Close(); err != nil {
		return fmt.Errorf("event subscription: %w", err)
	}
	return errors.New("event subscription closed")
}

func newFader(log *slog.Logger) (*fader.Fader, error) {
	curve, err := fader.CurveByName(curveName, peak)
	if err != nil {
		return nil, err
	}

	builder := fader.New().
		WithFPS(fps).
		WithFadeDuration(fadeDuration).
		WithDefaultFade(defaultFrom, defaultTo).
		WithCurve(curve).
		WithLogger(log)

	for _, flagValue := range appIDTargets {
		t, err := parseTarget(flagValue)
		if err != nil {
			return nil, fmt.Errorf("--app_id: %w", err)
		}
		builder = builder.WithContainerAppIDFade(t.selector, t.from, t.to)
	}

	for _, flagValue := range classTargets {
		t, err := parseTarget(flagValue)
		if err != nil {
			return nil, fmt.Errorf("--class: %w", err)
		}
		builder = builder.WithContainerClassFade(t.selector, t.from, t.to)
	}

	return builder.Build(), nil
}

// target is a parsed "regex:from:to" override.
type target struct {
	selector *regexp.Regexp
	from, to float64
}

// parseTarget splits from the right so the regex may contain colons.
func parseTarget(flagValue string) (target, error) {
	rest, toValue, ok := cutLast(flagValue, ":")
	if !ok {
		return target{}, fmt.Errorf("invalid target %q: want regex:from:to", flagValue)
	}
	match, fromValue, ok := cutLast(rest, ":")
	if !ok {
		return target{}, fmt.Errorf("invalid target %q: want regex:from:to", flagValue)
	}

	from, err := strconv.ParseFloat(fromValue, 64)
	if err != nil {
		return target{}, fmt.Errorf("invalid from value in target %q: %w", flagValue, err)
	}

	to, err := strconv.ParseFloat(toValue, 64)
	if err != nil {
		return target{}, fmt.Errorf("invalid to value in target %q: %w", flagValue, err)
	}

	re, err := regexp.Compile(match)
	if err != nil {
		return target{}, fmt.Errorf("invalid regex in target %q: %w", flagValue, err)
	}

	return target{selector: re, from: from, to: to}, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// getSocketPath prefers the socket exported into the session environment
// and falls back to asking a running window manager.
func getSocketPath(getenv func(string) string) (string, error) {
	for _, key := range []string{"SWAYSOCK", "I3SOCK"} {
		if p := getenv(key); p != "" {
			return p, nil
		}
	}

	procs, err := ps.Processes()
	if err != nil {
		return "", err
	}

	for _, wm := range []string{"sway", "i3"} {
		if slices.ContainsFunc(procs, func(p ps.Process) bool {
			return p.Executable() == wm
		}) {
			out, err := exec.Command(wm, "--get-socketpath").CombinedOutput()
			return strings.TrimSpace(string(out)), err
		}
	}

	return "", errors.New("could not find a running sway or i3 process")
}

// forEachCon calls f for every container in the tree below node, including
// floating ones.
func forEachCon(node *i3.Node, f func(*i3.Node)) {
	if node.Type == i3.Con {
		f(node)
	}
	for _, n := range node.Nodes {
		forEachCon(n, f)
	}
	for _, n := range node.FloatingNodes {
		forEachCon(n, f)
	}
}
