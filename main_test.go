package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.i3wm.org/i3/v4"
)

func TestParseTarget(t *testing.T) {
	tg, err := parseTarget("foot:0.7:0.97")
	require.NoError(t, err)
	require.Equal(t, "foot", tg.selector.String())
	require.Equal(t, 0.7, tg.from)
	require.Equal(t, 0.97, tg.to)

	tg, err = parseTarget("^org:app$:0:1")
	require.NoError(t, err)
	require.Equal(t, "^org:app$", tg.selector.String())

	for _, bad := range []string{"foot", "foot:0.7", "foot:x:1", "foot:0:y", "(:0:1"} {
		_, err := parseTarget(bad)
		require.Error(t, err, bad)
	}
}

func TestNewFader(t *testing.T) {
	t.Cleanup(func() {
		curveName = "linear"
		appIDTargets = nil
		classTargets = nil
	})

	curveName = "nope"
	_, err := newFader(slog.Default())
	require.Error(t, err)

	curveName = "ease-shift"
	appIDTargets = []string{"foot:0.5"}
	_, err = newFader(slog.Default())
	require.ErrorContains(t, err, "--app_id")

	appIDTargets = []string{"foot:0.5:1"}
	classTargets = []string{"Firefox:0.2:0.8"}
	f, err := newFader(slog.Default())
	require.NoError(t, err)
	require.Equal(t, 0, f.Running())
	f.Stop()
}

func TestForEachConVisitsFloating(t *testing.T) {
	tree := &i3.Node{
		Type: i3.Root,
		Nodes: []*i3.Node{{
			Type: i3.WorkspaceNode,
			Nodes: []*i3.Node{
				{ID: 1, Type: i3.Con},
				{ID: 2, Type: i3.Con, Nodes: []*i3.Node{{ID: 3, Type: i3.Con}}},
			},
			FloatingNodes: []*i3.Node{{
				ID:    4,
				Type:  i3.FloatingCon,
				Nodes: []*i3.Node{{ID: 5, Type: i3.Con}},
			}},
		}},
	}

	var ids []i3.NodeID
	forEachCon(tree, func(n *i3.Node) {
		ids = append(ids, n.ID)
	})
	require.Equal(t, []i3.NodeID{1, 2, 3, 5}, ids)
}

func TestGetSocketPathFromEnv(t *testing.T) {
	env := map[string]string{"I3SOCK": "/run/i3.sock"}
	p, err := getSocketPath(func(key string) string { return env[key] })
	require.NoError(t, err)
	require.Equal(t, "/run/i3.sock", p)

	env["SWAYSOCK"] = "/run/sway.sock"
	p, err = getSocketPath(func(key string) string { return env[key] })
	require.NoError(t, err)
	require.Equal(t, "/run/sway.sock", p)
}

func TestConfigApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fps: 60
duration: 350ms
curve: ease-shift
peak: 0.25
app_id:
  - match: foot
    from: 0.7
    to: 0.97
  - match: kitty
    from: 0.5
    to: 1
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	var (
		fps      float64
		duration time.Duration
		curve    string
		peak     float64
		appIDs   []string
	)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64Var(&fps, "fps", 120, "")
	flags.DurationVar(&duration, "duration", time.Second, "")
	flags.StringVar(&curve, "curve", "linear", "")
	flags.Float64Var(&peak, "peak", 0.5, "")
	flags.StringArrayVar(&appIDs, "app_id", nil, "")
	require.NoError(t, flags.Parse([]string{"--fps=30"}))

	require.NoError(t, cfg.apply(flags))

	require.Equal(t, 30.0, fps, "command line wins")
	require.Equal(t, 350*time.Millisecond, duration)
	require.Equal(t, "ease-shift", curve)
	require.Equal(t, 0.25, peak)
	require.Equal(t, []string{"foot:0.7:0.97", "kitty:0.5:1"}, appIDs)
}

func TestConfigUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frames: 3\n"), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestCurveCommand(t *testing.T) {
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"curve", "--duration=2s", "--delta=0.5"})
	t.Cleanup(func() {
		root.SetArgs(nil)
		root.SetOut(nil)
		fadeDuration = 200 * time.Millisecond
		curveDelta = 1.0 / 120
	})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		"0\t0.0000",
		"1\t0.2500",
		"2\t0.5000",
		"3\t0.7500",
		"4\t1.0000",
	}, lines)
}

func TestCollectCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Sfx"), 0o755))
	for _, name := range []string{"b.wav", "a.ogg", "c.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Sfx", name), nil, 0o644))
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"collect", "--root", dir, "--filter", "AudioClip", "--sort", "Sfx"})
	t.Cleanup(func() {
		root.SetArgs(nil)
		root.SetOut(nil)
		collectRoot = "."
		collectFilter = ""
		collectSort = false
	})

	require.NoError(t, root.Execute())
	require.Equal(t, "Sfx/a.ogg\tAudioClip\nSfx/b.wav\tAudioClip\n2 assets\n", out.String())
}

func TestSceneCommand(t *testing.T) {
	dir := t.TempDir()
	build := filepath.Join(dir, "build.yaml")
	require.NoError(t, os.WriteFile(build, []byte(`
scenes:
  - path: Scenes/Boot.scene
    enabled: true
  - path: Scenes/Level1.scene
    enabled: true
`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Scenes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Scenes", "Level1.scene"), []byte("level"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Scenes", "Level1.scene.meta"), []byte("guid: b2c2\n"), 0o644))

	reset := func() {
		root.SetArgs(nil)
		root.SetOut(nil)
		sceneBuild = "build.yaml"
		sceneAssets = "."
		sceneGUID = ""
		scenePath = ""
		sceneLoad = false
		sceneAsync = false
		sceneAdditive = false
	}
	t.Cleanup(reset)

	run := func(args ...string) string {
		t.Helper()
		reset()

		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(append([]string{"scene", "--build", build, "--assets", dir}, args...))

		require.NoError(t, root.Execute())
		return out.String()
	}

	require.Equal(t, "path=Scenes/Level1.scene guid=b2c2 index=1\n", run("--guid", "b2c2"))
	require.Equal(t, "path=Scenes/Level1.scene guid=b2c2 index=1\n", run("--path", "Scenes/Level1.scene", "--load", "--async"))
	require.Equal(t, "path=Scenes/Nope.scene guid= index=-1\n", run("--path", "Scenes/Nope.scene"))
}
