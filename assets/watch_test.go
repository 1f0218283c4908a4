package assets

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestCollectorWatchRefreshes(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Sounds")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	c := &Collector{
		FS:          os.DirFS(root),
		Folder:      "Sounds",
		Filter:      AudioClip,
		AutoRefresh: true,
	}
	require.NoError(t, c.Refresh())
	require.Equal(t, 0, c.Count())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refreshed := make(chan []Asset, 1)
	errc := make(chan error, 1)
	go func() {
		errc <- c.Watch(ctx, dir, nil, func(list []Asset) {
			select {
			case refreshed <- list:
			default:
			}
		})
	}()

	// The watcher may not be registered yet, so keep writing until it
	// reports a refresh.
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(5 * time.Second)

	var list []Asset
wait:
	for {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hit.wav"), []byte("RIFF"), 0o644))
		select {
		case list = <-refreshed:
			break wait
		case <-tick.C:
		case <-timeout:
			t.Fatal("timed out waiting for refresh")
		}
	}
	require.Equal(t, []Asset{{Path: "Sounds/hit.wav", Name: "hit", Type: AudioClip}}, list)

	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)
}

func TestCollectorWatchMissingDir(t *testing.T) {
	c := &Collector{AutoRefresh: true}

	err := c.Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), nil, nil)
	require.Error(t, err)
}

func TestCollectorWatchCreatedLogsFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "New")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	c := &Collector{Folder: "Sounds", IncludeSubfolders: true}
	c.watchCreated(w, dir, log)
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "watch new folder failed")

	buf.Reset()
	file := filepath.Join(t.TempDir(), "hit.wav")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	c.watchCreated(w, file, log)
	require.Empty(t, buf.String(), "files are not watched")
}
