package assets

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watch refreshes the collector whenever a file changes under dir, the
// OS directory backing the collector folder. Refreshes happen only while
// AutoRefresh is set. onRefresh, if not nil, receives each new list.
// Watch blocks until ctx is done or the watcher fails.
func (c *Collector) Watch(ctx context.Context, dir string, log *slog.Logger, onRefresh func([]Asset)) error {
	if log == nil {
		log = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := c.addDirs(w, dir); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	var trigger string
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 && c.IncludeSubfolders {
				c.watchCreated(w, event.Name, log)
			}
			if !c.AutoRefresh {
				continue
			}
			// Coalesce bursts of events into one refresh.
			trigger = event.Name
			timer.Reset(debounce)
		case <-timer.C:
			if err := c.Refresh(); err != nil {
				log.Error("asset refresh failed", "folder", c.Folder, "error", err)
				continue
			}
			log.Debug("assets refreshed", "folder", c.Folder, "count", c.Count(), "trigger", trigger)
			if onRefresh != nil {
				onRefresh(c.Assets())
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// watchCreated starts watching a newly created directory tree. A path that
// is not a directory is ignored.
func (c *Collector) watchCreated(w *fsnotify.Watcher, path string, log *slog.Logger) {
	if fi, err := os.Stat(path); err != nil || !fi.IsDir() {
		return
	}
	if err := c.addDirs(w, path); err != nil {
		log.Warn("watch new folder failed", "folder", c.Folder, "path", path, "error", err)
	}
}

// addDirs watches dir and, with IncludeSubfolders, every directory below it.
func (c *Collector) addDirs(w *fsnotify.Watcher, dir string) error {
	if !c.IncludeSubfolders {
		return w.Add(dir)
	}

	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}
