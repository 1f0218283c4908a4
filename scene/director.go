package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// ErrNotInBuild is returned for build indices without a scene.
var ErrNotInBuild = errors.New("scene not in build")

// readyProgress is where the progress of an async load stops until the
// scene is allowed to activate.
const readyProgress = 0.9

// AsyncOperation tracks an asynchronous scene load.
type AsyncOperation struct {
	// AllowSceneActivation lets the operation complete once loaded.
	AllowSceneActivation bool

	index    int
	path     string
	mode     LoadMode
	progress float64
	done     bool
}

// Progress returns the load progress in [0, 1].
func (op *AsyncOperation) Progress() float64 {
	return op.progress
}

// IsDone reports whether the scene was activated.
func (op *AsyncOperation) IsDone() bool {
	return op.done
}

// Path returns the path of the loading scene.
func (op *AsyncOperation) Path() string {
	return op.path
}

// Director is an in-memory Manager. It keeps the list of loaded scenes
// and advances async loads on Update.
type Director struct {
	// Step is the progress an async load makes per Update.
	Step float64
	// OnActivate, if not nil, is called for each activated scene.
	OnActivate func(index int, path string, mode LoadMode)

	build   *BuildSettings
	log     *slog.Logger
	loaded  []string
	pending []*AsyncOperation
}

// NewDirector creates a director for build.
func NewDirector(build *BuildSettings, log *slog.Logger) *Director {
	if log == nil {
		log = slog.Default()
	}
	return &Director{
		Step:  0.5,
		build: build,
		log:   log,
	}
}

// LoadScene activates the scene at index immediately.
func (d *Director) LoadScene(index int, mode LoadMode) error {
	path, ok := d.build.PathOf(index)
	if !ok {
		return fmt.Errorf("load scene %d: %w", index, ErrNotInBuild)
	}

	d.activate(index, path, mode)
	return nil
}

// LoadSceneAsync queues the scene at index. It returns nil if the index
// has no scene.
func (d *Director) LoadSceneAsync(index int, mode LoadMode) *AsyncOperation {
	path, ok := d.build.PathOf(index)
	if !ok {
		d.log.Warn("async load of unknown scene", "index", index)
		return nil
	}

	op := &AsyncOperation{
		AllowSceneActivation: true,
		index:                index,
		path:                 path,
		mode:                 mode,
	}
	d.pending = append(d.pending, op)

	return op
}

// Update advances the oldest pending load. Loads complete one at a time in
// the order they were queued; a load waiting for activation blocks the
// loads queued after it.
func (d *Director) Update() {
	if len(d.pending) == 0 {
		return
	}

	op := d.pending[0]
	if op.progress < readyProgress {
		op.progress = min(op.progress+d.Step, readyProgress)
	}
	if op.progress < readyProgress || !op.AllowSceneActivation {
		return
	}

	op.progress = 1
	op.done = true
	d.pending = d.pending[1:]
	d.activate(op.index, op.path, op.mode)
}

// Loaded returns the paths of the loaded scenes in load order.
func (d *Director) Loaded() []string {
	return slices.Clone(d.loaded)
}

// Pending returns the number of unfinished async loads.
func (d *Director) Pending() int {
	return len(d.pending)
}

func (d *Director) activate(index int, path string, mode LoadMode) {
	if mode == Single {
		d.loaded = d.loaded[:0]
	}
	d.loaded = append(d.loaded, path)

	d.log.Info("scene activated", "index", index, "path", path, "mode", mode)
	if d.OnActivate != nil {
		d.OnActivate(index, path, mode)
	}
}
