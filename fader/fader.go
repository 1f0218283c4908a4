package fader

import (
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"go.i3wm.org/i3/v4"
)

// Fader runs fades on sway or i3 containers.
type Fader struct {
	mu         sync.Mutex
	frameDur   time.Duration
	fadeDur    time.Duration
	appFades   transitionList
	classFades transitionList
	cmd        Commander
	log        *slog.Logger
	running    map[i3.NodeID]*fadeJob
}

// StartFade starts a preconfigured fade on container. A fade already
// running on the same container is stopped first.
func (h *Fader) StartFade(node *i3.Node) {
	if node.Type != i3.Con {
		panic(fmt.Sprintf("StartFade: expected node type 'con', got %s", node.Type))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if job, ok := h.running[node.ID]; ok {
		job.Stop()
		delete(h.running, node.ID)
	}

	// Clean up finished jobs.
	for id, job := range h.running {
		select {
		case <-job.Done():
			delete(h.running, id)
		default:
		}
	}

	t := h.getTransition(node)
	if t == nil {
		return
	}

	job := newFadeJob(t, int64(node.ID), h.cmd, h.frameDur, h.fadeDur)
	h.running[node.ID] = job

	go func() {
		if err := job.Run(); err != nil {
			h.log.Error("fade failed", "con_id", node.ID, "error", err)
		}
	}()
}

// Running returns the number of fade jobs that have not finished.
func (h *Fader) Running() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, job := range h.running {
		select {
		case <-job.Done():
		default:
			n++
		}
	}
	return n
}

// Wait blocks until all started fades have finished.
func (h *Fader) Wait() {
	h.mu.Lock()
	jobs := make([]*fadeJob, 0, len(h.running))
	for _, job := range h.running {
		jobs = append(jobs, job)
	}
	h.mu.Unlock()

	for _, job := range jobs {
		<-job.Done()
	}
}

// Stop aborts all running fades.
func (h *Fader) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, job := range h.running {
		job.Stop()
		delete(h.running, id)
	}
}

func (h *Fader) getTransition(con *i3.Node) *transition {
	if con.AppID != "" {
		if t := h.appFades.find(con.AppID); t != nil {
			return t
		}
	}

	return h.classFades.find(con.WindowProperties.Class)
}

type i3Commander struct{}

func (i3Commander) RunCommand(cmd string) error {
	_, err := i3.RunCommand(cmd)
	return err
}

type options struct {
	fps         float64
	fadeDur     time.Duration
	from, to    float64
	curve       Curve
	cmd         Commander
	log         *slog.Logger
	transitions []transitionOptions
}

type transitionOptions struct {
	appID, class *regexp.Regexp
	from, to     float64
}

// Builder builds a fader.
type Builder func(*options)

// New creates a new fader.
func New() Builder {
	return func(o *options) {}
}

// WithFadeDuration configures the fade duration.
func (build Builder) WithFadeDuration(d time.Duration) Builder {
	return func(o *options) {
		build(o)

		if d > 0 {
			o.fadeDur = d
		}
	}
}

// WithFPS configures the framerate for transitions.
func (build Builder) WithFPS(fps float64) Builder {
	return func(o *options) {
		build(o)

		if fps > 0 {
			o.fps = fps
		}
	}
}

// WithDefaultFade configures the opacities of containers without a matching target.
func (build Builder) WithDefaultFade(from, to float64) Builder {
	return func(o *options) {
		build(o)

		o.from = from
		o.to = to
	}
}

// WithCurve configures the curve shared by all transitions.
func (build Builder) WithCurve(c Curve) Builder {
	return func(o *options) {
		build(o)

		if c != nil {
			o.curve = c
		}
	}
}

// WithCommander configures where opacity commands are sent. Defaults to the i3 IPC socket.
func (build Builder) WithCommander(cmd Commander) Builder {
	return func(o *options) {
		build(o)

		o.cmd = cmd
	}
}

// WithLogger configures the logger for failed fades.
func (build Builder) WithLogger(log *slog.Logger) Builder {
	return func(o *options) {
		build(o)

		o.log = log
	}
}

// WithContainerAppIDFade configures a container's opacities by app_id.
func (build Builder) WithContainerAppIDFade(r *regexp.Regexp, from, to float64) Builder {
	return func(o *options) {
		build(o)

		o.transitions = append(o.transitions, transitionOptions{
			appID: r,
			from:  from,
			to:    to,
		})
	}
}

// WithContainerClassFade configures a container's opacities by class.
func (build Builder) WithContainerClassFade(r *regexp.Regexp, from, to float64) Builder {
	return func(o *options) {
		build(o)

		o.transitions = append(o.transitions, transitionOptions{
			class: r,
			from:  from,
			to:    to,
		})
	}
}

// Build the fader.
func (build Builder) Build() *Fader {
	o := options{
		fps:     DefaultFPS,
		fadeDur: DefaultDuration,
		from:    DefaultFrom,
		to:      DefaultTo,
		curve:   Linear,
		cmd:     i3Commander{},
	}

	build(&o)

	if o.log == nil {
		o.log = slog.Default()
	}

	frameDur := time.Duration((1.0 / o.fps) * float64(time.Second))

	appFades := transitionList{}
	classFades := transitionList{}

	for _, opt := range o.transitions {
		if opt.appID != nil {
			appFades = append(appFades, newTransition(opt.appID, opt.from, opt.to, o.curve))
		} else if opt.class != nil {
			classFades = append(classFades, newTransition(opt.class, opt.from, opt.to, o.curve))
		}
	}

	classFades = append(classFades, newTransition(regexp.MustCompile(`.*`), o.from, o.to, o.curve))

	return &Fader{
		frameDur:   frameDur,
		fadeDur:    o.fadeDur,
		appFades:   appFades,
		classFades: classFades,
		cmd:        o.cmd,
		log:        o.log,
		running:    map[i3.NodeID]*fadeJob{},
	}
}
