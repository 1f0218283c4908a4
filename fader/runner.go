package fader

// Runner advances running steps once per host frame. Each target id has
// at most one running step. Runner is not safe for concurrent use.
type Runner[K comparable] struct {
	running map[K]Step
}

// NewRunner creates an empty runner.
func NewRunner[K comparable]() *Runner[K] {
	return &Runner[K]{running: map[K]Step{}}
}

// Play starts step for id, dropping any step already running for id.
// A dropped step leaves its sink at the last written value.
func (r *Runner[K]) Play(id K, step Step) {
	delete(r.running, id)

	step.Start()
	if !step.Done() {
		r.running[id] = step
	}
}

// Stop drops the step running for id and reports whether there was one.
func (r *Runner[K]) Stop(id K) bool {
	_, ok := r.running[id]
	delete(r.running, id)
	return ok
}

// Running reports whether a step is running for id.
func (r *Runner[K]) Running(id K) bool {
	_, ok := r.running[id]
	return ok
}

// Len returns the number of running steps.
func (r *Runner[K]) Len() int {
	return len(r.running)
}

// Update ticks every running step once and removes finished steps.
func (r *Runner[K]) Update(frame Frame) {
	for id, step := range r.running {
		if step.Tick(frame) {
			delete(r.running, id)
		}
	}
}
