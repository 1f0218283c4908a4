package fader

import (
	"fmt"
	"time"
)

// Commander runs window manager commands.
type Commander interface {
	RunCommand(cmd string) error
}

// CommanderFunc adapts a function to Commander.
type CommanderFunc func(cmd string) error

// RunCommand calls f(cmd).
func (f CommanderFunc) RunCommand(cmd string) error {
	return f(cmd)
}

func newFadeJob(t *transition, id int64, cmd Commander, frameDur, fadeDur time.Duration) *fadeJob {
	j := &fadeJob{
		done:     make(chan struct{}),
		stop:     make(chan struct{}),
		id:       id,
		cmd:      cmd,
		frameDur: frameDur,
	}
	j.fade = t.fade(fadeDur.Seconds(), j.write)

	return j
}

type fadeJob struct {
	done     chan struct{}
	stop     chan struct{}
	fade     *Fade
	id       int64
	cmd      Commander
	frameDur time.Duration
	err      error
}

func (j *fadeJob) Done() <-chan struct{} {
	return j.done
}

// Stop aborts the job and waits for it to return. The window keeps the
// last opacity that was sent.
func (j *fadeJob) Stop() {
	select {
	case <-j.stop:
	default:
		close(j.stop)
	}
	<-j.done
}

func (j *fadeJob) write(opacity float64) {
	if j.err != nil {
		return
	}
	j.err = j.cmd.RunCommand(createCommand(j.id, opacity))
}

func (j *fadeJob) Run() error {
	defer close(j.done)

	// Send the first value immediately and tick for the following frames.
	j.fade.Start()
	if j.err != nil {
		return j.err
	}

	ticker := time.NewTicker(j.frameDur)
	defer ticker.Stop()

	frame := Frame{Delta: j.frameDur.Seconds(), UnscaledDelta: j.frameDur.Seconds()}

	for !j.fade.Done() {
		select {
		case <-j.stop:
			return nil
		case <-ticker.C:
			j.fade.Tick(frame)
			if j.err != nil {
				return j.err
			}
		}
	}

	return nil
}

func createCommand(id int64, opacity float64) string {
	return fmt.Sprintf(`[con_id=%d] opacity %.4f;`, id, opacity)
}
