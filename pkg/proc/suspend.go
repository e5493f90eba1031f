package proc

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// signalSender abstracts group signal delivery so the controller can be
// exercised without real processes.
type signalSender interface {
	Signal(sig unix.Signal) error
}

// legalTransitions is the exhaustive transition table of the suspend state
// machine. Every state write goes through transition, so an illegal jump
// aborts instead of silently corrupting the bookkeeping.
var legalTransitions = map[SuspendState][]SuspendState{
	StateRunning:    {StateSuspending},
	StateSuspending: {StateSuspended, StateRunning},
	StateSuspended:  {StateResuming},
	StateResuming:   {StateRunning},
}

// SuspendController decides whether signals reach the workload live or are
// queued across a suspend cycle, and drives the group stop/continue pair.
type SuspendController struct {
	state      SuspendState
	generation uint64
	queue      []unix.Signal
	sender     signalSender
}

func NewSuspendController(sender signalSender) *SuspendController {
	return &SuspendController{
		state:  StateRunning,
		sender: sender,
	}
}

func (c *SuspendController) State() SuspendState {
	return c.state
}

// Generation identifies the current suspend cycle. It increases with every
// suspend, so resumes meant for an older cycle can be told apart.
func (c *SuspendController) Generation() uint64 {
	return c.generation
}

// QueuedSignals returns the signals held back by the current suspend cycle,
// in replay order.
func (c *SuspendController) QueuedSignals() []unix.Signal {
	queued := make([]unix.Signal, len(c.queue))
	copy(queued, c.queue)
	return queued
}

func (c *SuspendController) transition(to SuspendState) {
	for _, legal := range legalTransitions[c.state] {
		if legal == to {
			c.state = to
			return
		}
	}
	log.Panicf("illegal suspend state transition from %s to %s", c.state, to)
}

// Suspend freezes the workload's process group. The controller advances to
// Suspended as soon as the stop has been issued: a stopped process cannot
// confirm its own stop through any channel, so there is nothing to wait
// for.
func (c *SuspendController) Suspend() {
	if c.state != StateRunning {
		log.WithField("state", c.state.String()).Warn("suspend requested, but workload is not running; ignoring")
		return
	}

	c.generation++
	c.transition(StateSuspending)

	if err := c.sender.Signal(unix.SIGSTOP); err != nil {
		c.reset("stop", err)
		return
	}

	c.transition(StateSuspended)
	log.WithField("generation", c.generation).Info("workload suspended")
}

// Resume thaws the workload if generation names the current suspend cycle.
// Stale resumes, left over from a cycle that has been superseded, are
// discarded without touching the workload.
func (c *SuspendController) Resume(generation uint64) {
	if c.state != StateSuspended {
		log.WithField("state", c.state.String()).Debug("resume requested, but workload is not suspended; ignoring")
		return
	}
	if generation != c.generation {
		log.WithField("generation", generation).
			WithField("currentGeneration", c.generation).
			Warn("discarding stale resume")
		return
	}

	c.transition(StateResuming)

	if err := c.sender.Signal(unix.SIGCONT); err != nil {
		c.reset("continue", err)
		return
	}

	c.transition(StateRunning)
	log.WithField("generation", c.generation).Info("workload resumed")

	c.replay()
}

// ResumeCurrent resumes the present suspend cycle. The signal path uses it;
// a raw resume signal carries no generation.
func (c *SuspendController) ResumeCurrent() {
	c.Resume(c.generation)
}

// Forward delivers sig live while the workload runs and queues it while the
// workload is frozen. Within one suspend cycle each signal kind is held at
// most once, at the position of its first arrival.
func (c *SuspendController) Forward(sig unix.Signal) {
	if c.state == StateRunning {
		// the already-exited race is logged by the sender
		_ = c.sender.Signal(sig)
		return
	}

	for _, queued := range c.queue {
		if queued == sig {
			log.WithField("signal", unix.SignalName(sig)).Debug("collapsing duplicate queued signal")
			return
		}
	}

	log.WithField("signal", unix.SignalName(sig)).Info("workload is suspended, queueing signal")
	c.queue = append(c.queue, sig)
}

// Terminate delivers a shutdown request. A frozen workload cannot honor
// one, so a suspended workload is thawed first: continue, then terminate,
// never the reverse. Queued signals are dropped, shutdown supersedes them.
func (c *SuspendController) Terminate(sig unix.Signal) {
	if c.state == StateSuspended {
		log.Info("terminating suspended workload, forcing resume first")
		c.queue = nil
		c.transition(StateResuming)

		if err := c.sender.Signal(unix.SIGCONT); err != nil {
			c.reset("continue", err)
		} else {
			c.transition(StateRunning)
		}
	}

	_ = c.sender.Signal(sig)
}

// reset forces the controller back to Running after a failed stop or
// continue delivery, usually because the workload exited in between.
// Queued signals are discarded rather than replayed against a nonexistent
// process.
func (c *SuspendController) reset(op string, err error) {
	log.WithError(err).Warnf("failed to deliver group %s, resetting to running", op)
	c.queue = nil
	c.transition(StateRunning)
}

// replay re-delivers the signals held during the finished suspend cycle in
// their original relative order.
func (c *SuspendController) replay() {
	for _, sig := range c.queue {
		log.WithField("signal", unix.SignalName(sig)).Info("replaying queued signal")
		_ = c.sender.Signal(sig)
	}
	c.queue = nil
}
