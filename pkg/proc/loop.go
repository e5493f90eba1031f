package proc

import (
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// RequestKind enumerates the operations the control api may ask for.
type RequestKind int

const (
	RequestStatus RequestKind = iota
	RequestSuspend
	RequestResume
)

// Request is a control operation handed to the loop. The loop owns all
// supervision state, so api handlers never touch it directly; they enqueue
// a request and wait for the snapshot that answers it.
type Request struct {
	Kind RequestKind

	// Generation restricts a resume to one suspend cycle; nil means the
	// current cycle.
	Generation *uint64

	reply chan Status
}

func NewRequest(kind RequestKind) Request {
	return Request{
		Kind:  kind,
		reply: make(chan Status, 1),
	}
}

// Await blocks until the loop has processed the request and returns the
// resulting status snapshot.
func (r Request) Await() Status {
	return <-r.reply
}

// Loop is the top-level event loop composing classifier, supervisor,
// suspend controller and reaper. It is the single thread of control
// touching supervision state; OS signals and control requests are
// serialized here, so no locking exists anywhere in the package.
type Loop struct {
	supervisor *ChildSupervisor
	controller *SuspendController
	signals    <-chan os.Signal
	requests   <-chan Request

	orphansReaped int
}

// NewLoop wires up the event loop. The supervisor must already hold a
// spawned workload when Run is called.
func NewLoop(supervisor *ChildSupervisor, controller *SuspendController, signals <-chan os.Signal, requests <-chan Request) *Loop {
	return &Loop{
		supervisor: supervisor,
		controller: controller,
		signals:    signals,
		requests:   requests,
	}
}

// Run blocks until the workload has exited and been reaped, then returns
// the exit code the init must propagate. Reaping runs after every wake-up
// regardless of its cause: a coalesced SIGCHLD can stand for several exits,
// and any other signal can coincide with one.
func (l *Loop) Run() int {
	for {
		select {
		case sig := <-l.signals:
			l.handleSignal(sig)
		case req := <-l.requests:
			l.handleRequest(req)
		}

		l.orphansReaped += len(ReapExited(l.supervisor))

		if workload := l.supervisor.Workload(); workload.Done() {
			return workload.ExitCode()
		}
	}
}

// Drain answers control requests that race with shutdown, so the api can
// close without leaving a handler blocked. Runs after Run has returned.
func (l *Loop) Drain() {
	for req := range l.requests {
		req.reply <- l.status()
	}
}

func (l *Loop) handleSignal(sig os.Signal) {
	unixSig, ok := sig.(unix.Signal)
	if !ok {
		return
	}

	action := Classify(unixSig)
	log.WithField("signal", unix.SignalName(unixSig)).
		WithField("action", action.String()).
		Debug("received signal")

	switch action {
	case ActionIgnore:
		// wake-up only; reaping follows below
	case ActionTerminate:
		l.controller.Terminate(unixSig)
	case ActionSuspend:
		l.controller.Suspend()
	case ActionResume:
		l.controller.ResumeCurrent()
	case ActionForward:
		l.controller.Forward(unixSig)
	}
}

func (l *Loop) handleRequest(req Request) {
	switch req.Kind {
	case RequestSuspend:
		l.controller.Suspend()
	case RequestResume:
		if req.Generation != nil {
			l.controller.Resume(*req.Generation)
		} else {
			l.controller.ResumeCurrent()
		}
	case RequestStatus:
		// every request is answered with a snapshot anyway
	}

	req.reply <- l.status()
}

func (l *Loop) status() Status {
	queued := l.controller.QueuedSignals()
	names := make([]string, len(queued))
	for i, sig := range queued {
		names[i] = unix.SignalName(sig)
	}

	workload := l.supervisor.Workload()
	return Status{
		Pid:           workload.Pid,
		State:         l.controller.State().String(),
		Generation:    l.controller.Generation(),
		QueuedSignals: names,
		Exited:        workload.Done(),
		OrphansReaped: l.orphansReaped,
	}
}
