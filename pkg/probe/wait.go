package probe

import (
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Wait blocks until every probe answers, polling once per second. It
// returns early when a termination signal arrives on interrupt or when
// timeout elapses; either way nothing has been spawned yet and the caller
// aborts the init.
func Wait(probes map[string]Probe, interrupt <-chan os.Signal, timeout time.Duration) error {
	if len(probes) == 0 {
		return nil
	}

	log.Info("waiting for probe readiness")

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		select {
		case <-ticker.C:
			ready := true

			for name := range probes {
				if err := probes[name].Exec(); err != nil {
					log.WithFields(log.Fields{"kind": "probe", "name": name, "err": err}).Warn("not ready yet")
					ready = false
				}
			}

			if ready {
				return nil
			}
		case s := <-interrupt:
			if s == unix.SIGTERM || s == unix.SIGINT {
				return errors.New("readiness interrupted")
			}
		case <-deadline:
			return errors.Errorf("dependencies not ready after %s", timeout)
		}
	}
}
