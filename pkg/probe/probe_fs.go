package probe

import (
	"os"

	log "github.com/sirupsen/logrus"
)

type filesystemProbe struct {
	path string
}

func (f *filesystemProbe) Exec() error {
	if _, err := os.Stat(f.path); err != nil {
		return err
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "file", "status": "alive", "path": f.path}).Debug()
	return nil
}
