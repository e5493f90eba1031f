package pidfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// PIDFile publishes the init's own process id at a well-known path. A
// leftover file from a previous run is replaced when its pid no longer
// names a live process.
type PIDFile struct {
	path string
	fd   int
}

func New(path string) *PIDFile {
	return &PIDFile{
		path: path,
	}
}

func (f *PIDFile) Acquire() error {
	if f.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create pid file directory %q", filepath.Dir(f.path))
	}

	fd, err := unix.Open(f.path, unix.O_CREAT|unix.O_EXCL|unix.O_WRONLY|unix.O_CLOEXEC, 0o644)
	switch err {
	case unix.EEXIST:
		if err := f.removeIfStale(); err != nil {
			return err
		}

		return f.Acquire()
	case nil:
		if _, err := unix.Write(fd, []byte(strconv.Itoa(os.Getpid()))); err != nil {
			return errors.Wrapf(err, "failed to write pid to pid file %q", f.path)
		}

		log.Info("acquired pid file ", f.path)
	default:
		return errors.Wrapf(err, "failed to open pid file %q", f.path)
	}

	f.fd = fd
	return nil
}

func (f *PIDFile) removeIfStale() error {
	pidStr, err := os.ReadFile(f.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read pid file %q", f.path)
	}

	pid, err := strconv.Atoi(string(pidStr))
	if err != nil {
		return errors.Wrapf(err, "failed to parse pid file %q", f.path)
	}

	if err := unix.Kill(pid, 0); err == nil {
		return fmt.Errorf("pid file %q already exists and contains the PID of a running process", f.path)
	}

	log.Info("existing pid file contains the PID of a non-running process; removing it")

	if err := os.Remove(f.path); err != nil {
		return errors.Wrapf(err, "failed to remove pid file %q", f.path)
	}

	return nil
}

func (f *PIDFile) Release() error {
	if f.path == "" {
		return nil
	}

	if err := unix.Close(f.fd); err != nil {
		return errors.Wrapf(err, "failed to close pid file %q", f.path)
	}

	if err := os.Remove(f.path); err != nil {
		return errors.Wrapf(err, "failed to remove pid file %q", f.path)
	}

	log.Info("released pid file ", f.path)
	return nil
}
