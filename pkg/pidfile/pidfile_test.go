package pidfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hibernite/hibernite/pkg/pidfile"
	"github.com/stretchr/testify/require"
)

func TestPidFileCanBeAcquiredAndReleased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test1.pid")
	f := pidfile.New(path)

	require.NoError(t, f.Acquire())
	require.NoError(t, f.Release())

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestPidFileCanBeAcquiredWhenStaleFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test2.pid")
	f := pidfile.New(path)

	// no live process should carry a pid this close to the kernel maximum
	require.NoError(t, os.WriteFile(path, []byte("4194303"), 0o644))
	require.NoError(t, f.Acquire())
	require.NoError(t, f.Release())

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestPidFileCannotBeAcquiredWhileAlreadyHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test3.pid")
	f1 := pidfile.New(path)
	f2 := pidfile.New(path)

	require.NoError(t, f1.Acquire())
	require.Error(t, f2.Acquire())
	require.NoError(t, f1.Release())
}

func TestEmptyPathIsANoOp(t *testing.T) {
	f := pidfile.New("")

	require.NoError(t, f.Acquire())
	require.NoError(t, f.Release())
}
