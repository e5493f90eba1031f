package probe

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestFromURLRedisDefaultsThePort(t *testing.T) {
	p, err := FromURL("redis://cache")
	require.NoError(t, err)

	require.Equal(t, "cache:6379", p.(*redisProbe).addr)
}

func TestFromURLRedisKeepsExplicitPortAndPassword(t *testing.T) {
	p, err := FromURL("redis://:hunter2@cache:6380")
	require.NoError(t, err)

	r := p.(*redisProbe)
	require.Equal(t, "cache:6380", r.addr)
	require.Equal(t, "hunter2", r.password)
}

func TestFromURLMySQLBuildsDSN(t *testing.T) {
	p, err := FromURL("mysql://app:secret@db/app")
	require.NoError(t, err)

	dsn := p.(*mySQLProbe).dsn
	require.Contains(t, dsn, "tcp(db:3306)/app")
	require.Contains(t, dsn, "app:secret@")
}

func TestFromURLRejectsUnsupportedScheme(t *testing.T) {
	_, err := FromURL("gopher://old.example")
	require.Error(t, err)
}

func TestFromURLResolvesEnvIndirection(t *testing.T) {
	t.Setenv("PROBE_DEP", "redis://cache:7000")

	p, err := FromURL("ENV:PROBE_DEP")
	require.NoError(t, err)
	require.Equal(t, "cache:7000", p.(*redisProbe).addr)
}

func TestFilesystemProbe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ready")

	p, err := FromURL("file://" + path)
	require.NoError(t, err)
	require.Error(t, p.Exec())

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	require.NoError(t, p.Exec())
}

func TestWaitReturnsImmediatelyWithoutProbes(t *testing.T) {
	require.NoError(t, Wait(nil, nil, 0))
}

func TestWaitSucceedsOnceAllProbesAnswer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ready")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	probes := map[string]Probe{"file": &filesystemProbe{path: path}}
	require.NoError(t, Wait(probes, nil, 10*time.Second))
}

func TestWaitAbortsOnTerminationSignal(t *testing.T) {
	probes := map[string]Probe{"file": &filesystemProbe{path: "/does/not/exist"}}

	interrupt := make(chan os.Signal, 1)
	interrupt <- unix.SIGTERM

	require.Error(t, Wait(probes, interrupt, 0))
}

func TestWaitFailsAfterTimeout(t *testing.T) {
	probes := map[string]Probe{"file": &filesystemProbe{path: "/does/not/exist"}}

	err := Wait(probes, nil, 1500*time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not ready")
}
