package executor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeSSH swaps the ssh client for a local shell so the transport seam
// can be exercised without a cluster.
func fakeSSH(timeout time.Duration) *SSH {
	return &SSH{Host: "-c", Timeout: timeout, prog: "sh"}
}

func TestRunTrimsStdout(t *testing.T) {
	s := fakeSSH(0)
	out, err := s.Run(context.Background(), "echo '  hello  '")
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestRunSurfacesStderrOnFailure(t *testing.T) {
	s := fakeSSH(0)
	_, err := s.Run(context.Background(), "echo 'no such job' >&2; exit 3")

	var eerr *ExecutionError
	require.ErrorAs(t, err, &eerr)
	require.False(t, eerr.Timeout)
	require.Equal(t, "no such job", eerr.Stderr)
	require.Contains(t, err.Error(), "no such job")
}

func TestRunTimesOut(t *testing.T) {
	s := fakeSSH(50 * time.Millisecond)
	_, err := s.Run(context.Background(), "sleep 5")

	var eerr *ExecutionError
	require.ErrorAs(t, err, &eerr)
	require.True(t, eerr.Timeout)
	require.Equal(t, "command timed out", err.Error())
}
