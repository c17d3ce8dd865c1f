package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds every remote command; there is no other cancel path.
const DefaultTimeout = 30 * time.Second

var remoteCommands = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "oar_remote_commands_total",
	Help: "Remote scheduler commands by outcome.",
}, []string{"outcome"})

// ExecutionError is the failure of one remote command. For a remote
// non-zero exit the message is the trimmed stderr stream, which is the
// only diagnostic surface the scheduler exposes.
type ExecutionError struct {
	Timeout bool
	Stderr  string
}

func (e *ExecutionError) Error() string {
	if e.Timeout {
		return "command timed out"
	}
	return "command failed: " + e.Stderr
}

// SSH runs commands on the configured host through the system ssh client.
// The channel is assumed authenticated and configured out of band; each
// call opens and tears down its own session.
type SSH struct {
	Host    string
	Timeout time.Duration

	prog string // overridden in tests
}

func NewSSH(host string) *SSH {
	return &SSH{Host: host, Timeout: DefaultTimeout}
}

func (s *SSH) program() string {
	if s.prog == "" {
		return "ssh"
	}
	return s.prog
}

// Run executes a single command line on the remote host and returns its
// trimmed stdout. No retries, no pooling.
func (s *SSH) Run(ctx context.Context, command string) (string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.program(), s.Host, command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		remoteCommands.WithLabelValues("timeout").Inc()
		log.Warn().Str("host", s.Host).Str("command", command).Msg("remote command timed out")
		return "", &ExecutionError{Timeout: true}
	}
	if err != nil {
		remoteCommands.WithLabelValues("remote_error").Inc()
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		e := &ExecutionError{Stderr: msg}
		log.Warn().Str("host", s.Host).Str("command", command).Msg(e.Error())
		return "", e
	}

	remoteCommands.WithLabelValues("ok").Inc()
	return strings.TrimSpace(stdout.String()), nil
}
