package nordvpn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rshade/nordmenu/internal/logging"
)

const (
	// DefaultBinary is the nordvpn client binary name resolved via PATH.
	DefaultBinary = "nordvpn"

	// DefaultTimeout bounds every client invocation. The daemon answers
	// list/status queries well within this; anything slower indicates a
	// stuck daemon, and waiting longer only freezes the menu.
	DefaultTimeout = 10 * time.Second
)

// Runner executes nordvpn commands. The CLI uses ExecRunner; tests
// substitute fakes.
type Runner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner runs commands against the real nordvpn binary.
type ExecRunner struct {
	binary  string
	timeout time.Duration
}

// NewExecRunner creates a runner with the default binary and timeout.
func NewExecRunner() *ExecRunner {
	return NewExecRunnerWith(DefaultBinary, DefaultTimeout)
}

// NewExecRunnerWith creates a runner with an explicit binary and timeout.
// Empty or non-positive values fall back to the defaults.
func NewExecRunnerWith(binary string, timeout time.Duration) *ExecRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExecRunner{binary: binary, timeout: timeout}
}

// Binary returns the configured binary name.
func (r *ExecRunner) Binary() string {
	return r.binary
}

// Timeout returns the per-command timeout.
func (r *ExecRunner) Timeout() time.Duration {
	return r.timeout
}

// Check verifies the nordvpn binary is resolvable on PATH without running it.
func (r *ExecRunner) Check() error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return fmt.Errorf("%w: %s", ErrNotInstalled, r.binary)
	}
	return nil
}

// Run executes one nordvpn command, enforcing the per-command timeout,
// and returns the client's stdout. Failures are classified into
// ErrNotInstalled, ErrTimeout, ErrNotLoggedIn, or *CommandError.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (string, error) {
	log := logging.FromContext(ctx)

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	execCmd := exec.CommandContext(runCtx, r.binary, cmd.Args...)
	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	start := time.Now()
	err := execCmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		classified := r.classify(runCtx, cmd, err, stderr.String(), stdout.String())
		log.Debug().
			Ctx(ctx).
			Str("component", "nordvpn").
			Str("args", cmd.String()).
			Dur("elapsed", elapsed).
			Err(classified).
			Msg("command failed")
		return "", classified
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "nordvpn").
		Str("args", cmd.String()).
		Dur("elapsed", elapsed).
		Msg("command completed")

	return stdout.String(), nil
}

// classify maps a raw exec failure to one of the package's failure kinds.
func (r *ExecRunner) classify(runCtx context.Context, cmd Command, err error, stderrText, stdoutText string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotInstalled, r.binary)
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %s", ErrTimeout, cmd.String(), r.timeout)
	}

	message := strings.TrimSpace(stderrText)
	if message == "" {
		message = strings.TrimSpace(sanitizeOutput(stdoutText))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if isNotLoggedIn(message) {
			return fmt.Errorf("%w: %s", ErrNotLoggedIn, cmd.String())
		}
		return &CommandError{
			Command:  cmd.String(),
			ExitCode: exitErr.ExitCode(),
			Message:  message,
		}
	}

	return fmt.Errorf("running nordvpn %s: %w", cmd.String(), err)
}
