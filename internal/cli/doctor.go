package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/nordmenu/internal/config"
	"github.com/rshade/nordmenu/internal/logging"
	"github.com/rshade/nordmenu/internal/nordvpn"
	"github.com/rshade/nordmenu/pkg/version"
)

// StepStatus represents the outcome of a single doctor check.
type StepStatus int

const (
	// StepSuccess indicates the check passed.
	StepSuccess StepStatus = iota
	// StepWarning indicates the check found a non-fatal issue.
	StepWarning
	// StepSkipped indicates the check could not run because an earlier one failed.
	StepSkipped
	// StepError indicates the check failed.
	StepError
)

// StepResult describes the outcome of executing a single doctor check.
type StepResult struct {
	Name     string
	Status   StepStatus
	Message  string
	Critical bool
	Err      error
}

// DoctorOptions holds the configuration for the doctor command, derived from CLI flags.
type DoctorOptions struct {
	NonInteractive bool
}

// DoctorResult is the aggregate outcome of all doctor checks.
type DoctorResult struct {
	Steps       []StepResult
	HasErrors   bool
	HasWarnings bool
}

// formatStatus returns a status marker appropriate for the output mode.
func formatStatus(status StepStatus, nonInteractive bool) string {
	if nonInteractive {
		switch status {
		case StepSuccess:
			return "[OK]"
		case StepWarning:
			return "[WARN]"
		case StepSkipped:
			return "[SKIP]"
		case StepError:
			return "[ERR]"
		default:
			return "[??]"
		}
	}

	switch status {
	case StepSuccess:
		return "\u2713" // ✓
	case StepWarning:
		return "!"
	case StepSkipped:
		return "-"
	case StepError:
		return "\u2717" // ✗
	default:
		return "?"
	}
}

// NewDoctorCmd creates the doctor command that diagnoses the local NordVPN setup.
func NewDoctorCmd() *cobra.Command {
	var opts DoctorOptions

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the local NordVPN setup",
		Long: `Checks the pieces nordmenu depends on: the nordvpn binary, the daemon,
the client version, the configuration file, and the desktop notification
helper. Each check reports independently; a failing check never stops
the rest.`,
		Example: `  # Full diagnosis
  nordmenu doctor

  # CI/CD diagnosis (no TTY-dependent output)
  nordmenu doctor --non-interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols, color)")

	return cmd
}

// runDoctor executes all checks using a collect-and-continue pattern.
// Checks that depend on the nordvpn binary are skipped when it is
// missing rather than piling further errors on the same cause.
func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.FromContext(ctx)

	// Auto-detect non-interactive mode when stdin is not a TTY
	if !opts.NonInteractive && !isTerminal(os.Stdin) {
		opts.NonInteractive = true
	}

	d := newDeps(cmd)
	result := &DoctorResult{}

	step := stepToolVersion()
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)

	step = stepBinary(d.runner)
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)
	binaryOK := step.Status != StepError

	step = stepClientVersion(ctx, d, binaryOK)
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)

	step = stepDaemon(ctx, d, binaryOK)
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)

	step = stepConfigFile()
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)

	step = stepNotifyHelper()
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)

	for _, s := range result.Steps {
		if s.Status == StepError && s.Critical {
			result.HasErrors = true
		}
		if s.Status == StepWarning {
			result.HasWarnings = true
		}
	}

	printSummary(cmd, result)

	if result.HasErrors {
		log.Error().
			Ctx(ctx).
			Str("component", "doctor").
			Msg("doctor found critical problems")
		return errors.New("doctor failed: one or more critical checks failed")
	}

	return nil
}

// printStep outputs a single check's status line.
func printStep(cmd *cobra.Command, step StepResult, nonInteractive bool) {
	marker := formatStatus(step.Status, nonInteractive)
	cmd.Printf("%s %s\n", marker, step.Message)
}

// printSummary outputs the final completion message.
func printSummary(cmd *cobra.Command, result *DoctorResult) {
	cmd.Println()
	switch {
	case result.HasErrors:
		cmd.Println("Doctor found problems. Review the messages above for remediation steps.")
	case result.HasWarnings:
		cmd.Println("Doctor found warnings. nordmenu should work, but review the messages above.")
	default:
		cmd.Println("All checks passed! Run 'nordmenu' to open the menu.")
	}
}

// stepToolVersion reports the nordmenu version and Go runtime info.
func stepToolVersion() StepResult {
	return StepResult{
		Name:    "Version display",
		Status:  StepSuccess,
		Message: fmt.Sprintf("nordmenu v%s (%s)", version.GetVersion(), runtime.Version()),
	}
}

// stepBinary checks the nordvpn binary resolves on PATH.
func stepBinary(runner *nordvpn.ExecRunner) StepResult {
	if err := runner.Check(); err != nil {
		return StepResult{
			Name:   "Client binary",
			Status: StepError,
			Message: fmt.Sprintf(
				"NordVPN client not found (%s)\n  %s",
				runner.Binary(),
				nordvpn.Remediation(err),
			),
			Critical: true,
			Err:      err,
		}
	}

	path, _ := exec.LookPath(runner.Binary())
	return StepResult{
		Name:     "Client binary",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("NordVPN client found (%s)", path),
		Critical: true,
	}
}

// stepClientVersion compares the installed client version against the
// supported floor.
func stepClientVersion(ctx context.Context, d *deps, binaryOK bool) StepResult {
	if !binaryOK {
		return StepResult{
			Name:    "Client version",
			Status:  StepSkipped,
			Message: "Skipped client version check: client not found",
		}
	}

	check, err := d.client.CheckVersion(ctx)
	if err != nil {
		return StepResult{
			Name:    "Client version",
			Status:  StepWarning,
			Message: fmt.Sprintf("Could not determine client version: %v", err),
			Err:     err,
		}
	}

	if !check.Supported {
		return StepResult{
			Name:   "Client version",
			Status: StepWarning,
			Message: fmt.Sprintf(
				"Client v%s is older than the supported minimum v%s. Group connects may fail; upgrade the client.",
				check.Current,
				check.Minimum,
			),
		}
	}

	return StepResult{
		Name:    "Client version",
		Status:  StepSuccess,
		Message: fmt.Sprintf("Client v%s (minimum v%s)", check.Current, check.Minimum),
	}
}

// stepDaemon checks the daemon answers a status query.
func stepDaemon(ctx context.Context, d *deps, binaryOK bool) StepResult {
	if !binaryOK {
		return StepResult{
			Name:    "Daemon",
			Status:  StepSkipped,
			Message: "Skipped daemon check: client not found",
		}
	}

	status, err := d.client.Status(ctx)
	if err != nil {
		if errors.Is(err, nordvpn.ErrNotLoggedIn) {
			return StepResult{
				Name:    "Daemon",
				Status:  StepWarning,
				Message: fmt.Sprintf("Daemon reachable but no account is logged in\n  %s", nordvpn.Remediation(err)),
				Err:     err,
			}
		}
		return StepResult{
			Name:     "Daemon",
			Status:   StepError,
			Message:  fmt.Sprintf("Daemon did not answer: %v\n  %s", err, nordvpn.Remediation(err)),
			Critical: true,
			Err:      err,
		}
	}

	state := status.State
	if state == "" {
		state = "Unknown"
	}
	return StepResult{
		Name:     "Daemon",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Daemon reachable (status: %s)", state),
		Critical: true,
	}
}

// stepConfigFile reports whether the configuration file loaded cleanly.
func stepConfigFile() StepResult {
	if err := config.GlobalLoadError(); err != nil {
		return StepResult{
			Name:   "Configuration",
			Status: StepWarning,
			Message: fmt.Sprintf(
				"Configuration file ignored: %v\n  Fix it or regenerate with: nordmenu config init --force",
				err,
			),
			Err: err,
		}
	}

	path := config.GetGlobalConfig().ConfigPath()
	if _, err := os.Stat(path); err != nil {
		return StepResult{
			Name:    "Configuration",
			Status:  StepSuccess,
			Message: "No configuration file; using defaults (create one with: nordmenu config init)",
		}
	}

	return StepResult{
		Name:    "Configuration",
		Status:  StepSuccess,
		Message: fmt.Sprintf("Configuration loaded (%s)", path),
	}
}

// stepNotifyHelper checks for the desktop notification helper.
func stepNotifyHelper() StepResult {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return StepResult{
			Name:    "Notifications",
			Status:  StepSkipped,
			Message: "notify-send not found; desktop notifications are disabled",
		}
	}

	return StepResult{
		Name:    "Notifications",
		Status:  StepSuccess,
		Message: fmt.Sprintf("Notification helper found (%s)", path),
	}
}
