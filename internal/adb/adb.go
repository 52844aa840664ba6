// Package adb wraps the Android Debug Bridge executable. Every operation is
// a synchronous subprocess invocation bounded by a timeout; failures degrade
// to empty output so a scan never aborts because one command misbehaved.
package adb

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/logger"
)

const DefaultTimeout = 30 * time.Second

type Runner struct {
	path     string
	selector string
	timeout  time.Duration
}

// NewRunner creates a Runner invoking the bridge executable at path.
// A non-positive timeout falls back to DefaultTimeout.
func NewRunner(path string, timeout time.Duration) *Runner {
	if path == "" {
		path = "adb"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Runner{path: path, timeout: timeout}
}

// WithSelector returns a derived Runner targeting the given device.
func (r *Runner) WithSelector(selector string) *Runner {
	return &Runner{path: r.path, selector: selector, timeout: r.timeout}
}

// Selector returns the device selector this runner targets, if any.
func (r *Runner) Selector() string {
	return r.selector
}

// Run executes a bridge command against the configured device and returns
// trimmed stdout. Missing executable, timeout and non-zero exit all yield an
// empty string; callers treat empty output as "no data".
func (r *Runner) Run(ctx context.Context, command string) string {
	return r.run(ctx, command, r.selector, r.timeout)
}

// RunTimeout is Run with an explicit per-command timeout, used for
// reachability probes that should give up quickly.
func (r *Runner) RunTimeout(ctx context.Context, command string, timeout time.Duration) string {
	return r.run(ctx, command, r.selector, timeout)
}

// RunHost executes a bridge command that addresses the bridge itself rather
// than a device (connect, disconnect), so no selector is passed.
func (r *Runner) RunHost(ctx context.Context, command string) string {
	return r.run(ctx, command, "", r.timeout)
}

func (r *Runner) run(ctx context.Context, command, selector string, timeout time.Duration) string {
	args := make([]string, 0, 8)
	if selector != "" {
		args = append(args, "-s", selector)
	}
	args = append(args, strings.Fields(command)...)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, r.path, args...).Output()
	if err != nil {
		r.reportFailure(command, err, ctx.Err())
		return ""
	}

	return strings.TrimSpace(string(out))
}

func (r *Runner) reportFailure(command string, err, ctxErr error) {
	errFactory := errors.New()

	switch {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		logger.ErrorWithCode(errFactory.Wrap(errors.ErrBridgeTimeout, err)).
			Str("command", command).Msg("bridge command timed out")
	case errors.Is(err, exec.ErrNotFound):
		logger.ErrorWithCode(errFactory.Wrap(errors.ErrBridgeNotFound, err)).
			Str("path", r.path).Msg("install android platform tools and ensure adb is on PATH")
	default:
		logger.Debug().Err(err).Str("command", command).Msg("bridge command failed")
	}
}

// Devices returns the IDs of connected devices in authorized state.
func (r *Runner) Devices(ctx context.Context) []string {
	return ParseDevices(r.RunHost(ctx, "devices"))
}

// ParseDevices extracts device IDs from `adb devices` output. Unauthorized
// and offline entries are skipped.
func ParseDevices(output string) []string {
	var devices []string
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if i == 0 { // header line
			continue
		}
		if id, rest, ok := strings.Cut(line, "\t"); ok && strings.TrimSpace(rest) == "device" {
			devices = append(devices, strings.TrimSpace(id))
		}
	}

	return devices
}
