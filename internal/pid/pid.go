// Package pid guards against concurrent scans. Two instances talking to the
// same adb transport interleave their shell output, so a second run is
// refused while the first still holds the PID file.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"codeberg.org/mutker/droidpulse/internal/errors"
)

const pidFile = "droidpulse.pid"

func path() string {
	return filepath.Join(os.TempDir(), pidFile)
}

// Write claims the PID file for this process. A stale file left by a dead
// process is overwritten.
func Write() error {
	errFactory := errors.New()

	if owner, err := currentOwner(); err != nil {
		return err
	} else if owner != 0 {
		return errFactory.WithData(errors.ErrAlreadyRunning, struct{ PID int }{owner})
	}

	if err := os.WriteFile(path(), []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove releases the PID file. Missing file is not an error.
func Remove() error {
	errFactory := errors.New()

	if err := os.Remove(path()); err != nil && !os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// currentOwner returns the PID of a live process holding the file, or 0 when
// the file is absent or stale.
func currentOwner() (int, error) {
	errFactory := errors.New()

	bytes, err := os.ReadFile(path())
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errFactory.Wrap(errors.ErrInternal, err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(bytes)))
	if err != nil {
		// Unreadable content, treat as stale
		return 0, nil
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, nil
	}
	if process.Signal(syscall.Signal(0)) == nil {
		return pid, nil
	}

	return 0, nil
}
