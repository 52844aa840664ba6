package adb_test

import (
	"context"
	"testing"
	"time"

	"codeberg.org/mutker/droidpulse/internal/adb"
	"github.com/stretchr/testify/assert"
)

func TestParseDevices(t *testing.T) {
	out := `List of devices attached
ABC123	device
192.168.1.42:5555	device
DEF456	unauthorized
GHI789	offline`

	devices := adb.ParseDevices(out)

	assert.Equal(t, []string{"ABC123", "192.168.1.42:5555"}, devices,
		"Only fully authorized devices are listed")
}

func TestParseDevicesEmpty(t *testing.T) {
	assert.Empty(t, adb.ParseDevices("List of devices attached\n"))
	assert.Empty(t, adb.ParseDevices(""))
}

func TestRunnerMissingExecutable(t *testing.T) {
	r := adb.NewRunner("definitely-not-a-real-bridge-binary", time.Second)

	out := r.Run(context.Background(), "shell dumpsys battery")
	assert.Empty(t, out, "A missing bridge yields empty output, never an abort")
}

func TestRunnerSelector(t *testing.T) {
	r := adb.NewRunner("adb", time.Second)
	assert.Empty(t, r.Selector())

	scoped := r.WithSelector("ABC123")
	assert.Equal(t, "ABC123", scoped.Selector())
	assert.Empty(t, r.Selector(), "WithSelector returns a copy")
}
