package main

import (
	"testing"
	"time"

	"codeberg.org/mutker/droidpulse/internal/adb"
	"codeberg.org/mutker/droidpulse/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestTargetBridgeAppliesConfiguredDevice(t *testing.T) {
	orig := cfg
	defer func() { cfg = orig }()

	bridge := adb.NewRunner("adb", 30*time.Second)

	cfg = &config.Config{}
	assert.Empty(t, targetBridge(bridge).Selector(), "No configured device leaves the selector unset")

	// Mode switches run before device resolution, so the selector has to be
	// in place here already for tcpip/disconnect to address the right device.
	cfg = &config.Config{Device: "192.168.1.42:5555"}
	assert.Equal(t, "192.168.1.42:5555", targetBridge(bridge).Selector())
	assert.Empty(t, bridge.Selector(), "The original runner is not mutated")
}
