package netdiag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/logger"
)

// switchSettle gives the bridge daemon time to restart in TCP mode before
// the connect attempt.
const switchSettle = 2 * time.Second

// SwitchToWireless reconfigures the bridge to listen on a TCP port and
// reconnects over the network, returning the new ip:port selector. This is
// fire and forget: on failure the device may be left in an ambiguous
// connectivity state that the operator must resolve manually.
func SwitchToWireless(ctx context.Context, bridge Bridge, port int) (string, error) {
	errFactory := errors.New()

	// The device IP must be read while the wired link is still up.
	ip := DeviceIP(ctx, bridge)
	if ip == "" {
		return "", errFactory.WithMessage(errors.ErrNoDeviceIP,
			"could not find device IP; ensure WiFi is connected")
	}

	out := bridge.Run(ctx, fmt.Sprintf("tcpip %d", port))
	logger.Info().Str("output", out).Msg("TCP/IP mode enabled")

	time.Sleep(switchSettle)

	target := fmt.Sprintf("%s:%d", ip, port)
	out = bridge.RunHost(ctx, "connect "+target)
	if !strings.Contains(strings.ToLower(out), "connected") {
		return "", errFactory.WithData(errors.ErrSwitchFailed, out)
	}

	logger.Info().Str("target", target).Msg("Connected wirelessly; the USB cable can be unplugged")

	return target, nil
}

// SwitchToWired reverts the bridge to the direct USB link, disconnecting
// the network endpoint first when the current selector is one.
func SwitchToWired(ctx context.Context, bridge Bridge) string {
	if sel := bridge.Selector(); strings.Contains(sel, ":") {
		bridge.RunHost(ctx, "disconnect "+sel)
	}

	out := bridge.Run(ctx, "usb")
	logger.Info().Str("output", out).Msg("USB mode restored")

	return out
}
