// Package netdiag implements the extended network diagnostics suite:
// detailed WiFi decode, gateway and latency probes, on-device DNS checks,
// and switching the device bridge between USB and wireless transport.
package netdiag

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"codeberg.org/mutker/droidpulse/internal/collect"
	"codeberg.org/mutker/droidpulse/internal/logger"
)

const (
	connUSB  = "USB"
	connWifi = "WiFi"
)

var (
	reWifiDetail = regexp.MustCompile(
		`mWifiInfo SSID: "([^"]+)".*?` +
			`Security type: (\d+).*?` +
			`Wi-Fi standard: (\d+).*?` +
			`RSSI: (-?\d+).*?` +
			`Link speed: (\d+)Mbps.*?` +
			`Tx Link speed: (\d+)Mbps.*?` +
			`Rx Link speed: (\d+)Mbps.*?` +
			`Frequency: (\d+)MHz`)
	reGateway  = regexp.MustCompile(`default via (\d+\.\d+\.\d+\.\d+)`)
	reDeviceIP = regexp.MustCompile(`inet (\d+\.\d+\.\d+\.\d+)/`)
)

// WiFi security type codes from the Android WifiInfo constants.
var securityNames = map[int]string{
	0: "Open",
	1: "WEP",
	2: "WPA-PSK",
	3: "WPA-EAP",
	4: "WPA3-SAE",
	5: "WPA3-Suite-B",
	6: "OWE",
}

var standardNames = map[int]string{
	4: "WiFi 4 (802.11n)",
	5: "WiFi 5 (802.11ac)",
	6: "WiFi 6 (802.11ax)",
}

// ConnectionType reports how the bridge reaches the device: a selector
// containing a colon is a network address, anything else is a USB link.
func ConnectionType(selector string) string {
	if strings.Contains(selector, ":") {
		return connWifi
	}

	return connUSB
}

// DeviceIP returns the device's WLAN IPv4 address, or "" when WiFi is down.
func DeviceIP(ctx context.Context, bridge Bridge) string {
	out := bridge.Run(ctx, "shell ip addr show wlan0")
	if m := reDeviceIP.FindStringSubmatch(out); m != nil {
		return m[1]
	}

	return ""
}

// ExtractWifiDetails decodes the primary mWifiInfo block of `dumpsys wifi`.
func ExtractWifiDetails(out string) collect.WifiDetails {
	var w collect.WifiDetails

	m := reWifiDetail.FindStringSubmatch(out)
	if m == nil {
		return w
	}

	ssid := m[1]
	w.SSID = &ssid
	w.SecurityType = atoiPtr(m[2])
	w.WifiStandard = atoiPtr(m[3])
	w.RSSI = atoiPtr(m[4])
	w.LinkSpeedMbps = atoiPtr(m[5])
	w.TxSpeedMbps = atoiPtr(m[6])
	w.RxSpeedMbps = atoiPtr(m[7])
	w.FrequencyMHz = atoiPtr(m[8])

	if w.FrequencyMHz != nil {
		w.Band = collect.Band(*w.FrequencyMHz)
	}
	if w.WifiStandard != nil {
		w.StandardName = lookupCoded(standardNames, *w.WifiStandard)
	}
	if w.SecurityType != nil {
		w.SecurityName = lookupCoded(securityNames, *w.SecurityType)
	}
	if w.RSSI != nil {
		w.SignalQuality = collect.SignalQuality(*w.RSSI)
		pct := SignalPercent(*w.RSSI)
		w.SignalPercent = &pct
	}

	return w
}

// SignalPercent maps an RSSI reading onto 0-100 with a linear scale
// anchored at -100 dBm, clamped at both ends.
func SignalPercent(rssi int) int {
	pct := 2 * (rssi + 100)
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}

	return pct
}

// Collect runs the full diagnostics suite against one device. probeTimeout
// bounds each individual reachability probe.
func Collect(ctx context.Context, bridge Bridge, probeTimeout time.Duration) *collect.NetworkDiagnostics {
	logger.Info().Msg("Running network diagnostics")

	diag := &collect.NetworkDiagnostics{
		ConnectionType: ConnectionType(bridge.Selector()),
		Wifi:           ExtractWifiDetails(bridge.Run(ctx, "shell dumpsys wifi")),
	}

	if m := reGateway.FindStringSubmatch(bridge.Run(ctx, "shell ip route")); m != nil {
		gw := m[1]
		diag.Gateway = &gw
	}

	if ip := DeviceIP(ctx, bridge); ip != "" {
		diag.DeviceIP = &ip
		stats, err := Ping(ctx, ip, pingCount)
		if err != nil {
			logger.Warn().Err(err).Str("target", ip).Msg("latency probe failed")
		} else {
			diag.Ping = stats
		}
	}

	diag.DNSTests = DNSTest(ctx, bridge, probeTimeout)

	logger.Info().Msg("Network diagnostics complete")

	return diag
}

// lookupCoded resolves a code table entry, keeping the raw code visible for
// values outside the table.
func lookupCoded(table map[int]string, code int) string {
	if name, ok := table[code]; ok {
		return name
	}

	return "Unknown (" + strconv.Itoa(code) + ")"
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &v
}
