package netdiag_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"codeberg.org/mutker/droidpulse/internal/netdiag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wifiDetailDump = `mWifiInfo SSID: "HomeNet", BSSID: aa:bb:cc:dd:ee:ff, MAC: 02:00:00:00:00:00, Security type: 2, Supplicant state: COMPLETED, Wi-Fi standard: 5, RSSI: -55, Link speed: 433Mbps, Tx Link speed: 433Mbps, Rx Link speed: 390Mbps, Frequency: 5180MHz, Net ID: 1`

// fakeBridge replays canned bridge output keyed by command prefix.
type fakeBridge struct {
	selector    string
	outputs     map[string]string
	lastTimeout time.Duration
}

func (f *fakeBridge) Run(_ context.Context, command string) string {
	return f.lookup(command)
}

func (f *fakeBridge) RunTimeout(_ context.Context, command string, timeout time.Duration) string {
	f.lastTimeout = timeout
	return f.lookup(command)
}

func (f *fakeBridge) RunHost(_ context.Context, command string) string {
	return f.lookup(command)
}

func (f *fakeBridge) Selector() string { return f.selector }

func (f *fakeBridge) lookup(command string) string {
	for prefix, out := range f.outputs {
		if strings.HasPrefix(command, prefix) {
			return out
		}
	}
	return ""
}

func TestExtractWifiDetails(t *testing.T) {
	w := netdiag.ExtractWifiDetails(wifiDetailDump)

	require.NotNil(t, w.SSID)
	assert.Equal(t, "HomeNet", *w.SSID)
	require.NotNil(t, w.SecurityType)
	assert.Equal(t, 2, *w.SecurityType)
	assert.Equal(t, "WPA-PSK", w.SecurityName)
	require.NotNil(t, w.WifiStandard)
	assert.Equal(t, 5, *w.WifiStandard)
	assert.Equal(t, "WiFi 5 (802.11ac)", w.StandardName)
	require.NotNil(t, w.RSSI)
	assert.Equal(t, -55, *w.RSSI)
	assert.Equal(t, "Good", w.SignalQuality)
	require.NotNil(t, w.SignalPercent)
	assert.Equal(t, 90, *w.SignalPercent)
	require.NotNil(t, w.TxSpeedMbps)
	assert.Equal(t, 433, *w.TxSpeedMbps)
	require.NotNil(t, w.RxSpeedMbps)
	assert.Equal(t, 390, *w.RxSpeedMbps)
	assert.Equal(t, "5GHz", w.Band)
}

func TestExtractWifiDetailsUnknownCodes(t *testing.T) {
	dump := strings.ReplaceAll(wifiDetailDump, "Security type: 2", "Security type: 9")
	dump = strings.ReplaceAll(dump, "Wi-Fi standard: 5", "Wi-Fi standard: 7")

	w := netdiag.ExtractWifiDetails(dump)

	assert.Equal(t, "Unknown (9)", w.SecurityName, "Raw code stays visible for unknown values")
	assert.Equal(t, "Unknown (7)", w.StandardName)
}

func TestExtractWifiDetailsNoMatch(t *testing.T) {
	w := netdiag.ExtractWifiDetails("WiFi is disabled")

	assert.Nil(t, w.SSID)
	assert.Empty(t, w.SecurityName)
}

func TestSignalPercent(t *testing.T) {
	assert.Equal(t, 100, netdiag.SignalPercent(-30), "Clamped at the top")
	assert.Equal(t, 100, netdiag.SignalPercent(-50))
	assert.Equal(t, 90, netdiag.SignalPercent(-55))
	assert.Equal(t, 40, netdiag.SignalPercent(-80))
	assert.Equal(t, 0, netdiag.SignalPercent(-100))
	assert.Equal(t, 0, netdiag.SignalPercent(-120), "Clamped at the bottom")
}

func TestConnectionType(t *testing.T) {
	assert.Equal(t, "WiFi", netdiag.ConnectionType("192.168.1.42:5555"))
	assert.Equal(t, "USB", netdiag.ConnectionType("ABC123"))
	assert.Equal(t, "USB", netdiag.ConnectionType(""))
}

func TestDeviceIP(t *testing.T) {
	bridge := &fakeBridge{outputs: map[string]string{
		"shell ip addr show wlan0": "    inet 192.168.1.42/24 brd 192.168.1.255 scope global wlan0",
	}}

	assert.Equal(t, "192.168.1.42", netdiag.DeviceIP(context.Background(), bridge))

	bridge.outputs = map[string]string{}
	assert.Empty(t, netdiag.DeviceIP(context.Background(), bridge), "No address when WiFi is down")
}

func TestCollectDiagnostics(t *testing.T) {
	bridge := &fakeBridge{
		selector: "ABC123",
		outputs: map[string]string{
			"shell dumpsys wifi": wifiDetailDump,
			"shell ip route":     "default via 192.168.1.1 dev wlan0 proto dhcp metric 600",
			"shell ping -c 1 -W 2 google.com": `PING google.com (142.250.74.46) 56(84) bytes of data.
64 bytes from 142.250.74.46: icmp_seq=1 ttl=115 time=12.3 ms

--- google.com ping statistics ---
1 packets transmitted, 1 received, 0% packet loss, time 0ms`,
		},
	}

	diag := netdiag.Collect(context.Background(), bridge, 5*time.Second)

	assert.Equal(t, "USB", diag.ConnectionType)
	require.NotNil(t, diag.Gateway)
	assert.Equal(t, "192.168.1.1", *diag.Gateway)
	assert.Nil(t, diag.DeviceIP, "WiFi down on the device side")
	assert.Nil(t, diag.Ping, "No latency probe without a device address")

	require.Contains(t, diag.DNSTests, "google.com")
	assert.True(t, diag.DNSTests["google.com"].Resolved)
	require.Contains(t, diag.DNSTests, "github.com")
	assert.False(t, diag.DNSTests["github.com"].Resolved)
}
