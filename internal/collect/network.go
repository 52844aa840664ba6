package collect

import (
	"regexp"
	"strconv"
	"strings"
)

// Connection type labels shared with the diagnostics extension.
const (
	ConnWifi    = "WiFi"
	ConnMobile  = "Mobile Data"
	ConnUnknown = "Unknown"
)

var (
	reWifiInfo = regexp.MustCompile(
		`mWifiInfo SSID: "([^"]+)".*?RSSI: (-?\d+).*?Link speed: (\d+)Mbps.*?Frequency: (\d+)MHz`)
	reInet4 = regexp.MustCompile(`inet (\d+\.\d+\.\d+\.\d+)/(\d+)`)
	reInet6 = regexp.MustCompile(`inet6 ([\da-f:]+)/\d+ scope global`)
)

// SignalQuality classifies a WiFi RSSI reading. The dBm thresholds are load
// bearing for health classification and must not drift.
func SignalQuality(rssi int) string {
	switch {
	case rssi >= -50:
		return "Excellent"
	case rssi >= -60:
		return "Good"
	case rssi >= -70:
		return "Fair"
	default:
		return "Poor"
	}
}

// Band maps a WiFi frequency in MHz to its band label.
func Band(frequencyMHz int) string {
	if frequencyMHz >= 5000 {
		return "5GHz"
	}

	return "2.4GHz"
}

// ExtractNetwork assembles the network sub-record from `dumpsys wifi`,
// `ip addr show wlan0`, the two DNS properties and `dumpsys connectivity`.
func ExtractNetwork(wifi, ipAddr, dns1, dns2, connectivity string) Network {
	var n Network

	if m := reWifiInfo.FindStringSubmatch(wifi); m != nil {
		ssid := m[1]
		n.SSID = &ssid
		if v, err := strconv.Atoi(m[2]); err == nil {
			n.RSSI = &v
			n.SignalQuality = SignalQuality(v)
		}
		if v, err := strconv.Atoi(m[3]); err == nil {
			n.LinkSpeedMbps = &v
		}
		if v, err := strconv.Atoi(m[4]); err == nil {
			n.FrequencyMHz = &v
			n.Band = Band(v)
		}
	}

	if m := reInet4.FindStringSubmatch(ipAddr); m != nil {
		ip, mask := m[1], m[2]
		n.IPAddress = &ip
		n.SubnetMask = &mask
	}
	if m := reInet6.FindStringSubmatch(ipAddr); m != nil {
		ip6 := m[1]
		n.IPv6Address = &ip6
	}

	n.DNS = []string{}
	for _, d := range []string{strings.TrimSpace(dns1), strings.TrimSpace(dns2)} {
		if d != "" {
			n.DNS = append(n.DNS, d)
		}
	}

	switch {
	case strings.Contains(connectivity, "WIFI"):
		n.ConnectionType = ConnWifi
	case strings.Contains(connectivity, "MOBILE"):
		n.ConnectionType = ConnMobile
	default:
		n.ConnectionType = ConnUnknown
	}

	return n
}
