package netdiag

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"codeberg.org/mutker/droidpulse/internal/collect"
)

// Fixed resolution targets: one heavily anycast, one plain.
var dnsTargets = []string{"google.com", "github.com"}

// DefaultProbeTimeout bounds a single reachability probe when the caller
// does not supply one.
const DefaultProbeTimeout = 5 * time.Second

var (
	reResolvedIP = regexp.MustCompile(`\((\d+\.\d+\.\d+\.\d+)\)`)
	rePingTime   = regexp.MustCompile(`time[=<]([\d.]+)\s*ms`)
)

// DNSTest probes name resolution on the device itself via single-shot pings
// against the fixed targets, each bounded by the given timeout.
func DNSTest(ctx context.Context, bridge Bridge, timeout time.Duration) map[string]collect.DNSProbe {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	tests := make(map[string]collect.DNSProbe, len(dnsTargets))
	for _, target := range dnsTargets {
		out := bridge.RunTimeout(ctx, "shell ping -c 1 -W 2 "+target, timeout)
		tests[target] = ParseDNSProbe(out)
	}

	return tests
}

// ParseDNSProbe interprets one-shot ping output: a received packet means the
// name resolved, with the resolved address and latency when present.
func ParseDNSProbe(out string) collect.DNSProbe {
	if !strings.Contains(out, "1 received") && !strings.Contains(out, "1 packets received") {
		return collect.DNSProbe{Resolved: false}
	}

	probe := collect.DNSProbe{Resolved: true}
	if m := reResolvedIP.FindStringSubmatch(out); m != nil {
		ip := m[1]
		probe.IP = &ip
	}
	if m := rePingTime.FindStringSubmatch(out); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			probe.LatencyMs = &v
		}
	}

	return probe
}
