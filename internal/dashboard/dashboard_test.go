package dashboard_test

import (
	"bytes"
	"testing"
	"time"

	"codeberg.org/mutker/droidpulse/internal/analyze"
	"codeberg.org/mutker/droidpulse/internal/collect"
	"codeberg.org/mutker/droidpulse/internal/dashboard"
	"codeberg.org/mutker/droidpulse/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func sampleRecord() *collect.DeviceRecord {
	return &collect.DeviceRecord{
		Identity: collect.Identity{
			Model: "Pixel 7", Brand: "google", Device: "panther",
			AndroidVersion: "14", SDKLevel: "34", Serial: "ABC123",
		},
		Battery: collect.Battery{
			Level: intPtr(85), HealthText: "Good", StatusText: "Charging",
			TemperatureC: floatPtr(28.5), PowerSource: "USB",
		},
		Storage: []collect.StorageEntry{
			{MountedOn: "/data", Size: "107G", Used: "91G", Available: "16G", UsePercent: 86},
		},
		Memory: collect.Memory{
			UsedPercent: floatPtr(60.0), TotalMB: floatPtr(7629.2),
			TopConsumers: []collect.MemoryConsumer{{MemoryKB: 512340, Process: "com.android.systemui"}},
		},
		Cpu: collect.Cpu{
			Load1Min: floatPtr(6.11), Load5Min: floatPtr(5.68), Load15Min: floatPtr(5.42),
			TopConsumers: []collect.CpuConsumer{{CpuPercent: 41.0, PID: 1891, Process: "com.android.systemui"}},
		},
		Network: collect.Network{
			SSID: strPtr("HomeNet"), RSSI: intPtr(-55),
			SignalQuality: "Good", Band: "5GHz", ConnectionType: "WiFi",
			DNS: []string{"8.8.8.8"},
		},
		Apps: collect.Apps{TotalPackages: 200, SystemCount: 150, ThirdPartyCount: 50},
	}
}

func sampleResult() *analyze.Result {
	return &analyze.Result{
		HealthScore:     8,
		Summary:         "Device is in good shape overall.",
		Battery:         analyze.Subsystem{Status: "good"},
		Storage:         analyze.Subsystem{Status: "warning"},
		Memory:          analyze.Subsystem{Status: "good"},
		Network:         analyze.Subsystem{Status: "good"},
		Recommendations: []string{"Free up storage space"},
		Source:          analyze.SourceAI,
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	dashboard.New(&buf).Render(sampleRecord(), sampleResult())
	out := buf.String()

	require.NotEmpty(t, out)

	// Panel titles
	assert.Contains(t, out, "Device Info")
	assert.Contains(t, out, "AI Health Analysis", "AI verdicts carry the AI title")
	assert.Contains(t, out, "Battery")
	assert.Contains(t, out, "Storage")
	assert.Contains(t, out, "Memory")
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "Network")
	assert.Contains(t, out, "Apps")

	// Content
	assert.Contains(t, out, "google panther (Pixel 7)")
	assert.Contains(t, out, "8/10")
	assert.Contains(t, out, "85%")
	assert.Contains(t, out, "HomeNet")
	assert.Contains(t, out, "com.android.systemui")
	assert.Contains(t, out, "Free up storage space")
	assert.Contains(t, out, "No critical issues found!")
	assert.NotContains(t, out, "Network Diagnostics", "No diagnostics panel without diagnostics data")
}

func TestRenderRuleVerdict(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult()
	result.Source = analyze.SourceRules
	result.CriticalIssues = []analyze.Issue{
		{Category: "storage", Severity: "critical", Description: "/data is 95% full", Recommendation: "Clean up"},
	}

	dashboard.New(&buf).Render(sampleRecord(), result)
	out := buf.String()

	assert.Contains(t, out, "Health Analysis")
	assert.NotContains(t, out, "AI Health Analysis")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "/data is 95% full")
}

func TestRenderWithDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	rec := sampleRecord()
	gw := "192.168.1.1"
	latency := 12.3
	rec.Diagnostics = &collect.NetworkDiagnostics{
		ConnectionType: "USB",
		Gateway:        &gw,
		DNSTests: map[string]collect.DNSProbe{
			"google.com": {Resolved: true, LatencyMs: &latency},
			"github.com": {Resolved: false},
		},
	}

	dashboard.New(&buf).Render(rec, sampleResult())
	out := buf.String()

	assert.Contains(t, out, "Network Diagnostics")
	assert.Contains(t, out, "192.168.1.1")
	assert.Contains(t, out, "DNS google.com")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "FAIL")
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	scans := []history.ScanRecord{
		{
			Timestamp:      time.Date(2026, 8, 30, 14, 2, 0, 0, time.UTC),
			DeviceSerial:   "ABC123",
			Model:          "Pixel 7",
			HealthScore:    9,
			AnalysisSource: "ai",
			BatteryLevel:   intPtr(85),
			StorageMaxUsed: intPtr(62),
			MemoryUsedPct:  floatPtr(60.4),
		},
		{
			Timestamp:      time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC),
			DeviceSerial:   "ABC123",
			HealthScore:    3,
			AnalysisSource: "rules",
			IssueCount:     5,
		},
	}

	dashboard.New(&buf).History(scans)
	out := buf.String()

	assert.Contains(t, out, "Scan History")
	assert.Contains(t, out, "2026-08-30 14:02")
	assert.Contains(t, out, "ABC123")
	assert.Contains(t, out, "9/10")
	assert.Contains(t, out, "85%")
	assert.Contains(t, out, "60%")
	assert.Contains(t, out, "3/10")
	assert.Contains(t, out, "-", "Absent readings render as dashes")
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer

	dashboard.New(&buf).History(nil)

	assert.Contains(t, buf.String(), "No recorded scans.")
}

func TestRenderEmptyRecord(t *testing.T) {
	var buf bytes.Buffer

	dashboard.New(&buf).Render(&collect.DeviceRecord{}, &analyze.Result{HealthScore: 1})
	out := buf.String()

	assert.Contains(t, out, "N/A", "Absent readings render as placeholders")
	assert.Contains(t, out, "No storage data collected.")
	assert.Contains(t, out, "1/10")
}
