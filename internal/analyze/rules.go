package analyze

import (
	"fmt"

	"codeberg.org/mutker/droidpulse/internal/collect"
)

const noActionSentinel = "No immediate action required"

// Fixed rule thresholds. Storage and memory comparisons are strict: exactly
// 90% is a warning, 91% is critical.
const (
	lowBatteryLevel    = 20
	storageCriticalPct = 90
	storageWarningPct  = 75
	memoryCriticalPct  = 90
	memoryWarningPct   = 75
)

// RuleAnalysis is the deterministic fallback analyzer. Scoring starts at 10
// and each triggered rule subtracts a fixed amount; the result is clamped to
// [1,10]. Subsystem statuses are derived independently from the same
// thresholds, not from the accumulated issue list.
func RuleAnalysis(rec *collect.DeviceRecord) *Result {
	var issues []Issue
	score := maxScore

	level := batteryLevel(rec)
	health := batteryHealth(rec)

	if level < lowBatteryLevel {
		issues = append(issues, Issue{
			Category:       "battery",
			Severity:       SeverityWarning,
			Description:    fmt.Sprintf("Battery level is low at %d%%", level),
			Recommendation: "Charge the device soon",
		})
		score--
	}
	if health != "Good" {
		issues = append(issues, Issue{
			Category:       "battery",
			Severity:       SeverityCritical,
			Description:    fmt.Sprintf("Battery health is %s", health),
			Recommendation: "Consider battery replacement",
		})
		score -= 2
	}

	// Each mount is evaluated independently and can contribute on its own.
	for _, part := range rec.Storage {
		switch {
		case part.UsePercent > storageCriticalPct:
			issues = append(issues, Issue{
				Category:       "storage",
				Severity:       SeverityCritical,
				Description:    fmt.Sprintf("%s is %d%% full", part.MountedOn, part.UsePercent),
				Recommendation: "Free up space or move data to external storage",
			})
			score -= 2
		case part.UsePercent > storageWarningPct:
			issues = append(issues, Issue{
				Category:       "storage",
				Severity:       SeverityWarning,
				Description:    fmt.Sprintf("%s is %d%% full", part.MountedOn, part.UsePercent),
				Recommendation: "Monitor storage usage and clean unnecessary files",
			})
			score--
		}
	}

	usedPct := memoryUsedPercent(rec)
	switch {
	case usedPct > memoryCriticalPct:
		issues = append(issues, Issue{
			Category:       "memory",
			Severity:       SeverityCritical,
			Description:    fmt.Sprintf("Memory usage is very high at %.1f%%", usedPct),
			Recommendation: "Close background apps to free memory",
		})
		score -= 2
	case usedPct > memoryWarningPct:
		issues = append(issues, Issue{
			Category:       "memory",
			Severity:       SeverityWarning,
			Description:    fmt.Sprintf("Memory usage is elevated at %.1f%%", usedPct),
			Recommendation: "Monitor memory-heavy apps",
		})
		score--
	}

	signal := rec.Network.SignalQuality
	if signal == "Poor" {
		issues = append(issues, Issue{
			Category:       "network",
			Severity:       SeverityWarning,
			Description:    fmt.Sprintf("WiFi signal is poor (RSSI: %sdBm)", intOrNA(rec.Network.RSSI)),
			Recommendation: "Move closer to the router or check for interference",
		})
		score--
	}

	score = clampScore(score)

	recommendations := make([]string, 0, len(issues))
	for _, issue := range issues {
		recommendations = append(recommendations, issue.Recommendation)
	}
	if len(recommendations) == 0 {
		recommendations = []string{noActionSentinel}
	}
	if issues == nil {
		issues = []Issue{}
	}

	return &Result{
		HealthScore:    score,
		Summary:        fmt.Sprintf("Device health score is %d/10. Found %d issue(s) requiring attention.", score, len(issues)),
		CriticalIssues: issues,
		Battery: Subsystem{
			Status: batteryStatus(level, health),
			Detail: fmt.Sprintf("Battery at %d%%, health: %s, temp: %s°C",
				level, health, floatOrNA(rec.Battery.TemperatureC)),
		},
		Storage: Subsystem{
			Status: storageStatus(rec.Storage),
			Detail: "User storage (/data) usage needs monitoring",
		},
		Memory: Subsystem{
			Status: memoryStatus(usedPct),
			Detail: fmt.Sprintf("RAM usage at %.1f%% (%sMB / %sMB)",
				usedPct, floatOrNA(rec.Memory.UsedMB), floatOrNA(rec.Memory.TotalMB)),
		},
		Network: Subsystem{
			Status: networkStatus(signal),
			Detail: fmt.Sprintf("Connected to %s on %s band, signal: %s",
				strOr(rec.Network.SSID, "Unknown"), bandOrUnknown(rec.Network.Band), signalOrUnknown(signal)),
		},
		SecurityFindings: []string{"Basic analysis - no deep security scan performed"},
		Recommendations:  recommendations,
		Source:           SourceRules,
	}
}

func batteryLevel(rec *collect.DeviceRecord) int {
	if rec.Battery.Level == nil {
		return 100 // no reading, assume charged rather than alarming
	}

	return *rec.Battery.Level
}

func batteryHealth(rec *collect.DeviceRecord) string {
	if rec.Battery.HealthText == "" {
		return "Unknown"
	}

	return rec.Battery.HealthText
}

func memoryUsedPercent(rec *collect.DeviceRecord) float64 {
	if rec.Memory.UsedPercent == nil {
		return 0
	}

	return *rec.Memory.UsedPercent
}

func batteryStatus(level int, health string) string {
	if health == "Good" && level > lowBatteryLevel {
		return StatusGood
	}

	return StatusWarning
}

func storageStatus(entries []collect.StorageEntry) string {
	status := StatusGood
	for _, part := range entries {
		switch {
		case part.UsePercent > storageCriticalPct:
			return StatusCritical
		case part.UsePercent > storageWarningPct:
			status = StatusWarning
		}
	}

	return status
}

func memoryStatus(usedPct float64) string {
	switch {
	case usedPct > memoryCriticalPct:
		return StatusCritical
	case usedPct > memoryWarningPct:
		return StatusWarning
	default:
		return StatusGood
	}
}

func networkStatus(signal string) string {
	if signal == "Excellent" || signal == "Good" {
		return StatusGood
	}

	return StatusWarning
}

func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}

	return fmt.Sprintf("%d", *v)
}

func floatOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}

	return fmt.Sprintf("%.1f", *v)
}

func strOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}

	return *v
}

func bandOrUnknown(band string) string {
	if band == "" {
		return "Unknown"
	}

	return band
}

func signalOrUnknown(signal string) string {
	if signal == "" {
		return "Unknown"
	}

	return signal
}
