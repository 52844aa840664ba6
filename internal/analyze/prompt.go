package analyze

import (
	"encoding/json"
	"fmt"

	"codeberg.org/mutker/droidpulse/internal/collect"
)

// promptErrorCap bounds how many recent error lines go into the prompt so
// the request stays well under model context limits.
const promptErrorCap = 10

const promptTemplate = `You are DroidPulse, an expert Android device health analyst.
Analyze the following device health data and provide a comprehensive report.

DEVICE DATA:
%s

Respond ONLY in the following JSON format, no markdown, no backticks:
{
    "health_score": <1-10 integer, 10 being perfect health>,
    "summary": "<2-3 sentence overall health summary>",
    "critical_issues": [
        {
            "category": "<battery|storage|memory|cpu|network|security>",
            "severity": "<critical|warning|info>",
            "description": "<what the issue is>",
            "recommendation": "<what to do about it>"
        }
    ],
    "battery_analysis": {
        "status": "<good|warning|critical>",
        "detail": "<battery health assessment>"
    },
    "storage_analysis": {
        "status": "<good|warning|critical>",
        "detail": "<storage usage assessment>"
    },
    "memory_analysis": {
        "status": "<good|warning|critical>",
        "detail": "<memory usage assessment with top consumers>"
    },
    "network_analysis": {
        "status": "<good|warning|critical>",
        "detail": "<network and WiFi assessment>"
    },
    "security_findings": [
        "<any security concerns from installed apps or error logs>"
    ],
    "recommendations": [
        "<actionable recommendation 1>",
        "<actionable recommendation 2>",
        "<actionable recommendation 3>"
    ]
}`

// BuildPrompt serializes a reduced view of the record into the analysis
// instruction. The error log is trimmed to its total count plus the first
// few recent lines.
func BuildPrompt(rec *collect.DeviceRecord) (string, error) {
	reduced := *rec
	reduced.ErrorLog = collect.ErrorLog{
		TotalErrors:  rec.ErrorLog.TotalErrors,
		RecentErrors: capLines(rec.ErrorLog.RecentErrors, promptErrorCap),
	}

	data, err := json.MarshalIndent(&reduced, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize device record: %w", err)
	}

	return fmt.Sprintf(promptTemplate, data), nil
}

func capLines(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}

	return lines[:n]
}
