package collect

import "strings"

const recentErrorCap = 30

// ExtractErrorLog summarizes `logcat -d *:E` output: total error line count
// plus the last 30 lines verbatim.
func ExtractErrorLog(out string) ErrorLog {
	lines := []string{}
	if strings.TrimSpace(out) != "" {
		lines = strings.Split(out, "\n")
	}

	recent := lines
	if len(lines) > recentErrorCap {
		recent = lines[len(lines)-recentErrorCap:]
	}

	return ErrorLog{
		TotalErrors:  len(lines),
		RecentErrors: recent,
	}
}
