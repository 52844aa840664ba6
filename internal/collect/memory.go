package collect

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const topConsumerCap = 10

var meminfoPatterns = map[string]*regexp.Regexp{
	"total_kb":     regexp.MustCompile(`MemTotal:\s+(\d+)`),
	"free_kb":      regexp.MustCompile(`MemFree:\s+(\d+)`),
	"available_kb": regexp.MustCompile(`MemAvailable:\s+(\d+)`),
	"buffers_kb":   regexp.MustCompile(`Buffers:\s+(\d+)`),
	"cached_kb":    regexp.MustCompile(`Cached:\s+(\d+)`),
}

// Matches dumpsys meminfo totals like "  123,456K: com.example (pid 1234)".
var reMemConsumer = regexp.MustCompile(`^\s+([\d,]+)K:\s+(.+?)(?:\s+\(pid.*)?$`)

// ExtractMemory parses /proc/meminfo plus `dumpsys meminfo`. Derived fields
// are computed only when their inputs are present; kilobyte fields are
// mirrored into megabytes rounded to one decimal.
func ExtractMemory(meminfo, dumpsys string) Memory {
	f := ExtractFields(meminfo, meminfoPatterns)

	m := Memory{
		TotalKB:     f.Int("total_kb"),
		FreeKB:      f.Int("free_kb"),
		AvailableKB: f.Int("available_kb"),
		BuffersKB:   f.Int("buffers_kb"),
		CachedKB:    f.Int("cached_kb"),
	}

	if m.TotalKB != nil && m.AvailableKB != nil && *m.TotalKB > 0 {
		used := *m.TotalKB - *m.AvailableKB
		m.UsedKB = &used
		pct := round1(float64(used) / float64(*m.TotalKB) * 100)
		m.UsedPercent = &pct
	}

	m.TotalMB = kbToMB(m.TotalKB)
	m.FreeMB = kbToMB(m.FreeKB)
	m.AvailableMB = kbToMB(m.AvailableKB)
	m.BuffersMB = kbToMB(m.BuffersKB)
	m.CachedMB = kbToMB(m.CachedKB)
	m.UsedMB = kbToMB(m.UsedKB)

	m.TopConsumers = extractMemConsumers(dumpsys)

	return m
}

// extractMemConsumers keeps source order and stops once the cap is reached.
func extractMemConsumers(out string) []MemoryConsumer {
	var consumers []MemoryConsumer
	for _, line := range strings.Split(out, "\n") {
		if len(consumers) >= topConsumerCap {
			break
		}
		m := reMemConsumer.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		kb, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		consumers = append(consumers, MemoryConsumer{
			MemoryKB: kb,
			Process:  strings.TrimSpace(m[2]),
		})
	}

	return consumers
}

func kbToMB(kb *int) *float64 {
	if kb == nil {
		return nil
	}
	mb := round1(float64(*kb) / 1024)

	return &mb
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
