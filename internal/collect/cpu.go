package collect

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCpuLoad     = regexp.MustCompile(`Load:\s+([\d.]+)\s*/\s*([\d.]+)\s*/\s*([\d.]+)`)
	reCpuConsumer = regexp.MustCompile(`^\s+([\d.]+)%\s+(\d+)/(.+?):\s+(.*)`)
)

// ExtractCpu parses `dumpsys cpuinfo`: the 1/5/15 minute load averages and
// the per-process usage lines, capped at ten in source order.
func ExtractCpu(out string) Cpu {
	var c Cpu

	if m := reCpuLoad.FindStringSubmatch(out); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			c.Load1Min = &v
		}
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			c.Load5Min = &v
		}
		if v, err := strconv.ParseFloat(m[3], 64); err == nil {
			c.Load15Min = &v
		}
	}

	for _, line := range strings.Split(out, "\n") {
		if len(c.TopConsumers) >= topConsumerCap {
			break
		}
		m := reCpuConsumer.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		pct, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		pid, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		c.TopConsumers = append(c.TopConsumers, CpuConsumer{
			CpuPercent: pct,
			PID:        pid,
			Process:    strings.TrimSpace(m[3]),
			Details:    strings.TrimSpace(m[4]),
		})
	}

	return c
}
