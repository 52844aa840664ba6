package collect_test

import (
	"testing"

	"codeberg.org/mutker/droidpulse/internal/collect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cpuinfoOutput = `Load: 6.11 / 5.68 / 5.42
CPU usage from 305885ms to 5885ms ago (2023-01-12 10:15:00 to 10:20:00):
  41% 1891/com.android.systemui: 28% user + 13% kernel / faults: 7410 minor
  12% 1200/system_server: 8.5% user + 3.5% kernel / faults: 920 minor 3 major
  2.1% 2411/com.google.android.gms: 1.5% user + 0.6% kernel
100% TOTAL: 64% user + 30% kernel + 6% iowait`

func TestExtractCpu(t *testing.T) {
	c := collect.ExtractCpu(cpuinfoOutput)

	require.NotNil(t, c.Load1Min)
	assert.InDelta(t, 6.11, *c.Load1Min, 0.001)
	require.NotNil(t, c.Load5Min)
	assert.InDelta(t, 5.68, *c.Load5Min, 0.001)
	require.NotNil(t, c.Load15Min)
	assert.InDelta(t, 5.42, *c.Load15Min, 0.001)

	require.Len(t, c.TopConsumers, 3, "Unindented TOTAL line is not a consumer")
	assert.InDelta(t, 41.0, c.TopConsumers[0].CpuPercent, 0.001)
	assert.Equal(t, 1891, c.TopConsumers[0].PID)
	assert.Equal(t, "com.android.systemui", c.TopConsumers[0].Process)
	assert.Equal(t, "28% user + 13% kernel / faults: 7410 minor", c.TopConsumers[0].Details)

	assert.InDelta(t, 2.1, c.TopConsumers[2].CpuPercent, 0.001)
}

func TestExtractCpuNoLoadLine(t *testing.T) {
	c := collect.ExtractCpu("  5% 123/proc: 5% user")

	assert.Nil(t, c.Load1Min)
	require.Len(t, c.TopConsumers, 1)
	assert.Equal(t, 123, c.TopConsumers[0].PID)
}
