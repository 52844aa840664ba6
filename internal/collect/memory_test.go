package collect_test

import (
	"fmt"
	"strings"
	"testing"

	"codeberg.org/mutker/droidpulse/internal/collect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meminfoOutput = `MemTotal:        7812344 kB
MemFree:          311624 kB
MemAvailable:    3124936 kB
Buffers:           12208 kB
Cached:          2951540 kB
SwapCached:        42180 kB`

const meminfoDumpsys = `Total PSS by process:
    512,340K: com.android.systemui (pid 1891)
    301,225K: system (pid 1200)
    150,100K: com.google.android.gms (pid 2411 / activities)
Total PSS by OOM adjustment:`

func TestExtractMemory(t *testing.T) {
	m := collect.ExtractMemory(meminfoOutput, meminfoDumpsys)

	require.NotNil(t, m.TotalKB)
	assert.Equal(t, 7812344, *m.TotalKB)
	require.NotNil(t, m.AvailableKB)
	assert.Equal(t, 3124936, *m.AvailableKB)

	require.NotNil(t, m.UsedKB)
	assert.Equal(t, 7812344-3124936, *m.UsedKB, "Used is derived from total minus available")
	require.NotNil(t, m.UsedPercent)
	assert.InDelta(t, 60.0, *m.UsedPercent, 0.1)

	require.NotNil(t, m.TotalMB)
	assert.InDelta(t, 7629.2, *m.TotalMB, 0.1, "Kilobytes mirrored into megabytes, one decimal")

	require.Len(t, m.TopConsumers, 3)
	assert.Equal(t, 512340, m.TopConsumers[0].MemoryKB)
	assert.Equal(t, "com.android.systemui", m.TopConsumers[0].Process, "pid suffix is stripped")
	assert.Equal(t, "system", m.TopConsumers[1].Process)
}

func TestExtractMemoryConsumerCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Total PSS by process:\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, "    %d,000K: proc%d (pid %d)\n", 100-i, i, 1000+i)
	}

	m := collect.ExtractMemory("", sb.String())

	assert.Len(t, m.TopConsumers, 10, "Consumer list is capped at ten")
	assert.Equal(t, "proc0", m.TopConsumers[0].Process, "Source order is kept")
	assert.Equal(t, "proc9", m.TopConsumers[9].Process)
}

func TestExtractMemoryMissingTotals(t *testing.T) {
	m := collect.ExtractMemory("MemFree: 1000 kB", "")

	assert.Nil(t, m.TotalKB)
	assert.Nil(t, m.UsedKB, "No derivation without total and available")
	assert.Nil(t, m.UsedPercent)
	require.NotNil(t, m.FreeKB)
	assert.Equal(t, 1000, *m.FreeKB)
}
