package collect_test

import (
	"testing"

	"codeberg.org/mutker/droidpulse/internal/collect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dfOutput = `Filesystem       Size  Used Avail Use% Mounted on
/dev/root        5.8G  5.1G  700M  89% /
tmpfs            2.9G  1.2M  2.9G   1% /dev
/dev/block/dm-37 107G   91G   16G  86% /data
/dev/fuse        107G   91G   16G  86% /storage/emulated
/dev/block/sda1  256M   45M  211M  18% /metadata`

func TestExtractStorage(t *testing.T) {
	entries := collect.ExtractStorage(dfOutput)

	require.Len(t, entries, 2, "Only user-relevant mounts survive")

	assert.Equal(t, "/data", entries[0].MountedOn)
	assert.Equal(t, "/dev/block/dm-37", entries[0].Filesystem)
	assert.Equal(t, "107G", entries[0].Size)
	assert.Equal(t, "91G", entries[0].Used)
	assert.Equal(t, "16G", entries[0].Available)
	assert.Equal(t, 86, entries[0].UsePercent)

	assert.Equal(t, "/storage/emulated", entries[1].MountedOn)
}

func TestExtractStorageSkipsMalformedLines(t *testing.T) {
	out := "Filesystem Size Used Avail Use% Mounted on\n" +
		"/dev/fuse 107G 91G\n" + // too few fields
		"/dev/fuse 107G 91G 16G N/A% /data\n" // unparseable percent
	entries := collect.ExtractStorage(out)

	assert.Empty(t, entries)
}

func TestExtractStorageEmptyOutput(t *testing.T) {
	assert.Empty(t, collect.ExtractStorage(""))
}
