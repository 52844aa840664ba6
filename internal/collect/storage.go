package collect

import (
	"strconv"
	"strings"
)

// Only user-relevant partitions make it into the record; everything else in
// the df output is dropped.
var storageMounts = map[string]bool{
	"/data":             true,
	"/storage/emulated": true,
}

// ExtractStorage parses `df -h` output, keeping report order and any
// duplicate mount paths as reported.
func ExtractStorage(out string) []StorageEntry {
	var entries []StorageEntry

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 { // header line
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 {
			continue
		}
		mount := parts[5]
		if !storageMounts[mount] {
			continue
		}

		pct, err := strconv.Atoi(strings.TrimSuffix(parts[4], "%"))
		if err != nil {
			continue
		}

		entries = append(entries, StorageEntry{
			Filesystem: parts[0],
			Size:       parts[1],
			Used:       parts[2],
			Available:  parts[3],
			UsePercent: pct,
			MountedOn:  mount,
		})
	}

	return entries
}
