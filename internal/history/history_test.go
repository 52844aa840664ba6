package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/droidpulse/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func testRecorder(t *testing.T) history.Recorder {
	t.Helper()

	recorder, err := history.NewService(history.Config{
		DBPath:  filepath.Join(t.TempDir(), "history.db"),
		Enabled: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = recorder.Close() })

	return recorder
}

func TestRecordAndRecent(t *testing.T) {
	recorder := testRecorder(t)
	ctx := context.Background()

	first := &history.ScanRecord{
		Timestamp:      time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		DeviceSerial:   "ABC123",
		Model:          "Pixel 7",
		HealthScore:    9,
		AnalysisSource: "ai",
		BatteryLevel:   intPtr(85),
		BatteryTempC:   floatPtr(28.5),
		StorageMaxUsed: intPtr(86),
		MemoryUsedPct:  floatPtr(60.0),
		RSSI:           intPtr(-55),
		IssueCount:     0,
	}
	second := &history.ScanRecord{
		Timestamp:      time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		DeviceSerial:   "ABC123",
		Model:          "Pixel 7",
		HealthScore:    6,
		AnalysisSource: "rules",
		IssueCount:     2,
	}

	require.NoError(t, recorder.Record(ctx, first))
	require.NoError(t, recorder.Record(ctx, second))

	scans, err := recorder.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, scans, 2)

	// Newest first
	assert.Equal(t, 6, scans[0].HealthScore)
	assert.Equal(t, "rules", scans[0].AnalysisSource)
	assert.Nil(t, scans[0].BatteryLevel, "Absent readings stay NULL through the round trip")

	assert.Equal(t, 9, scans[1].HealthScore)
	require.NotNil(t, scans[1].BatteryLevel)
	assert.Equal(t, 85, *scans[1].BatteryLevel)
	require.NotNil(t, scans[1].BatteryTempC)
	assert.InDelta(t, 28.5, *scans[1].BatteryTempC, 0.001)
	require.NotNil(t, scans[1].RSSI)
	assert.Equal(t, -55, *scans[1].RSSI)
	assert.Equal(t, first.Timestamp.Unix(), scans[1].Timestamp.Unix())
}

func TestRecentLimit(t *testing.T) {
	recorder := testRecorder(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		scan := &history.ScanRecord{
			Timestamp:      time.Now().Add(time.Duration(i) * time.Minute),
			DeviceSerial:   "ABC123",
			HealthScore:    10,
			AnalysisSource: "rules",
		}
		require.NoError(t, recorder.Record(ctx, scan))
	}

	scans, err := recorder.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, scans, 3)
}

func TestRecordNil(t *testing.T) {
	recorder := testRecorder(t)

	assert.Error(t, recorder.Record(context.Background(), nil))
}

func TestDisabledRecorderIsNoop(t *testing.T) {
	recorder, err := history.NewService(history.Config{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, recorder.Record(ctx, &history.ScanRecord{HealthScore: 5, AnalysisSource: "rules"}))

	scans, err := recorder.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, scans)
	assert.NoError(t, recorder.Close())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, history.Config{Enabled: false}.Validate())
	assert.Error(t, history.Config{Enabled: true}.Validate(), "Enabled history requires a path")
	assert.NoError(t, history.Config{Enabled: true, DBPath: "/tmp/x.db"}.Validate())
}
