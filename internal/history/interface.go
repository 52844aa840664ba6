package history

import (
	"context"
	"time"
)

// Recorder defines the core domain interface for scan history.
type Recorder interface {
	Record(ctx context.Context, scan *ScanRecord) error
	Recent(ctx context.Context, limit int) ([]ScanRecord, error)
	Close() error
}

// Repository defines the interface for scan history storage.
type Repository interface {
	Record(scan *ScanRecord) error
	Recent(limit int) ([]ScanRecord, error)
	Close() error
}

// ScanRecord is the per-scan summary row kept for trend inspection. Optional
// readings that were absent from the scan are stored as NULL.
type ScanRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	DeviceSerial   string    `json:"device_serial"`
	Model          string    `json:"model"`
	HealthScore    int       `json:"health_score"`
	AnalysisSource string    `json:"analysis_source"`
	BatteryLevel   *int      `json:"battery_level,omitempty"`
	BatteryTempC   *float64  `json:"battery_temp_c,omitempty"`
	StorageMaxUsed *int      `json:"storage_max_used,omitempty"`
	MemoryUsedPct  *float64  `json:"memory_used_pct,omitempty"`
	RSSI           *int      `json:"rssi,omitempty"`
	IssueCount     int       `json:"issue_count"`
}
