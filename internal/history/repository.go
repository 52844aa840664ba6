package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

type repository struct {
	db *sql.DB
}

func NewRepository(cfg Config) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  cfg.DBPath,
			Error: err.Error(),
		})
	}

	dsn := cfg.DBPath + "?_journal=WAL&_auto_vacuum=2"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}

	if err := ValidateSchema(db); err != nil {
		db.Close()
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "schema_version",
			Error: err.Error(),
		})
	}

	logger.Debug().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("History repository initialized")

	return &repository{db: db}, nil
}

// Record inserts one scan row. A scan tool writes a single row per run, so
// there is no batching; the insert runs in its own transaction.
func (r *repository) Record(scan *ScanRecord) error {
	errFactory := errors.New()

	tx, err := r.db.Begin()
	if err != nil {
		return errFactory.Wrap(ErrTransactionFailed, err)
	}

	if _, err := tx.Exec(insertScanSQL,
		scan.Timestamp.Unix(),
		scan.DeviceSerial,
		scan.Model,
		int64(scan.HealthScore),
		scan.AnalysisSource,
		nullableInt(scan.BatteryLevel),
		nullableFloat(scan.BatteryTempC),
		nullableInt(scan.StorageMaxUsed),
		nullableFloat(scan.MemoryUsedPct),
		nullableInt(scan.RSSI),
		int64(scan.IssueCount),
	); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Debug().Err(rbErr).Msg("Failed to roll back transaction")
		}
		return errFactory.Wrap(ErrRecordFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return errFactory.Wrap(ErrTransactionFailed, err)
	}

	return nil
}

// Recent returns up to limit scan rows, newest first.
func (r *repository) Recent(limit int) ([]ScanRecord, error) {
	errFactory := errors.New()

	rows, err := r.db.Query(selectRecentSQL, limit)
	if err != nil {
		return nil, errFactory.Wrap(ErrQueryFailed, err)
	}
	defer rows.Close()

	var scans []ScanRecord
	for rows.Next() {
		var (
			scan    ScanRecord
			ts      int64
			level   sql.NullInt64
			tempC   sql.NullFloat64
			maxUsed sql.NullInt64
			usedPct sql.NullFloat64
			rssi    sql.NullInt64
		)
		if err := rows.Scan(&ts, &scan.DeviceSerial, &scan.Model,
			&scan.HealthScore, &scan.AnalysisSource,
			&level, &tempC, &maxUsed, &usedPct, &rssi,
			&scan.IssueCount); err != nil {
			return nil, errFactory.Wrap(ErrQueryFailed, err)
		}
		scan.Timestamp = time.Unix(ts, 0)
		scan.BatteryLevel = intFromNull(level)
		scan.BatteryTempC = floatFromNull(tempC)
		scan.StorageMaxUsed = intFromNull(maxUsed)
		scan.MemoryUsedPct = floatFromNull(usedPct)
		scan.RSSI = intFromNull(rssi)
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrQueryFailed, err)
	}

	return scans, nil
}

func (r *repository) Close() error {
	errFactory := errors.New()

	// Checkpoint WAL and cleanup on close
	if _, err := r.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}

	if err := r.db.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}

	return nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func floatFromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
