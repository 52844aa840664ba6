package history

import (
	"database/sql"

	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/logger"
)

const (
	SchemaVersion = 1

	createTablesSQL = `
	   CREATE TABLE IF NOT EXISTS schema_versions (
	       version     INTEGER PRIMARY KEY,
	       applied_at  TEXT NOT NULL
	   );
	   CREATE TABLE IF NOT EXISTS scans (
	       timestamp         INTEGER PRIMARY KEY,
	       device_serial     TEXT NOT NULL,
	       model             TEXT NOT NULL DEFAULT '',
	       health_score      INTEGER NOT NULL CHECK (health_score BETWEEN 1 AND 10),
	       analysis_source   TEXT NOT NULL CHECK (analysis_source IN ('ai', 'rules')),
	       battery_level     INTEGER,
	       battery_temp_c    REAL,
	       storage_max_used  INTEGER,
	       memory_used_pct   REAL,
	       rssi              INTEGER,
	       issue_count       INTEGER NOT NULL
	   );`

	insertScanSQL = `
    INSERT INTO scans (
        timestamp, device_serial, model,
        health_score, analysis_source,
        battery_level, battery_temp_c,
        storage_max_used, memory_used_pct, rssi,
        issue_count
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectRecentSQL = `
    SELECT timestamp, device_serial, model,
           health_score, analysis_source,
           battery_level, battery_temp_c,
           storage_max_used, memory_used_pct, rssi,
           issue_count
    FROM scans
    ORDER BY timestamp DESC
    LIMIT ?`
)

// InitSchema creates a new database schema with the current version
func InitSchema(db *sql.DB) error {
	errFactory := errors.New()

	tx, err := db.Begin()
	if err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				logger.Debug().Err(err).Msg("Failed to rollback transaction")
			}
		}
	}()

	if _, err := tx.Exec(createTablesSQL); err != nil {
		return errFactory.WithData(ErrSchemaInitFailed, struct {
			Error string
			SQL   string
		}{
			Error: err.Error(),
			SQL:   createTablesSQL,
		})
	}

	if _, err := tx.Exec(`
        INSERT INTO schema_versions (version, applied_at)
        VALUES (?, datetime('now'))
    `, SchemaVersion); err != nil {
		return errFactory.WithData(ErrSchemaInitFailed, struct {
			Error string
			Phase string
		}{
			Error: err.Error(),
			Phase: "record_version",
		})
	}

	if err := tx.Commit(); err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}
	committed = true

	logger.Debug().Int("version", SchemaVersion).Msg("History schema initialized")

	return nil
}

// GetSchemaVersion returns the current schema version
func GetSchemaVersion(db *sql.DB) (int, error) {
	errFactory := errors.New()

	exists, err := tableExists(db, "schema_versions")
	if err != nil {
		return 0, errFactory.Wrap(ErrSchemaValidationFailed, err)
	}
	if !exists {
		return 0, nil
	}

	var version int
	err = db.QueryRow(`
        SELECT version
        FROM schema_versions
        ORDER BY version DESC
        LIMIT 1
    `).Scan(&version)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errFactory.Wrap(ErrSchemaValidationFailed, err)
	}

	return version, nil
}

// ValidateSchema initializes the schema on first open and rejects databases
// written by a newer version of the tool.
func ValidateSchema(db *sql.DB) error {
	errFactory := errors.New()

	version, err := GetSchemaVersion(db)
	if err != nil {
		return err
	}

	switch {
	case version == 0:
		return InitSchema(db)
	case version == SchemaVersion:
		return nil
	default:
		return errFactory.WithData(ErrSchemaValidationFailed, struct {
			Found    int
			Expected int
		}{
			Found:    version,
			Expected: SchemaVersion,
		})
	}
}

func tableExists(db *sql.DB, tableName string) (bool, error) {
	errFactory := errors.New()

	var exists bool
	err := db.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM sqlite_master
            WHERE type='table' AND name=?
        )
    `, tableName).Scan(&exists)
	if err != nil {
		return false, errFactory.Wrap(ErrSchemaValidationFailed, err)
	}

	return exists, nil
}
