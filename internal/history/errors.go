package history

import "codeberg.org/mutker/droidpulse/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("history_invalid_db_path")

	// Schema Errors
	ErrSchemaInitFailed       = errors.ErrorCode("history_schema_init_failed")
	ErrSchemaValidationFailed = errors.ErrorCode("history_schema_validation_failed")
	ErrTransactionFailed      = errors.ErrorCode("history_transaction_failed")

	// Storage Errors
	ErrStorageInit  = errors.ErrInitFailed
	ErrStorageClose = errors.ErrShutdownFailed

	// Recording Errors
	ErrInvalidScan  = errors.ErrorCode("history_invalid_scan")
	ErrRecordFailed = errors.ErrorCode("history_record_failed")
	ErrQueryFailed  = errors.ErrorCode("history_query_failed")
)
