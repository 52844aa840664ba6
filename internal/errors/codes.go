package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrUnavailable     ErrorCode = "service_unavailable"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrMissingConfig ErrorCode = "missing_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Device bridge errors
	ErrBridgeNotFound    ErrorCode = "bridge_executable_not_found"
	ErrBridgeTimeout     ErrorCode = "bridge_command_timeout"
	ErrBridgeFailed      ErrorCode = "bridge_command_failed"
	ErrNoDevices         ErrorCode = "no_devices_found"
	ErrDeviceNotFound    ErrorCode = "device_not_found"
	ErrDeviceUnreachable ErrorCode = "device_unreachable"

	// Collection errors
	ErrCollectFailed ErrorCode = "collect_failed"

	// Analysis errors
	ErrAnalysisUnavailable ErrorCode = "analysis_service_unavailable"
	ErrAnalysisParse       ErrorCode = "analysis_parse_failed"
	ErrAnalysisInvalid     ErrorCode = "analysis_invalid_shape"

	// Network diagnostics errors
	ErrNoDeviceIP   ErrorCode = "no_device_ip"
	ErrSwitchFailed ErrorCode = "connection_switch_failed"
	ErrPingFailed   ErrorCode = "ping_failed"

	// Report errors
	ErrReportWrite ErrorCode = "report_write_failed"

	// Operation errors
	ErrOperationFailed ErrorCode = "operation_failed"
	ErrTimeout         ErrorCode = "operation_timeout"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:            "Internal error occurred",
	ErrInvalidArgument:     "Invalid argument provided",
	ErrUnavailable:         "Service unavailable",
	ErrAlreadyRunning:      "Another instance is already running",
	ErrInvalidConfig:       "Invalid configuration",
	ErrMissingConfig:       "Missing configuration",
	ErrBindFlags:           "Failed to bind flags",
	ErrReadConfig:          "Failed to read configuration",
	ErrInvalidLogLevel:     "Invalid log level",
	ErrInitFailed:          "Initialization failed",
	ErrShutdownFailed:      "Shutdown failed",
	ErrBridgeNotFound:      "Device bridge executable not found",
	ErrBridgeTimeout:       "Device bridge command timed out",
	ErrBridgeFailed:        "Device bridge command failed",
	ErrNoDevices:           "No devices found",
	ErrDeviceNotFound:      "Requested device not found",
	ErrDeviceUnreachable:   "Device unreachable",
	ErrCollectFailed:       "Failed to collect device data",
	ErrAnalysisUnavailable: "Analysis service unavailable",
	ErrAnalysisParse:       "Failed to parse analysis reply",
	ErrAnalysisInvalid:     "Analysis reply has invalid shape",
	ErrNoDeviceIP:          "Could not determine device IP address",
	ErrSwitchFailed:        "Connection mode switch failed",
	ErrPingFailed:          "Latency probe failed",
	ErrReportWrite:         "Failed to write report",
	ErrOperationFailed:     "Operation failed",
	ErrTimeout:             "Operation timed out",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
