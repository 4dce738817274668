package constants

const (
	// Canonical log line timestamp layout (second precision)
	TimestampLayout = "2006-01-02 15:04:05"

	// Detection defaults
	DefaultLevel           = "ERROR"
	DefaultThreshold       = 3
	DefaultIntervalSeconds = 30
)
