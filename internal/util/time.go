package util

import (
	"strconv"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/constants"
)

// ParseLogTimestamp parses a timestamp in the canonical log line format.
// It rejects impossible dates (e.g. day 32) that a shape-only check lets
// through.
func ParseLogTimestamp(s string) (time.Time, error) {
	return time.Parse(constants.TimestampLayout, s)
}

// FormatBucketStart renders a bucket start Unix timestamp in the canonical
// log line format.
func FormatBucketStart(bucketStart int64) string {
	return time.Unix(bucketStart, 0).UTC().Format(constants.TimestampLayout)
}

// FormatNumber formats an integer with thousands separators
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}

	return string(result)
}
