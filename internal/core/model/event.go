package model

import "time"

// LogEvent is a single parsed log line. Events are built once by the loader
// and treated as read-only afterward.
type LogEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// Anomaly is a time bucket whose event count exceeded the threshold.
// BucketStart is the Unix timestamp of the bucket's floored start.
type Anomaly struct {
	BucketStart int64 `json:"bucketStart"`
	Count       int   `json:"count"`
}

// Report is the full detection result for one run. An empty Anomalies slice
// is a normal outcome, not an error.
type Report struct {
	Level           string    `json:"level"`
	Threshold       int       `json:"threshold"`
	IntervalSeconds int       `json:"intervalSeconds"`
	EventCount      int       `json:"eventCount"`
	MatchedCount    int       `json:"matchedCount"`
	Anomalies       []Anomaly `json:"anomalies"`
}

// HasAnomalies reports whether any bucket exceeded the threshold.
func (r *Report) HasAnomalies() bool {
	return len(r.Anomalies) > 0
}
