package detector

import (
	"sort"

	"github.com/logsleuth/logsleuth/internal/core/model"
	"github.com/logsleuth/logsleuth/internal/util"
)

// Detector counts events of one level in fixed-size time buckets and flags
// buckets whose count strictly exceeds the threshold.
//
// Threshold and interval must be positive; the configuration layer validates
// this before a Detector is constructed.
type Detector struct {
	level           string
	threshold       int
	intervalSeconds int64
}

// New creates a Detector for the given level, threshold and bucket interval.
func New(level string, threshold, intervalSeconds int) *Detector {
	return &Detector{
		level:           level,
		threshold:       threshold,
		intervalSeconds: int64(intervalSeconds),
	}
}

// BucketStart floors a Unix timestamp to the start of its bucket. Buckets
// are anchored at the Unix epoch, not at the first event, so the same data
// always lands in the same buckets and separate files bucket comparably.
func (d *Detector) BucketStart(unixTimestamp int64) int64 {
	return floorDiv(unixTimestamp, d.intervalSeconds) * d.intervalSeconds
}

// floorDiv divides rounding toward negative infinity, so pre-epoch
// timestamps bucket the same way as post-epoch ones.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Detect runs the frequency analysis over the event collection and returns
// the report. It never fails: an empty collection or a level with no matches
// simply produces a report without anomalies.
func (d *Detector) Detect(events []model.LogEvent) *model.Report {
	counts := make(map[int64]int)
	matched := 0

	for _, event := range events {
		if event.Level != d.level {
			continue
		}
		matched++
		counts[d.BucketStart(event.Timestamp.Unix())]++
	}

	var anomalies []model.Anomaly
	for bucketStart, count := range counts {
		if count > d.threshold {
			anomalies = append(anomalies, model.Anomaly{
				BucketStart: bucketStart,
				Count:       count,
			})
		}
	}

	// Chronological order for readable output; the anomaly set itself does
	// not depend on map iteration order.
	sort.Slice(anomalies, func(i, j int) bool {
		return anomalies[i].BucketStart < anomalies[j].BucketStart
	})

	util.LogDebugf("Detection over %d events: %d matched level %s, %d buckets, %d anomalies",
		len(events), matched, d.level, len(counts), len(anomalies))

	return &model.Report{
		Level:           d.level,
		Threshold:       d.threshold,
		IntervalSeconds: int(d.intervalSeconds),
		EventCount:      len(events),
		MatchedCount:    matched,
		Anomalies:       anomalies,
	}
}
