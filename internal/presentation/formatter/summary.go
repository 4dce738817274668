package formatter

import (
	"fmt"

	"github.com/logsleuth/logsleuth/internal/core/model"
	"github.com/logsleuth/logsleuth/internal/util"
)

// SummaryFormatter prints the classic one-line-per-anomaly console report.
type SummaryFormatter struct{}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(report *model.Report, events []model.LogEvent, showEvents bool) error {
	if showEvents {
		fmt.Println("Full Log Analysis:")
		for _, event := range events {
			fmt.Printf("%s %s %s\n",
				event.Timestamp.Format("2006-01-02 15:04:05"), event.Level, event.Message)
		}
		fmt.Println()
	}

	if !report.HasAnomalies() {
		fmt.Printf("No anomalies detected for %s logs over a %d-second interval (threshold: %d).\n",
			report.Level, report.IntervalSeconds, report.Threshold)
		return nil
	}

	for _, anomaly := range report.Anomalies {
		fmt.Printf("🚨 Anomaly detected! %d %s logs in %d seconds at %s\n",
			anomaly.Count, report.Level, report.IntervalSeconds,
			util.FormatBucketStart(anomaly.BucketStart))
	}
	return nil
}
