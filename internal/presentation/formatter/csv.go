package formatter

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/logsleuth/logsleuth/internal/core/model"
	"github.com/logsleuth/logsleuth/internal/util"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(report *model.Report, events []model.LogEvent, showEvents bool) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if showEvents {
		if err := writer.Write([]string{"timestamp", "level", "message"}); err != nil {
			return err
		}
		for _, event := range events {
			record := []string{
				event.Timestamp.Format("2006-01-02 15:04:05"),
				event.Level,
				event.Message,
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
		// Blank record separates the two sections.
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
		os.Stdout.WriteString("\n")
	}

	if err := writer.Write([]string{"bucket_start", "count"}); err != nil {
		return err
	}
	for _, anomaly := range report.Anomalies {
		record := []string{
			util.FormatBucketStart(anomaly.BucketStart),
			strconv.Itoa(anomaly.Count),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
