package formatter

import (
	"fmt"
	"strings"

	"github.com/logsleuth/logsleuth/internal/core/model"
	"github.com/logsleuth/logsleuth/internal/util"
)

type TableFormatter struct {
	anomalyHeaders []string
	eventHeaders   []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		anomalyHeaders: []string{"Bucket Start", "Count", "Threshold"},
		eventHeaders:   []string{"Timestamp", "Level", "Message"},
	}
}

func (f *TableFormatter) Format(report *model.Report, events []model.LogEvent, showEvents bool) error {
	if showEvents {
		f.printEvents(events)
		fmt.Println()
	}

	fmt.Printf("Level: %s  Threshold: %d  Interval: %ds  Events: %s (%s matching)\n",
		report.Level, report.Threshold, report.IntervalSeconds,
		util.FormatNumber(report.EventCount), util.FormatNumber(report.MatchedCount))

	if !report.HasAnomalies() {
		fmt.Printf("No anomalies detected for %s logs over a %d-second interval (threshold: %d).\n",
			report.Level, report.IntervalSeconds, report.Threshold)
		return nil
	}

	rows := make([][]string, 0, len(report.Anomalies))
	for _, anomaly := range report.Anomalies {
		rows = append(rows, []string{
			util.FormatBucketStart(anomaly.BucketStart),
			util.FormatNumber(anomaly.Count),
			util.FormatNumber(report.Threshold),
		})
	}

	f.printTable(f.anomalyHeaders, rows, nil)
	return nil
}

// printEvents dumps the full parsed collection, capping the message column
// to the terminal width.
func (f *TableFormatter) printEvents(events []model.LogEvent) {
	// Width left for the message after the fixed columns and borders.
	maxMessage := util.TerminalWidth() - 40
	if maxMessage < 20 {
		maxMessage = 20
	}

	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			event.Timestamp.Format("2006-01-02 15:04:05"),
			event.Level,
			util.TruncateString(event.Message, maxMessage),
		})
	}

	leftAlign := []bool{true, true, true}
	f.printTable(f.eventHeaders, rows, leftAlign)
}

// printTable renders a bordered table. leftAlign defaults to left for the
// first column and right for the rest when nil.
func (f *TableFormatter) printTable(headers []string, rows [][]string, leftAlign []bool) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = util.DisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := util.DisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	if leftAlign == nil {
		leftAlign = make([]bool, len(headers))
		leftAlign[0] = true
	}

	f.printBorder(widths, "top")
	f.printRow(headers, widths, leftAlign)
	f.printBorder(widths, "middle")
	for _, row := range rows {
		f.printRow(row, widths, leftAlign)
	}
	f.printBorder(widths, "bottom")
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat(separator, width+2))
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

// printRow prints a data row with proper alignment
func (f *TableFormatter) printRow(values []string, widths []int, leftAlign []bool) {
	fmt.Print("│")
	for i, value := range values {
		fmt.Printf(" %s │", util.PadString(value, widths[i], leftAlign[i]))
	}
	fmt.Println()
}
