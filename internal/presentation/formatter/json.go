package formatter

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/logsleuth/logsleuth/internal/core/model"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonReport is the wire shape: the report plus, on request, the full
// parsed event collection.
type jsonReport struct {
	*model.Report
	Events []model.LogEvent `json:"events,omitempty"`
}

func (f *JSONFormatter) Format(report *model.Report, events []model.LogEvent, showEvents bool) error {
	out := jsonReport{Report: report}
	if showEvents {
		out.Events = events
	}
	// Keep anomalies as [] rather than null for consumers.
	if out.Anomalies == nil {
		out.Anomalies = []model.Anomaly{}
	}

	data, err := sonic.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
