package formatter

import "github.com/logsleuth/logsleuth/internal/core/model"

// Formatter renders a detection report to stdout. ShowEvents additionally
// dumps the full parsed event collection for inspection.
type Formatter interface {
	Format(report *model.Report, events []model.LogEvent, showEvents bool) error
}

// New returns the formatter for the given output format name. Unknown names
// fall back to the table formatter; the config layer validates names before
// they get here.
func New(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	case "csv":
		return NewCSVFormatter()
	case "summary":
		return NewSummaryFormatter()
	default:
		return NewTableFormatter()
	}
}
