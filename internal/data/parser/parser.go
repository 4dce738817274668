package parser

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/logsleuth/logsleuth/internal/core/model"
	"github.com/logsleuth/logsleuth/internal/util"
)

// linePattern matches one log line after whitespace trimming:
// a second-precision date-time, a level token, and the message remainder.
// The level token is any run of non-whitespace; callers pick which levels
// matter at detection time, not here.
var linePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (\S+) (.+)$`)

// ParsedLine holds the raw capture groups of a matched line. The timestamp
// is still text at this point.
type ParsedLine struct {
	TimestampText string
	Level         string
	Message       string
}

// ParseLine attempts to split one raw line into its timestamp, level and
// message parts. The second return value is false when the line does not
// match the expected shape; malformed lines never produce an error.
func ParseLine(line string) (ParsedLine, bool) {
	match := linePattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return ParsedLine{}, false
	}
	return ParsedLine{
		TimestampText: match[1],
		Level:         match[2],
		Message:       match[3],
	}, true
}

// Loader reads a log file and produces the ordered event collection.
type Loader struct{}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path line by line and returns every parseable line
// as a LogEvent, in file order. A file that cannot be opened is a hard
// failure; individual malformed lines and impossible dates are skipped
// silently. An empty result only yields an aggregate warning, never an error.
func (l *Loader) Load(path string) ([]model.LogEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		util.LogErrorf("Failed to open log file: %s - %v", path, err)
		return nil, fmt.Errorf("log file %q: %w", path, err)
	}
	defer file.Close()

	var events []model.LogEvent
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineCount := 0
	skipped := 0
	for scanner.Scan() {
		lineCount++
		parsed, ok := ParseLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}

		// The regex only checks shape; this rejects impossible dates.
		timestamp, err := util.ParseLogTimestamp(parsed.TimestampText)
		if err != nil {
			util.LogDebugf("Skip line %d with invalid timestamp %q: %v", lineCount, parsed.TimestampText, err)
			skipped++
			continue
		}

		events = append(events, model.LogEvent{
			Timestamp: timestamp,
			Level:     parsed.Level,
			Message:   parsed.Message,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log file %q: %w", path, err)
	}

	util.LogDebugf("Loaded %d events from %d lines (%d skipped)", len(events), lineCount, skipped)

	if len(events) == 0 {
		util.LogWarn("No valid log entries found")
		fmt.Fprintln(os.Stderr, "Warning: No valid log entries found.")
	}

	return events, nil
}
