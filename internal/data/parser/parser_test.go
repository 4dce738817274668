package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantMatch bool
		want      ParsedLine
	}{
		{
			name:      "valid error line",
			line:      "2025-03-29 14:23:45 ERROR Database connection failed",
			wantMatch: true,
			want: ParsedLine{
				TimestampText: "2025-03-29 14:23:45",
				Level:         "ERROR",
				Message:       "Database connection failed",
			},
		},
		{
			name:      "message keeps internal spaces",
			line:      "2025-03-29 14:23:45 INFO user=bob action=login ok",
			wantMatch: true,
			want: ParsedLine{
				TimestampText: "2025-03-29 14:23:45",
				Level:         "INFO",
				Message:       "user=bob action=login ok",
			},
		},
		{
			name:      "surrounding whitespace is stripped",
			line:      "   2025-03-29 14:23:45 WARN disk almost full \n",
			wantMatch: true,
			want: ParsedLine{
				TimestampText: "2025-03-29 14:23:45",
				Level:         "WARN",
				Message:       "disk almost full",
			},
		},
		{
			name:      "level token is not an enum",
			line:      "2025-03-29 14:23:45 error[disk] something odd",
			wantMatch: true,
			want: ParsedLine{
				TimestampText: "2025-03-29 14:23:45",
				Level:         "error[disk]",
				Message:       "something odd",
			},
		},
		{
			name:      "leading text before the date does not match",
			line:      "prefix 2025-03-29 14:23:45 ERROR boom",
			wantMatch: false,
		},
		{
			name:      "missing message does not match",
			line:      "2025-03-29 14:23:45 ERROR",
			wantMatch: false,
		},
		{
			name:      "free text does not match",
			line:      "this is not a log line",
			wantMatch: false,
		},
		{
			name:      "empty line does not match",
			line:      "",
			wantMatch: false,
		},
		{
			name:      "short date does not match",
			line:      "2025-3-29 14:23:45 ERROR boom",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.want, parsed)
			}
		})
	}
}

func TestLoaderLoadValidFile(t *testing.T) {
	loader := NewLoader()
	tempDir := t.TempDir()

	content := `2025-03-29 14:23:45 ERROR first
2025-03-29 14:23:50 WARN second
2025-03-29 14:23:55 ERROR third
`
	testFile := filepath.Join(tempDir, "app.log")
	require.NoError(t, os.WriteFile(testFile, []byte(content), 0644))

	events, err := loader.Load(testFile)

	require.NoError(t, err)
	require.Len(t, events, 3)

	// File order is preserved, never re-sorted.
	assert.Equal(t, "first", events[0].Message)
	assert.Equal(t, "second", events[1].Message)
	assert.Equal(t, "third", events[2].Message)
	assert.Equal(t, "ERROR", events[0].Level)
	assert.Equal(t, "WARN", events[1].Level)

	want := time.Date(2025, 3, 29, 14, 23, 45, 0, time.UTC)
	assert.True(t, events[0].Timestamp.Equal(want))
}

func TestLoaderLoadSkipsMalformedLines(t *testing.T) {
	loader := NewLoader()
	tempDir := t.TempDir()

	content := `2025-03-29 14:23:45 ERROR kept
random noise
another bad line
2025-03-29 14:23:50 ERROR also kept
`
	testFile := filepath.Join(tempDir, "mixed.log")
	require.NoError(t, os.WriteFile(testFile, []byte(content), 0644))

	events, err := loader.Load(testFile)

	require.NoError(t, err, "Malformed lines should be skipped, not fail the run")
	require.Len(t, events, 2)
	assert.Equal(t, "kept", events[0].Message)
	assert.Equal(t, "also kept", events[1].Message)
}

func TestLoaderLoadDropsImpossibleDates(t *testing.T) {
	loader := NewLoader()
	tempDir := t.TempDir()

	// Day 32 passes the shape check but not the timestamp parse.
	content := `2025-03-32 14:23:45 ERROR impossible date
2025-03-29 25:00:00 ERROR impossible hour
2025-03-29 14:23:45 ERROR valid
`
	testFile := filepath.Join(tempDir, "dates.log")
	require.NoError(t, os.WriteFile(testFile, []byte(content), 0644))

	events, err := loader.Load(testFile)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "valid", events[0].Message)
}

func TestLoaderLoadOnlyMalformedLines(t *testing.T) {
	loader := NewLoader()
	tempDir := t.TempDir()

	content := "garbage\nmore garbage\n"
	testFile := filepath.Join(tempDir, "garbage.log")
	require.NoError(t, os.WriteFile(testFile, []byte(content), 0644))

	events, err := loader.Load(testFile)

	require.NoError(t, err, "A file with zero usable lines is a warning, not an error")
	assert.Empty(t, events)
}

func TestLoaderLoadEmptyFile(t *testing.T) {
	loader := NewLoader()
	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "empty.log")
	require.NoError(t, os.WriteFile(testFile, []byte(""), 0644))

	events, err := loader.Load(testFile)

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLoaderLoadMissingFile(t *testing.T) {
	loader := NewLoader()

	missing := filepath.Join(t.TempDir(), "does-not-exist.log")
	events, err := loader.Load(missing)

	require.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), missing, "Error should name the path")
}
