package analyzer

import (
	"fmt"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/model"
	"github.com/logsleuth/logsleuth/internal/data/parser"
	"github.com/logsleuth/logsleuth/internal/detector"
	"github.com/logsleuth/logsleuth/internal/presentation/formatter"
	"github.com/logsleuth/logsleuth/internal/util"
)

// Config carries one run's parameters. Threshold and IntervalSeconds have
// been validated as positive by the configuration layer.
type Config struct {
	LogFile         string
	Level           string
	Threshold       int
	IntervalSeconds int
	OutputFormat    string
	ShowEvents      bool
}

// Analyzer wires the loader, detector and formatter into the single-pass
// pipeline: read file, build collection, run detection, report.
type Analyzer struct {
	config   *Config
	loader   *parser.Loader
	detector *detector.Detector
}

func New(config *Config) *Analyzer {
	return &Analyzer{
		config:   config,
		loader:   parser.NewLoader(),
		detector: detector.New(config.Level, config.Threshold, config.IntervalSeconds),
	}
}

// Run executes the pipeline. Only a file that cannot be read fails the run;
// an empty collection or an anomaly-free result is reported normally.
func (a *Analyzer) Run() error {
	report, events, err := a.Analyze()
	if err != nil {
		return err
	}

	outputStart := time.Now()
	err = formatter.New(a.config.OutputFormat).Format(report, events, a.config.ShowEvents)
	util.LogDebugf("Output phase duration: %v", time.Since(outputStart))
	return err
}

// Analyze runs loading and detection without formatting, for callers that
// consume the report directly.
func (a *Analyzer) Analyze() (*model.Report, []model.LogEvent, error) {
	startTime := time.Now()
	util.LogInfof("Starting analysis of %s", a.config.LogFile)

	loadStart := time.Now()
	events, err := a.loader.Load(a.config.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load logs: %w", err)
	}
	util.LogDebugf("Load phase duration: %v, %d events", time.Since(loadStart), len(events))

	detectStart := time.Now()
	report := a.detector.Detect(events)
	util.LogDebugf("Detect phase duration: %v, %d anomalies", time.Since(detectStart), len(report.Anomalies))

	util.LogDebugf("Total analysis duration: %v", time.Since(startTime))
	return report, events, nil
}
