// Command sybilscope runs the Analysis Engine over an event log read from
// disk and writes the resulting AnalysisResult as JSON.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sybilscope/sybilscope/config"
	"github.com/sybilscope/sybilscope/engine"
	"github.com/sybilscope/sybilscope/ingest"
	"github.com/sybilscope/sybilscope/model"
)

func main() {
	input := flag.String("input", "", "path to the event log (csv or jsonl, by extension)")
	format := flag.String("format", "", "input format override: csv or jsonl")
	settingsPath := flag.String("settings", "", "path to a YAML settings override file")
	output := flag.String("output", "", "path to write the JSON AnalysisResult (default: stdout)")
	indent := flag.Bool("indent", false, "pretty-print the output JSON")
	verbose := flag.Bool("verbose", false, "log progress stages to stderr")
	flag.Parse()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if *input == "" {
		logger.Error("missing required -input flag")
		os.Exit(2)
	}

	settings := model.DefaultSettings()
	if *settingsPath != "" {
		f, err := os.Open(*settingsPath)
		if err != nil {
			logger.Error("opening settings file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		settings, err = config.DecodeSettingsYAML(f)
		if err != nil {
			logger.Error("decoding settings", "error", err)
			os.Exit(1)
		}
	}

	f, err := os.Open(*input)
	if err != nil {
		logger.Error("opening input", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	logs, rowErrors, err := parseInput(f, *input, *format)
	if err != nil {
		logger.Error("parsing input", "error", err)
		os.Exit(1)
	}
	for _, rowErr := range rowErrors {
		logger.Warn("degraded record", "row", rowErr.Row, "reason", rowErr.Reason)
	}
	logger.Info("ingested log", "events", len(logs), "degraded", len(rowErrors))

	result := engine.Analyze(logs, settings, func(stage string, pct int) {
		logger.Info("analysis progress", "stage", stage, "pct", pct)
	})

	encoded, err := model.EncodeJSON(result, *indent)
	if err != nil {
		logger.Error("encoding result", "error", err)
		os.Exit(1)
	}

	if *output == "" {
		fmt.Println(string(encoded))
		return
	}
	if err := os.WriteFile(*output, encoded, 0o644); err != nil {
		logger.Error("writing output", "error", err)
		os.Exit(1)
	}
}

func parseInput(f *os.File, path, formatOverride string) ([]model.Event, []ingest.RowError, error) {
	format := formatOverride
	if format == "" {
		switch {
		case strings.HasSuffix(path, ".jsonl"), strings.HasSuffix(path, ".ndjson"):
			format = "jsonl"
		default:
			format = "csv"
		}
	}

	switch format {
	case "jsonl", "ndjson":
		logs, errs := ingest.ParseJSONLines(f)
		return logs, errs, nil
	case "csv":
		logs, errs := ingest.ParseCSV(f)
		return logs, errs, nil
	default:
		return nil, nil, fmt.Errorf("unrecognized format %q", format)
	}
}
