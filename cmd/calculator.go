package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/carbonscore/carbonscore"
	"github.com/carbonscore/carbonscore/internal/demo"
	"github.com/carbonscore/carbonscore/model"
	"github.com/carbonscore/carbonscore/model/actions"
	"github.com/carbonscore/carbonscore/model/benchmark"
	"github.com/carbonscore/carbonscore/model/factors"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
)

func main() {
	flagInput := ""
	flagActionsConfig := ""
	flagFactorsSearch := ""
	flagDemoEnabled := false
	flagLogLevel := ""
	flagLogFormat := ""

	flag.StringVar(&flagInput, "input", "", "questionnaire json files, comma separated")
	flag.StringVar(&flagActionsConfig, "actions.config", "", "yaml file overriding recommendation template shares")
	flag.StringVar(&flagFactorsSearch, "factors.search", "", "print emission factors matching the query and exit")
	flag.BoolVar(&flagDemoEnabled, "demo", false, "calculate the built-in fictive company")
	flag.StringVar(&flagLogLevel, "log.level", "info", "log severity (debug, info, warn, error)")
	flag.StringVar(&flagLogFormat, "log.format", "text", "log format (text, json)")

	flag.Parse()

	initLogging(flagLogLevel, flagLogFormat)

	factorTable := factors.New()
	benchmarkTable := benchmark.New()

	if flagFactorsSearch != "" {
		for _, factor := range factorTable.Search(flagFactorsSearch, 10) {
			fmt.Printf("%s (%s): %g kgCO2e, scope %d\n", factor.Category, factor.Unit, factor.KgCO2e, factor.Scope)
		}
		return
	}

	actionsConfig := actions.DefaultConfig()
	if flagActionsConfig != "" {
		var err error
		actionsConfig, err = actions.LoadConfig(flagActionsConfig)
		if err != nil {
			slog.Error("failed to load actions config", "path", flagActionsConfig, "err", err)
			os.Exit(1)
		}
	}

	engine := model.NewEngine(factorTable, benchmarkTable, model.WithActionsConfig(actionsConfig))

	documents := loadDocuments(flagInput, flagDemoEnabled)
	if len(documents) == 0 {
		slog.Error("no questionnaire to calculate, set -input or -demo")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// The engine is pure and lock free, batch inputs run concurrently.
	results := make([]*carbonscore.Result, len(documents))
	errg := new(errgroup.Group)
	errg.SetLimit(5)
	for i, document := range documents {
		i, document := i, document
		errg.Go(func() error {
			data, err := carbonscore.DecodeQuestionnaire(document)
			if err != nil {
				return err
			}
			results[i], err = engine.Calculate(data)
			return err
		})
	}
	if err := errg.Wait(); err != nil {
		slog.Error("calculation failed", "err", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	for _, result := range results {
		if err := encoder.Encode(result); err != nil {
			slog.Error("failed to encode result", "err", err)
			os.Exit(1)
		}
	}
}

func loadDocuments(input string, demoEnabled bool) []map[string]any {
	documents := make([]map[string]any, 0)

	if demoEnabled {
		documents = append(documents, demo.Questionnaire())
	}

	if input == "" {
		return documents
	}

	for _, path := range strings.Split(input, ",") {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read questionnaire file", "path", path, "err", err)
			os.Exit(1)
		}
		document := make(map[string]any)
		if err := json.Unmarshal(raw, &document); err != nil {
			slog.Error("failed to parse questionnaire file", "path", path, "err", err)
			os.Exit(1)
		}
		documents = append(documents, document)
	}

	return documents
}

func initLogging(logLevel string, logFormat string) {
	switch logFormat {
	case "text":
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:   slogLevel(logLevel),
			NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})))
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(logLevel),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.LevelKey:
					a.Key = "severity"
					return a
				case slog.MessageKey:
					a.Key = "message"
					return a
				default:
					return a
				}
			},
		})))
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
