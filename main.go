package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/acadtools/ttexport/config"
	"github.com/acadtools/ttexport/export"
	"github.com/acadtools/ttexport/source"
)

func main() {
	var cfg = config.ExportConfig{}

	flag.Var(&cfg.SubjectMatcher.MatchRaw, "subject", "Subjects to include (repeatable, ~ prefix for regexp)")
	flag.Var(&cfg.DayMatcher.MatchRaw, "day", "Days to include (repeatable, ~ prefix for regexp)")

	var sourceName string

	flag.StringVar(&sourceName, "source", "demo", "Schedule source (demo, json)")
	flag.StringVar(&cfg.Input, "input", "", "Schedule document for the json source")
	flag.StringVar(&cfg.Format, "format", "xlsx", "Output format (xlsx, pdf, json, pjson, pgsql)")
	flag.StringVar(&cfg.Mode, "mode", config.ModeStudent, "View mode (student, teacher)")
	flag.StringVar(&cfg.BaseName, "base", "", "Artifact base name")
	flag.StringVar(&cfg.Out, "out", ".", "Output directory (pgsql: connection credentials)")
	flag.Int64Var(&cfg.Seed, "seed", 51, "Demo source seed")

	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	src := source.New(sourceName, cfg)
	if src == nil {
		fmt.Println(sourceName + " source not found.")
		os.Exit(1)
	}

	s, meta, err := src.Load()
	if err != nil {
		fmt.Println("Failed to load the schedule,", err)
		os.Exit(1)
	}

	exporter := export.New(logger)
	artifact, err := exporter.Export(s, meta, export.Options{
		Format:   cfg.Format,
		Mode:     cfg.GroupingMode(),
		BaseName: cfg.BaseName,
		Out:      cfg.Out,
	})
	if err != nil {
		fmt.Println("Failed to export the schedule,", err)
		os.Exit(1)
	}

	for _, w := range artifact.Warnings {
		logger.Warn("data quality", zap.String("warning", w.String()))
	}

	fmt.Println(artifact.Name)
}
