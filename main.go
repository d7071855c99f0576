package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"realestate-analyzer/config"
	"realestate-analyzer/models"
	"realestate-analyzer/parser"
	"realestate-analyzer/services"
	"realestate-analyzer/storage"
	"realestate-analyzer/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Real Estate Analyzer starting ===")
	logger.Info("Config — input: %s | report: %s | target city: %s",
		cfg.InputPath, cfg.ReportPath, cfg.TargetCity)

	reportWriter, err := storage.NewFileReportWriter(cfg.ReportPath)
	if err != nil {
		logger.Error("Failed to prepare report writer: %v", err)
		os.Exit(1)
	}

	p := parser.New(logger)
	props, err := p.LoadFile(cfg.InputPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Error("Failed to load input: %v", err)
			os.Exit(1)
		}
		logger.Warn("Input file %s not found — analyzing the built-in sample dataset instead", cfg.InputPath)
		props = parser.SampleData()
	}

	store := models.NewStore()
	for _, prop := range props {
		if !store.Add(prop) {
			logger.Debug("Duplicate property skipped: %s", prop.Describe())
		}
	}
	logger.Info("Loaded %d unique properties", store.Len())

	analytics := services.NewAnalyticsService(logger, cfg.TargetCity)
	report := analytics.Generate(store.All())
	text := analytics.Render(report)

	fmt.Print(text)

	if store.IsEmpty() {
		// Nothing was computed; keep any previous report untouched.
		return
	}

	if err := reportWriter.Write(text); err != nil {
		logger.Error("Failed to write report: %v", err)
		os.Exit(1)
	}
	logger.Info("Results written to %s", reportWriter.Path())
}
