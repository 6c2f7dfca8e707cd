package main

import (
	"flag"
	"os"

	"github.com/mrcow/mrcow-backend/internal/app/repository"
	"github.com/mrcow/mrcow-backend/internal/app/service"
	"github.com/mrcow/mrcow-backend/pkg/logger"
)

// Exports the location directory and menu catalog to an Excel workbook.
func main() {
	out := flag.String("out", "mrcow-directory.xlsx", "output workbook path")
	flag.Parse()

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	reportService := service.NewReportService(
		repository.NewLocationRepository(),
		repository.NewMenuRepository(),
	)

	if err := reportService.ExportDirectory(*out); err != nil {
		logger.Error("Export failed", err, map[string]interface{}{
			"path": *out,
		})
		os.Exit(1)
	}
}
