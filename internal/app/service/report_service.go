package service

import (
	"fmt"
	"strings"

	"github.com/mrcow/mrcow-backend/internal/app/repository"
	"github.com/mrcow/mrcow-backend/pkg/logger"
	"github.com/mrcow/mrcow-backend/pkg/money"
	"github.com/xuri/excelize/v2"
)

// ReportService writes the franchise directory and menu catalog to an
// Excel workbook for ops handoffs.
type ReportService interface {
	ExportDirectory(path string) error
}

type reportService struct {
	locationRepo repository.LocationRepository
	menuRepo     repository.MenuRepository
}

func NewReportService(locationRepo repository.LocationRepository, menuRepo repository.MenuRepository) ReportService {
	return &reportService{
		locationRepo: locationRepo,
		menuRepo:     menuRepo,
	}
}

func (s *reportService) ExportDirectory(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeLocationsSheet(f); err != nil {
		return err
	}
	if err := s.writeMenuSheet(f); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("Directory report exported", map[string]interface{}{
		"path": path,
	})
	return nil
}

func (s *reportService) writeLocationsSheet(f *excelize.File) error {
	const sheet = "Locations"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"ID", "Name", "City", "State", "Phone", "Latitude", "Longitude", "Features", "Active"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, location := range s.locationRepo.FindAll() {
		values := []interface{}{
			location.ID,
			location.Name,
			location.Address.City,
			location.Address.State,
			location.Contact.Phone,
			location.Coordinates.Latitude,
			location.Coordinates.Longitude,
			strings.Join(location.Features, ", "),
			location.IsActive,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *reportService) writeMenuSheet(f *excelize.File) error {
	const sheet = "Menu"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"ID", "Name", "Korean Name", "Category", "Price", "Popular", "Allergens"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, item := range s.menuRepo.FindAll() {
		values := []interface{}{
			item.ID,
			item.Name,
			item.KoreanName,
			string(item.Category),
			money.FormatUSD(item.Price),
			item.IsPopular,
			strings.Join(item.Allergens, ", "),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
