package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/pipeline"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/xuri/excelize/v2"
)

// ReportService spreadsheet exports for the back office
type ReportService struct {
	customerRepo *repository.CustomerRepository
}

func NewReportService(customerRepo *repository.CustomerRepository) *ReportService {
	return &ReportService{customerRepo: customerRepo}
}

var pipelineExportHeaders = []string{
	"Customer Code", "Name", "Phone", "Lead Status", "Lead Source",
	"Interest Categories", "Pipeline Value (₹)", "Purchase Amount (₹)",
}

// ExportPipelineReport renders the scoped customer set as an XLSX workbook,
// one row per customer with their parsed pipeline estimate.
func (s *ReportService) ExportPipelineReport(ctx context.Context, scope repository.CustomerScope) (*excelize.File, string, error) {
	customers, err := s.customerRepo.FindAllInScope(ctx, scope)
	if err != nil {
		return nil, "", fmt.Errorf("list customers: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Pipeline"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range pipelineExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}
	f.SetColWidth(sheet, "A", "B", 18)
	f.SetColWidth(sheet, "F", "F", 30)

	for i := range customers {
		c := &customers[i]
		row := i + 2

		categories := ""
		for j, cat := range c.InterestCategories {
			if j > 0 {
				categories += ", "
			}
			categories += cat.CategoryType
		}

		purchase := 0.0
		if c.PurchaseAmount != nil {
			purchase = *c.PurchaseAmount
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), c.CustomerCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), c.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), c.LeadStatus)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), c.LeadSource)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), categories)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), pipeline.CustomerPipelineValue(c))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), purchase)
	}

	filename := fmt.Sprintf("pipeline-report-%s.xlsx", time.Now().Format("20060102"))
	return f, filename, nil
}
