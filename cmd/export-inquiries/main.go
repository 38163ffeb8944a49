package main

import (
	"consulting_site_go/config"
	"consulting_site_go/models"
	"consulting_site_go/services"
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"
)

var columns = []string{"Received", "Full Name", "Email", "Phone", "Company", "Budget", "Region", "GDPR Consent", "Message"}

func main() {
	// Load configuration
	cfg := config.Load()

	out := flag.String("out", "inquiries.xlsx", "output spreadsheet path")
	days := flag.Int("days", 30, "export inquiries received in the last N days (0 for all)")
	flag.Parse()

	archive, closeArchive, err := services.OpenInquiryArchive(cfg)
	if err != nil {
		log.Fatalf("Failed to open inquiry archive: %v", err)
	}
	defer closeArchive()

	if archive == nil {
		log.Fatalf("No inquiry archive configured (INQUIRY_ARCHIVE=%s)", cfg.InquiryArchive)
	}

	var since time.Time
	if *days > 0 {
		since = time.Now().AddDate(0, 0, -*days)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	inquiries, err := archive.List(ctx, since)
	if err != nil {
		log.Fatalf("Failed to list inquiries: %v", err)
	}

	if len(inquiries) == 0 {
		log.Println("No inquiries to export.")
		return
	}

	log.Printf("Found %d inquiries. Writing %s...\n", len(inquiries), *out)

	f, err := buildWorkbook(inquiries)
	if err != nil {
		log.Fatalf("Failed to build spreadsheet: %v", err)
	}
	defer f.Close()

	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("Failed to save spreadsheet: %v", err)
	}

	log.Println("Export completed successfully!")
}

// buildWorkbook writes one row per inquiry under a bold header row
func buildWorkbook(inquiries []models.Inquiry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Inquiries"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, title := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, err
	}

	for r, inq := range inquiries {
		row := []interface{}{
			inq.CreatedAt.Format("2006-01-02 15:04"),
			inq.FullName,
			inq.Email,
			inq.Phone,
			inq.Company,
			inq.Budget,
			inq.Region,
			inq.GDPRConsent,
			inq.Message,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "H", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "I", "I", 60); err != nil {
		return nil, err
	}
	return f, nil
}
