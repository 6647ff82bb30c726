package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/sandesh021/event-listing-backend/internal/event"
)

// Supported export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)

// Exporter renders the event list as a downloadable report.
type Exporter interface {
	Export(format string, events []event.Event) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

// Export returns payload, filename and content type for the requested format.
func (e *exporter) Export(format string, events []event.Event) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(events)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("events_report_%s.csv", timestamp)
		return data, filename, "text/csv", nil

	case FormatExcel:
		data, err := e.exportExcel(events)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("events_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportPDF(events)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("events_report_%s.pdf", timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

var reportHeaders = []string{"ID", "Title", "Date", "Time", "Location", "Price", "Category", "Created By", "Created At"}

func (e *exporter) exportCSV(events []event.Event) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(reportHeaders); err != nil {
		return nil, err
	}

	for _, ev := range events {
		record := []string{
			strconv.FormatUint(uint64(ev.ID), 10),
			ev.Title,
			ev.Date,
			ev.Time,
			ev.Location,
			ev.Price,
			ev.Category,
			ev.CreatedBy,
			ev.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	// Important: Flush before getting bytes
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportExcel(events []event.Event) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Events"
	f.SetSheetName("Sheet1", sheetName)

	for i, header := range reportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, ev := range events {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), ev.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), ev.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), ev.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), ev.Time)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), ev.Location)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), ev.Price)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), ev.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), ev.CreatedBy)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), ev.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportPDF(events []event.Event) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Events Report")
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{15, 60, 25, 15, 50, 25, 30, 45, 30}
	pdfHeaders := []string{"ID", "Title", "Date", "Time", "Location", "Price", "Category", "Created By", "Created At"}

	for i, header := range pdfHeaders {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, ev := range events {
		pdf.CellFormat(widths[0], 6, strconv.FormatUint(uint64(ev.ID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, ev.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, ev.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, ev.Time, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, ev.Location, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, ev.Price, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 6, ev.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[7], 6, ev.CreatedBy, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[8], 6, ev.CreatedAt.Format("02-01-06"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
