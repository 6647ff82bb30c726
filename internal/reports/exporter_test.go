package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sandesh021/event-listing-backend/internal/event"
)

func sampleEvents() []event.Event {
	return []event.Event{
		{
			ID:               1,
			Title:            "Go Meetup",
			Date:             "2026-09-12",
			Time:             "18:30",
			Location:         "Community Hall",
			Price:            "Free",
			Category:         "Tech",
			CreatedBy:        "organizer@example.com",
			CreatedAt:        time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:               2,
			Title:            "Jazz Night",
			Date:             "2026-09-20",
			Time:             "20:00",
			Location:         "Blue Note",
			Price:            "$25",
			Category:         "Music",
			CreatedBy:        "venue@example.com",
			CreatedAt:        time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestExport_CSV(t *testing.T) {
	data, filename, contentType, err := NewExporter().Export(FormatCSV, sampleEvents())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, reportHeaders, records[0])
	assert.Equal(t, "Go Meetup", records[1][1])
	assert.Equal(t, "venue@example.com", records[2][7])
}

func TestExport_Excel(t *testing.T) {
	data, filename, contentType, err := NewExporter().Export(FormatExcel, sampleEvents())
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Events", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Go Meetup", title)

	price, err := f.GetCellValue("Events", "F3")
	require.NoError(t, err)
	assert.Equal(t, "$25", price)
}

func TestExport_PDF(t *testing.T) {
	data, filename, contentType, err := NewExporter().Export(FormatPDF, sampleEvents())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, _, _, err := NewExporter().Export("docx", sampleEvents())
	assert.Error(t, err)
}

func TestExport_CSVEmptyList(t *testing.T) {
	data, _, _, err := NewExporter().Export(FormatCSV, nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, reportHeaders, records[0])
}
