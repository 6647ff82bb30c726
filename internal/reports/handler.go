package reports

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh021/event-listing-backend/internal/event"
)

type Handler struct {
	Store    event.Store
	Exporter Exporter
}

func NewHandler(store event.Store) *Handler {
	return &Handler{
		Store:    store,
		Exporter: NewExporter(),
	}
}

// ExportEvents godoc
// @Summary Export events
// @Description Downloads the current event list as CSV, Excel or PDF
// @Tags reports
// @Produce octet-stream
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/events/export [get]
func (h *Handler) ExportEvents(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)

	events, err := h.Store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}

	data, filename, contentType, err := h.Exporter.Export(format, events)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, contentType, data)
}
