package event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// parseID validates the :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return 0, false
	}
	return uint(id), true
}

// ===========================
// 📄 List Events - GET /api/events
//
// List godoc
// @Summary List all events
// @Description Returns every event, newest first
// @Tags events
// @Produce json
// @Success 200 {array} Event
// @Failure 500 {object} map[string]string
// @Router /api/events [get]
func (h *Handler) List(c *gin.Context) {
	events, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	if events == nil {
		events = []Event{}
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// 🔍 Get Event - GET /api/events/:id
//
// Get godoc
// @Summary Get one event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} Event
// @Failure 404 {object} map[string]string
// @Router /api/events/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ===========================
// 👤 Events By Creator - GET /api/events/user/:email
//
// ListByCreator godoc
// @Summary List events created by a user
// @Tags events
// @Produce json
// @Param email path string true "Creator email"
// @Success 200 {array} Event
// @Failure 500 {object} map[string]string
// @Router /api/events/user/{email} [get]
func (h *Handler) ListByCreator(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	events, err := h.Service.ListByCreator(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	if events == nil {
		events = []Event{}
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// 🎯 Create Event - POST /api/events
//
// Create godoc
// @Summary Create an event
// @Description Validates required fields, applies defaults and persists the record
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event payload"
// @Success 201 {object} Event
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/events [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	e, err := h.Service.Create(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// ===========================
// 🛠 Replace Event - PUT /api/events/:id
//
// Replace godoc
// @Summary Replace an event
// @Description Full replace; the event ID and creation time are preserved
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body ReplaceEventRequest true "Event payload"
// @Success 200 {object} Event
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/events/{id} [put]
func (h *Handler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReplaceEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	e, err := h.Service.Replace(c.Request.Context(), id, &req, c.ClientIP())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ===========================
// ❌ Delete Event - DELETE /api/events/:id
//
// Delete godoc
// @Summary Delete an event
// @Description Removes the event and returns the deleted record
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} Event
// @Failure 404 {object} map[string]string
// @Router /api/events/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, err := h.Service.Delete(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, removed)
}
