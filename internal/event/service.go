package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandesh021/event-listing-backend/internal/auditlog"
	"github.com/sandesh021/event-listing-backend/utils"
)

const (
	cacheKeyAll    = "events:all"
	cacheKeyPrefix = "events:id:"
)

// Service wraps business logic for event listings: defaults, caching,
// audit logging and notification fan-out around the Store.
type Service struct {
	Store    Store
	AuditSvc auditlog.Service
}

func NewService(store Store, auditSvc auditlog.Service) *Service {
	return &Service{
		Store:    store,
		AuditSvc: auditSvc,
	}
}

// ===========================
// 📄 List all events (cache-aside)
func (s *Service) List(ctx context.Context) ([]Event, error) {
	if data, ok := utils.CacheGet(ctx, cacheKeyAll); ok {
		var events []Event
		if err := json.Unmarshal(data, &events); err == nil {
			return events, nil
		}
	}

	events, err := s.Store.List()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(events); err == nil {
		utils.CacheSet(ctx, cacheKeyAll, data)
	}
	return events, nil
}

// ===========================
// 🔍 Get one event (cache-aside)
func (s *Service) Get(ctx context.Context, id uint) (*Event, error) {
	key := fmt.Sprintf("%s%d", cacheKeyPrefix, id)
	if data, ok := utils.CacheGet(ctx, key); ok {
		var e Event
		if err := json.Unmarshal(data, &e); err == nil {
			return &e, nil
		}
	}

	e, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(e); err == nil {
		utils.CacheSet(ctx, key, data)
	}
	return e, nil
}

// ===========================
// 👤 List events by creator email
func (s *Service) ListByCreator(ctx context.Context, email string) ([]Event, error) {
	return s.Store.ListByCreator(email)
}

// ===========================
// 🎯 Create Event
func (s *Service) Create(ctx context.Context, req *CreateEventRequest, ip string) (*Event, error) {
	e := req.toEvent()

	if err := s.Store.Create(e); err != nil {
		s.AuditSvc.LogAction(ctx, nil, "EVENT_CREATED",
			map[string]interface{}{
				"title":      req.Title,
				"created_by": req.CreatedBy,
				"error":      err.Error(),
			}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &e.ID, "EVENT_CREATED",
		map[string]interface{}{
			"event_id":   e.ID,
			"title":      e.Title,
			"category":   e.Category,
			"date":       e.Date,
			"location":   e.Location,
			"created_by": e.CreatedBy,
		}, ip, "success")

	utils.PublishNotification(ctx, "event.created", e)
	s.invalidate(ctx, e.ID)

	return e, nil
}

// ===========================
// 🛠 Replace Event (PUT semantics: every field overwritten, identity kept)
func (s *Service) Replace(ctx context.Context, id uint, req *ReplaceEventRequest, ip string) (*Event, error) {
	existing, err := s.Store.GetByID(id)
	if err != nil {
		s.AuditSvc.LogAction(ctx, &id, "EVENT_REPLACED",
			map[string]interface{}{
				"event_id": id,
				"error":    err.Error(),
			}, ip, "failure")
		return nil, err
	}

	e := &Event{
		ID:               existing.ID,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Date:             req.Date,
		Time:             req.Time,
		Location:         req.Location,
		Price:            req.Price,
		Category:         req.Category,
		ImageURL:         req.ImageURL,
		CreatedBy:        req.CreatedBy,
		CreatedAt:        existing.CreatedAt,
	}
	applyDefaults(e)

	if err := s.Store.Replace(e); err != nil {
		s.AuditSvc.LogAction(ctx, &id, "EVENT_REPLACED",
			map[string]interface{}{
				"event_id": id,
				"title":    req.Title,
				"error":    err.Error(),
			}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &id, "EVENT_REPLACED",
		map[string]interface{}{
			"event_id": e.ID,
			"title":    e.Title,
		}, ip, "success")

	utils.PublishNotification(ctx, "event.updated", e)
	s.invalidate(ctx, id)

	return e, nil
}

// ===========================
// ❌ Delete Event, returning the removed record
func (s *Service) Delete(ctx context.Context, id uint, ip string) (*Event, error) {
	removed, err := s.Store.Delete(id)
	if err != nil {
		s.AuditSvc.LogAction(ctx, &id, "EVENT_DELETED",
			map[string]interface{}{
				"event_id": id,
				"error":    err.Error(),
			}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &id, "EVENT_DELETED",
		map[string]interface{}{
			"event_id": id,
			"title":    removed.Title,
		}, ip, "success")

	utils.PublishNotification(ctx, "event.deleted", removed)
	s.invalidate(ctx, id)

	return removed, nil
}

func (s *Service) invalidate(ctx context.Context, id uint) {
	utils.CacheInvalidate(ctx, cacheKeyAll, fmt.Sprintf("%s%d", cacheKeyPrefix, id))
}
