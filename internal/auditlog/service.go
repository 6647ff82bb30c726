package auditlog

import (
	"context"
	"encoding/json"
	"log"
	"math"
)

// Service records and queries the audit trail. LogAction is best-effort:
// a failed audit write never fails the request that triggered it.
type Service interface {
	LogAction(ctx context.Context, eventID *uint, action string, details map[string]interface{}, ip, status string)
	List(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, eventID *uint, action string, details map[string]interface{}, ip, status string) {
	payload, err := json.Marshal(details)
	if err != nil {
		log.Printf("⚠️ audit: could not marshal details for %s: %v", action, err)
		payload = []byte("{}")
	}

	entry := &AuditLog{
		EventID:   eventID,
		Action:    action,
		Details:   payload,
		IPAddress: ip,
		Status:    status,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("⚠️ audit: failed to record %s: %v", action, err)
	}
}

func (s *service) List(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error) {
	logs, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	return &PaginatedAuditLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// NewNoopService returns a Service that drops entries. Used with the
// in-memory store, which has no audit table to write to.
func NewNoopService() Service {
	return noopService{}
}

type noopService struct{}

func (noopService) LogAction(context.Context, *uint, string, map[string]interface{}, string, string) {
}

func (noopService) List(context.Context, AuditLogFilter) (*PaginatedAuditLogs, error) {
	return &PaginatedAuditLogs{Data: []AuditLog{}, Page: 1, Limit: 20}, nil
}
