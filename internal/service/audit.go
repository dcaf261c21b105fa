// internal/service/audit.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/resadmin/internal/audit"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
)

// Ensure AuditService implements the audit.Trail interface
var _ audit.Trail = (*AuditService)(nil)

// AuditService records and queries the audit trail of entity mutations
type AuditService struct {
	repo *repository.AuditLogRepository
}

// NewAuditService creates a new AuditService
func NewAuditService(repo *repository.AuditLogRepository) *AuditService {
	return &AuditService{
		repo: repo,
	}
}

// record writes an audit entry through the transaction-bound store tx
func (s *AuditService) record(ctx context.Context, tx *repository.Store, actor string, action model.AuditAction, entity string, id any, changes model.JSONMap) error {
	log := &model.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityID:  fmt.Sprint(id),
		Actor:     actor,
		Changes:   changes,
		RequestID: middleware.GetReqID(ctx),
		Timestamp: time.Now().UTC(),
	}
	return tx.AuditLogs.Create(ctx, log)
}

// GetLog retrieves a single audit entry
func (s *AuditService) GetLog(ctx context.Context, id string) (*model.AuditLog, error) {
	logID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, logID)
}

// QueryLogs retrieves audit entries matching q, newest first
func (s *AuditService) QueryLogs(ctx context.Context, q repository.AuditQuery) ([]model.AuditLog, int64, error) {
	return s.repo.Query(ctx, q)
}
