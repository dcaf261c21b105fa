package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for audit log entries
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create inserts a new audit log entry
func (r *AuditLogRepository) Create(ctx context.Context, log *model.AuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// FindByID retrieves an audit log entry by its ID
func (r *AuditLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AuditLog, error) {
	var log model.AuditLog
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&log)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, &domain.NotFoundError{Entity: "audit log", ID: id}
		}
		return nil, fmt.Errorf("failed to find audit log: %w", result.Error)
	}
	return &log, nil
}

// AuditQuery holds parameters for querying audit logs
type AuditQuery struct {
	Action    model.AuditAction
	Entity    string
	EntityID  string
	Actor     string
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}

// Query retrieves audit logs matching q, newest first, with the total count
func (r *AuditLogRepository) Query(ctx context.Context, q AuditQuery) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.AuditLog{})

	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		query = query.Where("entity = ?", q.Entity)
	}
	if q.EntityID != "" {
		query = query.Where("entity_id = ?", q.EntityID)
	}
	if q.Actor != "" {
		query = query.Where("actor = ?", q.Actor)
	}
	if !q.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", q.StartTime)
	}
	if !q.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", q.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	} else {
		query = query.Limit(100)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}

	if err := query.Order("timestamp DESC").Order("id").Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query audit logs: %w", err)
	}
	return logs, count, nil
}
