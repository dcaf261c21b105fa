package audit

import (
	"context"

	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
)

// Trail defines read access to the audit trail of entity mutations
type Trail interface {
	// GetLog retrieves a single entry by its textual identifier
	GetLog(ctx context.Context, id string) (*model.AuditLog, error)

	// QueryLogs retrieves entries matching q, newest first, with the total
	// number of matches
	QueryLogs(ctx context.Context, q repository.AuditQuery) ([]model.AuditLog, int64, error)
}
