package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const TableAuditLogs = "audit_logs"

// AuditAction names the kind of mutation recorded in an AuditLog
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// AuditLog records one successful mutation and who performed it
type AuditLog struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Timestamp time.Time   `json:"timestamp" gorm:"not null;index"`
	Action    AuditAction `json:"action" gorm:"type:varchar(12);not null"`
	Entity    string      `json:"entity" gorm:"type:varchar(40);not null;index:idx_audit_entity"`
	EntityID  string      `json:"entity_id" gorm:"type:varchar(64);not null;index:idx_audit_entity"`
	Actor     string      `json:"actor" gorm:"type:varchar(120);not null;index"`
	Changes   JSONMap     `json:"changes,omitempty"`
	RequestID string      `json:"request_id,omitempty" gorm:"type:varchar(64)"`
}

func (AuditLog) TableName() string { return TableAuditLogs }

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	switch a.Action {
	case AuditCreate, AuditUpdate, AuditDelete:
		return nil
	default:
		return fmt.Errorf("unknown audit action %q", a.Action)
	}
}

// JSONMap is a JSON object stored in a text or jsonb column
type JSONMap map[string]interface{}

func (JSONMap) GormDataType() string { return "json" }

// GormDBDataType picks jsonb on PostgreSQL
func (JSONMap) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, m)
	}
	return json.Unmarshal(bytes, m)
}

// ToChanges flattens an entity into a JSONMap through its JSON encoding
func ToChanges(v any) JSONMap {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out JSONMap
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}
