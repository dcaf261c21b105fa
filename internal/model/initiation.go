package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TableInitiations     = "initiations"
	TableInitiationRoles = "initiation_roles"
)

// Initiation is a procurement initiation form for one consumable of a
// project.
type Initiation struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	FormNumber     string         `gorm:"type:varchar(12);not null" json:"form_number" validate:"required,max=12"`
	RevisionNumber int            `gorm:"not null" json:"revision_number" validate:"min=0"`
	EffectiveDate  Date           `gorm:"not null" json:"effective_date" validate:"required"`
	ConsumableID   uint           `gorm:"not null;index" json:"consumable_id" validate:"required"`
	Suppliers      datatypes.JSON `gorm:"column:list_of_suppliers" json:"suppliers,omitempty"`
	RFQSendDate    *Date          `gorm:"column:rfq_send_date" json:"rfq_send_date"`
	RFQCloseDate   *Date          `gorm:"column:rfq_close_date" json:"rfq_close_date"`
	ProjectID      uint           `gorm:"not null;index" json:"project_id" validate:"required"`

	Consumable *Consumable `gorm:"foreignKey:ConsumableID;constraint:OnDelete:CASCADE" json:"consumable,omitempty" validate:"-"`
	Project    *Project    `gorm:"foreignKey:ProjectID;constraint:OnDelete:NO ACTION" json:"project,omitempty" validate:"-"`
}

func (Initiation) TableName() string { return TableInitiations }

func (i *Initiation) Defaults() { i.FillBlank() }

func (i *Initiation) FillBlank() {
	if i.EffectiveDate.IsZero() {
		i.EffectiveDate = Today()
	}
}

// InitiationRole records one approval step of an initiation.
type InitiationRole struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Role         ApprovalStep `gorm:"type:varchar(12);not null" json:"role" validate:"required,code"`
	SubjectID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"subject_id" validate:"required"`
	InitiationID uint         `gorm:"not null;index" json:"initiation_id" validate:"required"`
	Date         Date         `gorm:"not null" json:"date" validate:"required"`

	Subject    *Subject    `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty" validate:"-"`
	Initiation *Initiation `gorm:"foreignKey:InitiationID;constraint:OnDelete:NO ACTION" json:"initiation,omitempty" validate:"-"`
}

func (InitiationRole) TableName() string { return TableInitiationRoles }

func (r *InitiationRole) Defaults() { r.FillBlank() }

func (r *InitiationRole) FillBlank() {
	if r.Date.IsZero() {
		r.Date = Today()
	}
}
