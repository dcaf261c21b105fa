package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	TableProjects     = "projects"
	TableConsumables  = "consumables"
	TableSubjectRoles = "subject_roles"
	TableVotes        = "votes"
)

// Project is a funded research effort. Team members and consumables are
// reached through SubjectRole and Consumable.
type Project struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"type:varchar(400);not null" json:"title" validate:"required,max=400"`
	VoteID        string `gorm:"column:vote_id;type:varchar(25);not null" json:"vote_id" validate:"required,max=25"`
	ProjectNumber string `gorm:"type:varchar(25);not null" json:"project_number" validate:"required,max=25"`
	StartDate     Date   `gorm:"not null" json:"start_date" validate:"required"`
	EndDate       Date   `gorm:"not null" json:"end_date" validate:"required"`
}

func (Project) TableName() string { return TableProjects }

// Consumable is a specification required by a project, with quantities and
// an estimated cost.
type Consumable struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	SpecificationID   uint                `gorm:"not null;index" json:"specification_id" validate:"required"`
	ProjectID         uint                `gorm:"not null;index" json:"project_id" validate:"required"`
	QuantityRequired  int                 `gorm:"not null" json:"quantity_required" validate:"min=0"`
	QuantityRemaining int                 `gorm:"not null" json:"quantity_remaining" validate:"min=0"`
	Unit              *string             `gorm:"type:varchar(12)" json:"unit" validate:"omitempty,max=12"`
	EstimateCost      decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"estimate_cost"`
	Justification     *string             `gorm:"type:varchar(400)" json:"justification" validate:"omitempty,max=400"`

	Specification *Specification `gorm:"foreignKey:SpecificationID;constraint:OnDelete:CASCADE" json:"specification,omitempty" validate:"-"`
	Project       *Project       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty" validate:"-"`
}

func (Consumable) TableName() string { return TableConsumables }

func (c *Consumable) Defaults() { c.QuantityRequired = 1 }

// SubjectRole places a subject on a project team on behalf of an
// organization.
type SubjectRole struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	OrganizationID uint        `gorm:"not null;index" json:"organization_id" validate:"required"`
	ProjectID      uint        `gorm:"not null;index" json:"project_id" validate:"required"`
	SubjectID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"subject_id" validate:"required"`
	Role           ProjectRole `gorm:"type:varchar(10);not null" json:"role" validate:"required,code"`

	Organization *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty" validate:"-"`
	Project      *Project      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty" validate:"-"`
	Subject      *Subject      `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty" validate:"-"`
}

func (SubjectRole) TableName() string { return TableSubjectRoles }

// Vote is a funding vote for a project. Items is an opaque list of line
// items.
type Vote struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"not null;index" json:"project_id" validate:"required"`
	Items     datatypes.JSON `json:"items,omitempty"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty" validate:"-"`
}

func (Vote) TableName() string { return TableVotes }
