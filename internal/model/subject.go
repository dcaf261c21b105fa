// internal/model/subject.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TableSubjects        = "subjects"
	TableIdentifications = "identifications"
	TableAddresses       = "addresses"
	TableContactPoints   = "contact_points"
)

// Subject is a person taking part in research, either as a researcher or as
// a participant.
type Subject struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Created   time.Time  `gorm:"column:created;autoCreateTime;not null;index" json:"created"`
	Name      *string    `gorm:"column:subject_name;type:varchar(120)" json:"name" validate:"omitempty,max=120"`
	Prefix    *string    `gorm:"type:varchar(20)" json:"prefix" validate:"omitempty,max=20"`
	Suffix    *string    `gorm:"type:varchar(20)" json:"suffix" validate:"omitempty,max=20"`
	Active    bool       `gorm:"not null" json:"active"`
	Sex       Sex        `gorm:"type:varchar(1);not null" json:"sex" validate:"required,code"`
	Gender    *Gender    `gorm:"type:varchar(1)" json:"gender" validate:"omitempty,code"`
	BirthDate *Date      `gorm:"column:birth_date" json:"birth_date"`
	Ethnicity *Ethnicity `gorm:"type:varchar(2)" json:"ethnicity" validate:"omitempty,code"`

	Identifications []Identification `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"identifications,omitempty" validate:"-"`
	Addresses       []Address        `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"addresses,omitempty" validate:"-"`
	ContactPoints   []ContactPoint   `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"contact_points,omitempty" validate:"-"`
}

func (Subject) TableName() string { return TableSubjects }

func (s *Subject) Defaults() { s.Active = true }

// BeforeCreate assigns the subject identifier
func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// DisplayName returns the full name with honorifics, or the identifier when
// no name is recorded.
func (s *Subject) DisplayName() string {
	if s.Name == nil || *s.Name == "" {
		return s.ID.String()
	}
	name := *s.Name
	if s.Prefix != nil && *s.Prefix != "" {
		name = *s.Prefix + " " + name
	}
	if s.Suffix != nil && *s.Suffix != "" {
		name = name + " " + *s.Suffix
	}
	return name
}

// Identification is an external identifier such as a passport number.
type Identification struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Value     string             `gorm:"column:id_value;type:varchar(30);not null" json:"value" validate:"required,max=30"`
	Type      IdentificationType `gorm:"column:id_type;type:varchar(5);not null" json:"type" validate:"required,code"`
	SubjectID uuid.UUID          `gorm:"type:uuid;not null;index" json:"subject_id" validate:"required"`
}

func (Identification) TableName() string { return TableIdentifications }

type Address struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Use        AddressUse  `gorm:"type:varchar(1);not null" json:"use" validate:"required,code"`
	Type       AddressType `gorm:"type:varchar(2);not null" json:"type" validate:"required,code"`
	Text       string      `gorm:"type:varchar(1000);not null" json:"text" validate:"required,max=1000"`
	City       string      `gorm:"type:varchar(25);not null" json:"city" validate:"required,max=25"`
	District   *string     `gorm:"type:varchar(25)" json:"district" validate:"omitempty,max=25"`
	State      string      `gorm:"type:varchar(25);not null" json:"state" validate:"required,max=25"`
	PostalCode string      `gorm:"type:varchar(12);not null" json:"postal_code" validate:"required,max=12"`
	Country    string      `gorm:"type:varchar(2);not null" json:"country" validate:"required,max=2"`
	SubjectID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"subject_id" validate:"required"`
}

func (Address) TableName() string { return TableAddresses }

func (a *Address) Defaults() { a.FillBlank() }

func (a *Address) FillBlank() {
	if a.Type == "" {
		a.Type = AddressPhysical
	}
	if a.PostalCode == "" {
		a.PostalCode = "00000"
	}
	if a.Country == "" {
		a.Country = "MY"
	}
}

// ContactPoint is a phone number, e-mail or similar. Lower Rank is preferred.
type ContactPoint struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	System    ContactSystem `gorm:"type:varchar(12);not null" json:"system" validate:"required,code"`
	Value     string        `gorm:"type:varchar(255);not null" json:"value" validate:"required,max=255"`
	Use       ContactUse    `gorm:"type:varchar(1);not null" json:"use" validate:"required,code"`
	Rank      uint16        `gorm:"not null" json:"rank" validate:"max=32767"`
	SubjectID uuid.UUID     `gorm:"type:uuid;not null;index" json:"subject_id" validate:"required"`
}

func (ContactPoint) TableName() string { return TableContactPoints }
