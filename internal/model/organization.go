// internal/model/organization.go
package model

const (
	TableOrganizations             = "organizations"
	TableOrganizationContactPoints = "organization_contact_points"
)

// Organization is a legal or administrative body. Organizations form a tree
// through ManagerID; a manager cannot be deleted while it has subordinates.
type Organization struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Active      bool                `gorm:"not null" json:"active"`
	Type        OrganizationType    `gorm:"type:varchar(12);not null" json:"type" validate:"required,code"`
	Name        string              `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Purpose     OrganizationPurpose `gorm:"type:varchar(12);not null" json:"purpose" validate:"required,code"`
	AddressType AddressType         `gorm:"type:varchar(2);not null" json:"address_type" validate:"required,code"`
	Address     string              `gorm:"type:varchar(1000);not null" json:"address" validate:"required,max=1000"`
	City        string              `gorm:"type:varchar(25);not null" json:"city" validate:"required,max=25"`
	District    *string             `gorm:"type:varchar(25)" json:"district" validate:"omitempty,max=25"`
	State       string              `gorm:"type:varchar(25);not null" json:"state" validate:"required,max=25"`
	PostalCode  string              `gorm:"type:varchar(12);not null" json:"postal_code" validate:"required,max=12"`
	Country     string              `gorm:"type:varchar(2);not null" json:"country" validate:"required,max=2"`
	ManagerID   *uint               `gorm:"index" json:"manager_id"`

	Manager       *Organization              `gorm:"foreignKey:ManagerID;constraint:OnDelete:RESTRICT" json:"manager,omitempty" validate:"-"`
	ContactPoints []OrganizationContactPoint `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"contact_points,omitempty" validate:"-"`
}

func (Organization) TableName() string { return TableOrganizations }

func (o *Organization) Defaults() {
	o.Active = true
	o.FillBlank()
}

func (o *Organization) FillBlank() {
	if o.AddressType == "" {
		o.AddressType = AddressPhysical
	}
	if o.PostalCode == "" {
		o.PostalCode = "00000"
	}
	if o.Country == "" {
		o.Country = "MY"
	}
}

type OrganizationContactPoint struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	System         OrgContactSystem `gorm:"type:varchar(5);not null" json:"system" validate:"required,code"`
	Value          string           `gorm:"type:varchar(255);not null" json:"value" validate:"required,max=255"`
	Use            OrgContactUse    `gorm:"type:varchar(1);not null" json:"use" validate:"required,code"`
	OrganizationID uint             `gorm:"not null;index" json:"organization_id" validate:"required"`
}

func (OrganizationContactPoint) TableName() string { return TableOrganizationContactPoints }

func (c *OrganizationContactPoint) Defaults() { c.FillBlank() }

func (c *OrganizationContactPoint) FillBlank() {
	if c.Use == "" {
		c.Use = OrgContactUseEnquiry
	}
}
