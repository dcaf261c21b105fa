package repository

import (
	"context"

	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectRepositoryIface is the relationship side of the subject table
// served by the traversal endpoints.
type SubjectRepositoryIface interface {
	Identifications(ctx context.Context, id uuid.UUID) ([]model.Identification, error)
	Addresses(ctx context.Context, id uuid.UUID) ([]model.Address, error)
	ContactPoints(ctx context.Context, id uuid.UUID) ([]model.ContactPoint, error)
	Roles(ctx context.Context, id uuid.UUID) ([]model.SubjectRole, error)
	Approvals(ctx context.Context, id uuid.UUID) ([]model.InitiationRole, error)
}

var _ SubjectRepositoryIface = (*SubjectRepository)(nil)

type SubjectRepository struct {
	*Table[model.Subject, uuid.UUID]
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	t := NewTable[model.Subject, uuid.UUID](db, "subject")
	t.order = []string{"created", "id"}
	t.immutable = []string{"created"}
	return &SubjectRepository{Table: t}
}

// Create stores a new subject under a freshly generated identifier. Any
// identifier already set on s is discarded.
func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	s.ID = uuid.Nil
	return r.Table.Create(ctx, s)
}

func (r *SubjectRepository) Identifications(ctx context.Context, id uuid.UUID) ([]model.Identification, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.Identification](ctx, r.db, "identifications", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("subject_id = ?", id).Order("id")
	})
}

func (r *SubjectRepository) Addresses(ctx context.Context, id uuid.UUID) ([]model.Address, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.Address](ctx, r.db, "addresses", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("subject_id = ?", id).Order("id")
	})
}

// ContactPoints returns the contact points of a subject, preferred first.
func (r *SubjectRepository) ContactPoints(ctx context.Context, id uuid.UUID) ([]model.ContactPoint, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.ContactPoint](ctx, r.db, "contact points", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("subject_id = ?", id).Order("rank").Order("id")
	})
}

// Roles returns the project roles held by a subject.
func (r *SubjectRepository) Roles(ctx context.Context, id uuid.UUID) ([]model.SubjectRole, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.SubjectRole](ctx, r.db, "subject roles", func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Project").Preload("Organization").Where("subject_id = ?", id).Order("id")
	})
}

// Approvals returns the initiation approval steps signed by a subject.
func (r *SubjectRepository) Approvals(ctx context.Context, id uuid.UUID) ([]model.InitiationRole, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.InitiationRole](ctx, r.db, "approvals", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("subject_id = ?", id).Order("date").Order("id")
	})
}
