package repository

import (
	"context"

	"github.com/dangerclosesec/resadmin/internal/model"
	"gorm.io/gorm"
)

// ProjectRepositoryIface is the relationship side of the project table
// served by the traversal endpoints.
type ProjectRepositoryIface interface {
	Researchers(ctx context.Context, id uint) ([]model.SubjectRole, error)
	Consumables(ctx context.Context, id uint) ([]model.Consumable, error)
	Votes(ctx context.Context, id uint) ([]model.Vote, error)
	Initiations(ctx context.Context, id uint) ([]model.Initiation, error)
}

var _ ProjectRepositoryIface = (*ProjectRepository)(nil)

type ProjectRepository struct {
	*Table[model.Project, uint]
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{Table: NewTable[model.Project, uint](db, "project")}
}

// Researchers returns the project team, one entry per role assignment, with
// the subject and organization loaded.
func (r *ProjectRepository) Researchers(ctx context.Context, id uint) ([]model.SubjectRole, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.SubjectRole](ctx, r.db, "researchers", func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Subject").Preload("Organization").Where("project_id = ?", id).Order("id")
	})
}

// Consumables returns the project's requirements with their specification
// and item loaded.
func (r *ProjectRepository) Consumables(ctx context.Context, id uint) ([]model.Consumable, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.Consumable](ctx, r.db, "consumables", func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Specification.Item").Where("project_id = ?", id).Order("id")
	})
}

func (r *ProjectRepository) Votes(ctx context.Context, id uint) ([]model.Vote, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.Vote](ctx, r.db, "votes", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("project_id = ?", id).Order("id")
	})
}

func (r *ProjectRepository) Initiations(ctx context.Context, id uint) ([]model.Initiation, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.Initiation](ctx, r.db, "initiations", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("project_id = ?", id).Order("effective_date").Order("id")
	})
}
