package repository

import (
	"context"

	"github.com/dangerclosesec/resadmin/internal/model"
	"gorm.io/gorm"
)

type InitiationRepository struct {
	*Table[model.Initiation, uint]
}

func NewInitiationRepository(db *gorm.DB) *InitiationRepository {
	return &InitiationRepository{Table: NewTable[model.Initiation, uint](db, "initiation")}
}

// Roles returns the approval chain of an initiation in date order.
func (r *InitiationRepository) Roles(ctx context.Context, id uint) ([]model.InitiationRole, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.InitiationRole](ctx, r.db, "initiation roles", func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Subject").Where("initiation_id = ?", id).Order("date").Order("id")
	})
}
