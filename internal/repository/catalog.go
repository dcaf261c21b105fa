package repository

import (
	"context"

	"github.com/dangerclosesec/resadmin/internal/model"
	"gorm.io/gorm"
)

type ItemRepository struct {
	*Table[model.Item, uint]
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{Table: NewTable[model.Item, uint](db, "item")}
}

func (r *ItemRepository) Specifications(ctx context.Context, id uint) ([]model.Specification, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.Specification](ctx, r.db, "specifications", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("item_id = ?", id).Order("id")
	})
}

type SpecificationRepository struct {
	*Table[model.Specification, uint]
}

func NewSpecificationRepository(db *gorm.DB) *SpecificationRepository {
	return &SpecificationRepository{Table: NewTable[model.Specification, uint](db, "specification")}
}

// Consumables returns the project requirements for a specification.
func (r *SpecificationRepository) Consumables(ctx context.Context, id uint) ([]model.Consumable, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.Consumable](ctx, r.db, "consumables", func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Project").Where("specification_id = ?", id).Order("id")
	})
}
