package repository

import (
	"context"
	"fmt"
	"iter"
	"reflect"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// CRUD is the persistence contract shared by every entity table.
type CRUD[T any, K comparable] interface {
	New() *T
	Create(ctx context.Context, v *T) error
	Get(ctx context.Context, id K) (*T, error)
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id K) error
	Query(ctx context.Context, q Query) iter.Seq2[*T, error]
	Count(ctx context.Context, q Query) (int64, error)
	Key(v *T) K
	ParseKey(raw string) (K, error)
	FilterValue(field, raw string) (any, error)
	Entity() string
}

type saveHook[T any] func(ctx context.Context, tx *gorm.DB, v *T) error

// Table stores one entity type. Named repositories embed it and add
// relationship accessors.
type Table[T any, K comparable] struct {
	db         *gorm.DB
	entity     string
	schema     *schema.Schema
	order      []string
	immutable  []string
	beforeSave []saveHook[T]
}

// NewTable parses the schema of T. It panics when T is not a valid gorm
// model, which is a programming error.
func NewTable[T any, K comparable](db *gorm.DB, entity string) *Table[T, K] {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		panic(fmt.Sprintf("parsing %s schema: %v", entity, err))
	}
	return &Table[T, K]{
		db:     db,
		entity: entity,
		schema: stmt.Schema,
		order:  []string{"id"},
	}
}

// Name returns the table name.
func (t *Table[T, K]) Name() string { return t.schema.Table }

// Entity returns the human readable entity name used in errors.
func (t *Table[T, K]) Entity() string { return t.entity }

// Key returns the primary key of v.
func (t *Table[T, K]) Key(v *T) K {
	val, _ := t.schema.PrioritizedPrimaryField.ValueOf(context.Background(), reflect.ValueOf(v))
	key, _ := val.(K)
	return key
}

// ParseKey converts the textual form of a primary key, as found in a URL.
func (t *Table[T, K]) ParseKey(raw string) (K, error) {
	var zero K
	v, err := t.FilterValue(t.schema.PrioritizedPrimaryField.DBName, raw)
	if err != nil {
		return zero, err
	}
	key, ok := v.(K)
	if !ok {
		return zero, domain.Invalid(t.entity, "id", "format", raw)
	}
	return key, nil
}

// New returns a value carrying every declared default, including those a
// zero value cannot express such as Subject.Active or
// Consumable.QuantityRequired.
func (t *Table[T, K]) New() *T {
	v := new(T)
	if d, ok := any(v).(model.Defaulter); ok {
		d.Defaults()
	}
	return v
}

// Create validates v, checks that every referenced row exists and inserts
// it. v is refreshed from the stored row. Blank codes and strings are filled
// with their defaults, but a false or zero field is stored as given: build v
// with New to get the declared boolean and numeric defaults.
func (t *Table[T, K]) Create(ctx context.Context, v *T) error {
	if f, ok := any(v).(model.BlankFiller); ok {
		f.FillBlank()
	}
	if err := model.Validate(t.entity, v); err != nil {
		return err
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := t.checkReferences(ctx, tx, v); err != nil {
			return err
		}
		for _, hook := range t.beforeSave {
			if err := hook(ctx, tx, v); err != nil {
				return err
			}
		}
		if err := tx.Omit(clause.Associations).Create(v).Error; err != nil {
			return err
		}
		return tx.First(v, "id = ?", t.Key(v)).Error
	})
	return wrap("creating", t.entity, err)
}

// Get returns the row with the given id.
func (t *Table[T, K]) Get(ctx context.Context, id K) (*T, error) {
	var v T
	if err := t.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &domain.NotFoundError{Entity: t.entity, ID: id}
		}
		return nil, wrap("finding", t.entity, err)
	}
	return &v, nil
}

// Update rewrites every mutable column of the stored row identified by v.
// v is refreshed from the stored row.
func (t *Table[T, K]) Update(ctx context.Context, v *T) error {
	id := t.Key(v)
	if err := model.Validate(t.entity, v); err != nil {
		return err
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		if err := tx.First(&current, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &domain.NotFoundError{Entity: t.entity, ID: id}
			}
			return err
		}
		if err := t.checkReferences(ctx, tx, v); err != nil {
			return err
		}
		for _, hook := range t.beforeSave {
			if err := hook(ctx, tx, v); err != nil {
				return err
			}
		}
		omit := append([]string{clause.Associations}, t.immutable...)
		if err := tx.Model(v).Select("*").Omit(omit...).Updates(v).Error; err != nil {
			return err
		}
		return tx.First(v, "id = ?", id).Error
	})
	return wrap("updating", t.entity, err)
}

// Delete removes the row and everything that cascades from it in one
// transaction.
func (t *Table[T, K]) Delete(ctx context.Context, id K) error {
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Table(t.Name()).Where("id = ?", id).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return &domain.NotFoundError{Entity: t.entity, ID: id}
		}

		c := newCollector(tx)
		if err := c.collect(t.Name(), ids); err != nil {
			return err
		}
		if err := c.check(t.entity); err != nil {
			return err
		}
		return c.delete()
	})
	return wrap("deleting", t.entity, err)
}

// exists reports NotFound unless a row with id is stored.
func (t *Table[T, K]) exists(ctx context.Context, id K) error {
	var n int64
	if err := t.db.WithContext(ctx).Table(t.Name()).Where("id = ?", id).Count(&n).Error; err != nil {
		return wrap("finding", t.entity, err)
	}
	if n == 0 {
		return &domain.NotFoundError{Entity: t.entity, ID: id}
	}
	return nil
}

// checkReferences fails with an IntegrityError when a non-empty foreign key
// of v points at a missing row.
func (t *Table[T, K]) checkReferences(ctx context.Context, tx *gorm.DB, v *T) error {
	rv := reflect.ValueOf(v)
	for _, rel := range referencesFrom(t.Name()) {
		field := t.schema.LookUpField(rel.Column)
		if field == nil {
			continue
		}
		val, zero := field.ValueOf(ctx, rv)
		if zero {
			continue
		}
		var n int64
		if err := tx.Table(rel.Parent).Where("id = ?", deref(val)).Count(&n).Error; err != nil {
			return fmt.Errorf("checking %s: %w", rel.Column, err)
		}
		if n == 0 {
			return domain.Integrity(t.entity, "%s %v does not exist in %s", rel.Column, deref(val), rel.Parent)
		}
	}
	return nil
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}
