// internal/service/resource.go
package service

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
)

// Resource exposes one entity table to callers acting on behalf of an
// administrative user. Every successful mutation is written together with
// its audit entry in a single transaction.
type Resource[T any, K comparable] struct {
	store *repository.Store
	table func(*repository.Store) repository.CRUD[T, K]
	audit *AuditService
}

func newResource[T any, K comparable](store *repository.Store, audit *AuditService, table func(*repository.Store) repository.CRUD[T, K]) *Resource[T, K] {
	return &Resource[T, K]{
		store: store,
		table: table,
		audit: audit,
	}
}

// Table returns the table bound to the resource's store
func (r *Resource[T, K]) Table() repository.CRUD[T, K] {
	return r.table(r.store)
}

// Entity returns the entity name used in errors and audit entries
func (r *Resource[T, K]) Entity() string {
	return r.Table().Entity()
}

// Create stores v and records who created it
func (r *Resource[T, K]) Create(ctx context.Context, actor string, v *T) error {
	if actor == "" {
		return domain.ErrUnauthorized
	}

	err := r.store.Transaction(ctx, func(tx *repository.Store) error {
		table := r.table(tx)
		if err := table.Create(ctx, v); err != nil {
			return err
		}
		return r.audit.record(ctx, tx, actor, model.AuditCreate, table.Entity(), table.Key(v), model.ToChanges(v))
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "entity created", "entity", r.Entity(), "id", r.Table().Key(v), "actor", actor)
	return nil
}

// Get retrieves one row by primary key
func (r *Resource[T, K]) Get(ctx context.Context, id K) (*T, error) {
	return r.Table().Get(ctx, id)
}

// Update overwrites the stored row identified by v's key
func (r *Resource[T, K]) Update(ctx context.Context, actor string, v *T) error {
	if actor == "" {
		return domain.ErrUnauthorized
	}

	err := r.store.Transaction(ctx, func(tx *repository.Store) error {
		table := r.table(tx)
		if err := table.Update(ctx, v); err != nil {
			return err
		}
		return r.audit.record(ctx, tx, actor, model.AuditUpdate, table.Entity(), table.Key(v), model.ToChanges(v))
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "entity updated", "entity", r.Entity(), "id", r.Table().Key(v), "actor", actor)
	return nil
}

// Delete removes the row and everything its delete policies cascade to.
// The audit entry keeps a copy of the removed row.
func (r *Resource[T, K]) Delete(ctx context.Context, actor string, id K) error {
	if actor == "" {
		return domain.ErrUnauthorized
	}

	err := r.store.Transaction(ctx, func(tx *repository.Store) error {
		table := r.table(tx)
		v, err := table.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := table.Delete(ctx, id); err != nil {
			return err
		}
		return r.audit.record(ctx, tx, actor, model.AuditDelete, table.Entity(), id, model.ToChanges(v))
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "entity deleted", "entity", r.Entity(), "id", id, "actor", actor)
	return nil
}

// Query streams rows matching q
func (r *Resource[T, K]) Query(ctx context.Context, q repository.Query) iter.Seq2[*T, error] {
	return r.Table().Query(ctx, q)
}

// List collects the rows matching q
func (r *Resource[T, K]) List(ctx context.Context, q repository.Query) ([]T, error) {
	var out []T
	for v, err := range r.Query(ctx, q) {
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// Count returns the number of rows matching q's filters
func (r *Resource[T, K]) Count(ctx context.Context, q repository.Query) (int64, error) {
	return r.Table().Count(ctx, q)
}

// Page returns one page of rows matching q and the total number of matches
func (r *Resource[T, K]) Page(ctx context.Context, q repository.Query) ([]T, int64, error) {
	total, err := r.Count(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	items, err := r.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", r.Entity(), err)
	}
	return items, total, nil
}
