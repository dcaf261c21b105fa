// internal/repository/organization.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"gorm.io/gorm"
)

// OrganizationRepositoryIface is the relationship side of the organization
// table served by the traversal endpoints.
type OrganizationRepositoryIface interface {
	Subordinates(ctx context.Context, id uint) ([]model.Organization, error)
	Manager(ctx context.Context, id uint) (*model.Organization, error)
	ManagerChain(ctx context.Context, id uint) ([]model.Organization, error)
	ContactPoints(ctx context.Context, id uint) ([]model.OrganizationContactPoint, error)
	Items(ctx context.Context, id uint) ([]model.Item, error)
	Members(ctx context.Context, id uint) ([]model.SubjectRole, error)
}

var _ OrganizationRepositoryIface = (*OrganizationRepository)(nil)

type OrganizationRepository struct {
	*Table[model.Organization, uint]
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	r := &OrganizationRepository{Table: NewTable[model.Organization, uint](db, "organization")}
	r.beforeSave = append(r.beforeSave, r.checkManager)
	return r
}

// hierarchyLockKey names the transaction-scoped advisory lock that serializes
// manager changes on PostgreSQL.
const hierarchyLockKey = 0x6f7267

// checkManager rejects a manager link that would make the organization part
// of its own manager chain. Concurrent relinks are serialized so that each
// walk sees every committed link.
func (r *OrganizationRepository) checkManager(ctx context.Context, tx *gorm.DB, org *model.Organization) error {
	if org.ManagerID == nil {
		return nil
	}
	if *org.ManagerID == org.ID {
		return domain.Integrity(r.entity, "organization %d cannot manage itself", org.ID)
	}
	if err := lockHierarchy(tx); err != nil {
		return err
	}

	visited := map[uint]bool{}
	if org.ID != 0 {
		visited[org.ID] = true
	}
	for cur := org.ManagerID; cur != nil; {
		if visited[*cur] {
			return domain.Integrity(r.entity, "manager %d would create a cycle", *org.ManagerID)
		}
		visited[*cur] = true

		var next []struct{ ManagerID *uint }
		if err := tx.Model(&model.Organization{}).Select("manager_id").Where("id = ?", *cur).Scan(&next).Error; err != nil {
			return fmt.Errorf("walking manager chain: %w", err)
		}
		if len(next) == 0 {
			break
		}
		cur = next[0].ManagerID
	}
	return nil
}

// lockHierarchy holds the hierarchy lock until tx ends. SQLite serializes
// writers on its own.
func lockHierarchy(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", hierarchyLockKey).Error; err != nil {
		return fmt.Errorf("locking organization hierarchy: %w", err)
	}
	return nil
}

// Subordinates returns the organizations managed directly by id.
func (r *OrganizationRepository) Subordinates(ctx context.Context, id uint) ([]model.Organization, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return r.List(ctx, Query{Filters: map[string]any{"manager_id": id}})
}

// Manager returns the direct manager of id, or nil for a root organization.
func (r *OrganizationRepository) Manager(ctx context.Context, id uint) (*model.Organization, error) {
	org, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.ManagerID == nil {
		return nil, nil
	}
	return r.Get(ctx, *org.ManagerID)
}

// ManagerChain returns the managers of id from the direct manager up to the
// root. A chain that revisits an organization is an IntegrityError.
func (r *OrganizationRepository) ManagerChain(ctx context.Context, id uint) ([]model.Organization, error) {
	org, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var chain []model.Organization
	visited := map[uint]bool{org.ID: true}
	for org.ManagerID != nil {
		if visited[*org.ManagerID] {
			return nil, domain.Integrity(r.entity, "manager chain of %d revisits %d", id, *org.ManagerID)
		}
		visited[*org.ManagerID] = true
		if org, err = r.Get(ctx, *org.ManagerID); err != nil {
			return nil, err
		}
		chain = append(chain, *org)
	}
	return chain, nil
}

func (r *OrganizationRepository) ContactPoints(ctx context.Context, id uint) ([]model.OrganizationContactPoint, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.OrganizationContactPoint](ctx, r.db, "organization contact points", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("organization_id = ?", id).Order("id")
	})
}

// Items returns the items supplied by id.
func (r *OrganizationRepository) Items(ctx context.Context, id uint) ([]model.Item, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.Item](ctx, r.db, "supplied items", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("supplier_id = ?", id).Order("id")
	})
}

// Members returns the project roles held on behalf of id.
func (r *OrganizationRepository) Members(ctx context.Context, id uint) ([]model.SubjectRole, error) {
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	return related[model.SubjectRole](ctx, r.db, "organization members", func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Subject").Preload("Project").Where("organization_id = ?", id).Order("id")
	})
}

// related loads a set of rows reached from another entity.
func related[T any](ctx context.Context, db *gorm.DB, what string, scope func(*gorm.DB) *gorm.DB) ([]T, error) {
	var out []T
	if err := scope(db.WithContext(ctx)).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("finding %s: %w", what, err)
	}
	return out, nil
}
