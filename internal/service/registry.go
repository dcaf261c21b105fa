// internal/service/registry.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/google/uuid"
)

// Registry groups the audited resources of every entity
type Registry struct {
	store *repository.Store
	Audit *AuditService

	Organizations             *Resource[model.Organization, uint]
	OrganizationContactPoints *Resource[model.OrganizationContactPoint, uint]
	Subjects                  *Resource[model.Subject, uuid.UUID]
	Identifications           *Resource[model.Identification, uint]
	Addresses                 *Resource[model.Address, uint]
	ContactPoints             *Resource[model.ContactPoint, uint]
	Items                     *Resource[model.Item, uint]
	Specifications            *Resource[model.Specification, uint]
	Projects                  *Resource[model.Project, uint]
	Consumables               *Resource[model.Consumable, uint]
	SubjectRoles              *Resource[model.SubjectRole, uint]
	Votes                     *Resource[model.Vote, uint]
	Initiations               *Resource[model.Initiation, uint]
	InitiationRoles           *Resource[model.InitiationRole, uint]
}

func NewRegistry(store *repository.Store) *Registry {
	audit := NewAuditService(store.AuditLogs)
	return &Registry{
		store: store,
		Audit: audit,
		Organizations: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Organization, uint] {
			return s.Organizations
		}),
		OrganizationContactPoints: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.OrganizationContactPoint, uint] {
			return s.OrganizationContactPoints
		}),
		Subjects: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Subject, uuid.UUID] {
			return s.Subjects
		}),
		Identifications: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Identification, uint] {
			return s.Identifications
		}),
		Addresses: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Address, uint] {
			return s.Addresses
		}),
		ContactPoints: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.ContactPoint, uint] {
			return s.ContactPoints
		}),
		Items: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Item, uint] {
			return s.Items
		}),
		Specifications: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Specification, uint] {
			return s.Specifications
		}),
		Projects: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Project, uint] {
			return s.Projects
		}),
		Consumables: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Consumable, uint] {
			return s.Consumables
		}),
		SubjectRoles: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.SubjectRole, uint] {
			return s.SubjectRoles
		}),
		Votes: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Vote, uint] {
			return s.Votes
		}),
		Initiations: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.Initiation, uint] {
			return s.Initiations
		}),
		InitiationRoles: newResource(store, audit, func(s *repository.Store) repository.CRUD[model.InitiationRole, uint] {
			return s.InitiationRoles
		}),
	}
}

// Store returns the store used for reads and relationship traversal
func (r *Registry) Store() *repository.Store {
	return r.store
}

// VerifyHierarchy reports a cycle in the stored organization hierarchy
func (r *Registry) VerifyHierarchy(ctx context.Context) error {
	return r.store.VerifyHierarchy(ctx)
}

// AuditTrail returns the audit entries of one entity row, newest first
func (r *Registry) AuditTrail(ctx context.Context, entity string, id any) ([]model.AuditLog, error) {
	logs, _, err := r.Audit.QueryLogs(ctx, repository.AuditQuery{
		Entity:   entity,
		EntityID: fmt.Sprint(id),
	})
	return logs, err
}

func parseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.Invalid("audit log", "id", "uuid", raw)
	}
	return id, nil
}
