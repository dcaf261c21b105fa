package handler

import (
	"context"
	"net/http"

	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/dangerclosesec/resadmin/internal/service"
	"github.com/go-chi/chi/v5"
)

// API serves the administrative endpoints of every entity
type API struct {
	registry      *service.Registry
	audit         *AuditLogHandler
	organizations repository.OrganizationRepositoryIface
	subjects      repository.SubjectRepositoryIface
	projects      repository.ProjectRepositoryIface
}

func NewAPI(registry *service.Registry) *API {
	store := registry.Store()
	return &API{
		registry:      registry,
		audit:         NewAuditLogHandler(registry.Audit),
		organizations: store.Organizations,
		subjects:      store.Subjects,
		projects:      store.Projects,
	}
}

// Routes mounts every entity, traversal and reference endpoint on r
func (a *API) Routes(r chi.Router) {
	reg := a.registry
	store := reg.Store()

	r.Route("/organizations", func(r chi.Router) {
		NewResourceHandler(reg.Organizations).Routes(r)
		parse := reg.Organizations.Table().ParseKey
		r.Get("/{id}/subordinates", traverse(parse, a.organizations.Subordinates))
		r.Get("/{id}/manager", traverse(parse, a.organizations.Manager))
		r.Get("/{id}/chain", traverse(parse, a.organizations.ManagerChain))
		r.Get("/{id}/contact-points", traverse(parse, a.organizations.ContactPoints))
		r.Get("/{id}/items", traverse(parse, a.organizations.Items))
		r.Get("/{id}/members", traverse(parse, a.organizations.Members))
	})
	r.Route("/organization-contact-points", NewResourceHandler(reg.OrganizationContactPoints).Routes)

	r.Route("/subjects", func(r chi.Router) {
		NewResourceHandler(reg.Subjects).Routes(r)
		parse := reg.Subjects.Table().ParseKey
		r.Get("/{id}/identifications", traverse(parse, a.subjects.Identifications))
		r.Get("/{id}/addresses", traverse(parse, a.subjects.Addresses))
		r.Get("/{id}/contact-points", traverse(parse, a.subjects.ContactPoints))
		r.Get("/{id}/roles", traverse(parse, a.subjects.Roles))
		r.Get("/{id}/approvals", traverse(parse, a.subjects.Approvals))
	})
	r.Route("/identifications", NewResourceHandler(reg.Identifications).Routes)
	r.Route("/addresses", NewResourceHandler(reg.Addresses).Routes)
	r.Route("/contact-points", NewResourceHandler(reg.ContactPoints).Routes)

	r.Route("/items", func(r chi.Router) {
		NewResourceHandler(reg.Items).Routes(r)
		r.Get("/{id}/specifications", traverse(reg.Items.Table().ParseKey, store.Items.Specifications))
	})
	r.Route("/specifications", func(r chi.Router) {
		NewResourceHandler(reg.Specifications).Routes(r)
		r.Get("/{id}/consumables", traverse(reg.Specifications.Table().ParseKey, store.Specifications.Consumables))
	})

	r.Route("/projects", func(r chi.Router) {
		NewResourceHandler(reg.Projects).Routes(r)
		parse := reg.Projects.Table().ParseKey
		r.Get("/{id}/researchers", traverse(parse, a.projects.Researchers))
		r.Get("/{id}/consumables", traverse(parse, a.projects.Consumables))
		r.Get("/{id}/votes", traverse(parse, a.projects.Votes))
		r.Get("/{id}/initiations", traverse(parse, a.projects.Initiations))
	})
	r.Route("/consumables", NewResourceHandler(reg.Consumables).Routes)
	r.Route("/subject-roles", NewResourceHandler(reg.SubjectRoles).Routes)
	r.Route("/votes", NewResourceHandler(reg.Votes).Routes)

	r.Route("/initiations", func(r chi.Router) {
		NewResourceHandler(reg.Initiations).Routes(r)
		r.Get("/{id}/roles", traverse(reg.Initiations.Table().ParseKey, store.Initiations.Roles))
	})
	r.Route("/initiation-roles", NewResourceHandler(reg.InitiationRoles).Routes)

	r.Get("/codes", a.Codes)
	r.Get("/audit-logs", a.audit.GetAuditLogs)
	r.Get("/audit-logs/{id}", a.audit.GetAuditLogByID)
}

// Codes returns every code list with its labels
func (a *API) Codes(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, model.CodeLists())
}

// traverse serves a relationship accessor keyed by the {id} URL parameter
func traverse[K comparable, R any](parse func(string) (K, error), fetch func(context.Context, K) (R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, parse)
		if !ok {
			return
		}

		result, err := fetch(r.Context(), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondWithJSON(w, http.StatusOK, result)
	}
}
