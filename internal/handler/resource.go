package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/middleware"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/dangerclosesec/resadmin/internal/service"
	"github.com/go-chi/chi/v5"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// ResourceHandler serves the CRUD endpoints of one entity
type ResourceHandler[T any, K comparable] struct {
	resource *service.Resource[T, K]
}

func NewResourceHandler[T any, K comparable](resource *service.Resource[T, K]) *ResourceHandler[T, K] {
	return &ResourceHandler[T, K]{resource: resource}
}

// Routes mounts list, create, get, update and delete on r
func (h *ResourceHandler[T, K]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET with equality filters taken from the query string.
// order, limit and offset are reserved parameters.
func (h *ResourceHandler[T, K]) List(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	items, total, err := h.resource.Page(r.Context(), q)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	respondWithJSON(w, http.StatusOK, ListResponse[T]{Items: items, Total: total})
}

func (h *ResourceHandler[T, K]) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handleError(w, r, domain.ErrUnauthorized)
		return
	}

	v := h.resource.Table().New()
	if err := decode(r, v); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.resource.Create(r.Context(), actor, v); err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, v)
}

func (h *ResourceHandler[T, K]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, h.resource.Table().ParseKey)
	if !ok {
		return
	}

	v, err := h.resource.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, v)
}

// Update handles PUT. The body is applied over the stored row, so omitted
// fields keep their stored values.
func (h *ResourceHandler[T, K]) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handleError(w, r, domain.ErrUnauthorized)
		return
	}

	table := h.resource.Table()
	id, ok := parseID(w, r, table.ParseKey)
	if !ok {
		return
	}

	v, err := h.resource.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := decode(r, v); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if table.Key(v) != id {
		respondWithError(w, http.StatusBadRequest, "Identifier in body does not match URL")
		return
	}

	if err := h.resource.Update(r.Context(), actor, v); err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, v)
}

func (h *ResourceHandler[T, K]) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handleError(w, r, domain.ErrUnauthorized)
		return
	}

	id, ok := parseID(w, r, h.resource.Table().ParseKey)
	if !ok {
		return
	}

	if err := h.resource.Delete(r.Context(), actor, id); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ResourceHandler[T, K]) parseQuery(r *http.Request) (repository.Query, error) {
	q := repository.Query{Limit: defaultLimit}
	table := h.resource.Table()

	for name, values := range r.URL.Query() {
		raw := values[len(values)-1]
		switch name {
		case "order":
			for _, field := range strings.Split(raw, ",") {
				if field = strings.TrimSpace(field); field != "" {
					q.OrderBy = append(q.OrderBy, field)
				}
			}
		case "limit":
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return q, fmt.Errorf("%w: limit must be a positive integer", domain.ErrInvalidInput)
			}
			q.Limit = min(n, maxLimit)
		case "offset":
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return q, fmt.Errorf("%w: offset must be a non-negative integer", domain.ErrInvalidInput)
			}
			q.Offset = n
		default:
			value, err := table.FilterValue(name, raw)
			if err != nil {
				return q, err
			}
			q = q.Where(name, value)
		}
	}
	return q, nil
}

// parseID reads the {id} URL parameter and answers 400 when it is malformed
func parseID[K comparable](w http.ResponseWriter, r *http.Request, parse func(string) (K, error)) (K, bool) {
	id, err := parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid identifier")
		return id, false
	}
	return id, true
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %v", err)
	}
	return nil
}
