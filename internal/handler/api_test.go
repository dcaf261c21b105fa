package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/resadmin/internal/auth"
	"github.com/dangerclosesec/resadmin/internal/database"
	"github.com/dangerclosesec/resadmin/internal/handler"
	"github.com/dangerclosesec/resadmin/internal/middleware"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/dangerclosesec/resadmin/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	registry := service.NewRegistry(repository.NewStore(database.NewTestDB(t)))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tokens))
		handler.NewAPI(registry).Routes(r)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	token, err := tokens.Generate("registrar")
	require.NoError(t, err)
	return &apiClient{t: t, server: server, token: token}
}

func (c *apiClient) do(method, path string, body any, out any) int {
	c.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.server.URL+"/api"+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func orgBody(name, typ string, manager *uint) map[string]any {
	body := map[string]any{
		"type":    typ,
		"name":    name,
		"purpose": "RES",
		"address": "Jalan Simpang Tiga",
		"city":    "Kuching",
		"state":   "Sarawak",
	}
	if manager != nil {
		body["manager_id"] = *manager
	}
	return body
}

func TestAPIRequiresToken(t *testing.T) {
	c := newAPI(t)
	c.token = ""

	var resp map[string]string
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/organizations", nil, &resp))
	assert.Equal(t, "No authorization header", resp["error"])

	c.token = "garbage"
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/organizations", nil, nil))
}

func TestAPIOrganizationLifecycle(t *testing.T) {
	c := newAPI(t)

	var uni model.Organization
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/organizations", orgBody("UNIMAS", "univ", nil), &uni))
	assert.NotZero(t, uni.ID)
	assert.True(t, uni.Active, "active defaults to true")
	assert.Equal(t, "MY", uni.Country)

	var dept model.Organization
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/organizations", orgBody("Zoology", "dept", &uni.ID), &dept))

	t.Run("list with filter", func(t *testing.T) {
		var page handler.ListResponse[model.Organization]
		require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/organizations?type=dept", nil, &page))
		assert.Equal(t, int64(1), page.Total)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Zoology", page.Items[0].Name)

		require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/organizations?order=-name&limit=1", nil, &page))
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Zoology", page.Items[0].Name)
	})

	t.Run("traversal", func(t *testing.T) {
		var chain []model.Organization
		require.Equal(t, http.StatusOK, c.do(http.MethodGet, fmt.Sprintf("/organizations/%d/chain", dept.ID), nil, &chain))
		require.Len(t, chain, 1)
		assert.Equal(t, uni.ID, chain[0].ID)

		var subs []model.Organization
		require.Equal(t, http.StatusOK, c.do(http.MethodGet, fmt.Sprintf("/organizations/%d/subordinates", uni.ID), nil, &subs))
		require.Len(t, subs, 1)
		assert.Equal(t, dept.ID, subs[0].ID)
	})

	t.Run("update applies over stored row", func(t *testing.T) {
		var updated model.Organization
		path := fmt.Sprintf("/organizations/%d", dept.ID)
		require.Equal(t, http.StatusOK, c.do(http.MethodPut, path, map[string]any{"city": "Kota Samarahan"}, &updated))
		assert.Equal(t, "Kota Samarahan", updated.City)
		assert.Equal(t, "Zoology", updated.Name)

		assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, path, map[string]any{"id": dept.ID + 1}, nil))
	})

	t.Run("protected delete", func(t *testing.T) {
		var resp handler.ErrorResponse
		assert.Equal(t, http.StatusConflict, c.do(http.MethodDelete, fmt.Sprintf("/organizations/%d", uni.ID), nil, &resp))
		require.NotNil(t, resp.Code)
		assert.Equal(t, "integrity_violation", *resp.Code)

		assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, fmt.Sprintf("/organizations/%d", dept.ID), nil, nil))
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, fmt.Sprintf("/organizations/%d", dept.ID), nil, nil))
	})

	t.Run("audit trail", func(t *testing.T) {
		var page handler.ListResponse[model.AuditLog]
		require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/audit-logs?entity=organization&entity_id="+fmt.Sprint(dept.ID), nil, &page))
		assert.Equal(t, int64(3), page.Total)
		for _, entry := range page.Items {
			assert.Equal(t, "registrar", entry.Actor)
			assert.NotEmpty(t, entry.RequestID)
		}

		var entry model.AuditLog
		require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/audit-logs/"+page.Items[0].ID.String(), nil, &entry))
		assert.Equal(t, page.Items[0].ID, entry.ID)
	})
}

func TestAPIErrors(t *testing.T) {
	c := newAPI(t)

	t.Run("unknown code in body", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/organizations", orgBody("X", "school", nil), nil))
	})

	t.Run("malformed json", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/organizations", `{"name":`, nil))
	})

	t.Run("missing required field", func(t *testing.T) {
		body := orgBody("", "univ", nil)
		delete(body, "name")

		var resp handler.ErrorResponse
		require.Equal(t, http.StatusUnprocessableEntity, c.do(http.MethodPost, "/organizations", body, &resp))
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "name", resp.Fields[0].Field)
		assert.Equal(t, "required", resp.Fields[0].Rule)
	})

	t.Run("missing manager", func(t *testing.T) {
		missing := uint(4242)
		assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/organizations", orgBody("Orphan", "team", &missing), nil))
	})

	t.Run("bad identifier", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/organizations/abc", nil, nil))
		assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/subjects/42/roles", nil, nil))
	})

	t.Run("unknown filter", func(t *testing.T) {
		assert.Equal(t, http.StatusUnprocessableEntity, c.do(http.MethodGet, "/projects?budget=10", nil, nil))
		assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/projects?limit=-1", nil, nil))
	})

	t.Run("missing row", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/projects/99", nil, nil))
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/projects/99/researchers", nil, nil))
	})
}

func TestAPISubjectsAndCodes(t *testing.T) {
	c := newAPI(t)

	var subject model.Subject
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/subjects", map[string]any{
		"name":       "Awang Kamaruddin",
		"sex":        "M",
		"birth_date": "1975-08-31",
	}, &subject))
	assert.True(t, subject.Active)
	require.NotNil(t, subject.BirthDate)
	assert.Equal(t, model.NewDate(1975, 8, 31), *subject.BirthDate)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/identifications", map[string]any{
		"value":      "750831-13-5111",
		"type":       "NR",
		"subject_id": subject.ID,
	}, nil))

	var ids []model.Identification
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/subjects/"+subject.ID.String()+"/identifications", nil, &ids))
	require.Len(t, ids, 1)
	assert.Equal(t, "750831-13-5111", ids[0].Value)

	var codes map[string][]model.Code
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/codes", nil, &codes))
	assert.NotEmpty(t, codes["sex"])
	assert.NotEmpty(t, codes["approval_step"])
}
