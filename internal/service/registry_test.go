package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dangerclosesec/resadmin/internal/database"
	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/dangerclosesec/resadmin/internal/service"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *service.Registry {
	t.Helper()
	return service.NewRegistry(repository.NewStore(database.NewTestDB(t)))
}

func organization(name string) *model.Organization {
	return &model.Organization{
		Active:  true,
		Type:    model.OrgTypeResearch,
		Name:    name,
		Purpose: model.PurposeResearch,
		Address: "Jalan Datuk Mohammad Musa",
		City:    "Kota Samarahan",
		State:   "Sarawak",
	}
}

func TestResourceRequiresActor(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t)

	err := reg.Organizations.Create(ctx, "", organization("Anonymous"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	n, err := reg.Organizations.Count(ctx, repository.Query{})
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.ErrorIs(t, reg.Organizations.Delete(ctx, "", 1), domain.ErrUnauthorized)
}

func TestResourceRecordsMutations(t *testing.T) {
	reg := newRegistry(t)
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-0001")

	org := organization("Centre for Pre-University Studies")
	require.NoError(t, reg.Organizations.Create(ctx, "registrar", org))

	org.City = "Kuching"
	require.NoError(t, reg.Organizations.Update(ctx, "bursar", org))

	trail, err := reg.AuditTrail(ctx, "organization", org.ID)
	require.NoError(t, err)
	require.Len(t, trail, 2)

	byAction := map[model.AuditAction]model.AuditLog{}
	for _, entry := range trail {
		byAction[entry.Action] = entry
	}

	created := byAction[model.AuditCreate]
	assert.Equal(t, "registrar", created.Actor)
	assert.Equal(t, fmt.Sprint(org.ID), created.EntityID)
	assert.Equal(t, "req-0001", created.RequestID)
	assert.Equal(t, "Centre for Pre-University Studies", created.Changes["name"])

	updated := byAction[model.AuditUpdate]
	assert.Equal(t, "bursar", updated.Actor)
	assert.Equal(t, "Kuching", updated.Changes["city"])

	logs, total, err := reg.Audit.QueryLogs(ctx, repository.AuditQuery{Actor: "bursar"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)

	got, err := reg.Audit.GetLog(ctx, logs[0].ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.AuditUpdate, got.Action)

	_, err = reg.Audit.GetLog(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResourceFailedMutationLeavesNoTrail(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t)

	parent := organization("Parent")
	require.NoError(t, reg.Organizations.Create(ctx, "registrar", parent))
	child := organization("Child")
	child.ManagerID = &parent.ID
	require.NoError(t, reg.Organizations.Create(ctx, "registrar", child))

	bad := organization("")
	assert.ErrorIs(t, reg.Organizations.Create(ctx, "registrar", bad), domain.ErrValidation)

	assert.ErrorIs(t, reg.Organizations.Delete(ctx, "registrar", parent.ID), domain.ErrIntegrity)
	assert.ErrorIs(t, reg.Organizations.Delete(ctx, "registrar", 999), domain.ErrNotFound)

	_, total, err := reg.Audit.QueryLogs(ctx, repository.AuditQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestResourceDeleteKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t)

	subject := &model.Subject{Name: ptr("Siti Nurhaliza"), Sex: model.SexFemale, Active: true}
	require.NoError(t, reg.Subjects.Create(ctx, "registrar", subject))
	require.NoError(t, reg.Identifications.Create(ctx, "registrar", &model.Identification{
		Value: "790311-13-5050", Type: model.IDNationalRegistration, SubjectID: subject.ID,
	}))

	require.NoError(t, reg.Subjects.Delete(ctx, "registrar", subject.ID))

	_, err := reg.Subjects.Get(ctx, subject.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	trail, err := reg.AuditTrail(ctx, "subject", subject.ID)
	require.NoError(t, err)
	require.Len(t, trail, 2)

	var deleted *model.AuditLog
	for i := range trail {
		if trail[i].Action == model.AuditDelete {
			deleted = &trail[i]
		}
	}
	require.NotNil(t, deleted)
	assert.Equal(t, subject.ID.String(), deleted.EntityID)
	assert.Equal(t, "Siti Nurhaliza", deleted.Changes["name"])
}

func TestResourcePage(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, reg.Organizations.Create(ctx, "registrar", organization(fmt.Sprintf("Unit %d", i))))
	}

	items, total, err := reg.Organizations.Page(ctx, repository.Query{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Unit 2", items[0].Name)

	_, _, err = reg.Organizations.Page(ctx, repository.Query{}.Where("colour", "red"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func ptr[T any](v T) *T { return &v }
