package repository_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/resadmin/internal/database"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(database.NewTestDB(t))
}

func ptr[T any](v T) *T { return &v }

func newOrganization(t *testing.T, s *repository.Store, name string, typ model.OrganizationType, manager *uint) *model.Organization {
	t.Helper()
	org := &model.Organization{
		Active:    true,
		Type:      typ,
		Name:      name,
		Purpose:   model.PurposeResearch,
		Address:   "Jalan Universiti",
		City:      "Kota Samarahan",
		State:     "Sarawak",
		ManagerID: manager,
	}
	require.NoError(t, s.Organizations.Create(context.Background(), org))
	return org
}

func newSubject(t *testing.T, s *repository.Store, name string) *model.Subject {
	t.Helper()
	subject := &model.Subject{
		Name:   ptr(name),
		Active: true,
		Sex:    model.SexFemale,
	}
	require.NoError(t, s.Subjects.Create(context.Background(), subject))
	return subject
}

func newProject(t *testing.T, s *repository.Store, title string) *model.Project {
	t.Helper()
	project := &model.Project{
		Title:         title,
		VoteID:        "F05/DPP/1234/2024",
		ProjectNumber: "UNI-2024-01",
		StartDate:     model.NewDate(2024, 1, 1),
		EndDate:       model.NewDate(2026, 12, 31),
	}
	require.NoError(t, s.Projects.Create(context.Background(), project))
	return project
}

// procurement is a project with one consumable ordered from a supplier and
// an initiation for it.
type procurement struct {
	supplier      *model.Organization
	item          *model.Item
	specification *model.Specification
	project       *model.Project
	consumable    *model.Consumable
	initiation    *model.Initiation
}

func newProcurement(t *testing.T, s *repository.Store) procurement {
	t.Helper()
	ctx := context.Background()

	p := procurement{}
	p.supplier = newOrganization(t, s, "Lab Supplies Sdn Bhd", model.OrgTypeBusiness, nil)
	p.project = newProject(t, s, "Soil microbiome survey")

	p.item = &model.Item{Name: "Pipette tips", Category: "LAB", SupplierID: p.supplier.ID}
	require.NoError(t, s.Items.Create(ctx, p.item))

	p.specification = &model.Specification{
		ItemID:      p.item.ID,
		Application: "PCR",
		Document:    []byte(`{"volume":"10ul","sterile":true}`),
	}
	require.NoError(t, s.Specifications.Create(ctx, p.specification))

	p.consumable = &model.Consumable{
		SpecificationID:   p.specification.ID,
		ProjectID:         p.project.ID,
		QuantityRequired:  10,
		QuantityRemaining: 10,
		Unit:              ptr("box"),
	}
	require.NoError(t, s.Consumables.Create(ctx, p.consumable))

	p.initiation = &model.Initiation{
		FormNumber:   "PK-01",
		ConsumableID: p.consumable.ID,
		ProjectID:    p.project.ID,
	}
	require.NoError(t, s.Initiations.Create(ctx, p.initiation))
	return p
}
