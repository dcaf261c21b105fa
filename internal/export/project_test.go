package export_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dangerclosesec/resadmin/internal/database"
	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/export"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ptr[T any](v T) *T { return &v }

func seedProject(t *testing.T, s *repository.Store) *model.Project {
	t.Helper()
	ctx := context.Background()

	supplier := &model.Organization{
		Type: model.OrgTypeBusiness, Name: "Borneo Scientific", Purpose: model.PurposeSupplier,
		Address: "Jalan Pending", City: "Kuching", State: "Sarawak",
	}
	require.NoError(t, s.Organizations.Create(ctx, supplier))

	project := &model.Project{
		Title: "Mangrove carbon stocks", VoteID: "F07/FRGS/2024", ProjectNumber: "FRGS-07",
		StartDate: model.NewDate(2024, 2, 1), EndDate: model.NewDate(2026, 1, 31),
	}
	require.NoError(t, s.Projects.Create(ctx, project))

	researcher := &model.Subject{Name: ptr("Hafiz Abdullah"), Prefix: ptr("Dr."), Sex: model.SexMale}
	require.NoError(t, s.Subjects.Create(ctx, researcher))
	require.NoError(t, s.SubjectRoles.Create(ctx, &model.SubjectRole{
		OrganizationID: supplier.ID, ProjectID: project.ID, SubjectID: researcher.ID, Role: model.RolePrincipal,
	}))

	item := &model.Item{Name: "Soil corer", Category: "FIELD", SupplierID: supplier.ID}
	require.NoError(t, s.Items.Create(ctx, item))
	spec := &model.Specification{ItemID: item.ID, Application: "Sampling"}
	require.NoError(t, s.Specifications.Create(ctx, spec))

	consumable := &model.Consumable{
		SpecificationID: spec.ID, ProjectID: project.ID, QuantityRequired: 4, QuantityRemaining: 3,
		Unit: ptr("unit"), EstimateCost: decimal.NewNullDecimal(decimal.RequireFromString("1234.50")),
	}
	require.NoError(t, s.Consumables.Create(ctx, consumable))

	initiation := &model.Initiation{
		FormNumber: "PK-07", ConsumableID: consumable.ID, ProjectID: project.ID,
		EffectiveDate: model.NewDate(2024, 3, 1),
	}
	require.NoError(t, s.Initiations.Create(ctx, initiation))
	require.NoError(t, s.InitiationRoles.Create(ctx, &model.InitiationRole{
		Role: model.StepPrepare, SubjectID: researcher.ID, InitiationID: initiation.ID, Date: model.NewDate(2024, 3, 1),
	}))
	return project
}

func TestProjectWorkbook(t *testing.T) {
	ctx := context.Background()
	s := repository.NewStore(database.NewTestDB(t))
	project := seedProject(t, s)

	var buf bytes.Buffer
	require.NoError(t, export.WriteProjectWorkbook(ctx, s, project.ID, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		export.SheetProject, export.SheetTeam, export.SheetConsumables, export.SheetInitiations,
	}, f.GetSheetList())

	rows, err := f.GetRows(export.SheetProject)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Mangrove carbon stocks", "F07/FRGS/2024", "FRGS-07", "2024-02-01", "2026-01-31"}, rows[1])

	rows, err = f.GetRows(export.SheetTeam)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Dr. Hafiz Abdullah", "Borneo Scientific", "Principal researcher"}, rows[1])

	rows, err = f.GetRows(export.SheetConsumables)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Soil corer", rows[1][0])
	assert.Equal(t, "4", rows[1][2])
	assert.Equal(t, "3", rows[1][3])

	cost, err := f.GetCellValue(export.SheetConsumables, "F2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1234.50", cost)
	styleID, err := f.GetCellStyle(export.SheetConsumables, "F2")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	assert.Equal(t, 4, style.NumFmt)

	rows, err = f.GetRows(export.SheetInitiations)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "PK-07", rows[1][0])
	assert.Equal(t, "2024-03-01", rows[1][2])
	assert.Equal(t, "Prepared by: Dr. Hafiz Abdullah (2024-03-01)", rows[1][5])
}

func TestProjectWorkbookMissingProject(t *testing.T) {
	s := repository.NewStore(database.NewTestDB(t))

	_, err := export.ProjectWorkbook(context.Background(), s, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
