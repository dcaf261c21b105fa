package database

import (
	"io/fs"
	"testing"

	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestDBCreatesEveryTable(t *testing.T) {
	db := NewTestDB(t)

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
	assert.True(t, db.Migrator().HasColumn(&model.Subject{}, "created"))
	assert.True(t, db.Migrator().HasColumn(&model.Initiation{}, "list_of_suppliers"))
}

func TestNewTestDBEnforcesForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestNewTestDBIsolated(t *testing.T) {
	a := NewTestDB(t)
	b := NewTestDB(t)

	require.NoError(t, a.Create(&model.Project{
		Title:         "Isolation",
		VoteID:        "V-1",
		ProjectNumber: "P-1",
		StartDate:     model.NewDate(2024, 1, 1),
		EndDate:       model.NewDate(2024, 12, 31),
	}).Error)

	var n int64
	require.NoError(t, b.Model(&model.Project{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestEmbeddedMigrations(t *testing.T) {
	src, err := MigrationSource()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	_, err = src.Next(next)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	for _, v := range []uint{1, 2} {
		up, _, err := src.ReadUp(v)
		require.NoError(t, err)
		up.Close()

		down, _, err := src.ReadDown(v)
		require.NoError(t, err)
		down.Close()
	}
}
