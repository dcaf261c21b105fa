package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func where(field string, value any) repository.Query {
	return repository.Query{}.Where(field, value)
}

func names(t *testing.T, orgs []model.Organization) []string {
	t.Helper()
	out := make([]string, len(orgs))
	for i, o := range orgs {
		out[i] = o.Name
	}
	return out
}

func TestQueryFiltersAndOrdering(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	uni := newOrganization(t, s, "Uni", model.OrgTypeUniversity, nil)
	newOrganization(t, s, "Zoology", model.OrgTypeDepartment, &uni.ID)
	newOrganization(t, s, "Botany", model.OrgTypeDepartment, &uni.ID)
	inactive := newOrganization(t, s, "Archive", model.OrgTypeDepartment, &uni.ID)
	inactive.Active = false
	require.NoError(t, s.Organizations.Update(ctx, inactive))

	t.Run("default order is by id", func(t *testing.T) {
		orgs, err := s.Organizations.List(ctx, repository.Query{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Uni", "Zoology", "Botany", "Archive"}, names(t, orgs))
	})

	t.Run("filter by code and flag", func(t *testing.T) {
		q := where("type", model.OrgTypeDepartment).Where("active", true)
		q.OrderBy = []string{"name"}
		orgs, err := s.Organizations.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"Botany", "Zoology"}, names(t, orgs))

		n, err := s.Organizations.Count(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("nil matches null", func(t *testing.T) {
		orgs, err := s.Organizations.List(ctx, where("manager_id", nil))
		require.NoError(t, err)
		assert.Equal(t, []string{"Uni"}, names(t, orgs))
	})

	t.Run("descending with limit and offset", func(t *testing.T) {
		q := repository.Query{OrderBy: []string{"-Name"}, Limit: 2, Offset: 1}
		orgs, err := s.Organizations.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"Uni", "Botany"}, names(t, orgs))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := s.Organizations.List(ctx, where("colour", "red"))
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = s.Organizations.List(ctx, repository.Query{OrderBy: []string{"-manager"}})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = s.Organizations.Count(ctx, where("colour", "red"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestQueryIsLazyAndRestartable(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	for i := 0; i < 5; i++ {
		newSubject(t, s, fmt.Sprintf("Subject %d", i))
	}

	seq := s.Subjects.Query(ctx, repository.Query{})

	var first []uuid.UUID
	for subject, err := range seq {
		require.NoError(t, err)
		first = append(first, subject.ID)
	}
	require.Len(t, first, 5)

	var again []uuid.UUID
	for subject, err := range seq {
		require.NoError(t, err)
		again = append(again, subject.ID)
	}
	assert.Equal(t, first, again)

	taken := 0
	for _, err := range seq {
		require.NoError(t, err)
		taken++
		if taken == 2 {
			break
		}
	}
	assert.Equal(t, 2, taken)

	// Stopping early releases the connection for later calls
	n, err := s.Subjects.Count(ctx, repository.Query{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	newSubject(t, s, "Late arrival")
	count := 0
	for _, err := range seq {
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 6, count)
}

func TestQueryReportsInvalidFilterThroughSequence(t *testing.T) {
	s := newStore(t)

	var errs []error
	for v, err := range s.Projects.Query(context.Background(), where("budget", 1)) {
		assert.Nil(t, v)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrValidation)
}

func TestFilterValue(t *testing.T) {
	s := newStore(t)

	tests := []struct {
		name    string
		field   string
		raw     string
		want    any
		wantErr error
	}{
		{"code", "type", "univ", model.OrgTypeUniversity, nil},
		{"unknown code", "type", "school", nil, domain.ErrValidation},
		{"bool", "active", "false", false, nil},
		{"bad bool", "active", "maybe", nil, domain.ErrValidation},
		{"nullable id", "manager_id", "7", uint(7), nil},
		{"null", "manager_id", "null", nil, nil},
		{"string", "city", "Miri", "Miri", nil},
		{"unknown field", "colour", "red", nil, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Organizations.FilterValue(tt.field, tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("date", func(t *testing.T) {
		got, err := s.Projects.FilterValue("start_date", "2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, model.NewDate(2024, 1, 1), got)

		_, err = s.Projects.FilterValue("start_date", "2024-01-01garbage")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("uuid", func(t *testing.T) {
		id := uuid.New()
		got, err := s.SubjectRoles.FilterValue("subject_id", id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})
}

func TestFilterValueMatchesStoredRows(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	project := newProject(t, s, "Dated")

	value, err := s.Projects.FilterValue("start_date", "2024-01-01")
	require.NoError(t, err)

	projects, err := s.Projects.List(ctx, where("start_date", value))
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)
}

func TestConcurrentCreatesOnDistinctRows(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.Subjects.Create(ctx, &model.Subject{Name: ptr(fmt.Sprintf("Worker %d", i)), Sex: model.SexUnknown})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	n, err := s.Subjects.Count(ctx, repository.Query{})
	require.NoError(t, err)
	assert.Equal(t, int64(workers), n)
}

func TestParseKey(t *testing.T) {
	s := newStore(t)

	id, err := s.Organizations.ParseKey("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = s.Organizations.ParseKey("forty-two")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.Organizations.ParseKey("null")
	assert.ErrorIs(t, err, domain.ErrValidation)

	subjectID := uuid.New()
	got, err := s.Subjects.ParseKey(subjectID.String())
	require.NoError(t, err)
	assert.Equal(t, subjectID, got)
}
