package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectCreate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	t.Run("birth date is optional", func(t *testing.T) {
		subject := &model.Subject{Sex: model.SexMale, Active: true}
		require.NoError(t, s.Subjects.Create(ctx, subject))
		assert.NotEqual(t, uuid.Nil, subject.ID)
		assert.Nil(t, subject.BirthDate)
		assert.False(t, subject.Created.IsZero())
	})

	t.Run("invalid sex", func(t *testing.T) {
		err := s.Subjects.Create(ctx, &model.Subject{Sex: model.Sex("X")})
		require.ErrorIs(t, err, domain.ErrValidation)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "sex", verr.Fields[0].Field)
		assert.Equal(t, "code", verr.Fields[0].Rule)
	})

	t.Run("missing sex", func(t *testing.T) {
		err := s.Subjects.Create(ctx, &model.Subject{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("name too long", func(t *testing.T) {
		long := strings.Repeat("n", 121)
		err := s.Subjects.Create(ctx, &model.Subject{Sex: model.SexUnknown, Name: &long})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("identifier is always generated", func(t *testing.T) {
		existing := newSubject(t, s, "Existing")
		subject := &model.Subject{ID: existing.ID, Sex: model.SexFemale}
		require.NoError(t, s.Subjects.Create(ctx, subject))
		assert.NotEqual(t, existing.ID, subject.ID)
	})
}

func TestSubjectRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	birth := model.NewDate(1988, time.March, 14)
	gender := model.GenderFemale
	ethnicity := model.EthnicityIban
	subject := &model.Subject{
		Name:      ptr("Aisyah binti Rahman"),
		Prefix:    ptr("Dr."),
		Active:    true,
		Sex:       model.SexFemale,
		Gender:    &gender,
		BirthDate: &birth,
		Ethnicity: &ethnicity,
	}
	require.NoError(t, s.Subjects.Create(ctx, subject))

	got, err := s.Subjects.Get(ctx, subject.ID)
	require.NoError(t, err)
	assert.Equal(t, subject, got)
	assert.Equal(t, "Aisyah binti Rahman", *got.Name)
	assert.Equal(t, birth, *got.BirthDate)
	assert.Equal(t, model.EthnicityIban, *got.Ethnicity)
	assert.Equal(t, "Dr. Aisyah binti Rahman", got.DisplayName())
}

func TestSubjectUpdateKeepsCreationTime(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	subject := newSubject(t, s, "Wong Mei Ling")
	created := subject.Created

	subject.Created = created.Add(-48 * time.Hour)
	subject.Active = false
	subject.Suffix = ptr("PhD")
	require.NoError(t, s.Subjects.Update(ctx, subject))

	assert.True(t, subject.Created.Equal(created))
	assert.False(t, subject.Active)
	assert.Equal(t, "PhD", *subject.Suffix)

	err := s.Subjects.Update(ctx, &model.Subject{ID: uuid.New(), Sex: model.SexMale})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubjectDeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	subject := newSubject(t, s, "Rajesh Kumar")
	other := newSubject(t, s, "Other")

	require.NoError(t, s.Identifications.Create(ctx, &model.Identification{
		Value: "880314-13-5522", Type: model.IDNationalRegistration, SubjectID: subject.ID,
	}))
	require.NoError(t, s.Identifications.Create(ctx, &model.Identification{
		Value: "A12345678", Type: model.IDPassport, SubjectID: subject.ID,
	}))
	require.NoError(t, s.Addresses.Create(ctx, &model.Address{
		Use: model.AddressUseHome, Text: "12 Jalan Song", City: "Kuching", State: "Sarawak", SubjectID: subject.ID,
	}))
	require.NoError(t, s.ContactPoints.Create(ctx, &model.ContactPoint{
		System: model.ContactEmail, Value: "rajesh@example.com", Use: model.ContactUseWork, SubjectID: subject.ID,
	}))
	require.NoError(t, s.ContactPoints.Create(ctx, &model.ContactPoint{
		System: model.ContactMobile, Value: "+60123456789", Use: model.ContactUsePersonal, SubjectID: other.ID,
	}))

	require.NoError(t, s.Subjects.Delete(ctx, subject.ID))

	_, err := s.Subjects.Get(ctx, subject.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for name, count := range map[string]func() (int64, error){
		"identifications": func() (int64, error) {
			return s.Identifications.Count(ctx, where("subject_id", subject.ID))
		},
		"addresses": func() (int64, error) {
			return s.Addresses.Count(ctx, where("subject_id", subject.ID))
		},
		"contact points": func() (int64, error) {
			return s.ContactPoints.Count(ctx, where("subject_id", subject.ID))
		},
	} {
		n, err := count()
		require.NoError(t, err, name)
		assert.Zero(t, n, name)
	}

	remaining, err := s.Subjects.ContactPoints(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	assert.ErrorIs(t, s.Subjects.Delete(ctx, subject.ID), domain.ErrNotFound)
}

func TestSubjectAccessors(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	subject := newSubject(t, s, "Lim Ah Kow")

	for _, cp := range []model.ContactPoint{
		{System: model.ContactEmail, Value: "third@example.com", Use: model.ContactUseWork, Rank: 3},
		{System: model.ContactMobile, Value: "+60111111111", Use: model.ContactUsePersonal, Rank: 1},
		{System: model.ContactPhone, Value: "+6082222222", Use: model.ContactUseHome, Rank: 2},
	} {
		cp.SubjectID = subject.ID
		require.NoError(t, s.ContactPoints.Create(ctx, &cp))
	}

	contacts, err := s.Subjects.ContactPoints(ctx, subject.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, []uint16{1, 2, 3}, []uint16{contacts[0].Rank, contacts[1].Rank, contacts[2].Rank})

	address := &model.Address{Use: model.AddressUseWork, Text: "Lab 3", City: "Kota Samarahan", State: "Sarawak", SubjectID: subject.ID}
	require.NoError(t, s.Addresses.Create(ctx, address))
	assert.Equal(t, model.AddressPhysical, address.Type)
	assert.Equal(t, "MY", address.Country)

	addresses, err := s.Subjects.Addresses(ctx, subject.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "Lab 3", addresses[0].Text)

	_, err = s.Subjects.Identifications(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.Identifications.Create(ctx, &model.Identification{Value: "X1", Type: model.IDEmployment, SubjectID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestNewCarriesDeclaredDefaults(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	subject := s.Subjects.New()
	assert.True(t, subject.Active)
	subject.Sex = model.SexMale
	require.NoError(t, s.Subjects.Create(ctx, subject))

	stored, err := s.Subjects.Get(ctx, subject.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active)

	// A literal value keeps the false it was given
	inactive := &model.Subject{Sex: model.SexFemale}
	require.NoError(t, s.Subjects.Create(ctx, inactive))
	assert.False(t, inactive.Active)

	assert.Equal(t, 1, s.Consumables.New().QuantityRequired)
	assert.Equal(t, model.AddressPhysical, s.Addresses.New().Type)
	assert.Equal(t, "MY", s.Organizations.New().Country)
}
