package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"calendar day", "2024-01-01", NewDate(2024, time.January, 1), false},
		{"rfc3339", "2024-02-29T08:30:00Z", NewDate(2024, time.February, 29), false},
		{"rfc3339 keeps its own day", "2024-03-01T23:30:00-05:00", NewDate(2024, time.March, 1), false},
		{"sqlite timestamp", "2024-05-06 00:00:00", NewDate(2024, time.May, 6), false},
		{"trailing garbage", "2024-01-01garbage", Date{}, true},
		{"trailing separator only", "2024-01-01T", Date{}, true},
		{"short", "2024-1-1", Date{}, true},
		{"not a day", "2024-02-30", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateJSON(t *testing.T) {
	var v struct {
		Day *Date `json:"day"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"day":"1975-08-31"}`), &v))
	require.NotNil(t, v.Day)
	assert.Equal(t, "1975-08-31", v.Day.String())

	err := json.Unmarshal([]byte(`{"day":"2024-01-01garbage"}`), &v)
	assert.ErrorIs(t, err, domain.ErrValidation)

	out, err := json.Marshal(struct {
		Day Date `json:"day"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":null}`, string(out))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-01-01"))
	assert.Equal(t, NewDate(2024, time.January, 1), d)

	require.NoError(t, d.Scan(time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2023, time.July, 4), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan("2024-01-01garbage"))
	assert.Error(t, d.Scan(42))
}
