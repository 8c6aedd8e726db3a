package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuthor_Equal(t *testing.T) {
	require.True(t, Author{ID: 1, FullName: "Jane Austen"}.Equal(Author{ID: 2, FullName: "Jane Austen"}))
	require.False(t, Author{ID: 1, FullName: "Jane Austen"}.Equal(Author{ID: 1, FullName: "J. Austen"}))
}

func TestPerson_Equal(t *testing.T) {
	birth := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	a := Person{ID: 1, Gender: GenderFemale, FirstName: "Ann", LastName: "Lee", Birth: birth}
	b := a
	b.ID = 42
	require.True(t, a.Equal(b))

	b.Gender = GenderFluid
	require.False(t, a.Equal(b))

	c := a
	c.Birth = birth.AddDate(0, 0, 1)
	require.False(t, a.Equal(c))
}

func TestGender_Valid(t *testing.T) {
	for _, g := range []Gender{GenderFemale, GenderMale, GenderFluid} {
		require.True(t, g.Valid(), g)
	}
	require.False(t, Gender("OTHER").Valid())
	require.False(t, Gender("").Valid())
}

func TestBorrow_IsLate(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		borrow Borrow
		want   bool
	}{
		{name: "past due", borrow: Borrow{RequestedReturn: now.Add(-time.Minute)}, want: true},
		{name: "returned", borrow: Borrow{RequestedReturn: now.Add(-time.Minute), Finished: true}, want: false},
		{name: "not yet due", borrow: Borrow{RequestedReturn: now.Add(time.Minute)}, want: false},
		{name: "due now", borrow: Borrow{RequestedReturn: now}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.borrow.IsLate(now))
			if tt.want {
				require.True(t, tt.borrow.InProgress())
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var req CreatePersonRequest
	err := json.Unmarshal([]byte(`{"gender":"MALE","firstName":"Bo","lastName":"Li","birth":"2001-02-03"}`), &req)
	require.NoError(t, err)
	require.Equal(t, time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC), req.Birth.Time)

	err = json.Unmarshal([]byte(`{"birth":"2001-02-03T10:00:00Z"}`), &req)
	require.NoError(t, err)
	require.Equal(t, 10, req.Birth.Hour())

	out, err := json.Marshal(Date{Time: time.Date(2001, 2, 3, 10, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.JSONEq(t, `"2001-02-03"`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"birth":"03.02.2001"}`), &req))
	require.Error(t, json.Unmarshal([]byte(`{"birth":20010203}`), &req))
}
