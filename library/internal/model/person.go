package model

import (
	"time"

	"github.com/pkg/errors"
)

type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
	GenderFluid  Gender = "FLUID"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderFluid:
		return true
	}
	return false
}

// Person holds the fields shared by users and librarians.
type Person struct {
	ID        int64     `json:"id" db:"id"`
	Gender    Gender    `json:"gender" db:"gender"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Birth     time.Time `json:"birth" db:"birth"`
}

// Equal compares gender, names and birth date; ids are ignored.
func (p Person) Equal(other Person) bool {
	return p.Gender == other.Gender &&
		p.FirstName == other.FirstName &&
		p.LastName == other.LastName &&
		p.Birth.Equal(other.Birth)
}

type User struct {
	Person
}

type Librarian struct {
	Person
}

type LibrarianRank struct {
	Librarian
	BorrowCount int `json:"borrowCount" db:"borrow_count"`
}

type CreatePersonRequest struct {
	Gender    Gender `json:"gender" validate:"required,oneof=FEMALE MALE FLUID"`
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Birth     Date   `json:"birth" validate:"required"`
}

func (r CreatePersonRequest) Person() Person {
	return Person{
		Gender:    r.Gender,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Birth:     r.Birth.Time,
	}
}

// Date accepts both 2006-01-02 and RFC 3339 in JSON.
type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Errorf("date must be a string, got %s", s)
	}
	s = s[1 : len(s)-1]
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return errors.Errorf("invalid date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}
