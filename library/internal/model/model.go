package model

type Author struct {
	ID       int64  `json:"id" db:"id"`
	FullName string `json:"fullName" db:"full_name"`
	Books    []Book `json:"books,omitempty" db:"-"`
}

// Equal reports natural equality: authors are the same person when their full names match.
func (a Author) Equal(other Author) bool {
	return a.FullName == other.FullName
}

type Book struct {
	ID      int64    `json:"id" db:"id"`
	Title   string   `json:"title" db:"title"`
	Authors []Author `json:"authors,omitempty" db:"-"`
}

type AuthorRequest struct {
	FullName *string `json:"fullName"`
}

type CreateBookRequest struct {
	Title     string  `json:"title" validate:"notblank"`
	AuthorIDs []int64 `json:"authorIds" validate:"omitempty,dive,gt=0"`
}

type CoAuthored struct {
	AuthorID   int64 `json:"authorId"`
	CoAuthored bool  `json:"coAuthored"`
}

// BookFilter narrows a book listing; nil fields are not applied.
type BookFilter struct {
	Title      string
	AuthorID   *int64
	AuthorName *string
	MinAuthors *int
}
