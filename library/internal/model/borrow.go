package model

import "time"

type Borrow struct {
	ID              string    `json:"id" db:"id"`
	BorrowerID      int64     `json:"borrowerId" db:"borrower_id"`
	LibrarianID     int64     `json:"librarianId" db:"librarian_id"`
	BookID          int64     `json:"bookId" db:"book_id"`
	RequestedReturn time.Time `json:"requestedReturn" db:"requested_return"`
	Finished        bool      `json:"finished" db:"finished"`
}

// InProgress is true until the book has been returned.
func (b Borrow) InProgress() bool {
	return !b.Finished
}

// IsLate reports whether the borrow is still open after its requested return.
func (b Borrow) IsLate(now time.Time) bool {
	return b.InProgress() && b.RequestedReturn.Before(now)
}

type CreateBorrowRequest struct {
	ID              string    `json:"id"`
	BorrowerID      int64     `json:"borrowerId" validate:"required,gt=0"`
	LibrarianID     int64     `json:"librarianId" validate:"required,gt=0"`
	BookID          int64     `json:"bookId" validate:"required,gt=0"`
	RequestedReturn time.Time `json:"requestedReturn" validate:"required"`
}

func (r CreateBorrowRequest) Borrow() Borrow {
	return Borrow{
		ID:              r.ID,
		BorrowerID:      r.BorrowerID,
		LibrarianID:     r.LibrarianID,
		BookID:          r.BookID,
		RequestedReturn: r.RequestedReturn,
	}
}

// BorrowEvent is the message consumed from the borrows topic.
type BorrowEvent struct {
	ID              string    `json:"id"`
	BorrowerID      int64     `json:"borrowerId"`
	LibrarianID     int64     `json:"librarianId"`
	BookID          int64     `json:"bookId"`
	RequestedReturn time.Time `json:"requestedReturn"`
	Finished        bool      `json:"finished"`
}

func (e BorrowEvent) Borrow() Borrow {
	return Borrow(e)
}

type AuthorEventType string

const (
	AuthorCreated AuthorEventType = "AUTHOR_CREATED"
	AuthorUpdated AuthorEventType = "AUTHOR_UPDATED"
)

// AuthorEvent is published to the authors topic after a successful write.
type AuthorEvent struct {
	Type      AuthorEventType `json:"type"`
	AuthorID  int64           `json:"authorId"`
	FullName  string          `json:"fullName"`
	Timestamp time.Time       `json:"timestamp"`
}

type Summary struct {
	Late          []Borrow        `json:"late"`
	DueSoon       []Borrow        `json:"dueSoon"`
	TopLibrarians []LibrarianRank `json:"topLibrarians"`
}
