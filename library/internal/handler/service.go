package handler

import (
	"context"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	AllAuthors(ctx context.Context) ([]model.Author, error)
	SearchAuthors(ctx context.Context, namePart string) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	HasCoAuthoredBook(ctx context.Context, id int64) (bool, error)
	CreateAuthor(ctx context.Context, fullName string) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, fullName string) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
	AuthorBooks(ctx context.Context, id int64) ([]model.Book, error)

	FindBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)

	CreateUser(ctx context.Context, p model.Person) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	AllUsers(ctx context.Context) ([]model.User, error)
	FindUsersOlderThan(ctx context.Context, age int) ([]model.User, error)
	UserBorrows(ctx context.Context, userID int64) ([]model.Borrow, error)

	CreateLibrarian(ctx context.Context, p model.Person) (model.Librarian, error)
	GetLibrarian(ctx context.Context, id int64) (model.Librarian, error)
	AllLibrarians(ctx context.Context) ([]model.Librarian, error)
	TopLibrarians(ctx context.Context) ([]model.LibrarianRank, error)

	CreateBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error)
	GetBorrow(ctx context.Context, id string) (model.Borrow, error)
	LateBorrows(ctx context.Context) ([]model.Borrow, error)
	BorrowsDueWithin(ctx context.Context, days int) ([]model.Borrow, error)
	Summary(ctx context.Context) (model.Summary, error)
}

var _ LibraryService = (*service.Service)(nil)
