package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

// FindBooks picks a single query from the filter: author id (optionally
// narrowed by title), then author name, then minimum author count, then title.
// An empty filter lists every book.
func (s *Service) FindBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	switch {
	case f.AuthorID != nil:
		return s.repo.FindBooksByAuthorIDAndContainingTitle(ctx, *f.AuthorID, f.Title)
	case f.AuthorName != nil:
		return s.repo.FindBooksByAuthorContainingName(ctx, *f.AuthorName)
	case f.MinAuthors != nil:
		if *f.MinAuthors < 0 {
			return nil, errors.Wrapf(errs.ErrInvalidArgument, "author count %d is negative", *f.MinAuthors)
		}
		return s.repo.FindBooksHavingAuthorCountGreaterThan(ctx, *f.MinAuthors)
	case f.Title != "":
		return s.repo.FindBooksByContainingTitle(ctx, f.Title)
	default:
		return s.repo.AllBooks(ctx)
	}
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if blank(req.Title) {
		return model.Book{}, errs.ErrBlankTitle
	}
	book, err := s.repo.CreateBook(ctx, req.Title, req.AuthorIDs)
	if err != nil {
		return model.Book{}, err
	}
	return s.repo.GetBook(ctx, book.ID)
}
