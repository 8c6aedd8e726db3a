package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

func (s *Service) AllAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.AllAuthors(ctx)
}

// SearchAuthors matches namePart case-insensitively anywhere in the full name.
func (s *Service) SearchAuthors(ctx context.Context, namePart string) ([]model.Author, error) {
	return s.repo.SearchAuthorsByName(ctx, namePart)
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) HasCoAuthoredBook(ctx context.Context, id int64) (bool, error) {
	if _, err := s.repo.GetAuthor(ctx, id); err != nil {
		return false, err
	}
	return s.repo.HasCoAuthoredBook(ctx, id)
}

func (s *Service) CreateAuthor(ctx context.Context, fullName string) (model.Author, error) {
	if blank(fullName) {
		return model.Author{}, errs.ErrBlankFullName
	}
	return s.repo.CreateAuthor(ctx, model.Author{FullName: fullName})
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, fullName string) (model.Author, error) {
	if blank(fullName) {
		return model.Author{}, errs.ErrBlankFullName
	}
	return s.repo.UpdateAuthor(ctx, model.Author{ID: id, FullName: fullName})
}

func (s *Service) DeleteAuthor(_ context.Context, id int64) error {
	return errors.Wrapf(errs.ErrNotImplemented, "delete author %d", id)
}

func (s *Service) AuthorBooks(_ context.Context, id int64) ([]model.Book, error) {
	return nil, errors.Wrapf(errs.ErrNotImplemented, "books of author %d", id)
}
