package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

func checkPerson(p model.Person, now time.Time) error {
	if !p.Gender.Valid() {
		return errors.Wrapf(errs.ErrInvalidArgument, "unknown gender %q", p.Gender)
	}
	if blank(p.FirstName) || blank(p.LastName) {
		return errors.Wrap(errs.ErrInvalidArgument, "first and last name cannot be blank")
	}
	if p.Birth.IsZero() {
		return errors.Wrap(errs.ErrInvalidArgument, "birth is required")
	}
	if p.Birth.After(now) {
		return errors.Wrap(errs.ErrInvalidArgument, "birth is in the future")
	}
	return nil
}

func (s *Service) CreateUser(ctx context.Context, p model.Person) (model.User, error) {
	if err := checkPerson(p, s.now()); err != nil {
		return model.User{}, err
	}
	return s.repo.CreateUser(ctx, model.User{Person: p})
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) AllUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.AllUsers(ctx)
}

func (s *Service) FindUsersOlderThan(ctx context.Context, age int) ([]model.User, error) {
	if age < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "age %d is negative", age)
	}
	return s.repo.FindUsersOlderThan(ctx, age)
}

// UserBorrows lists the borrows the user has not returned yet.
func (s *Service) UserBorrows(ctx context.Context, userID int64) ([]model.Borrow, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.FindInProgressByUser(ctx, userID)
}

func (s *Service) CreateLibrarian(ctx context.Context, p model.Person) (model.Librarian, error) {
	if err := checkPerson(p, s.now()); err != nil {
		return model.Librarian{}, err
	}
	return s.repo.CreateLibrarian(ctx, model.Librarian{Person: p})
}

func (s *Service) GetLibrarian(ctx context.Context, id int64) (model.Librarian, error) {
	return s.repo.GetLibrarian(ctx, id)
}

func (s *Service) AllLibrarians(ctx context.Context) ([]model.Librarian, error) {
	return s.repo.AllLibrarians(ctx)
}

func (s *Service) TopLibrarians(ctx context.Context) ([]model.LibrarianRank, error) {
	return s.repo.TopWorkingLibrarians(ctx)
}
