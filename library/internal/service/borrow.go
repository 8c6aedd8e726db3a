package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

func (s *Service) CreateBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error) {
	if b.RequestedReturn.IsZero() {
		return model.Borrow{}, errors.Wrap(errs.ErrInvalidArgument, "requested return is required")
	}
	return s.repo.CreateBorrow(ctx, b)
}

func (s *Service) GetBorrow(ctx context.Context, id string) (model.Borrow, error) {
	return s.repo.GetBorrow(ctx, id)
}

func (s *Service) LateBorrows(ctx context.Context) ([]model.Borrow, error) {
	return s.repo.FindAllLateBorrows(ctx)
}

func (s *Service) BorrowsDueWithin(ctx context.Context, days int) ([]model.Borrow, error) {
	if days < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "days %d is negative", days)
	}
	return s.repo.FindAllBorrowsThatWillBeLateWithin(ctx, days)
}

// UpsertBorrow stores a borrow received from the borrows topic.
func (s *Service) UpsertBorrow(ctx context.Context, b model.Borrow) error {
	if err := s.repo.UpsertBorrow(ctx, b); err != nil {
		return err
	}
	s.log.Debug("borrow upserted", zap.String("id", b.ID), zap.Bool("finished", b.Finished))
	return nil
}

// Summary collects late borrows, borrows due within a week and the top
// librarians concurrently.
func (s *Service) Summary(ctx context.Context) (model.Summary, error) {
	var sum model.Summary
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		sum.Late, err = s.repo.FindAllLateBorrows(ctx)
		return err
	})
	gg.Go(func() (err error) {
		sum.DueSoon, err = s.repo.FindAllBorrowsThatWillBeLateWithin(ctx, dueSoonDays)
		return err
	})
	gg.Go(func() (err error) {
		sum.TopLibrarians, err = s.repo.TopWorkingLibrarians(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Summary{}, errors.Wrap(err, "summary")
	}
	return sum, nil
}
