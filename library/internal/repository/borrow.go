package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

var borrowColumns = []string{"id", "borrower_id", "librarian_id", "book_id", "requested_return", "finished"}

func (r *repository) borrowsQuery() sq.SelectBuilder {
	return r.qb.Select(borrowColumns...).
		From(borrowsTableName)
}

func (r *repository) findBorrows(ctx context.Context, q sq.SelectBuilder, op string) ([]model.Borrow, error) {
	borrows := make([]model.Borrow, 0)
	if err := r.selectAll(ctx, &borrows, q, op); err != nil {
		return nil, err
	}
	return borrows, nil
}

func (r *repository) FindInProgressByUser(ctx context.Context, userID int64) ([]model.Borrow, error) {
	q := r.borrowsQuery().
		Where(sq.Eq{"borrower_id": userID, "finished": false}).
		OrderBy("requested_return asc")
	return r.findBorrows(ctx, q, "FindInProgressByUser")
}

// CountBorrowedBooksByUser is a placeholder contract: it always returns 0.
func (r *repository) CountBorrowedBooksByUser(_ context.Context, _ int64) (int, error) {
	return 0, nil
}

// CountCurrentBorrowedBooksByUser is a placeholder contract: it always returns 0.
func (r *repository) CountCurrentBorrowedBooksByUser(_ context.Context, _ int64) (int, error) {
	return 0, nil
}

// FindAllLateBorrows returns open borrows whose requested return is already
// past, oldest due date first.
func (r *repository) FindAllLateBorrows(ctx context.Context) ([]model.Borrow, error) {
	now := r.now().UTC()
	q := r.borrowsQuery().
		Where(sq.Eq{"finished": false}).
		Where(sq.Lt{"requested_return": now}).
		OrderBy("requested_return asc")
	return r.findBorrows(ctx, q, "FindAllLateBorrows")
}

// FindAllBorrowsThatWillBeLateWithin returns open borrows due in [now, now+days].
func (r *repository) FindAllBorrowsThatWillBeLateWithin(ctx context.Context, days int) ([]model.Borrow, error) {
	now := r.now().UTC()
	until := now.AddDate(0, 0, days)
	q := r.borrowsQuery().
		Where(sq.Eq{"finished": false}).
		Where("requested_return between ? and ?", now, until).
		OrderBy("requested_return asc")
	return r.findBorrows(ctx, q, "FindAllBorrowsThatWillBeLateWithin")
}

func (r *repository) GetBorrow(ctx context.Context, id string) (model.Borrow, error) {
	query, args, err := r.borrowsQuery().
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Borrow{}, err
	}

	var borrow model.Borrow
	if err := r.db.GetContext(ctx, &borrow, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrow{}, errors.Wrapf(errs.ErrNotFound, "borrow %s", id)
		}
		r.log.Error("GetBorrow", zap.String("q", query), zap.Any("args", args))
		return model.Borrow{}, err
	}
	return borrow, nil
}

func (r *repository) borrowInsert(borrow model.Borrow) sq.InsertBuilder {
	return r.qb.Insert(borrowsTableName).
		Columns(borrowColumns...).
		Values(borrow.ID, borrow.BorrowerID, borrow.LibrarianID, borrow.BookID, borrow.RequestedReturn.UTC(), borrow.Finished)
}

func (r *repository) CreateBorrow(ctx context.Context, borrow model.Borrow) (model.Borrow, error) {
	if borrow.ID == "" {
		borrow.ID = uuid.NewString()
	}
	query, args, err := r.borrowInsert(borrow).ToSql()
	if err != nil {
		return model.Borrow{}, err
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return model.Borrow{}, errors.Wrapf(errs.ErrInvalidArgument,
				"borrow references unknown user %d, librarian %d or book %d", borrow.BorrowerID, borrow.LibrarianID, borrow.BookID)
		}
		r.log.Error("CreateBorrow", zap.String("q", query), zap.Any("args", args))
		return model.Borrow{}, errors.Wrap(err, "CreateBorrow")
	}
	borrow.RequestedReturn = borrow.RequestedReturn.UTC()
	return borrow, nil
}

// UpsertBorrow stores the borrow as given, replacing an existing row with the same id.
func (r *repository) UpsertBorrow(ctx context.Context, borrow model.Borrow) error {
	if borrow.ID == "" {
		return errors.Wrap(errs.ErrInvalidArgument, "borrow id is required")
	}
	query, args, err := r.borrowInsert(borrow).
		Suffix(`on conflict (id) do update set
	borrower_id = excluded.borrower_id,
	librarian_id = excluded.librarian_id,
	book_id = excluded.book_id,
	requested_return = excluded.requested_return,
	finished = excluded.finished`).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return errors.Wrapf(errs.ErrInvalidArgument, "borrow %s references unknown rows", borrow.ID)
		}
		return errors.Wrap(err, "UpsertBorrow")
	}
	return nil
}
