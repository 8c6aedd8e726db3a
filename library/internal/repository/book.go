package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

func (r *repository) booksQuery() sq.SelectBuilder {
	return r.qb.Select("b.id", "b.title").
		From(booksTableName + " b")
}

func (r *repository) booksWithAuthorsQuery() sq.SelectBuilder {
	return r.booksQuery().
		Join(fmt.Sprintf("%s ab on ab.book_id = b.id", authorBookTableName))
}

func (r *repository) findBooks(ctx context.Context, q sq.SelectBuilder, op string) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.selectAll(ctx, &books, q, op); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) AllBooks(ctx context.Context) ([]model.Book, error) {
	return r.findBooks(ctx, r.booksQuery().OrderBy("b.title asc"), "AllBooks")
}

func (r *repository) FindBooksByContainingTitle(ctx context.Context, titlePart string) ([]model.Book, error) {
	q := r.booksQuery().
		Where(sq.Like{"lower(b.title)": containsPattern(titlePart)}).
		OrderBy("b.title asc")
	return r.findBooks(ctx, q, "FindBooksByContainingTitle")
}

func (r *repository) FindBooksByAuthorIDAndContainingTitle(ctx context.Context, authorID int64, titlePart string) ([]model.Book, error) {
	q := r.booksWithAuthorsQuery().
		Where(sq.Eq{"ab.author_id": authorID}).
		Where(sq.Like{"lower(b.title)": containsPattern(titlePart)}).
		OrderBy("b.title asc")
	return r.findBooks(ctx, q, "FindBooksByAuthorIDAndContainingTitle")
}

// FindBooksByAuthorContainingName returns each matching book once, even when
// several of its authors match.
func (r *repository) FindBooksByAuthorContainingName(ctx context.Context, namePart string) ([]model.Book, error) {
	q := r.booksWithAuthorsQuery().
		Distinct().
		Join(fmt.Sprintf("%s a on a.id = ab.author_id", authorsTableName)).
		Where(sq.Like{"lower(a.full_name)": containsPattern(namePart)}).
		OrderBy("b.title asc")
	return r.findBooks(ctx, q, "FindBooksByAuthorContainingName")
}

func (r *repository) FindBooksHavingAuthorCountGreaterThan(ctx context.Context, count int) ([]model.Book, error) {
	q := r.booksWithAuthorsQuery().
		GroupBy("b.id", "b.title").
		Having("count(ab.author_id) > ?", count).
		OrderBy("b.title asc")
	return r.findBooks(ctx, q, "FindBooksHavingAuthorCountGreaterThan")
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	query, args, err := r.booksQuery().
		Where(sq.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errors.Wrapf(errs.ErrNotFound, "book %d", id)
		}
		r.log.Error("GetBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}

	authorsQuery := r.qb.Select("a.id", "a.full_name").
		From(authorsTableName+" a").
		Join(fmt.Sprintf("%s ab on ab.author_id = a.id", authorBookTableName)).
		Where(sq.Eq{"ab.book_id": id}).
		OrderBy("a.full_name asc")
	book.Authors = make([]model.Author, 0)
	if err := r.selectAll(ctx, &book.Authors, authorsQuery, "GetBook.authors"); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// CreateBook inserts the book and its author links in one transaction.
func (r *repository) CreateBook(ctx context.Context, title string, authorIDs []int64) (model.Book, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "CreateBook: begin")
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := r.qb.Insert(booksTableName).
		Columns("title").
		Values(title).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	book := model.Book{Title: title}
	if err = tx.QueryRowxContext(ctx, query, args...).Scan(&book.ID); err != nil {
		return model.Book{}, errors.Wrap(err, "CreateBook: insert book")
	}

	if len(authorIDs) > 0 {
		links := r.qb.Insert(authorBookTableName).Columns("author_id", "book_id")
		seen := make(map[int64]struct{}, len(authorIDs))
		for _, authorID := range authorIDs {
			if _, ok := seen[authorID]; ok {
				continue
			}
			seen[authorID] = struct{}{}
			links = links.Values(authorID, book.ID)
		}
		query, args, err = links.ToSql()
		if err != nil {
			return model.Book{}, err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if isForeignKeyViolation(err) {
				return model.Book{}, errors.Wrapf(errs.ErrInvalidArgument, "unknown author in %v", authorIDs)
			}
			return model.Book{}, errors.Wrap(err, "CreateBook: insert authors")
		}
	}

	if err = tx.Commit(); err != nil {
		return model.Book{}, errors.Wrap(err, "CreateBook: commit")
	}
	return book, nil
}
