package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

func (r *repository) authorsQuery() sq.SelectBuilder {
	return r.qb.Select("id", "full_name").
		From(authorsTableName).
		OrderBy("full_name asc")
}

func (r *repository) AllAuthors(ctx context.Context) ([]model.Author, error) {
	authors := make([]model.Author, 0)
	if err := r.selectAll(ctx, &authors, r.authorsQuery(), "AllAuthors"); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *repository) SearchAuthorsByName(ctx context.Context, namePart string) ([]model.Author, error) {
	q := r.authorsQuery().
		Where(sq.Like{"lower(full_name)": containsPattern(namePart)})

	authors := make([]model.Author, 0)
	if err := r.selectAll(ctx, &authors, q, "SearchAuthorsByName"); err != nil {
		return nil, err
	}
	return authors, nil
}

// HasCoAuthoredBook groups the author links of every book the author took part
// in by book, and looks for one with more than one distinct author.
func (r *repository) HasCoAuthoredBook(ctx context.Context, authorID int64) (bool, error) {
	// Built with '?' placeholders; the outer builder rewrites them in order.
	booksOfAuthor := sq.Select("book_id").
		From(authorBookTableName).
		Where(sq.Eq{"author_id": authorID})
	booksSQL, booksArgs, err := booksOfAuthor.ToSql()
	if err != nil {
		return false, errors.Wrap(err, "HasCoAuthoredBook: build subquery")
	}

	q := r.qb.Select("ab.book_id").
		From(authorBookTableName+" ab").
		Where("ab.book_id in ("+booksSQL+")", booksArgs...).
		GroupBy("ab.book_id").
		Having("count(distinct ab.author_id) > ?", 1).
		Limit(1)

	var bookIDs []int64
	if err = r.selectAll(ctx, &bookIDs, q, "HasCoAuthoredBook"); err != nil {
		return false, err
	}
	return len(bookIDs) > 0, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	query, args, err := r.qb.Select("id", "full_name").
		From(authorsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errors.Wrapf(errs.ErrNotFound, "author %d", id)
		}
		r.log.Error("GetAuthor", zap.String("q", query), zap.Any("args", args))
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	query, args, err := r.qb.Insert(authorsTableName).
		Columns("full_name").
		Values(author.FullName).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	if err = r.db.QueryRowxContext(ctx, query, args...).Scan(&author.ID); err != nil {
		r.log.Error("CreateAuthor", zap.String("q", query), zap.Any("args", args))
		return model.Author{}, errors.Wrap(err, "CreateAuthor")
	}
	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	query, args, err := r.qb.Update(authorsTableName).
		Set("full_name", author.FullName).
		Where(sq.Eq{"id": author.ID}).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Author{}, errors.Wrap(err, "UpdateAuthor")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Author{}, errors.Wrap(err, "UpdateAuthor: rows affected")
	}
	if n == 0 {
		return model.Author{}, errors.Wrapf(errs.ErrNotFound, "author %d", author.ID)
	}
	return author, nil
}
