package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

// Users and librarians live in separate tables with the same person columns.
var personColumns = []string{"id", "gender", "first_name", "last_name", "birth"}

func (r *repository) personsQuery(table string) sq.SelectBuilder {
	return r.qb.Select(personColumns...).
		From(table).
		OrderBy("last_name asc", "first_name asc", "id asc")
}

func (r *repository) getPerson(ctx context.Context, table, kind string, id int64) (model.Person, error) {
	query, args, err := r.qb.Select(personColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Person{}, err
	}

	var p model.Person
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Person{}, errors.Wrapf(errs.ErrNotFound, "%s %d", kind, id)
		}
		r.log.Error("getPerson", zap.String("q", query), zap.Any("args", args))
		return model.Person{}, err
	}
	return p, nil
}

func (r *repository) createPerson(ctx context.Context, table string, p model.Person) (model.Person, error) {
	p.Birth = dateOf(p.Birth)
	query, args, err := r.qb.Insert(table).
		Columns("gender", "first_name", "last_name", "birth").
		Values(p.Gender, p.FirstName, p.LastName, p.Birth).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Person{}, err
	}
	if err = r.db.QueryRowxContext(ctx, query, args...).Scan(&p.ID); err != nil {
		r.log.Error("createPerson", zap.String("q", query), zap.Any("args", args))
		return model.Person{}, errors.Wrapf(err, "insert into %s", table)
	}
	return p, nil
}

// dateOf drops the time of day, keeping the calendar date in UTC.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// yearsBefore moves t back by years calendar years. A day that does not exist
// in the target month (Feb 29) is clamped to the month's last day.
func yearsBefore(t time.Time, years int) time.Time {
	y, m, d := t.Date()
	lastDay := time.Date(y-years, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(y-years, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
