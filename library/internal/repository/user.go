package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-catalog/library/internal/model"
)

// FindUsersOlderThan returns users born strictly before today minus age
// calendar years. On Feb 29 the cutoff of a non-leap year is Feb 28.
func (r *repository) FindUsersOlderThan(ctx context.Context, age int) ([]model.User, error) {
	cutoff := yearsBefore(dateOf(r.now()), age)
	q := r.personsQuery(usersTableName).
		Where(sq.Lt{"birth": cutoff})

	users := make([]model.User, 0)
	if err := r.selectAll(ctx, &users, q, "FindUsersOlderThan"); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) AllUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.selectAll(ctx, &users, r.personsQuery(usersTableName), "AllUsers"); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	p, err := r.getPerson(ctx, usersTableName, "user", id)
	if err != nil {
		return model.User{}, err
	}
	return model.User{Person: p}, nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	p, err := r.createPerson(ctx, usersTableName, user.Person)
	if err != nil {
		return model.User{}, err
	}
	return model.User{Person: p}, nil
}
