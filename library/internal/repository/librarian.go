package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-catalog/library/internal/model"
)

const topLibrariansLimit = 3

// TopWorkingLibrarians ranks librarians by the number of borrows they
// registered. Ties are broken by librarian id.
func (r *repository) TopWorkingLibrarians(ctx context.Context) ([]model.LibrarianRank, error) {
	q := r.qb.Select("l.id", "l.gender", "l.first_name", "l.last_name", "l.birth", "count(b.id) as borrow_count").
		From(borrowsTableName+" b").
		Join(fmt.Sprintf("%s l on l.id = b.librarian_id", librariansTableName)).
		GroupBy("l.id", "l.gender", "l.first_name", "l.last_name", "l.birth").
		OrderBy("borrow_count desc", "l.id asc").
		Limit(topLibrariansLimit)

	ranks := make([]model.LibrarianRank, 0, topLibrariansLimit)
	if err := r.selectAll(ctx, &ranks, q, "TopWorkingLibrarians"); err != nil {
		return nil, err
	}
	return ranks, nil
}

func (r *repository) AllLibrarians(ctx context.Context) ([]model.Librarian, error) {
	librarians := make([]model.Librarian, 0)
	if err := r.selectAll(ctx, &librarians, r.personsQuery(librariansTableName), "AllLibrarians"); err != nil {
		return nil, err
	}
	return librarians, nil
}

func (r *repository) GetLibrarian(ctx context.Context, id int64) (model.Librarian, error) {
	p, err := r.getPerson(ctx, librariansTableName, "librarian", id)
	if err != nil {
		return model.Librarian{}, err
	}
	return model.Librarian{Person: p}, nil
}

func (r *repository) CreateLibrarian(ctx context.Context, librarian model.Librarian) (model.Librarian, error) {
	p, err := r.createPerson(ctx, librariansTableName, librarian.Person)
	if err != nil {
		return model.Librarian{}, err
	}
	return model.Librarian{Person: p}, nil
}
