package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/repository"
	"github.com/Astemirdum/library-catalog/library/migrations"
	"github.com/Astemirdum/library-catalog/pkg/database"
)

var now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	return newRepoAt(t, now)
}

func newRepoAt(t *testing.T, at time.Time) repository.Repository {
	t.Helper()
	cfg := &database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "library.db"),
	}
	db, err := database.NewDB(context.Background(), cfg, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := repository.NewRepository(db, zap.NewNop(), repository.WithClock(func() time.Time { return at }))
	require.NoError(t, err)
	return repo
}

func createAuthor(t *testing.T, repo repository.Repository, name string) model.Author {
	t.Helper()
	a, err := repo.CreateAuthor(context.Background(), model.Author{FullName: name})
	require.NoError(t, err)
	require.NotZero(t, a.ID)
	return a
}

func createBook(t *testing.T, repo repository.Repository, title string, authors ...model.Author) model.Book {
	t.Helper()
	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	b, err := repo.CreateBook(context.Background(), title, ids)
	require.NoError(t, err)
	return b
}

func person(g model.Gender, first, last string, birth time.Time) model.Person {
	return model.Person{Gender: g, FirstName: first, LastName: last, Birth: birth}
}

func TestRepository_Authors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	tolkien := createAuthor(t, repo, "J.R.R. Tolkien")
	christopher := createAuthor(t, repo, "Christopher Tolkien")
	austen := createAuthor(t, repo, "Jane Austen")

	all, err := repo.AllAuthors(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Author{christopher, tolkien, austen}, all)

	t.Run("search is case insensitive", func(t *testing.T) {
		found, err := repo.SearchAuthorsByName(ctx, "TOLK")
		require.NoError(t, err)
		require.Equal(t, []model.Author{christopher, tolkien}, found)
	})

	t.Run("empty search matches all", func(t *testing.T) {
		found, err := repo.SearchAuthorsByName(ctx, "")
		require.NoError(t, err)
		require.Equal(t, all, found)
	})

	t.Run("get", func(t *testing.T) {
		got, err := repo.GetAuthor(ctx, austen.ID)
		require.NoError(t, err)
		require.Equal(t, austen, got)

		_, err = repo.GetAuthor(ctx, 9999)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.EqualError(t, err, "author 9999: not found")
	})

	t.Run("update", func(t *testing.T) {
		updated, err := repo.UpdateAuthor(ctx, model.Author{ID: austen.ID, FullName: "J. Austen"})
		require.NoError(t, err)
		require.Equal(t, "J. Austen", updated.FullName)

		got, err := repo.GetAuthor(ctx, austen.ID)
		require.NoError(t, err)
		require.Equal(t, "J. Austen", got.FullName)

		_, err = repo.UpdateAuthor(ctx, model.Author{ID: 9999, FullName: "nobody"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestRepository_HasCoAuthoredBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	a := createAuthor(t, repo, "A")
	b := createAuthor(t, repo, "B")
	c := createAuthor(t, repo, "C")
	loner := createAuthor(t, repo, "Loner")

	createBook(t, repo, "The Hobbit", a, b)
	createBook(t, repo, "Solo", loner)

	tests := []struct {
		name   string
		author model.Author
		want   bool
	}{
		{name: "co-author", author: a, want: true},
		{name: "other co-author", author: b, want: true},
		{name: "no books", author: c, want: false},
		{name: "single author book", author: loner, want: false},
	}
	for _, tt := range tests {
		got, err := repo.HasCoAuthoredBook(ctx, tt.author.ID)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, got, tt.name)
	}

	createBook(t, repo, "Unfinished Tales", c, a)
	got, err := repo.HasCoAuthoredBook(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, got)
}

func TestRepository_Books(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	tolkien := createAuthor(t, repo, "J.R.R. Tolkien")
	christopher := createAuthor(t, repo, "Christopher Tolkien")
	austen := createAuthor(t, repo, "Jane Austen")

	hobbit := createBook(t, repo, "The Hobbit", tolkien, christopher)
	silmarillion := createBook(t, repo, "The Silmarillion", tolkien)
	emma := createBook(t, repo, "Emma", austen)
	orphan := createBook(t, repo, "Anonymous Tales")

	strip := func(books ...model.Book) []model.Book {
		out := make([]model.Book, 0, len(books))
		for _, b := range books {
			out = append(out, model.Book{ID: b.ID, Title: b.Title})
		}
		return out
	}

	t.Run("all ordered by title", func(t *testing.T) {
		all, err := repo.AllBooks(ctx)
		require.NoError(t, err)
		require.Equal(t, strip(orphan, emma, hobbit, silmarillion), all)
	})

	t.Run("containing title", func(t *testing.T) {
		found, err := repo.FindBooksByContainingTitle(ctx, "the")
		require.NoError(t, err)
		require.Equal(t, strip(hobbit, silmarillion), found)

		found, err = repo.FindBooksByContainingTitle(ctx, "")
		require.NoError(t, err)
		require.Len(t, found, 4)
	})

	t.Run("author id and title", func(t *testing.T) {
		found, err := repo.FindBooksByAuthorIDAndContainingTitle(ctx, tolkien.ID, "silm")
		require.NoError(t, err)
		require.Equal(t, strip(silmarillion), found)

		found, err = repo.FindBooksByAuthorIDAndContainingTitle(ctx, austen.ID, "hobbit")
		require.NoError(t, err)
		require.Empty(t, found)
	})

	t.Run("author name returns each book once", func(t *testing.T) {
		found, err := repo.FindBooksByAuthorContainingName(ctx, "tolkien")
		require.NoError(t, err)
		require.Equal(t, strip(hobbit, silmarillion), found)
	})

	t.Run("author count greater than", func(t *testing.T) {
		found, err := repo.FindBooksHavingAuthorCountGreaterThan(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, strip(hobbit), found)

		found, err = repo.FindBooksHavingAuthorCountGreaterThan(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, strip(emma, hobbit, silmarillion), found)
	})

	t.Run("get with authors", func(t *testing.T) {
		got, err := repo.GetBook(ctx, hobbit.ID)
		require.NoError(t, err)
		require.Equal(t, "The Hobbit", got.Title)
		require.Equal(t, []model.Author{christopher, tolkien}, got.Authors)

		_, err = repo.GetBook(ctx, 9999)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown author", func(t *testing.T) {
		_, err := repo.CreateBook(ctx, "Ghost", []int64{9999})
		require.ErrorIs(t, err, errs.ErrInvalidArgument)

		found, err := repo.FindBooksByContainingTitle(ctx, "ghost")
		require.NoError(t, err)
		require.Empty(t, found)
	})
}

type borrowFixture struct {
	user      model.User
	librarian model.Librarian
	book      model.Book
}

func newBorrowFixture(t *testing.T, repo repository.Repository) borrowFixture {
	t.Helper()
	ctx := context.Background()
	user, err := repo.CreateUser(ctx, model.User{Person: person(model.GenderFemale, "Ann", "Reader", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	librarian, err := repo.CreateLibrarian(ctx, model.Librarian{Person: person(model.GenderMale, "Bob", "Keeper", time.Date(1980, 5, 5, 0, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	book := createBook(t, repo, "Dune", createAuthor(t, repo, "Frank Herbert"))
	return borrowFixture{user: user, librarian: librarian, book: book}
}

func (f borrowFixture) borrow(due time.Time, finished bool) model.Borrow {
	return model.Borrow{
		BorrowerID:      f.user.ID,
		LibrarianID:     f.librarian.ID,
		BookID:          f.book.ID,
		RequestedReturn: due,
		Finished:        finished,
	}
}

func TestRepository_Borrows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)
	f := newBorrowFixture(t, repo)

	create := func(due time.Time, finished bool) model.Borrow {
		b, err := repo.CreateBorrow(ctx, f.borrow(due, finished))
		require.NoError(t, err)
		require.NotEmpty(t, b.ID)
		return b
	}
	lateOld := create(now.AddDate(0, 0, -10), false)
	late := create(now.Add(-time.Hour), false)
	returned := create(now.AddDate(0, 0, -3), true)
	dueTomorrow := create(now.AddDate(0, 0, 1), false)
	dueInFive := create(now.AddDate(0, 0, 5), false)
	create(now.AddDate(0, 0, 2), true)

	t.Run("get", func(t *testing.T) {
		got, err := repo.GetBorrow(ctx, late.ID)
		require.NoError(t, err)
		require.Equal(t, late.ID, got.ID)
		require.True(t, late.RequestedReturn.Equal(got.RequestedReturn))
		require.False(t, got.Finished)

		got, err = repo.GetBorrow(ctx, returned.ID)
		require.NoError(t, err)
		require.True(t, got.Finished)

		_, err = repo.GetBorrow(ctx, "missing")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("late", func(t *testing.T) {
		found, err := repo.FindAllLateBorrows(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{lateOld.ID, late.ID}, ids(found))
		for _, b := range found {
			require.True(t, b.IsLate(now))
		}
	})

	t.Run("due within grows with days", func(t *testing.T) {
		prev := 0
		for _, days := range []int{0, 1, 3, 5, 30} {
			found, err := repo.FindAllBorrowsThatWillBeLateWithin(ctx, days)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(found), prev, "days=%d", days)
			prev = len(found)
			for _, b := range found {
				require.False(t, b.Finished)
			}
		}
		found, err := repo.FindAllBorrowsThatWillBeLateWithin(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, []string{dueTomorrow.ID}, ids(found))

		found, err = repo.FindAllBorrowsThatWillBeLateWithin(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, []string{dueTomorrow.ID, dueInFive.ID}, ids(found))
	})

	t.Run("in progress by user", func(t *testing.T) {
		found, err := repo.FindInProgressByUser(ctx, f.user.ID)
		require.NoError(t, err)
		require.Equal(t, []string{lateOld.ID, late.ID, dueTomorrow.ID, dueInFive.ID}, ids(found))

		found, err = repo.FindInProgressByUser(ctx, 9999)
		require.NoError(t, err)
		require.Empty(t, found)
	})

	t.Run("counts are placeholders", func(t *testing.T) {
		n, err := repo.CountBorrowedBooksByUser(ctx, f.user.ID)
		require.NoError(t, err)
		require.Zero(t, n)
		n, err = repo.CountCurrentBorrowedBooksByUser(ctx, f.user.ID)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("unknown references", func(t *testing.T) {
		b := f.borrow(now, false)
		b.BookID = 9999
		_, err := repo.CreateBorrow(ctx, b)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestRepository_UpsertBorrow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)
	f := newBorrowFixture(t, repo)

	b := f.borrow(now.AddDate(0, 0, 7), false)
	b.ID = "0b6f1a8e-6a43-4a3a-9c55-1f1d1c1b2a01"
	require.NoError(t, repo.UpsertBorrow(ctx, b))

	b.Finished = true
	require.NoError(t, repo.UpsertBorrow(ctx, b))

	got, err := repo.GetBorrow(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, got.Finished)

	err = repo.UpsertBorrow(ctx, model.Borrow{})
	require.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestRepository_TopWorkingLibrarians(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)
	f := newBorrowFixture(t, repo)

	librarians := []model.Librarian{f.librarian}
	for _, name := range []string{"Cid", "Dee", "Eve"} {
		l, err := repo.CreateLibrarian(ctx, model.Librarian{Person: person(model.GenderFluid, name, "Shelf", time.Date(1985, 3, 3, 0, 0, 0, 0, time.UTC))})
		require.NoError(t, err)
		librarians = append(librarians, l)
	}

	// borrow counts per librarian: 1, 4, 2, 3
	for i, count := range []int{1, 4, 2, 3} {
		for j := 0; j < count; j++ {
			b := f.borrow(now.AddDate(0, 0, j), false)
			b.LibrarianID = librarians[i].ID
			_, err := repo.CreateBorrow(ctx, b)
			require.NoError(t, err)
		}
	}

	top, err := repo.TopWorkingLibrarians(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, librarians[1].ID, top[0].ID)
	require.Equal(t, 4, top[0].BorrowCount)
	require.Equal(t, librarians[3].ID, top[1].ID)
	require.Equal(t, librarians[2].ID, top[2].ID)
	require.True(t, librarians[1].Person.Equal(top[0].Person))

	all, err := repo.AllLibrarians(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	got, err := repo.GetLibrarian(ctx, librarians[2].ID)
	require.NoError(t, err)
	require.True(t, librarians[2].Person.Equal(got.Person))

	_, err = repo.GetLibrarian(ctx, 9999)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_TopWorkingLibrariansEmpty(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	top, err := repo.TopWorkingLibrarians(context.Background())
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestRepository_FindUsersOlderThan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	births := map[string]time.Time{
		"Old":        time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		"Thirty":     time.Date(1996, 10, 16, 0, 0, 0, 0, time.UTC), // turns 30 today
		"AlmostOver": time.Date(1996, 10, 15, 0, 0, 0, 0, time.UTC),
		"Young":      time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for name, birth := range births {
		_, err := repo.CreateUser(ctx, model.User{Person: person(model.GenderFemale, name, "User", birth)})
		require.NoError(t, err)
	}

	names := func(users []model.User) []string {
		out := make([]string, 0, len(users))
		for _, u := range users {
			out = append(out, u.FirstName)
		}
		return out
	}

	found, err := repo.FindUsersOlderThan(ctx, 30)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Old", "AlmostOver"}, names(found))

	found, err = repo.FindUsersOlderThan(ctx, 0)
	require.NoError(t, err)
	require.Len(t, found, 4)

	found, err = repo.FindUsersOlderThan(ctx, 100)
	require.NoError(t, err)
	require.Empty(t, found)

	all, err := repo.AllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	got, err := repo.GetUser(ctx, all[0].ID)
	require.NoError(t, err)
	require.True(t, all[0].Person.Equal(got.Person))

	_, err = repo.GetUser(ctx, 9999)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_FindUsersOlderThanOnLeapDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepoAt(t, time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC))

	for _, birth := range []time.Time{
		time.Date(2023, time.February, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
	} {
		_, err := repo.CreateUser(ctx, model.User{Person: person(model.GenderMale, birth.Format("Jan02"), "User", birth)})
		require.NoError(t, err)
	}

	// the cutoff is 2023-02-28, so only the user born the day before is older than one
	found, err := repo.FindUsersOlderThan(ctx, 1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Feb27", found[0].FirstName)
}

func ids(borrows []model.Borrow) []string {
	out := make([]string, 0, len(borrows))
	for _, b := range borrows {
		out = append(out, b.ID)
	}
	return out
}
