package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/model"
)

type Repository interface {
	AuthorRepository
	BookRepository
	BorrowRepository
	LibrarianRepository
	UserRepository
}

type AuthorRepository interface {
	AllAuthors(ctx context.Context) ([]model.Author, error)
	SearchAuthorsByName(ctx context.Context, namePart string) ([]model.Author, error)
	HasCoAuthoredBook(ctx context.Context, authorID int64) (bool, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, author model.Author) (model.Author, error)
}

type BookRepository interface {
	AllBooks(ctx context.Context) ([]model.Book, error)
	FindBooksByContainingTitle(ctx context.Context, titlePart string) ([]model.Book, error)
	FindBooksByAuthorIDAndContainingTitle(ctx context.Context, authorID int64, titlePart string) ([]model.Book, error)
	FindBooksByAuthorContainingName(ctx context.Context, namePart string) ([]model.Book, error)
	FindBooksHavingAuthorCountGreaterThan(ctx context.Context, count int) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, title string, authorIDs []int64) (model.Book, error)
}

type BorrowRepository interface {
	FindInProgressByUser(ctx context.Context, userID int64) ([]model.Borrow, error)
	CountBorrowedBooksByUser(ctx context.Context, userID int64) (int, error)
	CountCurrentBorrowedBooksByUser(ctx context.Context, userID int64) (int, error)
	FindAllLateBorrows(ctx context.Context) ([]model.Borrow, error)
	FindAllBorrowsThatWillBeLateWithin(ctx context.Context, days int) ([]model.Borrow, error)
	GetBorrow(ctx context.Context, id string) (model.Borrow, error)
	CreateBorrow(ctx context.Context, borrow model.Borrow) (model.Borrow, error)
	UpsertBorrow(ctx context.Context, borrow model.Borrow) error
}

type LibrarianRepository interface {
	TopWorkingLibrarians(ctx context.Context) ([]model.LibrarianRank, error)
	AllLibrarians(ctx context.Context) ([]model.Librarian, error)
	GetLibrarian(ctx context.Context, id int64) (model.Librarian, error)
	CreateLibrarian(ctx context.Context, librarian model.Librarian) (model.Librarian, error)
}

type UserRepository interface {
	FindUsersOlderThan(ctx context.Context, age int) ([]model.User, error)
	AllUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
}

type repository struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	now func() time.Time
	log *zap.Logger
}

var _ Repository = (*repository)(nil)

type Option func(r *repository)

// WithClock overrides the time source used by due-date and age queries.
func WithClock(now func() time.Time) Option {
	return func(r *repository) {
		r.now = now
	}
}

func NewRepository(db *sqlx.DB, log *zap.Logger, opts ...Option) (*repository, error) {
	r := &repository{
		db:  db,
		qb:  statementBuilder(db.DriverName()),
		now: time.Now,
		log: log.Named("repo"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

const (
	authorsTableName    = `authors`
	booksTableName      = `books`
	authorBookTableName = `author_book`
	usersTableName      = `users`
	librariansTableName = `librarians`
	borrowsTableName    = `borrows`
)

func statementBuilder(driverName string) sq.StatementBuilderType {
	if sqlx.BindType(driverName) == sqlx.DOLLAR {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// containsPattern builds a LIKE pattern for a case-insensitive substring match
// against lower(column).
func containsPattern(part string) string {
	return "%" + strings.ToLower(part) + "%"
}

func (r *repository) selectAll(ctx context.Context, dest interface{}, q sq.Sqlizer, op string) error {
	query, args, err := q.ToSql()
	if err != nil {
		return errors.Wrap(err, op+": build query")
	}
	r.log.Debug(op, zap.String("query", query), zap.Any("args", args))
	if err = r.db.SelectContext(ctx, dest, query, args...); err != nil {
		r.log.Error(op, zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return errors.Wrap(err, op)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
