package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// ErrDuplicateKey is returned when an insert hits a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}

// appendDateFilter adds the WHERE fragment for f on column, numbering
// placeholders after the existing args.
func appendDateFilter(where []string, args []any, column string, f models.DateFilter) ([]string, []any) {
	switch f.Mode() {
	case models.DateFilterRange:
		args = append(args, models.TruncateDay(*f.StartDate), models.TruncateDay(*f.EndDate))
		where = append(where, fmt.Sprintf("%s BETWEEN $%d AND $%d", column, len(args)-1, len(args)))
	case models.DateFilterExact:
		args = append(args, models.TruncateDay(*f.Date))
		where = append(where, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	return where, args
}
