package repository

import (
	"context"
	"fmt"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, username, email, password_hash, role, created_at`

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, account.Username, account.Email, account.PasswordHash, string(account.Role)).
		Scan(&account.ID, &account.CreatedAt)
	return translateError(err)
}

// GetByUsername returns the oldest account with username across all roles.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1 ORDER BY id ASC LIMIT 1`
	return scanAccount(r.db.QueryRow(ctx, query, username))
}

func (r *AccountRepository) GetByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1 AND role = $2`
	return scanAccount(r.db.QueryRow(ctx, query, username, string(role)))
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRow(ctx, query, id))
}

// AccountListFilter narrows an account listing. A nil Role lists every role.
type AccountListFilter struct {
	Role   *models.Role
	Offset int
	Limit  int
}

// List returns one page of accounts ordered by id, plus the number of
// accounts matching the filter.
func (r *AccountRepository) List(ctx context.Context, filter AccountListFilter) ([]models.Account, int, error) {
	where := ""
	args := []any{}
	if filter.Role != nil {
		args = append(args, string(*filter.Role))
		where = " WHERE role = $1"
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + accountColumns + ` FROM accounts` + where +
		fmt.Sprintf(` ORDER BY id ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, filter.Limit)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes the account; profiles, logs and assignments go with it
// through ON DELETE CASCADE. pgx.ErrNoRows is returned when nothing matched.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var account models.Account
	var role string
	if err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&role,
		&account.CreatedAt,
	); err != nil {
		return nil, err
	}
	account.Role = models.Role(role)
	return &account, nil
}
