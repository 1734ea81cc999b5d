package repository

import (
	"context"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/database"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistrationQueries are the writes that make up one registration.
type RegistrationQueries interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	EnsureUserProfile(ctx context.Context, accountID int64) error
	EnsureTrainerProfile(ctx context.Context, accountID int64) error
}

type RegistrationRepository struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

// WithinTx runs fn against repositories bound to a single transaction.
func (r *RegistrationRepository) WithinTx(ctx context.Context, fn func(q RegistrationQueries) error) error {
	return database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&registrationTx{
			accounts:        NewAccountRepository(tx),
			userProfiles:    NewUserProfileRepository(tx),
			trainerProfiles: NewTrainerProfileRepository(tx),
		})
	})
}

type registrationTx struct {
	accounts        *AccountRepository
	userProfiles    *UserProfileRepository
	trainerProfiles *TrainerProfileRepository
}

func (t *registrationTx) CreateAccount(ctx context.Context, account *models.Account) error {
	return t.accounts.CreateAccount(ctx, account)
}

func (t *registrationTx) EnsureUserProfile(ctx context.Context, accountID int64) error {
	return t.userProfiles.EnsureForAccount(ctx, accountID)
}

func (t *registrationTx) EnsureTrainerProfile(ctx context.Context, accountID int64) error {
	return t.trainerProfiles.EnsureForAccount(ctx, accountID)
}
