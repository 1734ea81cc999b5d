package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

type accountReader interface {
	GetByID(ctx context.Context, id int64) (*models.Account, error)
}

type userProfileReader interface {
	GetByAccountID(ctx context.Context, accountID int64) (*models.UserProfile, error)
}

type trainerProfileReader interface {
	GetByAccountID(ctx context.Context, accountID int64) (*models.TrainerProfile, error)
}

// ProfileLookup resolves accounts and their role profiles. Reads never
// create missing profiles.
type ProfileLookup struct {
	accounts        accountReader
	userProfiles    userProfileReader
	trainerProfiles trainerProfileReader
}

func NewProfileLookup(accounts accountReader, userProfiles userProfileReader, trainerProfiles trainerProfileReader) *ProfileLookup {
	return &ProfileLookup{
		accounts:        accounts,
		userProfiles:    userProfiles,
		trainerProfiles: trainerProfiles,
	}
}

func (l *ProfileLookup) Account(ctx context.Context, accountID int64) (*models.Account, error) {
	account, err := l.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newError(ErrNotFound, "account with id %d not found", accountID)
		}
		return nil, fmt.Errorf("get account %d: %w", accountID, err)
	}
	return account, nil
}

// AccountWithRole resolves accountID and checks that it holds role.
func (l *ProfileLookup) AccountWithRole(ctx context.Context, accountID int64, role models.Role) (*models.Account, error) {
	account, err := l.Account(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Role != role {
		return nil, newError(ErrInvalidRole, "account with id %d is not a %s. Current role: %s", accountID, role, account.Role)
	}
	return account, nil
}

func (l *ProfileLookup) UserProfile(ctx context.Context, accountID int64) (*models.Account, *models.UserProfile, error) {
	account, err := l.AccountWithRole(ctx, accountID, models.RoleUser)
	if err != nil {
		return nil, nil, err
	}
	profile, err := l.userProfiles.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, newError(ErrProfileMissing, "profile not found for account %d", accountID)
		}
		return nil, nil, fmt.Errorf("get user profile %d: %w", accountID, err)
	}
	return account, profile, nil
}

func (l *ProfileLookup) UserProfileView(ctx context.Context, accountID int64) (*models.UserProfileView, error) {
	account, profile, err := l.UserProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	view := models.NewUserProfileView(account, profile)
	return &view, nil
}

func (l *ProfileLookup) TrainerProfileView(ctx context.Context, accountID int64) (*models.TrainerProfileView, error) {
	account, err := l.AccountWithRole(ctx, accountID, models.RoleTrainer)
	if err != nil {
		return nil, err
	}
	profile, err := l.trainerProfiles.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newError(ErrProfileMissing, "trainer profile not found for account %d", accountID)
		}
		return nil, fmt.Errorf("get trainer profile %d: %w", accountID, err)
	}
	view := models.NewTrainerProfileView(account, profile)
	return &view, nil
}

func requireRole(caller models.Caller, role models.Role) error {
	if caller.Role != role {
		return newError(ErrForbidden, "operation requires role %s", role)
	}
	return nil
}
