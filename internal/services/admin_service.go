package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/jackc/pgx/v5"
)

type accountAdminStore interface {
	List(ctx context.Context, filter repository.AccountListFilter) ([]models.Account, int, error)
	Delete(ctx context.Context, id int64) error
}

type AdminService struct {
	accounts    accountAdminStore
	assignments *AssignmentService
}

func NewAdminService(accounts accountAdminStore, assignments *AssignmentService) *AdminService {
	return &AdminService{
		accounts:    accounts,
		assignments: assignments,
	}
}

// ListAccounts returns one page of accounts and the total matching filter.
func (s *AdminService) ListAccounts(ctx context.Context, caller models.Caller, filter repository.AccountListFilter) ([]models.PublicAccount, int, error) {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return nil, 0, err
	}
	accounts, total, err := s.accounts.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	public := make([]models.PublicAccount, 0, len(accounts))
	for _, account := range accounts {
		public = append(public, account.Public())
	}
	return public, total, nil
}

func (s *AdminService) DeleteAccount(ctx context.Context, caller models.Caller, accountID int64) error {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return err
	}
	if caller.AccountID == accountID {
		return newError(ErrInvalidInput, "you cannot delete your own account")
	}
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return newError(ErrNotFound, "account with id %d not found", accountID)
		}
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (s *AdminService) Assign(ctx context.Context, caller models.Caller, trainerID, userID int64) (*models.Assignment, error) {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.assignments.Assign(ctx, trainerID, userID)
}

func (s *AdminService) ListAssignments(ctx context.Context, caller models.Caller) ([]models.Assignment, error) {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.assignments.All(ctx)
}
