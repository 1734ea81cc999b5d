package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/jackc/pgx/v5"
)

const minPasswordLength = 6

// CredentialHasher is a one-way salted password hash.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer issues session credentials scoped to one account and role.
type TokenIssuer interface {
	Issue(accountID int64, username, role string) (string, error)
}

type accountIdentityReader interface {
	GetByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.Account, error)
}

type registrationStore interface {
	WithinTx(ctx context.Context, fn func(q repository.RegistrationQueries) error) error
}

type AuthService struct {
	accounts      accountIdentityReader
	registrations registrationStore
	hasher        CredentialHasher
	tokens        TokenIssuer
}

func NewAuthService(
	accounts accountIdentityReader,
	registrations registrationStore,
	hasher CredentialHasher,
	tokens TokenIssuer,
) *AuthService {
	return &AuthService{
		accounts:      accounts,
		registrations: registrations,
		hasher:        hasher,
		tokens:        tokens,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     models.Role
}

type LoginInput struct {
	Username string
	Password string
	Role     models.Role
}

type LoginResult struct {
	Token   string               `json:"token"`
	Account models.PublicAccount `json:"account"`
}

// Register creates an account and the empty profile its role requires in a
// single transaction. The same username may be registered once per role.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.PublicAccount, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, newError(ErrInvalidInput, "username is required")
	}
	if !input.Role.Valid() {
		return nil, newError(ErrInvalidInput, "role must be one of USER, TRAINER, ADMIN")
	}
	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(input.Email))
	if err != nil {
		return nil, newError(ErrInvalidInput, "invalid email format")
	}
	if len(input.Password) < minPasswordLength {
		return nil, newError(ErrInvalidInput, "password must be at least %d characters", minPasswordLength)
	}

	if _, err := s.accounts.GetByUsernameAndRole(ctx, username, input.Role); err == nil {
		return nil, duplicateIdentity(username, input.Role)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		Username:     username,
		Email:        strings.ToLower(parsedEmail.Address),
		PasswordHash: hash,
		Role:         input.Role,
	}
	err = s.registrations.WithinTx(ctx, func(q repository.RegistrationQueries) error {
		if err := q.CreateAccount(ctx, account); err != nil {
			return err
		}
		switch account.Role {
		case models.RoleUser:
			return q.EnsureUserProfile(ctx, account.ID)
		case models.RoleTrainer:
			return q.EnsureTrainerProfile(ctx, account.ID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, duplicateIdentity(username, input.Role)
		}
		return nil, fmt.Errorf("register account: %w", err)
	}

	public := account.Public()
	return &public, nil
}

// Login checks the credential for (username, role). A missing account and a
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	invalid := newError(ErrInvalidCredentials, "invalid credentials or role")
	if !input.Role.Valid() {
		return nil, invalid
	}

	account, err := s.accounts.GetByUsernameAndRole(ctx, strings.TrimSpace(input.Username), input.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invalid
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if !s.hasher.Verify(input.Password, account.PasswordHash) {
		return nil, invalid
	}

	token, err := s.tokens.Issue(account.ID, account.Username, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token: token,
		Account: models.PublicAccount{
			ID:       account.ID,
			Username: account.Username,
			Role:     account.Role,
		},
	}, nil
}

func duplicateIdentity(username string, role models.Role) error {
	return newError(ErrDuplicateIdentity, "username %q is already taken for role %s", username, role)
}
