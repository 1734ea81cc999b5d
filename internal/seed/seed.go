package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
)

type accountCounter interface {
	Count(ctx context.Context) (int64, error)
}

type registrar interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.PublicAccount, error)
}

var defaultRoles = []models.Role{models.RoleAdmin, models.RoleTrainer, models.RoleUser}

// DefaultAccounts registers one account per role on an empty database.
// passwords is keyed by role name. Roles without a password, or whose password
// registration rejects, are skipped with a warning.
func DefaultAccounts(ctx context.Context, accounts accountCounter, registrations registrar, passwords map[string]string) error {
	count, err := accounts.Count(ctx)
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeded := 0
	for _, role := range defaultRoles {
		password := passwords[string(role)]
		if password == "" {
			log.Printf("Skipping default %s account: no password configured", role)
			continue
		}

		username := strings.ToLower(string(role))
		if _, err := registrations.Register(ctx, services.RegisterInput{
			Username: username,
			Email:    username + "@wellnest.com",
			Password: password,
			Role:     role,
		}); err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				log.Printf("Skipping default %s account: %v", role, err)
				continue
			}
			return fmt.Errorf("seed %s account: %w", role, err)
		}
		seeded++
	}

	log.Printf("Seeded %d default accounts", seeded)
	return nil
}
