package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
)

const maxPlanDescriptionLength = 1000

type workoutPlanStore interface {
	Create(ctx context.Context, plan *models.WorkoutPlan) error
	ListAll(ctx context.Context) ([]models.WorkoutPlan, error)
}

type WorkoutPlanService struct {
	plans workoutPlanStore
	now   func() time.Time
}

func NewWorkoutPlanService(plans workoutPlanStore) *WorkoutPlanService {
	return &WorkoutPlanService{plans: plans, now: time.Now}
}

// List is open to every role but still needs a verified caller.
func (s *WorkoutPlanService) List(ctx context.Context, caller models.Caller) ([]models.WorkoutPlan, error) {
	if !caller.Role.Valid() {
		return nil, newError(ErrForbidden, "operation requires an authenticated account")
	}
	return s.plans.ListAll(ctx)
}

func (s *WorkoutPlanService) Create(ctx context.Context, caller models.Caller, name string, description *string) (*models.WorkoutPlan, error) {
	if err := requireRole(caller, models.RoleTrainer); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newError(ErrInvalidInput, "name is required")
	}
	if description != nil && utf8.RuneCountInString(*description) > maxPlanDescriptionLength {
		return nil, newError(ErrInvalidInput, "description must be at most %d characters", maxPlanDescriptionLength)
	}

	plan := &models.WorkoutPlan{
		TrainerID:   caller.AccountID,
		Name:        name,
		Description: description,
		CreatedAt:   models.TruncateDay(s.now().UTC()),
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create workout plan: %w", err)
	}
	return plan, nil
}
