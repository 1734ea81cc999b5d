package services

import (
	"context"
	"fmt"
	"time"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
)

type trainerProfileSaver interface {
	Save(ctx context.Context, accountID int64, input repository.TrainerProfileInput) (*models.TrainerProfile, error)
}

type workoutCreator interface {
	Create(ctx context.Context, workout *models.Workout) error
}

type mealCreator interface {
	Create(ctx context.Context, meal *models.Meal) error
}

// TrainerService serves the TRAINER role's workspace.
type TrainerService struct {
	lookup          *ProfileLookup
	trainerProfiles trainerProfileSaver
	assignments     *AssignmentService
	workouts        workoutCreator
	meals           mealCreator
	now             func() time.Time
}

func NewTrainerService(
	lookup *ProfileLookup,
	trainerProfiles trainerProfileSaver,
	assignments *AssignmentService,
	workouts workoutCreator,
	meals mealCreator,
) *TrainerService {
	return &TrainerService{
		lookup:          lookup,
		trainerProfiles: trainerProfiles,
		assignments:     assignments,
		workouts:        workouts,
		meals:           meals,
		now:             time.Now,
	}
}

func (s *TrainerService) GetProfile(ctx context.Context, caller models.Caller) (*models.TrainerProfileView, error) {
	if err := requireRole(caller, models.RoleTrainer); err != nil {
		return nil, err
	}
	return s.lookup.TrainerProfileView(ctx, caller.AccountID)
}

// UpdateProfile upserts the caller's trainer profile.
func (s *TrainerService) UpdateProfile(ctx context.Context, caller models.Caller, input repository.TrainerProfileInput) (*models.TrainerProfileView, error) {
	if err := requireRole(caller, models.RoleTrainer); err != nil {
		return nil, err
	}
	if input.AvailableHoursPerDay != nil && (*input.AvailableHoursPerDay < 0 || *input.AvailableHoursPerDay > 24) {
		return nil, newError(ErrInvalidInput, "available_hours_per_day must be between 0 and 24")
	}
	if input.ExperienceYears != nil && *input.ExperienceYears < 0 {
		return nil, newError(ErrInvalidInput, "experience_years must not be negative")
	}

	account, err := s.lookup.AccountWithRole(ctx, caller.AccountID, models.RoleTrainer)
	if err != nil {
		return nil, err
	}
	profile, err := s.trainerProfiles.Save(ctx, caller.AccountID, input)
	if err != nil {
		return nil, fmt.Errorf("save trainer profile: %w", err)
	}
	view := models.NewTrainerProfileView(account, profile)
	return &view, nil
}

// AssignedUsers lists the profiles of every user assigned to the caller, one
// entry per user in order of first assignment.
func (s *TrainerService) AssignedUsers(ctx context.Context, caller models.Caller) ([]models.UserProfileView, error) {
	if err := requireRole(caller, models.RoleTrainer); err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ForTrainer(ctx, caller.AccountID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	seen := make(map[int64]struct{}, len(assignments))
	views := make([]models.UserProfileView, 0, len(assignments))
	for _, assignment := range assignments {
		if _, ok := seen[assignment.UserID]; ok {
			continue
		}
		seen[assignment.UserID] = struct{}{}

		view, err := s.lookup.UserProfileView(ctx, assignment.UserID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *TrainerService) AthleteProfile(ctx context.Context, caller models.Caller, userID int64) (*models.UserProfileView, error) {
	if err := requireRole(caller, models.RoleTrainer); err != nil {
		return nil, err
	}
	return s.lookup.UserProfileView(ctx, userID)
}

func (s *TrainerService) AssignWorkout(ctx context.Context, caller models.Caller, userID int64, input WorkoutInput) (*models.Workout, error) {
	if err := requireRole(caller, models.RoleTrainer); err != nil {
		return nil, err
	}
	_, profile, err := s.lookup.UserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	trainerID := caller.AccountID
	workout, err := input.build(profile.ID, &trainerID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.workouts.Create(ctx, workout); err != nil {
		return nil, fmt.Errorf("assign workout: %w", err)
	}
	return workout, nil
}

func (s *TrainerService) AssignMeal(ctx context.Context, caller models.Caller, userID int64, input MealInput) (*models.Meal, error) {
	if err := requireRole(caller, models.RoleTrainer); err != nil {
		return nil, err
	}
	_, profile, err := s.lookup.UserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	meal, err := input.build(profile.ID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("assign meal: %w", err)
	}
	return meal, nil
}
