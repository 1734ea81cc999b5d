package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/jackc/pgx/v5"
)

type userProfileUpdater interface {
	Update(ctx context.Context, accountID int64, input repository.UserProfileInput) (*models.UserProfile, error)
}

// UserService serves the USER role's own profile, logs and trainer.
type UserService struct {
	lookup       *ProfileLookup
	userProfiles userProfileUpdater
	workouts     workoutStore
	meals        mealStore
	sleepMood    sleepMoodStore
	assignments  *AssignmentService
	now          func() time.Time
}

func NewUserService(
	lookup *ProfileLookup,
	userProfiles userProfileUpdater,
	workouts workoutStore,
	meals mealStore,
	sleepMood sleepMoodStore,
	assignments *AssignmentService,
) *UserService {
	return &UserService{
		lookup:       lookup,
		userProfiles: userProfiles,
		workouts:     workouts,
		meals:        meals,
		sleepMood:    sleepMood,
		assignments:  assignments,
		now:          time.Now,
	}
}

func (s *UserService) GetProfile(ctx context.Context, caller models.Caller) (*models.UserProfileView, error) {
	if err := requireRole(caller, models.RoleUser); err != nil {
		return nil, err
	}
	return s.lookup.UserProfileView(ctx, caller.AccountID)
}

func (s *UserService) UpdateProfile(ctx context.Context, caller models.Caller, input repository.UserProfileInput) (*models.UserProfileView, error) {
	if err := requireRole(caller, models.RoleUser); err != nil {
		return nil, err
	}
	if err := validateUserProfileInput(input); err != nil {
		return nil, err
	}
	account, err := s.lookup.Account(ctx, caller.AccountID)
	if err != nil {
		return nil, err
	}

	profile, err := s.userProfiles.Update(ctx, caller.AccountID, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newError(ErrProfileMissing, "profile not found for account %d", caller.AccountID)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	view := models.NewUserProfileView(account, profile)
	return &view, nil
}

func (s *UserService) Workouts(ctx context.Context, caller models.Caller, filter models.DateFilter) ([]models.Workout, error) {
	profile, err := s.callerProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.workouts.ListByProfile(ctx, profile.ID, filter)
}

// LogWorkoutProgress records reps and completion on a workout owned by the
// caller's profile.
func (s *UserService) LogWorkoutProgress(ctx context.Context, caller models.Caller, workoutID int64, actualReps *int, completed bool) (*models.Workout, error) {
	profile, err := s.callerProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	if actualReps != nil && *actualReps < 0 {
		return nil, newError(ErrInvalidInput, "actual_reps must not be negative")
	}

	workout, err := s.workouts.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newError(ErrNotFound, "workout with id %d not found", workoutID)
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	if workout.ProfileID != profile.ID {
		return nil, newError(ErrForbidden, "workout %d does not belong to you", workoutID)
	}

	return s.workouts.UpdateProgress(ctx, workoutID, actualReps, completed)
}

func (s *UserService) Meals(ctx context.Context, caller models.Caller, filter models.DateFilter) ([]models.Meal, error) {
	profile, err := s.callerProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.meals.ListByProfile(ctx, profile.ID, filter)
}

func (s *UserService) LogMeal(ctx context.Context, caller models.Caller, input MealInput) (*models.Meal, error) {
	profile, err := s.callerProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	meal, err := input.build(profile.ID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("log meal: %w", err)
	}
	return meal, nil
}

func (s *UserService) SleepMood(ctx context.Context, caller models.Caller, filter models.DateFilter) ([]models.SleepMood, error) {
	profile, err := s.callerProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.sleepMood.ListByProfile(ctx, profile.ID, filter)
}

func (s *UserService) LogSleepMood(ctx context.Context, caller models.Caller, input SleepMoodInput) (*models.SleepMood, error) {
	profile, err := s.callerProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	entry, err := input.build(profile.ID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.sleepMood.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("log sleep and mood: %w", err)
	}
	return entry, nil
}

// AssignedTrainer returns nil without error when the caller has no trainer.
func (s *UserService) AssignedTrainer(ctx context.Context, caller models.Caller) (*models.TrainerProfileView, error) {
	if err := requireRole(caller, models.RoleUser); err != nil {
		return nil, err
	}
	trainerID, ok, err := s.assignments.CurrentTrainerID(ctx, caller.AccountID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return s.lookup.TrainerProfileView(ctx, trainerID)
}

func (s *UserService) callerProfile(ctx context.Context, caller models.Caller) (*models.UserProfile, error) {
	if err := requireRole(caller, models.RoleUser); err != nil {
		return nil, err
	}
	_, profile, err := s.lookup.UserProfile(ctx, caller.AccountID)
	return profile, err
}

func validateUserProfileInput(input repository.UserProfileInput) error {
	if input.Age != nil && (*input.Age <= 0 || *input.Age > 130) {
		return newError(ErrInvalidInput, "age must be between 1 and 130")
	}
	if input.Height != nil && *input.Height <= 0 {
		return newError(ErrInvalidInput, "height must be greater than 0")
	}
	if input.Weight != nil && *input.Weight <= 0 {
		return newError(ErrInvalidInput, "weight must be greater than 0")
	}
	return nil
}
