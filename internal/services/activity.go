package services

import (
	"context"
	"strings"
	"time"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
)

type workoutStore interface {
	Create(ctx context.Context, workout *models.Workout) error
	GetByID(ctx context.Context, id int64) (*models.Workout, error)
	ListByProfile(ctx context.Context, profileID int64, filter models.DateFilter) ([]models.Workout, error)
	UpdateProgress(ctx context.Context, id int64, actualReps *int, completed bool) (*models.Workout, error)
}

type mealStore interface {
	Create(ctx context.Context, meal *models.Meal) error
	ListByProfile(ctx context.Context, profileID int64, filter models.DateFilter) ([]models.Meal, error)
}

type sleepMoodStore interface {
	Create(ctx context.Context, entry *models.SleepMood) error
	ListByProfile(ctx context.Context, profileID int64, filter models.DateFilter) ([]models.SleepMood, error)
}

type WorkoutInput struct {
	WorkoutName string
	TargetReps  *int
	TargetTime  *string
	Date        *time.Time
}

type MealInput struct {
	Protein     *float64
	Carbs       *float64
	Fats        *float64
	Calories    *float64
	WaterIntake *float64
	Date        *time.Time
}

type SleepMoodInput struct {
	SleepHours  *float64
	Mood        *string
	StressLevel *int
	Date        *time.Time
}

func (in WorkoutInput) build(profileID int64, assignedBy *int64, today time.Time) (*models.Workout, error) {
	name := strings.TrimSpace(in.WorkoutName)
	if name == "" {
		return nil, newError(ErrInvalidInput, "workout_name is required")
	}
	if in.TargetReps != nil && *in.TargetReps < 0 {
		return nil, newError(ErrInvalidInput, "target_reps must not be negative")
	}
	return &models.Workout{
		ProfileID:   profileID,
		AssignedBy:  assignedBy,
		WorkoutName: name,
		TargetReps:  in.TargetReps,
		TargetTime:  in.TargetTime,
		Completed:   false,
		Date:        dateOrToday(in.Date, today),
	}, nil
}

func (in MealInput) build(profileID int64, today time.Time) (*models.Meal, error) {
	amounts := []struct {
		field string
		value *float64
	}{
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fats", in.Fats},
		{"calories", in.Calories},
		{"water_intake", in.WaterIntake},
	}
	for _, amount := range amounts {
		if amount.value != nil && *amount.value < 0 {
			return nil, newError(ErrInvalidInput, "%s must not be negative", amount.field)
		}
	}
	return &models.Meal{
		ProfileID:   profileID,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fats:        in.Fats,
		Calories:    in.Calories,
		WaterIntake: in.WaterIntake,
		Date:        dateOrToday(in.Date, today),
	}, nil
}

func (in SleepMoodInput) build(profileID int64, today time.Time) (*models.SleepMood, error) {
	if in.SleepHours != nil && (*in.SleepHours < 0 || *in.SleepHours > 24) {
		return nil, newError(ErrInvalidInput, "sleep_hours must be between 0 and 24")
	}
	if in.StressLevel != nil && (*in.StressLevel < 1 || *in.StressLevel > 10) {
		return nil, newError(ErrInvalidInput, "stress_level must be between 1 and 10")
	}
	var mood *string
	if in.Mood != nil {
		trimmed := strings.TrimSpace(*in.Mood)
		mood = &trimmed
	}
	return &models.SleepMood{
		ProfileID:   profileID,
		SleepHours:  in.SleepHours,
		Mood:        mood,
		StressLevel: in.StressLevel,
		Date:        dateOrToday(in.Date, today),
	}, nil
}

func dateOrToday(date *time.Time, today time.Time) time.Time {
	if date != nil {
		return models.TruncateDay(*date)
	}
	return models.TruncateDay(today)
}
