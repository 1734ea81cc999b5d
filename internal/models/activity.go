package models

import "time"

type Workout struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"-"`
	AssignedBy  *int64    `json:"assigned_by,omitempty"`
	WorkoutName string    `json:"workout_name"`
	TargetReps  *int      `json:"target_reps"`
	TargetTime  *string   `json:"target_time"`
	ActualReps  *int      `json:"actual_reps"`
	Completed   bool      `json:"completed"`
	Date        time.Time `json:"date"`
}

type Meal struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"-"`
	Protein     *float64  `json:"protein"`
	Carbs       *float64  `json:"carbs"`
	Fats        *float64  `json:"fats"`
	Calories    *float64  `json:"calories"`
	WaterIntake *float64  `json:"water_intake"`
	Date        time.Time `json:"date"`
}

type SleepMood struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"-"`
	SleepHours  *float64  `json:"sleep_hours"`
	Mood        *string   `json:"mood"`
	StressLevel *int      `json:"stress_level"`
	Date        time.Time `json:"date"`
}

type WorkoutPlan struct {
	ID          int64     `json:"id"`
	TrainerID   int64     `json:"trainer_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
