package handlers

import "github.com/TriCode435/Wellnest-Smart-Health/internal/services"

type workoutRequest struct {
	WorkoutName string  `json:"workout_name"`
	TargetReps  *int    `json:"target_reps"`
	TargetTime  *string `json:"target_time"`
	Date        string  `json:"date"`
}

func (r workoutRequest) input() (services.WorkoutInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return services.WorkoutInput{}, err
	}
	return services.WorkoutInput{
		WorkoutName: r.WorkoutName,
		TargetReps:  r.TargetReps,
		TargetTime:  r.TargetTime,
		Date:        date,
	}, nil
}

type mealRequest struct {
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fats        *float64 `json:"fats"`
	Calories    *float64 `json:"calories"`
	WaterIntake *float64 `json:"water_intake"`
	Date        string   `json:"date"`
}

func (r mealRequest) input() (services.MealInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return services.MealInput{}, err
	}
	return services.MealInput{
		Protein:     r.Protein,
		Carbs:       r.Carbs,
		Fats:        r.Fats,
		Calories:    r.Calories,
		WaterIntake: r.WaterIntake,
		Date:        date,
	}, nil
}

type sleepMoodRequest struct {
	SleepHours  *float64 `json:"sleep_hours"`
	Mood        *string  `json:"mood"`
	StressLevel *int     `json:"stress_level"`
	Date        string   `json:"date"`
}

func (r sleepMoodRequest) input() (services.SleepMoodInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return services.SleepMoodInput{}, err
	}
	return services.SleepMoodInput{
		SleepHours:  r.SleepHours,
		Mood:        r.Mood,
		StressLevel: r.StressLevel,
		Date:        date,
	}, nil
}
