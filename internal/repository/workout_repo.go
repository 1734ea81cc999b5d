package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

const workoutColumns = `id, profile_id, assigned_by, workout_name, target_reps, target_time,
	actual_reps, completed, log_date`

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	query := `
		INSERT INTO workouts (profile_id, assigned_by, workout_name, target_reps, target_time, completed, log_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		workout.ProfileID,
		workout.AssignedBy,
		workout.WorkoutName,
		workout.TargetReps,
		workout.TargetTime,
		workout.Completed,
		models.TruncateDay(workout.Date),
	).Scan(&workout.ID)
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (*models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1`
	return scanWorkout(r.db.QueryRow(ctx, query, id))
}

func (r *WorkoutRepository) ListByProfile(ctx context.Context, profileID int64, filter models.DateFilter) ([]models.Workout, error) {
	where, args := appendDateFilter([]string{"profile_id = $1"}, []any{profileID}, "log_date", filter)
	query := fmt.Sprintf(`
		SELECT %s
		FROM workouts
		WHERE %s
		ORDER BY log_date ASC, id ASC
	`, workoutColumns, strings.Join(where, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *WorkoutRepository) UpdateProgress(ctx context.Context, id int64, actualReps *int, completed bool) (*models.Workout, error) {
	query := `
		UPDATE workouts
		SET actual_reps = $2, completed = $3
		WHERE id = $1
		RETURNING ` + workoutColumns
	return scanWorkout(r.db.QueryRow(ctx, query, id, actualReps, completed))
}

func scanWorkout(row pgx.Row) (*models.Workout, error) {
	var workout models.Workout
	err := row.Scan(
		&workout.ID,
		&workout.ProfileID,
		&workout.AssignedBy,
		&workout.WorkoutName,
		&workout.TargetReps,
		&workout.TargetTime,
		&workout.ActualReps,
		&workout.Completed,
		&workout.Date,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}
