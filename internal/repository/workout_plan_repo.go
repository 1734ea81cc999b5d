package repository

import (
	"context"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

type WorkoutPlanRepository struct {
	db DBTX
}

func NewWorkoutPlanRepository(db DBTX) *WorkoutPlanRepository {
	return &WorkoutPlanRepository{db: db}
}

func (r *WorkoutPlanRepository) Create(ctx context.Context, plan *models.WorkoutPlan) error {
	query := `
		INSERT INTO workout_plans (trainer_id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		plan.TrainerID,
		plan.Name,
		plan.Description,
		models.TruncateDay(plan.CreatedAt),
	).Scan(&plan.ID)
}

func (r *WorkoutPlanRepository) ListAll(ctx context.Context) ([]models.WorkoutPlan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, trainer_id, name, description, created_at
		FROM workout_plans
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.WorkoutPlan, error) {
		var plan models.WorkoutPlan
		err := row.Scan(&plan.ID, &plan.TrainerID, &plan.Name, &plan.Description, &plan.CreatedAt)
		return plan, err
	})
}
