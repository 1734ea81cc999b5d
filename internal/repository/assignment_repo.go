package repository

import (
	"context"
	"time"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

type AssignmentRepository struct {
	db DBTX
}

func NewAssignmentRepository(db DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, trainerID, userID int64, assignedDate time.Time) (*models.Assignment, error) {
	query := `
		INSERT INTO assignments (trainer_id, user_id, assigned_date)
		VALUES ($1, $2, $3)
		RETURNING id, trainer_id, user_id, assigned_date
	`
	var assignment models.Assignment
	err := r.db.QueryRow(ctx, query, trainerID, userID, models.TruncateDay(assignedDate)).Scan(
		&assignment.ID,
		&assignment.TrainerID,
		&assignment.UserID,
		&assignment.AssignedDate,
	)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]models.Assignment, error) {
	return r.list(ctx, `WHERE trainer_id = $1`, trainerID)
}

// ListByUser returns assignments oldest first, so the first element is the
// user's current trainer.
func (r *AssignmentRepository) ListByUser(ctx context.Context, userID int64) ([]models.Assignment, error) {
	return r.list(ctx, `WHERE user_id = $1`, userID)
}

func (r *AssignmentRepository) ListAll(ctx context.Context) ([]models.Assignment, error) {
	return r.list(ctx, ``)
}

func (r *AssignmentRepository) list(ctx context.Context, where string, args ...any) ([]models.Assignment, error) {
	query := `
		SELECT id, trainer_id, user_id, assigned_date
		FROM assignments
		` + where + `
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Assignment, error) {
		var assignment models.Assignment
		err := row.Scan(&assignment.ID, &assignment.TrainerID, &assignment.UserID, &assignment.AssignedDate)
		return assignment, err
	})
}
