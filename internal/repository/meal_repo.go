package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

type MealRepository struct {
	db DBTX
}

func NewMealRepository(db DBTX) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) Create(ctx context.Context, meal *models.Meal) error {
	query := `
		INSERT INTO meals (profile_id, protein, carbs, fats, calories, water_intake, log_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		meal.ProfileID,
		meal.Protein,
		meal.Carbs,
		meal.Fats,
		meal.Calories,
		meal.WaterIntake,
		models.TruncateDay(meal.Date),
	).Scan(&meal.ID)
}

func (r *MealRepository) ListByProfile(ctx context.Context, profileID int64, filter models.DateFilter) ([]models.Meal, error) {
	where, args := appendDateFilter([]string{"profile_id = $1"}, []any{profileID}, "log_date", filter)
	query := fmt.Sprintf(`
		SELECT id, profile_id, protein, carbs, fats, calories, water_intake, log_date
		FROM meals
		WHERE %s
		ORDER BY log_date ASC, id ASC
	`, strings.Join(where, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Meal, error) {
		var meal models.Meal
		err := row.Scan(
			&meal.ID,
			&meal.ProfileID,
			&meal.Protein,
			&meal.Carbs,
			&meal.Fats,
			&meal.Calories,
			&meal.WaterIntake,
			&meal.Date,
		)
		return meal, err
	})
}
