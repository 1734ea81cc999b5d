package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

type SleepMoodRepository struct {
	db DBTX
}

func NewSleepMoodRepository(db DBTX) *SleepMoodRepository {
	return &SleepMoodRepository{db: db}
}

func (r *SleepMoodRepository) Create(ctx context.Context, entry *models.SleepMood) error {
	query := `
		INSERT INTO sleep_mood (profile_id, sleep_hours, mood, stress_level, log_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		entry.ProfileID,
		entry.SleepHours,
		entry.Mood,
		entry.StressLevel,
		models.TruncateDay(entry.Date),
	).Scan(&entry.ID)
}

func (r *SleepMoodRepository) ListByProfile(ctx context.Context, profileID int64, filter models.DateFilter) ([]models.SleepMood, error) {
	where, args := appendDateFilter([]string{"profile_id = $1"}, []any{profileID}, "log_date", filter)
	query := fmt.Sprintf(`
		SELECT id, profile_id, sleep_hours, mood, stress_level, log_date
		FROM sleep_mood
		WHERE %s
		ORDER BY log_date ASC, id ASC
	`, strings.Join(where, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SleepMood, error) {
		var entry models.SleepMood
		err := row.Scan(
			&entry.ID,
			&entry.ProfileID,
			&entry.SleepHours,
			&entry.Mood,
			&entry.StressLevel,
			&entry.Date,
		)
		return entry, err
	})
}
