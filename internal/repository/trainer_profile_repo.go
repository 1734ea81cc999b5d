package repository

import (
	"context"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

const trainerProfileColumns = `id, account_id, specialization, available_hours_per_day,
	experience_years, created_at, updated_at`

type TrainerProfileRepository struct {
	db DBTX
}

func NewTrainerProfileRepository(db DBTX) *TrainerProfileRepository {
	return &TrainerProfileRepository{db: db}
}

func (r *TrainerProfileRepository) EnsureForAccount(ctx context.Context, accountID int64) error {
	query := `INSERT INTO trainer_profiles (account_id) VALUES ($1) ON CONFLICT (account_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, accountID)
	return err
}

func (r *TrainerProfileRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.TrainerProfile, error) {
	query := `SELECT ` + trainerProfileColumns + ` FROM trainer_profiles WHERE account_id = $1`
	return scanTrainerProfile(r.db.QueryRow(ctx, query, accountID))
}

// Save inserts or replaces the profile owned by accountID.
func (r *TrainerProfileRepository) Save(ctx context.Context, accountID int64, input TrainerProfileInput) (*models.TrainerProfile, error) {
	query := `
		INSERT INTO trainer_profiles (account_id, specialization, available_hours_per_day, experience_years)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id) DO UPDATE
		SET specialization = EXCLUDED.specialization,
			available_hours_per_day = EXCLUDED.available_hours_per_day,
			experience_years = EXCLUDED.experience_years,
			updated_at = NOW()
		RETURNING ` + trainerProfileColumns
	return scanTrainerProfile(r.db.QueryRow(ctx, query,
		accountID,
		input.Specialization,
		input.AvailableHoursPerDay,
		input.ExperienceYears,
	))
}

func scanTrainerProfile(row pgx.Row) (*models.TrainerProfile, error) {
	var profile models.TrainerProfile
	err := row.Scan(
		&profile.ID,
		&profile.AccountID,
		&profile.Specialization,
		&profile.AvailableHoursPerDay,
		&profile.ExperienceYears,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type TrainerProfileInput struct {
	Specialization       *string
	AvailableHoursPerDay *int
	ExperienceYears      *int
}
