package repository

import (
	"context"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/jackc/pgx/v5"
)

const userProfileColumns = `id, account_id, full_name, age, gender, height, weight,
	fitness_goal, medical_notes, created_at, updated_at`

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// EnsureForAccount creates an empty profile unless one already exists.
func (r *UserProfileRepository) EnsureForAccount(ctx context.Context, accountID int64) error {
	query := `INSERT INTO user_profiles (account_id) VALUES ($1) ON CONFLICT (account_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, accountID)
	return err
}

func (r *UserProfileRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.UserProfile, error) {
	query := `SELECT ` + userProfileColumns + ` FROM user_profiles WHERE account_id = $1`
	return scanUserProfile(r.db.QueryRow(ctx, query, accountID))
}

// Update overwrites every editable field. pgx.ErrNoRows means the account
// has no profile.
func (r *UserProfileRepository) Update(ctx context.Context, accountID int64, input UserProfileInput) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET full_name = $1,
			age = $2,
			gender = $3,
			height = $4,
			weight = $5,
			fitness_goal = $6,
			medical_notes = $7,
			updated_at = NOW()
		WHERE account_id = $8
		RETURNING ` + userProfileColumns
	return scanUserProfile(r.db.QueryRow(ctx, query,
		input.FullName,
		input.Age,
		input.Gender,
		input.Height,
		input.Weight,
		input.FitnessGoal,
		input.MedicalNotes,
		accountID,
	))
}

// Save inserts or replaces the profile owned by accountID.
func (r *UserProfileRepository) Save(ctx context.Context, accountID int64, input UserProfileInput) (*models.UserProfile, error) {
	query := `
		INSERT INTO user_profiles (account_id, full_name, age, gender, height, weight, fitness_goal, medical_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			fitness_goal = EXCLUDED.fitness_goal,
			medical_notes = EXCLUDED.medical_notes,
			updated_at = NOW()
		RETURNING ` + userProfileColumns
	return scanUserProfile(r.db.QueryRow(ctx, query,
		accountID,
		input.FullName,
		input.Age,
		input.Gender,
		input.Height,
		input.Weight,
		input.FitnessGoal,
		input.MedicalNotes,
	))
}

func scanUserProfile(row pgx.Row) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := row.Scan(
		&profile.ID,
		&profile.AccountID,
		&profile.FullName,
		&profile.Age,
		&profile.Gender,
		&profile.Height,
		&profile.Weight,
		&profile.FitnessGoal,
		&profile.MedicalNotes,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type UserProfileInput struct {
	FullName     *string
	Age          *int
	Gender       *string
	Height       *float64
	Weight       *float64
	FitnessGoal  *string
	MedicalNotes *string
}
