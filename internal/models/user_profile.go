package models

import "time"

type UserProfile struct {
	ID           int64     `json:"id"`
	AccountID    int64     `json:"account_id"`
	FullName     *string   `json:"full_name"`
	Age          *int      `json:"age"`
	Gender       *string   `json:"gender"`
	Height       *float64  `json:"height"`
	Weight       *float64  `json:"weight"`
	FitnessGoal  *string   `json:"fitness_goal"`
	MedicalNotes *string   `json:"medical_notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserProfileView joins a profile with the owning account's public identity.
type UserProfileView struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	FullName     *string  `json:"full_name"`
	Age          *int     `json:"age"`
	Gender       *string  `json:"gender"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	FitnessGoal  *string  `json:"fitness_goal"`
	MedicalNotes *string  `json:"medical_notes"`
}

func NewUserProfileView(account *Account, profile *UserProfile) UserProfileView {
	return UserProfileView{
		ID:           account.ID,
		Username:     account.Username,
		FullName:     profile.FullName,
		Age:          profile.Age,
		Gender:       profile.Gender,
		Height:       profile.Height,
		Weight:       profile.Weight,
		FitnessGoal:  profile.FitnessGoal,
		MedicalNotes: profile.MedicalNotes,
	}
}
