package models

import "time"

type TrainerProfile struct {
	ID                   int64     `json:"id"`
	AccountID            int64     `json:"account_id"`
	Specialization       *string   `json:"specialization"`
	AvailableHoursPerDay *int      `json:"available_hours_per_day"`
	ExperienceYears      *int      `json:"experience_years"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type TrainerProfileView struct {
	ID                   int64   `json:"id"`
	Username             string  `json:"username"`
	Specialization       *string `json:"specialization"`
	AvailableHoursPerDay *int    `json:"available_hours_per_day"`
	ExperienceYears      *int    `json:"experience_years"`
}

func NewTrainerProfileView(account *Account, profile *TrainerProfile) TrainerProfileView {
	return TrainerProfileView{
		ID:                   account.ID,
		Username:             account.Username,
		Specialization:       profile.Specialization,
		AvailableHoursPerDay: profile.AvailableHoursPerDay,
		ExperienceYears:      profile.ExperienceYears,
	}
}
