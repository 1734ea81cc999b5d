package models

import "time"

// Assignment records that a TRAINER account supervises a USER account.
// Pairs are not unique; every call to assign appends a new row.
type Assignment struct {
	ID           int64     `json:"id"`
	TrainerID    int64     `json:"trainer_id"`
	UserID       int64     `json:"user_id"`
	AssignedDate time.Time `json:"assigned_date"`
}
