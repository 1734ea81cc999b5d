package services

import (
	"context"
	"fmt"
	"time"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
)

type assignmentStore interface {
	Create(ctx context.Context, trainerID, userID int64, assignedDate time.Time) (*models.Assignment, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]models.Assignment, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Assignment, error)
	ListAll(ctx context.Context) ([]models.Assignment, error)
}

// AssignmentService links TRAINER accounts to USER accounts. Links are
// append-only: assigning the same pair twice stores two rows, and a user's
// current trainer is the one from the oldest row.
type AssignmentService struct {
	lookup      *ProfileLookup
	assignments assignmentStore
	now         func() time.Time
}

func NewAssignmentService(lookup *ProfileLookup, assignments assignmentStore) *AssignmentService {
	return &AssignmentService{
		lookup:      lookup,
		assignments: assignments,
		now:         time.Now,
	}
}

func (s *AssignmentService) Assign(ctx context.Context, trainerID, userID int64) (*models.Assignment, error) {
	if _, err := s.lookup.AccountWithRole(ctx, trainerID, models.RoleTrainer); err != nil {
		return nil, err
	}
	if _, err := s.lookup.AccountWithRole(ctx, userID, models.RoleUser); err != nil {
		return nil, err
	}

	assignment, err := s.assignments.Create(ctx, trainerID, userID, models.TruncateDay(s.now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return assignment, nil
}

func (s *AssignmentService) ForTrainer(ctx context.Context, trainerID int64) ([]models.Assignment, error) {
	return s.assignments.ListByTrainer(ctx, trainerID)
}

func (s *AssignmentService) ForUser(ctx context.Context, userID int64) ([]models.Assignment, error) {
	return s.assignments.ListByUser(ctx, userID)
}

func (s *AssignmentService) All(ctx context.Context) ([]models.Assignment, error) {
	return s.assignments.ListAll(ctx)
}

// CurrentTrainerID returns the trainer of the user's first assignment.
func (s *AssignmentService) CurrentTrainerID(ctx context.Context, userID int64) (int64, bool, error) {
	assignments, err := s.assignments.ListByUser(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	if len(assignments) == 0 {
		return 0, false, nil
	}
	return assignments[0].TrainerID, true, nil
}
