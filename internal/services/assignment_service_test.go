package services

import (
	"context"
	"strings"
	"testing"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
)

func TestAssignIsVisibleFromBothSides(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	trainerID := f.register("coach", models.RoleTrainer)
	userID := f.register("athlete", models.RoleUser)

	assignment, err := f.assignments.Assign(ctx, trainerID, userID)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if !assignment.AssignedDate.Equal(day("2024-01-05")) {
		t.Fatalf("expected assigned date 2024-01-05, got %s", assignment.AssignedDate)
	}

	byTrainer, err := f.assignments.ForTrainer(ctx, trainerID)
	if err != nil {
		t.Fatalf("ForTrainer: %v", err)
	}
	if len(byTrainer) != 1 || byTrainer[0].ID != assignment.ID {
		t.Fatalf("expected trainer to see assignment %d, got %+v", assignment.ID, byTrainer)
	}

	byUser, err := f.assignments.ForUser(ctx, userID)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != assignment.ID {
		t.Fatalf("expected user to see assignment %d, got %+v", assignment.ID, byUser)
	}
}

func TestAssignRejectsWrongRoles(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	trainerID := f.register("coach", models.RoleTrainer)
	userID := f.register("athlete", models.RoleUser)

	_, err := f.assignments.Assign(ctx, userID, userID)
	if !expectKind(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for USER as trainer, got %v", err)
	}
	if !strings.Contains(err.Error(), "Current role: USER") {
		t.Fatalf("expected message to name the actual role, got %q", err.Error())
	}

	_, err = f.assignments.Assign(ctx, trainerID, trainerID)
	if !expectKind(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for TRAINER as user, got %v", err)
	}
	if len(f.assignmentRows.rows) != 0 {
		t.Fatalf("expected no assignments, got %+v", f.assignmentRows.rows)
	}
}

func TestAssignUnknownAccountIsNotFound(t *testing.T) {
	f := newFixture()
	trainerID := f.register("coach", models.RoleTrainer)

	_, err := f.assignments.Assign(context.Background(), trainerID, 999)
	if !expectKind(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "999") {
		t.Fatalf("expected message to name the missing id, got %q", err.Error())
	}
}

func TestAssignTwiceStoresTwoRowsAndFirstWins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	firstTrainer := f.register("coach", models.RoleTrainer)
	secondTrainer := f.register("coach2", models.RoleTrainer)
	userID := f.register("athlete", models.RoleUser)

	for _, trainerID := range []int64{firstTrainer, firstTrainer, secondTrainer} {
		if _, err := f.assignments.Assign(ctx, trainerID, userID); err != nil {
			t.Fatalf("Assign(%d): %v", trainerID, err)
		}
	}

	byUser, err := f.assignments.ForUser(ctx, userID)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(byUser) != 3 {
		t.Fatalf("expected 3 assignment rows, got %d", len(byUser))
	}

	current, ok, err := f.assignments.CurrentTrainerID(ctx, userID)
	if err != nil || !ok {
		t.Fatalf("CurrentTrainerID: %d %v %v", current, ok, err)
	}
	if current != firstTrainer {
		t.Fatalf("expected first trainer %d, got %d", firstTrainer, current)
	}
}
