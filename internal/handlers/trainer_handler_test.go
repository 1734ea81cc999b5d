package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubTrainerService struct {
	profile      *models.TrainerProfileView
	users        []models.UserProfileView
	athlete      *models.UserProfileView
	athleteErr   error
	workout      *models.Workout
	workoutErr   error
	lastUserID   int64
	lastWorkout  services.WorkoutInput
	lastProfile  repository.TrainerProfileInput
	lastMealUser int64
	lastCaller   models.Caller
}

func (s *stubTrainerService) GetProfile(_ context.Context, _ models.Caller) (*models.TrainerProfileView, error) {
	return s.profile, nil
}

func (s *stubTrainerService) UpdateProfile(_ context.Context, _ models.Caller, input repository.TrainerProfileInput) (*models.TrainerProfileView, error) {
	s.lastProfile = input
	return s.profile, nil
}

func (s *stubTrainerService) AssignedUsers(_ context.Context, _ models.Caller) ([]models.UserProfileView, error) {
	return s.users, nil
}

func (s *stubTrainerService) AthleteProfile(_ context.Context, caller models.Caller, userID int64) (*models.UserProfileView, error) {
	s.lastCaller = caller
	s.lastUserID = userID
	return s.athlete, s.athleteErr
}

func (s *stubTrainerService) AssignWorkout(_ context.Context, _ models.Caller, userID int64, input services.WorkoutInput) (*models.Workout, error) {
	s.lastUserID = userID
	s.lastWorkout = input
	return s.workout, s.workoutErr
}

func (s *stubTrainerService) AssignMeal(_ context.Context, caller models.Caller, userID int64, _ services.MealInput) (*models.Meal, error) {
	s.lastCaller = caller
	s.lastMealUser = userID
	return &models.Meal{ID: 1}, nil
}

func newTrainerApp(service *stubTrainerService) *fiber.App {
	handler := &TrainerHandler{service: service}
	app := fiber.New()
	app.Use(withCaller("7", "TRAINER"))
	app.Put("/profile", handler.UpdateProfile)
	app.Get("/assigned-users", handler.AssignedUsers)
	app.Get("/users/:userId/profile", handler.AthleteProfile)
	app.Post("/users/:userId/assign-workout", handler.AssignWorkout)
	app.Post("/users/:userId/assign-meal", handler.AssignMeal)
	return app
}

func TestAthleteProfileMapsInvalidRole(t *testing.T) {
	service := &stubTrainerService{
		athleteErr: &services.Error{Kind: services.ErrInvalidRole, Message: "account with id 3 is not a USER. Current role: TRAINER"},
	}
	app := newTrainerApp(service)

	resp, payload := performRequest(t, app, http.MethodGet, "/users/3/profile", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(payload["error"].(string), "Current role: TRAINER") {
		t.Fatalf("unexpected error %v", payload["error"])
	}
	if service.lastUserID != 3 {
		t.Fatalf("expected user id 3, got %d", service.lastUserID)
	}
}

func TestAthleteProfileRejectsBadID(t *testing.T) {
	app := newTrainerApp(&stubTrainerService{})

	resp, _ := performRequest(t, app, http.MethodGet, "/users/abc/profile", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAssignWorkoutReturnsCreated(t *testing.T) {
	service := &stubTrainerService{workout: &models.Workout{ID: 11, WorkoutName: "squats", AssignedBy: ptr(int64(7))}}
	app := newTrainerApp(service)

	resp, payload := performRequest(t, app, http.MethodPost, "/users/3/assign-workout", strings.NewReader(`{
		"workout_name": "squats",
		"target_reps": 20,
		"date": "2024-01-10"
	}`))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastUserID != 3 || service.lastWorkout.WorkoutName != "squats" || *service.lastWorkout.TargetReps != 20 {
		t.Fatalf("unexpected call user=%d input=%+v", service.lastUserID, service.lastWorkout)
	}
	workout := payload["workout"].(map[string]any)
	if workout["assigned_by"] != float64(7) {
		t.Fatalf("unexpected workout %+v", workout)
	}
}

func TestAssignedUsersAndProfileUpdate(t *testing.T) {
	service := &stubTrainerService{
		users:   []models.UserProfileView{{ID: 3, Username: "athlete"}},
		profile: &models.TrainerProfileView{ID: 7, Username: "coach"},
	}
	app := newTrainerApp(service)

	resp, payload := performRequest(t, app, http.MethodGet, "/assigned-users", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if users := payload["users"].([]any); len(users) != 1 {
		t.Fatalf("expected one user, got %+v", users)
	}

	resp, _ = performRequest(t, app, http.MethodPut, "/profile", strings.NewReader(`{"specialization":"yoga","experience_years":3}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if *service.lastProfile.Specialization != "yoga" || service.lastProfile.AvailableHoursPerDay != nil {
		t.Fatalf("unexpected profile input %+v", service.lastProfile)
	}

	resp, _ = performRequest(t, app, http.MethodPost, "/users/3/assign-meal", strings.NewReader(`{"calories":600}`))
	if resp.StatusCode != http.StatusCreated || service.lastMealUser != 3 {
		t.Fatalf("expected meal for user 3, got status %d user %d", resp.StatusCode, service.lastMealUser)
	}
	if service.lastCaller.AccountID != 7 || service.lastCaller.Role != models.RoleTrainer {
		t.Fatalf("expected trainer caller 7, got %+v", service.lastCaller)
	}
}

func TestTrainerHandlersRequireCaller(t *testing.T) {
	service := &stubTrainerService{}
	handler := &TrainerHandler{service: service}
	app := fiber.New()
	app.Get("/users/:userId/profile", handler.AthleteProfile)
	app.Post("/users/:userId/assign-meal", handler.AssignMeal)

	resp, _ := performRequest(t, app, http.MethodGet, "/users/3/profile", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for athlete profile, got %d", resp.StatusCode)
	}
	resp, _ = performRequest(t, app, http.MethodPost, "/users/3/assign-meal", strings.NewReader(`{"calories":600}`))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for assign meal, got %d", resp.StatusCode)
	}
	if service.lastMealUser != 0 || service.lastUserID != 0 {
		t.Fatal("expected service not to be called")
	}
}

func TestAthleteProfileMapsForbidden(t *testing.T) {
	service := &stubTrainerService{
		athleteErr: &services.Error{Kind: services.ErrForbidden, Message: "operation requires role TRAINER"},
	}
	app := newTrainerApp(service)

	resp, payload := performRequest(t, app, http.MethodGet, "/users/3/profile", nil)
	if resp.StatusCode != http.StatusForbidden || payload["error"] != "Forbidden" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, payload)
	}
}
