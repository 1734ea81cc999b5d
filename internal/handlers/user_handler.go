package handlers

import (
	"context"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
	"github.com/gofiber/fiber/v2"
)

type userService interface {
	GetProfile(ctx context.Context, caller models.Caller) (*models.UserProfileView, error)
	UpdateProfile(ctx context.Context, caller models.Caller, input repository.UserProfileInput) (*models.UserProfileView, error)
	Workouts(ctx context.Context, caller models.Caller, filter models.DateFilter) ([]models.Workout, error)
	LogWorkoutProgress(ctx context.Context, caller models.Caller, workoutID int64, actualReps *int, completed bool) (*models.Workout, error)
	Meals(ctx context.Context, caller models.Caller, filter models.DateFilter) ([]models.Meal, error)
	LogMeal(ctx context.Context, caller models.Caller, input services.MealInput) (*models.Meal, error)
	SleepMood(ctx context.Context, caller models.Caller, filter models.DateFilter) ([]models.SleepMood, error)
	LogSleepMood(ctx context.Context, caller models.Caller, input services.SleepMoodInput) (*models.SleepMood, error)
	AssignedTrainer(ctx context.Context, caller models.Caller) (*models.TrainerProfileView, error)
}

type UserHandler struct {
	service userService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserProfileRequest struct {
	FullName     *string  `json:"full_name"`
	Age          *int     `json:"age"`
	Gender       *string  `json:"gender"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	FitnessGoal  *string  `json:"fitness_goal"`
	MedicalNotes *string  `json:"medical_notes"`
}

type logWorkoutRequest struct {
	ActualReps *int `json:"actual_reps"`
	Completed  bool `json:"completed"`
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	profile, err := h.service.GetProfile(c.Context(), caller)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	var req updateUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.service.UpdateProfile(c.Context(), caller, repository.UserProfileInput{
		FullName:     req.FullName,
		Age:          req.Age,
		Gender:       req.Gender,
		Height:       req.Height,
		Weight:       req.Weight,
		FitnessGoal:  req.FitnessGoal,
		MedicalNotes: req.MedicalNotes,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *UserHandler) Workouts(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	filter, err := parseDateFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workouts, err := h.service.Workouts(c.Context(), caller, filter)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"workouts": workouts})
}

func (h *UserHandler) LogWorkout(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	workoutID, ok := parseIDParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	var req logWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	workout, err := h.service.LogWorkoutProgress(c.Context(), caller, workoutID, req.ActualReps, req.Completed)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"workout": workout})
}

func (h *UserHandler) Meals(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	filter, err := parseDateFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	meals, err := h.service.Meals(c.Context(), caller, filter)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"meals": meals})
}

func (h *UserHandler) LogMeal(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	var req mealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	input, err := req.input()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	meal, err := h.service.LogMeal(c.Context(), caller, input)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"meal": meal})
}

func (h *UserHandler) SleepMood(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	filter, err := parseDateFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := h.service.SleepMood(c.Context(), caller, filter)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"sleep_mood": entries})
}

func (h *UserHandler) LogSleepMood(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	var req sleepMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	input, err := req.input()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := h.service.LogSleepMood(c.Context(), caller, input)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sleep_mood": entry})
}

func (h *UserHandler) AssignedTrainer(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	trainer, err := h.service.AssignedTrainer(c.Context(), caller)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"trainer": trainer})
}
