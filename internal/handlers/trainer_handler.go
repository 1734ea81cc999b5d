package handlers

import (
	"context"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
	"github.com/gofiber/fiber/v2"
)

type trainerService interface {
	GetProfile(ctx context.Context, caller models.Caller) (*models.TrainerProfileView, error)
	UpdateProfile(ctx context.Context, caller models.Caller, input repository.TrainerProfileInput) (*models.TrainerProfileView, error)
	AssignedUsers(ctx context.Context, caller models.Caller) ([]models.UserProfileView, error)
	AthleteProfile(ctx context.Context, caller models.Caller, userID int64) (*models.UserProfileView, error)
	AssignWorkout(ctx context.Context, caller models.Caller, userID int64, input services.WorkoutInput) (*models.Workout, error)
	AssignMeal(ctx context.Context, caller models.Caller, userID int64, input services.MealInput) (*models.Meal, error)
}

type TrainerHandler struct {
	service trainerService
}

func NewTrainerHandler(service *services.TrainerService) *TrainerHandler {
	return &TrainerHandler{service: service}
}

type updateTrainerProfileRequest struct {
	Specialization       *string `json:"specialization"`
	AvailableHoursPerDay *int    `json:"available_hours_per_day"`
	ExperienceYears      *int    `json:"experience_years"`
}

func (h *TrainerHandler) GetProfile(c *fiber.Ctx) error {
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

func (h *TrainerHandler) UpdateProfile(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	var req updateTrainerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.service.UpdateProfile(c.Context(), caller, repository.TrainerProfileInput{
		Specialization:       req.Specialization,
		AvailableHoursPerDay: req.AvailableHoursPerDay,
		ExperienceYears:      req.ExperienceYears,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *TrainerHandler) AssignedUsers(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	users, err := h.service.AssignedUsers(c.Context(), caller)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *TrainerHandler) AthleteProfile(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	profile, err := h.service.AthleteProfile(c.Context(), caller, userID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *TrainerHandler) AssignWorkout(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req workoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	input, err := req.input()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workout, err := h.service.AssignWorkout(c.Context(), caller, userID, input)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout": workout})
}

func (h *TrainerHandler) AssignMeal(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req mealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	input, err := req.input()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	meal, err := h.service.AssignMeal(c.Context(), caller, userID, input)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"meal": meal})
}
