package handlers

import (
	"context"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
	"github.com/gofiber/fiber/v2"
)

type workoutPlanService interface {
	List(ctx context.Context, caller models.Caller) ([]models.WorkoutPlan, error)
	Create(ctx context.Context, caller models.Caller, name string, description *string) (*models.WorkoutPlan, error)
}

type WorkoutPlanHandler struct {
	service workoutPlanService
}

func NewWorkoutPlanHandler(service *services.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{service: service}
}

type createWorkoutPlanRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h *WorkoutPlanHandler) List(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	plans, err := h.service.List(c.Context(), caller)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"workout_plans": plans})
}

func (h *WorkoutPlanHandler) Create(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	var req createWorkoutPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan, err := h.service.Create(c.Context(), caller, req.Name, req.Description)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout_plan": plan})
}
