package handlers

import (
	"context"
	"strconv"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
	"github.com/gofiber/fiber/v2"
)

type adminService interface {
	ListAccounts(ctx context.Context, caller models.Caller, filter repository.AccountListFilter) ([]models.PublicAccount, int, error)
	DeleteAccount(ctx context.Context, caller models.Caller, accountID int64) error
	Assign(ctx context.Context, caller models.Caller, trainerID, userID int64) (*models.Assignment, error)
	ListAssignments(ctx context.Context, caller models.Caller) ([]models.Assignment, error)
}

type AdminHandler struct {
	service adminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) ListAccounts(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	page, limit := parsePage(c)
	filter := repository.AccountListFilter{
		Offset: pageOffset(page, limit),
		Limit:  limit,
	}
	if raw := c.Query("role"); raw != "" {
		role, ok := models.ParseRole(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
		}
		filter.Role = &role
	}

	accounts, total, err := h.service.ListAccounts(c.Context(), caller, filter)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"accounts":   accounts,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *AdminHandler) DeleteAccount(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid account id"})
	}

	if err := h.service.DeleteAccount(c.Context(), caller, accountID); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}

// Assign reads trainerId and userId from the query string.
func (h *AdminHandler) Assign(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}
	trainerID, err := strconv.ParseInt(c.Query("trainerId"), 10, 64)
	if err != nil || trainerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainerId"})
	}
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid userId"})
	}

	assignment, err := h.service.Assign(c.Context(), caller, trainerID, userID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Trainer assigned successfully",
		"assignment": assignment,
	})
}

func (h *AdminHandler) ListAssignments(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	assignments, err := h.service.ListAssignments(c.Context(), caller)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"assignments": assignments})
}
