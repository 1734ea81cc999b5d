package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/middleware"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
	"github.com/gofiber/fiber/v2"
)

var errInvalidDate = errors.New("dates must use the YYYY-MM-DD format")

func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrProfileMissing):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateIdentity):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		c.Locals(middleware.ErrorLocalKey, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process request"})
	}
}

// callerFromLocals rebuilds the verified caller stored by AuthRequired.
func callerFromLocals(c *fiber.Ctx) (models.Caller, bool) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return models.Caller{}, false
	}
	accountID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Caller{}, false
	}
	roleStr, _ := c.Locals("role").(string)
	role, ok := models.ParseRole(roleStr)
	if !ok {
		return models.Caller{}, false
	}
	username, _ := c.Locals("username").(string)
	return models.Caller{AccountID: accountID, Username: username, Role: role}, true
}

func invalidToken(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
}

func parseIDParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return nil, errInvalidDate
	}
	return &parsed, nil
}

func parseDateFilter(c *fiber.Ctx) (models.DateFilter, error) {
	var (
		filter models.DateFilter
		err    error
	)
	if filter.Date, err = parseDate(c.Query("date")); err != nil {
		return models.DateFilter{}, err
	}
	if filter.StartDate, err = parseDate(c.Query("startDate")); err != nil {
		return models.DateFilter{}, err
	}
	if filter.EndDate, err = parseDate(c.Query("endDate")); err != nil {
		return models.DateFilter{}, err
	}
	return filter, nil
}
