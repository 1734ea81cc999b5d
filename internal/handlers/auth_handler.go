package handlers

import (
	"context"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
	"github.com/gofiber/fiber/v2"
)

type authService interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.PublicAccount, error)
	Login(ctx context.Context, input services.LoginInput) (*services.LoginResult, error)
}

type accountLookup interface {
	Account(ctx context.Context, accountID int64) (*models.Account, error)
}

type AuthHandler struct {
	service  authService
	accounts accountLookup
}

func NewAuthHandler(service *services.AuthService, accounts *services.ProfileLookup) *AuthHandler {
	return &AuthHandler{service: service, accounts: accounts}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}

	account, err := h.service.Register(c.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"account": account,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	// Unknown roles fall through to the service so they fail like any other
	// bad credential.
	role, _ := models.ParseRole(req.Role)

	result, err := h.service.Login(c.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"token":   result.Token,
		"account": result.Account,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return invalidToken(c)
	}

	account, err := h.accounts.Account(c.Context(), caller.AccountID)
	if err != nil {
		return mapServiceError(c, err)
	}
	if account.Role != caller.Role {
		return invalidToken(c)
	}

	return c.JSON(fiber.Map{"account": account.Public()})
}
