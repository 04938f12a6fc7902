package handler

import (
	"github.com/gofiber/fiber/v2"

	"filebot/internal/middleware"
	"filebot/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenRequest struct {
	Key string `json:"key"`
}

func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return middleware.BadRequest("Key is required")
	}

	token, err := h.authService.IssueToken(req.Key)
	if err != nil {
		return middleware.Unauthorized("Invalid admin key")
	}

	return c.JSON(fiber.Map{"access_token": token})
}
