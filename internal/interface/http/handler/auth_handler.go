package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"voiceover-app/internal/infrastructure/googleauth"
)

// AuthHandler exposes the Google OAuth consent flow used by the
// optional Drive upload.
type AuthHandler struct {
	ga    *googleauth.GoogleAuth
	state string
}

func NewAuthHandler(ga *googleauth.GoogleAuth) *AuthHandler {
	return &AuthHandler{ga: ga}
}

// Register registers routes to app.
func (h *AuthHandler) Register(app *fiber.App) {
	app.Get("/auth/google", h.begin)
	app.Get("/auth/google/callback", h.callback)
}

func (h *AuthHandler) begin(c *fiber.Ctx) error {
	h.state = uuid.NewString()
	return c.Redirect(h.ga.AuthURL(h.state))
}

func (h *AuthHandler) callback(c *fiber.Ctx) error {
	if c.Query("state") != h.state || h.state == "" {
		return fiber.NewError(fiber.StatusBadRequest, "state mismatch")
	}
	code := c.Query("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "code missing")
	}
	if _, err := h.ga.Exchange(c.Context(), code); err != nil {
		log.Printf("[auth] token exchange failed: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "token exchange failed")
	}
	h.state = ""
	return c.SendString("Authorization received. You can close this tab.")
}
