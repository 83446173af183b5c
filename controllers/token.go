package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"belshop/models"
	"belshop/utils"
)

type TokenController struct {
	Auth        Authenticator
	SecretKey   string
	TokenExpiry time.Duration
}

// POST /token — OAuth2 password-grant-shaped login. The credentials are
// verified by logging in against the upstream site with the configured
// account, then a signed token is issued.
func (tc *TokenController) IssueToken(c *fiber.Ctx) error {
	username := c.FormValue("username")
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username is required"})
	}

	if !tc.Auth.Login() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect username or password"})
	}

	token, err := utils.GenerateJWTToken(tc.SecretKey, username, tc.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("token generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
