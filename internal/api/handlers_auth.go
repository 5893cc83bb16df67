package api

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sheandsoul/shesoul/internal/models"
	"github.com/sheandsoul/shesoul/internal/services"
)

const minPasswordLength = 8

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Signup creates the account and sends a verification code. OTP delivery is
// best effort: a mail outage must not lose the freshly created account.
func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	email := services.NormalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return apiError(c, fiber.StatusBadRequest, "a valid email is required")
	}
	if len(input.Password) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	user, err := handler.auth.Register(email, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	if err := handler.otps.Issue(user.Email); err != nil {
		log.Printf("signup: could not send verification code to %s: %v", user.Email, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	handler.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// VerifyEmail consumes the submitted code and flips the account's verified
// flag.
func (handler *Handler) VerifyEmail(c *fiber.Ctx) error {
	input := verifyEmailInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.auth.FindByEmail(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "account not found")
	}
	if err := handler.otps.Verify(user.Email, strings.TrimSpace(input.OTP)); err != nil {
		return serviceError(c, err)
	}
	if err := handler.auth.MarkEmailVerified(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"message": "email verified"})
}

func (handler *Handler) ResendOTP(c *fiber.Ctx) error {
	input := resendOTPInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.auth.FindByEmail(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "account not found")
	}
	if err := handler.otps.Issue(user.Email); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not send verification code")
	}
	return c.JSON(fiber.Map{"message": "verification code sent"})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) buildToken(user *models.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(authTokenTTL),
	})
}
