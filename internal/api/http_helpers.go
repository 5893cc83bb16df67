package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sheandsoul/shesoul/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the service-layer error taxonomy onto HTTP statuses:
// validation 400, credentials 401, not-found 404, conflicts 409. Callers can
// tell "insufficient data" (400) apart from "not found" (404).
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCycleData),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrReferralCodeRequired),
		errors.Is(err, services.ErrInvalidBasicInfo),
		errors.Is(err, services.ErrOTPInvalid):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrPartnerNotLinked),
		errors.Is(err, services.ErrPartnerLinkBroken),
		errors.Is(err, services.ErrReferralCodeUnknown):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrProfileExists),
		errors.Is(err, services.ErrReferralCodeConflict):
		return apiError(c, fiber.StatusConflict, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
