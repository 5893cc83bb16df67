package api

import "github.com/gofiber/fiber/v2"

// PartnerView resolves the caller's referral link and returns the linked
// primary user's name and cycle prediction.
func (handler *Handler) PartnerView(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	view, err := handler.partners.GetPartnerView(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(view)
}
