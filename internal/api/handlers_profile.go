package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sheandsoul/shesoul/internal/services"
)

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.ProfileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.profiles.CreateProfile(user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.profiles.GetByUserID(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateBasicInfo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	update := services.BasicInfoUpdate{}
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.profiles.UpdateBasicInfo(user.ID, update); err != nil {
		return serviceError(c, err)
	}

	profile, err := handler.profiles.GetByUserID(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateLanguage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := languageInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.profiles.UpdateLanguage(user.ID, input.LanguageCode); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "language updated"})
}

func (handler *Handler) UpdatePreferredService(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := servicesInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.profiles.UpdatePreferredService(user.ID, input.PreferredServiceType); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "preferred service updated"})
}
