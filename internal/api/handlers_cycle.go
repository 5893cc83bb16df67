package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dayLayout = "2006-01-02"

func (handler *Handler) UpdateMenstrualData(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := menstrualDataInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	start, err := time.Parse(dayLayout, input.LastPeriodStartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "last_period_start_date must be YYYY-MM-DD")
	}

	if err := handler.profiles.UpdateMenstrualData(user.ID, start, input.PeriodLength, input.CycleLength); err != nil {
		return serviceError(c, err)
	}

	profile, err := handler.profiles.GetByUserID(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) NextPeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	prediction, err := handler.cycles.PredictForUser(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(prediction)
}
