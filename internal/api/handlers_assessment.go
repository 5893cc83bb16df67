package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) SubmitAssessment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := assessmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.Answers) == 0 {
		return apiError(c, fiber.StatusBadRequest, "answers are required")
	}

	score, level, err := handler.profiles.SubmitRiskAssessment(user.ID, input.Answers)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"score":      score,
		"risk_level": level,
	})
}
