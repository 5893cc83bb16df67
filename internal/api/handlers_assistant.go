package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AssistantChat answers a free-form question grounded in the caller's cycle
// prediction. Accounts without cycle data still get an answer: the context
// degrades to a fixed setup sentence instead of failing the request.
func (handler *Handler) AssistantChat(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := assistantInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	cycleContext := handler.cycles.SummarizeForAssistant(user.ID)
	reply, err := handler.responder.Respond(c.UserContext(), cycleContext, message)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "assistant is unavailable")
	}
	return c.JSON(fiber.Map{"response": reply})
}
