package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/verify-email", handler.VerifyEmail)
	auth.Post("/resend-otp", handler.ResendOTP)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Post("", handler.CreateProfile)
	profile.Get("", handler.GetProfile)
	profile.Put("/basic", handler.UpdateBasicInfo)
	profile.Put("/language", handler.UpdateLanguage)
	profile.Put("/services", handler.UpdatePreferredService)

	api.Put("/menstrual-data", handler.AuthRequired, handler.UpdateMenstrualData)
	api.Get("/next-period", handler.AuthRequired, handler.NextPeriod)
	api.Get("/partner", handler.AuthRequired, handler.PartnerView)
	api.Post("/mcq-assessment", handler.AuthRequired, handler.SubmitAssessment)
	api.Post("/assistant", handler.AuthRequired, handler.AssistantChat)
}
