package api

import (
	"time"

	"github.com/sheandsoul/shesoul/internal/assistant"
	"github.com/sheandsoul/shesoul/internal/db"
	"github.com/sheandsoul/shesoul/internal/email"
	"github.com/sheandsoul/shesoul/internal/services"
	"gorm.io/gorm"
)

const authTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	secretKey []byte

	auth      *services.AuthService
	otps      *services.OTPService
	profiles  *services.ProfileService
	cycles    *services.CycleService
	partners  *services.PartnerService
	responder assistant.Responder
}

func NewHandler(database *gorm.DB, secret string, sender email.Sender, responder assistant.Responder) *Handler {
	repositories := db.NewRepositories(database)
	referrals := services.NewReferralService(repositories.Profiles, db.IsUniqueViolation)

	return &Handler{
		secretKey: []byte(secret),
		auth:      services.NewAuthService(repositories.Users),
		otps:      services.NewOTPService(repositories.OTPs, sender),
		profiles:  services.NewProfileService(repositories.Profiles, referrals),
		cycles:    services.NewCycleService(repositories.Profiles),
		partners:  services.NewPartnerService(repositories.Profiles),
		responder: responder,
	}
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyEmailInput struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type resendOTPInput struct {
	Email string `json:"email"`
}

type menstrualDataInput struct {
	LastPeriodStartDate string `json:"last_period_start_date"`
	PeriodLength        int    `json:"period_length"`
	CycleLength         int    `json:"cycle_length"`
}

type languageInput struct {
	LanguageCode string `json:"language_code"`
}

type servicesInput struct {
	PreferredServiceType string `json:"preferred_service_type"`
}

type assessmentInput struct {
	Answers map[string]string `json:"answers"`
}

type assistantInput struct {
	Message string `json:"message"`
}
