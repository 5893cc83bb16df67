package services

import (
	"time"

	"github.com/sheandsoul/shesoul/internal/email"
	"github.com/sheandsoul/shesoul/internal/models"
	"github.com/sheandsoul/shesoul/internal/security"
)

const (
	otpLength = 6
	otpTTL    = 10 * time.Minute
)

type OTPStore interface {
	Create(otp *models.EmailOTP) error
	FindLatestActive(email string, now time.Time) (models.EmailOTP, bool, error)
	MarkUsed(otpID uint) error
	DeleteExpired(now time.Time) error
}

type OTPService struct {
	otps   OTPStore
	sender email.Sender
	now    func() time.Time
}

func NewOTPService(otps OTPStore, sender email.Sender) *OTPService {
	return &OTPService{otps: otps, sender: sender, now: time.Now}
}

// Issue generates a fresh code, stores it with its expiry and hands it to
// the delivery capability. Expired codes are swept opportunistically here so
// the table does not grow without bound.
func (service *OTPService) Issue(recipient string) error {
	code, err := security.RandomNumericCode(otpLength)
	if err != nil {
		return err
	}

	now := service.now().UTC()
	if err := service.otps.DeleteExpired(now); err != nil {
		return err
	}
	otp := models.EmailOTP{
		Email:     NormalizeEmail(recipient),
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}
	if err := service.otps.Create(&otp); err != nil {
		return err
	}
	return service.sender.SendOTP(otp.Email, code)
}

// Verify checks the submitted code against the latest unexpired, unused one
// for the address and consumes it on success.
func (service *OTPService) Verify(recipient string, code string) error {
	otp, found, err := service.otps.FindLatestActive(NormalizeEmail(recipient), service.now().UTC())
	if err != nil {
		return err
	}
	if !found || otp.Code != code {
		return ErrOTPInvalid
	}
	return service.otps.MarkUsed(otp.ID)
}
