package db

import (
	"time"

	"github.com/sheandsoul/shesoul/internal/models"
	"gorm.io/gorm"
)

type OTPRepository struct {
	database *gorm.DB
}

func NewOTPRepository(database *gorm.DB) *OTPRepository {
	return &OTPRepository{database: database}
}

func (repo *OTPRepository) Create(otp *models.EmailOTP) error {
	return repo.database.Create(otp).Error
}

func (repo *OTPRepository) FindLatestActive(email string, now time.Time) (models.EmailOTP, bool, error) {
	var otp models.EmailOTP
	result := repo.database.
		Where("email = ? AND is_used = ? AND expires_at > ?", email, false, now).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&otp)
	if result.Error != nil {
		return models.EmailOTP{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.EmailOTP{}, false, nil
	}
	return otp, true, nil
}

func (repo *OTPRepository) MarkUsed(otpID uint) error {
	return repo.database.Model(&models.EmailOTP{}).Where("id = ?", otpID).Update("is_used", true).Error
}

func (repo *OTPRepository) DeleteExpired(now time.Time) error {
	return repo.database.Where("expires_at <= ?", now).Delete(&models.EmailOTP{}).Error
}
