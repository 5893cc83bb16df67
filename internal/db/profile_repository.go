package db

import (
	"errors"
	"strings"
	"time"

	"github.com/sheandsoul/shesoul/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUserID(userID uint) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// FindByReferralCode is an exact-match lookup; the unique index on
// referral_code guarantees at most one row.
func (repo *ProfileRepository) FindByReferralCode(code string) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.Where("referral_code = ?", code).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) ExistsByReferralCode(code string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Profile{}).
		Where("referral_code = ?", code).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) UpdateByID(profileID uint, updates map[string]any) error {
	return repo.database.Model(&models.Profile{}).Where("id = ?", profileID).Updates(updates).Error
}

func (repo *ProfileRepository) UpdateMenstrualData(profileID uint, start time.Time, periodLength int, cycleLength int) error {
	end := start.AddDate(0, 0, periodLength-1)
	return repo.database.Model(&models.Profile{}).Where("id = ?", profileID).Updates(map[string]any{
		"last_period_start_date": start,
		"last_period_end_date":   end,
		"period_length":          periodLength,
		"cycle_length":           cycleLength,
	}).Error
}

func (repo *ProfileRepository) UpdateRiskAssessment(profileID uint, answers datatypes.JSONMap, riskLevel string) error {
	return repo.database.Model(&models.Profile{}).Where("id = ?", profileID).Updates(map[string]any{
		"risk_assessment_data": answers,
		"risk_level":           riskLevel,
	}).Error
}

// IsUniqueViolation reports whether err came from a unique index rejecting a
// write, which is the authoritative guard for referral-code collisions.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
