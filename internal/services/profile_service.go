package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sheandsoul/shesoul/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileStore interface {
	FindByUserID(userID uint) (models.Profile, error)
	FindByReferralCode(code string) (models.Profile, error)
	ExistsByReferralCode(code string) (bool, error)
	Create(profile *models.Profile) error
	UpdateByID(profileID uint, updates map[string]any) error
	UpdateMenstrualData(profileID uint, start time.Time, periodLength int, cycleLength int) error
	UpdateRiskAssessment(profileID uint, answers datatypes.JSONMap, riskLevel string) error
}

type ProfileInput struct {
	Name         string   `json:"name"`
	NickName     string   `json:"nick_name"`
	Role         string   `json:"user_type"`
	Age          *int     `json:"age"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	ReferredCode string   `json:"referred_code"`
}

type BasicInfoUpdate struct {
	Name     *string  `json:"name"`
	NickName *string  `json:"nick_name"`
	Age      *int     `json:"age"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
}

type ProfileService struct {
	profiles  ProfileStore
	referrals *ReferralService
}

func NewProfileService(profiles ProfileStore, referrals *ReferralService) *ProfileService {
	return &ProfileService{profiles: profiles, referrals: referrals}
}

// CreateProfile creates the one profile an account ever gets. The role is
// fixed forever: USER profiles receive a unique referral code, PARTNER
// profiles must present a referred_code matching an existing USER's code.
func (service *ProfileService) CreateProfile(userID uint, input ProfileInput) (models.Profile, error) {
	if _, err := service.profiles.FindByUserID(userID); err == nil {
		return models.Profile{}, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Profile{}, ErrInvalidBasicInfo
	}

	profile := models.Profile{
		UserID:   userID,
		Name:     name,
		NickName: strings.TrimSpace(input.NickName),
		Role:     strings.ToUpper(strings.TrimSpace(input.Role)),
		Age:      input.Age,
		Height:   input.Height,
		Weight:   input.Weight,
	}

	switch profile.Role {
	case models.RolePrimaryUser:
	case models.RolePartner:
		referredCode := strings.ToUpper(strings.TrimSpace(input.ReferredCode))
		if referredCode == "" {
			return models.Profile{}, ErrReferralCodeRequired
		}
		linked, err := service.profiles.FindByReferralCode(referredCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Profile{}, ErrReferralCodeUnknown
			}
			return models.Profile{}, err
		}
		if !linked.IsPrimaryUser() {
			return models.Profile{}, ErrReferralCodeUnknown
		}
		profile.ReferredCode = referredCode
	default:
		return models.Profile{}, ErrInvalidRole
	}

	if err := service.profiles.Create(&profile); err != nil {
		return models.Profile{}, err
	}

	if profile.Role == models.RolePrimaryUser {
		code, err := service.referrals.AssignReferralCode(profile.ID)
		if err != nil {
			return models.Profile{}, err
		}
		profile.ReferralCode = code
	}

	return profile, nil
}

func (service *ProfileService) GetByUserID(userID uint) (models.Profile, error) {
	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// UpdateMenstrualData stores the three cycle inputs after range validation.
// Out-of-range values are rejected, never clamped.
func (service *ProfileService) UpdateMenstrualData(userID uint, lastPeriodStart time.Time, periodLength int, cycleLength int) error {
	profile, err := service.GetByUserID(userID)
	if err != nil {
		return err
	}
	if lastPeriodStart.IsZero() || !IsValidPeriodLength(periodLength) || !IsValidCycleLength(cycleLength) {
		return ErrInvalidCycleData
	}
	return service.profiles.UpdateMenstrualData(profile.ID, dateOnly(lastPeriodStart), periodLength, cycleLength)
}

func (service *ProfileService) UpdateBasicInfo(userID uint, update BasicInfoUpdate) error {
	profile, err := service.GetByUserID(userID)
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return ErrInvalidBasicInfo
		}
		updates["name"] = name
	}
	if update.NickName != nil {
		updates["nick_name"] = strings.TrimSpace(*update.NickName)
	}
	if update.Age != nil {
		if *update.Age < 0 || *update.Age > 120 {
			return ErrInvalidBasicInfo
		}
		updates["age"] = *update.Age
	}
	if update.Height != nil {
		if *update.Height <= 0 {
			return ErrInvalidBasicInfo
		}
		updates["height"] = *update.Height
	}
	if update.Weight != nil {
		if *update.Weight <= 0 {
			return ErrInvalidBasicInfo
		}
		updates["weight"] = *update.Weight
	}
	if len(updates) == 0 {
		return nil
	}
	return service.profiles.UpdateByID(profile.ID, updates)
}

func (service *ProfileService) UpdateLanguage(userID uint, languageCode string) error {
	profile, err := service.GetByUserID(userID)
	if err != nil {
		return err
	}
	code := strings.TrimSpace(languageCode)
	if code == "" {
		return ErrInvalidBasicInfo
	}
	return service.profiles.UpdateByID(profile.ID, map[string]any{"language_code": code})
}

func (service *ProfileService) UpdatePreferredService(userID uint, serviceType string) error {
	profile, err := service.GetByUserID(userID)
	if err != nil {
		return err
	}
	normalized := strings.ToUpper(strings.TrimSpace(serviceType))
	switch normalized {
	case models.ServiceMenstruation, models.ServiceBreastHealth, models.ServiceMentalHealth, models.ServicePCOS:
	default:
		return ErrInvalidBasicInfo
	}
	return service.profiles.UpdateByID(profile.ID, map[string]any{"preferred_service_type": normalized})
}

// SubmitRiskAssessment scores the answers, persists both the raw answers and
// the computed level on the profile, and returns the result.
func (service *ProfileService) SubmitRiskAssessment(userID uint, answers map[string]string) (int, RiskLevel, error) {
	profile, err := service.GetByUserID(userID)
	if err != nil {
		return 0, "", err
	}

	score, level := ScoreRiskAssessment(answers)

	stored := datatypes.JSONMap{}
	for questionKey, answerCode := range answers {
		stored[questionKey] = answerCode
	}
	if err := service.profiles.UpdateRiskAssessment(profile.ID, stored, string(level)); err != nil {
		return 0, "", err
	}
	return score, level, nil
}
