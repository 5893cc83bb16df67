package services

import (
	"errors"
	"time"

	"github.com/sheandsoul/shesoul/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errFakeUniqueViolation = errors.New("UNIQUE constraint failed: profiles.referral_code")

// fakeProfileStore is an in-memory ProfileStore / PartnerProfileStore /
// ReferralProfileStore used across the service tests.
type fakeProfileStore struct {
	profiles map[uint]*models.Profile
	nextID   uint

	// conflictOnAssign makes the next N referral-code updates fail the way
	// the unique index would.
	conflictOnAssign int
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[uint]*models.Profile{}, nextID: 1}
}

func (store *fakeProfileStore) add(profile models.Profile) *models.Profile {
	if profile.ID == 0 {
		profile.ID = store.nextID
	}
	if profile.ID >= store.nextID {
		store.nextID = profile.ID + 1
	}
	stored := profile
	store.profiles[stored.ID] = &stored
	return &stored
}

func (store *fakeProfileStore) FindByUserID(userID uint) (models.Profile, error) {
	for _, profile := range store.profiles {
		if profile.UserID == userID {
			return *profile, nil
		}
	}
	return models.Profile{}, gorm.ErrRecordNotFound
}

func (store *fakeProfileStore) FindByReferralCode(code string) (models.Profile, error) {
	for _, profile := range store.profiles {
		if profile.ReferralCode != "" && profile.ReferralCode == code {
			return *profile, nil
		}
	}
	return models.Profile{}, gorm.ErrRecordNotFound
}

func (store *fakeProfileStore) ExistsByReferralCode(code string) (bool, error) {
	_, err := store.FindByReferralCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (store *fakeProfileStore) Create(profile *models.Profile) error {
	stored := store.add(*profile)
	profile.ID = stored.ID
	return nil
}

func (store *fakeProfileStore) UpdateByID(profileID uint, updates map[string]any) error {
	profile, ok := store.profiles[profileID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if code, ok := updates["referral_code"].(string); ok {
		if store.conflictOnAssign > 0 {
			store.conflictOnAssign--
			return errFakeUniqueViolation
		}
		profile.ReferralCode = code
	}
	if name, ok := updates["name"].(string); ok {
		profile.Name = name
	}
	if nickName, ok := updates["nick_name"].(string); ok {
		profile.NickName = nickName
	}
	if age, ok := updates["age"].(int); ok {
		profile.Age = &age
	}
	if height, ok := updates["height"].(float64); ok {
		profile.Height = &height
	}
	if weight, ok := updates["weight"].(float64); ok {
		profile.Weight = &weight
	}
	if language, ok := updates["language_code"].(string); ok {
		profile.LanguageCode = language
	}
	if serviceType, ok := updates["preferred_service_type"].(string); ok {
		profile.PreferredServiceType = serviceType
	}
	return nil
}

func (store *fakeProfileStore) UpdateMenstrualData(profileID uint, start time.Time, periodLength int, cycleLength int) error {
	profile, ok := store.profiles[profileID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	end := start.AddDate(0, 0, periodLength-1)
	profile.LastPeriodStartDate = &start
	profile.LastPeriodEndDate = &end
	profile.PeriodLength = &periodLength
	profile.CycleLength = &cycleLength
	return nil
}

func (store *fakeProfileStore) UpdateRiskAssessment(profileID uint, answers datatypes.JSONMap, riskLevel string) error {
	profile, ok := store.profiles[profileID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	profile.RiskAssessmentData = answers
	profile.RiskLevel = riskLevel
	return nil
}

func isFakeUniqueViolation(err error) bool {
	return errors.Is(err, errFakeUniqueViolation)
}
