package services

import (
	"errors"

	"github.com/sheandsoul/shesoul/internal/models"
	"gorm.io/gorm"
)

// PartnerData is everything a partner account may see across the referral
// link: the linked primary user's name and their cycle prediction, nothing
// else. Prediction is nil when the primary has not finished cycle setup.
type PartnerData struct {
	Name       string           `json:"name"`
	Prediction *CyclePrediction `json:"prediction,omitempty"`
}

type PartnerProfileStore interface {
	FindByUserID(userID uint) (models.Profile, error)
	FindByReferralCode(code string) (models.Profile, error)
}

type PartnerService struct {
	profiles PartnerProfileStore
}

func NewPartnerService(profiles PartnerProfileStore) *PartnerService {
	return &PartnerService{profiles: profiles}
}

// GetPartnerView resolves the referral link for a partner account.
// referred_code is validated only when the profile is created, so a primary
// profile deleted afterwards surfaces here as ErrPartnerLinkBroken.
func (service *PartnerService) GetPartnerView(userID uint) (PartnerData, error) {
	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PartnerData{}, ErrProfileNotFound
		}
		return PartnerData{}, err
	}
	if !profile.IsPartner() {
		return PartnerData{}, ErrProfileNotFound
	}
	if profile.ReferredCode == "" {
		return PartnerData{}, ErrPartnerNotLinked
	}

	linked, err := service.profiles.FindByReferralCode(profile.ReferredCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PartnerData{}, ErrPartnerLinkBroken
		}
		return PartnerData{}, err
	}

	view := PartnerData{Name: linked.Name}
	if prediction, predictionErr := PredictCycleForProfile(&linked); predictionErr == nil {
		view.Prediction = &prediction
	}
	return view, nil
}
