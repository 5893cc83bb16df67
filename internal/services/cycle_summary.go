package services

import (
	"fmt"

	"github.com/sheandsoul/shesoul/internal/models"
)

const summaryDateLayout = "January 2, 2006"

// SetupFallbackSummary is returned whenever a prediction cannot be computed.
const SetupFallbackSummary = "I don't have cycle data for you yet. Please complete your cycle setup with your last period start date, period length and cycle length."

// SummarizeCycle renders a prediction as one sentence for the assistant. It
// is total: a failed prediction becomes the fixed setup sentence.
func SummarizeCycle(prediction CyclePrediction, err error) string {
	if err != nil {
		return SetupFallbackSummary
	}
	return fmt.Sprintf(
		"Your next period is expected to start on %s and end on %s, and your fertile window runs from %s to %s.",
		prediction.NextPeriodStart.Format(summaryDateLayout),
		prediction.NextPeriodEnd.Format(summaryDateLayout),
		prediction.FertileWindowStart.Format(summaryDateLayout),
		prediction.FertileWindowEnd.Format(summaryDateLayout),
	)
}

type CycleProfileStore interface {
	FindByUserID(userID uint) (models.Profile, error)
}

type CycleService struct {
	profiles CycleProfileStore
}

func NewCycleService(profiles CycleProfileStore) *CycleService {
	return &CycleService{profiles: profiles}
}

// PredictForUser resolves the caller's own profile and runs the calculator.
func (service *CycleService) PredictForUser(userID uint) (CyclePrediction, error) {
	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return CyclePrediction{}, ErrProfileNotFound
	}
	return PredictCycleForProfile(&profile)
}

// SummarizeForAssistant never fails; any lookup or calculation problem
// degrades to the fixed setup sentence.
func (service *CycleService) SummarizeForAssistant(userID uint) string {
	prediction, err := service.PredictForUser(userID)
	return SummarizeCycle(prediction, err)
}
