package services

import (
	"time"

	"github.com/sheandsoul/shesoul/internal/models"
)

const (
	MinPeriodLength = 1
	MaxPeriodLength = 31
	MinCycleLength  = 21
	MaxCycleLength  = 35

	lutealPhaseDays = 14
	fertileLeadDays = 5
)

// CyclePrediction holds the full phase calendar derived for the upcoming
// cycle. All fields are calendar days at midnight in the input's location.
type CyclePrediction struct {
	NextPeriodStart      time.Time `json:"next_period_start"`
	NextPeriodEnd        time.Time `json:"next_period_end"`
	FollowingPeriodStart time.Time `json:"following_period_start"`
	FollicularStart      time.Time `json:"follicular_start"`
	FollicularEnd        time.Time `json:"follicular_end"`
	OvulationDate        time.Time `json:"ovulation_date"`
	OvulationEnd         time.Time `json:"ovulation_end"`
	LutealStart          time.Time `json:"luteal_start"`
	LutealEnd            time.Time `json:"luteal_end"`
	FertileWindowStart   time.Time `json:"fertile_window_start"`
	FertileWindowEnd     time.Time `json:"fertile_window_end"`
}

// PredictCycle derives the next cycle's phase calendar from the stored cycle
// inputs. It is a pure function of its arguments: the clock is never
// consulted, so predictions are relative to the stored last-period date.
//
// Ovulation is anchored 14 days before the start of the cycle *after* the
// upcoming one, not the upcoming one itself. This matches the reference
// behavior the mobile clients were built against and must not be "fixed".
func PredictCycle(lastPeriodStart time.Time, periodLength int, cycleLength int) (CyclePrediction, error) {
	if lastPeriodStart.IsZero() {
		return CyclePrediction{}, ErrInvalidCycleData
	}
	if periodLength < MinPeriodLength || periodLength > MaxPeriodLength {
		return CyclePrediction{}, ErrInvalidCycleData
	}
	if cycleLength < MinCycleLength || cycleLength > MaxCycleLength {
		return CyclePrediction{}, ErrInvalidCycleData
	}

	start := dateOnly(lastPeriodStart)

	nextPeriodStart := start.AddDate(0, 0, cycleLength)
	nextPeriodEnd := nextPeriodStart.AddDate(0, 0, periodLength-1)
	followingPeriodStart := nextPeriodStart.AddDate(0, 0, cycleLength)
	ovulationDate := followingPeriodStart.AddDate(0, 0, -lutealPhaseDays)

	return CyclePrediction{
		NextPeriodStart:      nextPeriodStart,
		NextPeriodEnd:        nextPeriodEnd,
		FollowingPeriodStart: followingPeriodStart,
		FollicularStart:      nextPeriodStart,
		FollicularEnd:        ovulationDate,
		OvulationDate:        ovulationDate,
		OvulationEnd:         ovulationDate.AddDate(0, 0, 1),
		LutealStart:          ovulationDate.AddDate(0, 0, 1),
		LutealEnd:            ovulationDate.AddDate(0, 0, lutealPhaseDays),
		FertileWindowStart:   ovulationDate.AddDate(0, 0, -fertileLeadDays),
		FertileWindowEnd:     ovulationDate.AddDate(0, 0, 1),
	}, nil
}

// PredictCycleForProfile runs the calculator over a profile's stored cycle
// inputs. A missing field fails with ErrInvalidCycleData rather than being
// defaulted.
func PredictCycleForProfile(profile *models.Profile) (CyclePrediction, error) {
	if profile == nil || profile.LastPeriodStartDate == nil || profile.PeriodLength == nil || profile.CycleLength == nil {
		return CyclePrediction{}, ErrInvalidCycleData
	}
	return PredictCycle(*profile.LastPeriodStartDate, *profile.PeriodLength, *profile.CycleLength)
}

func IsValidPeriodLength(value int) bool {
	return value >= MinPeriodLength && value <= MaxPeriodLength
}

func IsValidCycleLength(value int) bool {
	return value >= MinCycleLength && value <= MaxCycleLength
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}
