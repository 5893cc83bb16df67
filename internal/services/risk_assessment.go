package services

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

const (
	moderateRiskThreshold = 5
	highRiskThreshold     = 10
)

// riskWeights maps question key -> answer code -> score delta. Only these
// pairs contribute; anything else in a submission is ignored.
var riskWeights = map[string]map[string]int{
	"menstruation_start_age": {
		"MENSTRUATION_START_LT_12": 1,
	},
	"menopause_status": {
		"MENOPAUSE_YES_GT_55": 2,
	},
	"pregnancy_history": {
		"PREGNANCY_NO": 1,
	},
	"breastfeeding_history": {
		"BREASTFED_NO":         1,
		"BREASTFED_NA":         1,
		"BREASTFED_YES_GT_6MO": -1,
	},
	"alcohol_use": {
		"ALCOHOL_WEEKLY": 1,
		"ALCOHOL_DAILY":  2,
	},
	"smoking_status": {
		"SMOKING_OCCASIONALLY": 1,
		"SMOKING_REGULARLY":    2,
	},
	"hrt_use": {
		"HRT_YES_LT_5Y": 1,
		"HRT_YES_GT_5Y": 2,
	},
	"oral_contraceptives_use": {
		"OC_YES_LT_5Y": 1,
		"OC_YES_GT_5Y": 2,
	},
	"family_history": {
		"YES_FIRST_DEGREE": 5,
	},
	"personal_history_biopsy": {
		"YES_ATYPICAL_HYPERPLASIA": 4,
	},
	"age_group": {
		"AGE_50_PLUS": 4,
	},
}

// ScoreRiskAssessment sums the fixed weights for recognized answers and maps
// the total to a categorical level. Total function: any input map, including
// an empty one, yields a valid result and the score never goes negative.
func ScoreRiskAssessment(answers map[string]string) (int, RiskLevel) {
	score := 0
	for questionKey, answerCode := range answers {
		if deltas, known := riskWeights[questionKey]; known {
			score += deltas[answerCode]
		}
	}
	if score < 0 {
		score = 0
	}
	return score, ClassifyRiskScore(score)
}

func ClassifyRiskScore(score int) RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return RiskHigh
	case score >= moderateRiskThreshold:
		return RiskModerate
	default:
		return RiskLow
	}
}
