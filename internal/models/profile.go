package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RolePrimaryUser = "USER"
	RolePartner     = "PARTNER"
)

const (
	ServiceMenstruation = "MENSTRUATION"
	ServiceBreastHealth = "BREAST_HEALTH"
	ServiceMentalHealth = "MENTAL_HEALTH"
	ServicePCOS         = "PCOS"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// Profile carries everything the app knows about an account beyond its
// credentials. Role is fixed at creation: a USER profile owns cycle data and a
// referral code, a PARTNER profile only points at a USER via referred_code.
//
// The schema, including the unique indexes on user_id and referral_code,
// lives in the embedded SQL migrations; nothing here is auto-migrated.
type Profile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
	NickName string `json:"nick_name"`
	Role     string `json:"user_type"`

	Age    *int     `json:"age"`
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`

	ReferralCode string `json:"referral_code,omitempty"`
	ReferredCode string `json:"referred_code,omitempty"`

	PreferredServiceType string `json:"preferred_service_type,omitempty"`

	PeriodLength        *int       `json:"period_length"`
	CycleLength         *int       `json:"cycle_length"`
	LastPeriodStartDate *time.Time `json:"last_period_start_date"`
	LastPeriodEndDate   *time.Time `json:"last_period_end_date"`

	DeviceToken  string `json:"device_token,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`

	RiskAssessmentData datatypes.JSONMap `json:"risk_assessment_data,omitempty"`
	RiskLevel          string            `json:"risk_level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (profile *Profile) IsPrimaryUser() bool {
	return profile != nil && profile.Role == RolePrimaryUser
}

func (profile *Profile) IsPartner() bool {
	return profile != nil && profile.Role == RolePartner
}
