package services

import (
	"errors"
	"testing"

	"github.com/sheandsoul/shesoul/internal/models"
)

func newProfileServiceForTest(store *fakeProfileStore) *ProfileService {
	return NewProfileService(store, NewReferralService(store, isFakeUniqueViolation))
}

func TestCreateProfilePrimaryUserGetsReferralCode(t *testing.T) {
	t.Parallel()

	store := newFakeProfileStore()
	service := newProfileServiceForTest(store)

	profile, err := service.CreateProfile(1, ProfileInput{Name: "Asha", NickName: "Ash", Role: "USER"})
	if err != nil {
		t.Fatalf("CreateProfile returned error: %v", err)
	}
	if profile.Role != models.RolePrimaryUser {
		t.Fatalf("expected USER role, got %q", profile.Role)
	}
	if profile.ReferralCode == "" {
		t.Fatal("primary user must receive a referral code at creation")
	}
	if profile.ReferredCode != "" {
		t.Fatal("primary user must not carry a referred_code")
	}
	if stored, _ := store.FindByReferralCode(profile.ReferralCode); stored.UserID != 1 {
		t.Fatal("referral code must be persisted as a lookup key")
	}
}

func TestCreateProfilePartnerLinksToExistingCode(t *testing.T) {
	t.Parallel()

	store := newFakeProfileStore()
	service := newProfileServiceForTest(store)

	primary, err := service.CreateProfile(1, ProfileInput{Name: "Asha", Role: "USER"})
	if err != nil {
		t.Fatalf("create primary: %v", err)
	}

	partner, err := service.CreateProfile(2, ProfileInput{Name: "Dev", Role: "PARTNER", ReferredCode: primary.ReferralCode})
	if err != nil {
		t.Fatalf("create partner: %v", err)
	}
	if partner.ReferredCode != primary.ReferralCode {
		t.Fatalf("expected referred_code %q, got %q", primary.ReferralCode, partner.ReferredCode)
	}
	if partner.ReferralCode != "" {
		t.Fatal("partner must not receive a referral code of their own")
	}
}

func TestCreateProfileRejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		userID  uint
		input   ProfileInput
		wantErr error
	}{
		{
			name:    "blank name",
			userID:  2,
			input:   ProfileInput{Name: "   ", Role: "USER"},
			wantErr: ErrInvalidBasicInfo,
		},
		{
			name:    "unknown role",
			userID:  2,
			input:   ProfileInput{Name: "Dev", Role: "ADMIN"},
			wantErr: ErrInvalidRole,
		},
		{
			name:    "partner without referred code",
			userID:  2,
			input:   ProfileInput{Name: "Dev", Role: "PARTNER"},
			wantErr: ErrReferralCodeRequired,
		},
		{
			name:    "partner with unknown referred code",
			userID:  2,
			input:   ProfileInput{Name: "Dev", Role: "PARTNER", ReferredCode: "NOPE99"},
			wantErr: ErrReferralCodeUnknown,
		},
		{
			name:    "second profile for the same account",
			userID:  1,
			input:   ProfileInput{Name: "Asha Again", Role: "USER"},
			wantErr: ErrProfileExists,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeProfileStore()
			service := newProfileServiceForTest(store)
			if _, err := service.CreateProfile(1, ProfileInput{Name: "Asha", Role: "USER"}); err != nil {
				t.Fatalf("seed primary profile: %v", err)
			}

			if _, err := service.CreateProfile(testCase.userID, testCase.input); !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestUpdateMenstrualDataValidatesRanges(t *testing.T) {
	t.Parallel()

	store := newFakeProfileStore()
	service := newProfileServiceForTest(store)
	if _, err := service.CreateProfile(1, ProfileInput{Name: "Asha", Role: "USER"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	start := mustParseDay(t, "2024-01-01")
	if err := service.UpdateMenstrualData(1, start, 5, 28); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}

	profile, err := service.GetByUserID(1)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if profile.LastPeriodEndDate == nil || profile.LastPeriodEndDate.Format("2006-01-02") != "2024-01-05" {
		t.Fatalf("expected derived period end 2024-01-05, got %v", profile.LastPeriodEndDate)
	}

	invalid := []struct {
		name         string
		periodLength int
		cycleLength  int
	}{
		{name: "period zero", periodLength: 0, cycleLength: 28},
		{name: "period too long", periodLength: 32, cycleLength: 28},
		{name: "cycle too short", periodLength: 5, cycleLength: 20},
		{name: "cycle too long", periodLength: 5, cycleLength: 36},
	}
	for _, testCase := range invalid {
		if err := service.UpdateMenstrualData(1, start, testCase.periodLength, testCase.cycleLength); !errors.Is(err, ErrInvalidCycleData) {
			t.Fatalf("%s: expected ErrInvalidCycleData, got %v", testCase.name, err)
		}
	}

	if err := service.UpdateMenstrualData(42, start, 5, 28); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound for unknown account, got %v", err)
	}
}

func TestUpdateBasicInfoValidation(t *testing.T) {
	t.Parallel()

	store := newFakeProfileStore()
	service := newProfileServiceForTest(store)
	if _, err := service.CreateProfile(1, ProfileInput{Name: "Asha", Role: "USER"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	if err := service.UpdateBasicInfo(1, BasicInfoUpdate{Age: intPtr(31), Height: float64Ptr(164.5), Name: stringPtr("Asha K")}); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}
	profile, err := service.GetByUserID(1)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if profile.Name != "Asha K" || profile.Age == nil || *profile.Age != 31 {
		t.Fatalf("updates not applied: %+v", profile)
	}

	rejected := []BasicInfoUpdate{
		{Age: intPtr(-1)},
		{Age: intPtr(121)},
		{Height: float64Ptr(0)},
		{Weight: float64Ptr(-3)},
		{Name: stringPtr("  ")},
	}
	for index, update := range rejected {
		if err := service.UpdateBasicInfo(1, update); !errors.Is(err, ErrInvalidBasicInfo) {
			t.Fatalf("case %d: expected ErrInvalidBasicInfo, got %v", index, err)
		}
	}
}

func TestSubmitRiskAssessmentPersistsResult(t *testing.T) {
	t.Parallel()

	store := newFakeProfileStore()
	service := newProfileServiceForTest(store)
	if _, err := service.CreateProfile(1, ProfileInput{Name: "Asha", Role: "USER"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	answers := map[string]string{
		"family_history": "YES_FIRST_DEGREE",
		"age_group":      "AGE_50_PLUS",
	}
	score, level, err := service.SubmitRiskAssessment(1, answers)
	if err != nil {
		t.Fatalf("SubmitRiskAssessment returned error: %v", err)
	}
	if score != 9 || level != RiskModerate {
		t.Fatalf("expected (9, MODERATE), got (%d, %s)", score, level)
	}

	profile, err := service.GetByUserID(1)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if profile.RiskLevel != string(RiskModerate) {
		t.Fatalf("risk level not persisted, got %q", profile.RiskLevel)
	}
	if got, ok := profile.RiskAssessmentData["family_history"].(string); !ok || got != "YES_FIRST_DEGREE" {
		t.Fatalf("answers not persisted, got %v", profile.RiskAssessmentData)
	}
}

func TestUpdatePreferredServiceValidation(t *testing.T) {
	t.Parallel()

	store := newFakeProfileStore()
	service := newProfileServiceForTest(store)
	if _, err := service.CreateProfile(1, ProfileInput{Name: "Asha", Role: "USER"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	if err := service.UpdatePreferredService(1, "menstruation"); err != nil {
		t.Fatalf("known service type rejected: %v", err)
	}
	if err := service.UpdatePreferredService(1, "ASTROLOGY"); !errors.Is(err, ErrInvalidBasicInfo) {
		t.Fatalf("expected ErrInvalidBasicInfo for unknown service type, got %v", err)
	}
}
