package services

import "errors"

var (
	// Validation failures. Surfaced to callers as rejected requests.
	ErrInvalidCycleData     = errors.New("missing or invalid cycle data")
	ErrInvalidRole          = errors.New("invalid profile role")
	ErrReferralCodeRequired = errors.New("referral code is required for partner profiles")
	ErrInvalidBasicInfo     = errors.New("invalid basic profile information")

	// Not-found failures.
	ErrProfileNotFound     = errors.New("profile not found")
	ErrPartnerNotLinked    = errors.New("partner profile is not linked")
	ErrPartnerLinkBroken   = errors.New("linked profile no longer exists")
	ErrReferralCodeUnknown = errors.New("referral code does not match any profile")

	// Conflicts.
	ErrEmailTaken           = errors.New("email already registered")
	ErrProfileExists        = errors.New("profile already exists for this account")
	ErrReferralCodeConflict = errors.New("could not assign a unique referral code")

	// Credentials and OTP.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOTPInvalid         = errors.New("invalid or expired verification code")
)
