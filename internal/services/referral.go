package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/sheandsoul/shesoul/internal/security"
)

const (
	referralAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referralCodeMinLen  = 6
	referralCodeMaxLen  = 8
	referralSeedPrefix  = "SHESOUL"
	referralMaxAttempts = 5
)

// DeriveReferralCode deterministically maps a profile id to a short
// uppercase alphanumeric code. Collision resistance, not secrecy, is the
// point: the digest spreads ids across the 36^8 code space and the store's
// unique index catches the rest.
func DeriveReferralCode(profileID uint) (string, error) {
	digest := md5.Sum([]byte(fmt.Sprintf("%s%d", referralSeedPrefix, profileID)))
	digestHex := hex.EncodeToString(digest[:])

	code := make([]byte, 0, referralCodeMaxLen)
	for index := 0; index+2 <= len(digestHex) && len(code) < referralCodeMaxLen; index += 2 {
		pairValue, err := strconv.ParseInt(digestHex[index:index+2], 16, 32)
		if err != nil {
			return "", fmt.Errorf("decode digest pair: %w", err)
		}
		code = append(code, referralAlphabet[int(pairValue)%len(referralAlphabet)])
	}

	for len(code) < referralCodeMinLen {
		padding, err := security.RandomString(1, referralAlphabet)
		if err != nil {
			return "", err
		}
		code = append(code, padding[0])
	}

	if len(code) > referralCodeMaxLen {
		code = code[:referralCodeMaxLen]
	}
	return string(code), nil
}

// RandomReferralCode is the fallback when a derived code collides.
func RandomReferralCode() (string, error) {
	return security.RandomString(referralCodeMaxLen, referralAlphabet)
}

type ReferralProfileStore interface {
	ExistsByReferralCode(code string) (bool, error)
	UpdateByID(profileID uint, updates map[string]any) error
}

type ReferralService struct {
	profiles        ReferralProfileStore
	uniqueViolation func(error) bool
}

func NewReferralService(profiles ReferralProfileStore, uniqueViolation func(error) bool) *ReferralService {
	if uniqueViolation == nil {
		uniqueViolation = func(error) bool { return false }
	}
	return &ReferralService{profiles: profiles, uniqueViolation: uniqueViolation}
}

// AssignReferralCode generates and persists a unique referral code for a
// freshly created primary profile. The existence pre-check is only an
// optimization; the store's unique index on referral_code is the
// authoritative guard, so a concurrent duplicate surfaces as a unique
// violation here and is retried with a fully random code.
func (service *ReferralService) AssignReferralCode(profileID uint) (string, error) {
	candidate, err := DeriveReferralCode(profileID)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < referralMaxAttempts; attempt++ {
		taken, err := service.profiles.ExistsByReferralCode(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			err = service.profiles.UpdateByID(profileID, map[string]any{"referral_code": candidate})
			if err == nil {
				return candidate, nil
			}
			if !service.uniqueViolation(err) {
				return "", err
			}
		}

		if candidate, err = RandomReferralCode(); err != nil {
			return "", err
		}
	}

	return "", ErrReferralCodeConflict
}
