package security

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Referral codes and one-time codes both come through here, so
// the draw must be unbiased: random bytes beyond the largest whole multiple
// of the alphabet size are discarded rather than folded back in.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errors.New("length must be non-negative")
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", errors.New("alphabet must hold between 1 and 256 characters")
	}
	if length == 0 {
		return "", nil
	}

	acceptBelow := 256 - 256%len(alphabet)
	result := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(result) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, randomByte := range buffer {
			if int(randomByte) >= acceptBelow {
				continue
			}
			result = append(result, alphabet[int(randomByte)%len(alphabet)])
			if len(result) == length {
				break
			}
		}
	}
	return string(result), nil
}
