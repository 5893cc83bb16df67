package security

const digitAlphabet = "0123456789"

// RandomNumericCode returns a numeric one-time code of the requested length.
func RandomNumericCode(length int) (string, error) {
	return RandomString(length, digitAlphabet)
}
