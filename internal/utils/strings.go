package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// ReferenceAlphabet excludes characters that are easy to misread aloud or on
// a phone screen (0/O, 1/I/L).
const ReferenceAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

var merchantCodePattern = regexp.MustCompile(`^[A-Z0-9]{3,16}$`)

// GenerateReferenceCode returns a random reference of the given length
func GenerateReferenceCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("reference length must be positive, got %d", length)
	}

	max := big.NewInt(int64(len(ReferenceAlphabet)))
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		sb.WriteByte(ReferenceAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// NormalizeMerchantCode upper-cases and validates a merchant code
func NormalizeMerchantCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return code, merchantCodePattern.MatchString(code)
}

// SanitizeString removes control characters and collapses whitespace
func SanitizeString(s string) string {
	result := regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`).ReplaceAllString(s, " ")
	result = regexp.MustCompile(`\s+`).ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
