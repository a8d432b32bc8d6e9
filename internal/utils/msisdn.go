package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// ChadCountryCode is the international dialling prefix for Chad
const ChadCountryCode = "235"

// Mobile ranges: Airtel 6x/9x, Moov (Tigo) 7x/8x
var chadMobile = regexp.MustCompile(`^[6-9][0-9]{7}$`)

// NormalizeMSISDN reduces a Chad mobile number to its 8 local digits.
// "+235 66 11 22 33", "00235-66112233" and "66112233" all yield "66112233".
func NormalizeMSISDN(msisdn string) (string, error) {
	stripped := strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "").Replace(msisdn)
	stripped = strings.TrimPrefix(stripped, "+")
	stripped = strings.TrimPrefix(stripped, "00")

	if len(stripped) == len(ChadCountryCode)+8 && strings.HasPrefix(stripped, ChadCountryCode) {
		stripped = stripped[len(ChadCountryCode):]
	}

	if !chadMobile.MatchString(stripped) {
		return "", fmt.Errorf("invalid Chad mobile number %q", msisdn)
	}

	return stripped, nil
}
