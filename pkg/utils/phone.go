package utils

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// DefaultPhoneRegion is used when a number carries no country code
const DefaultPhoneRegion = "US"

// FormatPhone renders a phone number in international format. Numbers that
// cannot be parsed or are not valid are returned trimmed but otherwise as given.
func FormatPhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = DefaultPhoneRegion
	}

	p, err := libphonenumber.Parse(raw, region)
	if err != nil || !libphonenumber.IsValidNumber(p) {
		return raw
	}
	return libphonenumber.Format(p, libphonenumber.INTERNATIONAL)
}
