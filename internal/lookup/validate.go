package lookup

import (
	"strings"

	"lookupagg/pkg/platform/sentinel"
)

const (
	mobileNumberLength = 10
	identifierLength   = 12
	identifierField    = "id_number"
)

// ParseMobileNumber validates the raw num parameter. Surrounding whitespace is
// ignored; what remains must be exactly ten ASCII digits.
func ParseMobileNumber(raw string) (MobileNumber, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", newError(KindInvalidInput, MessageMissingNumber, sentinel.ErrInvalidInput)
	}
	if len(s) != mobileNumberLength || !isASCIIDigits(s) {
		return "", newError(KindInvalidInput, MessageInvalidNumber, sentinel.ErrInvalidInput)
	}
	return MobileNumber(s), nil
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
