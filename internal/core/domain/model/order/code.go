package order

import (
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/pkg/errs"
)

const (
	codePrefix = "ORD-"
	codeDigits = 1_000_000
)

// Code is the short human-facing order reference printed on labels and chats.
// It is a display code, not an identity: two orders created in the same
// millisecond modulo 10^6 collide and the store rejects the second one.
type Code string

// GenerateCode derives a code from the last six digits of now in unix milliseconds.
func GenerateCode(now time.Time) Code {
	return Code(fmt.Sprintf("%s%06d", codePrefix, now.UnixMilli()%codeDigits))
}

// ParseCode accepts any non-blank code read back from storage.
func ParseCode(s string) (Code, error) {
	if strings.TrimSpace(s) == "" {
		return "", errs.NewValueIsRequiredError("orderCode")
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}
