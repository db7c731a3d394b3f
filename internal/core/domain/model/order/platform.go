package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Platform is the intake channel an order came through.
type Platform string

const (
	Instagram Platform = "instagram"
	WhatsApp  Platform = "whatsapp"
	Facebook  Platform = "facebook"
	Website   Platform = "website"
)

func Platforms() []Platform {
	return []Platform{Instagram, WhatsApp, Facebook, Website}
}

func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p Platform) Validate() error {
	for _, known := range Platforms() {
		if p == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("platform", fmt.Errorf("%q is not a supported platform", string(p)))
}

func (p Platform) String() string {
	return string(p)
}
