package core

import (
	"regexp"
	"strings"
)

// validation.go checks registration submissions before any store access.
// Failures are ErrInvalidArgument and never reach the backing service.

var (
	// emailPattern accepts the standard local@domain.tld shape.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// phonePattern accepts 10 to 15 decimal digits.
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// validateRegister checks that all nine fields of a registration are present
// and well-formed.
func validateRegister(in RegisterInput) error {
	required := []struct {
		field, value string
	}{
		{"companyName", in.CompanyName},
		{"eventId", in.EventID},
		{"name", in.Registrant.Name},
		{"phone", in.Registrant.Phone},
		{"email", in.Registrant.Email},
		{"gender", in.Registrant.Gender},
		{"college", in.Registrant.College},
		{"status", in.Registrant.Status},
		{"nationalId", in.Registrant.NationalID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalidf("%s is required", r.field)
		}
	}

	if !emailPattern.MatchString(in.Registrant.Email) {
		return invalidf("invalid email address")
	}
	if !phonePattern.MatchString(in.Registrant.Phone) {
		return invalidf("phone must be 10-15 digits")
	}
	return nil
}
