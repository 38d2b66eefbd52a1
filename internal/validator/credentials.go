package validator

import (
	"regexp"
	"time"
	"unicode/utf8"
)

// Credential rules for registration and profile updates. Each function
// returns every violated rule in order, never just the first, so the client
// can show the complete list at once.

const (
	// DateLayout is the wire format for dates of birth.
	DateLayout = "2006-01-02"

	minAge = 16
	maxAge = 100

	maxNameLen  = 100
	minPassword = 8
)

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe  = regexp.MustCompile(`^(\+4|0)[0-9]{9}$`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[!@#$%^&*(),.?"':{}|<>]`)
)

// hasTripleRepeat reports whether three or more identical characters appear
// consecutively. RE2 has no backreferences, so this is a plain scan.
func hasTripleRepeat(s string) bool {
	runes := []rune(s)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return true
		}
	}
	return false
}

// ValidateName checks the display name.
func ValidateName(name string) []string {
	var errs []string
	if name == "" {
		return []string{"Name is required"}
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, "Name must be at most 100 characters long")
	}
	return errs
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(email string) []string {
	if email == "" {
		return []string{"Email is required"}
	}
	if !emailRe.MatchString(email) {
		return []string{"Invalid email format"}
	}
	return nil
}

// ValidatePassword collects every violated strength rule.
func ValidatePassword(password string) []string {
	if password == "" {
		return []string{"Password is required"}
	}

	var errs []string
	// Length is counted in characters, not bytes, so multibyte passwords
	// are measured the way the user typed them.
	if utf8.RuneCountInString(password) < minPassword {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if !upperRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one number")
	}
	if !symbolRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one special character")
	}
	if hasTripleRepeat(password) {
		errs = append(errs, "Password cannot contain three or more consecutive identical characters")
	}
	return errs
}

// ValidatePhoneNumber checks the national format: +4 or 0 prefix followed by
// exactly nine digits.
func ValidatePhoneNumber(phone string) []string {
	if phone == "" {
		return []string{"Phone number is required"}
	}
	if !phoneRe.MatchString(phone) {
		return []string{"Phone number must be in national format (+4 or 0 followed by 9 digits)"}
	}
	return nil
}

// ValidateDateOfBirth parses the date and checks the age bounds as of today.
func ValidateDateOfBirth(dob string) []string {
	if dob == "" {
		return []string{"Date of birth is required"}
	}
	parsed, err := time.Parse(DateLayout, dob)
	if err != nil {
		return []string{"Date of birth must be in YYYY-MM-DD format"}
	}

	age := AgeAt(parsed, time.Now())
	var errs []string
	if age < minAge {
		errs = append(errs, "User must be at least 16 years old")
	}
	if age > maxAge {
		errs = append(errs, "User cannot be older than 100 years")
	}
	return errs
}

// AgeAt computes whole years elapsed from dob to the reference date. The year
// difference is reduced by one when the birthday has not yet occurred in the
// reference year.
func AgeAt(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}
