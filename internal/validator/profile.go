package validator

import "unicode/utf8"

// Trainer profile text bounds, validated at the service boundary so both
// violations are reported together on create. Bounds count characters, not
// bytes.

const (
	minExperience   = 5
	maxExperience   = 200
	minIntroduction = 10
	maxIntroduction = 500
)

func ValidateExperience(experience string) []string {
	if experience == "" {
		return []string{"Experience is required"}
	}
	if n := utf8.RuneCountInString(experience); n < minExperience || n > maxExperience {
		return []string{"Experience must be between 5 and 200 characters"}
	}
	return nil
}

func ValidateIntroduction(introduction string) []string {
	if introduction == "" {
		return []string{"Introduction is required"}
	}
	if n := utf8.RuneCountInString(introduction); n < minIntroduction || n > maxIntroduction {
		return []string{"Introduction must be between 10 and 500 characters"}
	}
	return nil
}
