package validate

import (
	"fmt"
	"regexp"
	"time"
)

// Language codes are two or three lowercase letters (en, hi, ta, te, ...).
var langRx = regexp.MustCompile(`^[a-z]{2,3}$`)

const birthDateLayout = "2006-01-02"

// NonEmpty rejects empty required string fields.
func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// MaxLen bounds optional string fields.
func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// BirthDate parses an ISO calendar date.
func BirthDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, fmt.Errorf("birthDate is required")
	}
	d, err := time.Parse(birthDateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("birthDate must be a valid YYYY-MM-DD date")
	}
	return d, nil
}

// Language checks the shape of a language code; supported-language
// semantics belong to the translation layer.
func Language(v string) error {
	if v == "" {
		return nil
	}
	if !langRx.MatchString(v) {
		return fmt.Errorf("language must be a lowercase ISO code")
	}
	return nil
}

// Predict validates the insight request fields that the pipeline depends on.
func Predict(name, birthDate string) (time.Time, error) {
	if err := NonEmpty("name", name); err != nil {
		return time.Time{}, err
	}
	if err := MaxLen("name", name, 100); err != nil {
		return time.Time{}, err
	}
	return BirthDate(birthDate)
}
