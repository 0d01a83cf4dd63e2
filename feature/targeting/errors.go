package targeting

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var (
	// ErrInvalidGender indicates a gender outside the catalog.
	ErrInvalidGender = errors.New("Gender can only be male or female")
	// ErrInvalidCountries is matched by *InvalidCountriesError.
	ErrInvalidCountries = errors.New("invalid countries")
	// ErrMissingCountries indicates that no country was given.
	ErrMissingCountries = errors.New("Need to set :countries")
	// ErrMissingTargetingMode indicates that neither keywords nor connections were given.
	ErrMissingTargetingMode = errors.New("Need to set :keywords or :connections")
	// ErrInvalidKeyword is matched by *InvalidKeywordError.
	ErrInvalidKeyword = errors.New("invalid keyword")
	// ErrInvalidAgeClass is matched by *InvalidAgeClassError.
	ErrInvalidAgeClass = errors.New("invalid age class")
	// ErrMissingAccount indicates that no ad account was given or configured.
	ErrMissingAccount = errors.New("ad account is required")
	// ErrMalformedReach indicates a reach estimate payload without a users count.
	ErrMalformedReach = errors.New("reach estimate has no users count")
	// ErrBatchMisaligned marks items the batch endpoint returned no response for.
	ErrBatchMisaligned = errors.New("batch response does not align with requests")
)

// InvalidCountriesError lists the country codes that failed validation.
type InvalidCountriesError struct {
	Countries []string
}

func (e *InvalidCountriesError) Error() string {
	quoted := make([]string, len(e.Countries))
	for i, c := range e.Countries {
		quoted[i] = quote(c)
	}
	return "Invalid countrie(s): [" + strings.Join(quoted, ", ") + "]"
}

func (e *InvalidCountriesError) Is(target error) bool {
	return target == ErrInvalidCountries
}

// InvalidKeywordError carries the keyword the Graph API rejected.
type InvalidKeywordError struct {
	Keyword string
}

func (e *InvalidKeywordError) Error() string {
	return e.Keyword
}

func (e *InvalidKeywordError) Is(target error) bool {
	return target == ErrInvalidKeyword
}

// InvalidAgeClassError carries an age class the catalog has no range for.
type InvalidAgeClassError struct {
	AgeClass string
}

func (e *InvalidAgeClassError) Error() string {
	return "Age class can only be young or old, got " + e.AgeClass
}

func (e *InvalidAgeClassError) Is(target error) bool {
	return target == ErrInvalidAgeClass
}

// IsValidationError reports whether err is caused by invalid targeting input
// rather than by the Graph API.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidGender,
		ErrInvalidCountries,
		ErrMissingCountries,
		ErrMissingTargetingMode,
		ErrInvalidKeyword,
		ErrInvalidAgeClass,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// quote formats s as a JSON string without HTML escaping, so messages echo the
// input as it was given.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
