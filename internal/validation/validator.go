package validation

import (
	"regexp"
	"strconv"
	"strings"

	"showcase/internal/domain"
)

const maxSearchTermLength = 200

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Validator provides request parameter validation
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ParseID parses a positive numeric path identifier
func (v *Validator) ParseID(field, raw string) (int64, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(field, raw)}
	}
	return id, nil
}

// ParsePage parses the page query parameter. An empty value means page 1. Whether the
// page has data is decided by pagination, so zero and negative pages pass through.
func (v *Validator) ParsePage(raw string) (int, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("page", raw)}
	}
	return page, nil
}

// ParseCategory parses a category query parameter, falling back to def when empty
func (v *Validator) ParseCategory(raw string, def int64) (int64, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("category", raw)}
	}
	return id, nil
}

// ValidateDrinkID checks that id is a hex document id
func (v *Validator) ValidateDrinkID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if !objectIDPattern.MatchString(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// ValidateSearchTerm bounds the length of a search term. An empty term matches everything.
func (v *Validator) ValidateSearchTerm(field, term string) domain.ValidationErrors {
	if n := len([]rune(term)); n > maxSearchTermLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, n, 0, maxSearchTermLength)}
	}
	return nil
}
