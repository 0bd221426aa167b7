package dto

import (
	"strings"

	"showcase/internal/domain"
)

func trim(s string) string { return strings.TrimSpace(s) }

// trimPtr trims a present value and keeps absent ones absent.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// requiredIfPresent reports fields that are present but blank, in the given order.
func requiredIfPresent(fields map[string]*string, order ...string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	for _, name := range order {
		if v := fields[name]; v != nil && strings.TrimSpace(*v) == "" {
			errs = append(errs, domain.NewMissingFieldError(name))
		}
	}
	return errs
}
