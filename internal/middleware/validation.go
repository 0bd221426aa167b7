package middleware

import (
	"showcase/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedIDKey   = "validated_id"
	ValidatedPageKey = "validated_page"
)

// ValidationMiddleware parses and validates path and query parameters before handlers run
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam parses the numeric :id path parameter
func (vm *ValidationMiddleware) ValidateIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, errs := vm.validator.ParseID("id", c.Params("id"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// ValidateDrinkIDParam checks the :id path parameter is a document id
func (vm *ValidationMiddleware) ValidateDrinkIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateDrinkID(id); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// ValidatePageQuery parses the page query parameter, defaulting to 1
func (vm *ValidationMiddleware) ValidatePageQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, errs := vm.validator.ParsePage(c.Query("page"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedPageKey, page)
		return c.Next()
	}
}

// ValidatedID returns the numeric id stored by ValidateIDParam
func ValidatedID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(ValidatedIDKey).(int64)
	return id
}

// ValidatedDrinkID returns the document id stored by ValidateDrinkIDParam
func ValidatedDrinkID(c *fiber.Ctx) string {
	id, _ := c.Locals(ValidatedIDKey).(string)
	return id
}

// ValidatedPage returns the page stored by ValidatePageQuery
func ValidatedPage(c *fiber.Ctx) int {
	page, ok := c.Locals(ValidatedPageKey).(int)
	if !ok {
		return 1
	}
	return page
}
