package domain

import (
	"fmt"
	"strings"
)

// Ingredient is one layer of a drink recipe
type Ingredient struct {
	Name  string
	Color string
	Parts int
}

// Drink is a coffee shop menu item
type Drink struct {
	ID     string
	Title  string
	Recipe []Ingredient
}

// Validate checks the title and every recipe ingredient
func (d *Drink) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if len(d.Recipe) == 0 {
		errs = append(errs, NewMissingFieldError("recipe"))
	}
	errs = append(errs, validateRecipe(d.Recipe)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateRecipe(recipe []Ingredient) ValidationErrors {
	var errs ValidationErrors
	for i, ing := range recipe {
		if strings.TrimSpace(ing.Name) == "" {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("recipe[%d].name", i)))
		}
		if strings.TrimSpace(ing.Color) == "" {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("recipe[%d].color", i)))
		}
		if ing.Parts <= 0 {
			errs = append(errs, NewValidationError(fmt.Sprintf("recipe[%d].parts", i), "parts must be a positive integer"))
		}
	}
	return errs
}

// DrinkPatch is an immutable set of drink changes; nil fields are left untouched.
type DrinkPatch struct {
	Title  *string
	Recipe []Ingredient
}

// Validate checks only the fields present in the patch
func (p DrinkPatch) Validate() error {
	var errs ValidationErrors
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if p.Recipe != nil {
		if len(p.Recipe) == 0 {
			errs = append(errs, NewMissingFieldError("recipe"))
		}
		errs = append(errs, validateRecipe(p.Recipe)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
