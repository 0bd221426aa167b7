package dto

import "showcase/internal/domain"

// IngredientShort is a recipe entry without its name
type IngredientShort struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// IngredientLong is a full recipe entry
type IngredientLong struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// DrinkShort is the public view of a drink
type DrinkShort struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Recipe []IngredientShort `json:"recipe"`
}

// DrinkLong is the detailed view of a drink
type DrinkLong struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Recipe []IngredientLong `json:"recipe"`
}

// DrinksShortResponse lists drinks in their public form
// @Description Public drink menu
type DrinksShortResponse struct {
	Success bool         `json:"success"`
	Drinks  []DrinkShort `json:"drinks"`
}

// DrinksLongResponse lists drinks with full recipes
type DrinksLongResponse struct {
	Success bool        `json:"success"`
	Drinks  []DrinkLong `json:"drinks"`
}

// DeleteDrinkResponse confirms a deletion
type DeleteDrinkResponse struct {
	Success bool   `json:"success"`
	Delete  string `json:"delete"`
}

// DrinkRequest creates a drink
// @Description Request body for creating a drink
type DrinkRequest struct {
	Title  string           `json:"title"`
	Recipe []IngredientLong `json:"recipe"`
}

// Drink converts the request into a drink
func (r DrinkRequest) Drink() domain.Drink {
	return domain.Drink{Title: trim(r.Title), Recipe: toIngredients(r.Recipe)}
}

// DrinkPatchRequest patches a drink; absent fields are kept
type DrinkPatchRequest struct {
	Title  *string          `json:"title"`
	Recipe []IngredientLong `json:"recipe"`
}

// Patch converts the request into a domain patch with trimmed text
func (r DrinkPatchRequest) Patch() domain.DrinkPatch {
	patch := domain.DrinkPatch{Title: trimPtr(r.Title)}
	if r.Recipe != nil {
		patch.Recipe = toIngredients(r.Recipe)
	}
	return patch
}

func toIngredients(in []IngredientLong) []domain.Ingredient {
	out := make([]domain.Ingredient, len(in))
	for i, ing := range in {
		out[i] = domain.Ingredient{Name: trim(ing.Name), Color: trim(ing.Color), Parts: ing.Parts}
	}
	return out
}

func ToDrinkShort(d domain.Drink) DrinkShort {
	recipe := make([]IngredientShort, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = IngredientShort{Color: ing.Color, Parts: ing.Parts}
	}
	return DrinkShort{ID: d.ID, Title: d.Title, Recipe: recipe}
}

func ToDrinkLong(d domain.Drink) DrinkLong {
	recipe := make([]IngredientLong, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = IngredientLong{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return DrinkLong{ID: d.ID, Title: d.Title, Recipe: recipe}
}
