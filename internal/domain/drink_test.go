package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrink_Validate(t *testing.T) {
	valid := Drink{Title: "Water", Recipe: []Ingredient{{Name: "Water", Color: "blue", Parts: 1}}}
	assert.NoError(t, valid.Validate())

	invalid := Drink{Recipe: []Ingredient{{Name: "", Color: "blue", Parts: 0}}}
	var errs ValidationErrors
	require.ErrorAs(t, invalid.Validate(), &errs)
	fields := []string{}
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"title", "recipe[0].name", "recipe[0].parts"}, fields)
}

func TestDrinkPatch(t *testing.T) {
	title := "Flat White"
	patch := DrinkPatch{Title: &title}
	require.NoError(t, patch.Validate())

	empty := ""
	assert.Error(t, DrinkPatch{Title: &empty}.Validate())
	assert.Error(t, DrinkPatch{Recipe: []Ingredient{}}.Validate())
	blank := "   "
	assert.Error(t, DrinkPatch{Title: &blank}.Validate())
}
