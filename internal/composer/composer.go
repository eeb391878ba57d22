// Package composer builds user-defined meals from the fixed ingredient
// reference table and converts them into catalogue-compatible menu items.
package composer

import (
	"fmt"
	"strings"

	"hamshark/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Meal sizes and their price/macro multipliers.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

var sizeMultipliers = map[string]decimal.Decimal{
	SizeSmall:  decimal.RequireFromString("0.8"),
	SizeMedium: decimal.RequireFromString("1.0"),
	SizeLarge:  decimal.RequireFromString("1.3"),
}

// Per-ingredient fiber and sodium are flat contributions that do NOT scale
// with meal size, unlike the four macros. This mirrors the product's
// simplified estimate and is intentional, not a rounding defect.
const (
	fiberPerIngredient  = 2.0
	sodiumPerIngredient = 200.0
)

// CustomMeal is a user-assembled dish. It exists only long enough to be
// turned into a cart line; it is not persisted per-order.
type CustomMeal struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Ingredients []string              `json:"ingredients"`
	Size        string                `json:"size"`
	BasePrice   decimal.Decimal       `json:"basePrice"`
	Nutrition   model.NutritionTotals `json:"nutrition"`
}

// Compose builds a custom meal from the selected ingredient names and
// size. It fails with a domain error when the name is blank or no
// ingredients are selected; unknown ingredient names are ignored.
func Compose(name string, selected []string, size string) (*CustomMeal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyMealName
	}
	if len(selected) == 0 {
		return nil, model.ErrNoIngredients
	}

	multiplier, ok := sizeMultipliers[size]
	if !ok {
		return nil, model.NewDomainError(model.ErrCodeInvalidPayload,
			fmt.Sprintf("unknown meal size %q", size))
	}

	chosen := lookup(selected)
	mult, _ := multiplier.Float64()

	price := decimal.Zero
	var nutrition model.NutritionTotals
	for _, ing := range chosen {
		price = price.Add(decimal.NewFromInt(ing.Price))
		nutrition.Calories += ing.Calories * mult
		nutrition.Protein += ing.Protein * mult
		nutrition.Carbs += ing.Carbs * mult
		nutrition.Fat += ing.Fat * mult
		nutrition.Fiber += fiberPerIngredient
		nutrition.Sodium += sodiumPerIngredient
	}
	price = price.Mul(multiplier)

	return &CustomMeal{
		ID:          "custom-" + uuid.NewString(),
		Name:        name,
		Ingredients: selected,
		Size:        size,
		BasePrice:   price,
		Nutrition:   nutrition,
	}, nil
}

// MenuItem synthesizes a catalogue-compatible item for the meal.
// Vegetarian/vegan flags and allergens are heuristics over the fixed
// ingredient table, not general allergen inference: Chicken breaks
// vegetarian, Paneer breaks vegan and adds a dairy allergen.
func (m *CustomMeal) MenuItem() model.MenuItem {
	contains := func(name string) bool {
		for _, ing := range m.Ingredients {
			if ing == name {
				return true
			}
		}
		return false
	}

	vegetarian := !contains("Chicken")
	allergens := []string{}
	if contains("Paneer") {
		allergens = append(allergens, "dairy")
	}

	nutrition := model.Nutrition{
		Calories: m.Nutrition.Calories,
		Protein:  m.Nutrition.Protein,
		Carbs:    m.Nutrition.Carbs,
		Fat:      m.Nutrition.Fat,
		Fiber:    m.Nutrition.Fiber,
		Sodium:   m.Nutrition.Sodium,
	}

	return model.MenuItem{
		ID:           m.ID,
		Name:         "Custom: " + m.Name,
		Description:  "Your custom creation with: " + strings.Join(m.Ingredients, ", "),
		Price:        m.BasePrice.String(),
		Category:     "Custom",
		Cuisine:      "Custom",
		IsVegetarian: vegetarian,
		IsVegan:      vegetarian && !contains("Paneer"),
		SpiceLevel:   "mild",
		Nutrition:    &nutrition,
		Ingredients:  m.Ingredients,
		Allergens:    allergens,
		Tags:         []string{"custom", "fresh", "personalized"},
		IsAvailable:  true,
	}
}
