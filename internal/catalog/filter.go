// Package catalog provides pure, side-effect-free selection and ordering
// over menu items. Missing optional nutrition fields never raise; they are
// treated as zero so browsing stays usable over partial data.
package catalog

import (
	"strings"

	"hamshark/internal/model"

	"github.com/shopspring/decimal"
)

// Available returns only the items currently offered.
func Available(items []model.MenuItem) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable {
			out = append(out, item)
		}
	}
	return out
}

// ByCuisine selects available items whose cuisine matches, case-insensitively.
func ByCuisine(items []model.MenuItem, cuisine string) []model.MenuItem {
	return selectAvailable(items, func(item *model.MenuItem) bool {
		return strings.EqualFold(item.Cuisine, cuisine)
	})
}

// ByCategory selects available items whose category matches, case-insensitively.
func ByCategory(items []model.MenuItem, category string) []model.MenuItem {
	return selectAvailable(items, func(item *model.MenuItem) bool {
		return strings.EqualFold(item.Category, category)
	})
}

// BySpiceLevel selects available items at the given spice level.
func BySpiceLevel(items []model.MenuItem, level string) []model.MenuItem {
	return selectAvailable(items, func(item *model.MenuItem) bool {
		return strings.EqualFold(item.SpiceLevel, level)
	})
}

// ByDiet applies a dietary filter. Recognised filters are vegetarian,
// vegan, high-protein (protein >= 25) and low-carb (carbs <= 20); any
// other key falls back to tag containment.
func ByDiet(items []model.MenuItem, diet string) []model.MenuItem {
	switch strings.ToLower(diet) {
	case "vegetarian":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.IsVegetarian
		})
	case "vegan":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.IsVegan
		})
	case "high-protein":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.NutritionOrZero().Protein >= 25
		})
	case "low-carb":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.Nutrition != nil && item.Nutrition.Carbs <= 20
		})
	default:
		tag := strings.ToLower(diet)
		return selectAvailable(items, func(item *model.MenuItem) bool {
			for _, t := range item.Tags {
				if strings.EqualFold(t, tag) {
					return true
				}
			}
			return false
		})
	}
}

// ExcludeAllergens drops any item whose allergen list intersects the
// exclusion set. Allergen matching is case-insensitive.
func ExcludeAllergens(items []model.MenuItem, exclude []string) []model.MenuItem {
	if len(exclude) == 0 {
		return items
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, a := range exclude {
		excluded[strings.ToLower(a)] = struct{}{}
	}
	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		conflict := false
		for _, a := range item.Allergens {
			if _, ok := excluded[strings.ToLower(a)]; ok {
				conflict = true
				break
			}
		}
		if !conflict {
			out = append(out, item)
		}
	}
	return out
}

// ByPriceRange selects available items whose price falls inside the
// inclusive [min, max] range.
func ByPriceRange(items []model.MenuItem, min, max decimal.Decimal) []model.MenuItem {
	return selectAvailable(items, func(item *model.MenuItem) bool {
		p := item.PriceDecimal()
		return p.GreaterThanOrEqual(min) && p.LessThanOrEqual(max)
	})
}

// ByCalorieRange selects available items with nutrition data whose
// calories fall inside the inclusive [min, max] range.
func ByCalorieRange(items []model.MenuItem, min, max float64) []model.MenuItem {
	return selectAvailable(items, func(item *model.MenuItem) bool {
		if item.Nutrition == nil {
			return false
		}
		return item.Nutrition.Calories >= min && item.Nutrition.Calories <= max
	})
}

// Search matches the query, case-insensitively, against name, description,
// ingredient names and tags. An empty query returns all available items.
func Search(items []model.MenuItem, query string) []model.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Available(items)
	}
	return selectAvailable(items, func(item *model.MenuItem) bool {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			return true
		}
		for _, ing := range item.Ingredients {
			if strings.Contains(strings.ToLower(ing), q) {
				return true
			}
		}
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

// selectAvailable keeps available items matching the predicate, preserving
// input order.
func selectAvailable(items []model.MenuItem, match func(*model.MenuItem) bool) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	for i := range items {
		if items[i].IsAvailable && match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
