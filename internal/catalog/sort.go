package catalog

import (
	"sort"
	"strings"

	"hamshark/internal/model"
)

// Sort orders understood by SortBy.
const (
	SortPriceLowHigh    = "price-low-high"
	SortPriceHighLow    = "price-high-low"
	SortCaloriesLowHigh = "calories-low-high"
	SortCaloriesHighLow = "calories-high-low"
	SortProteinHighLow  = "protein-high-low"
	SortNameAZ          = "name-a-z"
	SortNameZA          = "name-z-a"
)

// SortBy returns a copy of items ordered by the given criterion. Sorts are
// stable with respect to ties; an unknown criterion leaves the order as-is.
func SortBy(items []model.MenuItem, sortBy string) []model.MenuItem {
	sorted := make([]model.MenuItem, len(items))
	copy(sorted, items)

	var less func(a, b *model.MenuItem) bool
	switch strings.ToLower(sortBy) {
	case SortPriceLowHigh:
		less = func(a, b *model.MenuItem) bool {
			return a.PriceDecimal().LessThan(b.PriceDecimal())
		}
	case SortPriceHighLow:
		less = func(a, b *model.MenuItem) bool {
			return a.PriceDecimal().GreaterThan(b.PriceDecimal())
		}
	case SortCaloriesLowHigh:
		less = func(a, b *model.MenuItem) bool {
			return a.NutritionOrZero().Calories < b.NutritionOrZero().Calories
		}
	case SortCaloriesHighLow:
		less = func(a, b *model.MenuItem) bool {
			return a.NutritionOrZero().Calories > b.NutritionOrZero().Calories
		}
	case SortProteinHighLow:
		less = func(a, b *model.MenuItem) bool {
			return a.NutritionOrZero().Protein > b.NutritionOrZero().Protein
		}
	case SortNameAZ:
		less = func(a, b *model.MenuItem) bool {
			return a.Name < b.Name
		}
	case SortNameZA:
		less = func(a, b *model.MenuItem) bool {
			return a.Name > b.Name
		}
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}
