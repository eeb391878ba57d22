package catalog

import (
	"strings"

	"hamshark/internal/model"
)

// ByGoal selects available items suited to a nutrition goal:
// weight-loss (calories <= 400 and protein >= 15), muscle-gain
// (protein >= 25) and heart-healthy (fat <= 15 and sodium <= 600, sodium
// defaulting to zero when absent). Unknown goals return all available items.
func ByGoal(items []model.MenuItem, goal string) []model.MenuItem {
	switch strings.ToLower(goal) {
	case "weight-loss":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.Nutrition != nil &&
				item.Nutrition.Calories <= 400 &&
				item.Nutrition.Protein >= 15
		})
	case "muscle-gain":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.Nutrition != nil && item.Nutrition.Protein >= 25
		})
	case "heart-healthy":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.Nutrition != nil &&
				item.Nutrition.Fat <= 15 &&
				item.Nutrition.Sodium <= 600
		})
	default:
		return Available(items)
	}
}

// ByNutritionBenefit selects available items with a specific nutritional
// property: high-fiber (fiber >= 5), low-sodium (sodium <= 300) or
// balanced (protein 15-35%, carbs 45-65%, fat 20-35% of total macros).
func ByNutritionBenefit(items []model.MenuItem, benefit string) []model.MenuItem {
	switch strings.ToLower(benefit) {
	case "high-fiber":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.Nutrition != nil && item.Nutrition.Fiber >= 5
		})
	case "low-sodium":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			return item.Nutrition != nil && item.Nutrition.Sodium <= 300
		})
	case "balanced":
		return selectAvailable(items, func(item *model.MenuItem) bool {
			if item.Nutrition == nil {
				return false
			}
			total := item.Nutrition.Protein + item.Nutrition.Carbs + item.Nutrition.Fat
			if total == 0 {
				return false
			}
			protein := item.Nutrition.Protein / total
			carbs := item.Nutrition.Carbs / total
			fat := item.Nutrition.Fat / total
			return protein >= 0.15 && protein <= 0.35 &&
				carbs >= 0.45 && carbs <= 0.65 &&
				fat >= 0.20 && fat <= 0.35
		})
	default:
		return Available(items)
	}
}

// Popular returns up to eight available items tagged "popular".
func Popular(items []model.MenuItem) []model.MenuItem {
	popular := selectAvailable(items, func(item *model.MenuItem) bool {
		return item.HasTag("popular")
	})
	if len(popular) > 8 {
		popular = popular[:8]
	}
	return popular
}

// ChefSpecials returns available items tagged as chef specials.
func ChefSpecials(items []model.MenuItem) []model.MenuItem {
	return selectAvailable(items, func(item *model.MenuItem) bool {
		return item.HasTag("chef-special") || item.HasTag("chef's special")
	})
}

// StudentCombos returns available items tagged "student-combo".
func StudentCombos(items []model.MenuItem) []model.MenuItem {
	return selectAvailable(items, func(item *model.MenuItem) bool {
		return item.HasTag("student-combo")
	})
}

// RecommendedAtHour buckets recommendations by the hour of day:
// breakfast 06-10, lunch 11-15, snacks 16-18, dinner otherwise.
func RecommendedAtHour(items []model.MenuItem, hour int) []model.MenuItem {
	switch {
	case hour >= 6 && hour < 11:
		return selectAvailable(items, categoryContains("breakfast"))
	case hour >= 11 && hour < 16:
		return selectAvailable(items, categoryContains("lunch", "rice", "curry"))
	case hour >= 16 && hour < 19:
		return selectAvailable(items, categoryContains("snack", "street food"))
	default:
		return selectAvailable(items, categoryContains("dinner", "curry"))
	}
}

func categoryContains(substrings ...string) func(*model.MenuItem) bool {
	return func(item *model.MenuItem) bool {
		category := strings.ToLower(item.Category)
		for _, s := range substrings {
			if strings.Contains(category, s) {
				return true
			}
		}
		return false
	}
}
