package model

import "github.com/shopspring/decimal"

// Nutrition holds the per-serving nutrition facts for a dish.
// Fiber and sodium are optional in the source data; absent values
// are treated as zero everywhere.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`
}

// NutritionTotals is an aggregate of Nutrition over weighted line items.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Add accumulates n scaled by quantity into the totals.
func (t *NutritionTotals) Add(n Nutrition, quantity int) {
	q := float64(quantity)
	t.Calories += n.Calories * q
	t.Protein += n.Protein * q
	t.Carbs += n.Carbs * q
	t.Fat += n.Fat * q
	t.Fiber += n.Fiber * q
	t.Sodium += n.Sodium * q
}

// MenuItem represents a catalogue entry. Items are immutable once seeded.
type MenuItem struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Description  string     `json:"description" db:"description"`
	Price        string     `json:"price" db:"price"`
	Category     string     `json:"category" db:"category"`
	Cuisine      string     `json:"cuisine" db:"cuisine"`
	IsVegetarian bool       `json:"isVegetarian" db:"is_vegetarian"`
	IsVegan      bool       `json:"isVegan" db:"is_vegan"`
	SpiceLevel   string     `json:"spiceLevel" db:"spice_level"`
	Nutrition    *Nutrition `json:"nutrition,omitempty" db:"nutrition"`
	Ingredients  []string   `json:"ingredients" db:"ingredients"`
	Allergens    []string   `json:"allergens" db:"allergens"`
	ImageURL     string     `json:"imageUrl,omitempty" db:"image_url"`
	Tags         []string   `json:"tags" db:"tags"`
	IsAvailable  bool       `json:"isAvailable" db:"is_available"`
}

// PriceDecimal parses the decimal-string price. Unparseable prices are
// treated as zero so that browsing stays resilient to partial data.
func (m *MenuItem) PriceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(m.Price)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NutritionOrZero returns the item's nutrition, or the zero value when the
// item carries no nutrition data.
func (m *MenuItem) NutritionOrZero() Nutrition {
	if m.Nutrition == nil {
		return Nutrition{}
	}
	return *m.Nutrition
}

// HasTag reports whether the item carries the given tag.
func (m *MenuItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
