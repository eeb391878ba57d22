// Package cart holds the session shopping cart: an ordered collection of
// priced line items with write-through persistence and change
// notification for other views.
package cart

import (
	"fmt"
	"sync"

	"hamshark/internal/composer"
	"hamshark/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LineItem is one priced, quantified cart entry. The menu item is a
// snapshot and the unit price is frozen at add time: later catalogue
// price changes never retroactively alter cart pricing.
type LineItem struct {
	ID             string               `json:"id"`
	MenuItem       model.MenuItem       `json:"menuItem"`
	Quantity       int                  `json:"quantity"`
	Customizations model.Customizations `json:"customizations"`
	UnitPrice      decimal.Decimal      `json:"price"`
}

// Cart is the session cart. Insertion order is display order. Every
// mutation writes the whole cart through to the store before notifying
// subscribers.
type Cart struct {
	mu     sync.Mutex
	items  []LineItem
	meals  []composer.CustomMeal
	store  Store
	logger zerolog.Logger
	subs   []func(itemCount int)
}

// New creates a cart bound to the store, reloading any persisted state
// from a previous session.
func New(store Store, logger zerolog.Logger) (*Cart, error) {
	items, err := store.LoadCart()
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted cart: %w", err)
	}
	meals, err := store.LoadCustomMeals()
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted custom meals: %w", err)
	}

	c := &Cart{
		items:  items,
		meals:  meals,
		store:  store,
		logger: logger.With().Str("component", "cart").Logger(),
	}
	c.logger.Debug().Int("items", len(items)).Int("custom_meals", len(meals)).Msg("cart restored")
	return c, nil
}

// OnChange registers a callback invoked with the total item count after
// every mutation. Callbacks run synchronously under the mutation.
func (c *Cart) OnChange(fn func(itemCount int)) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

// AddItem appends a line item for the menu item at the given quantity,
// freezing the unit price. Quantity must be positive.
func (c *Cart) AddItem(item model.MenuItem, quantity int, customizations model.Customizations) (*LineItem, error) {
	if quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	line := LineItem{
		ID:             "cart-" + uuid.NewString(),
		MenuItem:       item,
		Quantity:       quantity,
		Customizations: customizations.Clone(),
		UnitPrice:      item.PriceDecimal(),
	}
	if line.Customizations == nil {
		line.Customizations = model.Customizations{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, line)
	if err := c.persistLocked(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return nil, err
	}
	c.logger.Debug().Str("line_id", line.ID).Str("item", item.Name).Int("quantity", quantity).Msg("item added")
	c.notifyLocked()
	return &line, nil
}

// AddCustomMeal records the composed meal for reuse across sessions and
// adds it to the cart as a single line with a size customization.
func (c *Cart) AddCustomMeal(meal *composer.CustomMeal) (*LineItem, error) {
	item := meal.MenuItem()
	line := LineItem{
		ID:             "cart-" + uuid.NewString(),
		MenuItem:       item,
		Quantity:       1,
		Customizations: model.Customizations{"size": model.StringValue(meal.Size)},
		UnitPrice:      meal.BasePrice,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, line)
	c.meals = append(c.meals, *meal)
	if err := c.persistLocked(); err != nil {
		c.items = c.items[:len(c.items)-1]
		c.meals = c.meals[:len(c.meals)-1]
		return nil, err
	}
	if err := c.store.SaveCustomMeals(c.meals); err != nil {
		c.logger.Warn().Err(err).Msg("failed to persist custom meal definitions")
	}
	c.logger.Debug().Str("line_id", line.ID).Str("meal", meal.Name).Msg("custom meal added")
	c.notifyLocked()
	return &line, nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less
// removes the line entirely; zero or negative quantities are never kept.
func (c *Cart) UpdateQuantity(lineID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(lineID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == lineID {
			prev := c.items[i].Quantity
			c.items[i].Quantity = quantity
			if err := c.persistLocked(); err != nil {
				c.items[i].Quantity = prev
				return err
			}
			c.notifyLocked()
			return nil
		}
	}
	return nil
}

// RemoveItem drops a line from the cart. Removing an unknown line is a
// no-op.
func (c *Cart) RemoveItem(lineID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == lineID {
			removed := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			if err := c.persistLocked(); err != nil {
				c.items = append(c.items[:i], append([]LineItem{removed}, c.items[i:]...)...)
				return err
			}
			c.logger.Debug().Str("line_id", lineID).Msg("item removed")
			c.notifyLocked()
			return nil
		}
	}
	return nil
}

// AddCustomization sets a customization key on a line item.
func (c *Cart) AddCustomization(lineID, key string, value model.CustomizationValue) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == lineID {
			if c.items[i].Customizations == nil {
				c.items[i].Customizations = model.Customizations{}
			}
			c.items[i].Customizations[key] = value
			if err := c.persistLocked(); err != nil {
				return err
			}
			c.notifyLocked()
			return nil
		}
	}
	return nil
}

// Clear empties the cart in memory and in the store. Custom-meal
// definitions are kept for reuse.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.items
	c.items = nil
	if err := c.persistLocked(); err != nil {
		c.items = prev
		return err
	}
	c.logger.Debug().Msg("cart cleared")
	c.notifyLocked()
	return nil
}

// Items returns a copy of the line items in display order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return countItems(c.items)
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	subtotal := decimal.Zero
	for _, line := range c.items {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}

// TotalNutrition aggregates nutrition over lines that carry nutrition
// data, weighted by quantity. Lines without nutrition contribute zero.
func (c *Cart) TotalNutrition() model.NutritionTotals {
	c.mu.Lock()
	defer c.mu.Unlock()
	var totals model.NutritionTotals
	for _, line := range c.items {
		if line.MenuItem.Nutrition != nil {
			totals.Add(*line.MenuItem.Nutrition, line.Quantity)
		}
	}
	return totals
}

// CustomMeals returns the persisted custom-meal definitions.
func (c *Cart) CustomMeals() []composer.CustomMeal {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]composer.CustomMeal, len(c.meals))
	copy(out, c.meals)
	return out
}

// persistLocked writes the full cart through to the store. Callers hold
// the mutex.
func (c *Cart) persistLocked() error {
	if err := c.store.SaveCart(c.items); err != nil {
		c.logger.Error().Err(err).Msg("failed to persist cart")
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

func (c *Cart) notifyLocked() {
	count := countItems(c.items)
	for _, fn := range c.subs {
		fn(count)
	}
}

func countItems(items []LineItem) int {
	total := 0
	for _, line := range items {
		total += line.Quantity
	}
	return total
}
