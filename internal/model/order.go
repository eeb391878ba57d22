package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order statuses as observed by the storefront core. Post-confirmation
// transitions belong to whoever owns the order ledger.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// CustomizationValue is one scalar customization entry. Only strings,
// numbers and booleans are permitted so that serialization stays
// deterministic.
type CustomizationValue struct {
	kind  byte // 's', 'n' or 'b'
	str   string
	num   float64
	boolv bool
}

// StringValue creates a string-kind customization value.
func StringValue(s string) CustomizationValue {
	return CustomizationValue{kind: 's', str: s}
}

// NumberValue creates a number-kind customization value.
func NumberValue(n float64) CustomizationValue {
	return CustomizationValue{kind: 'n', num: n}
}

// BoolValue creates a boolean-kind customization value.
func BoolValue(b bool) CustomizationValue {
	return CustomizationValue{kind: 'b', boolv: b}
}

// String renders the value for display regardless of kind.
func (v CustomizationValue) String() string {
	switch v.kind {
	case 'n':
		return fmt.Sprintf("%g", v.num)
	case 'b':
		return fmt.Sprintf("%t", v.boolv)
	default:
		return v.str
	}
}

// MarshalJSON encodes the underlying scalar.
func (v CustomizationValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case 'n':
		return json.Marshal(v.num)
	case 'b':
		return json.Marshal(v.boolv)
	default:
		return json.Marshal(v.str)
	}
}

// UnmarshalJSON accepts a string, number or boolean and rejects
// everything else.
func (v *CustomizationValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case string:
		*v = StringValue(x)
	case float64:
		*v = NumberValue(x)
	case bool:
		*v = BoolValue(x)
	default:
		return fmt.Errorf("customization value must be a string, number or boolean, got %T", raw)
	}
	return nil
}

// Customizations maps a customization key (e.g. "size") to its value.
// encoding/json sorts map keys, so the wire form is deterministic.
type Customizations map[string]CustomizationValue

// Clone returns an independent copy.
func (c Customizations) Clone() Customizations {
	if c == nil {
		return nil
	}
	out := make(Customizations, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// OrderLine is one priced entry of a submitted order.
type OrderLine struct {
	MenuItemID     string         `json:"menuItemId"`
	Quantity       int            `json:"quantity"`
	Customizations Customizations `json:"customizations"`
	Price          float64        `json:"price"`
}

// OrderRequest is the checkout submission payload.
type OrderRequest struct {
	Items         []OrderLine `json:"items"`
	Subtotal      string      `json:"subtotal"`
	Tax           string      `json:"tax"`
	Total         string      `json:"total"`
	Status        string      `json:"status"`
	TruckLocation string      `json:"truckLocation"`
	UserID        *string     `json:"userId"`
	SurpriseGifts []string    `json:"surpriseGifts,omitempty"`
}

// Order is a persisted order with its reward annotations.
type Order struct {
	ID                  uuid.UUID   `json:"id" db:"id"`
	UserID              *string     `json:"userId" db:"user_id"`
	Items               []OrderLine `json:"items" db:"items"`
	Subtotal            string      `json:"subtotal" db:"subtotal"`
	Tax                 string      `json:"tax" db:"tax"`
	Total               string      `json:"total" db:"total"`
	Status              string      `json:"status" db:"status"`
	TruckLocation       string      `json:"truckLocation" db:"truck_location"`
	LoyaltyPointsEarned int         `json:"loyaltyPointsEarned" db:"loyalty_points_earned"`
	SurpriseGifts       []string    `json:"surpriseGifts" db:"surprise_gifts"`
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
}
