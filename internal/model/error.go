package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidPayload   = "INVALID_ORDER_PAYLOAD"
	ErrCodeMenuItemNotFound = "MENU_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeTruckNotFound    = "TRUCK_NOT_FOUND"
	ErrCodePlanNotFound     = "PLAN_NOT_FOUND"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeEmptyMealName    = "EMPTY_MEAL_NAME"
	ErrCodeNoIngredients    = "NO_INGREDIENTS"
	ErrCodeCheckoutBusy     = "CHECKOUT_IN_FLIGHT"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation that maps to a 4xx response.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidOrderPayload = NewDomainError(ErrCodeInvalidPayload, "Order payload is missing required fields")
	ErrMenuItemNotFound    = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrTruckNotFound       = NewDomainError(ErrCodeTruckNotFound, "Truck location not found")
	ErrPlanNotFound        = NewDomainError(ErrCodePlanNotFound, "Membership plan not found")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrEmptyMealName       = NewDomainError(ErrCodeEmptyMealName, "Custom meal name must not be blank")
	ErrNoIngredients       = NewDomainError(ErrCodeNoIngredients, "Custom meal must include at least one ingredient")
	ErrCheckoutInFlight    = NewDomainError(ErrCodeCheckoutBusy, "A checkout request is already in progress")
)
