package checkout

import (
	"context"
	"fmt"
	"sync"

	"hamshark/internal/cart"
	"hamshark/internal/model"

	"github.com/rs/zerolog"
)

// Ledger is the external collaborator that persists submitted orders.
type Ledger interface {
	// SubmitOrder persists the request and returns the created order
	// with its generated id and earned loyalty points.
	SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)
}

// LedgerFunc adapts a plain function to the Ledger interface, so the
// order service's CreateOrder can back a finalizer directly:
//
//	checkout.LedgerFunc(orderService.CreateOrder)
type LedgerFunc func(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

// SubmitOrder calls f.
func (f LedgerFunc) SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	return f(ctx, req)
}

// SubmissionError wraps a transient ledger failure. The cart is retained
// and the user should be invited to retry; the core never retries on its
// own.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("checkout failed, please retry: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Finalizer prices the cart and drives the submission lifecycle:
// draft -> submitted -> confirmed, or failed with the cart intact.
type Finalizer struct {
	cart          *cart.Cart
	policy        Policy
	ledger        Ledger
	truckLocation string
	logger        zerolog.Logger

	mu   sync.Mutex
	busy bool
}

// NewFinalizer creates a finalizer for the cart. truckLocation labels the
// pickup spot on submitted orders.
func NewFinalizer(c *cart.Cart, policy Policy, ledger Ledger, truckLocation string, logger zerolog.Logger) *Finalizer {
	return &Finalizer{
		cart:          c,
		policy:        policy,
		ledger:        ledger,
		truckLocation: truckLocation,
		logger:        logger.With().Str("component", "checkout").Logger(),
	}
}

// Quote prices the current cart without side effects. Calling it twice
// on an unchanged cart yields identical results.
func (f *Finalizer) Quote() Quote {
	return f.policy.Price(f.cart.Subtotal())
}

// Finalize packages the current cart into an order request, ready for
// submission. The cart is not modified.
func (f *Finalizer) Finalize(userID *string) (*model.OrderRequest, Quote) {
	quote := f.Quote()

	items := f.cart.Items()
	lines := make([]model.OrderLine, len(items))
	for i, line := range items {
		lines[i] = model.OrderLine{
			MenuItemID:     line.MenuItem.ID,
			Quantity:       line.Quantity,
			Customizations: line.Customizations.Clone(),
			Price:          line.UnitPrice.InexactFloat64(),
		}
	}

	return &model.OrderRequest{
		Items:         lines,
		Subtotal:      quote.Subtotal.String(),
		Tax:           quote.Tax.StringFixed(2),
		Total:         quote.Total.StringFixed(2),
		Status:        model.StatusConfirmed,
		TruckLocation: f.truckLocation,
		UserID:        userID,
		SurpriseGifts: quote.Gifts,
	}, quote
}

// Submit finalizes the cart and sends it to the ledger. On success the
// cart is cleared, in memory and in the store, and the created order is
// returned. On failure the cart is untouched and a SubmissionError is
// returned so the caller can offer a retry. Only one submission may be in
// flight at a time.
func (f *Finalizer) Submit(ctx context.Context, userID *string) (*model.Order, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, model.ErrCheckoutInFlight
	}
	f.busy = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	req, quote := f.Finalize(userID)
	if len(req.Items) == 0 {
		return nil, model.ErrInvalidOrderPayload
	}

	f.logger.Info().
		Str("subtotal", quote.Subtotal.String()).
		Str("total", quote.Total.StringFixed(2)).
		Int("loyalty_points", quote.LoyaltyPoints).
		Int("item_count", len(req.Items)).
		Msg("submitting order")

	order, err := f.ledger.SubmitOrder(ctx, req)
	if err != nil {
		f.logger.Warn().Err(err).Msg("order submission failed, cart retained")
		return nil, &SubmissionError{Err: err}
	}

	if err := f.cart.Clear(); err != nil {
		// The order went through; a persistence failure here must not
		// surface as a checkout failure.
		f.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to clear cart after submission")
	}

	f.logger.Info().Str("order_id", order.ID.String()).Msg("order confirmed")
	return order, nil
}
