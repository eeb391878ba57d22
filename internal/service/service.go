package service

import (
	"context"

	"hamshark/internal/model"

	"github.com/google/uuid"
)

// MenuService defines operations for browsing the menu.
type MenuService interface {
	// GetAll retrieves every available menu item.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// GetByCategory retrieves available items in a category.
	GetByCategory(ctx context.Context, category string) ([]model.MenuItem, error)

	// GetByCuisine retrieves available items of a cuisine.
	GetByCuisine(ctx context.Context, cuisine string) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by ID.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder validates and persists a new order, computing earned
	// loyalty points and accruing them onto the user when present.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByUser retrieves all orders placed by a user.
	GetByUser(ctx context.Context, userID string) ([]model.Order, error)

	// UpdateStatus transitions an order to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
}

// TruckService defines operations for truck locations.
type TruckService interface {
	// GetAll retrieves every truck location.
	GetAll(ctx context.Context) ([]model.TruckLocation, error)

	// GetByID retrieves one truck location by ID.
	GetByID(ctx context.Context, id string) (*model.TruckLocation, error)

	// UpdateStatus sets a truck location's current status.
	UpdateStatus(ctx context.Context, id, status string) (*model.TruckLocation, error)
}

// MembershipService defines operations for membership plans.
type MembershipService interface {
	// GetAll retrieves every active membership plan.
	GetAll(ctx context.Context) ([]model.MembershipPlan, error)

	// GetByID retrieves one membership plan by ID.
	GetByID(ctx context.Context, id string) (*model.MembershipPlan, error)
}

// LoyaltyService defines operations for loyalty rewards.
type LoyaltyService interface {
	// GetAll retrieves every active loyalty reward.
	GetAll(ctx context.Context) ([]model.LoyaltyReward, error)

	// GetByTier retrieves active rewards for a membership tier.
	GetByTier(ctx context.Context, tier string) ([]model.LoyaltyReward, error)
}
