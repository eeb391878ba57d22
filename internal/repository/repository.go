package repository

import (
	"context"

	"hamshark/internal/model"

	"github.com/google/uuid"
)

// MenuItemRepository defines the interface for menu data access operations.
type MenuItemRepository interface {
	// GetAll retrieves every available menu item.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// GetByCategory retrieves available items in a category, matched
	// case-insensitively.
	GetByCategory(ctx context.Context, category string) ([]model.MenuItem, error)

	// GetByCuisine retrieves available items of a cuisine, matched
	// case-insensitively.
	GetByCuisine(ctx context.Context, cuisine string) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item. Returns (nil, nil) when the
	// item does not exist.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByUser retrieves all orders placed by a user.
	GetByUser(ctx context.Context, userID string) ([]model.Order, error)

	// UpdateStatus sets the order status and returns the updated order.
	// Returns (nil, nil) when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
}

// TruckRepository defines the interface for truck location data access.
type TruckRepository interface {
	// GetAll retrieves every truck location.
	GetAll(ctx context.Context) ([]model.TruckLocation, error)

	// GetByID retrieves one location. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*model.TruckLocation, error)

	// UpdateStatus sets the location's current status and returns it.
	// Returns (nil, nil) when the location does not exist.
	UpdateStatus(ctx context.Context, id, status string) (*model.TruckLocation, error)
}

// MembershipRepository defines the interface for membership plan access.
type MembershipRepository interface {
	// GetAll retrieves every active plan.
	GetAll(ctx context.Context) ([]model.MembershipPlan, error)

	// GetByID retrieves one plan. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*model.MembershipPlan, error)
}

// LoyaltyRepository defines the interface for loyalty reward access.
type LoyaltyRepository interface {
	// GetAll retrieves every active reward.
	GetAll(ctx context.Context) ([]model.LoyaltyReward, error)

	// GetByTier retrieves active rewards for a tier, matched
	// case-insensitively.
	GetByTier(ctx context.Context, tier string) ([]model.LoyaltyReward, error)
}

// UserRepository defines the interface for user account access.
type UserRepository interface {
	// GetByID retrieves a user. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// GetByUsername retrieves a user by username. Returns (nil, nil)
	// when absent.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Create persists a new user starting at zero points, bronze tier.
	Create(ctx context.Context, user *model.User) error

	// AddLoyaltyPoints accrues points onto a user and recomputes the
	// membership tier. Returns (nil, nil) when the user does not exist.
	AddLoyaltyPoints(ctx context.Context, userID string, points int) (*model.User, error)
}
