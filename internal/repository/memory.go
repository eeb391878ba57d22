package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"hamshark/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryMenuItemRepository serves the seeded catalogue from memory.
// Items keep their seed order so listings are deterministic.
type memoryMenuItemRepository struct {
	items []model.MenuItem
}

// NewMemoryMenuItemRepository creates a menu repository pre-loaded with the
// sample catalogue.
func NewMemoryMenuItemRepository() MenuItemRepository {
	return &memoryMenuItemRepository{items: seedMenuItems()}
}

func (r *memoryMenuItemRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	out := make([]model.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if item.IsAvailable {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memoryMenuItemRepository) GetByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, item := range r.items {
		if item.IsAvailable && strings.EqualFold(item.Category, category) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memoryMenuItemRepository) GetByCuisine(ctx context.Context, cuisine string) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, item := range r.items {
		if item.IsAvailable && strings.EqualFold(item.Cuisine, cuisine) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memoryMenuItemRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// memoryOrderRepository stores orders in memory for demo and test use.
type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*model.Order
	logger zerolog.Logger
}

// NewMemoryOrderRepository creates an empty in-memory order repository.
func NewMemoryOrderRepository(logger zerolog.Logger) OrderRepository {
	return &memoryOrderRepository{
		orders: make(map[uuid.UUID]*model.Order),
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	r.orders[order.ID] = &stored

	r.logger.Debug().Str("order_id", order.ID.String()).Msg("order created")
	return nil
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	out := *order
	return &out, nil
}

func (r *memoryOrderRepository) GetByUser(ctx context.Context, userID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Order
	for _, order := range r.orders {
		if order.UserID != nil && *order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *memoryOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	order.Status = status

	out := *order
	return &out, nil
}

// memoryTruckRepository serves the seeded truck locations.
type memoryTruckRepository struct {
	mu     sync.RWMutex
	trucks []model.TruckLocation
}

// NewMemoryTruckRepository creates a truck repository pre-loaded with the
// sample locations.
func NewMemoryTruckRepository() TruckRepository {
	return &memoryTruckRepository{trucks: seedTruckLocations(time.Now())}
}

func (r *memoryTruckRepository) GetAll(ctx context.Context) ([]model.TruckLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.TruckLocation, len(r.trucks))
	copy(out, r.trucks)
	return out, nil
}

func (r *memoryTruckRepository) GetByID(ctx context.Context, id string) (*model.TruckLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.trucks {
		if r.trucks[i].ID == id {
			truck := r.trucks[i]
			return &truck, nil
		}
	}
	return nil, nil
}

func (r *memoryTruckRepository) UpdateStatus(ctx context.Context, id, status string) (*model.TruckLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.trucks {
		if r.trucks[i].ID == id {
			r.trucks[i].CurrentStatus = status
			truck := r.trucks[i]
			return &truck, nil
		}
	}
	return nil, nil
}

// memoryMembershipRepository serves the seeded membership plans.
type memoryMembershipRepository struct {
	plans []model.MembershipPlan
}

// NewMemoryMembershipRepository creates a plan repository pre-loaded with
// the sample plans.
func NewMemoryMembershipRepository() MembershipRepository {
	return &memoryMembershipRepository{plans: seedMembershipPlans()}
}

func (r *memoryMembershipRepository) GetAll(ctx context.Context) ([]model.MembershipPlan, error) {
	out := make([]model.MembershipPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		if plan.IsActive {
			out = append(out, plan)
		}
	}
	return out, nil
}

func (r *memoryMembershipRepository) GetByID(ctx context.Context, id string) (*model.MembershipPlan, error) {
	for i := range r.plans {
		if r.plans[i].ID == id {
			plan := r.plans[i]
			return &plan, nil
		}
	}
	return nil, nil
}

// memoryLoyaltyRepository serves the seeded loyalty rewards.
type memoryLoyaltyRepository struct {
	rewards []model.LoyaltyReward
}

// NewMemoryLoyaltyRepository creates a reward repository pre-loaded with
// the sample rewards.
func NewMemoryLoyaltyRepository() LoyaltyRepository {
	return &memoryLoyaltyRepository{rewards: seedLoyaltyRewards()}
}

func (r *memoryLoyaltyRepository) GetAll(ctx context.Context) ([]model.LoyaltyReward, error) {
	out := make([]model.LoyaltyReward, 0, len(r.rewards))
	for _, reward := range r.rewards {
		if reward.IsActive {
			out = append(out, reward)
		}
	}
	return out, nil
}

func (r *memoryLoyaltyRepository) GetByTier(ctx context.Context, tier string) ([]model.LoyaltyReward, error) {
	var out []model.LoyaltyReward
	for _, reward := range r.rewards {
		if reward.IsActive && strings.EqualFold(reward.Tier, tier) {
			out = append(out, reward)
		}
	}
	return out, nil
}

// memoryUserRepository stores user accounts in memory.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]*model.User
	logger zerolog.Logger
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository(logger zerolog.Logger) UserRepository {
	return &memoryUserRepository{
		users:  make(map[string]*model.User),
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.LoyaltyPoints = 0
	user.MembershipTier = model.TierBronze
	user.CreatedAt = time.Now()

	stored := *user
	r.users[user.ID] = &stored

	r.logger.Debug().Str("user_id", user.ID).Msg("user created")
	return nil
}

func (r *memoryUserRepository) AddLoyaltyPoints(ctx context.Context, userID string, points int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}

	user.LoyaltyPoints += points
	user.MembershipTier = model.TierForPoints(user.LoyaltyPoints)

	r.logger.Debug().
		Str("user_id", userID).
		Int("points_added", points).
		Int("balance", user.LoyaltyPoints).
		Str("tier", user.MembershipTier).
		Msg("loyalty points accrued")

	out := *user
	return &out, nil
}
