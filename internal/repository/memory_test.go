package repository

import (
	"context"
	"strings"
	"testing"

	"hamshark/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMenuItemRepository_GetAll(t *testing.T) {
	repo := NewMemoryMenuItemRepository()

	items, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for _, item := range items {
		assert.True(t, item.IsAvailable, "item %s should be available", item.ID)
	}
}

func TestMemoryMenuItemRepository_GetByCategory(t *testing.T) {
	repo := NewMemoryMenuItemRepository()

	tests := []struct {
		category string
		wantMin  int
	}{
		{"Curry", 3},
		{"curry", 3},
		{"Dessert", 2},
		{"Klingon", 0},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			items, err := repo.GetByCategory(context.Background(), tt.category)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(items), tt.wantMin)
			for _, item := range items {
				assert.True(t, strings.EqualFold(item.Category, tt.category))
			}
		})
	}
}

func TestMemoryMenuItemRepository_GetByCuisine(t *testing.T) {
	repo := NewMemoryMenuItemRepository()

	items, err := repo.GetByCuisine(context.Background(), "NORTH INDIAN")
	require.NoError(t, err)
	require.Len(t, items, 7)
	for _, item := range items {
		assert.Equal(t, "North Indian", item.Cuisine)
	}
}

func TestMemoryMenuItemRepository_GetByID(t *testing.T) {
	repo := NewMemoryMenuItemRepository()

	item, err := repo.GetByID(context.Background(), "ni1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Paneer Tikka Wrap", item.Name)
	require.NotNil(t, item.Nutrition)
	assert.Positive(t, item.Nutrition.Calories)

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryOrderRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryOrderRepository(zerolog.Nop())
	ctx := context.Background()

	userID := "user-1"
	order := &model.Order{
		ID:     uuid.New(),
		UserID: &userID,
		Items: []model.OrderLine{
			{MenuItemID: "ni1", Quantity: 2, Price: 189},
		},
		Subtotal:            "378",
		Tax:                 "18.90",
		Total:               "396.90",
		Status:              model.StatusConfirmed,
		LoyaltyPointsEarned: 39,
		SurpriseGifts:       []string{"Free Healthy Drink"},
	}
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.Total, got.Total)
	assert.Equal(t, order.SurpriseGifts, got.SurpriseGifts)

	// Reads return copies, not the stored order.
	got.Status = model.StatusCancelled
	again, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, again.Status)
}

func TestMemoryOrderRepository_GetByUser(t *testing.T) {
	repo := NewMemoryOrderRepository(zerolog.Nop())
	ctx := context.Background()

	alice, bob := "alice", "bob"
	require.NoError(t, repo.Create(ctx, &model.Order{ID: uuid.New(), UserID: &alice, Status: model.StatusPending}))
	require.NoError(t, repo.Create(ctx, &model.Order{ID: uuid.New(), UserID: &alice, Status: model.StatusPending}))
	require.NoError(t, repo.Create(ctx, &model.Order{ID: uuid.New(), UserID: &bob, Status: model.StatusPending}))
	require.NoError(t, repo.Create(ctx, &model.Order{ID: uuid.New(), Status: model.StatusPending}))

	orders, err := repo.GetByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = repo.GetByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestMemoryOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewMemoryOrderRepository(zerolog.Nop())
	ctx := context.Background()

	order := &model.Order{ID: uuid.New(), Status: model.StatusPending}
	require.NoError(t, repo.Create(ctx, order))

	updated, err := repo.UpdateStatus(ctx, order.ID, model.StatusPreparing)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, model.StatusPreparing, updated.Status)

	missing, err := repo.UpdateStatus(ctx, uuid.New(), model.StatusReady)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryTruckRepository(t *testing.T) {
	repo := NewMemoryTruckRepository()
	ctx := context.Background()

	trucks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, trucks, 2)

	truck, err := repo.GetByID(ctx, "loc1")
	require.NoError(t, err)
	require.NotNil(t, truck)
	assert.Equal(t, "Tech Park - Sector 5", truck.Name)
	assert.Equal(t, model.TruckStatusOpen, truck.CurrentStatus)

	updated, err := repo.UpdateStatus(ctx, "loc1", model.TruckStatusClosed)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, model.TruckStatusClosed, updated.CurrentStatus)

	truck, err = repo.GetByID(ctx, "loc1")
	require.NoError(t, err)
	assert.Equal(t, model.TruckStatusClosed, truck.CurrentStatus)

	missing, err := repo.UpdateStatus(ctx, "loc9", model.TruckStatusOpen)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryMembershipRepository(t *testing.T) {
	repo := NewMemoryMembershipRepository()
	ctx := context.Background()

	plans, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	for _, plan := range plans {
		assert.True(t, plan.IsActive)
	}

	plan, err := repo.GetByID(ctx, "plan3")
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "Shark Club", plan.Name)
	assert.Equal(t, "199.00", plan.Price)

	missing, err := repo.GetByID(ctx, "plan9")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryLoyaltyRepository(t *testing.T) {
	repo := NewMemoryLoyaltyRepository()
	ctx := context.Background()

	rewards, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rewards, 3)

	bronze, err := repo.GetByTier(ctx, "BRONZE")
	require.NoError(t, err)
	require.Len(t, bronze, 1)
	assert.Equal(t, 50, bronze[0].PointsCost)

	none, err := repo.GetByTier(ctx, "platinum")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryUserRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryUserRepository(zerolog.Nop())
	ctx := context.Background()

	user := &model.User{Username: "foodie42", Email: "foodie42@example.com"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.TierBronze, user.MembershipTier)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "foodie42", byID.Username)

	byName, err := repo.GetByUsername(ctx, "foodie42")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, user.ID, byName.ID)

	missing, err := repo.GetByUsername(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryUserRepository_AddLoyaltyPoints(t *testing.T) {
	repo := NewMemoryUserRepository(zerolog.Nop())
	ctx := context.Background()

	user := &model.User{Username: "foodie42"}
	require.NoError(t, repo.Create(ctx, user))

	// Tier moves with the running balance across the ladder boundaries.
	steps := []struct {
		points   int
		wantTier string
	}{
		{249, model.TierBronze},
		{1, model.TierSilver},
		{250, model.TierGold},
		{500, model.TierSharkElite},
	}

	balance := 0
	for _, step := range steps {
		updated, err := repo.AddLoyaltyPoints(ctx, user.ID, step.points)
		require.NoError(t, err)
		require.NotNil(t, updated)

		balance += step.points
		assert.Equal(t, balance, updated.LoyaltyPoints)
		assert.Equal(t, step.wantTier, updated.MembershipTier)
	}

	missing, err := repo.AddLoyaltyPoints(ctx, "ghost", 10)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
