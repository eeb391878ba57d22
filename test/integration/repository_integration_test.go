package integration

import (
	"context"
	"testing"
	"time"

	"hamshark/internal/model"
	"hamshark/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewMenuItemRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns only available items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 4)
		for _, item := range items {
			assert.True(t, item.IsAvailable)
			assert.NotEqual(t, "x1", item.ID)
		}
		assert.Equal(t, "bd2", items[0].ID)
	})

	t.Run("GetByCategory matches case-insensitively", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetByCategory(ctx, "CURRY")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "ni2", items[0].ID)
		assert.Equal(t, "Butter Chicken", items[0].Name)
	})

	t.Run("GetByCuisine excludes unavailable items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetByCuisine(ctx, "north indian")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("GetByID decodes nutrition document", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		item, err := repo.GetByID(ctx, "ni1")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Paneer Tikka Wrap", item.Name)
		assert.Equal(t, "180.00", item.Price)
		assert.True(t, item.IsVegetarian)
		require.NotNil(t, item.Nutrition)
		assert.Equal(t, 420.0, item.Nutrition.Calories)
		assert.Equal(t, 680.0, item.Nutrition.Sodium)
	})

	t.Run("GetByID returns nil for missing item", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		item, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("GetByCategory returns empty for unknown category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetByCategory(ctx, "Sushi")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(testDB.Pool, logger)

	ctx := context.Background()

	userID := "user-42"
	newOrder := func() *model.Order {
		return &model.Order{
			ID:     uuid.New(),
			UserID: &userID,
			Items: []model.OrderLine{
				{
					MenuItemID: "ni1",
					Quantity:   2,
					Customizations: model.Customizations{
						"spiceLevel": model.StringValue("hot"),
						"extraRice":  model.BoolValue(true),
					},
					Price: 180,
				},
				{MenuItemID: "bd2", Quantity: 1, Price: 30},
			},
			Subtotal:            "390.00",
			Tax:                 "19.50",
			Total:               "434.50",
			Status:              model.StatusPending,
			TruckLocation:       "Tech Park - Sector 5",
			LoyaltyPointsEarned: 43,
			SurpriseGifts:       []string{"Free Healthy Drink"},
			CreatedAt:           time.Now().UTC().Truncate(time.Microsecond),
		}
	}

	t.Run("Create and GetByID round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder()
		require.NoError(t, repo.Create(ctx, order))

		fetched, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)

		assert.Equal(t, order.ID, fetched.ID)
		require.NotNil(t, fetched.UserID)
		assert.Equal(t, userID, *fetched.UserID)
		assert.Equal(t, "434.50", fetched.Total)
		assert.Equal(t, model.StatusPending, fetched.Status)
		assert.Equal(t, 43, fetched.LoyaltyPointsEarned)
		assert.Equal(t, []string{"Free Healthy Drink"}, fetched.SurpriseGifts)

		require.Len(t, fetched.Items, 2)
		assert.Equal(t, "ni1", fetched.Items[0].MenuItemID)
		assert.Equal(t, 2, fetched.Items[0].Quantity)
		assert.Equal(t, "hot", fetched.Items[0].Customizations["spiceLevel"].String())
		assert.Equal(t, "true", fetched.Items[0].Customizations["extraRice"].String())
	})

	t.Run("GetByID returns nil for missing order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		fetched, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("Guest order persists with null user", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder()
		order.UserID = nil
		require.NoError(t, repo.Create(ctx, order))

		fetched, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Nil(t, fetched.UserID)
	})

	t.Run("GetByUser returns orders newest first", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		older := newOrder()
		older.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
		require.NoError(t, repo.Create(ctx, older))

		newer := newOrder()
		require.NoError(t, repo.Create(ctx, newer))

		other := newOrder()
		otherUser := "someone-else"
		other.UserID = &otherUser
		require.NoError(t, repo.Create(ctx, other))

		orders, err := repo.GetByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, newer.ID, orders[0].ID)
		assert.Equal(t, older.ID, orders[1].ID)
	})

	t.Run("UpdateStatus returns the updated order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder()
		require.NoError(t, repo.Create(ctx, order))

		updated, err := repo.UpdateStatus(ctx, order.ID, model.StatusPreparing)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, model.StatusPreparing, updated.Status)
		assert.Equal(t, order.ID, updated.ID)

		fetched, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, model.StatusPreparing, fetched.Status)
	})

	t.Run("UpdateStatus returns nil for missing order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		updated, err := repo.UpdateStatus(ctx, uuid.New(), model.StatusReady)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}
