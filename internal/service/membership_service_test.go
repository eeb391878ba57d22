package service

import (
	"context"
	"errors"
	"testing"

	"hamshark/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMembershipRepository is a mock implementation of MembershipRepository.
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) GetAll(ctx context.Context) ([]model.MembershipPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MembershipPlan), args.Error(1)
}

func (m *MockMembershipRepository) GetByID(ctx context.Context, id string) (*model.MembershipPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

// MockLoyaltyRepository is a mock implementation of LoyaltyRepository.
type MockLoyaltyRepository struct {
	mock.Mock
}

func (m *MockLoyaltyRepository) GetAll(ctx context.Context) ([]model.LoyaltyReward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LoyaltyReward), args.Error(1)
}

func (m *MockLoyaltyRepository) GetByTier(ctx context.Context, tier string) ([]model.LoyaltyReward, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LoyaltyReward), args.Error(1)
}

func TestMembershipService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockMembershipRepository)
	service := NewMembershipService(mockRepo, logger)

	mockRepo.On("GetAll", ctx).Return([]model.MembershipPlan{
		{ID: "plan1", Name: "Student Saver Plan", IsActive: true},
		{ID: "plan3", Name: "Shark Club", IsActive: true},
	}, nil)

	plans, err := service.GetAll(ctx)

	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestMembershipService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockMembershipRepository)
		service := NewMembershipService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "plan2").
			Return(&model.MembershipPlan{ID: "plan2", Name: "IT Pro Plan"}, nil)

		plan, err := service.GetByID(ctx, "plan2")

		require.NoError(t, err)
		assert.Equal(t, "IT Pro Plan", plan.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockMembershipRepository)
		service := NewMembershipService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "plan9").Return(nil, nil)

		plan, err := service.GetByID(ctx, "plan9")

		assert.Equal(t, model.ErrPlanNotFound, err)
		assert.Nil(t, plan)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockMembershipRepository)
		service := NewMembershipService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "plan1").Return(nil, errors.New("database error"))

		plan, err := service.GetByID(ctx, "plan1")

		require.Error(t, err)
		assert.Nil(t, plan)
	})
}

func TestLoyaltyService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockLoyaltyRepository)
	service := NewLoyaltyService(mockRepo, logger)

	mockRepo.On("GetAll", ctx).Return([]model.LoyaltyReward{
		{ID: "reward1", Name: "Free Healthy Drink", Tier: model.TierBronze},
		{ID: "reward2", Name: "Free Dessert", Tier: model.TierSilver},
	}, nil)

	rewards, err := service.GetAll(ctx)

	require.NoError(t, err)
	assert.Len(t, rewards, 2)
}

func TestLoyaltyService_GetByTier(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockLoyaltyRepository)
		service := NewLoyaltyService(mockRepo, logger)

		mockRepo.On("GetByTier", ctx, model.TierGold).Return([]model.LoyaltyReward{
			{ID: "reward3", Name: "Free Meal Coupon", Tier: model.TierGold},
		}, nil)

		rewards, err := service.GetByTier(ctx, model.TierGold)

		require.NoError(t, err)
		require.Len(t, rewards, 1)
		assert.Equal(t, "reward3", rewards[0].ID)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockLoyaltyRepository)
		service := NewLoyaltyService(mockRepo, logger)

		mockRepo.On("GetByTier", ctx, mock.Anything).Return(nil, errors.New("database error"))

		rewards, err := service.GetByTier(ctx, model.TierGold)

		require.Error(t, err)
		assert.Nil(t, rewards)
	})
}
