package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hamshark/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMembershipService is a mock implementation of MembershipService.
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) GetAll(ctx context.Context) ([]model.MembershipPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MembershipPlan), args.Error(1)
}

func (m *MockMembershipService) GetByID(ctx context.Context, id string) (*model.MembershipPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

// MockLoyaltyService is a mock implementation of LoyaltyService.
type MockLoyaltyService struct {
	mock.Mock
}

func (m *MockLoyaltyService) GetAll(ctx context.Context) ([]model.LoyaltyReward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LoyaltyReward), args.Error(1)
}

func (m *MockLoyaltyService) GetByTier(ctx context.Context, tier string) ([]model.LoyaltyReward, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LoyaltyReward), args.Error(1)
}

func TestMembershipHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockMembershipService)
	handler := NewMembershipHandler(mockService, logger)

	mockService.On("GetAll", mock.Anything).Return([]model.MembershipPlan{
		{ID: "plan1", Name: "Student Saver Plan", Price: "2499.00"},
		{ID: "plan2", Name: "IT Pro Plan", Price: "3999.00"},
		{ID: "plan3", Name: "Shark Club", Price: "199.00"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/membership-plans", nil)
	w := httptest.NewRecorder()

	handler.GetAll(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var plans []model.MembershipPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	assert.Len(t, plans, 3)
}

func TestMembershipHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockMembershipService)
		handler := NewMembershipHandler(mockService, logger)

		mockService.On("GetByID", mock.Anything, "plan3").
			Return(&model.MembershipPlan{ID: "plan3", Name: "Shark Club"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/membership-plans/plan3", nil)
		req.SetPathValue("id", "plan3")
		w := httptest.NewRecorder()

		handler.GetByID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService := new(MockMembershipService)
		handler := NewMembershipHandler(mockService, logger)

		mockService.On("GetByID", mock.Anything, "plan9").Return(nil, model.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/membership-plans/plan9", nil)
		req.SetPathValue("id", "plan9")
		w := httptest.NewRecorder()

		handler.GetByID(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodePlanNotFound, resp.Error)
	})
}

func TestLoyaltyHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockLoyaltyService)
	handler := NewLoyaltyHandler(mockService, logger)

	mockService.On("GetAll", mock.Anything).Return([]model.LoyaltyReward{
		{ID: "reward1", Name: "Free Healthy Drink", Tier: model.TierBronze},
		{ID: "reward2", Name: "Free Dessert", Tier: model.TierSilver},
		{ID: "reward3", Name: "Free Meal Coupon", Tier: model.TierGold},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/loyalty-rewards", nil)
	w := httptest.NewRecorder()

	handler.GetAll(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoyaltyHandler_GetByTier(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockLoyaltyService)
	handler := NewLoyaltyHandler(mockService, logger)

	mockService.On("GetByTier", mock.Anything, "gold").Return([]model.LoyaltyReward{
		{ID: "reward3", Name: "Free Meal Coupon", Tier: model.TierGold},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/loyalty-rewards/tier/gold", nil)
	req.SetPathValue("tier", "gold")
	w := httptest.NewRecorder()

	handler.GetByTier(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var rewards []model.LoyaltyReward
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rewards))
	require.Len(t, rewards, 1)
	assert.Equal(t, "reward3", rewards[0].ID)
}
