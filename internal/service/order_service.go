package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hamshark/internal/model"
	"hamshark/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var validOrderStatuses = map[string]bool{
	model.StatusPending:   true,
	model.StatusConfirmed: true,
	model.StatusPreparing: true,
	model.StatusReady:     true,
	model.StatusCompleted: true,
	model.StatusCancelled: true,
}

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuItemRepository
	userRepo  repository.UserRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuItemRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		userRepo:  userRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder validates and persists a new order. Earned loyalty points
// are floor(total/10); when the request names a user, the points are
// accrued onto that user and their tier recomputed.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	total, err := s.validateOrderRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusPending
	}

	points := int(total.Div(decimal.NewFromInt(10)).Floor().IntPart())

	order := &model.Order{
		ID:                  uuid.New(),
		UserID:              req.UserID,
		Items:               req.Items,
		Subtotal:            req.Subtotal,
		Tax:                 req.Tax,
		Total:               req.Total,
		Status:              status,
		TruckLocation:       req.TruckLocation,
		LoyaltyPointsEarned: points,
		SurpriseGifts:       req.SurpriseGifts,
		CreatedAt:           time.Now(),
	}
	if order.SurpriseGifts == nil {
		order.SurpriseGifts = []string{}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if req.UserID != nil && *req.UserID != "" {
		user, err := s.userRepo.AddLoyaltyPoints(ctx, *req.UserID, points)
		if err != nil {
			// The order is already placed; losing the accrual is logged
			// but does not fail the request.
			s.logger.Error().
				Err(err).
				Str("user_id", *req.UserID).
				Str("order_id", order.ID.String()).
				Msg("failed to accrue loyalty points")
		} else if user == nil {
			s.logger.Warn().
				Str("user_id", *req.UserID).
				Str("order_id", order.ID.String()).
				Msg("order references unknown user, points not accrued")
		}
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.Items)).
		Int("loyalty_points", points).
		Msg("order created successfully")

	return order, nil
}

// GetByID retrieves an order by its ID.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// GetByUser retrieves all orders placed by a user.
func (s *orderService) GetByUser(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get orders by user")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus transitions an order to a new status.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	if !validOrderStatuses[status] {
		s.logger.Warn().Str("order_id", id.String()).Str("status", status).Msg("invalid order status")
		return nil, model.ErrInvalidOrderPayload
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found for status update")
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return order, nil
}

// validateOrderRequest checks the payload and returns the parsed total.
func (s *orderService) validateOrderRequest(ctx context.Context, req *model.OrderRequest) (decimal.Decimal, error) {
	if req == nil || len(req.Items) == 0 {
		return decimal.Zero, model.ErrInvalidOrderPayload
	}

	if req.Status != "" && !validOrderStatuses[req.Status] {
		s.logger.Warn().Str("status", req.Status).Msg("invalid order status")
		return decimal.Zero, model.ErrInvalidOrderPayload
	}

	for i, item := range req.Items {
		if item.MenuItemID == "" {
			s.logger.Warn().Int("item_index", i).Msg("order item missing menu item ID")
			return decimal.Zero, model.ErrInvalidOrderPayload
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("menu_item_id", item.MenuItemID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return decimal.Zero, model.ErrInvalidQuantity
		}
	}

	for _, field := range []string{req.Subtotal, req.Tax, req.Total} {
		if _, err := decimal.NewFromString(field); err != nil {
			s.logger.Warn().Str("value", field).Msg("order amount is not a valid decimal")
			return decimal.Zero, model.ErrInvalidOrderPayload
		}
	}

	// Composed meals carry generated "custom-" IDs that never exist in
	// the catalogue; everything else must.
	for _, item := range req.Items {
		if strings.HasPrefix(item.MenuItemID, "custom-") {
			continue
		}
		menuItem, err := s.menuRepo.GetByID(ctx, item.MenuItemID)
		if err != nil {
			s.logger.Error().Err(err).Str("menu_item_id", item.MenuItemID).Msg("failed to validate menu item")
			return decimal.Zero, fmt.Errorf("failed to validate menu item: %w", err)
		}
		if menuItem == nil {
			s.logger.Warn().Str("menu_item_id", item.MenuItemID).Msg("order references unknown menu item")
			return decimal.Zero, model.ErrMenuItemNotFound
		}
	}

	total, _ := decimal.NewFromString(req.Total)
	return total, nil
}
