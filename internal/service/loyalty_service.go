package service

import (
	"context"
	"fmt"

	"hamshark/internal/model"
	"hamshark/internal/repository"

	"github.com/rs/zerolog"
)

// loyaltyService implements LoyaltyService.
type loyaltyService struct {
	loyaltyRepo repository.LoyaltyRepository
	logger      zerolog.Logger
}

// NewLoyaltyService creates a new loyalty service.
func NewLoyaltyService(loyaltyRepo repository.LoyaltyRepository, logger zerolog.Logger) LoyaltyService {
	return &loyaltyService{
		loyaltyRepo: loyaltyRepo,
		logger:      logger.With().Str("service", "loyalty").Logger(),
	}
}

// GetAll retrieves every active loyalty reward.
func (s *loyaltyService) GetAll(ctx context.Context) ([]model.LoyaltyReward, error) {
	rewards, err := s.loyaltyRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get loyalty rewards")
		return nil, fmt.Errorf("failed to get loyalty rewards: %w", err)
	}

	return rewards, nil
}

// GetByTier retrieves active rewards for a membership tier.
func (s *loyaltyService) GetByTier(ctx context.Context, tier string) ([]model.LoyaltyReward, error) {
	rewards, err := s.loyaltyRepo.GetByTier(ctx, tier)
	if err != nil {
		s.logger.Error().Err(err).Str("tier", tier).Msg("failed to get loyalty rewards by tier")
		return nil, fmt.Errorf("failed to get loyalty rewards: %w", err)
	}

	return rewards, nil
}
