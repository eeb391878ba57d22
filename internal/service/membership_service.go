package service

import (
	"context"
	"fmt"

	"hamshark/internal/model"
	"hamshark/internal/repository"

	"github.com/rs/zerolog"
)

// membershipService implements MembershipService.
type membershipService struct {
	membershipRepo repository.MembershipRepository
	logger         zerolog.Logger
}

// NewMembershipService creates a new membership service.
func NewMembershipService(membershipRepo repository.MembershipRepository, logger zerolog.Logger) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		logger:         logger.With().Str("service", "membership").Logger(),
	}
}

// GetAll retrieves every active membership plan.
func (s *membershipService) GetAll(ctx context.Context) ([]model.MembershipPlan, error) {
	plans, err := s.membershipRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get membership plans")
		return nil, fmt.Errorf("failed to get membership plans: %w", err)
	}

	return plans, nil
}

// GetByID retrieves one membership plan by ID.
func (s *membershipService) GetByID(ctx context.Context, id string) (*model.MembershipPlan, error) {
	plan, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("plan_id", id).Msg("failed to get membership plan")
		return nil, fmt.Errorf("failed to get membership plan: %w", err)
	}

	if plan == nil {
		s.logger.Debug().Str("plan_id", id).Msg("membership plan not found")
		return nil, model.ErrPlanNotFound
	}

	return plan, nil
}
