package service

import (
	"context"
	"fmt"

	"hamshark/internal/model"
	"hamshark/internal/repository"

	"github.com/rs/zerolog"
)

var validTruckStatuses = map[string]bool{
	model.TruckStatusOpen:   true,
	model.TruckStatusComing: true,
	model.TruckStatusClosed: true,
}

// truckService implements TruckService.
type truckService struct {
	truckRepo repository.TruckRepository
	logger    zerolog.Logger
}

// NewTruckService creates a new truck service.
func NewTruckService(truckRepo repository.TruckRepository, logger zerolog.Logger) TruckService {
	return &truckService{
		truckRepo: truckRepo,
		logger:    logger.With().Str("service", "truck").Logger(),
	}
}

// GetAll retrieves every truck location.
func (s *truckService) GetAll(ctx context.Context) ([]model.TruckLocation, error) {
	trucks, err := s.truckRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get truck locations")
		return nil, fmt.Errorf("failed to get truck locations: %w", err)
	}

	return trucks, nil
}

// GetByID retrieves one truck location by ID.
func (s *truckService) GetByID(ctx context.Context, id string) (*model.TruckLocation, error) {
	truck, err := s.truckRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("truck_id", id).Msg("failed to get truck location")
		return nil, fmt.Errorf("failed to get truck location: %w", err)
	}

	if truck == nil {
		s.logger.Debug().Str("truck_id", id).Msg("truck location not found")
		return nil, model.ErrTruckNotFound
	}

	return truck, nil
}

// UpdateStatus sets a truck location's current status.
func (s *truckService) UpdateStatus(ctx context.Context, id, status string) (*model.TruckLocation, error) {
	if !validTruckStatuses[status] {
		s.logger.Warn().Str("truck_id", id).Str("status", status).Msg("invalid truck status")
		return nil, model.NewDomainError(model.ErrCodeInvalidPayload, "Truck status must be open, coming or closed")
	}

	truck, err := s.truckRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("truck_id", id).Msg("failed to update truck status")
		return nil, fmt.Errorf("failed to update truck status: %w", err)
	}

	if truck == nil {
		s.logger.Debug().Str("truck_id", id).Msg("truck location not found for status update")
		return nil, model.ErrTruckNotFound
	}

	s.logger.Info().
		Str("truck_id", id).
		Str("status", status).
		Msg("truck status updated")

	return truck, nil
}
