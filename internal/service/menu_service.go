package service

import (
	"context"
	"fmt"

	"hamshark/internal/model"
	"hamshark/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuItemRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuItemRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// GetAll retrieves every available menu item.
func (s *menuService) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get menu items")
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved menu items")
	return items, nil
}

// GetByCategory retrieves available items in a category.
func (s *menuService) GetByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetByCategory(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to get menu items by category")
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	s.logger.Debug().
		Str("category", category).
		Int("count", len(items)).
		Msg("retrieved menu items by category")

	return items, nil
}

// GetByCuisine retrieves available items of a cuisine.
func (s *menuService) GetByCuisine(ctx context.Context, cuisine string) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetByCuisine(ctx, cuisine)
	if err != nil {
		s.logger.Error().Err(err).Str("cuisine", cuisine).Msg("failed to get menu items by cuisine")
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	s.logger.Debug().
		Str("cuisine", cuisine).
		Int("count", len(items)).
		Msg("retrieved menu items by cuisine")

	return items, nil
}

// GetByID retrieves a single menu item by ID.
func (s *menuService) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	if id == "" {
		s.logger.Warn().Msg("menu item ID is empty")
		return nil, model.ErrMenuItemNotFound
	}

	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_item_id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	if item == nil {
		s.logger.Debug().Str("menu_item_id", id).Msg("menu item not found")
		return nil, model.ErrMenuItemNotFound
	}

	return item, nil
}
