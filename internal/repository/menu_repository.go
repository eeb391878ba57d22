package repository

import (
	"context"
	"fmt"

	"hamshark/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuItemRepository implements the MenuItemRepository interface using
// PostgreSQL.
type menuItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu repository.
func NewMenuItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuItemRepository {
	return &menuItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu_item").Logger(),
	}
}

const menuItemColumns = `
	id, name, description, price, category, cuisine,
	is_vegetarian, is_vegan, spice_level, nutrition,
	ingredients, allergens, image_url, tags, is_available
`

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	var m model.MenuItem
	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Cuisine,
		&m.IsVegetarian, &m.IsVegan, &m.SpiceLevel, &m.Nutrition,
		&m.Ingredients, &m.Allergens, &m.ImageURL, &m.Tags, &m.IsAvailable,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]model.MenuItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetAll retrieves every available menu item.
func (r *menuItemRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE is_available
		ORDER BY id
	`
	return r.queryItems(ctx, query)
}

// GetByCategory retrieves available items in a category.
func (r *menuItemRepository) GetByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE is_available AND LOWER(category) = LOWER($1)
		ORDER BY id
	`
	return r.queryItems(ctx, query, category)
}

// GetByCuisine retrieves available items of a cuisine.
func (r *menuItemRepository) GetByCuisine(ctx context.Context, cuisine string) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE is_available AND LOWER(cuisine) = LOWER($1)
		ORDER BY id
	`
	return r.queryItems(ctx, query, cuisine)
}

// GetByID retrieves a single menu item by its ID.
func (r *menuItemRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE id = $1
	`

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("menu_item_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return item, nil
}
