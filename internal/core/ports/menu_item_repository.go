package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
)

// MenuItemRepository defines the read contract for the menu catalog.
// The catalog is read-shared and never mutated by the lifecycle core;
// Add exists only for seeding and administration.
type MenuItemRepository interface {
	// Add persists a new menu item. Used by seeding and administration.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAllAvailable retrieves all menu items currently flagged available.
	GetAllAvailable(ctx context.Context) ([]*menu.MenuItem, error)
}
