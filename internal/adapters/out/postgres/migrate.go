package postgres

import (
	"catering/internal/adapters/out/postgres/menurepo"
	"catering/internal/adapters/out/postgres/notifyrepo"
	"catering/internal/adapters/out/postgres/quoterepo"

	"gorm.io/gorm"
)

// MigrateSchema creates or updates all tables used by the catering service.
// Safe to run on every startup; gorm only applies missing changes.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&quoterepo.QuoteRequestDTO{},
		&quoterepo.LineItemDTO{},
		&quoterepo.ChefBidDTO{},
		&quoterepo.ItemOrderDTO{},
		&notifyrepo.NotificationDTO{},
	)
}
