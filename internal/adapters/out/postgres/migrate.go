package postgres

import (
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	}
}

// Migrate creates or updates the schema: tables, the unique order code and email
// indexes, and the order_items foreign key with ON DELETE CASCADE.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
