package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/historyrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/pricingrepo"
	"fooddelivery/internal/adapters/out/postgres/promotionrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&historyrepo.EntryDTO{},
		&promotionrepo.PromotionDTO{},
		&promotionrepo.RedemptionDTO{},
		&pricingrepo.SettingsDTO{},
	}
}

// AutoMigrate creates or alters the tables for Models. Production databases are
// migrated by cmd/migrate; this serves tests and local development.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// TruncateAll empties every table. Used by integration suites between tests.
func TruncateAll(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE
		order_items, order_status_history, promotion_redemptions,
		orders, couriers, promotions, pricing_settings`).Error
}
