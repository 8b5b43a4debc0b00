// Package pricingrepo reads the tariff configuration from pricing_settings.
package pricingrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// settingsRowID is the only row of pricing_settings.
const settingsRowID = 1

// SettingsDTO is the single-row pricing configuration.
type SettingsDTO struct {
	ID              int             `gorm:"primaryKey"`
	BaseFee         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PerKmRate       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RadiusKm        float64         `gorm:"type:double precision;not null"`
	OriginLatitude  *float64        `gorm:"type:double precision"`
	OriginLongitude *float64        `gorm:"type:double precision"`
	UpdatedAt       time.Time
}

func (SettingsDTO) TableName() string {
	return "pricing_settings"
}

// GormPricingProvider implements ports.PricingProvider. Every call reads the
// row so operator changes apply to the next order; when the row is missing the
// configured defaults are used.
type GormPricingProvider struct {
	db       *gorm.DB
	defaults services.TariffConfig
}

func NewGormPricingProvider(db *gorm.DB, defaults services.TariffConfig) *GormPricingProvider {
	return &GormPricingProvider{db: db, defaults: defaults}
}

func (p *GormPricingProvider) Current(ctx context.Context) (services.TariffConfig, error) {
	var dto SettingsDTO
	err := p.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p.defaults, nil
	}
	if err != nil {
		return services.TariffConfig{}, err
	}

	cfg := services.TariffConfig{
		BaseFee:   dto.BaseFee,
		PerKmRate: dto.PerKmRate,
		RadiusKm:  dto.RadiusKm,
	}
	if dto.OriginLatitude != nil && dto.OriginLongitude != nil {
		origin, locErr := kernel.NewLocation(*dto.OriginLatitude, *dto.OriginLongitude)
		if locErr != nil {
			return services.TariffConfig{}, locErr
		}
		cfg.Origin = &origin
	}

	if err = cfg.Validate(); err != nil {
		return services.TariffConfig{}, err
	}
	return cfg, nil
}

// Save replaces the stored configuration.
func (p *GormPricingProvider) Save(ctx context.Context, cfg services.TariffConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dto := SettingsDTO{
		ID:        settingsRowID,
		BaseFee:   cfg.BaseFee,
		PerKmRate: cfg.PerKmRate,
		RadiusKm:  cfg.RadiusKm,
	}
	if cfg.Origin != nil {
		lat, lon := cfg.Origin.Latitude(), cfg.Origin.Longitude()
		dto.OriginLatitude = &lat
		dto.OriginLongitude = &lon
	}

	return p.db.WithContext(ctx).Save(&dto).Error
}
