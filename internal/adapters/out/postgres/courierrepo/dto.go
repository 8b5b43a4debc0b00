// Package courierrepo maps courier aggregates to the couriers table.
package courierrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name          string      `gorm:"type:varchar(255);not null"`
	AccountStatus string      `gorm:"type:varchar(16);not null;default:active"`
	Available     bool        `gorm:"not null;default:false"`
	Location      LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO is the last reported courier position. Both columns are null
// until the courier reports one.
type LocationDTO struct {
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
}

func fromDomain(c *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:            c.ID().Bytes(),
		Name:          c.Name(),
		AccountStatus: string(c.AccountStatus()),
		Available:     c.IsAvailable(),
	}

	if loc := c.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.Location = LocationDTO{Latitude: &lat, Longitude: &lon}
	}

	return dto
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.ParseAccountStatus(dto.AccountStatus)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Location.Latitude != nil && dto.Location.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Location.Latitude, *dto.Location.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return courier.RestoreCourier(id, dto.Name, status, dto.Available, location)
}
