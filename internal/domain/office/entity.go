package office

import (
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/pkg/geo"
)

const (
	MinRadiusMeters     = 50
	MaxRadiusMeters     = 500
	DefaultRadiusMeters = 100
)

// OfficeLocation is an authorized physical work site.
type OfficeLocation struct {
	ID          string
	Name        string
	Address     *string
	Coordinates geo.Point
	Radius      int // meters
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
