package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	// GetByDate returns every holiday on date (any type), ordered by name.
	GetByDate(ctx context.Context, date time.Time) ([]Holiday, error)
	// ListBetween returns holidays with from <= date <= to, ordered by date then name.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
