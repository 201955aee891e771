package office

import "context"

type OfficeRepository interface {
	Create(ctx context.Context, o OfficeLocation) (OfficeLocation, error)
	GetByID(ctx context.Context, id string) (OfficeLocation, error)

	// List returns offices ordered by created_at, id. The order is the tie-break order of nearest-office search.
	List(ctx context.Context, activeOnly bool) ([]OfficeLocation, error)

	Update(ctx context.Context, req UpdateOfficeRequest) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
