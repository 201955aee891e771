package office

import "context"

type OfficeService interface {
	Create(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error)
	Get(ctx context.Context, id string) (OfficeResponse, error)
	List(ctx context.Context, activeOnly bool) ([]OfficeResponse, error)
	Update(ctx context.Context, req UpdateOfficeRequest) (OfficeResponse, error)
	SetActive(ctx context.Context, id string, active bool) (OfficeResponse, error)
	Delete(ctx context.Context, id string) error
}
