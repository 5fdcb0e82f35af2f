package interfaces

import (
	"context"

	"rab_service/internal/domain/entities"
)

// IPriceCatalogRepository persists unit-price references.
// List returns every entry; callers order and filter through entities.PriceCatalog.
type IPriceCatalogRepository interface {
	List(ctx context.Context) ([]entities.PriceCatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.PriceCatalogEntry, error)
	Create(ctx context.Context, e entities.PriceCatalogEntry) (entities.PriceCatalogEntry, error)
	Update(ctx context.Context, e entities.PriceCatalogEntry) (entities.PriceCatalogEntry, error)
}
