package sqlrepository

import (
	"context"
	"errors"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PriceCatalogRepository struct {
	db *gorm.DB
}

var _ interfaces.IPriceCatalogRepository = (*PriceCatalogRepository)(nil)

func NewPriceCatalogRepository(db *gorm.DB) *PriceCatalogRepository {
	return &PriceCatalogRepository{db: db}
}

func (r *PriceCatalogRepository) List(ctx context.Context) ([]entities.PriceCatalogEntry, error) {
	var rows []PriceCatalogEntryModel
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.PriceCatalogEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromCatalogModel(m))
	}
	return out, nil
}

func (r *PriceCatalogRepository) GetByID(ctx context.Context, id string) (entities.PriceCatalogEntry, error) {
	var m PriceCatalogEntryModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PriceCatalogEntry{}, nil
	}
	if err != nil {
		return entities.PriceCatalogEntry{}, err
	}
	return fromCatalogModel(m), nil
}

func (r *PriceCatalogRepository) Create(ctx context.Context, e entities.PriceCatalogEntry) (entities.PriceCatalogEntry, error) {
	m := toCatalogModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.PriceCatalogEntry{}, err
	}
	return e, nil
}

// Update returns a zero entry when nothing is stored under e.ID.
func (r *PriceCatalogRepository) Update(ctx context.Context, e entities.PriceCatalogEntry) (entities.PriceCatalogEntry, error) {
	m := toCatalogModel(e)
	res := r.db.WithContext(ctx).Model(&PriceCatalogEntryModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"description": m.Description,
			"unit":        m.Unit,
			"unit_price":  m.UnitPrice,
			"category":    m.Category,
			"position":    m.Position,
			"updated_at":  m.UpdatedAt,
		})
	if res.Error != nil {
		return entities.PriceCatalogEntry{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.PriceCatalogEntry{}, nil
	}
	return e, nil
}

func toCatalogModel(e entities.PriceCatalogEntry) PriceCatalogEntryModel {
	return PriceCatalogEntryModel{
		ID:          e.ID,
		Description: e.Description,
		Unit:        e.Unit,
		UnitPrice:   int64(e.UnitPrice),
		Category:    e.Category,
		Position:    e.Position,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func fromCatalogModel(m PriceCatalogEntryModel) entities.PriceCatalogEntry {
	return entities.PriceCatalogEntry{
		ID:          m.ID,
		Description: m.Description,
		Unit:        m.Unit,
		UnitPrice:   entities.Money(m.UnitPrice),
		Category:    m.Category,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
