package sqlrepository

import (
	"context"
	"errors"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EstimateRepository stores estimate headers and their lines in two tables and
// writes both inside one database transaction.
type EstimateRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

func (r *EstimateRepository) Create(ctx context.Context, e entities.Estimate, lines []entities.EstimateLine) (entities.Estimate, error) {
	e.Version = 1
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toEstimateModel(e)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return insertLines(tx, e.ID, lines)
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	var m EstimateModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateModel(m), nil
}

func (r *EstimateRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	var rows []EstimateModel
	if err := r.db.WithContext(ctx).Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromEstimateModel(m))
	}
	return out, nil
}

func (r *EstimateRepository) LoadLines(ctx context.Context, estimateID string) ([]entities.EstimateLine, error) {
	var rows []EstimateLineModel
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.EstimateLine, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromEstimateLineModel(m))
	}
	return out, nil
}

func (r *EstimateRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if err := updateHeader(r.db.WithContext(ctx), e); err != nil {
		return entities.Estimate{}, err
	}
	e.Version++
	return e, nil
}

func (r *EstimateRepository) UpdateWithLines(ctx context.Context, e entities.Estimate, lines []entities.EstimateLine) (entities.Estimate, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateHeader(tx, e); err != nil {
			return err
		}
		if err := tx.Where("estimate_id = ?", e.ID).Delete(&EstimateLineModel{}).Error; err != nil {
			return err
		}
		return insertLines(tx, e.ID, lines)
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	e.Version++
	return e, nil
}

// updateHeader writes every header column when the stored version still equals
// e.Version, and bumps it.
func updateHeader(db *gorm.DB, e entities.Estimate) error {
	m := toEstimateModel(e)
	res := db.Model(&EstimateModel{}).
		Where("id = ? AND version = ?", e.ID, e.Version).
		Updates(map[string]interface{}{
			"title":             m.Title,
			"project_type":      m.ProjectType,
			"client_name":       m.ClientName,
			"location":          m.Location,
			"linked_project_id": m.LinkedProjectID,
			"tax_percentage":    m.TaxPercentage,
			"subtotal":          m.Subtotal,
			"tax_amount":        m.TaxAmount,
			"total":             m.Total,
			"status":            m.Status,
			"rejection_reason":  m.RejectionReason,
			"version":           e.Version + 1,
			"updated_at":        m.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrVersionConflict
	}
	return nil
}

func insertLines(tx *gorm.DB, estimateID string, lines []entities.EstimateLine) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]EstimateLineModel, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, toEstimateLineModel(estimateID, l))
	}
	return tx.Create(&rows).Error
}

func toEstimateModel(e entities.Estimate) EstimateModel {
	return EstimateModel{
		ID:              e.ID,
		Title:           e.Title,
		ProjectType:     e.ProjectType,
		ClientName:      e.ClientName,
		Location:        e.Location,
		LinkedProjectID: e.LinkedProjectID,
		TaxPercentage:   e.TaxPercentage.String(),
		Subtotal:        int64(e.Subtotal),
		TaxAmount:       int64(e.TaxAmount),
		Total:           int64(e.Total),
		Status:          string(e.Status),
		RejectionReason: e.RejectionReason,
		Version:         e.Version,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func fromEstimateModel(m EstimateModel) entities.Estimate {
	return entities.Estimate{
		ID:              m.ID,
		Title:           m.Title,
		ProjectType:     m.ProjectType,
		ClientName:      m.ClientName,
		Location:        m.Location,
		LinkedProjectID: m.LinkedProjectID,
		TaxPercentage:   parseDecimal(m.TaxPercentage),
		Subtotal:        entities.Money(m.Subtotal),
		TaxAmount:       entities.Money(m.TaxAmount),
		Total:           entities.Money(m.Total),
		Status:          entities.EstimateStatus(m.Status),
		RejectionReason: m.RejectionReason,
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toEstimateLineModel(estimateID string, l entities.EstimateLine) EstimateLineModel {
	return EstimateLineModel{
		ID:             l.ID,
		EstimateID:     estimateID,
		ParentID:       l.ParentID,
		IsCategory:     l.IsCategory,
		ItemNumber:     l.ItemNumber,
		Label:          l.Label,
		Description:    l.Description,
		Unit:           l.Unit,
		Quantity:       l.Quantity.String(),
		UnitPrice:      int64(l.UnitPrice),
		LineTotal:      int64(l.LineTotal),
		CostCategory:   l.CostCategory,
		CatalogEntryID: l.CatalogEntryID,
		Position:       l.Position,
	}
}

func fromEstimateLineModel(m EstimateLineModel) entities.EstimateLine {
	return entities.EstimateLine{
		ID:             m.ID,
		ParentID:       m.ParentID,
		IsCategory:     m.IsCategory,
		ItemNumber:     m.ItemNumber,
		Label:          m.Label,
		Description:    m.Description,
		Unit:           m.Unit,
		Quantity:       parseDecimal(m.Quantity),
		UnitPrice:      entities.Money(m.UnitPrice),
		LineTotal:      entities.Money(m.LineTotal),
		CostCategory:   m.CostCategory,
		CatalogEntryID: m.CatalogEntryID,
		Position:       m.Position,
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
