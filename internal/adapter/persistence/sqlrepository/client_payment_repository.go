package sqlrepository

import (
	"context"
	"encoding/json"
	"errors"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ClientPaymentRepository keeps only the raw provider payload; the parsed map is
// rebuilt on read.
type ClientPaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientPaymentRepository = (*ClientPaymentRepository)(nil)

func NewClientPaymentRepository(db *gorm.DB) *ClientPaymentRepository {
	return &ClientPaymentRepository{db: db}
}

func (r *ClientPaymentRepository) Create(ctx context.Context, p entities.ClientPayment) (entities.ClientPayment, error) {
	m := ClientPaymentModel{
		ID:                 p.ID,
		ProjectID:          p.ProjectID,
		Amount:             int64(p.Amount),
		Date:               p.Date,
		Status:             string(p.Status),
		TransactionID:      p.TransactionID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.ClientPayment{}, err
	}
	return p, nil
}

func (r *ClientPaymentRepository) GetByID(ctx context.Context, id string) (entities.ClientPayment, error) {
	var m ClientPaymentModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ClientPayment{}, nil
	}
	if err != nil {
		return entities.ClientPayment{}, err
	}
	return fromClientPaymentModel(m), nil
}

func (r *ClientPaymentRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientPayment, error) {
	var rows []ClientPaymentModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.ClientPayment, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromClientPaymentModel(m))
	}
	return out, nil
}

func fromClientPaymentModel(m ClientPaymentModel) entities.ClientPayment {
	p := entities.ClientPayment{
		ID:            m.ID,
		ProjectID:     m.ProjectID,
		Amount:        entities.Money(m.Amount),
		Date:          m.Date,
		Status:        entities.PaymentStatus(m.Status),
		TransactionID: m.TransactionID,
	}
	if m.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(m.ProviderPayloadRaw)
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}
