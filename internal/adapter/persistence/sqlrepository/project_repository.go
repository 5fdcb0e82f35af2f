package sqlrepository

import (
	"context"
	"errors"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	m := ProjectModel{
		ID:          p.ID,
		Name:        p.Name,
		BudgetValue: int64(p.BudgetValue),
		Status:      string(p.Status),
		EstimateID:  p.EstimateID,
		CreatedAt:   p.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var m ProjectModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	return entities.Project{
		ID:          m.ID,
		Name:        m.Name,
		BudgetValue: entities.Money(m.BudgetValue),
		Status:      entities.ProjectStatus(m.Status),
		EstimateID:  m.EstimateID,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// Delete removes the project with its payments and ledger in one transaction.
// Deleting an unknown project is not an error.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&ClientPaymentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&TransactionModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&ProjectModel{}).Error
	})
}

type TransactionRepository struct {
	db *gorm.DB
}

var _ interfaces.ITransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	m := TransactionModel{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Category:    string(t.Category),
		Amount:      int64(t.Amount),
		Date:        t.Date,
		Description: t.Description,
		Reference:   t.Reference,
		CreatedAt:   t.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Transaction, error) {
	var rows []TransactionModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date asc, id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Transaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Transaction{
			ID:          m.ID,
			ProjectID:   m.ProjectID,
			Category:    entities.TransactionCategory(m.Category),
			Amount:      entities.Money(m.Amount),
			Date:        m.Date,
			Description: m.Description,
			Reference:   m.Reference,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}
