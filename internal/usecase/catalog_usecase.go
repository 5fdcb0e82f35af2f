package usecase

import (
	"context"
	"strings"
	"time"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCatalogSearchLimit caps autocomplete results when the caller does not ask
// for a specific number.
const DefaultCatalogSearchLimit = 5

// CatalogEntryInput carries the editable fields of a price catalog entry.
type CatalogEntryInput struct {
	Description string
	Unit        string
	UnitPrice   entities.Money
	Category    string
}

type ICatalogUseCase interface {
	Search(ctx context.Context, query string, limit int) ([]entities.PriceCatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.PriceCatalogEntry, error)
	Create(ctx context.Context, in CatalogEntryInput) (entities.PriceCatalogEntry, error)
	Update(ctx context.Context, id string, in CatalogEntryInput) (entities.PriceCatalogEntry, error)
}

type CatalogUseCase struct {
	repo         interfaces.IPriceCatalogRepository
	defaultLimit int
	now          func() time.Time
	newID        func() string
	log          *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IPriceCatalogRepository, defaultLimit int) *CatalogUseCase {
	if defaultLimit <= 0 {
		defaultLimit = DefaultCatalogSearchLimit
	}
	return &CatalogUseCase{
		repo:         repo,
		defaultLimit: defaultLimit,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
		log:          zap.L().Named("catalog.usecase"),
	}
}

// Search returns at most limit entries whose description contains query, in
// catalog order. limit <= 0 selects the configured default.
func (u *CatalogUseCase) Search(ctx context.Context, query string, limit int) ([]entities.PriceCatalogEntry, error) {
	if limit <= 0 {
		limit = u.defaultLimit
	}
	if strings.TrimSpace(query) == "" {
		return []entities.PriceCatalogEntry{}, nil
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("[catalog][usecase] list failed", zap.Error(err))
		return nil, persistenceError(err)
	}
	matches := entities.NewPriceCatalog(all).Search(query)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.PriceCatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PriceCatalogEntry{}, entities.ErrCatalogEntryNotFound
	}
	entry, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PriceCatalogEntry{}, persistenceError(err)
	}
	if entry.ID == "" {
		return entities.PriceCatalogEntry{}, entities.ErrCatalogEntryNotFound
	}
	return entry, nil
}

// Create appends a new entry at the end of the catalog.
func (u *CatalogUseCase) Create(ctx context.Context, in CatalogEntryInput) (entities.PriceCatalogEntry, error) {
	now := u.now()
	entry := entities.PriceCatalogEntry{
		ID:          u.newID(),
		Description: strings.TrimSpace(in.Description),
		Unit:        strings.TrimSpace(in.Unit),
		UnitPrice:   in.UnitPrice,
		Category:    strings.TrimSpace(in.Category),
		Position:    now.UnixNano(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := entry.Validate(); err != nil {
		return entities.PriceCatalogEntry{}, err
	}

	created, err := u.repo.Create(ctx, entry)
	if err != nil {
		u.log.Error("[catalog][usecase] create failed", zap.Error(err))
		return entities.PriceCatalogEntry{}, persistenceError(err)
	}
	u.log.Info("[catalog][usecase] created", zap.String("entry_id", created.ID))
	return created, nil
}

// Update rewrites an entry in place. Estimate lines populated from it earlier keep
// their copied values.
func (u *CatalogUseCase) Update(ctx context.Context, id string, in CatalogEntryInput) (entities.PriceCatalogEntry, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PriceCatalogEntry{}, err
	}
	current.Description = strings.TrimSpace(in.Description)
	current.Unit = strings.TrimSpace(in.Unit)
	current.UnitPrice = in.UnitPrice
	current.Category = strings.TrimSpace(in.Category)
	current.UpdatedAt = u.now()
	if err := current.Validate(); err != nil {
		return entities.PriceCatalogEntry{}, err
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.PriceCatalogEntry{}, persistenceError(err)
	}
	if updated.ID == "" {
		return entities.PriceCatalogEntry{}, entities.ErrCatalogEntryNotFound
	}
	return updated, nil
}
