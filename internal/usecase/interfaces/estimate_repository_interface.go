package interfaces

import (
	"context"
	"errors"

	"rab_service/internal/domain/entities"
)

// ErrVersionConflict is returned by write operations when the stored version no
// longer matches the version the caller read.
var ErrVersionConflict = errors.New("version conflict")

// IEstimateRepository abstracts persistence of estimate documents (header + lines).
//
// Lookups return a zero Estimate and a nil error when nothing is stored under the id.
//
// Writes are version-checked: Update and UpdateWithLines only succeed when the
// stored Version equals e.Version, and return the estimate with the bumped Version.
// UpdateWithLines replaces the whole line set and the header in one atomic write.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate, lines []entities.EstimateLine) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	LoadLines(ctx context.Context, estimateID string) ([]entities.EstimateLine, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	UpdateWithLines(ctx context.Context, e entities.Estimate, lines []entities.EstimateLine) (entities.Estimate, error)
}
