package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEstimateNotFound            = errors.New("estimate not found")
	ErrInvalidEstimateID           = errors.New("invalid estimate id")
	ErrInvalidLineID               = errors.New("invalid line id")
	ErrPersistenceFailure          = errors.New("persistence failure")
	ErrDestructiveTransitionFailed = errors.New("destructive transition failed")
	ErrConcurrentModification      = errors.New("estimate was modified concurrently")
	ErrConfirmationRequired        = errors.New("leaving approved deletes the linked project and must be confirmed")
)

// DefaultTaxPercentage is applied to new estimates when neither the caller nor the
// configuration provides one (Indonesian VAT).
var DefaultTaxPercentage = decimal.NewFromInt(11)

// CreateEstimateInput carries the header fields of a new estimate.
// A nil TaxPercentage selects the configured default.
type CreateEstimateInput struct {
	Title         string
	ProjectType   string
	ClientName    string
	Location      string
	TaxPercentage *decimal.Decimal
}

// IEstimateUseCase exposes the bill-of-quantities editor and the estimate lifecycle.
//
// Every mutation returns the full document as persisted, with totals recalculated.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.EstimateDocument, error)
	GetByID(ctx context.Context, id string) (entities.EstimateDocument, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	AddCategory(ctx context.Context, estimateID, label string) (entities.EstimateDocument, error)
	RenameCategory(ctx context.Context, estimateID, lineID, label string) (entities.EstimateDocument, error)
	AddLeaf(ctx context.Context, estimateID, categoryID string) (entities.EstimateDocument, error)
	UpdateLeaf(ctx context.Context, estimateID, lineID string, u entities.LeafUpdate) (entities.EstimateDocument, error)
	ApplyCatalogEntry(ctx context.Context, estimateID, lineID, entryID string) (entities.EstimateDocument, error)
	RemoveLine(ctx context.Context, estimateID, lineID string) (entities.EstimateDocument, error)
	SetTaxPercentage(ctx context.Context, estimateID string, pct decimal.Decimal) (entities.EstimateDocument, error)
	TransitionStatus(ctx context.Context, estimateID string, to entities.EstimateStatus, reason string, confirmDestructive bool) (entities.EstimateDocument, error)
}

type EstimateUseCase struct {
	repo        interfaces.IEstimateRepository
	projectRepo interfaces.IProjectRepository
	catalogRepo interfaces.IPriceCatalogRepository
	locker      interfaces.IDocumentLocker
	metrics     interfaces.IMetricsRecorder
	defaultTax  decimal.Decimal
	now         func() time.Time
	newID       func() string
	log         *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the estimate editor. locker and metrics may be nil.
func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	projectRepo interfaces.IProjectRepository,
	catalogRepo interfaces.IPriceCatalogRepository,
	locker interfaces.IDocumentLocker,
	metrics interfaces.IMetricsRecorder,
	defaultTax decimal.Decimal,
) *EstimateUseCase {
	if entities.ValidateTaxPercentage(defaultTax) != nil {
		defaultTax = DefaultTaxPercentage
	}
	return &EstimateUseCase{
		repo:        repo,
		projectRepo: projectRepo,
		catalogRepo: catalogRepo,
		locker:      locker,
		metrics:     metrics,
		defaultTax:  defaultTax,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
		log:         zap.L().Named("estimate.usecase"),
	}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.EstimateDocument, error) {
	tax := u.defaultTax
	if in.TaxPercentage != nil {
		tax = *in.TaxPercentage
	}
	est, err := entities.NewEstimate(u.newID(), in.Title, in.ProjectType, in.ClientName, in.Location, tax, u.now())
	if err != nil {
		u.observeMutation("create", err)
		return entities.EstimateDocument{}, err
	}

	created, err := u.repo.Create(ctx, est, nil)
	if err != nil {
		u.log.Error("[estimate][usecase] create failed", zap.String("estimate_id", est.ID), zap.Error(err))
		err = persistenceError(err)
		u.observeMutation("create", err)
		return entities.EstimateDocument{}, err
	}
	u.log.Info("[estimate][usecase] created", zap.String("estimate_id", created.ID), zap.String("tax_percentage", created.TaxPercentage.String()))
	u.observeMutation("create", nil)
	return entities.EstimateDocument{Estimate: created, Lines: []entities.EstimateLine{}}, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.EstimateDocument, error) {
	est, tree, err := u.load(ctx, id)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	return entities.EstimateDocument{Estimate: est, Lines: tree.Lines()}, nil
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, persistenceError(err)
	}
	return items, nil
}

func (u *EstimateUseCase) AddCategory(ctx context.Context, estimateID, label string) (entities.EstimateDocument, error) {
	return u.mutateLines(ctx, "add_category", estimateID, func(_ *entities.Estimate, tree *entities.EstimateLineTree) error {
		_, err := tree.AddCategory(label)
		return err
	})
}

func (u *EstimateUseCase) RenameCategory(ctx context.Context, estimateID, lineID, label string) (entities.EstimateDocument, error) {
	if strings.TrimSpace(lineID) == "" {
		return entities.EstimateDocument{}, ErrInvalidLineID
	}
	return u.mutateLines(ctx, "rename_category", estimateID, func(_ *entities.Estimate, tree *entities.EstimateLineTree) error {
		_, err := tree.RenameCategory(lineID, label)
		return err
	})
}

func (u *EstimateUseCase) AddLeaf(ctx context.Context, estimateID, categoryID string) (entities.EstimateDocument, error) {
	if strings.TrimSpace(categoryID) == "" {
		return entities.EstimateDocument{}, ErrInvalidLineID
	}
	return u.mutateLines(ctx, "add_leaf", estimateID, func(_ *entities.Estimate, tree *entities.EstimateLineTree) error {
		_, err := tree.AddLeaf(categoryID)
		return err
	})
}

func (u *EstimateUseCase) UpdateLeaf(ctx context.Context, estimateID, lineID string, upd entities.LeafUpdate) (entities.EstimateDocument, error) {
	if strings.TrimSpace(lineID) == "" {
		return entities.EstimateDocument{}, ErrInvalidLineID
	}
	return u.mutateLines(ctx, "update_leaf", estimateID, func(_ *entities.Estimate, tree *entities.EstimateLineTree) error {
		_, err := tree.UpdateLeaf(lineID, upd)
		return err
	})
}

// ApplyCatalogEntry copies a catalog entry into a leaf. The entry is read before
// the document lock is taken; the catalog is never written by estimate editing.
func (u *EstimateUseCase) ApplyCatalogEntry(ctx context.Context, estimateID, lineID, entryID string) (entities.EstimateDocument, error) {
	if strings.TrimSpace(lineID) == "" {
		return entities.EstimateDocument{}, ErrInvalidLineID
	}
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.EstimateDocument{}, fmt.Errorf("%w: catalog entry id is required", entities.ErrInvalidInput)
	}
	if u.catalogRepo == nil {
		return entities.EstimateDocument{}, errors.New("price catalog repository not configured")
	}
	entry, err := u.catalogRepo.GetByID(ctx, entryID)
	if err != nil {
		return entities.EstimateDocument{}, persistenceError(err)
	}
	if entry.ID == "" {
		return entities.EstimateDocument{}, entities.ErrCatalogEntryNotFound
	}

	return u.mutateLines(ctx, "apply_catalog_entry", estimateID, func(_ *entities.Estimate, tree *entities.EstimateLineTree) error {
		_, err := tree.ApplyCatalogEntry(lineID, entry)
		return err
	})
}

func (u *EstimateUseCase) RemoveLine(ctx context.Context, estimateID, lineID string) (entities.EstimateDocument, error) {
	if strings.TrimSpace(lineID) == "" {
		return entities.EstimateDocument{}, ErrInvalidLineID
	}
	return u.mutateLines(ctx, "remove_line", estimateID, func(_ *entities.Estimate, tree *entities.EstimateLineTree) error {
		return tree.RemoveLine(lineID)
	})
}

// SetTaxPercentage only rewrites the header; the line set is unchanged.
func (u *EstimateUseCase) SetTaxPercentage(ctx context.Context, estimateID string, pct decimal.Decimal) (entities.EstimateDocument, error) {
	if err := entities.ValidateTaxPercentage(pct); err != nil {
		u.observeMutation("set_tax", err)
		return entities.EstimateDocument{}, err
	}

	var doc entities.EstimateDocument
	err := u.withDocument(ctx, estimateID, func(est entities.Estimate, tree *entities.EstimateLineTree) error {
		if err := est.SetTaxPercentage(pct, tree); err != nil {
			return err
		}
		est.UpdatedAt = u.now()
		saved, err := u.repo.Update(ctx, est)
		if err != nil {
			return persistenceError(err)
		}
		doc = entities.EstimateDocument{Estimate: saved, Lines: tree.Lines()}
		return nil
	})
	u.observeMutation("set_tax", err)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	return doc, nil
}

// TransitionStatus moves the estimate to another status as one unit of work.
//
// Approving provisions a project first and links it in the header write; if that
// write fails the project is deleted again. Leaving approved is refused with
// ErrConfirmationRequired unless confirmDestructive is set; the check runs under the
// document lock against the stored status. The project is deleted before the header
// is written, so a failed deletion leaves the estimate approved and linked and
// returns ErrDestructiveTransitionFailed.
func (u *EstimateUseCase) TransitionStatus(ctx context.Context, estimateID string, to entities.EstimateStatus, reason string, confirmDestructive bool) (entities.EstimateDocument, error) {
	var (
		doc  entities.EstimateDocument
		kind = entities.TransitionNoop
	)
	err := u.withDocument(ctx, estimateID, func(est entities.Estimate, tree *entities.EstimateLineTree) error {
		plan, err := entities.PlanTransition(est, to, reason)
		if err != nil {
			return err
		}
		if plan.Kind == entities.TransitionRevokeApproval && !confirmDestructive {
			return ErrConfirmationRequired
		}
		kind = plan.Kind
		u.log.Info("[estimate][usecase] transition planned",
			zap.String("estimate_id", est.ID),
			zap.String("from", string(plan.From)),
			zap.String("to", string(plan.To)),
			zap.Stringer("kind", plan.Kind),
		)

		var saved entities.Estimate
		switch plan.Kind {
		case entities.TransitionNoop:
			saved = est
		case entities.TransitionPlain:
			plan.Apply(&est, "", u.now())
			if saved, err = u.repo.Update(ctx, est); err != nil {
				return persistenceError(err)
			}
		case entities.TransitionApprove:
			if saved, err = u.approve(ctx, est, plan); err != nil {
				return err
			}
		case entities.TransitionRevokeApproval:
			if saved, err = u.revokeApproval(ctx, est, plan); err != nil {
				return err
			}
		}
		doc = entities.EstimateDocument{Estimate: saved, Lines: tree.Lines()}
		return nil
	})
	u.observeTransition(kind, err)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	return doc, nil
}

func (u *EstimateUseCase) approve(ctx context.Context, est entities.Estimate, plan entities.TransitionPlan) (entities.Estimate, error) {
	if u.projectRepo == nil {
		return entities.Estimate{}, errors.New("project repository not configured")
	}
	spec := plan.ProjectSpec(est)
	now := u.now()
	project, err := u.projectRepo.Create(ctx, entities.Project{
		ID:          u.newID(),
		Name:        spec.Name,
		BudgetValue: spec.BudgetValue,
		Status:      entities.ProjectStatusActive,
		EstimateID:  spec.EstimateID,
		CreatedAt:   now,
	})
	if err != nil {
		u.log.Error("[estimate][usecase] project create failed", zap.String("estimate_id", est.ID), zap.Error(err))
		return entities.Estimate{}, persistenceError(err)
	}

	plan.Apply(&est, project.ID, now)
	saved, err := u.repo.Update(ctx, est)
	if err == nil {
		u.log.Info("[estimate][usecase] approved",
			zap.String("estimate_id", est.ID),
			zap.String("project_id", project.ID),
			zap.Int64("budget_value", int64(project.BudgetValue)),
		)
		return saved, nil
	}

	writeErr := persistenceError(err)
	if delErr := u.projectRepo.Delete(context.WithoutCancel(ctx), project.ID); delErr != nil {
		u.log.Error("[estimate][usecase] orphan project left after failed approval",
			zap.String("estimate_id", est.ID),
			zap.String("project_id", project.ID),
			zap.Error(delErr),
		)
		return entities.Estimate{}, errors.Join(writeErr, delErr)
	}
	u.log.Warn("[estimate][usecase] approval rolled back", zap.String("estimate_id", est.ID), zap.Error(err))
	return entities.Estimate{}, writeErr
}

// revokeApproval deletes the linked project, then writes the header.
//
// A project deletion that fails partway (the DynamoDB cascade is not atomic) may
// already have removed some ledger rows; the project item itself goes last, so the
// estimate stays approved with a resolvable link and a retry finishes the job. If
// the header write fails after the project is gone, the project record is put back
// so the link still resolves; its ledger is not restored.
func (u *EstimateUseCase) revokeApproval(ctx context.Context, est entities.Estimate, plan entities.TransitionPlan) (entities.Estimate, error) {
	if u.projectRepo == nil {
		return entities.Estimate{}, errors.New("project repository not configured")
	}
	projectID := est.LinkedProjectID

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("%w: %w", ErrDestructiveTransitionFailed, err)
	}
	if err := u.projectRepo.Delete(ctx, projectID); err != nil {
		u.log.Error("[estimate][usecase] project delete failed; estimate stays approved",
			zap.String("estimate_id", est.ID),
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return entities.Estimate{}, fmt.Errorf("%w: %w", ErrDestructiveTransitionFailed, err)
	}

	plan.Apply(&est, "", u.now())
	saved, err := u.repo.Update(ctx, est)
	if err == nil {
		u.log.Info("[estimate][usecase] approval revoked", zap.String("estimate_id", est.ID), zap.String("project_id", projectID))
		return saved, nil
	}

	writeErr := persistenceError(err)
	if project.ID == "" {
		return entities.Estimate{}, writeErr
	}
	if _, rbErr := u.projectRepo.Create(context.WithoutCancel(ctx), project); rbErr != nil {
		u.log.Error("[estimate][usecase] approved estimate left linked to a deleted project",
			zap.String("estimate_id", est.ID),
			zap.String("project_id", projectID),
			zap.Error(rbErr),
		)
		return entities.Estimate{}, errors.Join(writeErr, rbErr)
	}
	u.log.Warn("[estimate][usecase] revoke rolled back; project record recreated without its ledger",
		zap.String("estimate_id", est.ID),
		zap.String("project_id", projectID),
		zap.Error(err),
	)
	return entities.Estimate{}, writeErr
}

// mutateLines runs a tree edit under the document lock, recalculates the totals
// and stores header and lines together.
func (u *EstimateUseCase) mutateLines(ctx context.Context, op, estimateID string, fn func(*entities.Estimate, *entities.EstimateLineTree) error) (entities.EstimateDocument, error) {
	var doc entities.EstimateDocument
	err := u.withDocument(ctx, estimateID, func(est entities.Estimate, tree *entities.EstimateLineTree) error {
		if err := fn(&est, tree); err != nil {
			return err
		}
		if err := est.Recalculate(tree); err != nil {
			return err
		}
		est.UpdatedAt = u.now()

		lines := tree.Lines()
		saved, err := u.repo.UpdateWithLines(ctx, est, lines)
		if err != nil {
			u.log.Error("[estimate][usecase] save failed", zap.String("op", op), zap.String("estimate_id", est.ID), zap.Error(err))
			return persistenceError(err)
		}
		doc = entities.EstimateDocument{Estimate: saved, Lines: lines}
		return nil
	})
	u.observeMutation(op, err)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	u.log.Debug("[estimate][usecase] mutated",
		zap.String("op", op),
		zap.String("estimate_id", doc.ID),
		zap.Int64("total", int64(doc.Total)),
		zap.Int64("version", doc.Version),
	)
	return doc, nil
}

// withDocument takes the per-estimate lock, loads the document and hands it to fn.
func (u *EstimateUseCase) withDocument(ctx context.Context, estimateID string, fn func(entities.Estimate, *entities.EstimateLineTree) error) error {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return ErrInvalidEstimateID
	}

	release, err := u.lock(ctx, estimateID)
	if err != nil {
		return err
	}
	defer release()

	est, tree, err := u.load(ctx, estimateID)
	if err != nil {
		return err
	}
	return fn(est, tree)
}

func (u *EstimateUseCase) lock(ctx context.Context, estimateID string) (func(), error) {
	if u.locker == nil {
		return func() {}, nil
	}
	release, err := u.locker.Lock(ctx, "estimate:"+estimateID)
	if err != nil {
		u.log.Warn("[estimate][usecase] lock not acquired", zap.String("estimate_id", estimateID), zap.Error(err))
		if errors.Is(err, interfaces.ErrLockNotAcquired) {
			return nil, fmt.Errorf("%w: %w", ErrConcurrentModification, err)
		}
		return nil, persistenceError(err)
	}
	return release, nil
}

func (u *EstimateUseCase) load(ctx context.Context, estimateID string) (entities.Estimate, *entities.EstimateLineTree, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, nil, ErrInvalidEstimateID
	}
	est, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, nil, persistenceError(err)
	}
	if est.ID == "" {
		return entities.Estimate{}, nil, ErrEstimateNotFound
	}
	lines, err := u.repo.LoadLines(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, nil, persistenceError(err)
	}
	tree, err := entities.RestoreEstimateLineTree(lines)
	if err != nil {
		u.log.Error("[estimate][usecase] stored lines are inconsistent", zap.String("estimate_id", estimateID), zap.Error(err))
		return entities.Estimate{}, nil, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}
	// Stored totals are derived data; the tree is authoritative.
	if err := est.Recalculate(tree); err != nil {
		return entities.Estimate{}, nil, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}
	return est, tree, nil
}

func (u *EstimateUseCase) observeMutation(op string, err error) {
	if u.metrics != nil {
		u.metrics.ObserveMutation(op, outcomeOf(err))
	}
}

func (u *EstimateUseCase) observeTransition(kind entities.TransitionKind, err error) {
	if u.metrics != nil {
		u.metrics.ObserveTransition(kind.String(), outcomeOf(err))
	}
}

// persistenceError classifies a storage error. Version conflicts surface as
// ErrConcurrentModification; everything else is wrapped in ErrPersistenceFailure.
func persistenceError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrPersistenceFailure) || errors.Is(err, ErrConcurrentModification) {
		return err
	}
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return fmt.Errorf("%w: %w", ErrConcurrentModification, err)
	}
	return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, ErrPersistenceFailure), errors.Is(err, ErrDestructiveTransitionFailed):
		return "error"
	}
	return "rejected"
}
