package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"rab_service/internal/domain/entities"
	mock_interfaces "rab_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func catalogEntries(n int) []entities.PriceCatalogEntry {
	out := make([]entities.PriceCatalogEntry, 0, n)
	for i := n; i >= 1; i-- {
		out = append(out, entities.PriceCatalogEntry{
			ID:          fmt.Sprintf("c%d", i),
			Description: fmt.Sprintf("Pasangan Bata tipe %d", i),
			Unit:        "m2",
			UnitPrice:   entities.Money(100_000 + i),
			Position:    int64(i),
		})
	}
	return out
}

func TestCatalogUseCase_Search(t *testing.T) {
	t.Run("default limit and catalog order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, 0)

		repo.EXPECT().List(gomock.Any()).Return(catalogEntries(8), nil)

		got, err := uc.Search(context.Background(), "bata", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != DefaultCatalogSearchLimit {
			t.Fatalf("expected %d results, got %d", DefaultCatalogSearchLimit, len(got))
		}
		if got[0].ID != "c1" || got[4].ID != "c5" {
			t.Fatalf("expected catalog order, got %s..%s", got[0].ID, got[4].ID)
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, 5)

		repo.EXPECT().List(gomock.Any()).Return(catalogEntries(8), nil)

		got, err := uc.Search(context.Background(), "TIPE", 2)
		if err != nil || len(got) != 2 {
			t.Fatalf("expected 2 results, got %d err=%v", len(got), err)
		}
	})

	t.Run("empty query does not hit storage", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, 5)
		got, err := uc.Search(context.Background(), "  ", 5)
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil result, got %v err=%v", got, err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, 5)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Search(context.Background(), "bata", 5); !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}

func TestCatalogUseCase_CreateAndUpdate(t *testing.T) {
	t.Run("create validates", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, 5)
		_, err := uc.Create(context.Background(), CatalogEntryInput{Description: "Galian", UnitPrice: -5})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, 5)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PriceCatalogEntry) (entities.PriceCatalogEntry, error) {
				if e.ID == "" || e.Description != "Galian Tanah" || e.Position == 0 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.Create(context.Background(), CatalogEntryInput{Description: " Galian Tanah ", Unit: "m3", UnitPrice: 85_000}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update missing entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, 5)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.PriceCatalogEntry{}, nil)

		_, err := uc.Update(context.Background(), "c1", CatalogEntryInput{Description: "x"})
		if !errors.Is(err, entities.ErrCatalogEntryNotFound) {
			t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
		}
	})

	t.Run("update keeps identity and position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, 5)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.PriceCatalogEntry{ID: "c1", Description: "old", Position: 7}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PriceCatalogEntry) (entities.PriceCatalogEntry, error) {
				return e, nil
			},
		)

		got, err := uc.Update(context.Background(), "c1", CatalogEntryInput{Description: "Beton K-300", Unit: "m3", UnitPrice: 1_300_000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "c1" || got.Position != 7 || got.UnitPrice != 1_300_000 {
			t.Fatalf("unexpected entry: %+v", got)
		}
	})
}
