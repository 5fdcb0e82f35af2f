package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rab_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestUpdateLineItemRequest_ToLeafUpdate(t *testing.T) {
	var r UpdateLineItemRequest
	if err := json.Unmarshal([]byte(`{"quantity":"2.5","unit_price":4000000}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	u := r.ToLeafUpdate()
	if u.Quantity == nil || !u.Quantity.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("unexpected quantity: %v", u.Quantity)
	}
	if u.UnitPrice == nil || *u.UnitPrice != entities.Money(4_000_000) {
		t.Fatalf("unexpected unit price: %v", u.UnitPrice)
	}
	if u.Description != nil || u.Unit != nil || u.CostCategory != nil {
		t.Fatalf("omitted fields must stay nil: %+v", u)
	}
}

func TestCreateEstimateRequest_TaxAsNumberOrString(t *testing.T) {
	for _, body := range []string{`{"title":"x","tax_percentage":11}`, `{"title":"x","tax_percentage":"11"}`} {
		var r CreateEstimateRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		in := r.ToInput()
		if in.TaxPercentage == nil || !in.TaxPercentage.Equal(decimal.NewFromInt(11)) {
			t.Fatalf("unexpected tax for %s: %v", body, in.TaxPercentage)
		}
	}
}

func TestRecordTransactionRequest_ToInput(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		_, err := RecordTransactionRequest{Category: "refund"}.ToInput("prj-1")
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("normalized category and date", func(t *testing.T) {
		d := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		in, err := RecordTransactionRequest{Category: " Cash_In ", Amount: 500, Date: &d}.ToInput("prj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Category != entities.TransactionCategoryCashIn || in.Amount != 500 || !in.Date.Equal(d) || in.ProjectID != "prj-1" {
			t.Fatalf("unexpected input: %+v", in)
		}
	})
}
