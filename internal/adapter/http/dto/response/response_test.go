package response

import (
	"testing"
	"time"

	"rab_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromEstimateDocument(t *testing.T) {
	now := time.Now().UTC()
	doc := entities.EstimateDocument{
		Estimate: entities.Estimate{
			ID:            "est-1",
			Title:         "Gudang",
			TaxPercentage: decimal.NewFromInt(11),
			Subtotal:      10_000_000,
			TaxAmount:     1_100_000,
			Total:         11_100_000,
			Status:        entities.EstimateStatusDraft,
			CreatedAt:     now,
		},
		Lines: []entities.EstimateLine{
			{ID: "a", IsCategory: true, ItemNumber: "A", Label: "Persiapan"},
			{ID: "a1", ParentID: "a", ItemNumber: "A.1", Quantity: decimal.RequireFromString("2.5"), UnitPrice: 4_000_000, LineTotal: 10_000_000, Position: 1},
		},
	}

	res := FromEstimateDocument(doc)
	if res.ID != "est-1" || res.Total != 11_100_000 || res.TotalDisplay != "111000.00" || res.TaxPercentage != "11" {
		t.Fatalf("unexpected header: %+v", res.EstimateResponse)
	}
	if len(res.Lines) != 2 || res.Lines[0].Quantity != "" || res.Lines[1].Quantity != "2.5" {
		t.Fatalf("unexpected lines: %+v", res.Lines)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromProgress(t *testing.T) {
	res := FromProgress(entities.FinancialProgress{
		ProjectID:    "prj-1",
		BudgetValue:  100_000_000,
		IncomeTotal:  30_000_000,
		ExpenseTotal: 120_000_000,
		IncomePct:    decimal.NewFromInt(30),
		ExpensePct:   decimal.NewFromInt(120),
		Balance:      -90_000_000,
	})
	if res.IncomePct != "30.0" || res.ExpensePct != "120.0" {
		t.Fatalf("unexpected raw percentages: %+v", res)
	}
	if res.IncomePctDisplay != "30.0" || res.ExpensePctDisplay != "100.0" {
		t.Fatalf("unexpected display percentages: %+v", res)
	}
	if res.Balance != -90_000_000 {
		t.Fatalf("unexpected balance: %d", res.Balance)
	}
}

func TestFromClientPayment(t *testing.T) {
	res := FromClientPayment(entities.ClientPayment{ID: "991", ProjectID: "prj-1", Amount: 100, Status: entities.PaymentStatusApproved, ProviderPayloadRaw: []byte(`{"id":991}`)})
	if res.PaymentID != "991" || res.Status != "approved" || res.MPPayloadRaw != `{"id":991}` {
		t.Fatalf("unexpected response: %+v", res)
	}
}
