package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rab_service/internal/adapter/persistence/sqlrepository"
	"rab_service/internal/infrastructure/config"
	"rab_service/internal/infrastructure/lock"
	"rab_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, sqlrepository.AutoMigrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repos := repositories{
		estimates:    sqlrepository.NewEstimateRepository(db),
		projects:     sqlrepository.NewProjectRepository(db),
		transactions: sqlrepository.NewTransactionRepository(db),
		catalog:      sqlrepository.NewPriceCatalogRepository(db),
		payments:     sqlrepository.NewClientPaymentRepository(db),
	}
	cfg := config.Config{
		Storage:              config.StorageSQLite,
		Payments:             config.PaymentsConfig{MockMode: true},
		CatalogSearchLimit:   5,
		DefaultTaxPercentage: decimal.NewFromInt(11),
	}
	h := buildHandlers(cfg, repos, lock.NewMemoryLocker(time.Second), metrics.NewRecorder(prometheus.NewRegistry()))
	return newRouter(zap.NewNop(), h)
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	code, body := call(t, r, http.MethodGet, "/v1/ping", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body["message"])
}

func TestRouter_EstimateToProjectFlow(t *testing.T) {
	r := newTestRouter(t)

	code, est := call(t, r, http.MethodPost, "/v1/estimates", map[string]any{
		"title":       "Gudang Cikarang",
		"client_name": "PT Maju",
		"location":    "Cikarang",
	})
	require.Equal(t, http.StatusCreated, code)
	estID := est["id"].(string)
	assert.Equal(t, "11", est["tax_percentage"])

	code, doc := call(t, r, http.MethodPost, "/v1/estimates/"+estID+"/categories", map[string]any{"label": "Pekerjaan Persiapan"})
	require.Equal(t, http.StatusCreated, code)
	lines := doc["lines"].([]any)
	require.Len(t, lines, 1)
	category := lines[0].(map[string]any)
	assert.Equal(t, "A", category["item_number"])

	code, doc = call(t, r, http.MethodPost, "/v1/estimates/"+estID+"/categories/"+category["id"].(string)+"/items", nil)
	require.Equal(t, http.StatusCreated, code)
	lines = doc["lines"].([]any)
	require.Len(t, lines, 2)
	leaf := lines[1].(map[string]any)
	assert.Equal(t, "A.1", leaf["item_number"])

	code, doc = call(t, r, http.MethodPatch, "/v1/estimates/"+estID+"/items/"+leaf["id"].(string), map[string]any{
		"description": "Pembersihan lahan",
		"unit":        "m2",
		"quantity":    "2.5",
		"unit_price":  4_000_000,
	})
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 10_000_000, doc["subtotal"])
	assert.EqualValues(t, 1_100_000, doc["tax_amount"])
	assert.EqualValues(t, 11_100_000, doc["total"])

	code, _ = call(t, r, http.MethodPatch, "/v1/estimates/"+estID+"/items/"+leaf["id"].(string), map[string]any{
		"unit_price": int64(9_000_000_000_000_000_000),
	})
	require.Equal(t, http.StatusBadRequest, code)

	code, doc = call(t, r, http.MethodPatch, "/v1/estimates/"+estID+"/status", map[string]any{"status": "approved"})
	require.Equal(t, http.StatusOK, code)
	projectID, _ := doc["linked_project_id"].(string)
	require.NotEmpty(t, projectID)

	code, project := call(t, r, http.MethodGet, "/v1/projects/"+projectID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 11_100_000, project["budget_value"])

	code, payment := call(t, r, http.MethodPost, "/v1/projects/"+projectID+"/payments", map[string]any{"amount": 5_550_000})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "approved", payment["status"])
	assert.NotEmpty(t, payment["transaction_id"])

	code, progress := call(t, r, http.MethodGet, "/v1/projects/"+projectID+"/progress", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "50.0", progress["income_pct"])
	assert.EqualValues(t, 5_550_000, progress["balance"])

	code, _ = call(t, r, http.MethodPatch, "/v1/estimates/"+estID+"/status", map[string]any{"status": "draft"})
	require.Equal(t, http.StatusPreconditionRequired, code)
	code, doc = call(t, r, http.MethodGet, "/v1/estimates/"+estID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "approved", doc["status"])
	assert.EqualValues(t, 11_100_000, doc["total"])

	code, doc = call(t, r, http.MethodPatch, "/v1/estimates/"+estID+"/status", map[string]any{"status": "draft", "confirm_destructive": true})
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, doc["linked_project_id"])

	code, _ = call(t, r, http.MethodGet, "/v1/projects/"+projectID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = call(t, r, http.MethodGet, "/v1/payments/"+payment["payment_id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_Catalog(t *testing.T) {
	r := newTestRouter(t)

	for _, d := range []string{"Beton K-225", "Galian Tanah", "Beton K-300"} {
		code, _ := call(t, r, http.MethodPost, "/v1/catalog", map[string]any{"description": d, "unit": "m3", "unit_price": 100_000})
		require.Equal(t, http.StatusCreated, code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog?q=beton&limit=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Beton K-225", items[0]["description"])
}

func TestNewRepositories_UnknownDriver(t *testing.T) {
	_, err := newRepositories(context.Background(), config.Config{Storage: "mongo"})
	assert.Error(t, err)
}
