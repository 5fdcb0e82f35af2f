package routes

import (
	"rab_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathCatalog   = "/catalog"
	PathProjects  = "/projects"
	PathPayments  = "/payments"
)

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.CreateEstimate)
		estimates.GET("", h.ListEstimates)
		estimates.GET("/:id", h.GetEstimate)

		estimates.POST("/:id/categories", h.AddCategory)
		estimates.PATCH("/:id/categories/:line_id", h.RenameCategory)
		estimates.POST("/:id/categories/:line_id/items", h.AddLineItem)
		estimates.PATCH("/:id/items/:line_id", h.UpdateLineItem)
		estimates.POST("/:id/items/:line_id/catalog", h.ApplyCatalogEntry)
		estimates.DELETE("/:id/lines/:line_id", h.RemoveLine)

		estimates.PUT("/:id/tax", h.SetTaxPercentage)
		estimates.PATCH("/:id/status", h.TransitionStatus)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", h.Search)
		catalog.POST("", h.CreateEntry)
		catalog.GET("/:id", h.GetEntry)
		catalog.PUT("/:id", h.UpdateEntry)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler, payments *handlers.ClientPaymentHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("/:project_id", h.GetProject)
		projects.GET("/:project_id/progress", h.GetProgress)
		projects.POST("/:project_id/transactions", h.RecordTransaction)
		projects.GET("/:project_id/transactions", h.ListTransactions)
		projects.POST("/:project_id/payments", payments.CollectPayment)
		projects.GET("/:project_id/payments", payments.ListPayments)
	}

	rg.GET(PathPayments+"/:payment_id", payments.GetPayment)
}
