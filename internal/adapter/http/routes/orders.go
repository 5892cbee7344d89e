package routes

import (
	"taller_pos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathXmlProducts = "/xml-products"
	PathValidations = "/validations"
	PathDashboard   = "/dashboard"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	phaseHandler *handlers.PhaseHandler,
	xmlProductsHandler *handlers.XmlProductsHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/products", orderHandler.UpdateProducts)
		orders.PUT("/:id/services", orderHandler.UpdateServices)
		orders.PUT("/:id/diagnostic", orderHandler.SaveDiagnostic)
		orders.POST("/:id/authorization", orderHandler.SubmitAuthorization)
		orders.POST("/:id/cancel", orderHandler.CancelOrder)
		orders.GET("/:id/budget", orderHandler.GetBudget)

		orders.POST("/:id/xml-invoices", phaseHandler.ProcessXMLInvoices)
		orders.POST("/:id/validate-products", phaseHandler.ValidateProducts)
		orders.POST("/:id/admin-validation", phaseHandler.AdminValidate)
		orders.POST("/:id/process-products", phaseHandler.ProcessProducts)
		orders.POST("/:id/pre-oc-validation", phaseHandler.PreOCValidate)
		orders.POST("/:id/purchase-order", phaseHandler.GeneratePurchaseOrder)
		orders.POST("/:id/deliver", phaseHandler.Deliver)
		orders.GET("/:id/payments", phaseHandler.ListPayments)

		orders.GET("/:id/xml-products", xmlProductsHandler.GroupByProvider)
	}

	xmlProducts := rg.Group(PathXmlProducts)
	{
		xmlProducts.GET("/not-found", xmlProductsHandler.ListNotFound)
		xmlProducts.POST("/:id/classify", xmlProductsHandler.Classify)
		xmlProducts.POST("/:id/not-found", xmlProductsHandler.MarkNotFound)
	}

	validations := rg.Group(PathValidations)
	{
		validations.GET("/admin/pending", phaseHandler.ListPendingAdminValidation)
		validations.GET("/pre-oc/pending", phaseHandler.ListPendingPreOC)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
	}
}
