package routes

import (
	"github.com/gin-gonic/gin"

	"oficina_xpto/internal/adapter/http/handlers"
)

const (
	PathServiceOrders = "/service-orders"
	PathStock         = "/stock-items"
	PathFinance       = "/finance"
	PathPayments      = "/payments"
	PathQuota         = "/quota"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.ServiceOrderHandler,
	stockHandler *handlers.StockHandler,
	invoiceHandler *handlers.InvoiceHandler,
	financeHandler *handlers.FinanceHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.CreateServiceOrder)
		orders.GET("", orderHandler.ListServiceOrders)
		orders.GET("/:order_id", orderHandler.GetServiceOrder)
		orders.PATCH("/:order_id", orderHandler.UpdateServiceOrder)
		orders.POST("/:order_id/finalize", orderHandler.FinalizeServiceOrder)
		orders.DELETE("/:order_id", orderHandler.DeleteServiceOrder)

		// Invoice eligibility gate lives under the order it judges.
		orders.GET("/:order_id/invoice-eligibility", invoiceHandler.CheckEmission)
		orders.POST("/:order_id/invoices", invoiceHandler.RecordEmitted)
	}

	rg.GET(PathQuota, orderHandler.GetQuota)

	stock := rg.Group(PathStock)
	{
		stock.POST("", stockHandler.CreateStockItem)
		stock.GET("", stockHandler.ListStockItems)
		stock.GET("/:item_id", stockHandler.GetStockItem)
		stock.PATCH("/:item_id", stockHandler.UpdateStockItem)
		stock.DELETE("/:item_id", stockHandler.DeleteStockItem)
		stock.POST("/:item_id/replenish", stockHandler.ReplenishStockItem)
		stock.GET("/:item_id/purchases", stockHandler.ListPurchases)
	}

	finance := rg.Group(PathFinance)
	{
		finance.POST("/transactions", financeHandler.CreateTransaction)
		finance.GET("/transactions", financeHandler.ListTransactions)
		finance.POST("/expenses", financeHandler.CreateExpense)
		finance.GET("/expenses", financeHandler.ListExpenses)
		finance.GET("/summary", financeHandler.MonthlySummary)
		finance.GET("/invested", financeHandler.TotalInvested)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:order_id", paymentHandler.CreatePaymentByOrderID)
		payments.GET("/:order_id", paymentHandler.GetPaymentByOrderID)
	}
}
