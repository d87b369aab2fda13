package router

import (
	"github.com/labstack/echo/v4"

	"splitledger/internal/adapter/api/handler"
)

// SetupReportRouter initializes the read-only aggregate report routes
func SetupReportRouter(e *echo.Echo) {
	reportHandler := handler.GetReportHandler()

	reports := e.Group("/v1/message")
	reports.GET("/topusers", reportHandler.FetchTopUsers)
	reports.GET("/count", reportHandler.FetchMessageCount)
	reports.GET("/monthwise-amount", reportHandler.FetchMonthwiseAmount)
}
