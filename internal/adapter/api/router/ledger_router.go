package router

import (
	"github.com/labstack/echo/v4"

	"splitledger/internal/adapter/api/handler"
)

// SetupLedgerRouter initializes ledger routes
func SetupLedgerRouter(e *echo.Echo) {
	ledgerHandler := handler.GetLedgerHandler()

	ledger := e.Group("/v1/ledger")
	ledger.GET("/:phone", ledgerHandler.GetLedger)         // GET /v1/ledger/:phone - Full settlement view
	ledger.GET("/:phone/top", ledgerHandler.GetTopNLedger) // GET /v1/ledger/:phone/top?n= - Top-N per settle status
}
