package router

import (
	"github.com/labstack/echo/v4"

	"splitledger/internal/adapter/api/handler"
)

// SetupMessageRouter initializes message ingestion routes
func SetupMessageRouter(e *echo.Echo) {
	messageHandler := handler.GetMessageHandler()

	e.POST("/v1/messages", messageHandler.SaveSplitMessages) // POST /v1/messages - Ingest split messages
}
