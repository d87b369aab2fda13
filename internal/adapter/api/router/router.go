package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupLedgerRouter(e)
	SetupMessageRouter(e)
	SetupReportRouter(e)
	SetupHealthRouter(e)
	SetupMetricsRouter(e)
}
