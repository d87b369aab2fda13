package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"splitledger/internal/usecase"
	"splitledger/pkg/logger"
)

// The report endpoints keep the legacy external contract: raw JSON payloads on
// success and a uniform {"error": "Something Went Wrong"} body with status 400
// on any failure, the cause only logged.

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

func reportError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "Something Went Wrong"})
}

func parseSinceDate(raw string) (time.Time, error) {
	since, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		since, err = time.Parse("2006-01-02", raw)
	}
	return since, err
}

// FetchTopUsers returns the ten busiest senders since the given date.
func (h *ReportHandler) FetchTopUsers(c echo.Context) error {
	since, err := parseSinceDate(c.QueryParam("date"))
	if err != nil {
		logger.Error("Error in FetchTopUsers and err message is %v", err)
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/topusers", "400").Inc()
		return reportError(c)
	}

	result, err := h.reportUseCase.TopUsers(c.Request().Context(), since)
	if err != nil {
		logger.Error("Error in FetchTopUsers and err message is %v", err)
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/topusers", "400").Inc()
		return reportError(c)
	}

	httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/topusers", "200").Inc()
	return c.JSON(http.StatusOK, result)
}

// FetchMessageCount returns the number of messages since the given date.
func (h *ReportHandler) FetchMessageCount(c echo.Context) error {
	since, err := parseSinceDate(c.QueryParam("date"))
	if err != nil {
		logger.Error("Error in FetchMessageCount and err message is %v", err)
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/count", "400").Inc()
		return reportError(c)
	}

	count, err := h.reportUseCase.MessageCount(c.Request().Context(), since)
	if err != nil {
		logger.Error("Error in FetchMessageCount and err message is %v", err)
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/count", "400").Inc()
		return reportError(c)
	}

	httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/count", "200").Inc()
	return c.JSON(http.StatusOK, count)
}

// FetchMonthwiseAmount returns the sum of message amounts since the given date.
func (h *ReportHandler) FetchMonthwiseAmount(c echo.Context) error {
	since, err := parseSinceDate(c.QueryParam("date"))
	if err != nil {
		logger.Error("Error in FetchMonthwiseAmount and err message is %v", err)
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/monthwise-amount", "400").Inc()
		return reportError(c)
	}

	amount, err := h.reportUseCase.MonthwiseAmount(c.Request().Context(), since)
	if err != nil {
		logger.Error("Error in FetchMonthwiseAmount and err message is %v", err)
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/monthwise-amount", "400").Inc()
		return reportError(c)
	}

	httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/message/monthwise-amount", "200").Inc()
	return c.JSON(http.StatusOK, amount)
}
