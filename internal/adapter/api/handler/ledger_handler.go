package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"splitledger/internal/usecase"
	"splitledger/pkg/response"
)

type LedgerHandler struct {
	ledgerUseCase *usecase.LedgerUseCase
	topNDefault   int
}

func NewLedgerHandler(ledgerUseCase *usecase.LedgerUseCase, topNDefault int) *LedgerHandler {
	if topNDefault <= 0 {
		topNDefault = 5
	}
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		topNDefault:   topNDefault,
	}
}

// GetLedger returns the full settlement view for a user.
func (h *LedgerHandler) GetLedger(c echo.Context) error {
	userPhone := c.Param("phone")

	timer := prometheus.NewTimer(ledgerComputeDuration.WithLabelValues("/v1/ledger"))
	ledger, err := h.ledgerUseCase.PrepareLedger(c.Request().Context(), userPhone)
	timer.ObserveDuration()

	if err != nil {
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/ledger", "error").Inc()
		return response.Error(c, err)
	}

	httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/ledger", "200").Inc()
	return response.Success(c, ledger)
}

// GetTopNLedger returns the n largest balances per settle status.
func (h *LedgerHandler) GetTopNLedger(c echo.Context) error {
	userPhone := c.Param("phone")

	n := h.topNDefault
	if nStr := c.QueryParam("n"); nStr != "" {
		if parsed, err := strconv.Atoi(nStr); err == nil && parsed > 0 {
			n = parsed
		}
	}

	timer := prometheus.NewTimer(ledgerComputeDuration.WithLabelValues("/v1/ledger/top"))
	top, err := h.ledgerUseCase.PrepareTopNLedger(c.Request().Context(), userPhone, n)
	timer.ObserveDuration()

	if err != nil {
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/ledger/top", "error").Inc()
		return response.Error(c, err)
	}

	httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/ledger/top", "200").Inc()
	return response.Success(c, top)
}
