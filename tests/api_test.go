package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"splitledger/internal/adapter/api/handler"
	"splitledger/internal/domain/entity"
	"splitledger/internal/usecase"
)

type stubMessageRepository struct {
	messages []*entity.Message
}

func (r *stubMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *stubMessageRepository) ListByRoomID(ctx context.Context, roomID string) ([]*entity.Message, error) {
	return r.messages, nil
}

func (r *stubMessageRepository) ListSince(ctx context.Context, since time.Time) ([]*entity.Message, error) {
	return r.messages, nil
}

func (r *stubMessageRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return int64(len(r.messages)), nil
}

func TestHealthCheck(t *testing.T) {
	// Setup
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	healthHandler := handler.NewHealthHandler()

	// Assertions
	if assert.NoError(t, healthHandler.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Server is running")
	}
}

func TestReportEndpointsRejectUnparseableDate(t *testing.T) {
	e := echo.New()
	reportHandler := handler.NewReportHandler(usecase.NewReportUseCase(&stubMessageRepository{}))

	req := httptest.NewRequest(http.MethodGet, "/v1/message/count?date=not-a-date", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, reportHandler.FetchMessageCount(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Something Went Wrong")
	}
}

func TestMessageCountEndpoint(t *testing.T) {
	e := echo.New()
	repo := &stubMessageRepository{messages: []*entity.Message{
		{From: "A", Amount: "10", CreatedAt: time.Now()},
		{From: "B", Amount: "20", CreatedAt: time.Now()},
	}}
	reportHandler := handler.NewReportHandler(usecase.NewReportUseCase(repo))

	req := httptest.NewRequest(http.MethodGet, "/v1/message/count?date=2023-01-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, reportHandler.FetchMessageCount(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2\n", rec.Body.String())
	}
}
