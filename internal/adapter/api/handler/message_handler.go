package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"splitledger/internal/usecase"
	"splitledger/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type splitMessageRequest struct {
	Amount          string `json:"amount" validate:"required"`
	Currency        string `json:"currency"`
	Note            string `json:"note"`
	From            string `json:"from" validate:"required"`
	To              string `json:"to" validate:"required"`
	SenderName      string `json:"senderName"`
	ReceiverName    string `json:"receiverName"`
	TransactionType string `json:"transactionType" validate:"required,oneof=ACCEPT GIVE"`
	Category        string `json:"category"`
	PaymentMode     string `json:"paymentMode"`
}

type saveSplitMessagesRequest struct {
	Messages []splitMessageRequest `json:"messages" validate:"required,dive"`
}

// SaveSplitMessages ingests a batch of pairwise split messages, resolving or
// creating the LEDGER room for each participant pair.
func (h *MessageHandler) SaveSplitMessages(c echo.Context) error {
	var req saveSplitMessagesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	inputs := make([]usecase.SplitMessageInput, 0, len(req.Messages))
	for _, m := range req.Messages {
		inputs = append(inputs, usecase.SplitMessageInput{
			Amount:          m.Amount,
			Currency:        m.Currency,
			Note:            m.Note,
			From:            m.From,
			To:              m.To,
			SenderName:      m.SenderName,
			ReceiverName:    m.ReceiverName,
			TransactionType: m.TransactionType,
			Category:        m.Category,
			PaymentMode:     m.PaymentMode,
		})
	}

	saved, err := h.messageUseCase.SaveSplitMessages(c.Request().Context(), inputs)
	if err != nil {
		httpRequestsTotal.WithLabelValues(http.MethodPost, "/v1/messages", "error").Inc()
		return response.Error(c, err)
	}

	httpRequestsTotal.WithLabelValues(http.MethodPost, "/v1/messages", "201").Inc()
	return response.Created(c, saved)
}
