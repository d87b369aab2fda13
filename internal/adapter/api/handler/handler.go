package handler

import (
	"splitledger/internal/usecase"
)

var (
	ledgerHandler  *LedgerHandler
	messageHandler *MessageHandler
	reportHandler  *ReportHandler
)

func Setup(
	ledgerUseCase *usecase.LedgerUseCase,
	messageUseCase *usecase.MessageUseCase,
	reportUseCase *usecase.ReportUseCase,
	topNDefault int,
) {
	ledgerHandler = NewLedgerHandler(ledgerUseCase, topNDefault)
	messageHandler = NewMessageHandler(messageUseCase)
	reportHandler = NewReportHandler(reportUseCase)
}

func GetLedgerHandler() *LedgerHandler {
	return ledgerHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}
