package dto

import (
	"github.com/shopspring/decimal"
)

type DepositBalanceRequestDTO struct {
	RequestID int             `json:"requestId" example:"42"`
	Bookmaker string          `json:"bookmaker" example:"1xbet"`
	Amount    decimal.Decimal `json:"amount" example:"500.37"`
}

type WithdrawBalanceRequestDTO struct {
	Bookmaker string `json:"bookmaker" example:"1xbet"`
	AccountID string `json:"accountId" example:"99887766"`
	Code      string `json:"code" example:"A1B2C3"`
}

type CheckWithdrawRequestDTO struct {
	Bookmaker string `json:"bookmaker" example:"1xbet"`
	UserID    string `json:"userId" example:"99887766"`
	Code      string `json:"code" example:"A1B2C3"`
}

type WithdrawResultDTO struct {
	Success bool            `json:"success"`
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message,omitempty"`
	Data    map[string]any  `json:"data,omitempty"`
}

type CheckWithdrawResponseDTO struct {
	Amount        decimal.Decimal `json:"amount"`
	TransactionID int64           `json:"transactionId,omitempty"`
	Message       string          `json:"message,omitempty"`
}
