package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type IncomingPaymentRequestDTO struct {
	Amount           decimal.Decimal `json:"amount" example:"500.37"`
	Bank             *string         `json:"bank,omitempty" example:"mbank"`
	PaymentDate      *time.Time      `json:"paymentDate,omitempty"`
	NotificationText *string         `json:"notificationText,omitempty"`
}

type IncomingPaymentResponseDTO struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount" example:"500.37"`
	Bank        *string         `json:"bank"`
	PaymentDate time.Time       `json:"paymentDate"`
	IsProcessed bool            `json:"isProcessed"`
}

type CheckPaymentRequestDTO struct {
	RequestID int             `json:"requestId" example:"42"`
	Amount    decimal.Decimal `json:"amount" example:"500.37"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CheckPaymentResponseDTO struct {
	Processed bool   `json:"processed"`
	Reason    string `json:"reason,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
}
