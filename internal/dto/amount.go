package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type UniqueAmountRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" example:"500"`
	UserID      int64           `json:"userId" example:"123456789"`
	AccountID   string          `json:"accountId,omitempty"`
	Bookmaker   string          `json:"bookmaker,omitempty" example:"1xbet"`
	Bank        string          `json:"bank,omitempty"`
	RequestType string          `json:"requestType,omitempty" example:"deposit"`
}

type UniqueAmountResponseDTO struct {
	Amount        decimal.Decimal `json:"amount" example:"500.37"`
	ReservationID string          `json:"reservationId"`
}

type UncreatedRequestDTO struct {
	UserID      int64           `json:"userId" example:"123456789"`
	Bookmaker   string          `json:"bookmaker,omitempty"`
	AccountID   string          `json:"accountId,omitempty"`
	Bank        string          `json:"bank,omitempty"`
	Amount      decimal.Decimal `json:"amount,omitempty"`
	RequestType string          `json:"requestType,omitempty"`
}

type UncreatedResponseDTO struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
