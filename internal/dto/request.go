package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ormonbek/kassabot/internal/domain"
)

type CreateRequestDTO struct {
	UserID        int64           `json:"userId" example:"123456789"`
	Bookmaker     string          `json:"bookmaker" example:"1xbet"`
	AccountID     string          `json:"accountId" example:"99887766"`
	Amount        decimal.Decimal `json:"amount" example:"500.37"`
	RequestType   string          `json:"requestType" example:"deposit"`
	ReservationID string          `json:"reservationId,omitempty"`
}

type TransitionRequestDTO struct {
	Detail string `json:"detail,omitempty" example:"сумма не совпала"`
}

type RequestResponseDTO struct {
	ID           int             `json:"id"`
	UserID       int64           `json:"userId"`
	Bookmaker    string          `json:"bookmaker"`
	AccountID    string          `json:"accountId"`
	Amount       decimal.Decimal `json:"amount"`
	RequestType  string          `json:"requestType"`
	Status       string          `json:"status"`
	StatusDetail string          `json:"statusDetail,omitempty"`
	CasinoError  *string         `json:"casinoError"`
	ProcessedBy  *string         `json:"processedBy"`
	CreatedAt    time.Time       `json:"createdAt"`
	ProcessedAt  *time.Time      `json:"processedAt"`
}

func NewRequestResponse(req *domain.Request) RequestResponseDTO {
	return RequestResponseDTO{
		ID:           req.ID,
		UserID:       req.UserID,
		Bookmaker:    req.Bookmaker,
		AccountID:    req.AccountID,
		Amount:       req.Amount,
		RequestType:  string(req.RequestType),
		Status:       req.Status,
		StatusDetail: req.StatusDetail,
		CasinoError:  req.CasinoError,
		ProcessedBy:  req.ProcessedBy,
		CreatedAt:    req.CreatedAt,
		ProcessedAt:  req.ProcessedAt,
	}
}
