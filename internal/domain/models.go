package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestType string

const (
	DepositRequest  RequestType = "deposit"
	WithdrawRequest RequestType = "withdraw"
)

const (
	// PendingStatus заявка создана и ждёт оплаты; единственный статус, из которого возможно пополнение.
	PendingStatus string = "pending"
	// PendingCheckStatus заявка отправлена на ручную проверку оператору.
	PendingCheckStatus string = "pending_check"
	// CompletedStatus заявка выполнена.
	CompletedStatus string = "completed"
	// ApprovedStatus заявка подтверждена оператором.
	ApprovedStatus string = "approved"
	// AutoCompletedStatus заявка закрыта автосверкой.
	AutoCompletedStatus string = "auto_completed"
	// AutodepositSuccessStatus автопополнение прошло успешно.
	AutodepositSuccessStatus string = "autodeposit_success"
	// RejectedStatus заявка отклонена.
	RejectedStatus string = "rejected"
	// DeclinedStatus заявка отклонена казино.
	DeclinedStatus string = "declined"
	// DeferredStatus заявка отложена.
	DeferredStatus string = "deferred"
	// ManualStatus заявка переведена в ручной режим.
	ManualStatus string = "manual"
)

// AutoProcessedBy marks a request closed by automatic settlement, as opposed
// to a manual operator action. Reporting relies on this exact literal.
const AutoProcessedBy = "автопополнение"

const (
	ReservedStatus           string = "reserved"
	NotCreatedStatus         string = "not_created"
	ReservationPendingStatus string = "pending_check"
	ConvertedStatus          string = "converted"
)

type Request struct {
	ID           int             `db:"id"`
	UserID       int64           `db:"user_id"`
	Bookmaker    string          `db:"bookmaker"`
	AccountID    string          `db:"account_id"`
	Amount       decimal.Decimal `db:"amount"`
	RequestType  RequestType     `db:"request_type"`
	Status       string          `db:"status"`
	StatusDetail string          `db:"status_detail"`
	CasinoError  *string         `db:"casino_error"`
	ProcessedBy  *string         `db:"processed_by"`
	CreatedAt    time.Time       `db:"created_at"`
	ProcessedAt  *time.Time      `db:"processed_at"`
}

// SettleableNow reports whether a settlement attempt may touch the request.
// Everything outside pending is terminal for settlement purposes.
func (r *Request) SettleableNow() bool {
	return r.Status == PendingStatus
}

type IncomingPayment struct {
	ID               uuid.UUID       `db:"id"`
	Amount           decimal.Decimal `db:"amount"`
	Bank             *string         `db:"bank"`
	PaymentDate      time.Time       `db:"payment_date"`
	NotificationText *string         `db:"notification_text"`
	IsProcessed      bool            `db:"is_processed"`
	RequestID        *int            `db:"request_id"`
	CreatedAt        time.Time       `db:"created_at"`
}

// Reservation is a provisional claim on a disambiguated amount before a
// formal Request exists. It has no terminal "expired" state: a reservation
// older than the relevance window simply stops participating in collision
// checks.
type Reservation struct {
	ID               uuid.UUID       `db:"id"`
	UserID           int64           `db:"user_id"`
	Bookmaker        string          `db:"bookmaker"`
	AccountID        string          `db:"account_id"`
	Bank             string          `db:"bank"`
	Amount           decimal.Decimal `db:"amount"`
	RequestType      RequestType     `db:"request_type"`
	Status           string          `db:"status"`
	CreatedRequestID *int            `db:"created_request_id"`
	CreatedAt        time.Time       `db:"created_at"`
}
