package casino

import (
	"context"

	"github.com/shopspring/decimal"
)

// Result is the outcome of a settlement call. Vendor and network failures are
// converted into a failed Result at this boundary; they never propagate as
// errors into matching code.
type Result struct {
	Success bool
	Message string
	Amount  decimal.Decimal
	// OperationID is the vendor-side transaction id, when the vendor
	// reports one (the Cashdesk family does).
	OperationID int64
	Data        map[string]any
}

// Adapter is the common settlement interface every vendor implements.
// The code passed to Withdraw is the vendor-issued withdrawal confirmation
// token from the player's side; it is never generated here.
type Adapter interface {
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*Result, error)
	Withdraw(ctx context.Context, accountID, code string) (*Result, error)
}

// WithdrawChecker is implemented by vendors whose payout is two-phase: a
// "check amount by code" round trip distinct from the payout itself
// (the Cashdesk family). Single-call vendors do not implement it.
type WithdrawChecker interface {
	CheckWithdraw(ctx context.Context, accountID, code string) (*Result, error)
}
