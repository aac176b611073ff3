package settlementservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/casino"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/metrics"
)

var (
	// queryTolerance widens the candidate query slightly; exactTolerance is
	// the stricter cent check applied afterwards. Both layers are kept as
	// defense against decimal rounding at the storage boundary.
	queryTolerance = decimal.New(1, -3) // 0.001
	exactTolerance = decimal.New(1, -2) // 0.01
)

type RequestRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Request, error)
	FindPendingDeposits(ctx context.Context, limit uint32) ([]domain.Request, error)
	ClaimForSettlement(ctx context.Context, id int, tag string) (bool, error)
	ReleaseClaim(ctx context.Context, id int) error
	Settle(ctx context.Context, id int, status, processedBy string, processedAt time.Time) (bool, error)
	SetCasinoError(ctx context.Context, id int, message string) error
}

type PaymentRepo interface {
	FindCandidates(ctx context.Context, amount decimal.Decimal, from, to time.Time, tolerance decimal.Decimal) ([]domain.IncomingPayment, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, requestID int) (bool, error)
	UnmarkProcessed(ctx context.Context, id uuid.UUID) error
	HasProcessedForRequest(ctx context.Context, requestID int) (bool, error)
}

type AdapterRegistry interface {
	Adapter(ctx context.Context, bookmaker string) (casino.Adapter, error)
}

type Service struct {
	requestRepo RequestRepo
	paymentRepo PaymentRepo
	registry    AdapterRegistry
	matchWindow time.Duration

	now func() time.Time
}

func New(requestRepo RequestRepo, paymentRepo PaymentRepo, registry AdapterRegistry, matchWindow time.Duration) *Service {
	return &Service{
		requestRepo: requestRepo,
		paymentRepo: paymentRepo,
		registry:    registry,
		matchWindow: matchWindow,
		now:         time.Now,
	}
}

type CheckResult struct {
	Processed bool
	Reason    string
	PaymentID uuid.UUID
}

// CheckPayment is the explicit matching entry point, called right after a
// request is created to attempt immediate settlement. The background sweep
// goes through the same matching path and both are safe to run concurrently.
func (s *Service) CheckPayment(ctx context.Context, requestID int, amount decimal.Decimal, createdAt time.Time) (*CheckResult, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.ErrNotFound
	}
	if !amount.Equal(request.Amount) {
		return &CheckResult{Processed: false, Reason: "amount does not match request"}, nil
	}
	return s.matchRequest(ctx, request, createdAt)
}

// SweepPending scans pending deposit requests and tries to match each one.
// Used by the background watcher.
func (s *Service) SweepPending(ctx context.Context, limit uint32) ([]domain.Request, error) {
	return s.requestRepo.FindPendingDeposits(ctx, limit)
}

// MatchRequest attempts to settle one pending deposit request against the
// unprocessed payments inside the match window.
func (s *Service) MatchRequest(ctx context.Context, request *domain.Request) (*CheckResult, error) {
	return s.matchRequest(ctx, request, request.CreatedAt)
}

func (s *Service) matchRequest(ctx context.Context, request *domain.Request, createdAt time.Time) (*CheckResult, error) {
	if !request.SettleableNow() {
		return &CheckResult{Processed: false, Reason: "already processed"}, nil
	}
	if request.ProcessedBy != nil && *request.ProcessedBy == domain.AutoProcessedBy {
		return &CheckResult{Processed: false, Reason: "settlement already in flight"}, nil
	}
	consumed, err := s.paymentRepo.HasProcessedForRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if consumed {
		return &CheckResult{Processed: false, Reason: "already processed"}, nil
	}

	from := createdAt.Add(-s.matchWindow)
	to := createdAt.Add(s.matchWindow)
	candidates, err := s.paymentRepo.FindCandidates(ctx, request.Amount, from, to, queryTolerance)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &CheckResult{Processed: false, Reason: "no matching payment"}, nil
	}

	// Oldest payment first, so newer payments never starve older requests.
	payment := candidates[0]
	if payment.Amount.Sub(request.Amount).Abs().GreaterThanOrEqual(exactTolerance) {
		// A fresh payment event has to arrive before this request can
		// match; no other candidate is tried in this sweep.
		return &CheckResult{Processed: false, Reason: "amount mismatch"}, nil
	}

	return s.settleWithPayment(ctx, request, &payment)
}

func (s *Service) settleWithPayment(ctx context.Context, request *domain.Request, payment *domain.IncomingPayment) (*CheckResult, error) {
	claimed, err := s.requestRepo.ClaimForSettlement(ctx, request.ID, domain.AutoProcessedBy)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return &CheckResult{Processed: false, Reason: "already processed"}, nil
	}

	marked, err := s.paymentRepo.MarkProcessed(ctx, payment.ID, request.ID)
	if err != nil {
		s.release(ctx, request.ID)
		return nil, err
	}
	if !marked {
		s.release(ctx, request.ID)
		return &CheckResult{Processed: false, Reason: "payment already consumed"}, nil
	}

	result, err := s.callDeposit(ctx, request)
	if err != nil {
		// Credentials missing or no adapter: undo the claims, surface the
		// error on the request and keep it pending for manual handling.
		if unmarkErr := s.paymentRepo.UnmarkProcessed(ctx, payment.ID); unmarkErr != nil {
			zap.L().Error("can't return payment to pool", zap.Error(unmarkErr))
		}
		s.release(ctx, request.ID)
		_ = s.requestRepo.SetCasinoError(ctx, request.ID, err.Error())
		return nil, err
	}

	if !result.Success {
		metrics.SettlementAttempts.WithLabelValues(request.Bookmaker, "failure").Inc()
		if unmarkErr := s.paymentRepo.UnmarkProcessed(ctx, payment.ID); unmarkErr != nil {
			zap.L().Error("can't return payment to pool", zap.Error(unmarkErr))
		}
		s.release(ctx, request.ID)
		if err := s.requestRepo.SetCasinoError(ctx, request.ID, result.Message); err != nil {
			return nil, err
		}
		zap.L().Warn("auto settlement failed, request stays pending",
			zap.Int("request_id", request.ID),
			zap.String("bookmaker", request.Bookmaker),
			zap.String("casino_error", result.Message))
		return &CheckResult{Processed: false, Reason: result.Message}, nil
	}

	metrics.SettlementAttempts.WithLabelValues(request.Bookmaker, "success").Inc()
	metrics.PaymentsMatched.Inc()

	settled, err := s.requestRepo.Settle(ctx, request.ID, domain.AutodepositSuccessStatus, domain.AutoProcessedBy, s.now())
	if err != nil {
		return nil, err
	}
	if !settled {
		// Another attempt finished the transition first; the money moved
		// exactly once because only one claim succeeds.
		return &CheckResult{Processed: false, Reason: "already processed"}, nil
	}

	zap.L().Info("request settled automatically",
		zap.Int("request_id", request.ID),
		zap.String("bookmaker", request.Bookmaker),
		zap.String("amount", request.Amount.String()),
		zap.String("payment_id", payment.ID.String()))
	return &CheckResult{Processed: true, PaymentID: payment.ID}, nil
}

func (s *Service) release(ctx context.Context, requestID int) {
	if err := s.requestRepo.ReleaseClaim(ctx, requestID); err != nil {
		zap.L().Error("can't release settlement claim", zap.Int("request_id", requestID), zap.Error(err))
	}
}

func (s *Service) callDeposit(ctx context.Context, request *domain.Request) (*casino.Result, error) {
	adapter, err := s.registry.Adapter(ctx, request.Bookmaker)
	if err != nil {
		return nil, err
	}
	return adapter.Deposit(ctx, request.AccountID, request.Amount)
}

// DepositBalance settles a request directly, without payment matching — the
// operator confirmed the money arrived. The same claim mechanism guarantees
// a single vendor call under concurrent attempts.
func (s *Service) DepositBalance(ctx context.Context, requestID int, bookmaker string, amount decimal.Decimal) (*domain.Request, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.ErrNotFound
	}
	if request.Bookmaker != bookmaker {
		return nil, apperrors.Validation("bookmaker %q does not match request", bookmaker)
	}
	if !amount.Equal(request.Amount) {
		return nil, apperrors.Validation("amount %s does not match request", amount)
	}
	if !request.SettleableNow() {
		return nil, apperrors.ErrAlreadySettled
	}

	claimed, err := s.requestRepo.ClaimForSettlement(ctx, request.ID, domain.AutoProcessedBy)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, apperrors.ErrAlreadySettled
	}

	result, err := s.callDeposit(ctx, request)
	if err != nil {
		s.release(ctx, request.ID)
		_ = s.requestRepo.SetCasinoError(ctx, request.ID, err.Error())
		return nil, err
	}

	if !result.Success {
		metrics.SettlementAttempts.WithLabelValues(bookmaker, "failure").Inc()
		s.release(ctx, request.ID)
		if err := s.requestRepo.SetCasinoError(ctx, request.ID, result.Message); err != nil {
			return nil, err
		}
		return s.requestRepo.FindByID(ctx, request.ID)
	}

	metrics.SettlementAttempts.WithLabelValues(bookmaker, "success").Inc()
	if _, err := s.requestRepo.Settle(ctx, request.ID, domain.CompletedStatus, domain.AutoProcessedBy, s.now()); err != nil {
		return nil, err
	}
	return s.requestRepo.FindByID(ctx, request.ID)
}

// WithdrawBalance performs a vendor payout against a player-issued code.
// Vendors differ here: the Cashdesk family checks the amount in a separate
// round trip internally, Mostbet and 1win withdraw in a single call.
func (s *Service) WithdrawBalance(ctx context.Context, bookmaker, accountID, code string) (*casino.Result, error) {
	if accountID == "" {
		return nil, apperrors.Validation("accountId is required")
	}
	if code == "" {
		return nil, apperrors.Validation("code is required")
	}

	adapter, err := s.registry.Adapter(ctx, bookmaker)
	if err != nil {
		return nil, err
	}

	result, err := adapter.Withdraw(ctx, accountID, code)
	if err != nil {
		return nil, err
	}
	if result.Success {
		metrics.SettlementAttempts.WithLabelValues(bookmaker, "success").Inc()
	} else {
		metrics.SettlementAttempts.WithLabelValues(bookmaker, "failure").Inc()
	}
	return result, nil
}

// CheckWithdrawAmount resolves the payout amount for a withdrawal code. Only
// two-phase vendors expose this; for the rest it is a validation error.
func (s *Service) CheckWithdrawAmount(ctx context.Context, bookmaker, accountID, code string) (*casino.Result, error) {
	if accountID == "" {
		return nil, apperrors.Validation("accountId is required")
	}
	if code == "" {
		return nil, apperrors.Validation("code is required")
	}

	adapter, err := s.registry.Adapter(ctx, bookmaker)
	if err != nil {
		return nil, err
	}

	checker, ok := adapter.(casino.WithdrawChecker)
	if !ok {
		return nil, apperrors.Validation("%s does not support a separate withdraw amount check", bookmaker)
	}
	return checker.CheckWithdraw(ctx, accountID, code)
}
