package paymentservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/metrics"
	"github.com/ormonbek/kassabot/internal/pg"
)

type PaymentRepo interface {
	Save(ctx context.Context, payment *domain.IncomingPayment) error
	FindDuplicate(ctx context.Context, amount decimal.Decimal, bank *string, paymentDate time.Time, window time.Duration) (*domain.IncomingPayment, error)
	LockIngest(ctx context.Context, amount decimal.Decimal, bank *string) error
}

// Notifier nudges the background matcher so a fresh payment is swept
// immediately instead of waiting for the next tick.
type Notifier interface {
	Wake()
}

type Service struct {
	paymentRepo PaymentRepo
	txManager   pg.TXManager
	notifier    Notifier
	dedupWindow time.Duration

	now func() time.Time
}

func New(paymentRepo PaymentRepo, txManager pg.TXManager, notifier Notifier, dedupWindow time.Duration) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		txManager:   txManager,
		notifier:    notifier,
		dedupWindow: dedupWindow,
		now:         time.Now,
	}
}

type IngestParams struct {
	Amount           decimal.Decimal
	Bank             *string
	PaymentDate      *time.Time
	NotificationText *string
}

// Ingest stores a bank notification event. A payment with the same amount
// value, same bank (both-null counts as equal) and a payment date within the
// dedup window is the same event arriving twice: the existing row is returned
// verbatim and nothing is written. No settlement happens here; matching runs
// on its own cadence.
func (s *Service) Ingest(ctx context.Context, p IngestParams) (*domain.IncomingPayment, bool, error) {
	if !p.Amount.IsPositive() {
		return nil, false, apperrors.Validation("amount must be positive, got %s", p.Amount)
	}

	paymentDate := s.now()
	if p.PaymentDate != nil {
		paymentDate = *p.PaymentDate
	}

	var (
		payment   *domain.IncomingPayment
		duplicate bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.LockIngest(ctx, p.Amount, p.Bank); err != nil {
			return err
		}

		existing, err := s.paymentRepo.FindDuplicate(ctx, p.Amount, p.Bank, paymentDate, s.dedupWindow)
		if err != nil {
			return err
		}
		if existing != nil {
			payment = existing
			duplicate = true
			return nil
		}

		payment = &domain.IncomingPayment{
			ID:               uuid.New(),
			Amount:           p.Amount,
			Bank:             p.Bank,
			PaymentDate:      paymentDate,
			NotificationText: p.NotificationText,
			IsProcessed:      false,
			CreatedAt:        s.now(),
		}
		return s.paymentRepo.Save(ctx, payment)
	})
	if err != nil {
		zap.L().Error("failed to ingest payment", zap.Error(err))
		return nil, false, err
	}

	if duplicate {
		metrics.PaymentsDeduplicated.Inc()
		zap.L().Info("duplicate payment resolved to existing row",
			zap.String("payment_id", payment.ID.String()),
			zap.String("amount", payment.Amount.String()))
		return payment, true, nil
	}

	metrics.PaymentsIngested.Inc()
	if s.notifier != nil {
		s.notifier.Wake()
	}
	return payment, false, nil
}
