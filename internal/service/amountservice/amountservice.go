package amountservice

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/pg"
)

const maxCents = 99

type RequestRepo interface {
	CountDepositsByAmountSince(ctx context.Context, amount decimal.Decimal, since time.Time) (int, error)
}

type ReservationRepo interface {
	Save(ctx context.Context, res *domain.Reservation) error
	CountByAmountSince(ctx context.Context, amount decimal.Decimal, requestType domain.RequestType, since time.Time) (int, error)
	LockAmount(ctx context.Context, requestType domain.RequestType, base int64) error
}

type Service struct {
	requestRepo     RequestRepo
	reservationRepo ReservationRepo
	txManager       pg.TXManager
	window          time.Duration

	now     func() time.Time
	randInt func(n int) int
}

func New(requestRepo RequestRepo, reservationRepo ReservationRepo, txManager pg.TXManager, window time.Duration) *Service {
	return &Service{
		requestRepo:     requestRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		window:          window,
		now:             time.Now,
		randInt:         rand.Intn,
	}
}

type AllocateParams struct {
	Amount          decimal.Decimal
	UserID          int64
	Bookmaker       string
	AccountID       string
	Bank            string
	RequestType     domain.RequestType
	SkipReservation bool
}

type Allocation struct {
	Amount        decimal.Decimal
	ReservationID uuid.UUID
}

// AllocateUniqueAmount disambiguates a whole-number deposit amount by
// attaching a cents component no other in-flight deposit holds. The probe
// starts at a random cents value and walks 1..99 wrapping, skipping any
// candidate held by a recent request or reservation. The whole probe runs
// under an advisory lock on the integer base, so concurrent allocations of
// the same base serialize instead of racing the check-then-insert.
func (s *Service) AllocateUniqueAmount(ctx context.Context, p AllocateParams) (*Allocation, error) {
	if !p.Amount.IsPositive() {
		return nil, apperrors.Validation("amount must be positive, got %s", p.Amount)
	}
	if p.RequestType == "" {
		p.RequestType = domain.DepositRequest
	}

	base := p.Amount.Floor()
	since := s.now().Add(-s.window)

	var allocation *Allocation
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.reservationRepo.LockAmount(ctx, p.RequestType, base.IntPart()); err != nil {
			return err
		}

		cents, found, err := s.probe(ctx, base, since)
		if err != nil {
			return err
		}
		if !found {
			// Only reachable with 99 concurrent deposits on the same base
			// within the window. Hand out a random cents value and report
			// the degraded outcome.
			cents = s.randInt(maxCents) + 1
			zap.L().Warn("unique cents exhausted, falling back to random value",
				zap.String("base", base.String()), zap.Int("cents", cents))
		}

		amount := base.Add(decimal.New(int64(cents), -2))
		allocation = &Allocation{Amount: amount}

		if p.SkipReservation {
			return nil
		}

		reservation := &domain.Reservation{
			ID:          uuid.New(),
			UserID:      p.UserID,
			Bookmaker:   p.Bookmaker,
			AccountID:   p.AccountID,
			Bank:        p.Bank,
			Amount:      amount,
			RequestType: p.RequestType,
			Status:      domain.ReservedStatus,
			CreatedAt:   s.now(),
		}
		if err := s.reservationRepo.Save(ctx, reservation); err != nil {
			return err
		}
		allocation.ReservationID = reservation.ID
		return nil
	})
	if err != nil {
		zap.L().Error("failed to allocate unique amount", zap.Error(err))
		return nil, err
	}
	return allocation, nil
}

func (s *Service) probe(ctx context.Context, base decimal.Decimal, since time.Time) (int, bool, error) {
	start := s.randInt(maxCents)
	for i := 0; i < maxCents; i++ {
		cents := (start+i)%maxCents + 1
		candidate := base.Add(decimal.New(int64(cents), -2))

		requests, err := s.requestRepo.CountDepositsByAmountSince(ctx, candidate, since)
		if err != nil {
			return 0, false, err
		}
		if requests > 0 {
			continue
		}

		reservations, err := s.reservationRepo.CountByAmountSince(ctx, candidate, domain.DepositRequest, since)
		if err != nil {
			return 0, false, err
		}
		if reservations > 0 {
			continue
		}

		return cents, true, nil
	}
	return 0, false, nil
}

type UncreatedParams struct {
	UserID      int64
	Bookmaker   string
	AccountID   string
	Bank        string
	Amount      decimal.Decimal
	RequestType domain.RequestType
}

// RegisterUncreated records a "request not created yet" ping from the client
// app as a reservation, so the amount participates in collision checks while
// the user is still mid-flow.
func (s *Service) RegisterUncreated(ctx context.Context, p UncreatedParams) (*domain.Reservation, error) {
	if p.UserID == 0 {
		return nil, apperrors.Validation("userId is required")
	}
	if p.RequestType == "" {
		p.RequestType = domain.DepositRequest
	}

	reservation := &domain.Reservation{
		ID:          uuid.New(),
		UserID:      p.UserID,
		Bookmaker:   p.Bookmaker,
		AccountID:   p.AccountID,
		Bank:        p.Bank,
		Amount:      p.Amount,
		RequestType: p.RequestType,
		Status:      domain.NotCreatedStatus,
		CreatedAt:   s.now(),
	}
	if err := s.reservationRepo.Save(ctx, reservation); err != nil {
		zap.L().Error("failed to save uncreated request", zap.Error(err))
		return nil, err
	}
	return reservation, nil
}
