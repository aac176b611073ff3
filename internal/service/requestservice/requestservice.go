package requestservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/service/amountservice"
)

type Repo interface {
	Save(ctx context.Context, req *domain.Request) error
	FindByID(ctx context.Context, id int) (*domain.Request, error)
	UpdateStatus(ctx context.Context, id int, status, statusDetail string) (bool, error)
}

type ReservationRepo interface {
	Promote(ctx context.Context, id uuid.UUID, requestID int) (bool, error)
}

type Allocator interface {
	AllocateUniqueAmount(ctx context.Context, p amountservice.AllocateParams) (*amountservice.Allocation, error)
}

type Service struct {
	repo            Repo
	reservationRepo ReservationRepo
	allocator       Allocator

	now func() time.Time
}

func New(repo Repo, reservationRepo ReservationRepo, allocator Allocator) *Service {
	return &Service{
		repo:            repo,
		reservationRepo: reservationRepo,
		allocator:       allocator,
		now:             time.Now,
	}
}

type CreateParams struct {
	UserID      int64
	Bookmaker   string
	AccountID   string
	Amount      decimal.Decimal
	RequestType domain.RequestType
	// ReservationID links the request back to the reservation it grew out of.
	ReservationID uuid.UUID
}

// Create records a deposit/withdraw intent. A deposit amount ending in
// exactly .00 is corrected by allocating a cents component in [1,99] — the
// .00 space is reserved for disambiguation.
func (s *Service) Create(ctx context.Context, p CreateParams) (*domain.Request, error) {
	if p.UserID == 0 {
		return nil, apperrors.Validation("userId is required")
	}
	if p.Bookmaker == "" {
		return nil, apperrors.Validation("bookmaker is required")
	}
	if p.AccountID == "" {
		return nil, apperrors.Validation("accountId is required")
	}
	if p.RequestType != domain.DepositRequest && p.RequestType != domain.WithdrawRequest {
		return nil, apperrors.Validation("unknown requestType %q", p.RequestType)
	}
	if !p.Amount.IsPositive() {
		return nil, apperrors.Validation("amount must be positive, got %s", p.Amount)
	}

	amount := p.Amount
	if p.RequestType == domain.DepositRequest && amount.Equal(amount.Floor()) {
		allocation, err := s.allocator.AllocateUniqueAmount(ctx, amountservice.AllocateParams{
			Amount:          amount,
			UserID:          p.UserID,
			Bookmaker:       p.Bookmaker,
			AccountID:       p.AccountID,
			RequestType:     domain.DepositRequest,
			SkipReservation: true,
		})
		if err != nil {
			return nil, err
		}
		amount = allocation.Amount
	}

	request := &domain.Request{
		UserID:      p.UserID,
		Bookmaker:   p.Bookmaker,
		AccountID:   p.AccountID,
		Amount:      amount,
		RequestType: p.RequestType,
		Status:      domain.PendingStatus,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Save(ctx, request); err != nil {
		zap.L().Error("can't save request", zap.Error(err))
		return nil, err
	}

	if p.ReservationID != uuid.Nil {
		if _, err := s.reservationRepo.Promote(ctx, p.ReservationID, request.ID); err != nil {
			// The request exists either way; a failed promotion only loses
			// the reservation linkage.
			zap.L().Error("can't promote reservation",
				zap.String("reservation_id", p.ReservationID.String()), zap.Error(err))
		}
	}

	return request, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Request, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get request", zap.Error(err))
		return nil, err
	}
	if request == nil {
		return nil, apperrors.ErrNotFound
	}
	return request, nil
}

// SendToReview moves a pending request to manual review. Terminal requests
// are untouched.
func (s *Service) SendToReview(ctx context.Context, id int, detail string) (*domain.Request, error) {
	return s.transition(ctx, id, domain.PendingCheckStatus, detail)
}

func (s *Service) Reject(ctx context.Context, id int, detail string) (*domain.Request, error) {
	return s.transition(ctx, id, domain.RejectedStatus, detail)
}

func (s *Service) Defer(ctx context.Context, id int, detail string) (*domain.Request, error) {
	return s.transition(ctx, id, domain.DeferredStatus, detail)
}

func (s *Service) transition(ctx context.Context, id int, status, detail string) (*domain.Request, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, status, detail)
	if err != nil {
		return nil, err
	}
	if !updated {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.ErrAlreadySettled
	}
	return s.Get(ctx, id)
}
