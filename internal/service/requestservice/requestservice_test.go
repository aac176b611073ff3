package requestservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/service/amountservice"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockReservationRepo, *MockAllocator) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	reservationRepo := NewMockReservationRepo(ctrl)
	allocator := NewMockAllocator(ctrl)

	service := New(repo, reservationRepo, allocator)
	service.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	defer ctrl.Finish()
	return service, repo, reservationRepo, allocator
}

func TestCreate(t *testing.T) {
	amount := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	valid := CreateParams{
		UserID:      42,
		Bookmaker:   "1xbet",
		AccountID:   "99887766",
		Amount:      amount("500.37"),
		RequestType: domain.DepositRequest,
	}

	tests := []struct {
		name           string
		params         CreateParams
		prepareMock    func(repo *MockRepo, reservationRepo *MockReservationRepo, allocator *MockAllocator)
		expectedAmount string
		expectedError  error
	}{
		{
			name: "Missing userId is rejected",
			params: CreateParams{
				Bookmaker: "1xbet", AccountID: "1", Amount: amount("500"), RequestType: domain.DepositRequest,
			},
			prepareMock:   func(repo *MockRepo, reservationRepo *MockReservationRepo, allocator *MockAllocator) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name: "Unknown requestType is rejected",
			params: CreateParams{
				UserID: 1, Bookmaker: "1xbet", AccountID: "1", Amount: amount("500"), RequestType: "refund",
			},
			prepareMock:   func(repo *MockRepo, reservationRepo *MockReservationRepo, allocator *MockAllocator) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:   "Fractional deposit amount is stored unchanged",
			params: valid,
			prepareMock: func(repo *MockRepo, reservationRepo *MockReservationRepo, allocator *MockAllocator) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.Request) error {
						req.ID = 1
						assert.Equal(t, domain.PendingStatus, req.Status)
						return nil
					})
			},
			expectedAmount: "500.37",
		},
		{
			name: "Whole-number deposit amount gets a unique cents component",
			params: CreateParams{
				UserID: 42, Bookmaker: "1xbet", AccountID: "99887766",
				Amount: amount("500"), RequestType: domain.DepositRequest,
			},
			prepareMock: func(repo *MockRepo, reservationRepo *MockReservationRepo, allocator *MockAllocator) {
				allocator.EXPECT().
					AllocateUniqueAmount(gomock.Any(), amountservice.AllocateParams{
						Amount: amount("500"), UserID: 42, Bookmaker: "1xbet", AccountID: "99887766",
						RequestType: domain.DepositRequest, SkipReservation: true,
					}).
					Return(&amountservice.Allocation{Amount: amount("500.23")}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.Request) error {
						req.ID = 2
						return nil
					})
			},
			expectedAmount: "500.23",
		},
		{
			name: "Whole-number withdraw amount is not corrected",
			params: CreateParams{
				UserID: 42, Bookmaker: "1xbet", AccountID: "99887766",
				Amount: amount("500"), RequestType: domain.WithdrawRequest,
			},
			prepareMock: func(repo *MockRepo, reservationRepo *MockReservationRepo, allocator *MockAllocator) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedAmount: "500",
		},
		{
			name:   "Save error is propagated",
			params: valid,
			prepareMock: func(repo *MockRepo, reservationRepo *MockReservationRepo, allocator *MockAllocator) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, reservationRepo, allocator := NewMock(t)
			tt.prepareMock(repo, reservationRepo, allocator)

			request, err := service.Create(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Nil(t, request)
				if errors.Is(tt.expectedError, apperrors.ErrValidation) {
					assert.ErrorIs(t, err, apperrors.ErrValidation)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.True(t, request.Amount.Equal(decimal.RequireFromString(tt.expectedAmount)),
				"got %s, want %s", request.Amount, tt.expectedAmount)
		})
	}
}

func TestCreatePromotesReservation(t *testing.T) {
	service, repo, reservationRepo, _ := NewMock(t)
	reservationID := uuid.New()

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.Request) error {
			req.ID = 7
			return nil
		})
	reservationRepo.EXPECT().Promote(gomock.Any(), reservationID, 7).Return(true, nil)

	request, err := service.Create(context.Background(), CreateParams{
		UserID: 42, Bookmaker: "1xbet", AccountID: "99887766",
		Amount: decimal.RequireFromString("500.37"), RequestType: domain.DepositRequest,
		ReservationID: reservationID,
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, request.ID)
}

func TestTransitions(t *testing.T) {
	pending := &domain.Request{ID: 1, Status: domain.PendingCheckStatus}

	tests := []struct {
		name          string
		call          func(s *Service) (*domain.Request, error)
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name: "SendToReview moves a pending request to manual review",
			call: func(s *Service) (*domain.Request, error) {
				return s.SendToReview(context.Background(), 1, "сомнительная сумма")
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.PendingCheckStatus, "сомнительная сумма").Return(true, nil)
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(pending, nil)
			},
		},
		{
			name: "Reject refuses a settled request",
			call: func(s *Service) (*domain.Request, error) {
				return s.Reject(context.Background(), 1, "")
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.RejectedStatus, "").Return(false, nil)
				repo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.Request{ID: 1, Status: domain.AutodepositSuccessStatus}, nil)
			},
			expectedError: apperrors.ErrAlreadySettled,
		},
		{
			name: "Defer on a missing request returns not found",
			call: func(s *Service) (*domain.Request, error) {
				return s.Defer(context.Background(), 1, "")
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.DeferredStatus, "").Return(false, nil)
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _, _ := NewMock(t)
			tt.prepareMock(repo)

			request, err := tt.call(service)
			if tt.expectedError != nil {
				assert.Nil(t, request)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, request)
		})
	}
}

func TestGet(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), 404).Return(nil, nil)
	_, err := service.Get(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
