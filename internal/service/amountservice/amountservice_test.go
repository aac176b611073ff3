package amountservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRequestRepo, *MockReservationRepo) {
	ctrl := gomock.NewController(t)
	requestRepo := NewMockRequestRepo(ctrl)
	reservationRepo := NewMockReservationRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	service := New(requestRepo, reservationRepo, txManager, 10*time.Minute)
	service.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	service.randInt = func(n int) int { return 0 }
	defer ctrl.Finish()
	return service, requestRepo, reservationRepo
}

func TestAllocateUniqueAmount(t *testing.T) {
	amount := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	tests := []struct {
		name           string
		params         AllocateParams
		prepareMock    func(requestRepo *MockRequestRepo, reservationRepo *MockReservationRepo)
		expectedAmount string
		expectedError  error
	}{
		{
			name:          "Non-positive amount is rejected",
			params:        AllocateParams{Amount: amount("0"), UserID: 1},
			prepareMock:   func(requestRepo *MockRequestRepo, reservationRepo *MockReservationRepo) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:   "First probed cents value is free",
			params: AllocateParams{Amount: amount("500"), UserID: 1, SkipReservation: true},
			prepareMock: func(requestRepo *MockRequestRepo, reservationRepo *MockReservationRepo) {
				reservationRepo.EXPECT().LockAmount(gomock.Any(), domain.DepositRequest, int64(500)).Return(nil)
				requestRepo.EXPECT().CountDepositsByAmountSince(gomock.Any(), amount("500.01"), gomock.Any()).Return(0, nil)
				reservationRepo.EXPECT().CountByAmountSince(gomock.Any(), amount("500.01"), domain.DepositRequest, gomock.Any()).Return(0, nil)
			},
			expectedAmount: "500.01",
		},
		{
			name:   "Occupied cents values are skipped",
			params: AllocateParams{Amount: amount("500"), UserID: 1, SkipReservation: true},
			prepareMock: func(requestRepo *MockRequestRepo, reservationRepo *MockReservationRepo) {
				reservationRepo.EXPECT().LockAmount(gomock.Any(), domain.DepositRequest, int64(500)).Return(nil)
				// .01 held by a recent request, .02 by a reservation, .03 free.
				requestRepo.EXPECT().CountDepositsByAmountSince(gomock.Any(), amount("500.01"), gomock.Any()).Return(1, nil)
				requestRepo.EXPECT().CountDepositsByAmountSince(gomock.Any(), amount("500.02"), gomock.Any()).Return(0, nil)
				reservationRepo.EXPECT().CountByAmountSince(gomock.Any(), amount("500.02"), domain.DepositRequest, gomock.Any()).Return(1, nil)
				requestRepo.EXPECT().CountDepositsByAmountSince(gomock.Any(), amount("500.03"), gomock.Any()).Return(0, nil)
				reservationRepo.EXPECT().CountByAmountSince(gomock.Any(), amount("500.03"), domain.DepositRequest, gomock.Any()).Return(0, nil)
			},
			expectedAmount: "500.03",
		},
		{
			name:   "Fractional input keeps its integer base",
			params: AllocateParams{Amount: amount("500.37"), UserID: 1, SkipReservation: true},
			prepareMock: func(requestRepo *MockRequestRepo, reservationRepo *MockReservationRepo) {
				reservationRepo.EXPECT().LockAmount(gomock.Any(), domain.DepositRequest, int64(500)).Return(nil)
				requestRepo.EXPECT().CountDepositsByAmountSince(gomock.Any(), amount("500.01"), gomock.Any()).Return(0, nil)
				reservationRepo.EXPECT().CountByAmountSince(gomock.Any(), amount("500.01"), domain.DepositRequest, gomock.Any()).Return(0, nil)
			},
			expectedAmount: "500.01",
		},
		{
			name:   "All cents occupied falls back to a random value",
			params: AllocateParams{Amount: amount("500"), UserID: 1, SkipReservation: true},
			prepareMock: func(requestRepo *MockRequestRepo, reservationRepo *MockReservationRepo) {
				reservationRepo.EXPECT().LockAmount(gomock.Any(), domain.DepositRequest, int64(500)).Return(nil)
				requestRepo.EXPECT().CountDepositsByAmountSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil).Times(99)
			},
			expectedAmount: "500.01",
		},
		{
			name:   "Probe error is propagated",
			params: AllocateParams{Amount: amount("500"), UserID: 1, SkipReservation: true},
			prepareMock: func(requestRepo *MockRequestRepo, reservationRepo *MockReservationRepo) {
				reservationRepo.EXPECT().LockAmount(gomock.Any(), domain.DepositRequest, int64(500)).Return(nil)
				requestRepo.EXPECT().CountDepositsByAmountSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, requestRepo, reservationRepo := NewMock(t)
			tt.prepareMock(requestRepo, reservationRepo)

			allocation, err := service.AllocateUniqueAmount(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Nil(t, allocation)
				if errors.Is(tt.expectedError, apperrors.ErrValidation) {
					assert.ErrorIs(t, err, apperrors.ErrValidation)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.True(t, allocation.Amount.Equal(amount(tt.expectedAmount)),
				"got %s, want %s", allocation.Amount, tt.expectedAmount)
		})
	}
}

func TestAllocateUniqueAmountReservation(t *testing.T) {
	service, requestRepo, reservationRepo := NewMock(t)
	amount := decimal.RequireFromString("500")

	reservationRepo.EXPECT().LockAmount(gomock.Any(), domain.DepositRequest, int64(500)).Return(nil)
	requestRepo.EXPECT().CountDepositsByAmountSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	reservationRepo.EXPECT().CountByAmountSince(gomock.Any(), gomock.Any(), domain.DepositRequest, gomock.Any()).Return(0, nil)
	reservationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, res *domain.Reservation) error {
			assert.Equal(t, domain.ReservedStatus, res.Status)
			assert.Equal(t, int64(42), res.UserID)
			assert.True(t, res.Amount.Equal(decimal.RequireFromString("500.01")))
			return nil
		})

	allocation, err := service.AllocateUniqueAmount(context.Background(), AllocateParams{
		Amount:    amount,
		UserID:    42,
		Bookmaker: "1xbet",
		AccountID: "99887766",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, allocation.ReservationID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestRegisterUncreated(t *testing.T) {
	tests := []struct {
		name          string
		params        UncreatedParams
		prepareMock   func(reservationRepo *MockReservationRepo)
		expectedError error
	}{
		{
			name:          "Missing userId is rejected",
			params:        UncreatedParams{},
			prepareMock:   func(reservationRepo *MockReservationRepo) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:   "Reservation is stored with not_created status",
			params: UncreatedParams{UserID: 7, Bookmaker: "mostbet", Amount: decimal.RequireFromString("300.15")},
			prepareMock: func(reservationRepo *MockReservationRepo) {
				reservationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, res *domain.Reservation) error {
						assert.Equal(t, domain.NotCreatedStatus, res.Status)
						assert.Equal(t, domain.DepositRequest, res.RequestType)
						return nil
					})
			},
		},
		{
			name:   "Save error is propagated",
			params: UncreatedParams{UserID: 7},
			prepareMock: func(reservationRepo *MockReservationRepo) {
				reservationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, reservationRepo := NewMock(t)
			tt.prepareMock(reservationRepo)

			reservation, err := service.RegisterUncreated(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Nil(t, reservation)
				if errors.Is(tt.expectedError, apperrors.ErrValidation) {
					assert.ErrorIs(t, err, apperrors.ErrValidation)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, reservation)
		})
	}
}
