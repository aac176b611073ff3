package amounts

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/dto"
	"github.com/ormonbek/kassabot/internal/service/amountservice"
)

func NewMock(t *testing.T) (*AmountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestUniqueAmountHandler(t *testing.T) {
	reservationID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Allocation succeeds",
			body: `{"amount":"500","userId":42,"bookmaker":"1xbet"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AllocateUniqueAmount(gomock.Any(), gomock.Any()).
					Return(&amountservice.Allocation{
						Amount:        decimal.RequireFromString("500.23"),
						ReservationID: reservationID,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed body returns 400",
			body:         `{"amount":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation error returns 400",
			body: `{"amount":"0","userId":42}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AllocateUniqueAmount(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.Validation("amount must be positive"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage error returns 500",
			body: `{"amount":"500","userId":42}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AllocateUniqueAmount(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/public/unique-amount", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.UniqueAmount(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if w.Code == http.StatusOK {
				var resp dto.UniqueAmountResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Amount.Equal(decimal.RequireFromString("500.23")))
				assert.Equal(t, reservationID.String(), resp.ReservationID)
			}
		})
	}
}

func TestUncreatedHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		RegisterUncreated(gomock.Any(), amountservice.UncreatedParams{
			UserID:      42,
			Bookmaker:   "mostbet",
			Amount:      decimal.RequireFromString("300.15"),
			RequestType: domain.DepositRequest,
		}).
		Return(&domain.Reservation{
			ID:     uuid.New(),
			Status: domain.NotCreatedStatus,
		}, nil)

	body := `{"userId":42,"bookmaker":"mostbet","amount":"300.15","requestType":"deposit"}`
	req := httptest.NewRequest(http.MethodPost, "/public/uncreated-requests", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler.Uncreated(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UncreatedResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.NotCreatedStatus, resp.Status)
}
