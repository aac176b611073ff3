package settlement

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
	"github.com/ormonbek/kassabot/internal/casino"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/dto"
	"github.com/ormonbek/kassabot/internal/service/settlementservice"
)

func NewMock(t *testing.T) (*SettlementHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCheckPaymentHandler(t *testing.T) {
	paymentID := uuid.New()

	tests := []struct {
		name              string
		body              string
		prepareMock       func(service *MockService)
		expectedCode      int
		expectedProcessed bool
	}{
		{
			name: "Settled request reports the consumed payment",
			body: `{"requestId":7,"amount":"500.23","createdAt":"2024-06-01T12:00:00Z"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CheckPayment(gomock.Any(), 7, gomock.Any(), gomock.Any()).
					Return(&settlementservice.CheckResult{Processed: true, PaymentID: paymentID}, nil)
			},
			expectedCode:      http.StatusOK,
			expectedProcessed: true,
		},
		{
			name: "No matching payment is still a 200",
			body: `{"requestId":7,"amount":"500.23","createdAt":"2024-06-01T12:00:00Z"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CheckPayment(gomock.Any(), 7, gomock.Any(), gomock.Any()).
					Return(&settlementservice.CheckResult{Processed: false, Reason: "no matching payment"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed body returns 400",
			body:         `{"requestId":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown request returns 404",
			body: `{"requestId":404,"amount":"500.23","createdAt":"2024-06-01T12:00:00Z"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CheckPayment(gomock.Any(), 404, gomock.Any(), gomock.Any()).
					Return(nil, apperrors.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Missing credentials return 422",
			body: `{"requestId":7,"amount":"500.23","createdAt":"2024-06-01T12:00:00Z"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CheckPayment(gomock.Any(), 7, gomock.Any(), gomock.Any()).
					Return(nil, apperrors.Configuration("1xbet", "hash"))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/auto-deposit/check-payment", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CheckPayment(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.CheckPaymentResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedProcessed, resp.Processed)
				if tt.expectedProcessed {
					assert.Equal(t, paymentID.String(), resp.PaymentID)
				}
			}
		})
	}
}

func TestDepositBalanceHandler(t *testing.T) {
	tests := []struct {
		name           string
		prepareMock    func(service *MockService)
		expectedCode   int
		expectedBenign bool
	}{
		{
			name: "Direct settlement succeeds",
			prepareMock: func(service *MockService) {
				service.EXPECT().DepositBalance(gomock.Any(), 7, "1xbet", gomock.Any()).
					Return(&domain.Request{ID: 7, Status: domain.CompletedStatus}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			// A repeat settlement attempt is a safe no-op, never an error.
			name: "Already settled is a benign 200",
			prepareMock: func(service *MockService) {
				service.EXPECT().DepositBalance(gomock.Any(), 7, "1xbet", gomock.Any()).
					Return(nil, apperrors.ErrAlreadySettled)
			},
			expectedCode:   http.StatusOK,
			expectedBenign: true,
		},
		{
			name: "Vendor failure returns 502",
			prepareMock: func(service *MockService) {
				service.EXPECT().DepositBalance(gomock.Any(), 7, "1xbet", gomock.Any()).
					Return(nil, apperrors.NewVendorError("1xbet", "service unavailable"))
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Unexpected error returns 500",
			prepareMock: func(service *MockService) {
				service.EXPECT().DepositBalance(gomock.Any(), 7, "1xbet", gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			body := `{"requestId":7,"bookmaker":"1xbet","amount":"500.23"}`
			req := httptest.NewRequest(http.MethodPost, "/deposit-balance", bytes.NewBufferString(body))
			w := httptest.NewRecorder()
			handler.DepositBalance(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBenign {
				var resp dto.CheckPaymentResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.False(t, resp.Processed)
				assert.Equal(t, "already processed", resp.Reason)
			}
		})
	}
}

func TestWithdrawBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().WithdrawBalance(gomock.Any(), "melbet", "99887766", "A1B2C3").
		Return(&casino.Result{Success: true, Amount: decimal.RequireFromString("1500")}, nil)

	body := `{"bookmaker":"melbet","accountId":"99887766","code":"A1B2C3"}`
	req := httptest.NewRequest(http.MethodPost, "/withdraw-balance", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler.WithdrawBalance(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WithdrawResultDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Amount.Equal(decimal.RequireFromString("1500")))
}

func TestCheckWithdrawAmountHandler(t *testing.T) {
	t.Run("Amount is resolved with the vendor transaction id", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CheckWithdrawAmount(gomock.Any(), "1xbet", "99887766", "A1B2C3").
			Return(&casino.Result{
				Success:     true,
				Amount:      decimal.RequireFromString("1500"),
				OperationID: 654321,
			}, nil)

		body := `{"bookmaker":"1xbet","userId":"99887766","code":"A1B2C3"}`
		req := httptest.NewRequest(http.MethodPost, "/check-withdraw-amount", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		handler.CheckWithdrawAmount(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.CheckWithdrawResponseDTO
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Amount.Equal(decimal.RequireFromString("1500")))
		assert.Equal(t, int64(654321), resp.TransactionID)
	})

	t.Run("Single-call vendor returns 400", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CheckWithdrawAmount(gomock.Any(), "mostbet", "99887766", "A1B2C3").
			Return(nil, apperrors.Validation("mostbet does not support a separate withdraw amount check"))

		body := `{"bookmaker":"mostbet","userId":"99887766","code":"A1B2C3"}`
		req := httptest.NewRequest(http.MethodPost, "/check-withdraw-amount", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		handler.CheckWithdrawAmount(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
