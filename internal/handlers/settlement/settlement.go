package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/casino"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/dto"
	"github.com/ormonbek/kassabot/internal/service/settlementservice"
	"github.com/ormonbek/kassabot/pkg/utils"
)

type Service interface {
	CheckPayment(ctx context.Context, requestID int, amount decimal.Decimal, createdAt time.Time) (*settlementservice.CheckResult, error)
	DepositBalance(ctx context.Context, requestID int, bookmaker string, amount decimal.Decimal) (*domain.Request, error)
	WithdrawBalance(ctx context.Context, bookmaker, accountID, code string) (*casino.Result, error)
	CheckWithdrawAmount(ctx context.Context, bookmaker, accountID, code string) (*casino.Result, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

// CheckPayment tries to settle one request against already-ingested
// payments right away, without waiting for the background sweep.
func (h *SettlementHandler) CheckPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.settlementService.CheckPayment(r.Context(), req.RequestID, req.Amount, req.CreatedAt)
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := dto.CheckPaymentResponseDTO{
		Processed: result.Processed,
		Reason:    result.Reason,
	}
	if result.Processed {
		resp.PaymentID = result.PaymentID.String()
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DepositBalance credits the player's casino account directly, bypassing
// payment matching. Used by operators confirming a payment by hand.
func (h *SettlementHandler) DepositBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.settlementService.DepositBalance(r.Context(), req.RequestID, req.Bookmaker, req.Amount)
	if err != nil {
		// An already-settled request is the state this call drives toward,
		// so a repeat is a no-op, not an error.
		if errors.Is(err, apperrors.ErrAlreadySettled) {
			utils.RespondWithJSON(w, http.StatusOK, dto.CheckPaymentResponseDTO{
				Processed: false,
				Reason:    "already processed",
			})
			return
		}
		h.respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestResponse(request))
}

func (h *SettlementHandler) WithdrawBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.settlementService.WithdrawBalance(r.Context(), req.Bookmaker, req.AccountID, req.Code)
	if err != nil {
		h.respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResultDTO{
		Success: result.Success,
		Amount:  result.Amount,
		Message: result.Message,
		Data:    result.Data,
	})
}

// CheckWithdrawAmount resolves a withdraw code to the amount the casino
// will pay out, without committing the payout. Only the cashdesk family
// supports this pre-check.
func (h *SettlementHandler) CheckWithdrawAmount(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckWithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.settlementService.CheckWithdrawAmount(r.Context(), req.Bookmaker, req.UserID, req.Code)
	if err != nil {
		h.respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckWithdrawResponseDTO{
		Amount:        result.Amount,
		TransactionID: result.OperationID,
		Message:       result.Message,
	})
}

func (h *SettlementHandler) respondError(w http.ResponseWriter, err error) {
	var vendorErr *apperrors.VendorError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "request not found")
	case errors.Is(err, apperrors.ErrUnknownBookmaker), errors.Is(err, apperrors.ErrConfiguration):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &vendorErr):
		utils.RespondWithError(w, http.StatusBadGateway, vendorErr.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
