package amounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/dto"
	"github.com/ormonbek/kassabot/internal/service/amountservice"
	"github.com/ormonbek/kassabot/pkg/utils"
)

type Service interface {
	AllocateUniqueAmount(ctx context.Context, p amountservice.AllocateParams) (*amountservice.Allocation, error)
	RegisterUncreated(ctx context.Context, p amountservice.UncreatedParams) (*domain.Reservation, error)
}

type AmountHandler struct {
	amountService Service
}

func New(amountService Service) *AmountHandler {
	return &AmountHandler{
		amountService: amountService,
	}
}

// UniqueAmount hands out a disambiguated 2-decimal amount for a deposit
// intent and reserves it against concurrent allocations.
func (h *AmountHandler) UniqueAmount(w http.ResponseWriter, r *http.Request) {
	var req dto.UniqueAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	allocation, err := h.amountService.AllocateUniqueAmount(r.Context(), amountservice.AllocateParams{
		Amount:      req.Amount,
		UserID:      req.UserID,
		Bookmaker:   req.Bookmaker,
		AccountID:   req.AccountID,
		Bank:        req.Bank,
		RequestType: domain.RequestType(req.RequestType),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UniqueAmountResponseDTO{
		Amount:        allocation.Amount,
		ReservationID: allocation.ReservationID.String(),
	})
}

// Uncreated records a "request not created yet" ping so the amount is held
// while the user finishes the flow.
func (h *AmountHandler) Uncreated(w http.ResponseWriter, r *http.Request) {
	var req dto.UncreatedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reservation, err := h.amountService.RegisterUncreated(r.Context(), amountservice.UncreatedParams{
		UserID:      req.UserID,
		Bookmaker:   req.Bookmaker,
		AccountID:   req.AccountID,
		Bank:        req.Bank,
		Amount:      req.Amount,
		RequestType: domain.RequestType(req.RequestType),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.UncreatedResponseDTO{
		ID:        reservation.ID.String(),
		Status:    reservation.Status,
		CreatedAt: reservation.CreatedAt,
	})
}
