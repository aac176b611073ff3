package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/dto"
	"github.com/ormonbek/kassabot/internal/service/paymentservice"
	"github.com/ormonbek/kassabot/pkg/utils"
)

type Service interface {
	Ingest(ctx context.Context, p paymentservice.IngestParams) (*domain.IncomingPayment, bool, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Ingest accepts a bank notification event from the email watcher or payment
// app. A duplicate inside the dedup window resolves to the existing payment
// and returns it with 200 — re-posting the same event is never an error.
func (h *PaymentHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req dto.IncomingPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, duplicate, err := h.paymentService.Ingest(r.Context(), paymentservice.IngestParams{
		Amount:           req.Amount,
		Bank:             req.Bank,
		PaymentDate:      req.PaymentDate,
		NotificationText: req.NotificationText,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	utils.RespondWithJSON(w, status, dto.IncomingPaymentResponseDTO{
		ID:          payment.ID.String(),
		Amount:      payment.Amount,
		Bank:        payment.Bank,
		PaymentDate: payment.PaymentDate,
		IsProcessed: payment.IsProcessed,
	})
}
