package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/dto"
	"github.com/ormonbek/kassabot/internal/service/requestservice"
	"github.com/ormonbek/kassabot/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, p requestservice.CreateParams) (*domain.Request, error)
	Get(ctx context.Context, id int) (*domain.Request, error)
	SendToReview(ctx context.Context, id int, detail string) (*domain.Request, error)
	Reject(ctx context.Context, id int, detail string) (*domain.Request, error)
	Defer(ctx context.Context, id int, detail string) (*domain.Request, error)
}

type RequestHandler struct {
	requestService Service
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// Create registers a deposit or withdraw request. A whole-number deposit
// amount gets a unique cents component before it is stored.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var reservationID uuid.UUID
	if req.ReservationID != "" {
		id, err := uuid.Parse(req.ReservationID)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid reservationId")
			return
		}
		reservationID = id
	}

	request, err := h.requestService.Create(r.Context(), requestservice.CreateParams{
		UserID:        req.UserID,
		Bookmaker:     req.Bookmaker,
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		RequestType:   domain.RequestType(req.RequestType),
		ReservationID: reservationID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRequestResponse(request))
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	request, err := h.requestService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "request not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestResponse(request))
}

// SendToReview moves a pending request into manual review. Once a request
// has been settled the transition is refused.
func (h *RequestHandler) SendToReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.SendToReview)
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.Reject)
}

func (h *RequestHandler) Defer(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.Defer)
}

type transitionFn func(ctx context.Context, id int, detail string) (*domain.Request, error)

func (h *RequestHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFn) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.TransitionRequestDTO
	if r.Body != nil {
		// Body is optional: a bare transition carries no detail.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	request, err := fn(r.Context(), id, req.Detail)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "request not found")
		case errors.Is(err, apperrors.ErrAlreadySettled):
			utils.RespondWithError(w, http.StatusConflict, "request is already settled")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NewRequestResponse(request))
}
