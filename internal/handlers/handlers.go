package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	amounthandlers "github.com/ormonbek/kassabot/internal/handlers/amounts"
	paymenthandlers "github.com/ormonbek/kassabot/internal/handlers/payments"
	requesthandlers "github.com/ormonbek/kassabot/internal/handlers/requests"
	settlementhandlers "github.com/ormonbek/kassabot/internal/handlers/settlement"
	"github.com/ormonbek/kassabot/internal/service"
)

type PaymentHandler interface {
	Ingest(w http.ResponseWriter, r *http.Request)
}

type AmountHandler interface {
	UniqueAmount(w http.ResponseWriter, r *http.Request)
	Uncreated(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	SendToReview(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Defer(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	CheckPayment(w http.ResponseWriter, r *http.Request)
	DepositBalance(w http.ResponseWriter, r *http.Request)
	WithdrawBalance(w http.ResponseWriter, r *http.Request)
	CheckWithdrawAmount(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PaymentHandler    PaymentHandler
	AmountHandler     AmountHandler
	RequestHandler    RequestHandler
	SettlementHandler SettlementHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		PaymentHandler:    paymenthandlers.New(s.PaymentService),
		AmountHandler:     amounthandlers.New(s.AmountService),
		RequestHandler:    requesthandlers.New(s.RequestService),
		SettlementHandler: settlementhandlers.New(s.SettlementService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/incoming-payment", h.PaymentHandler.Ingest)

	r.Route("/public", func(r chi.Router) {
		r.Post("/unique-amount", h.AmountHandler.UniqueAmount)
		r.Post("/uncreated-requests", h.AmountHandler.Uncreated)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", h.RequestHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.RequestHandler.Get)
			r.Post("/review", h.RequestHandler.SendToReview)
			r.Post("/reject", h.RequestHandler.Reject)
			r.Post("/defer", h.RequestHandler.Defer)
		})
	})

	r.Post("/auto-deposit/check-payment", h.SettlementHandler.CheckPayment)
	r.Post("/deposit-balance", h.SettlementHandler.DepositBalance)
	r.Post("/withdraw-balance", h.SettlementHandler.WithdrawBalance)
	r.Post("/check-withdraw-amount", h.SettlementHandler.CheckWithdrawAmount)

	return r
}
