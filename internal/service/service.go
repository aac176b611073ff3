package service

import (
	"github.com/ormonbek/kassabot/internal/config"
	"github.com/ormonbek/kassabot/internal/handlers/amounts"
	"github.com/ormonbek/kassabot/internal/handlers/payments"
	"github.com/ormonbek/kassabot/internal/handlers/requests"
	"github.com/ormonbek/kassabot/internal/handlers/settlement"
	"github.com/ormonbek/kassabot/internal/pg"
	"github.com/ormonbek/kassabot/internal/repo"
	amountservice "github.com/ormonbek/kassabot/internal/service/amountservice"
	paymentservice "github.com/ormonbek/kassabot/internal/service/paymentservice"
	requestservice "github.com/ormonbek/kassabot/internal/service/requestservice"
	settlementservice "github.com/ormonbek/kassabot/internal/service/settlementservice"
	"github.com/ormonbek/kassabot/internal/watcher"
)

type Services struct {
	AmountService     amounts.Service
	PaymentService    payments.Service
	RequestService    requests.Service
	SettlementService settlement.Service

	// Matcher is the settlement service under its sweep-side interface,
	// bound to the background watcher at startup.
	Matcher watcher.Matcher
}

func New(repo *repo.Repositories, txManager pg.TXManager, registry settlementservice.AdapterRegistry, notifier paymentservice.Notifier, cfg *config.Config) *Services {
	amountService := amountservice.New(repo.RequestRepo, repo.ReservationRepo, txManager, cfg.ReservationTTL)
	paymentService := paymentservice.New(repo.PaymentRepo, txManager, notifier, cfg.DedupWindow)
	requestService := requestservice.New(repo.RequestRepo, repo.ReservationRepo, amountService)
	settlementService := settlementservice.New(repo.RequestRepo, repo.PaymentRepo, registry, cfg.MatchWindow)

	return &Services{
		AmountService:     amountService,
		PaymentService:    paymentService,
		RequestService:    requestService,
		SettlementService: settlementService,
		Matcher:           settlementService,
	}
}
