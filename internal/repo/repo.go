package repo

import (
	"github.com/ormonbek/kassabot/internal/pg"
	paymentrepo "github.com/ormonbek/kassabot/internal/repo/payment-repo"
	requestrepo "github.com/ormonbek/kassabot/internal/repo/request-repo"
	reservationrepo "github.com/ormonbek/kassabot/internal/repo/reservation-repo"
	settingsrepo "github.com/ormonbek/kassabot/internal/repo/settings-repo"
)

type Repositories struct {
	RequestRepo     *requestrepo.Repository
	PaymentRepo     *paymentrepo.Repository
	ReservationRepo *reservationrepo.Repository
	SettingsRepo    *settingsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		RequestRepo:     requestrepo.New(conn, txManager),
		PaymentRepo:     paymentrepo.New(conn, txManager),
		ReservationRepo: reservationrepo.New(conn, txManager),
		SettingsRepo:    settingsrepo.New(conn),
	}
}
