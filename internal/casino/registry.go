package casino

import (
	"context"
	"fmt"

	"github.com/ormonbek/kassabot/internal/apperrors"
	"github.com/ormonbek/kassabot/pkg/clients"
)

const (
	Bookmaker1xBet     = "1xbet"
	BookmakerMelbet    = "melbet"
	BookmakerWinwin    = "winwin"
	Bookmaker888Starz  = "888starz"
	Bookmaker1xCasino  = "1xcasino"
	BookmakerBetWinner = "betwinner"
	BookmakerWowBet    = "wowbet"
	BookmakerMostbet   = "mostbet"
	Bookmaker1win      = "1win"
)

var cashdeskFamily = map[string]bool{
	Bookmaker1xBet:     true,
	BookmakerMelbet:    true,
	BookmakerWinwin:    true,
	Bookmaker888Starz:  true,
	Bookmaker1xCasino:  true,
	BookmakerBetWinner: true,
	BookmakerWowBet:    true,
}

// Registry resolves a bookmaker key to a ready-to-call adapter with validated
// credentials. Adding a vendor means adding a case here; the matcher and the
// request store never change.
type Registry struct {
	provider *Provider
	client   clients.HTTPClientI
}

func NewRegistry(provider *Provider, client clients.HTTPClientI) *Registry {
	return &Registry{
		provider: provider,
		client:   client,
	}
}

func (r *Registry) Adapter(ctx context.Context, bookmaker string) (Adapter, error) {
	switch {
	case cashdeskFamily[bookmaker]:
		cfg, err := r.provider.Cashdesk(ctx, bookmaker)
		if err != nil {
			return nil, err
		}
		return NewCashdesk(bookmaker, cfg, r.client, bookmaker == BookmakerMelbet), nil

	case bookmaker == BookmakerMostbet:
		cfg, err := r.provider.Mostbet(ctx, bookmaker)
		if err != nil {
			return nil, err
		}
		return NewMostbet(cfg, r.client), nil

	case bookmaker == Bookmaker1win:
		cfg, err := r.provider.OneWin(ctx, bookmaker)
		if err != nil {
			return nil, err
		}
		return NewOneWin(cfg, r.client), nil
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownBookmaker, bookmaker)
}
