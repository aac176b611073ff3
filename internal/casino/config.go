package casino

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ormonbek/kassabot/internal/apperrors"
)

// CashdeskConfig holds credentials for the Cashdesk family of vendors.
type CashdeskConfig struct {
	Hash        string `json:"hash"`
	CashierPass string `json:"cashierpass"`
	Login       string `json:"login"`
	CashdeskID  int64  `json:"cashdeskid"`
}

func (c *CashdeskConfig) Validate(bookmaker string) error {
	switch {
	case c.Hash == "":
		return apperrors.Configuration(bookmaker, "hash")
	case c.CashierPass == "":
		return apperrors.Configuration(bookmaker, "cashierpass")
	case c.Login == "":
		return apperrors.Configuration(bookmaker, "login")
	case c.CashdeskID == 0:
		return apperrors.Configuration(bookmaker, "cashdeskid")
	}
	return nil
}

type MostbetConfig struct {
	APIKey      string `json:"api_key"`
	Secret      string `json:"secret"`
	CashpointID int64  `json:"cashpoint_id"`
}

func (c *MostbetConfig) Validate(bookmaker string) error {
	switch {
	case c.APIKey == "":
		return apperrors.Configuration(bookmaker, "api_key")
	case c.Secret == "":
		return apperrors.Configuration(bookmaker, "secret")
	case c.CashpointID == 0:
		return apperrors.Configuration(bookmaker, "cashpoint_id")
	}
	return nil
}

type OneWinConfig struct {
	APIKey string `json:"api_key"`
	Secret string `json:"secret"`
	ShopID int64  `json:"shop_id"`
}

func (c *OneWinConfig) Validate(bookmaker string) error {
	switch {
	case c.APIKey == "":
		return apperrors.Configuration(bookmaker, "api_key")
	case c.Secret == "":
		return apperrors.Configuration(bookmaker, "secret")
	case c.ShopID == 0:
		return apperrors.Configuration(bookmaker, "shop_id")
	}
	return nil
}

// SettingsStore is the keyed configuration lookup (a JSON blob per bookmaker
// stored in the database).
type SettingsStore interface {
	Get(ctx context.Context, bookmaker string) ([]byte, error)
}

// Provider loads per-bookmaker credentials from the settings store, filling
// missing fields from environment variables (e.g. MELBET_HASH), and fails
// fast on anything still empty. Signing code never sees a partial config.
type Provider struct {
	store SettingsStore
}

func NewProvider(store SettingsStore) *Provider {
	return &Provider{store: store}
}

func (p *Provider) load(ctx context.Context, bookmaker string, out any) error {
	blob, err := p.store.Get(ctx, bookmaker)
	if err != nil {
		return fmt.Errorf("can't load settings for %s: %w", bookmaker, err)
	}
	if blob == nil {
		return nil
	}
	if err := json.Unmarshal(blob, out); err != nil {
		return fmt.Errorf("malformed settings for %s: %w", bookmaker, err)
	}
	return nil
}

func envFallback(bookmaker, field string) string {
	name := strings.ToUpper(bookmaker) + "_" + strings.ToUpper(field)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return os.Getenv(name)
}

func envFallbackInt(bookmaker, field string) int64 {
	v, _ := strconv.ParseInt(envFallback(bookmaker, field), 10, 64)
	return v
}

func (p *Provider) Cashdesk(ctx context.Context, bookmaker string) (*CashdeskConfig, error) {
	cfg := &CashdeskConfig{}
	if err := p.load(ctx, bookmaker, cfg); err != nil {
		return nil, err
	}
	if cfg.Hash == "" {
		cfg.Hash = envFallback(bookmaker, "hash")
	}
	if cfg.CashierPass == "" {
		cfg.CashierPass = envFallback(bookmaker, "cashierpass")
	}
	if cfg.Login == "" {
		cfg.Login = envFallback(bookmaker, "login")
	}
	if cfg.CashdeskID == 0 {
		cfg.CashdeskID = envFallbackInt(bookmaker, "cashdeskid")
	}
	if err := cfg.Validate(bookmaker); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (p *Provider) Mostbet(ctx context.Context, bookmaker string) (*MostbetConfig, error) {
	cfg := &MostbetConfig{}
	if err := p.load(ctx, bookmaker, cfg); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		cfg.APIKey = envFallback(bookmaker, "api_key")
	}
	if cfg.Secret == "" {
		cfg.Secret = envFallback(bookmaker, "secret")
	}
	if cfg.CashpointID == 0 {
		cfg.CashpointID = envFallbackInt(bookmaker, "cashpoint_id")
	}
	if err := cfg.Validate(bookmaker); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (p *Provider) OneWin(ctx context.Context, bookmaker string) (*OneWinConfig, error) {
	cfg := &OneWinConfig{}
	if err := p.load(ctx, bookmaker, cfg); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		cfg.APIKey = envFallback(bookmaker, "api_key")
	}
	if cfg.Secret == "" {
		cfg.Secret = envFallback(bookmaker, "secret")
	}
	if cfg.ShopID == 0 {
		cfg.ShopID = envFallbackInt(bookmaker, "shop_id")
	}
	if err := cfg.Validate(bookmaker); err != nil {
		return nil, err
	}
	return cfg, nil
}
