package casino

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ormonbek/kassabot/pkg/clients"
)

const (
	onewinBaseURL         = "https://cash.1win.pro"
	onewinTimestampLayout = "2006-01-02 15:04:05"
)

// OneWinAdapter is the third variant of the settlement interface. The wire
// protocol follows the same shape as Mostbet (signed JSON over POST,
// single-call withdraw) with an HMAC-SHA256 signature.
type OneWinAdapter struct {
	cfg    *OneWinConfig
	client clients.HTTPClientI
	now    func() time.Time
}

func NewOneWin(cfg *OneWinConfig, client clients.HTTPClientI) *OneWinAdapter {
	return &OneWinAdapter{
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
}

func OneWinSignature(secret, path, body, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(path + body + timestamp))
	return hex.EncodeToString(mac.Sum(nil))
}

func (a *OneWinAdapter) call(path, body string) (*Result, error) {
	timestamp := a.now().UTC().Format(onewinTimestampLayout)
	signature := OneWinSignature(a.cfg.Secret, path, body, timestamp)

	headers := http.Header{}
	headers.Set("X-Api-Key", a.cfg.APIKey)
	headers.Set("X-Timestamp", timestamp)
	headers.Set("X-Sign", signature)
	headers.Set("Content-Type", "application/json")

	status, respBody, err := a.client.Post(onewinBaseURL+path, headers, []byte(body))
	if err != nil {
		zap.L().Error("1win call failed", zap.Error(err))
		return &Result{Success: false, Message: err.Error()}, nil
	}
	if status < 200 || status >= 300 {
		return &Result{Success: false, Message: fmt.Sprintf("casino responded with status %d", status)}, nil
	}

	var data map[string]any
	if err := json.Unmarshal(respBody, &data); err != nil {
		zap.L().Error("1win returned unparsable body", zap.Int("status", status), zap.Error(err))
		return &Result{Success: false, Message: "casino returned an unreadable response"}, nil
	}

	result := &Result{Success: true, Data: data}
	if amount, ok := data["amount"].(float64); ok {
		result.Amount = decimal.NewFromFloat(amount)
	}
	if message, ok := data["message"].(string); ok {
		result.Message = message
	}
	return result, nil
}

func (a *OneWinAdapter) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*Result, error) {
	path := fmt.Sprintf("/api/v1/shop/%d/deposit", a.cfg.ShopID)
	body := fmt.Sprintf(`{"userId":"%s","amount":%s,"currency":"KGS"}`, accountID, amount.String())
	return a.call(path, body)
}

func (a *OneWinAdapter) Withdraw(ctx context.Context, accountID, code string) (*Result, error) {
	path := fmt.Sprintf("/api/v1/shop/%d/withdrawal", a.cfg.ShopID)
	body := fmt.Sprintf(`{"userId":"%s","code":"%s","currency":"KGS"}`, accountID, code)
	return a.call(path, body)
}
