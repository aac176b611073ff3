package casino

import (
	"context"
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"

	"github.com/ormonbek/kassabot/pkg/clients"
)

const (
	mostbetBaseURL         = "https://apimb.com"
	mostbetTimestampLayout = "2006-01-02 15:04:05"
)

type MostbetAdapter struct {
	cfg    *MostbetConfig
	client clients.HTTPClientI
	now    func() time.Time
}

func NewMostbet(cfg *MostbetConfig, client clients.HTTPClientI) *MostbetAdapter {
	return &MostbetAdapter{
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
}

// FormatAPIKey prefixes the key with "api-key:" unless already prefixed.
func FormatAPIKey(apiKey string) string {
	if strings.HasPrefix(apiKey, "api-key:") {
		return apiKey
	}
	return "api-key:" + apiKey
}

// MostbetSignature is HMAC-SHA3-256 over apiKey ++ path ++ body ++ timestamp.
// The body string is part of the signature input byte for byte, which is why
// request bodies are built as literal strings rather than marshaled structs.
func MostbetSignature(secret, apiKeyFormatted, path, body, timestamp string) string {
	mac := hmac.New(sha3.New256, []byte(secret))
	mac.Write([]byte(apiKeyFormatted + path + body + timestamp))
	return hex.EncodeToString(mac.Sum(nil))
}

func (a *MostbetAdapter) call(path, body string) (*Result, error) {
	timestamp := a.now().UTC().Format(mostbetTimestampLayout)
	apiKey := FormatAPIKey(a.cfg.APIKey)
	signature := MostbetSignature(a.cfg.Secret, apiKey, path, body, timestamp)

	headers := http.Header{}
	headers.Set("X-Api-Key", apiKey)
	headers.Set("X-Timestamp", timestamp)
	headers.Set("X-Signature", signature)
	headers.Set("X-Project", "MBC")
	headers.Set("Content-Type", "application/json")

	status, respBody, err := a.client.Post(mostbetBaseURL+path, headers, []byte(body))
	if err != nil {
		zap.L().Error("mostbet call failed", zap.Error(err))
		return &Result{Success: false, Message: err.Error()}, nil
	}

	// The vendor does not echo a boolean success flag; a 2xx is success.
	if status < 200 || status >= 300 {
		return &Result{Success: false, Message: fmt.Sprintf("casino responded with status %d", status)}, nil
	}

	// A 2xx whose body does not parse cannot be trusted as a settlement
	// confirmation, so it counts as a failure as well.
	var data map[string]any
	if err := json.Unmarshal(respBody, &data); err != nil {
		zap.L().Error("mostbet returned unparsable body", zap.Int("status", status), zap.Error(err))
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

func (a *MostbetAdapter) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*Result, error) {
	path := fmt.Sprintf("/mbc/gateway/v1/api/cashpoint/%d/player/deposit", a.cfg.CashpointID)
	body := fmt.Sprintf(`{"brandId":1,"playerId":"%s","amount":%s,"currency":"KGS"}`, accountID, amount.String())
	return a.call(path, body)
}

// Withdraw combines amount verification and the payout in a single vendor
// call; there is no separate check round trip for this vendor.
func (a *MostbetAdapter) Withdraw(ctx context.Context, accountID, code string) (*Result, error) {
	path := fmt.Sprintf("/mbc/gateway/v1/api/cashpoint/%d/player/withdrawal", a.cfg.CashpointID)
	body := fmt.Sprintf(`{"brandId":1,"playerId":"%s","code":"%s","currency":"KGS"}`, accountID, code)
	return a.call(path, body)
}
