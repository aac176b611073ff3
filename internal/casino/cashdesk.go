package casino

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ormonbek/kassabot/pkg/clients"
)

const cashdeskBaseURL = "https://partners.servcul.com/CashdeskBotAPI"

// CashdeskAdapter speaks the shared protocol of the 1xbet family
// (1xbet, Melbet, Winwin, 888starz, 1xCasino, BetWinner, WowBet). The vendors
// differ only in credentials; Melbet additionally lowercases the account id
// before hashing.
type CashdeskAdapter struct {
	bookmaker      string
	cfg            *CashdeskConfig
	client         clients.HTTPClientI
	lowercaseLogin bool
}

func NewCashdesk(bookmaker string, cfg *CashdeskConfig, client clients.HTTPClientI, lowercaseLogin bool) *CashdeskAdapter {
	return &CashdeskAdapter{
		bookmaker:      bookmaker,
		cfg:            cfg,
		client:         client,
		lowercaseLogin: lowercaseLogin,
	}
}

func md5hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func sha256hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// GenerateConfirm builds the confirm token: MD5("{accountId}:{hash}").
func GenerateConfirm(accountID, hash string, lowercase bool) string {
	if lowercase {
		accountID = strings.ToLower(accountID)
	}
	return md5hex(accountID + ":" + hash)
}

// CashdeskSign builds the two-stage request signature. The intermediate
// digests are concatenated as hex strings, not raw bytes, before the final
// SHA256 — the vendor verifies exactly this construction.
func CashdeskSign(accountID, paramsPart string, cfg *CashdeskConfig, lowercase bool) string {
	if lowercase {
		accountID = strings.ToLower(accountID)
	}
	h1 := sha256hex(fmt.Sprintf("hash=%s&lng=ru&userid=%s", cfg.Hash, accountID))
	h2 := md5hex(fmt.Sprintf("%s&cashierpass=%s&cashdeskid=%d", paramsPart, cfg.CashierPass, cfg.CashdeskID))
	return sha256hex(h1 + h2)
}

func (a *CashdeskAdapter) authHeader() string {
	creds := a.cfg.Login + ":" + a.cfg.CashierPass
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}

type cashdeskResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Error       string          `json:"error"`
	Summa       decimal.Decimal `json:"summa"`
	OperationID int64           `json:"operationId"`
}

func (a *CashdeskAdapter) post(url, sign string, body []byte) (*Result, error) {
	headers := http.Header{}
	headers.Set("Authorization", a.authHeader())
	headers.Set("sign", sign)
	headers.Set("Content-Type", "application/json")

	status, respBody, err := a.client.Post(url, headers, body)
	if err != nil {
		zap.L().Error("cashdesk call failed",
			zap.String("bookmaker", a.bookmaker), zap.Error(err))
		return &Result{Success: false, Message: err.Error()}, nil
	}
	return a.parse(status, respBody), nil
}

func (a *CashdeskAdapter) parse(status int, body []byte) *Result {
	var resp cashdeskResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &Result{Success: false, Message: fmt.Sprintf("casino responded with status %d", status)}
	}
	if status < 200 || status >= 300 || !resp.Success {
		message := resp.Message
		if message == "" {
			message = resp.Error
		}
		if message == "" {
			message = fmt.Sprintf("casino responded with status %d", status)
		}
		return &Result{Success: false, Message: message}
	}

	var data map[string]any
	_ = json.Unmarshal(body, &data)
	return &Result{
		Success:     true,
		Message:     resp.Message,
		Amount:      resp.Summa,
		OperationID: resp.OperationID,
		Data:        data,
	}
}

func (a *CashdeskAdapter) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*Result, error) {
	confirm := GenerateConfirm(accountID, a.cfg.Hash, a.lowercaseLogin)
	sign := CashdeskSign(accountID, "summa="+amount.String(), a.cfg, a.lowercaseLogin)

	url := fmt.Sprintf("%s/Deposit/%s/Add", cashdeskBaseURL, accountID)
	body := fmt.Sprintf(`{"cashdeskId":%d,"lng":"ru","summa":%s,"confirm":"%s"}`,
		a.cfg.CashdeskID, amount.String(), confirm)

	return a.post(url, sign, []byte(body))
}

// CheckWithdraw verifies the payout amount for a player-issued withdrawal
// code without moving money.
func (a *CashdeskAdapter) CheckWithdraw(ctx context.Context, accountID, code string) (*Result, error) {
	confirm := GenerateConfirm(accountID, a.cfg.Hash, a.lowercaseLogin)
	sign := CashdeskSign(accountID, "code="+code, a.cfg, a.lowercaseLogin)

	url := fmt.Sprintf("%s/Users/%s/CheckCode", cashdeskBaseURL, accountID)
	body := fmt.Sprintf(`{"cashdeskId":%d,"lng":"ru","code":"%s","confirm":"%s"}`,
		a.cfg.CashdeskID, code, confirm)

	return a.post(url, sign, []byte(body))
}

// Withdraw is two-phase for this family: the amount is checked by code first
// and the payout is a second, distinct round trip.
func (a *CashdeskAdapter) Withdraw(ctx context.Context, accountID, code string) (*Result, error) {
	check, err := a.CheckWithdraw(ctx, accountID, code)
	if err != nil {
		return nil, err
	}
	if !check.Success {
		return check, nil
	}

	confirm := GenerateConfirm(accountID, a.cfg.Hash, a.lowercaseLogin)
	sign := CashdeskSign(accountID, "code="+code, a.cfg, a.lowercaseLogin)

	url := fmt.Sprintf("%s/Deposit/%s/Payout", cashdeskBaseURL, accountID)
	body := fmt.Sprintf(`{"cashdeskId":%d,"lng":"ru","code":"%s","confirm":"%s"}`,
		a.cfg.CashdeskID, code, confirm)

	result, err := a.post(url, sign, []byte(body))
	if err != nil {
		return nil, err
	}
	if result.Success && result.Amount.IsZero() {
		result.Amount = check.Amount
	}
	return result, nil
}
