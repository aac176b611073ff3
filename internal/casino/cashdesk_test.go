package casino

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	url     string
	headers http.Header
	body    []byte
}

type fakeHTTPClient struct {
	status int
	body   []byte
	err    error
	calls  []recordedCall
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, f.err
}

func (f *fakeHTTPClient) Post(url string, headers http.Header, body []byte) (int, []byte, error) {
	f.calls = append(f.calls, recordedCall{url: url, headers: headers, body: body})
	return f.status, f.body, f.err
}

var testCashdeskConfig = &CashdeskConfig{
	Hash:        "abc",
	CashierPass: "pw",
	Login:       "log",
	CashdeskID:  123,
}

func TestGenerateConfirm(t *testing.T) {
	assert.Equal(t, "abbb07d2518bb0e48f59e5b92e4b0dc6", GenerateConfirm("999", "abc", false))
	// Melbet lowercases the account id before hashing.
	assert.Equal(t, "c32ad55774dd98fc0700bc1b6602eb33", GenerateConfirm("AbC999", "abc", true))
}

// Regression vector for the two-stage sign: SHA256 and MD5 intermediates are
// concatenated as hex strings before the final SHA256.
func TestCashdeskSign(t *testing.T) {
	sign := CashdeskSign("999", "summa=100", testCashdeskConfig, false)
	assert.Equal(t, "6e1fe106f9179af6eaf1e5b69bae632253041912dc12138f7430c47ccda9eacb", sign)
}

func TestCashdeskDeposit(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		respBody        string
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:            "Vendor accepts",
			status:          200,
			respBody:        `{"success":true,"message":"ok"}`,
			expectedSuccess: true,
			expectedMessage: "ok",
		},
		{
			name:            "Vendor reports failure",
			status:          200,
			respBody:        `{"success":false,"message":"player not found"}`,
			expectedSuccess: false,
			expectedMessage: "player not found",
		},
		{
			name:            "Non-2xx without parsable body",
			status:          502,
			respBody:        `bad gateway`,
			expectedSuccess: false,
			expectedMessage: "casino responded with status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeHTTPClient{status: tt.status, body: []byte(tt.respBody)}
			adapter := NewCashdesk(Bookmaker1xBet, testCashdeskConfig, client, false)

			result, err := adapter.Deposit(context.Background(), "999", decimal.NewFromInt(100))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSuccess, result.Success)
			assert.Equal(t, tt.expectedMessage, result.Message)

			require.Len(t, client.calls, 1)
			call := client.calls[0]
			assert.Equal(t, "https://partners.servcul.com/CashdeskBotAPI/Deposit/999/Add", call.url)
			assert.Equal(t, "Basic bG9nOnB3", call.headers.Get("Authorization"))
			assert.Equal(t, "6e1fe106f9179af6eaf1e5b69bae632253041912dc12138f7430c47ccda9eacb", call.headers.Get("sign"))
			assert.JSONEq(t, `{"cashdeskId":123,"lng":"ru","summa":100,"confirm":"abbb07d2518bb0e48f59e5b92e4b0dc6"}`, string(call.body))
		})
	}
}

// Withdraw for this family is two distinct round trips: a check-by-code call
// and only then the payout.
func TestCashdeskWithdrawTwoPhase(t *testing.T) {
	client := &fakeHTTPClient{status: 200, body: []byte(`{"success":true,"summa":"250.00"}`)}
	adapter := NewCashdesk(Bookmaker1xBet, testCashdeskConfig, client, false)

	result, err := adapter.Withdraw(context.Background(), "999", "WDCODE1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, decimal.RequireFromString("250.00").Equal(result.Amount))

	require.Len(t, client.calls, 2)
	assert.Contains(t, client.calls[0].url, "/Users/999/CheckCode")
	assert.Contains(t, client.calls[1].url, "/Deposit/999/Payout")
}

// The pre-check resolves the payout amount and the vendor transaction id
// without moving money.
func TestCashdeskCheckWithdraw(t *testing.T) {
	client := &fakeHTTPClient{status: 200, body: []byte(`{"success":true,"summa":"250.00","operationId":654321}`)}
	adapter := NewCashdesk(Bookmaker1xBet, testCashdeskConfig, client, false)

	result, err := adapter.CheckWithdraw(context.Background(), "999", "WDCODE1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, decimal.RequireFromString("250.00").Equal(result.Amount))
	assert.Equal(t, int64(654321), result.OperationID)

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0].url, "/Users/999/CheckCode")
}

func TestCashdeskWithdrawCheckFailureStopsPayout(t *testing.T) {
	client := &fakeHTTPClient{status: 200, body: []byte(`{"success":false,"message":"invalid code"}`)}
	adapter := NewCashdesk(Bookmaker1xBet, testCashdeskConfig, client, false)

	result, err := adapter.Withdraw(context.Background(), "999", "BADCODE")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "invalid code", result.Message)
	assert.Len(t, client.calls, 1)
}

func TestCashdeskConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CashdeskConfig
		wantErr string
	}{
		{name: "Missing hash", cfg: CashdeskConfig{CashierPass: "pw", Login: "log", CashdeskID: 1}, wantErr: "hash"},
		{name: "Missing cashierpass", cfg: CashdeskConfig{Hash: "h", Login: "log", CashdeskID: 1}, wantErr: "cashierpass"},
		{name: "Missing login", cfg: CashdeskConfig{Hash: "h", CashierPass: "pw", CashdeskID: 1}, wantErr: "login"},
		{name: "Zero cashdeskid", cfg: CashdeskConfig{Hash: "h", CashierPass: "pw", Login: "log"}, wantErr: "cashdeskid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(Bookmaker1xBet)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	full := CashdeskConfig{Hash: "h", CashierPass: "pw", Login: "log", CashdeskID: 1}
	assert.NoError(t, full.Validate(Bookmaker1xBet))
}
