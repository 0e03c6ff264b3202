package transaction_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/payflow/pkg/config"
	"github.com/amirasaad/payflow/pkg/domain"
	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/processor"
	"github.com/amirasaad/payflow/pkg/repository/mocks"
	paymentsvc "github.com/amirasaad/payflow/pkg/service/payment"
	"github.com/amirasaad/payflow/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

// instantProcessor settles immediately so handler tests do not wait.
type instantProcessor struct{}

func (instantProcessor) Process(ctx context.Context, tx *dto.TransactionRead) (processor.Result, error) {
	return processor.Result{Status: processor.Settled, CompletedAt: time.Now().UTC()}, nil
}

func newTestApp(uow *mocks.UnitOfWork) *fiber.App {
	app := fiber.New()
	svc := paymentsvc.New(uow, instantProcessor{}, slog.Default())
	cfg := &config.App{Jwt: config.Jwt{Secret: testSecret}}
	transaction.Routes(app, svc, cfg)
	return app
}

func bearerToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, token string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestWithdraw_Settles(t *testing.T) {
	t.Parallel()
	uow := mocks.NewUnitOfWork()
	accountID := uuid.New()

	uow.Accounts.On("Get", mock.Anything, accountID).Return(&dto.AccountRead{
		ID: accountID, Balance: 10_000, Currency: "USD", CreatedAt: time.Now().UTC(),
	}, nil)
	uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
	uow.Accounts.On("DebitIf", mock.Anything, accountID, int64(2500)).Return(nil)
	uow.Transactions.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	app := newTestApp(uow)
	resp := postJSON(t, app, "/transaction/withdraw", fiber.Map{
		"accountId": accountID.String(),
		"amount":    25.0,
	}, bearerToken(t, uuid.NewString()))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Transaction successful", body["message"])
	data := body["data"].(map[string]any)
	tx := data["transaction"].(map[string]any)
	assert.Equal(t, "success", tx["status"])
	assert.Equal(t, 25.0, tx["amount"])
	uow.AssertExpectations(t)
}

func TestSend_Settles(t *testing.T) {
	t.Parallel()
	uow := mocks.NewUnitOfWork()
	accountID := uuid.New()

	uow.Accounts.On("Get", mock.Anything, accountID).Return(&dto.AccountRead{
		ID: accountID, Balance: 50_000, Currency: "USD", CreatedAt: time.Now().UTC(),
	}, nil)
	uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
	uow.Accounts.On("DebitIf", mock.Anything, accountID, int64(9_999)).Return(nil)
	uow.Transactions.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	app := newTestApp(uow)
	resp := postJSON(t, app, "/transaction/send", fiber.Map{
		"accountId":        accountID.String(),
		"amount":           99.99,
		"receiver_account": "acct-receiver-7",
	}, bearerToken(t, uuid.NewString()))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	tx := body["data"].(map[string]any)["transaction"].(map[string]any)
	assert.Equal(t, "acct-receiver-7", tx["receiver_account"])
	uow.AssertExpectations(t)
}

func TestWithdraw_MissingToken(t *testing.T) {
	t.Parallel()
	app := newTestApp(mocks.NewUnitOfWork())
	resp := postJSON(t, app, "/transaction/withdraw", fiber.Map{
		"accountId": uuid.NewString(),
		"amount":    25.0,
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSend_MissingToken(t *testing.T) {
	t.Parallel()
	app := newTestApp(mocks.NewUnitOfWork())
	resp := postJSON(t, app, "/transaction/send", fiber.Map{
		"accountId":        uuid.NewString(),
		"amount":           25.0,
		"receiver_account": "acct-receiver-7",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWithdraw_InvalidToken(t *testing.T) {
	t.Parallel()
	app := newTestApp(mocks.NewUnitOfWork())
	resp := postJSON(t, app, "/transaction/withdraw", fiber.Map{
		"accountId": uuid.NewString(),
		"amount":    25.0,
	}, "not.a.token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWithdraw_ValidationFailure(t *testing.T) {
	t.Parallel()
	app := newTestApp(mocks.NewUnitOfWork())
	resp := postJSON(t, app, "/transaction/withdraw", fiber.Map{
		"accountId": uuid.NewString(),
		"amount":    -5.0,
	}, bearerToken(t, uuid.NewString()))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSend_MissingReceiver(t *testing.T) {
	t.Parallel()
	app := newTestApp(mocks.NewUnitOfWork())
	resp := postJSON(t, app, "/transaction/send", fiber.Map{
		"accountId": uuid.NewString(),
		"amount":    25.0,
	}, bearerToken(t, uuid.NewString()))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWithdraw_AccountNotFound(t *testing.T) {
	t.Parallel()
	uow := mocks.NewUnitOfWork()
	accountID := uuid.New()
	uow.Accounts.On("Get", mock.Anything, accountID).Return(nil, domain.ErrAccountNotFound)

	app := newTestApp(uow)
	resp := postJSON(t, app, "/transaction/withdraw", fiber.Map{
		"accountId": accountID.String(),
		"amount":    25.0,
	}, bearerToken(t, uuid.NewString()))

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Account not found", body["title"])
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	t.Parallel()
	uow := mocks.NewUnitOfWork()
	accountID := uuid.New()
	uow.Accounts.On("Get", mock.Anything, accountID).Return(&dto.AccountRead{
		ID: accountID, Balance: 100, Currency: "USD", CreatedAt: time.Now().UTC(),
	}, nil)

	app := newTestApp(uow)
	resp := postJSON(t, app, "/transaction/withdraw", fiber.Map{
		"accountId": accountID.String(),
		"amount":    25.0,
	}, bearerToken(t, uuid.NewString()))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Insufficient balance", body["title"])
}
