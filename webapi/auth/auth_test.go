package auth_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/provider"
	"github.com/amirasaad/payflow/pkg/provider/mockidentity"
	identitysvc "github.com/amirasaad/payflow/pkg/service/identity"
	"github.com/amirasaad/payflow/webapi/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(mi *mockidentity.MockIdentity) *fiber.App {
	app := fiber.New()
	auth.Routes(app, identitysvc.New(mi, slog.Default()))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
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

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	mi := &mockidentity.MockIdentity{}
	mi.On("SignUp", mock.Anything, "dev@example.com", "s3cret!").Return(&dto.UserRead{
		ID:        uuid.New(),
		Email:     "dev@example.com",
		CreatedAt: time.Now().UTC(),
	}, nil)

	app := newTestApp(mi)
	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"email":    "dev@example.com",
		"password": "s3cret!",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "User registered", body["message"])
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "dev@example.com", user["email"])
	mi.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	mi := &mockidentity.MockIdentity{}
	mi.On("SignUp", mock.Anything, "dev@example.com", "s3cret!").
		Return(nil, &provider.IdentityError{Message: "User already registered"})

	app := newTestApp(mi)
	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"email":    "dev@example.com",
		"password": "s3cret!",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "User registration failed", body["title"])
	assert.Equal(t, "User already registered", body["detail"])
}

func TestRegister_InvalidEmail(t *testing.T) {
	t.Parallel()
	mi := &mockidentity.MockIdentity{}
	app := newTestApp(mi)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"email":    "not-an-email",
		"password": "s3cret!",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	mi.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	t.Parallel()
	mi := &mockidentity.MockIdentity{}
	app := newTestApp(mi)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"email":    "dev@example.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	mi.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	mi := &mockidentity.MockIdentity{}
	mi.On("SignIn", mock.Anything, "dev@example.com", "s3cret!").Return("a.jwt.token", nil)

	app := newTestApp(mi)
	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "dev@example.com",
		"password": "s3cret!",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Success login", body["message"])
	assert.Equal(t, "a.jwt.token", body["data"].(map[string]any)["token"])
	mi.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()
	mi := &mockidentity.MockIdentity{}
	mi.On("SignIn", mock.Anything, "dev@example.com", "wrong-pass").
		Return("", &provider.IdentityError{Message: "Invalid login credentials"})

	app := newTestApp(mi)
	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "dev@example.com",
		"password": "wrong-pass",
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid email or password", body["title"])
}
