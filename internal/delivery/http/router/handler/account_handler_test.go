package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	mockUc "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountHandlerFixtures struct {
	handler   *AccountHandler
	accountUc *mockUc.MockAccountUsecase
	authUc    *mockUc.MockAuthUsecase
}

func createTestAccountHandler(t *testing.T) accountHandlerFixtures {
	accountUc := mockUc.NewMockAccountUsecase(t)
	authUc := mockUc.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return accountHandlerFixtures{
		handler:   NewAccountHandler(accountUc, authUc, logger),
		accountUc: accountUc,
		authUc:    authUc,
	}
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_CreateAccount_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	accountID := uuid.New()
	created := &entity.Account{
		ID:        accountID,
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}

	fx.accountUc.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateAccountInput) bool {
			return in.Username == "alice" && in.Email == "alice@example.com" && in.Password == "Abcdef1!"
		})).
		Return(created, nil)

	c, rec := newJSONContext(http.MethodPost, "/users",
		`{"username":"alice","email":"alice@example.com","password":"Abcdef1!"}`)

	err := fx.handler.CreateAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), accountID.String())
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), "creationDate")
	assert.NotContains(t, rec.Body.String(), "password")
}

// Usecase errors propagate to the centralized error handler untouched.
func TestAccountHandler_CreateAccount_Conflict(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accountUc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateAccountInput")).
		Return(nil, domainerrors.ConflictError("username"))

	c, _ := newJSONContext(http.MethodPost, "/users",
		`{"username":"alice","email":"alice@example.com","password":"Abcdef1!"}`)

	err := fx.handler.CreateAccount(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	fx := createTestAccountHandler(t)

	accounts := []*entity.Account{
		{ID: uuid.New(), Username: "alice", Email: "alice@example.com"},
		{ID: uuid.New(), Username: "bob", Email: "bob@example.com"},
	}

	fx.accountUc.EXPECT().GetAll(mock.Anything).Return(accounts, nil)

	c, rec := newJSONContext(http.MethodGet, "/users", "")

	err := fx.handler.ListAccounts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
}

func TestAccountHandler_ListAccounts_Empty(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.accountUc.EXPECT().GetAll(mock.Anything).Return([]*entity.Account{}, nil)

	c, rec := newJSONContext(http.MethodGet, "/users", "")

	err := fx.handler.ListAccounts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
	assert.Contains(t, rec.Body.String(), `"accounts":[]`)
}

func TestAccountHandler_GetAccount_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	accountID := uuid.New()
	stored := &entity.Account{ID: accountID, Username: "alice", Email: "alice@example.com"}

	fx.accountUc.EXPECT().GetByID(mock.Anything, accountID).Return(stored, nil)

	c, rec := newJSONContext(http.MethodGet, "/users/"+accountID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := fx.handler.GetAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), accountID.String())
}

func TestAccountHandler_GetAccount_MalformedID(t *testing.T) {
	fx := createTestAccountHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/users/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := fx.handler.GetAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountHandler(t)

	accountID := uuid.New()

	fx.accountUc.EXPECT().
		GetByID(mock.Anything, accountID).
		Return(nil, domainerrors.AccountNotFoundError(accountID.String()))

	c, _ := newJSONContext(http.MethodGet, "/users/"+accountID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := fx.handler.GetAccount(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountHandler_DeleteAccount_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	accountID := uuid.New()

	fx.accountUc.EXPECT().Delete(mock.Anything, accountID).Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/users/"+accountID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := fx.handler.DeleteAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account deleted successfully")
}

func TestAccountHandler_DeleteAccount_MalformedID(t *testing.T) {
	fx := createTestAccountHandler(t)

	c, rec := newJSONContext(http.MethodDelete, "/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := fx.handler.DeleteAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_Login_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	stored := &entity.Account{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	fx.authUc.EXPECT().
		Authenticate(mock.Anything, mock.MatchedBy(func(in *usecase.LoginInput) bool {
			return in.Username == "alice" && in.Password == "Abcdef1!"
		})).
		Return(true, nil)
	fx.accountUc.EXPECT().GetByUsername(mock.Anything, "alice").Return(stored, nil)

	c, rec := newJSONContext(http.MethodPost, "/users/auth/login",
		`{"username":"alice","password":"Abcdef1!"}`)

	err := fx.handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")
	assert.NotContains(t, rec.Body.String(), "creationDate")
}

// Wrong password and unknown username answer with the same body.
func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.authUc.EXPECT().
		Authenticate(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(false, nil)

	c, rec := newJSONContext(http.MethodPost, "/users/auth/login",
		`{"username":"alice","password":"wrong"}`)

	err := fx.handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func TestAccountHandler_Login_EmptyFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty username", body: `{"username":"","password":"Abcdef1!"}`},
		{name: "empty password", body: `{"username":"alice","password":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountHandler(t)

			c, rec := newJSONContext(http.MethodPost, "/users/auth/login", tt.body)

			err := fx.handler.Login(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "EMPTY_FIELD")
		})
	}
}

// The account can disappear between the credential check and the profile
// lookup; the response still reads as a failed login.
func TestAccountHandler_Login_AccountGoneAfterCheck(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.authUc.EXPECT().
		Authenticate(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(true, nil)
	fx.accountUc.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, nil)

	c, rec := newJSONContext(http.MethodPost, "/users/auth/login",
		`{"username":"alice","password":"Abcdef1!"}`)

	err := fx.handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}
