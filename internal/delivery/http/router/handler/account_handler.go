// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUc usecase.AccountUsecase
	authUc    usecase.AuthUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accountUc usecase.AccountUsecase, authUc usecase.AuthUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUc: accountUc,
		authUc:    authUc,
		logger:    logger,
	}
}

type createAccountRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// accountView is the transport representation of an account.
// The credential digest never appears here.
type accountView struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	CreationDate time.Time `json:"creationDate"`
}

// loginView is the reduced representation returned after authentication.
type loginView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func toAccountView(account *entity.Account) accountView {
	return accountView{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		CreationDate: account.CreatedAt,
	}
}

// CreateAccount handles the account registration request.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	account, err := h.accountUc.Create(c.Request().Context(), &usecase.CreateAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(account), "Account created successfully")
}

// ListAccounts handles the account listing request.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountUc.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toAccountView(account))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count":    len(views),
		"accounts": views,
	}, "")
}

// GetAccount handles the lookup-by-id request.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	account, err := h.accountUc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "")
}

// DeleteAccount handles the delete-by-id request.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	if err := h.accountUc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// Login handles the authentication request. A missing user and a wrong
// password produce the same 401 body, so the response shape never reveals
// whether the username exists.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if req.Username == "" {
		return response.BadRequest(c, "EMPTY_FIELD", "username cannot be empty")
	}
	if req.Password == "" {
		return response.BadRequest(c, "EMPTY_FIELD", "password cannot be empty")
	}

	ok, err := h.authUc.Authenticate(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid username or password")
	}

	account, err := h.accountUc.GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return errors.WithStack(err)
	}
	if account == nil {
		// Account removed between the check and the lookup.
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid username or password")
	}

	return response.Success(c, http.StatusOK, loginView{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
	}, "Login successful")
}
