package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	escrowDomain "loan-escrow-service/internal/domain/escrow"
	"loan-escrow-service/internal/domain/ledger"
	accountUC "loan-escrow-service/internal/usecase/account"
	escrowUC "loan-escrow-service/internal/usecase/escrow"
)

// CallerHeader carries the host-authenticated identity of the caller.
const CallerHeader = "Ax-Caller-Id"

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// callerID pulls and validates the Ax-Caller-Id header; empty string means
// the request was already answered with a 400.
func callerID(c echo.Context) (string, bool) {
	v := strings.TrimSpace(c.Request().Header.Get(CallerHeader))
	if !reHex32.MatchString(v) {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + CallerHeader})
		return "", false
	}
	return v, true
}

// statusFor maps domain and usecase errors to HTTP statuses. Unknown
// errors fall through to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, escrowDomain.ErrNotFound),
		errors.Is(err, ledger.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, escrowDomain.ErrOnlyLender),
		errors.Is(err, escrowDomain.ErrOnlyBorrower):
		return http.StatusForbidden
	case errors.Is(err, escrowDomain.ErrAlreadyFunded),
		errors.Is(err, escrowDomain.ErrNotFunded),
		errors.Is(err, escrowDomain.ErrAlreadyRepaid),
		errors.Is(err, escrowDomain.ErrAlreadyWithdrawn),
		errors.Is(err, escrowDomain.ErrTransferFailed),
		errors.Is(err, ledger.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, escrowDomain.ErrWrongAmount),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, escrowUC.ErrInvalidBorrowerID),
		errors.Is(err, escrowUC.ErrInvalidLenderID),
		errors.Is(err, escrowUC.ErrZeroAmount),
		errors.Is(err, escrowUC.ErrSelfLoan),
		errors.Is(err, accountUC.ErrInvalidAccountID):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
