package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-escrow-service/internal/adapter/metrics"
	escrowDomain "loan-escrow-service/internal/domain/escrow"
	escrowUC "loan-escrow-service/internal/usecase/escrow"
)

type EscrowHandler struct {
	uc *escrowUC.Usecase
	m  *metrics.Registry
}

func NewEscrowHandler(uc *escrowUC.Usecase, m *metrics.Registry) *EscrowHandler {
	return &EscrowHandler{uc: uc, m: m}
}

func (h *EscrowHandler) observe(operation string, err error) {
	if h.m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		if errors.Is(err, escrowDomain.ErrTransferFailed) {
			h.m.IncTransferFailed()
		}
	}
	h.m.IncOperation(operation, status)
}

type createEscrowReq struct {
	BorrowerID string `json:"borrower_id" validate:"required,hex32"`
	Amount     uint64 `json:"amount"      validate:"required,gte=1"`
}

type attachValueReq struct {
	AttachedValue uint64 `json:"attached_value" validate:"required,gte=1"`
}

func (h *EscrowHandler) CreateEscrow(c echo.Context) error {
	lender, ok := callerID(c)
	if !ok {
		return nil
	}
	var req createEscrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), escrowUC.CreateEscrowInput{
		LenderID:   lender,
		BorrowerID: req.BorrowerID,
		Amount:     req.Amount,
	})
	h.observe("create", err)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *EscrowHandler) FundEscrow(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return nil
	}
	var req attachValueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Fund(c.Request().Context(), c.Param("escrow_id"), caller, req.AttachedValue)
	h.observe("fund", err)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EscrowHandler) RepayEscrow(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return nil
	}
	var req attachValueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Repay(c.Request().Context(), c.Param("escrow_id"), caller, req.AttachedValue)
	h.observe("repay", err)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EscrowHandler) WithdrawEscrow(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.Withdraw(c.Request().Context(), c.Param("escrow_id"), caller)
	h.observe("withdraw", err)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EscrowHandler) GetEscrow(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("escrow_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EscrowHandler) ListEvents(c echo.Context) error {
	evs, err := h.uc.Events(c.Request().Context(), c.Param("escrow_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, evs)
}
