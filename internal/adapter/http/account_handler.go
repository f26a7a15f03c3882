package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	accountUC "loan-escrow-service/internal/usecase/account"
)

type AccountHandler struct{ uc *accountUC.Usecase }

func NewAccountHandler(uc *accountUC.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

type openAccountReq struct {
	AccountID string `json:"account_id" validate:"omitempty,hex32"`
	Balance   uint64 `json:"balance"`
}

func (h *AccountHandler) OpenAccount(c echo.Context) error {
	var req openAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Open(c.Request().Context(), accountUC.OpenAccountInput{
		AccountID: req.AccountID,
		Balance:   req.Balance,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("account_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
