package wallet

import (
	"log/slog"
	"net/http"

	"superwallet/model"
	walletsvc "superwallet/service/wallet"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc walletsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/wallet
// @Summary Current balances
// @Success 200 {object} map[string]any
func (h *Controller) Get(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	w, err := h.Svc.Wallet(c.Request().Context(), identifier)
	if err != nil {
		if walletsvc.Code(err) == walletsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("wallet get", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": w})
}

// PATCH /v1/wallet
// @Summary Shallow-merge a wallet patch
// @Success 200 {object} map[string]any
// @Failure 400,404
func (h *Controller) Patch(c echo.Context) error {
	var req model.WalletPatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	identifier := c.Get("identifier").(string)

	w, err := h.Svc.Patch(c.Request().Context(), identifier, req)
	if err != nil {
		switch walletsvc.Code(err) {
		case walletsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "balance cannot go negative"})
		case walletsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		default:
			h.Log.Error("wallet patch", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": w})
}

// GET /v1/wallet/transactions
func (h *Controller) Transactions(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	rows, err := h.Svc.Ledger(c.Request().Context(), identifier)
	if err != nil {
		if walletsvc.Code(err) == walletsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("ledger", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/wallet/points
func (h *Controller) AddPoints(c echo.Context) error {
	var req model.AddPointsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  map[string]string{"points": "required, gt 0"},
		})
	}
	identifier := c.Get("identifier").(string)

	if err := h.Svc.AddPoints(c.Request().Context(), identifier, req.Points); err != nil {
		switch walletsvc.Code(err) {
		case walletsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		case walletsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		default:
			h.Log.Error("add points", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "points added"})
}
