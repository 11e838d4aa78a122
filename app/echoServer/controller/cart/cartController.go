package cart

import (
	"log/slog"
	"net/http"

	"superwallet/model"
	cartsvc "superwallet/service/cart"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc cartsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/cart
func (h *Controller) List(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	rows, err := h.Svc.List(c.Request().Context(), identifier)
	if err != nil {
		if cartsvc.Code(err) == cartsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("cart list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/cart/items
func (h *Controller) Add(c echo.Context) error {
	var req model.CartAddReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	identifier := c.Get("identifier").(string)

	if err := h.Svc.Add(c.Request().Context(), identifier, req); err != nil {
		switch cartsvc.Code(err) {
		case cartsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		case cartsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		default:
			h.Log.Error("cart add", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "added"})
}

// PUT /v1/cart/items/:id
func (h *Controller) SetQuantity(c echo.Context) error {
	var req model.CartQuantityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	identifier := c.Get("identifier").(string)

	if err := h.Svc.SetQuantity(c.Request().Context(), identifier, c.Param("id"), req.Quantity); err != nil {
		switch cartsvc.Code(err) {
		case cartsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		case cartsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		default:
			h.Log.Error("cart quantity", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
}

// DELETE /v1/cart/items/:id
func (h *Controller) Remove(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	if err := h.Svc.Remove(c.Request().Context(), identifier, c.Param("id")); err != nil {
		if cartsvc.Code(err) == cartsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		}
		h.Log.Error("cart remove", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "removed"})
}

// DELETE /v1/cart
func (h *Controller) Clear(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	if err := h.Svc.Clear(c.Request().Context(), identifier); err != nil {
		if cartsvc.Code(err) == cartsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("cart clear", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cleared"})
}
