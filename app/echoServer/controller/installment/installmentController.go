package installment

import (
	"log/slog"
	"net/http"

	installmentsvc "superwallet/service/installment"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc installmentsvc.Service
	Log *slog.Logger
}

// GET /v1/installments
func (h *Controller) List(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	rows, err := h.Svc.List(c.Request().Context(), identifier)
	if err != nil {
		if installmentsvc.Code(err) == installmentsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("installment list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/installments/:id/pay
func (h *Controller) Pay(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	identifier := c.Get("identifier").(string)

	ins, err := h.Svc.Pay(c.Request().Context(), identifier, id)
	if err != nil {
		h.Log.Error("installment pay", "err", err, "installment_id", id)
		switch installmentsvc.Code(err) {
		case installmentsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "installment not found"})
		case installmentsvc.ErrCompleted:
			return c.JSON(http.StatusConflict, echo.Map{"message": "installment already completed"})
		case installmentsvc.ErrInsufficientBalance:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "insufficient balance"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": ins})
}
