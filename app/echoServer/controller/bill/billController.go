package bill

import (
	"log/slog"
	"net/http"

	billsvc "superwallet/service/bill"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc billsvc.Service
	Log *slog.Logger
}

// GET /v1/bills
func (h *Controller) List(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	rows, err := h.Svc.List(c.Request().Context(), identifier)
	if err != nil {
		if billsvc.Code(err) == billsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("bill list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/bills/:id/pay
func (h *Controller) Pay(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	identifier := c.Get("identifier").(string)

	paid, err := h.Svc.Pay(c.Request().Context(), identifier, id)
	if err != nil {
		h.Log.Error("bill pay", "err", err, "bill_id", id)
		switch billsvc.Code(err) {
		case billsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "bill not found"})
		case billsvc.ErrAlreadyPaid:
			return c.JSON(http.StatusConflict, echo.Map{"message": "bill already paid"})
		case billsvc.ErrInsufficientBalance:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "insufficient balance"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": paid})
}
