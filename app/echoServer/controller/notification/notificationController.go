package notification

import (
	"log/slog"
	"net/http"

	notificationsvc "superwallet/service/notification"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc notificationsvc.Service
	Log *slog.Logger
}

// GET /v1/notifications
func (h *Controller) List(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	rows, err := h.Svc.List(c.Request().Context(), identifier)
	if err != nil {
		if notificationsvc.Code(err) == notificationsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("notification list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/notifications/:id/read
func (h *Controller) MarkRead(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	if err := h.Svc.MarkRead(c.Request().Context(), identifier, c.Param("id")); err != nil {
		if notificationsvc.Code(err) == notificationsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "notification not found"})
		}
		h.Log.Error("notification read", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "marked read"})
}

// POST /v1/notifications/read-all
func (h *Controller) MarkAllRead(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	if err := h.Svc.MarkAllRead(c.Request().Context(), identifier); err != nil {
		if notificationsvc.Code(err) == notificationsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("notification read-all", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "all marked read"})
}
