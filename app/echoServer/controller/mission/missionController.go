package mission

import (
	"log/slog"
	"net/http"

	"superwallet/model"
	missionsvc "superwallet/service/mission"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc missionsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/missions
func (h *Controller) List(c echo.Context) error {
	identifier := c.Get("identifier").(string)
	rows, err := h.Svc.List(c.Request().Context(), identifier)
	if err != nil {
		if missionsvc.Code(err) == missionsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		}
		h.Log.Error("mission list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/missions/:id/progress
func (h *Controller) UpdateProgress(c echo.Context) error {
	var req model.MissionProgressReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	identifier := c.Get("identifier").(string)

	m, err := h.Svc.UpdateProgress(c.Request().Context(), identifier, c.Param("id"), req.Progress)
	if err != nil {
		if missionsvc.Code(err) == missionsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "mission not found"})
		}
		h.Log.Error("mission progress", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": m})
}

// POST /v1/missions/:id/claim
func (h *Controller) ClaimReward(c echo.Context) error {
	identifier := c.Get("identifier").(string)

	m, err := h.Svc.ClaimReward(c.Request().Context(), identifier, c.Param("id"))
	if err != nil {
		h.Log.Error("mission claim", "err", err, "mission_id", c.Param("id"))
		switch missionsvc.Code(err) {
		case missionsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "mission not found"})
		case missionsvc.ErrNotCompleted:
			return c.JSON(http.StatusConflict, echo.Map{"message": "mission not completed"})
		case missionsvc.ErrAlreadyClaimed:
			return c.JSON(http.StatusConflict, echo.Map{"message": "reward already claimed"})
		case missionsvc.ErrRewardUnsupported:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "reward type not supported"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": m})
}
