package auth

import (
	"log/slog"
	"net/http"

	"superwallet/app/echoServer/jwtx"
	"superwallet/model"
	authsvc "superwallet/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Register a new session
// @Summary      Register
// @Description  Create a fresh zero-balance session for an unseen identifier
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "identifier already registered"
// @Router       /v1/auth/register [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	sess, token, err := ct.Svc.Register(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrTaken:
			return echo.NewHTTPError(http.StatusConflict, "identifier already registered")
		case authsvc.ErrBadInput:
			return echo.NewHTTPError(http.StatusBadRequest, "bad input")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("register failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "register failed")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "registered",
		"token":   token,
		"user":    sess.User,
		"wallet":  sess.Wallet,
	})
}

// Login
// @Summary      Login
// @Description  Rehydrate a known session or fabricate a new one; returns JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /v1/auth/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	sess, token, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrBadInput:
			return echo.NewHTTPError(http.StatusBadRequest, "bad input")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":             "login success",
		"token":               token,
		"user":                sess.User,
		"wallet":              sess.Wallet,
		"is_new_user":         sess.IsNewUser,
		"is_profile_complete": sess.IsProfileComplete,
	})
}

// CompleteProfile
// @Summary      Complete profile (one-time)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CompleteProfileReq  true  "Profile payload"
// @Success      200  {object}  map[string]any
// @Failure      400,401,409  {object}  map[string]any
// @Router       /v1/profile/complete [post]
func (ct *Controller) CompleteProfile(c echo.Context) error {
	var req model.CompleteProfileReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}
	identifier, err := jwtx.IdentifierFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	sess, err := ct.Svc.CompleteProfile(c.Request().Context(), identifier, req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrProfileComplete:
			return echo.NewHTTPError(http.StatusConflict, "profile already complete")
		case authsvc.ErrBadInput:
			return echo.NewHTTPError(http.StatusBadRequest, "bad input")
		case authsvc.ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		default:
			ct.Log.Error("complete profile failed", "err", err, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "profile completed",
		"user":    sess.User,
		"wallet":  sess.Wallet,
	})
}

// Logout
// @Summary      Logout
// @Tags         auth
// @Success      200  {object}  map[string]any
// @Router       /v1/auth/logout [post]
func (ct *Controller) Logout(c echo.Context) error {
	identifier, err := jwtx.IdentifierFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	if err := ct.Svc.Logout(c.Request().Context(), identifier); err != nil {
		if authsvc.Code(err) == authsvc.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		ct.Log.Error("logout failed", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
