package echoServer

import (
	"net/http"

	"superwallet/app/echoServer/controller/auth"
	"superwallet/app/echoServer/controller/bill"
	"superwallet/app/echoServer/controller/cart"
	"superwallet/app/echoServer/controller/installment"
	"superwallet/app/echoServer/controller/mission"
	"superwallet/app/echoServer/controller/notification"
	"superwallet/app/echoServer/controller/wallet"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth         *auth.Controller
	Wallet       *wallet.Controller
	Bill         *bill.Controller
	Installment  *installment.Controller
	Mission      *mission.Controller
	Notification *notification.Controller
	Cart         *cart.Controller
	JWTSecret    string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// identifier extraction from the verified sub claim
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			reqID := ctx.Response().Header().Get(echo.HeaderXRequestID)

			tokenObj := ctx.Get("user")
			if tokenObj == nil {
				ctx.Logger().Warnf("[AUTH] tokenObj nil req_id=%s", reqID)
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}

			var claims jwt.MapClaims
			switch v := tokenObj.(type) {
			case *jwt.Token:
				mc, ok := v.Claims.(jwt.MapClaims)
				if !ok {
					ctx.Logger().Warnf("[AUTH] failed to cast claims req_id=%s", reqID)
					return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
				}
				claims = mc
			case jwt.MapClaims:
				claims = v
			default:
				ctx.Logger().Warnf("[AUTH] unexpected token type req_id=%s", reqID)
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}

			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				ctx.Logger().Warnf("[AUTH] missing sub claim req_id=%s claims=%v", reqID, claims)
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}

			ctx.Set("identifier", sub)
			return next(ctx)
		}
	})

	// Session
	auth.POST("/profile/complete", c.Auth.CompleteProfile)
	auth.POST("/auth/logout", c.Auth.Logout)

	// Wallet
	auth.GET("/wallet", c.Wallet.Get)
	auth.PATCH("/wallet", c.Wallet.Patch)
	auth.GET("/wallet/transactions", c.Wallet.Transactions)
	auth.POST("/wallet/points", c.Wallet.AddPoints)

	// Bills
	auth.GET("/bills", c.Bill.List)
	auth.POST("/bills/:id/pay", c.Bill.Pay)

	// Installments
	auth.GET("/installments", c.Installment.List)
	auth.POST("/installments/:id/pay", c.Installment.Pay)

	// Missions
	auth.GET("/missions", c.Mission.List)
	auth.POST("/missions/:id/progress", c.Mission.UpdateProgress)
	auth.POST("/missions/:id/claim", c.Mission.ClaimReward)

	// Notifications
	auth.GET("/notifications", c.Notification.List)
	auth.POST("/notifications/:id/read", c.Notification.MarkRead)
	auth.POST("/notifications/read-all", c.Notification.MarkAllRead)

	// Cart
	auth.GET("/cart", c.Cart.List)
	auth.POST("/cart/items", c.Cart.Add)
	auth.PUT("/cart/items/:id", c.Cart.SetQuantity)
	auth.DELETE("/cart/items/:id", c.Cart.Remove)
	auth.DELETE("/cart", c.Cart.Clear)
}
