// Package main superwallet API.
//
// @title           superwallet API
// @version         1.0
// @description     super-app wallet ledger (balances, bills, installments, missions).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"superwallet/app/echoServer"
	authctrl "superwallet/app/echoServer/controller/auth"
	billctrl "superwallet/app/echoServer/controller/bill"
	cartctrl "superwallet/app/echoServer/controller/cart"
	installmentctrl "superwallet/app/echoServer/controller/installment"
	missionctrl "superwallet/app/echoServer/controller/mission"
	notificationctrl "superwallet/app/echoServer/controller/notification"
	walletctrl "superwallet/app/echoServer/controller/wallet"
	"superwallet/app/echoServer/validation"
	"superwallet/config"
	snapshotrepo "superwallet/repository/snapshot"
	authsvc "superwallet/service/auth"
	billsvc "superwallet/service/bill"
	cartsvc "superwallet/service/cart"
	installmentsvc "superwallet/service/installment"
	missionsvc "superwallet/service/mission"
	notificationsvc "superwallet/service/notification"
	walletsvc "superwallet/service/wallet"
	"superwallet/store"
	"superwallet/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// snapshot repo: postgres when DATABASE_URL is set, JSON file otherwise
	var repo snapshotrepo.Repo
	var err error
	if cfg.DatabaseURL != "" {
		var db *database.DB
		db, err = database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		repo, err = snapshotrepo.NewPostgres(ctx, db)
	} else {
		repo, err = snapshotrepo.NewFile(cfg.SnapshotPath)
	}
	if err != nil {
		log.Error("snapshot repo init failed", "err", err)
		os.Exit(1)
	}

	// state store
	st, err := store.Open(ctx, repo)
	if err != nil {
		log.Error("state rehydration failed", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	// services
	as := authsvc.New(st, cfg.JWTSecret)
	ws := walletsvc.New(st)
	bs := billsvc.New(st)
	is := installmentsvc.New(st)
	ms := missionsvc.New(st)
	ns := notificationsvc.New(st)
	cs := cartsvc.New(st)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	walletC := &walletctrl.Controller{Svc: ws, V: v, Log: log}
	billC := &billctrl.Controller{Svc: bs, Log: log}
	installmentC := &installmentctrl.Controller{Svc: is, Log: log}
	missionC := &missionctrl.Controller{Svc: ms, V: v, Log: log}
	notificationC := &notificationctrl.Controller{Svc: ns, Log: log}
	cartC := &cartctrl.Controller{Svc: cs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":   "ok",
			"revision": st.Revision(),
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:         authC,
		Wallet:       walletC,
		Bill:         billC,
		Installment:  installmentC,
		Mission:      missionC,
		Notification: notificationC,
		Cart:         cartC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "port", port, "snapshot", cfg.SnapshotPath)

	e.Logger.Fatal(e.Start(":" + port))
}
