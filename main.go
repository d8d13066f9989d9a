// Package main library management API.
//
// @title           Library Management API
// @version         1.0
// @description     Library catalog service (books, users, CRUD event stream).
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

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"librarymgmt/app/echoServer"
	authctrl "librarymgmt/app/echoServer/controller/auth"
	bookctrl "librarymgmt/app/echoServer/controller/book"
	eventsctrl "librarymgmt/app/echoServer/controller/events"
	"librarymgmt/app/echoServer/validation"
	"librarymgmt/config"
	bookrepo "librarymgmt/repository/book"
	userrepo "librarymgmt/repository/user"
	authsvc "librarymgmt/service/auth"
	booksvc "librarymgmt/service/book"
	"librarymgmt/util/database"
	"librarymgmt/util/queue"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// notification bus, created once for the process lifetime
	bus := queue.New()

	// repos
	ur := userrepo.New(db)
	br := bookrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret, cfg.TokenTTL, cfg.AdminEmail, cfg.AdminPassword)
	bs := booksvc.New(br, bus)

	if err := as.EnsureAdmin(ctx); err != nil {
		log.Error("admin bootstrap failed", "err", err)
		os.Exit(1)
	}

	// controllers
	v := validation.NewValidate()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	eventsC := &eventsctrl.Controller{Bus: bus, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Book:   bookC,
		Events: eventsC,

		AuthSvc:   as,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
