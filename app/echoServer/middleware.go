// app/echoServer/middleware.go
package echoServer

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	authsvc "librarymgmt/service/auth"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// CurrentUser runs after the JWT middleware has verified the token.
// It resolves the token subject to a user record and stores it under
// "current_user". A valid token for an unknown subject is rejected
// with the same 401 as a bad token.
func CurrentUser(as authsvc.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*jwt.RegisteredClaims)
			if !ok || claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}

			u, err := as.Resolve(c.Request().Context(), claims.Subject)
			if err != nil {
				switch {
				case errors.Is(err, authsvc.ErrInactive):
					return echo.NewHTTPError(http.StatusBadRequest, "Inactive user")
				case errors.Is(err, authsvc.ErrInvalidCreds):
					return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
				}
				rid := c.Response().Header().Get(echo.HeaderXRequestID)
				slog.Error("current user lookup failed", "err", err, "req_id", rid)
				return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
			}

			c.Set("current_user", u)
			return next(c)
		}
	}
}
