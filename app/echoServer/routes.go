package echoServer

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"librarymgmt/app/echoServer/controller/auth"
	"librarymgmt/app/echoServer/controller/book"
	"librarymgmt/app/echoServer/controller/events"
	authsvc "librarymgmt/service/auth"
	jwtutil "librarymgmt/util/jwt"
)

type C struct {
	Auth   *auth.Controller
	Book   *book.Controller
	Events *events.Controller

	AuthSvc   authsvc.Service
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/login", c.Auth.Login)
	e.POST("/users/signup", c.Auth.Signup)
	e.GET("/events/crud", c.Events.Stream)

	// Bearer-protected
	books := e.Group("/books")
	books.Use(echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(ec echo.Context, auth string) (interface{}, error) {
			return jwtutil.ParseAuth(auth, c.JWTSecret)
		},
		// missing and invalid tokens get the same 401
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
		},
	}))
	books.Use(CurrentUser(c.AuthSvc))

	books.GET("", c.Book.List)
	books.GET("/:id", c.Book.Detail)
	books.POST("", c.Book.Create)
	books.PUT("/:id", c.Book.Update)
	books.DELETE("/:id", c.Book.Delete)
}
