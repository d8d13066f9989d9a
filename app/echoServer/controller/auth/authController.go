package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"librarymgmt/model"
	authsvc "librarymgmt/service/auth"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Login
// @Summary      User login
// @Description  Authenticate with email + password (form fields `username` and `password`), returns a JWT
// @Tags         login
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "User email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  model.Token
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "incorrect username or password"
// @Router       /login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	token, err := ct.Svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == authsvc.ErrInvalidCreds {
			return echo.NewHTTPError(http.StatusNotFound, "Incorrect username or password")
		}
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		ct.Log.Error("login failed", "err", err, "req_id", rid)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, model.Token{AccessToken: token, TokenType: "bearer"})
}

// Signup
// @Summary      Register user
// @Description  Create a new account without being logged in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.SignupReq  true  "Signup payload"
// @Success      200  {object}  model.UserPublic
// @Failure      400  {object}  map[string]any "user has already registered"
// @Failure      500  {object}  map[string]any
// @Router       /users/signup [post]
func (ct *Controller) Signup(c echo.Context) error {
	var req model.SignupReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	u, err := ct.Svc.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == authsvc.ErrEmailTaken {
			return echo.NewHTTPError(http.StatusBadRequest, "User has already registered")
		}
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		ct.Log.Error("signup failed", "err", err, "req_id", rid)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, model.UserPublic{ID: u.ID})
}
