package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"librarymgmt/model"
	booksvc "librarymgmt/service/book"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /books
// @Summary      List books
// @Description  Retrieve books with pagination: skip N, return up to limit
// @Tags         books
// @Produce      json
// @Param        skip   query  int  false  "Books to skip"     default(0)
// @Param        limit  query  int  false  "Max books to return"  default(10)
// @Success      200  {array}   model.Book
// @Failure      400  {object}  map[string]any "invalid pagination parameters"
// @Failure      401  {object}  map[string]any
// @Security     BearerAuth
// @Router       /books [get]
func (h *Controller) List(c echo.Context) error {
	skip, limit := 0, 10
	var err error
	if v := c.QueryParam("skip"); v != "" {
		if skip, err = strconv.Atoi(v); err != nil {
			return h.badPagination(c)
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return h.badPagination(c)
		}
	}

	books, err := h.Svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		if err == booksvc.ErrBadInput {
			return h.badPagination(c)
		}
		return h.internal(c, "book list error", err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Controller) badPagination(c echo.Context) error {
	return echo.NewHTTPError(http.StatusBadRequest,
		"Invalid pagination parameters. Ensure 0 <= skip and 1 <= limit <= 100.")
}

// GET /books/:id
// @Summary      Retrieve a specific book
// @Description  Fetch a particular book using its ID
// @Tags         books
// @Produce      json
// @Param        id  path  int  true  "Book ID"
// @Success      200  {object}  model.Book
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any "book not found"
// @Security     BearerAuth
// @Router       /books/{id} [get]
func (h *Controller) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
	}
	b, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if err == booksvc.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
		}
		return h.internal(c, "book detail error", err)
	}
	return c.JSON(http.StatusOK, b)
}

// POST /books
// @Summary      Create a new book
// @Description  Add a new book to the catalog
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body  model.BookCreate  true  "Book payload"
// @Success      200  {object}  model.Book
// @Failure      400  {object}  map[string]any "invalid fields"
// @Failure      401  {object}  map[string]any
// @Security     BearerAuth
// @Router       /books [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.BookCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := h.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	b, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		if err == booksvc.ErrBadInput {
			return echo.NewHTTPError(http.StatusBadRequest, "validation error")
		}
		return h.internal(c, "book create error", err)
	}
	return c.JSON(http.StatusOK, b)
}

// PUT /books/:id
// @Summary      Update an existing book
// @Description  Partial update: only fields present in the body are changed
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path  int               true  "Book ID"
// @Param        payload  body  model.BookUpdate  true  "Fields to change"
// @Success      200  {object}  model.Book
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any "book not found"
// @Security     BearerAuth
// @Router       /books/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
	}
	var req model.BookUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := h.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	b, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		switch err {
		case booksvc.ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
		case booksvc.ErrBadInput:
			return echo.NewHTTPError(http.StatusBadRequest, "validation error")
		}
		return h.internal(c, "book update error", err)
	}
	return c.JSON(http.StatusOK, b)
}

// DELETE /books/:id
// @Summary      Delete a book
// @Description  Remove a book and return it as it existed before deletion
// @Tags         books
// @Produce      json
// @Param        id  path  int  true  "Book ID"
// @Success      200  {object}  model.Book
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any "book not found"
// @Security     BearerAuth
// @Router       /books/{id} [delete]
func (h *Controller) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
	}
	b, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		if err == booksvc.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
		}
		return h.internal(c, "book delete error", err)
	}
	return c.JSON(http.StatusOK, b)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *Controller) internal(c echo.Context, msg string, err error) error {
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	h.Log.Error(msg, "err", err, "req_id", rid)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
