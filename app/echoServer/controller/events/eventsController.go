package events

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librarymgmt/util/queue"
)

type Controller struct {
	Bus *queue.Bus
	Log *slog.Logger
}

// Stream
// @Summary      Stream CRUD events
// @Description  Continuous Server-Sent-Events stream of catalog operation notifications
// @Tags         events
// @Produce      text/event-stream
// @Success      200  {string}  string  "payload: <text> frames"
// @Router       /events/crud [get]
func (h *Controller) Stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := c.Request().Context()
	for {
		ev, err := h.Bus.Next(ctx)
		if err != nil {
			// client went away
			return nil
		}
		if _, err := fmt.Fprintf(w, "payload: %s\n\n", ev); err != nil {
			return nil
		}
		w.Flush()
	}
}
