package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/constants"
	"github.com/piresc/guestportal/internal/pkg/logger"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/events"
)

const maxEventBody = 64 << 10

// EventsHandler accepts analytics events from portal pages
type EventsHandler struct {
	eventsUC events.EventsUC
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(eventsUC events.EventsUC) *EventsHandler {
	return &EventsHandler{
		eventsUC: eventsUC,
	}
}

// Ingest handles POST /e. The body is read raw so the signature can be
// checked over the exact bytes sent.
func (h *EventsHandler) Ingest(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Events.Ingest")

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxEventBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return utils.PortalErrorResponse(c, http.StatusRequestEntityTooLarge, "invalid_request")
		}
		return utils.PortalErrorResponse(c, http.StatusBadRequest, "invalid_request")
	}

	ctx := c.Request().Context()
	if err := h.eventsUC.Ingest(ctx, body, c.Request().Header.Get(constants.HeaderPortalSignature)); err != nil {
		status, _ := utils.DomainErrorStatus(err)
		if status >= http.StatusInternalServerError {
			nrpkg.NoticeTransactionError(txn, err)
			logger.ErrorCtx(ctx, "Event ingest failed", logger.Err(err))
		}
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
