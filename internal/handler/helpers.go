package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AlexMarkGIT/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the trusted actor id set by the gateway.
const HeaderUserID = "X-Sharer-User-Id"

func actorID(c echo.Context) (uint, error) {
	raw := c.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "missing "+HeaderUserID+" header")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+HeaderUserID+" header")
	}
	return uint(id), nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// pageParams reads from/size with the gateway defaults from=0, size=10.
func pageParams(c echo.Context) (int, int, error) {
	from := 0
	size := 10

	if raw := c.QueryParam("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "from must be a non-negative integer")
		}
		from = v
	}
	if raw := c.QueryParam("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
		size = v
	}
	return from, size, nil
}

// toHTTPError maps domain errors to status codes. Relationship violations
// come back as 404 so a stranger learns nothing about the booking.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrOwnerSelfBooking),
		errors.Is(err, service.ErrNotOwner):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrAlreadyDecided),
		errors.Is(err, service.ErrUnknownState),
		errors.Is(err, service.ErrInvalidInterval),
		errors.Is(err, service.ErrNoFinishedBooking):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
