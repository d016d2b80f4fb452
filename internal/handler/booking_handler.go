package handler

import (
	"context"
	"net/http"

	"github.com/AlexMarkGIT/shareit/internal/dto"
	"github.com/AlexMarkGIT/shareit/internal/models"
	"github.com/AlexMarkGIT/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/bookings")
	g.POST("", h.Create)
	g.PATCH("/:bookingId", h.Decide)
	g.GET("/owner", h.ListByOwner)
	g.GET("/:bookingId", h.GetByID)
	g.GET("", h.ListByBooker)
}

func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Start.Before(req.End) {
		return echo.NewHTTPError(http.StatusBadRequest, service.ErrInvalidInterval.Error())
	}

	booking, err := h.svc.Create(c.Request().Context(), userID, req.ItemID, req.Start, req.End)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Decide(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	approved := c.QueryParam("approved")
	if approved != "true" && approved != "false" {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}

	booking, err := h.svc.Decide(c.Request().Context(), bookingID, userID, approved == "true")
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetByID(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetByID(c.Request().Context(), bookingID, userID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListByBooker(c echo.Context) error {
	return h.list(c, h.svc.ListByBooker)
}

func (h *BookingHandler) ListByOwner(c echo.Context) error {
	return h.list(c, h.svc.ListByOwner)
}

func (h *BookingHandler) list(c echo.Context, query func(ctx context.Context, userID uint, state service.State, from, size int) ([]models.Booking, error)) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("state")
	if raw == "" {
		raw = string(service.StateAll)
	}
	state, err := service.ParseState(raw)
	if err != nil {
		return toHTTPError(err)
	}

	bookings, err := query(c.Request().Context(), userID, state, from, size)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}
