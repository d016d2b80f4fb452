package handler

import (
	"net/http"

	"github.com/AlexMarkGIT/shareit/internal/dto"
	"github.com/AlexMarkGIT/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/requests")
	g.POST("", h.Create)
	g.GET("", h.GetOwn)
	g.GET("/all", h.GetAll)
	g.GET("/:requestId", h.GetByID)
}

func (h *RequestHandler) Create(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateItemRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.svc.Create(c.Request().Context(), userID, req.Description)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.RequestResponse{
		ID:          request.ID,
		Description: request.Description,
		Created:     request.CreatedAt,
		Items:       []dto.ItemResponse{},
	})
}

func (h *RequestHandler) GetOwn(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	requests, err := h.svc.GetAllByRequester(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, toRequestResponses(requests))
}

func (h *RequestHandler) GetAll(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	requests, err := h.svc.GetAll(c.Request().Context(), userID, from, size)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, toRequestResponses(requests))
}

func (h *RequestHandler) GetByID(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}

	request, err := h.svc.GetByID(c.Request().Context(), userID, requestID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

func toRequestResponses(requests []service.RequestDetails) []dto.RequestResponse {
	resp := make([]dto.RequestResponse, len(requests))
	for i := range requests {
		resp[i] = dto.ToRequestResponse(&requests[i])
	}
	return resp
}
