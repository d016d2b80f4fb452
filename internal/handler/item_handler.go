package handler

import (
	"net/http"

	"github.com/AlexMarkGIT/shareit/internal/dto"
	"github.com/AlexMarkGIT/shareit/internal/models"
	"github.com/AlexMarkGIT/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/items")
	g.POST("", h.Create)
	g.GET("", h.ListByOwner)
	g.GET("/search", h.Search)
	g.GET("/:itemId", h.GetByID)
	g.PATCH("/:itemId", h.Update)
	g.POST("/:itemId/comment", h.CreateComment)
}

func (h *ItemHandler) Create(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}
	created, err := h.svc.Create(c.Request().Context(), userID, item)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToItemResponse(created))
}

func (h *ItemHandler) Update(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.Update(c.Request().Context(), itemID, userID, req.Name, req.Description, req.Available)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) GetByID(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	details, err := h.svc.GetByID(c.Request().Context(), itemID, userID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToItemDetailsResponse(details))
}

func (h *ItemHandler) ListByOwner(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	items, err := h.svc.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ItemDetailsResponse, len(items))
	for i := range items {
		resp[i] = dto.ToItemDetailsResponse(&items[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) Search(c echo.Context) error {
	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ItemResponse, len(items))
	for i := range items {
		resp[i] = dto.ToItemResponse(&items[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) CreateComment(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.svc.CreateComment(c.Request().Context(), itemID, userID, req.Text)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}
