package handler

import (
	"net/http"

	"github.com/AlexMarkGIT/shareit/internal/dto"
	"github.com/AlexMarkGIT/shareit/internal/models"
	"github.com/AlexMarkGIT/shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/users")
	g.POST("", h.Create)
	g.GET("", h.GetAll)
	g.GET("/:userId", h.GetByID)
	g.PATCH("/:userId", h.Update)
	g.DELETE("/:userId", h.Delete)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Create(c.Request().Context(), &models.User{Name: req.Name, Email: req.Email})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.svc.GetAll(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.ToUserResponse(&users[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Update(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
