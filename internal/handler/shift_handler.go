package handler

import (
	"net/http"

	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/service"
	"attendance-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	shiftService service.ShiftService
}

// NewShiftHandler sets up the routing dependencies for Shift endpoints
func NewShiftHandler(shiftService service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ShiftHandler) RegisterRoutes(router *gin.RouterGroup) {
	shifts := router.Group("/shifts")
	{
		shifts.POST("", middleware.RequireRole(model.RoleAdmin), h.Create)
		shifts.POST("/assign", middleware.RequireRole(model.RoleAdmin), h.Assign)
		shifts.GET("", middleware.RequireRole(model.RoleAdmin), h.ListActive)
		shifts.GET("/user/:userId", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.ListByUser)
		shifts.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.Deactivate)
	}
}

// Create handles POST /shifts
// @Summary      Create a shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateShiftRequest  true  "Shift definition"
// @Success      201      {object}  response.Response{data=model.Shift}
// @Failure      400      {object}  response.Response
// @Router       /shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	shift, err := h.shiftService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, shift))
}

// Assign handles POST /shifts/assign
// @Summary      Assign a shift to a user
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.AssignShiftRequest  true  "Assignment"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /shifts/assign [post]
func (h *ShiftHandler) Assign(c *gin.Context) {
	var req service.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.shiftService.Assign(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Shift assigned"))
}

// ListActive handles GET /shifts
// @Summary      List active shifts
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Shift}
// @Failure      500  {object}  response.Response
// @Router       /shifts [get]
func (h *ShiftHandler) ListActive(c *gin.Context) {
	shifts, err := h.shiftService.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch shifts"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, shifts))
}

// ListByUser handles GET /shifts/user/:userId
// @Summary      List a user's shifts
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=[]model.Shift}
// @Failure      400     {object}  response.Response
// @Router       /shifts/user/{userId} [get]
func (h *ShiftHandler) ListByUser(c *gin.Context) {
	shifts, err := h.shiftService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, shifts))
}

// Deactivate handles DELETE /shifts/:id
// @Summary      Deactivate a shift
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shift ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /shifts/{id} [delete]
func (h *ShiftHandler) Deactivate(c *gin.Context) {
	if err := h.shiftService.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Shift deactivated"))
}
