package handler

import (
	"net/http"

	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/service"
	"attendance-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type LeaveHandler struct {
	leaveService service.LeaveService
}

// NewLeaveHandler sets up the routing dependencies for Leave endpoints
func NewLeaveHandler(leaveService service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *LeaveHandler) RegisterRoutes(router *gin.RouterGroup) {
	leaves := router.Group("/leaves")
	{
		leaves.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.Submit)
		leaves.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.List)
		leaves.PUT("/:id/status", middleware.RequireRole(model.RoleAdmin), h.UpdateStatus)
	}
}

// Submit handles POST /leaves
// @Summary      Submit a leave application
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SubmitLeaveRequest  true  "Leave application"
// @Success      201      {object}  response.Response{data=model.Leave}
// @Failure      400      {object}  response.Response
// @Router       /leaves [post]
func (h *LeaveHandler) Submit(c *gin.Context) {
	var req service.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	leave, err := h.leaveService.Submit(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, leave))
}

// List handles GET /leaves with optional filters
// @Summary      List leave applications
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  false  "Filter by user"
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  response.Response{data=[]model.Leave}
// @Failure      500     {object}  response.Response
// @Router       /leaves [get]
func (h *LeaveHandler) List(c *gin.Context) {
	leaves, err := h.leaveService.List(c.Request.Context(), c.Query("userId"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch leaves"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, leaves))
}

// UpdateStatus handles PUT /leaves/:id/status
// @Summary      Approve or reject a leave application
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                            true  "Leave ID"
// @Param        payload  body      service.UpdateLeaveStatusRequest  true  "Decision"
// @Success      200      {object}  response.Response{data=model.Leave}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /leaves/{id}/status [put]
func (h *LeaveHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	leave, err := h.leaveService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, leave))
}
