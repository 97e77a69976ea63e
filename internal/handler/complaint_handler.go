package handler

import (
	"net/http"

	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/service"
	"attendance-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	complaintService service.ComplaintService
}

// NewComplaintHandler sets up the routing dependencies for Complaint endpoints
func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ComplaintHandler) RegisterRoutes(router *gin.RouterGroup) {
	complaints := router.Group("/complaints")
	{
		complaints.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.Submit)
		complaints.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.List)
		complaints.PUT("/:id/status", middleware.RequireRole(model.RoleAdmin), h.UpdateStatus)
	}
}

// Submit handles POST /complaints
// @Summary      Raise a complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SubmitComplaintRequest  true  "Complaint"
// @Success      201      {object}  response.Response{data=model.Complaint}
// @Failure      400      {object}  response.Response
// @Router       /complaints [post]
func (h *ComplaintHandler) Submit(c *gin.Context) {
	var req service.SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	complaint, err := h.complaintService.Submit(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, complaint))
}

// List handles GET /complaints with optional filters
// @Summary      List complaints
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  false  "Filter by user"
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  response.Response{data=[]model.Complaint}
// @Failure      500     {object}  response.Response
// @Router       /complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	complaints, err := h.complaintService.List(c.Request.Context(), c.Query("userId"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch complaints"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, complaints))
}

// UpdateStatus handles PUT /complaints/:id/status
// @Summary      Update a complaint's status
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                                true  "Complaint ID"
// @Param        payload  body      service.UpdateComplaintStatusRequest  true  "New status"
// @Success      200      {object}  response.Response{data=model.Complaint}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /complaints/{id}/status [put]
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	complaint, err := h.complaintService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, complaint))
}
