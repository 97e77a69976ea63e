package handler

import (
	"net/http"

	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/service"
	"attendance-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	noticeService service.NoticeService
}

// NewNoticeHandler sets up the routing dependencies for Notice endpoints
func NewNoticeHandler(noticeService service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *NoticeHandler) RegisterRoutes(router *gin.RouterGroup) {
	notices := router.Group("/notices")
	{
		notices.POST("", middleware.RequireRole(model.RoleAdmin), h.Create)
		notices.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.ListActive)
		notices.PUT("/:id", middleware.RequireRole(model.RoleAdmin), h.Update)
		notices.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.Deactivate)
	}
}

// Create handles POST /notices
// @Summary      Publish a notice
// @Tags         notices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateNoticeRequest  true  "Notice"
// @Success      201      {object}  response.Response{data=model.Notice}
// @Failure      400      {object}  response.Response
// @Router       /notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	var req service.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	createdBy, _ := c.Get("userID")
	creatorID, _ := createdBy.(string)

	notice, err := h.noticeService.Create(c.Request.Context(), creatorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, notice))
}

// ListActive handles GET /notices
// @Summary      List active notices
// @Tags         notices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Notice}
// @Failure      500  {object}  response.Response
// @Router       /notices [get]
func (h *NoticeHandler) ListActive(c *gin.Context) {
	notices, err := h.noticeService.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch notices"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, notices))
}

// Update handles PUT /notices/:id
// @Summary      Update a notice
// @Tags         notices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Notice ID"
// @Param        payload  body      service.UpdateNoticeRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=model.Notice}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /notices/{id} [put]
func (h *NoticeHandler) Update(c *gin.Context) {
	var req service.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	notice, err := h.noticeService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, notice))
}

// Deactivate handles DELETE /notices/:id
// @Summary      Take down a notice
// @Tags         notices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notice ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /notices/{id} [delete]
func (h *NoticeHandler) Deactivate(c *gin.Context) {
	if err := h.noticeService.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Notice deactivated"))
}
