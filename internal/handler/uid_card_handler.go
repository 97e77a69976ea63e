package handler

import (
	"net/http"

	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/service"
	"attendance-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UIDCardHandler struct {
	cardService service.UIDCardService
}

// NewUIDCardHandler sets up the routing dependencies for card inventory endpoints
func NewUIDCardHandler(cardService service.UIDCardService) *UIDCardHandler {
	return &UIDCardHandler{cardService: cardService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UIDCardHandler) RegisterRoutes(router *gin.RouterGroup) {
	uids := router.Group("/uids", middleware.RequireRole(model.RoleAdmin))
	{
		uids.POST("", h.Add)
		uids.GET("", h.List)
		uids.GET("/available", h.ListAvailable)
	}
}

// Add handles POST /uids
// @Summary      Provision a card UID
// @Description  Adds a physical card to the inventory so it can later be issued at registration
// @Tags         uids
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.AddUIDCardRequest  true  "Card UID"
// @Success      201      {object}  response.Response{data=model.UIDCard}
// @Failure      400      {object}  response.Response
// @Router       /uids [post]
func (h *UIDCardHandler) Add(c *gin.Context) {
	var req service.AddUIDCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	card, err := h.cardService.Add(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, card))
}

// List handles GET /uids
// @Summary      List all provisioned cards
// @Tags         uids
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.UIDCard}
// @Failure      500  {object}  response.Response
// @Router       /uids [get]
func (h *UIDCardHandler) List(c *gin.Context) {
	cards, err := h.cardService.List(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch cards"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cards))
}

// ListAvailable handles GET /uids/available
// @Summary      List unissued cards
// @Tags         uids
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.UIDCard}
// @Failure      500  {object}  response.Response
// @Router       /uids/available [get]
func (h *UIDCardHandler) ListAvailable(c *gin.Context) {
	cards, err := h.cardService.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch cards"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cards))
}
