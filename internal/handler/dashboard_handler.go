package handler

import (
	"net/http"

	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/service"
	"attendance-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	salaryService    service.SalaryService
}

// NewDashboardHandler sets up the routing dependencies for dashboard and salary endpoints
func NewDashboardHandler(dashboardService service.DashboardService, salaryService service.SalaryService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, salaryService: salaryService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/admin", middleware.RequireRole(model.RoleAdmin), h.Admin)
	router.GET("/dashboard/employee/:userId", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.Employee)
	router.GET("/salary/estimate/:userId", middleware.RequireRole(model.RoleAdmin), h.SalaryEstimate)
}

// Admin handles GET /dashboard/admin
// @Summary      Admin dashboard aggregates
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.AdminDashboard}
// @Failure      500  {object}  response.Response
// @Router       /dashboard/admin [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	dash, err := h.dashboardService.Admin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build dashboard"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, dash))
}

// Employee handles GET /dashboard/employee/:userId
// @Summary      Employee dashboard aggregates
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=service.EmployeeDashboard}
// @Failure      500     {object}  response.Response
// @Router       /dashboard/employee/{userId} [get]
func (h *DashboardHandler) Employee(c *gin.Context) {
	dash, err := h.dashboardService.Employee(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build dashboard"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, dash))
}

// SalaryEstimate handles GET /salary/estimate/:userId?month=YYYY-MM&dailyRate=NNN
// @Summary      Estimate a month's payout
// @Description  Multiplies the daily rate by payable days derived from attendance statuses (PRESENT and LATE pay full, HALF_DAY pays half, ABSENT pays nothing)
// @Tags         salary
// @Produce      json
// @Security     BearerAuth
// @Param        userId     path      string  true  "User ID"
// @Param        month      query     string  true  "Month (YYYY-MM)"
// @Param        dailyRate  query     number  true  "Daily rate"
// @Success      200        {object}  response.Response{data=service.SalaryEstimate}
// @Failure      400        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /salary/estimate/{userId} [get]
func (h *DashboardHandler) SalaryEstimate(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "month query parameter required (YYYY-MM)"))
		return
	}

	rate, err := decimal.NewFromString(c.DefaultQuery("dailyRate", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid dailyRate"))
		return
	}

	estimate, err := h.salaryService.Estimate(c.Request.Context(), c.Param("userId"), month, rate)
	if err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		case "invalid month, expected YYYY-MM", "dailyRate must not be negative":
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to estimate salary"))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, estimate))
}
