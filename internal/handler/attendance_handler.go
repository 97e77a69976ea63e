package handler

import (
	"errors"
	"net/http"

	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/service"
	"attendance-backend/pkg/pagination"
	"attendance-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

// NewAttendanceHandler sets up the routing dependencies for attendance endpoints
func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AttendanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	attendance := router.Group("/attendance")
	{
		// Scan stays open: RFID terminals authenticate by card, not by token.
		attendance.POST("/scan", h.Scan)

		attendance.GET("", middleware.RequireRole(model.RoleAdmin), h.List)
		attendance.GET("/today", middleware.RequireRole(model.RoleAdmin), h.Today)
		attendance.GET("/user/:userId", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.ListForUser)
		attendance.GET("/monthly/:userId", middleware.RequireRole(model.RoleAdmin, model.RoleEmployee), h.Monthly)
		attendance.POST("/mark-absent", middleware.RequireRole(model.RoleAdmin), h.MarkAbsent)
	}
}

// Scan handles POST /attendance/scan from RFID terminals
// @Summary      Process a card scan
// @Description  Resolves a raw card UID and timestamp into a check-in or check-out. Business rejections (unknown card, duplicate, already out) return 200 with success=false so terminals can branch on the reason code.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ScanRequest  true  "Scan payload"
// @Success      200      {object}  service.ScanResult
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /attendance/scan [post]
func (h *AttendanceHandler) Scan(c *gin.Context) {
	var req service.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	result, err := h.attendanceService.Scan(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUIDRequired) {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "UID required"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// List handles GET /attendance with optional date range filters
// @Summary      List attendance records
// @Description  Retrieves a paginated slice of the attendance ledger, newest dates first
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        date   query     string  false  "Exact ledger date (YYYY-MM-DD)"
// @Param        from   query     string  false  "Range start (YYYY-MM-DD)"
// @Param        to     query     string  false  "Range end (YYYY-MM-DD)"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Items per page (default 50)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	p := pagination.Parse(c)

	filter := repository.AttendanceFilter{
		Date:     c.Query("date"),
		FromDate: c.Query("from"),
		ToDate:   c.Query("to"),
	}

	recs, total, err := h.attendanceService.List(c.Request.Context(), filter, p.Page, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch attendance"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"attendance": recs,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
	}))
}

// Today handles GET /attendance/today
// @Summary      Today's attendance
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.AttendanceRecord}
// @Failure      500  {object}  response.Response
// @Router       /attendance/today [get]
func (h *AttendanceHandler) Today(c *gin.Context) {
	recs, err := h.attendanceService.Today(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch attendance"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, recs))
}

// ListForUser handles GET /attendance/user/:userId, backfilling absent days first
// @Summary      A user's attendance history
// @Description  Reading a user's ledger lazily synthesizes ABSENT rows for any gap up to today before returning
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true   "User ID"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 50)"
// @Success      200     {object}  response.Response{data=object}
// @Failure      500     {object}  response.Response
// @Router       /attendance/user/{userId} [get]
func (h *AttendanceHandler) ListForUser(c *gin.Context) {
	p := pagination.Parse(c)

	recs, total, err := h.attendanceService.ListForUser(c.Request.Context(), c.Param("userId"), p.Page, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch attendance"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"attendance": recs,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
	}))
}

// Monthly handles GET /attendance/monthly/:userId?month=YYYY-MM
// @Summary      A user's attendance for one month
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Param        month   query     string  true  "Month (YYYY-MM)"
// @Success      200     {object}  response.Response{data=[]model.AttendanceRecord}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /attendance/monthly/{userId} [get]
func (h *AttendanceHandler) Monthly(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "month query parameter required (YYYY-MM)"))
		return
	}

	recs, err := h.attendanceService.Monthly(c.Request.Context(), c.Param("userId"), month)
	if err != nil {
		if err.Error() == "invalid month, expected YYYY-MM" {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch attendance"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, recs))
}

// MarkAbsent handles POST /attendance/mark-absent
// @Summary      Eagerly mark yesterday's absentees
// @Description  Synthesizes ABSENT rows for yesterday for every active employee (or a single user). Gated to once per day by a persisted run record unless force is set.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.MarkAbsentRequest  false  "Optional scope"
// @Success      200      {object}  response.Response{data=service.MarkAbsentResult}
// @Failure      500      {object}  response.Response
// @Router       /attendance/mark-absent [post]
func (h *AttendanceHandler) MarkAbsent(c *gin.Context) {
	var req service.MarkAbsentRequest
	// Body is optional; an empty body means "all employees, respect the gate".
	_ = c.ShouldBindJSON(&req)

	result, err := h.attendanceService.MarkAbsent(c.Request.Context(), req)
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to mark absentees"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
