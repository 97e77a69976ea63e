package main

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "attendance-backend/api/swagger" // swagger docs
	"attendance-backend/internal/database"
	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/service"
	"attendance-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// attendanceConfigFromEnv reads the resolver policies, falling back to the
// production defaults (3 AM day boundary, 10s debounce).
func attendanceConfigFromEnv() service.AttendanceConfig {
	cfg := service.DefaultAttendanceConfig()
	if v := os.Getenv("ATTENDANCE_DAY_BOUNDARY_HOUR"); v != "" {
		if hour, err := strconv.Atoi(v); err == nil && hour >= 0 && hour < 24 {
			cfg.DayBoundaryHour = hour
		} else {
			log.Printf("Ignoring invalid ATTENDANCE_DAY_BOUNDARY_HOUR %q", v)
		}
	}
	if v := os.Getenv("ATTENDANCE_DEBOUNCE_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			cfg.DebounceWindow = time.Duration(secs) * time.Second
		} else {
			log.Printf("Ignoring invalid ATTENDANCE_DEBOUNCE_SECONDS %q", v)
		}
	}
	return cfg
}

// @title           HR Attendance API
// @version         1.0
// @description     RFID attendance back-office: card scans, attendance ledger, shifts, leaves, complaints, notices and salary estimates.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "attendance")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub for the live scan feed
	wsHub := websocket.NewHub()
	go wsHub.Run()

	attendanceCfg := attendanceConfigFromEnv()

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	runRepo := repository.NewBackfillRunRepository(db)
	cardRepo := repository.NewUIDCardRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	txManager := repository.NewTransactionManager(db)

	attendanceService := service.NewAttendanceService(attendanceRepo, userRepo, shiftRepo, runRepo, wsHub, attendanceCfg)
	userService := service.NewUserService(userRepo, cardRepo, txManager)
	shiftService := service.NewShiftService(shiftRepo, userRepo)
	leaveService := service.NewLeaveService(leaveRepo, userRepo)
	complaintService := service.NewComplaintService(complaintRepo, userRepo)
	noticeService := service.NewNoticeService(noticeRepo)
	cardService := service.NewUIDCardService(cardRepo)
	salaryService := service.NewSalaryService(attendanceRepo, userRepo)
	dashboardService := service.NewDashboardService(userRepo, attendanceRepo, leaveRepo, complaintRepo, noticeRepo, attendanceCfg)

	// Initialize Handlers
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	userHandler := handler.NewUserHandler(userService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	noticeHandler := handler.NewNoticeHandler(noticeService)
	cardHandler := handler.NewUIDCardHandler(cardService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, salaryService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Live scan feed
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	attendanceHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""))
	shiftHandler.RegisterRoutes(router.Group(""))
	leaveHandler.RegisterRoutes(router.Group(""))
	complaintHandler.RegisterRoutes(router.Group(""))
	noticeHandler.RegisterRoutes(router.Group(""))
	cardHandler.RegisterRoutes(router.Group(""))
	dashboardHandler.RegisterRoutes(router.Group(""))

	port := envOr("PORT", "8080")

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
