package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/config"
	"github.com/toeflcenter/backend/database"
	_ "github.com/toeflcenter/backend/docs" // Swagger docs - auto-generated
	"github.com/toeflcenter/backend/internal/auth"
	"github.com/toeflcenter/backend/internal/controller"
	"github.com/toeflcenter/backend/internal/logger"
	"github.com/toeflcenter/backend/internal/middleware"
	"github.com/toeflcenter/backend/internal/model"
	"github.com/toeflcenter/backend/internal/repository"
	"github.com/toeflcenter/backend/internal/service"
)

// @title TOEFL Test Center API
// @version 1.0
// @description Backend API for employee English testing: users, tests, schedules, results and certificates.
// @contact.name API Support
// @contact.email support@toeflcenter.local
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			func(cfg *config.Config) *auth.JWTService {
				return auth.NewJWTService(cfg.JWTSecret)
			},
			middleware.NewAuthMiddleware,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewTestRepository,
			repository.NewResultRepository,
			repository.NewCertificateRepository,
			repository.NewScheduleRepository,
			repository.NewContentRepository,
			repository.NewReportRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewGradingService,
			service.NewTestSubmissionService,
			service.NewResultService,
			service.NewCertificateService,
			service.NewScheduleService,
			service.NewContentService,
			service.NewReportService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewTestController,
			controller.NewResultController,
			controller.NewCertificateController,
			controller.NewScheduleController,
			controller.NewContentController,
			controller.NewReportController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(CloseDatabaseOnShutdown),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Request logging through the global zerolog instance
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authMw *middleware.AuthMiddleware,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	testCtrl *controller.TestController,
	resultCtrl *controller.ResultController,
	certificateCtrl *controller.CertificateController,
	scheduleCtrl *controller.ScheduleController,
	contentCtrl *controller.ContentController,
	reportCtrl *controller.ReportController,
) {
	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)
	}

	usersGroup := api.Group("/users", authMw.RequireAuth())
	{
		usersGroup.GET("/profile", userCtrl.GetProfile)
		usersGroup.GET("", authMw.RequireRole(model.RoleAdmin), userCtrl.GetAllUsers)
		usersGroup.GET("/:id", userCtrl.GetUser)
		usersGroup.PUT("/:id", userCtrl.UpdateUser)
		usersGroup.DELETE("/:id", authMw.RequireRole(model.RoleAdmin), userCtrl.DeleteUser)
	}

	// Admin user listing kept on its own path for dashboard clients.
	adminGroup := api.Group("/admin", authMw.RequireAuth(), authMw.RequireRole(model.RoleAdmin))
	{
		adminGroup.GET("/users", userCtrl.GetAllUsers)
	}

	testsGroup := api.Group("/tests", authMw.RequireAuth())
	{
		testsGroup.GET("", testCtrl.GetAllTests)
		testsGroup.GET("/:id", testCtrl.GetTest)
		testsGroup.POST("", authMw.RequireRole(model.RoleAdmin), testCtrl.CreateTest)
		testsGroup.PUT("/:id", authMw.RequireRole(model.RoleAdmin), testCtrl.UpdateTest)
		testsGroup.DELETE("/:id", authMw.RequireRole(model.RoleAdmin), testCtrl.DeleteTest)
		testsGroup.POST("/:id/submit", testCtrl.SubmitTest)
	}

	resultsGroup := api.Group("/results", authMw.RequireAuth())
	{
		resultsGroup.GET("", resultCtrl.GetResults)
		resultsGroup.GET("/:id", resultCtrl.GetResult)
		resultsGroup.POST("", authMw.RequireRole(model.RoleAdmin), resultCtrl.CreateResult)
		resultsGroup.PUT("/:id", authMw.RequireRole(model.RoleAdmin), resultCtrl.UpdateResult)
		resultsGroup.DELETE("/:id", authMw.RequireRole(model.RoleAdmin), resultCtrl.DeleteResult)
	}

	certificatesGroup := api.Group("/certificates", authMw.RequireAuth())
	{
		certificatesGroup.GET("", authMw.RequireRole(model.RoleAdmin), certificateCtrl.GetCertificates)
		certificatesGroup.GET("/:id", certificateCtrl.GetCertificate)
		certificatesGroup.POST("", authMw.RequireRole(model.RoleAdmin), certificateCtrl.CreateCertificate)
		certificatesGroup.PUT("/:id", authMw.RequireRole(model.RoleAdmin), certificateCtrl.UpdateCertificate)
		certificatesGroup.DELETE("/:id", authMw.RequireRole(model.RoleAdmin), certificateCtrl.DeleteCertificate)
	}

	schedulesGroup := api.Group("/schedules", authMw.RequireAuth())
	{
		schedulesGroup.GET("", scheduleCtrl.GetSchedules)
		schedulesGroup.GET("/:id", scheduleCtrl.GetSchedule)
		schedulesGroup.POST("", authMw.RequireRole(model.RoleAdmin), scheduleCtrl.CreateSchedule)
		schedulesGroup.PUT("/:id", authMw.RequireRole(model.RoleAdmin), scheduleCtrl.UpdateSchedule)
		schedulesGroup.DELETE("/:id", authMw.RequireRole(model.RoleAdmin), scheduleCtrl.DeleteSchedule)
		schedulesGroup.POST("/:id/register", scheduleCtrl.Register)
	}

	contentGroup := api.Group("/content", authMw.RequireAuth(), authMw.RequireRole(model.RoleAdmin))
	{
		contentGroup.GET("", contentCtrl.GetContents)
		contentGroup.GET("/:id", contentCtrl.GetContent)
		contentGroup.POST("", contentCtrl.CreateContent)
		contentGroup.PUT("/:id", contentCtrl.UpdateContent)
		contentGroup.DELETE("/:id", contentCtrl.DeleteContent)
	}

	// Reports stay open, the analytics frontend consumes them without a session.
	reportsGroup := api.Group("/reports")
	{
		reportsGroup.GET("", reportCtrl.GetReports)
		reportsGroup.GET("/:id", reportCtrl.GetReport)
		reportsGroup.POST("", reportCtrl.CreateReport)
		reportsGroup.PUT("/:id", reportCtrl.UpdateReport)
		reportsGroup.DELETE("/:id", reportCtrl.DeleteReport)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("TOEFL Test Center API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// CloseDatabaseOnShutdown releases the connection pool once the server has
// stopped accepting requests.
func CloseDatabaseOnShutdown(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing database connection...")
			return database.Close(db)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Test{},
		&model.Question{},
		&model.Choice{},
		&model.Schedule{},
		&model.Result{},
		&model.Certificate{},
		&model.Content{},
		&model.Report{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
