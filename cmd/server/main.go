package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/config"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/handler"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting sarkar-crm service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Showroom{},
		&entity.Customer{},
		&entity.SalesTransaction{},
		&entity.Appointment{},
		&entity.Task{},
		&entity.Announcement{},
		&entity.MediaFile{},
	); err != nil {
		zapLogger.Warn("AutoMigrate warning", zap.Error(err))
	}

	// customer_code_seq feeds CUS-{6 digits} generation
	db.Exec("CREATE SEQUENCE IF NOT EXISTS customer_code_seq START 1")

	rdb := initRedis(cfg.Redis)

	minioClient := initMinIO(cfg.MinIO, zapLogger)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinIO(cfg config.MinIOConfig, zapLogger *zap.Logger) *minio.Client {
	if cfg.Endpoint == "" {
		return nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		zapLogger.Warn("MinIO unavailable, media endpoints disabled", zap.Error(err))
		return nil
	}
	return client
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.POST("/auth/logout", h.Auth.Logout)

			users := authorized.Group("/users")
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.POST("", middleware.RequireRole(entity.RoleAdmin), h.User.Create)
				users.PUT("/:id", middleware.RequireRole(entity.RoleAdmin), h.User.Update)
			}

			showrooms := authorized.Group("/showrooms")
			{
				showrooms.GET("", h.Showroom.List)
				showrooms.GET("/:id", h.Showroom.Get)
				showrooms.POST("", middleware.RequireRole(entity.RoleAdmin), h.Showroom.Create)
				showrooms.PUT("/:id", middleware.RequireRole(entity.RoleAdmin), h.Showroom.Update)
				showrooms.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Showroom.Delete)
			}

			customers := authorized.Group("/customers")
			{
				customers.GET("", h.Customer.List)
				customers.GET("/:id", h.Customer.Get)
				customers.POST("", h.Customer.Create)
				customers.PUT("/:id", h.Customer.Update)
				customers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Customer.Delete)
				customers.PUT("/:id/lead-status", h.Customer.UpdateLeadStatus)
				customers.POST("/:id/purchase", h.Customer.RecordPurchase)
				customers.POST("/:id/walkout", h.Customer.RecordWalkout)

				customers.POST("/:id/media", h.Media.Upload)
				customers.GET("/:id/media", h.Media.List)
			}

			media := authorized.Group("/media")
			{
				media.GET("/:id/download", h.Media.Download)
			}

			appointments := authorized.Group("/appointments")
			{
				appointments.GET("", h.Appointment.List)
				appointments.GET("/:id", h.Appointment.Get)
				appointments.POST("", h.Appointment.Create)
				appointments.PUT("/:id/status", h.Appointment.UpdateStatus)
				appointments.DELETE("/:id", h.Appointment.Delete)
			}

			tasks := authorized.Group("/tasks")
			{
				tasks.GET("", h.Task.List)
				tasks.GET("/overdue", h.Task.ListOverdue)
				tasks.GET("/:id", h.Task.Get)
				tasks.POST("", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Task.Create)
				tasks.PUT("/:id/status", h.Task.UpdateStatus)
				tasks.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Task.Delete)
			}

			announcements := authorized.Group("/announcements")
			{
				announcements.GET("", middleware.RequireRole(entity.RoleAdmin), h.Announcement.List)
				announcements.GET("/active", h.Announcement.ListActive)
				announcements.GET("/:id", h.Announcement.Get)
				announcements.POST("", middleware.RequireRole(entity.RoleAdmin), h.Announcement.Create)
				announcements.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Announcement.Delete)
			}

			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/admin", middleware.RequireRole(entity.RoleAdmin), h.Dashboard.Admin)
				dashboard.GET("/manager", middleware.RequireRole(entity.RoleManager), h.Dashboard.Manager)
				dashboard.GET("/pipeline/export", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Dashboard.ExportPipeline)
			}
		}
	}
}
