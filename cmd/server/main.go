package main

import (
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/api/auth"
	"github.com/IMohy/portfolio-imohy/internal/api/portfolio"
	"github.com/IMohy/portfolio-imohy/internal/api/upload"
	"github.com/IMohy/portfolio-imohy/internal/client"
	"github.com/IMohy/portfolio-imohy/internal/config"
	"github.com/IMohy/portfolio-imohy/internal/loaders"
	"github.com/IMohy/portfolio-imohy/internal/store"
	"github.com/IMohy/portfolio-imohy/internal/utils"
	"github.com/IMohy/portfolio-imohy/internal/web"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := utils.InitLogger(cfg.LogLevel, cfg.Environment); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer utils.Zlog.Sync()

	db, err := loaders.NewSQLiteClient(cfg.DatabasePath)
	if err != nil {
		utils.Zlog.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	st := store.NewStore(db.DB)
	sessions := auth.NewSessionManager(cfg.JwtSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
	authCtrl := auth.NewController(sessions, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.LoadHTMLGlob("templates/*")
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")
	auth.RegisterRoutes(api, authCtrl)
	portfolio.RegisterRoutes(api, st, sessions)
	upload.RegisterRoutes(api, st, sessions, cfg.UploadDir)

	apiClient := client.New(cfg.PublicBaseURL,
		client.WithSnapshotStaleTime(time.Duration(cfg.SnapshotStale)*time.Second))
	web.RegisterRoutes(router, web.NewHandler(apiClient, authCtrl), sessions)

	utils.Zlog.Info("Starting portfolio server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Zlog.Fatal("Server stopped", zap.Error(err))
	}
}
