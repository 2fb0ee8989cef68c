package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	Port            string
	DatabasePath    string
	UploadDir       string
	JwtSecret       string
	SessionTTLHours int
	AdminUsername   string
	AdminPassword   string
	LogLevel        string
	Environment     string
	PublicBaseURL   string
	SnapshotStale   int
}

func LoadConfig() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		return nil, errors.New("ADMIN_USERNAME is required")
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		return nil, errors.New("ADMIN_PASSWORD is required")
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "portfolio.db"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "public/uploads"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	publicBaseURL := os.Getenv("PUBLIC_BASE_URL")
	if publicBaseURL == "" {
		publicBaseURL = "http://127.0.0.1:" + port
	}

	sessionTTL := 24 // default value
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			sessionTTL = parsed
		}
	}

	snapshotStale := 60 // default value
	if v := os.Getenv("SNAPSHOT_STALE_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			snapshotStale = parsed
		}
	}

	return &Config{
		Port:            port,
		DatabasePath:    databasePath,
		UploadDir:       uploadDir,
		JwtSecret:       jwtSecret,
		SessionTTLHours: sessionTTL,
		AdminUsername:   adminUsername,
		AdminPassword:   adminPassword,
		LogLevel:        logLevel,
		Environment:     environment,
		PublicBaseURL:   publicBaseURL,
		SnapshotStale:   snapshotStale,
	}, nil
}
