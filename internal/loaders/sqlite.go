package loaders

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/IMohy/portfolio-imohy/internal/types"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO
)

// SQLiteClient wraps the gorm connection used by the store layer.
type SQLiteClient struct {
	DB *gorm.DB

	sqlDB *sql.DB
}

// NewSQLiteClient opens the database, applies the pragmas SQLite needs for
// concurrent request handling, and migrates the portfolio schema.
func NewSQLiteClient(dbPath string) (*SQLiteClient, error) {
	cfg := &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		PrepareStmt: true,
	}

	dsn := dbPath + "?_pragma=busy_timeout(5000)&_time_format=sqlite"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// WAL allows readers while a write is in flight; NORMAL sync is safe
	// under WAL.
	if err := db.Exec("PRAGMA journal_mode = WAL;").Error; err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := db.Exec("PRAGMA synchronous = NORMAL;").Error; err != nil {
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	// SQLite supports a single writer at a time.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(types.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteClient{DB: db, sqlDB: sqlDB}, nil
}

func (c *SQLiteClient) Close() error {
	return c.sqlDB.Close()
}
