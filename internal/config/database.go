package config

import (
	"context"
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance
var DB *gorm.DB

const pingTimeout = 5 * time.Second

// ConnectDatabase opens the MySQL store, applies the pool limits and waits for a ping
func ConnectDatabase(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	level := logger.Error
	if cfg.IsDev() {
		level = logger.Info
	}

	db, err := gorm.Open(mysql.Open(buildDSN(cfg.Database)), &gorm.Config{
		Logger:                 logger.Default.LogMode(level),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql %s/%s: %w", cfg.Database.Host, cfg.Database.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	DB = db
	log.Info("database connected",
		zap.String("addr", net.JoinHostPort(cfg.Database.Host, cfg.Database.Port)),
		zap.String("name", cfg.Database.DBName),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)
	return db, nil
}

// buildDSN formats d with the MySQL driver's own DSN writer, so passwords
// with reserved characters survive.
func buildDSN(d DatabaseConfig) string {
	mc := mysqldriver.NewConfig()
	mc.User = d.User
	mc.Passwd = d.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(d.Host, d.Port)
	mc.DBName = d.DBName
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the store; it backs GET /health
func HealthCheck() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
