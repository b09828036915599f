package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
)

// NewDB 初始化 PostgreSQL 连接
// debug 为 true 时打印全部 SQL，否则只记录慢查询与错误
func NewDB(cfg *config.DatabaseConfig, debug bool, logger *zap.Logger) (*gorm.DB, error) {
	logMode := gormlogger.Warn
	if debug {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(logMode),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(positiveOr(cfg.MaxOpenConns, 25))
	sqlDB.SetMaxIdleConns(positiveOr(cfg.MaxIdleConns, 10))
	sqlDB.SetConnMaxLifetime(time.Duration(positiveOr(cfg.ConnMaxLifetime, 60)) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	logger.Info("数据库连接成功",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("dbname", cfg.Name),
	)
	return db, nil
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
