package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/api/handler"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/api/middleware"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/api/router"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/repository"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/service"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/database"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/jwt"
	applogger "github.com/muzmmils/Skill-Learning-Buddy/pkg/logger"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认查找 ./config/config.yaml）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	debug := cfg.Log.Level == "debug"
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("schedule_timezone", cfg.Schedule.Timezone),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, debug, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	logger.Info("数据库连接成功")

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：未配置或连接失败时不限流、不缓存）
	var (
		rdb     *redis.Client
		limiter middleware.RateLimiter
		cache   service.ScheduleCache
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，限流与排课缓存将不可用", zap.Error(err))
			rdb = nil
		}
	}
	if rdb != nil {
		limiter = rdb
		cache = rdb
	}

	// 5. 初始化 JWT 管理器
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc, err := service.NewService(cfg, repo, cache, jwtMgr, logger)
	if err != nil {
		logger.Fatal("初始化业务层失败", zap.Error(err))
	}
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, limiter, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("关闭数据库连接失败", zap.Error(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Warn("关闭 Redis 连接失败", zap.Error(err))
		}
	}

	logger.Info("服务器已关闭")
}
