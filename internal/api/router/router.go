package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/api/handler"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/api/middleware"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/jwt"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时不限流
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(middleware.DefaultBodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger))
	{
		// 会话模块（匿名签发）
		v1.POST("/sessions", h.Session.CreateSession)

		// 预设模块
		presets := v1.Group("/presets")
		{
			presets.GET("/careers", h.Preset.ListCareers)
			presets.GET("/plans", h.Preset.ListCommunityPlans)
		}

		// 排课模块
		v1.POST("/schedules/preview", h.Schedule.Preview)

		// 导出模块（计划随请求提交）
		v1.POST("/export/:format", h.Export.Export)

		// 计划历史（需要学习者令牌）
		plans := v1.Group("/plans")
		plans.Use(middleware.LearnerAuth(jwtMgr))
		{
			plans.POST("", h.Plan.CreatePlan)
			plans.GET("", h.Plan.ListPlans)
			plans.GET("/:id", h.Plan.GetPlan)
			plans.GET("/:id/export/:format", h.Plan.ExportPlan)
		}
	}

	return r
}
