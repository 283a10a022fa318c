package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/controllers"
	_ "github.com/projectteamlcet-droid/civic-eye/docs"
	"github.com/projectteamlcet-droid/civic-eye/middleware"
	"github.com/projectteamlcet-droid/civic-eye/models"
	"github.com/projectteamlcet-droid/civic-eye/services/container"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	api.GET("/ping", controllers.HandleHealthFunc("ping"))

	// 认证路由，登录和注册加限流防止暴力破解
	authLimiter := middleware.RateLimiter(middleware.RateLimiterConfig{
		Rate:       0.5,
		Burst:      10,
		ExpiryTime: 10 * time.Minute,
	})
	api.POST("/auth/register", authLimiter, controllers.HandleAuthFunc(container, "register"))
	api.POST("/auth/login", authLimiter, controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateUser())

	// 当前用户
	auth.Group("/auth").GET("/me", controllers.HandleAuthFunc(container, "getMe"))

	// 资产路由：创建和更新仅限管理员和片区负责人，删除仅限管理员
	manageRoles := middleware.RequireRoles(models.RoleSuperAdmin, models.RoleZoneOfficer)
	adminOnly := middleware.RequireRoles(models.RoleSuperAdmin)
	auth.Group("/assets").GET("", controllers.HandleAssetFunc(container, "getAssets"))
	auth.Group("/assets").GET("/:id", controllers.HandleAssetFunc(container, "getAsset"))
	auth.Group("/assets").GET("/:id/trend", controllers.HandleAssetFunc(container, "getAssetTrend"))
	auth.Group("/assets").POST("", manageRoles, controllers.HandleAssetFunc(container, "createAsset"))
	auth.Group("/assets").PUT("/:id", manageRoles, controllers.HandleAssetFunc(container, "updateAsset"))
	auth.Group("/assets").DELETE("/:id", adminOnly, controllers.HandleAssetFunc(container, "deleteAsset"))

	// AI分析路由：分析接口加限流，避免批量触发
	analyzeLimiter := middleware.RateLimiter(middleware.RateLimiterConfig{
		Rate:       1,
		Burst:      20,
		ExpiryTime: 10 * time.Minute,
	})
	auth.Group("/ai").POST("/analyze", analyzeLimiter, controllers.HandleAIFunc(container, "analyzeAsset"))
	auth.Group("/ai").GET("/history/:assetId", controllers.HandleAIFunc(container, "getAnalysisHistory"))

	// 告警路由：状态处置仅限管理员和片区负责人
	auth.Group("/alerts").GET("", controllers.HandleAlertFunc(container, "getAlerts"))
	auth.Group("/alerts").GET("/critical", controllers.HandleAlertFunc(container, "getCriticalAlerts"))
	auth.Group("/alerts").PUT("/:id/status", manageRoles, controllers.HandleAlertFunc(container, "updateAlertStatus"))

	// 看板路由：统计接口加短时缓存
	auth.Group("/dashboard").GET("/overview", middleware.Cache(), controllers.HandleDashboardFunc(container, "getOverview"))
	auth.Group("/dashboard").GET("/heatmap", middleware.Cache(), controllers.HandleDashboardFunc(container, "getHeatmap"))

	// 报表路由
	auth.Group("/reports").GET("/summary", middleware.Cache(), controllers.HandleReportFunc(container, "getSummary"))

	// 用户管理路由：仅超级管理员
	auth.Group("/users").GET("/:id", adminOnly, controllers.HandleUserFunc(container, "getUser"))
	auth.Group("/users").PUT("/:id/assets", adminOnly, controllers.HandleUserFunc(container, "assignAssets"))
}
