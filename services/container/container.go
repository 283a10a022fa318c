package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/services"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService *services.RedisService

	// 风险引擎与模拟检测
	riskService services.InterfaceRiskService
	aiService   services.InterfaceAIService

	// 告警推送服务
	notificationService services.InterfaceNotificationService

	// 业务服务
	userService      services.InterfaceUserService
	assetService     services.InterfaceAssetService
	alertService     services.InterfaceAlertService
	analysisService  services.InterfaceAnalysisService
	dashboardService services.InterfaceDashboardService
	reportService    services.InterfaceReportService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
	}

	// 初始化风险引擎和模拟检测服务
	c.riskService = services.NewRiskService()
	c.aiService = services.NewAIService(c.riskService)

	// 初始化告警推送服务并尝试连接MQTT服务器
	c.notificationService = services.NewNotificationService(c.config)
	if err := c.notificationService.Connect(); err != nil {
		log.Printf("MQTT服务连接失败: %v，告警将不会推送", err)
	}

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.assetService = services.NewAssetService(c.db, c.config, c.riskService)
	c.alertService = services.NewAlertService(c.db, c.config, c.riskService)
	c.analysisService = services.NewAnalysisService(c.db, c.config, c.riskService, c.aiService, c.alertService, c.notificationService)
	c.dashboardService = services.NewDashboardService(c.db, c.config, c.redisService)
	c.reportService = services.NewReportService(c.db, c.config, c.riskService, c.redisService)
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetJWTService 获取JWT服务
func (c *ServiceContainer) GetJWTService() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// GetRiskService 获取风险引擎服务
func (c *ServiceContainer) GetRiskService() services.InterfaceRiskService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.riskService
}

// GetAIService 获取AI分析服务
func (c *ServiceContainer) GetAIService() services.InterfaceAIService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.aiService
}

// GetUserService 获取用户服务
func (c *ServiceContainer) GetUserService() services.InterfaceUserService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userService
}

// GetAssetService 获取资产服务
func (c *ServiceContainer) GetAssetService() services.InterfaceAssetService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.assetService
}

// GetAlertService 获取告警服务
func (c *ServiceContainer) GetAlertService() services.InterfaceAlertService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.alertService
}

// GetAnalysisService 获取分析编排服务
func (c *ServiceContainer) GetAnalysisService() services.InterfaceAnalysisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.analysisService
}

// GetDashboardService 获取仪表盘服务
func (c *ServiceContainer) GetDashboardService() services.InterfaceDashboardService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dashboardService
}

// GetReportService 获取报表服务
func (c *ServiceContainer) GetReportService() services.InterfaceReportService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reportService
}

// GetNotificationService 获取告警推送服务
func (c *ServiceContainer) GetNotificationService() services.InterfaceNotificationService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notificationService
}

// GetRedisService 获取Redis缓存服务
func (c *ServiceContainer) GetRedisService() *services.RedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}
