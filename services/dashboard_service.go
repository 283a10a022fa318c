package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/models"
)

// DashboardOverview 总览统计数据
type DashboardOverview struct {
	TotalAssets        int64                      `json:"total_assets"`
	CriticalAssets     int64                      `json:"critical_assets"`
	AverageHealthScore int                        `json:"average_health_score"`
	ActiveAlerts       int64                      `json:"active_alerts"`
	RiskDistribution   map[models.RiskLevel]int   `json:"risk_distribution"`
	TypeDistribution   map[models.AssetType]int   `json:"type_distribution"`
}

// HeatmapAsset 热力图所需的精简资产行
type HeatmapAsset struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Type        models.AssetType   `json:"type"`
	Zone        string             `json:"zone"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	HealthScore int                `json:"health_score"`
	RiskLevel   models.RiskLevel   `json:"risk_level"`
	Status      models.AssetStatus `json:"status"`
}

// InterfaceDashboardService defines the dashboard service interface
type InterfaceDashboardService interface {
	GetOverview(user *models.User) (*DashboardOverview, error)
	GetHeatmapData(user *models.User) ([]HeatmapAsset, error)
}

// DashboardService 提供仪表盘统计服务，结果按用户范围做短时Redis缓存
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService
}

// NewDashboardService 创建一个新的仪表盘服务
func NewDashboardService(db *gorm.DB, cfg *config.Config, redisService *RedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// overviewCacheKey 每个角色+范围组合一份缓存
func overviewCacheKey(user *models.User) string {
	return fmt.Sprintf("dashboard:overview:%s:%s:%d", user.Role, user.AssignedZone, user.ID)
}

// 1 GetOverview 获取总览统计：资产总数、高风险数、平均健康指数、
// 待处理告警数、风险分布和类别分布
func (s *DashboardService) GetOverview(user *models.User) (*DashboardOverview, error) {
	if s.Redis != nil {
		var cached DashboardOverview
		if err := s.Redis.Get(overviewCacheKey(user), &cached); err == nil {
			return &cached, nil
		}
	}

	var assets []models.Asset
	if err := s.DB.Scopes(ScopeAssets(user)).Find(&assets).Error; err != nil {
		return nil, err
	}

	var activeAlerts int64
	if err := s.DB.Model(&models.Alert{}).Scopes(ScopeAlerts(user)).
		Where("status = ?", models.AlertStatusPending).
		Count(&activeAlerts).Error; err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		TotalAssets:  int64(len(assets)),
		ActiveAlerts: activeAlerts,
		RiskDistribution: map[models.RiskLevel]int{
			models.RiskLevelLow:    0,
			models.RiskLevelMedium: 0,
			models.RiskLevelHigh:   0,
		},
		TypeDistribution: map[models.AssetType]int{
			models.AssetTypeRoad:     0,
			models.AssetTypeWater:    0,
			models.AssetTypeBuilding: 0,
		},
	}

	healthSum := 0
	for _, a := range assets {
		overview.RiskDistribution[a.RiskLevel]++
		overview.TypeDistribution[a.Type]++
		healthSum += a.HealthScore
		if a.RiskLevel == models.RiskLevelHigh {
			overview.CriticalAssets++
		}
	}
	if len(assets) > 0 {
		overview.AverageHealthScore = int(float64(healthSum)/float64(len(assets)) + 0.5)
	}

	if s.Redis != nil {
		// 缓存失败不影响响应
		_ = s.Redis.Set(overviewCacheKey(user), overview, time.Minute)
	}

	return overview, nil
}

// 2 GetHeatmapData 获取热力图数据（用户范围内的全部资产精简行）
func (s *DashboardService) GetHeatmapData(user *models.User) ([]HeatmapAsset, error) {
	var assets []models.Asset
	if err := s.DB.Scopes(ScopeAssets(user)).
		Select("id", "name", "type", "zone", "latitude", "longitude", "health_score", "risk_level", "status").
		Find(&assets).Error; err != nil {
		return nil, err
	}

	rows := make([]HeatmapAsset, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, HeatmapAsset{
			ID:          a.ID,
			Name:        a.Name,
			Type:        a.Type,
			Zone:        a.Zone,
			Latitude:    a.Latitude,
			Longitude:   a.Longitude,
			HealthScore: a.HealthScore,
			RiskLevel:   a.RiskLevel,
			Status:      a.Status,
		})
	}

	return rows, nil
}
