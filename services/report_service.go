package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/models"
)

// ZoneSummary 单个片区的汇总指标
type ZoneSummary struct {
	Total     int `json:"total"`
	AvgHealth int `json:"avg_health"`
	Critical  int `json:"critical"`
}

// PriorityAsset 优先处置排名中的一行
type PriorityAsset struct {
	Rank        int                `json:"rank"`
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Type        models.AssetType   `json:"type"`
	Zone        string             `json:"zone"`
	HealthScore int                `json:"health_score"`
	RiskLevel   models.RiskLevel   `json:"risk_level"`
	Status      models.AssetStatus `json:"status"`
	Trend       models.HealthTrend `json:"trend"`
}

// ReportSummary 报表汇总数据
type ReportSummary struct {
	TotalAssets               int                    `json:"total_assets"`
	CriticalCount             int                    `json:"critical_count"`
	InfrastructureHealthIndex int                    `json:"infrastructure_health_index"`
	PendingAlerts             int64                  `json:"pending_alerts"`
	PriorityRanking           []PriorityAsset        `json:"priority_ranking"`
	ZoneComparison            map[string]ZoneSummary `json:"zone_comparison"`
}

// InterfaceReportService defines the report service interface
type InterfaceReportService interface {
	GetSummary(user *models.User) (*ReportSummary, error)
}

// ReportService 提供报表汇总服务，结果做短时Redis缓存
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
	Risk   InterfaceRiskService
	Redis  *RedisService
}

// NewReportService 创建一个新的报表服务
func NewReportService(db *gorm.DB, cfg *config.Config, risk InterfaceRiskService, redisService *RedisService) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
		Risk:   risk,
		Redis:  redisService,
	}
}

// 1 GetSummary 生成报表汇总：健康指数、片区对比、
// 最差资产的优先处置排名（含走势）、待处理告警数
func (s *ReportService) GetSummary(user *models.User) (*ReportSummary, error) {
	cacheKey := fmt.Sprintf("report:summary:%s:%s:%d", user.Role, user.AssignedZone, user.ID)
	if s.Redis != nil {
		var cached ReportSummary
		if err := s.Redis.Get(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	// 健康评分升序，最差的资产排在前面
	var assets []models.Asset
	if err := s.DB.Scopes(ScopeAssets(user)).
		Order("health_score ASC").
		Find(&assets).Error; err != nil {
		return nil, err
	}

	var pendingAlerts int64
	if err := s.DB.Model(&models.Alert{}).Scopes(ScopeAlerts(user)).
		Where("status = ?", models.AlertStatusPending).
		Count(&pendingAlerts).Error; err != nil {
		return nil, err
	}

	summary := &ReportSummary{
		TotalAssets:    len(assets),
		PendingAlerts:  pendingAlerts,
		ZoneComparison: make(map[string]ZoneSummary),
	}

	// 片区对比
	healthSum := 0
	zoneHealthSum := make(map[string]int)
	for _, a := range assets {
		healthSum += a.HealthScore
		z := summary.ZoneComparison[a.Zone]
		z.Total++
		zoneHealthSum[a.Zone] += a.HealthScore
		if a.RiskLevel == models.RiskLevelHigh {
			z.Critical++
			summary.CriticalCount++
		}
		summary.ZoneComparison[a.Zone] = z
	}
	for zone, z := range summary.ZoneComparison {
		z.AvgHealth = int(float64(zoneHealthSum[zone])/float64(z.Total) + 0.5)
		summary.ZoneComparison[zone] = z
	}
	if len(assets) > 0 {
		summary.InfrastructureHealthIndex = int(float64(healthSum)/float64(len(assets)) + 0.5)
	}

	// 优先处置排名：最差的前10个资产，附带健康走势
	top := len(assets)
	if top > 10 {
		top = 10
	}
	summary.PriorityRanking = make([]PriorityAsset, 0, top)
	for i := 0; i < top; i++ {
		a := assets[i]

		var history []models.HealthRecord
		if err := s.DB.Where("asset_id = ?", a.ID).
			Order("id ASC").
			Find(&history).Error; err != nil {
			return nil, err
		}

		summary.PriorityRanking = append(summary.PriorityRanking, PriorityAsset{
			Rank:        i + 1,
			ID:          a.ID,
			Name:        a.Name,
			Type:        a.Type,
			Zone:        a.Zone,
			HealthScore: a.HealthScore,
			RiskLevel:   a.RiskLevel,
			Status:      a.Status,
			Trend:       s.Risk.CalculateHealthTrend(history),
		})
	}

	if s.Redis != nil {
		_ = s.Redis.Set(cacheKey, summary, time.Minute)
	}

	return summary, nil
}
