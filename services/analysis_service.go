package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/models"
)

// UpdatedAssetSummary 分析完成后返回的资产摘要
type UpdatedAssetSummary struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	HealthScore int              `json:"health_score"`
	RiskLevel   models.RiskLevel `json:"risk_level"`
}

// AnalysisOutcome 一次分析请求的完整结果
type AnalysisOutcome struct {
	Analysis       models.AIAnalysis   `json:"analysis"`
	UpdatedAsset   UpdatedAssetSummary `json:"updated_asset"`
	AlertTriggered bool                `json:"alert_triggered"`
	Alert          *models.Alert       `json:"alert"`
}

// InterfaceAnalysisService defines the analysis orchestration interface
type InterfaceAnalysisService interface {
	AnalyzeAsset(assetID uint, analyzedBy *uint) (*AnalysisOutcome, error)
	GetAnalysisHistory(assetID uint) ([]models.AIAnalysis, error)
}

// AnalysisService 编排一次完整的分析流程：
// 加载资产 -> 模拟检测 -> 风险分级 -> 持久化 -> 按策略告警 -> 返回结果。
// 资产字段更新、历史追加、分析记录和告警创建在同一事务内完成，
// 任何一步持久化失败都会整体回滚，不会留下半更新状态。
type AnalysisService struct {
	DB           *gorm.DB
	Config       *config.Config
	Risk         InterfaceRiskService
	AI           InterfaceAIService
	Alert        InterfaceAlertService
	Notification InterfaceNotificationService
}

// NewAnalysisService 创建一个新的分析编排服务
func NewAnalysisService(
	db *gorm.DB,
	cfg *config.Config,
	risk InterfaceRiskService,
	ai InterfaceAIService,
	alert InterfaceAlertService,
	notification InterfaceNotificationService,
) InterfaceAnalysisService {
	return &AnalysisService{
		DB:           db,
		Config:       cfg,
		Risk:         risk,
		AI:           ai,
		Alert:        alert,
		Notification: notification,
	}
}

// 1 AnalyzeAsset 对指定资产执行一次模拟AI分析
func (s *AnalysisService) AnalyzeAsset(assetID uint, analyzedBy *uint) (*AnalysisOutcome, error) {
	var outcome AnalysisOutcome

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 行级锁串行化同一资产的并发分析，
		// 保证previousScore读取与历史追加的一致性
		var asset models.Asset
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&asset, assetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return err
		}

		// 记录变更前的健康评分，供告警策略使用
		previousScore := asset.HealthScore

		// 模拟AI检测
		result := s.AI.SimulateAnalysis(asset.Type)

		// 保存分析记录
		analysis := models.AIAnalysis{
			AssetID:         asset.ID,
			DamageType:      result.DamageType,
			ConfidenceScore: result.ConfidenceScore,
			RiskScore:       result.RiskScore,
			Severity:        result.Severity,
			Explanation:     result.Explanation,
			AnalyzedByID:    analyzedBy,
		}
		if err := tx.Create(&analysis).Error; err != nil {
			return err
		}

		// 更新资产状态并追加健康记录
		newRiskLevel := s.Risk.CalculateRiskLevel(result.NewHealthScore)
		now := time.Now()
		if err := tx.Model(&asset).Updates(map[string]interface{}{
			"health_score":         result.NewHealthScore,
			"risk_level":           newRiskLevel,
			"last_inspection_date": now,
		}).Error; err != nil {
			return err
		}

		record := models.HealthRecord{
			AssetID:    asset.ID,
			Score:      result.NewHealthScore,
			RiskLevel:  newRiskLevel,
			RecordedAt: now,
			Source:     models.SourceAIAnalysis,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		asset.HealthScore = result.NewHealthScore
		asset.RiskLevel = newRiskLevel

		// 按策略判定是否触发告警
		var alert *models.Alert
		if s.Risk.ShouldTriggerAlert(result.RiskScore, &previousScore) {
			created, err := s.Alert.CreateAlertForAsset(tx, &asset, result.RiskScore, result.DamageType)
			if err != nil {
				return err
			}
			alert = created
		}

		outcome = AnalysisOutcome{
			Analysis: analysis,
			UpdatedAsset: UpdatedAssetSummary{
				ID:          asset.ID,
				Name:        asset.Name,
				HealthScore: asset.HealthScore,
				RiskLevel:   asset.RiskLevel,
			},
			AlertTriggered: alert != nil,
			Alert:          alert,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 事务提交后再推送通知，推送失败只记日志、不影响分析结果
	if outcome.Alert != nil && s.Notification != nil {
		if err := s.Notification.PublishAlert(outcome.Alert); err != nil {
			config.Warning("告警推送失败: %v", err)
		}
	}

	return &outcome, nil
}

// 2 GetAnalysisHistory 获取资产最近的分析记录，最多20条
func (s *AnalysisService) GetAnalysisHistory(assetID uint) ([]models.AIAnalysis, error) {
	var analyses []models.AIAnalysis
	if err := s.DB.Where("asset_id = ?", assetID).
		Order("created_at DESC").
		Limit(20).
		Preload("AnalyzedBy").
		Find(&analyses).Error; err != nil {
		return nil, err
	}

	return analyses, nil
}
