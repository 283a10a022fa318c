package services

import (
	"github.com/projectteamlcet-droid/civic-eye/models"
)

// InterfaceRiskService defines the risk engine interface
type InterfaceRiskService interface {
	CalculateRiskLevel(healthScore int) models.RiskLevel
	DetermineSeverity(riskScore int) models.Severity
	ShouldTriggerAlert(riskScore int, previousScore *int) bool
	CalculateHealthTrend(history []models.HealthRecord) models.HealthTrend
}

// RiskService 风险评分引擎，将健康测量换算为风险分级并判定是否告警。
// 所有方法均为纯函数，不持有任何状态。
type RiskService struct{}

// NewRiskService 创建一个新的风险引擎服务
func NewRiskService() InterfaceRiskService {
	return &RiskService{}
}

// 1 CalculateRiskLevel 根据健康评分计算资产风险等级
// 健康评分 <= 40 为高风险，41-70 为中风险，> 70 为低风险
func (s *RiskService) CalculateRiskLevel(healthScore int) models.RiskLevel {
	if healthScore <= 40 {
		return models.RiskLevelHigh
	}
	if healthScore <= 70 {
		return models.RiskLevelMedium
	}
	return models.RiskLevelLow
}

// 2 DetermineSeverity 根据风险评分判定事件严重程度
// 注意：健康评分分段和风险评分分段是两套独立的刻度，不能混用
func (s *RiskService) DetermineSeverity(riskScore int) models.Severity {
	if riskScore >= 90 {
		return models.SeverityCritical
	}
	if riskScore >= 70 {
		return models.SeverityHigh
	}
	if riskScore >= 50 {
		return models.SeverityMedium
	}
	return models.SeverityLow
}

// 3 ShouldTriggerAlert 判定一次测量是否需要触发告警
// 风险评分 > 70 时无条件触发；已知上次健康评分时，
// previousScore - (100 - riskScore) > 20 也触发（健康骤降超过20分）
func (s *RiskService) ShouldTriggerAlert(riskScore int, previousScore *int) bool {
	if riskScore > 70 {
		return true
	}
	if previousScore != nil && *previousScore-(100-riskScore) > 20 {
		return true
	}
	return false
}

// 4 CalculateHealthTrend 根据健康记录序列计算走势
// 取最近3条与其前3条分别求均值，差值超过10分判定为declining/improving
func (s *RiskService) CalculateHealthTrend(history []models.HealthRecord) models.HealthTrend {
	n := len(history)
	if n < 2 {
		return models.TrendStable
	}

	recentStart := n - 3
	if recentStart < 0 {
		recentStart = 0
	}
	olderStart := n - 6
	if olderStart < 0 {
		olderStart = 0
	}

	recent := history[recentStart:]
	older := history[olderStart:recentStart]
	if len(older) == 0 {
		return models.TrendStable
	}

	avgRecent := averageScore(recent)
	avgOlder := averageScore(older)

	if avgRecent < avgOlder-10 {
		return models.TrendDeclining
	}
	if avgRecent > avgOlder+10 {
		return models.TrendImproving
	}
	return models.TrendStable
}

// averageScore 计算健康记录的平均评分
func averageScore(records []models.HealthRecord) float64 {
	sum := 0
	for _, r := range records {
		sum += r.Score
	}
	return float64(sum) / float64(len(records))
}
