package services

import (
	"testing"

	"github.com/projectteamlcet-droid/civic-eye/models"
)

// TestCalculateRiskLevel 测试健康评分到风险等级的边界映射
func TestCalculateRiskLevel(t *testing.T) {
	svc := NewRiskService()

	cases := []struct {
		healthScore int
		expected    models.RiskLevel
	}{
		{0, models.RiskLevelHigh},
		{40, models.RiskLevelHigh},
		{41, models.RiskLevelMedium},
		{70, models.RiskLevelMedium},
		{71, models.RiskLevelLow},
		{100, models.RiskLevelLow},
	}

	for _, c := range cases {
		if got := svc.CalculateRiskLevel(c.healthScore); got != c.expected {
			t.Errorf("CalculateRiskLevel(%d) = %s, 期望 %s", c.healthScore, got, c.expected)
		}
	}
}

// TestCalculateRiskLevelMonotonic 测试健康评分越高风险越低（单调不升）
func TestCalculateRiskLevelMonotonic(t *testing.T) {
	svc := NewRiskService()

	rank := map[models.RiskLevel]int{
		models.RiskLevelHigh:   2,
		models.RiskLevelMedium: 1,
		models.RiskLevelLow:    0,
	}

	prev := rank[svc.CalculateRiskLevel(0)]
	for score := 1; score <= 100; score++ {
		cur := rank[svc.CalculateRiskLevel(score)]
		if cur > prev {
			t.Fatalf("健康评分从 %d 到 %d 时风险等级上升", score-1, score)
		}
		prev = cur
	}
}

// TestDetermineSeverity 测试风险评分到严重程度的边界映射
func TestDetermineSeverity(t *testing.T) {
	svc := NewRiskService()

	cases := []struct {
		riskScore int
		expected  models.Severity
	}{
		{90, models.SeverityCritical},
		{100, models.SeverityCritical},
		{89, models.SeverityHigh},
		{70, models.SeverityHigh},
		{69, models.SeverityMedium},
		{50, models.SeverityMedium},
		{49, models.SeverityLow},
		{0, models.SeverityLow},
	}

	for _, c := range cases {
		if got := svc.DetermineSeverity(c.riskScore); got != c.expected {
			t.Errorf("DetermineSeverity(%d) = %s, 期望 %s", c.riskScore, got, c.expected)
		}
	}
}

// TestShouldTriggerAlert 测试告警触发条件：高风险或健康评分骤降
func TestShouldTriggerAlert(t *testing.T) {
	svc := NewRiskService()

	prev := func(v int) *int { return &v }

	cases := []struct {
		name      string
		riskScore int
		previous  *int
		expected  bool
	}{
		{"风险评分71触发", 71, nil, true},
		{"风险评分70不触发", 70, nil, false},
		{"无历史且低风险不触发", 50, nil, false},
		{"骤降超过20触发", 50, prev(95), true},
		{"下降恰好20不触发", 50, prev(70), false},
		{"高风险且有历史触发", 85, prev(85), true},
	}

	for _, c := range cases {
		if got := svc.ShouldTriggerAlert(c.riskScore, c.previous); got != c.expected {
			t.Errorf("%s: ShouldTriggerAlert(%d, %v) = %v, 期望 %v",
				c.name, c.riskScore, c.previous, got, c.expected)
		}
	}
}

// TestAnalysisScenarioComposition 测试一次分析各环节的组合语义：
// healthScore=72的资产检测出riskScore=85时，新健康评分15、风险等级high、
// 严重程度high，并且触发告警
func TestAnalysisScenarioComposition(t *testing.T) {
	svc := NewRiskService()

	previousScore := 72
	riskScore := 85

	newHealth := 100 - riskScore
	if newHealth < 0 {
		newHealth = 0
	}
	if newHealth != 15 {
		t.Fatalf("新健康评分 = %d, 期望 15", newHealth)
	}

	if got := svc.CalculateRiskLevel(newHealth); got != models.RiskLevelHigh {
		t.Errorf("CalculateRiskLevel(%d) = %s, 期望 %s", newHealth, got, models.RiskLevelHigh)
	}
	if got := svc.DetermineSeverity(riskScore); got != models.SeverityHigh {
		t.Errorf("DetermineSeverity(%d) = %s, 期望 %s", riskScore, got, models.SeverityHigh)
	}
	if !svc.ShouldTriggerAlert(riskScore, &previousScore) {
		t.Error("riskScore=85应当触发告警")
	}
}

// TestCalculateHealthTrend 测试健康趋势计算
func TestCalculateHealthTrend(t *testing.T) {
	svc := NewRiskService()

	records := func(scores ...int) []models.HealthRecord {
		rs := make([]models.HealthRecord, 0, len(scores))
		for _, s := range scores {
			rs = append(rs, models.HealthRecord{Score: s})
		}
		return rs
	}

	// 空历史和单条历史均视为平稳
	if got := svc.CalculateHealthTrend(nil); got != models.TrendStable {
		t.Errorf("空历史趋势 = %s, 期望 %s", got, models.TrendStable)
	}
	if got := svc.CalculateHealthTrend(records(80)); got != models.TrendStable {
		t.Errorf("单条历史趋势 = %s, 期望 %s", got, models.TrendStable)
	}

	// 最近三条均值比之前三条低10以上，判定为恶化
	if got := svc.CalculateHealthTrend(records(90, 88, 85, 60, 58, 55)); got != models.TrendDeclining {
		t.Errorf("恶化序列趋势 = %s, 期望 %s", got, models.TrendDeclining)
	}

	// 最近三条均值比之前三条高10以上，判定为好转
	if got := svc.CalculateHealthTrend(records(50, 52, 55, 80, 85, 88)); got != models.TrendImproving {
		t.Errorf("好转序列趋势 = %s, 期望 %s", got, models.TrendImproving)
	}

	// 波动在阈值以内，判定为平稳
	if got := svc.CalculateHealthTrend(records(70, 72, 71, 68, 74, 70)); got != models.TrendStable {
		t.Errorf("平稳序列趋势 = %s, 期望 %s", got, models.TrendStable)
	}

	// 不足六条时，前段取剩余记录
	if got := svc.CalculateHealthTrend(records(90, 60, 58, 55)); got != models.TrendDeclining {
		t.Errorf("短序列趋势 = %s, 期望 %s", got, models.TrendDeclining)
	}
}
