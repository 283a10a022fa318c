package services

import (
	"math/rand"
	"testing"

	"github.com/projectteamlcet-droid/civic-eye/models"
)

// TestSimulateAnalysisRanges 测试模拟检测输出始终落在约定区间内
func TestSimulateAnalysisRanges(t *testing.T) {
	svc := NewAIServiceWithSource(NewRiskService(), rand.NewSource(42))

	for i := 0; i < 500; i++ {
		result := svc.SimulateAnalysis(models.AssetTypeRoad)

		if result.ConfidenceScore < 70 || result.ConfidenceScore > 98 {
			t.Fatalf("置信度 %v 超出 [70, 98]", result.ConfidenceScore)
		}
		if result.RiskScore < 30 || result.RiskScore > 95 {
			t.Fatalf("风险评分 %d 超出 [30, 95]", result.RiskScore)
		}
		if expected := 100 - result.RiskScore; result.NewHealthScore != expected {
			t.Fatalf("新健康评分 %d, 期望 %d", result.NewHealthScore, expected)
		}
		if result.NewHealthScore < 0 {
			t.Fatalf("新健康评分 %d 为负", result.NewHealthScore)
		}
		if result.DamageType == "" || result.Explanation == "" {
			t.Fatal("损伤类型和说明不能为空")
		}
	}
}

// TestSimulateAnalysisDeterministic 测试相同随机源产生相同结果序列
func TestSimulateAnalysisDeterministic(t *testing.T) {
	a := NewAIServiceWithSource(NewRiskService(), rand.NewSource(7))
	b := NewAIServiceWithSource(NewRiskService(), rand.NewSource(7))

	for i := 0; i < 20; i++ {
		ra := a.SimulateAnalysis(models.AssetTypeWater)
		rb := b.SimulateAnalysis(models.AssetTypeWater)
		if ra != rb {
			t.Fatalf("第%d次结果不一致: %+v != %+v", i, ra, rb)
		}
	}
}

// TestSimulateAnalysisSeverityConsistent 测试严重程度与风险评分的换算一致
func TestSimulateAnalysisSeverityConsistent(t *testing.T) {
	risk := NewRiskService()
	svc := NewAIServiceWithSource(risk, rand.NewSource(99))

	for i := 0; i < 200; i++ {
		result := svc.SimulateAnalysis(models.AssetTypeBuilding)
		if expected := risk.DetermineSeverity(result.RiskScore); result.Severity != expected {
			t.Fatalf("风险评分 %d 的严重程度 = %s, 期望 %s",
				result.RiskScore, result.Severity, expected)
		}
	}
}

// TestSimulateAnalysisUnknownType 测试未知类别回退到道路损伤档案
func TestSimulateAnalysisUnknownType(t *testing.T) {
	svc := NewAIServiceWithSource(NewRiskService(), rand.NewSource(1))

	roadTypes := make(map[string]bool)
	for _, d := range damageTypes[models.AssetTypeRoad] {
		roadTypes[d.Type] = true
	}

	for i := 0; i < 50; i++ {
		result := svc.SimulateAnalysis(models.AssetType("bridge"))
		if !roadTypes[result.DamageType] {
			t.Fatalf("未知类别产出了非道路损伤类型: %s", result.DamageType)
		}
	}
}

// TestDamageArchetypesPerType 测试每种资产类别都有各自的损伤档案
func TestDamageArchetypesPerType(t *testing.T) {
	for _, assetType := range []models.AssetType{
		models.AssetTypeRoad, models.AssetTypeWater, models.AssetTypeBuilding,
	} {
		archetypes, ok := damageTypes[assetType]
		if !ok || len(archetypes) == 0 {
			t.Fatalf("类别 %s 缺少损伤档案", assetType)
		}
		for _, a := range archetypes {
			if len(a.Explanations) == 0 {
				t.Fatalf("类别 %s 的损伤 %s 缺少说明文案", assetType, a.Type)
			}
		}
	}
}
