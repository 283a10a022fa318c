package services

import (
	"testing"

	"github.com/projectteamlcet-droid/civic-eye/models"
)

// TestDemoAssetsConsistent 验证演示资产的风险等级与健康评分的
// 分级规则一致，且初始健康记录与当前评分一致
func TestDemoAssetsConsistent(t *testing.T) {
	risk := NewRiskService()

	assets := demoAssets(1)
	if len(assets) == 0 {
		t.Fatal("演示资产不应为空")
	}

	for _, asset := range assets {
		if asset.HealthScore < 0 || asset.HealthScore > 100 {
			t.Errorf("%s: 健康评分 %d 超出范围", asset.Name, asset.HealthScore)
		}
		if want := risk.CalculateRiskLevel(asset.HealthScore); asset.RiskLevel != want {
			t.Errorf("%s: 风险等级 %s 与评分 %d 不一致, 期望 %s",
				asset.Name, asset.RiskLevel, asset.HealthScore, want)
		}
		if len(asset.History) != 1 {
			t.Fatalf("%s: 期望一条初始健康记录, 实际 %d 条", asset.Name, len(asset.History))
		}
		record := asset.History[0]
		if record.Score != asset.HealthScore || record.RiskLevel != asset.RiskLevel {
			t.Errorf("%s: 初始健康记录 (%d, %s) 与资产 (%d, %s) 不一致",
				asset.Name, record.Score, record.RiskLevel, asset.HealthScore, asset.RiskLevel)
		}
		if record.Source != models.SourceManual {
			t.Errorf("%s: 初始记录来源应为manual, 实际 %s", asset.Name, record.Source)
		}
	}
}

// TestDemoAlertsConsistent 验证演示告警的快照字段和严重程度派生
func TestDemoAlertsConsistent(t *testing.T) {
	risk := NewRiskService()

	assets := demoAssets(1)
	alerts := demoAlerts(assets)
	if len(alerts) == 0 {
		t.Fatal("演示告警不应为空")
	}

	names := make(map[string]string, len(assets))
	for _, asset := range assets {
		names[asset.Name] = asset.Zone
	}

	for _, alert := range alerts {
		zone, ok := names[alert.AssetName]
		if !ok {
			t.Errorf("告警引用了不存在的资产 %s", alert.AssetName)
			continue
		}
		if alert.Zone != zone {
			t.Errorf("%s: 片区快照 %s 与资产片区 %s 不一致", alert.AssetName, alert.Zone, zone)
		}
		if want := risk.DetermineSeverity(alert.RiskScore); alert.Severity != want {
			t.Errorf("%s: 严重程度 %s 与风险评分 %d 不一致, 期望 %s",
				alert.AssetName, alert.Severity, alert.RiskScore, want)
		}
		if alert.Status != models.AlertStatusPending && alert.Status != models.AlertStatusResolved {
			t.Errorf("%s: 非法状态 %s", alert.AssetName, alert.Status)
		}
	}
}
