package services

import (
	"testing"
)

// TestSanitizeAssetUpdates 验证更新字段白名单：
// risk_level等派生字段和未知列不允许从外部写入
func TestSanitizeAssetUpdates(t *testing.T) {
	updates := map[string]interface{}{
		"name":          "NH-48 Service Road",
		"health_score":  35,
		"status":        "needs_repair",
		"risk_level":    "low",
		"id":            999,
		"created_by_id": 1,
		"no_such_col":   "x",
	}

	clean := sanitizeAssetUpdates(updates)

	for _, column := range []string{"risk_level", "id", "created_by_id", "no_such_col"} {
		if _, ok := clean[column]; ok {
			t.Errorf("字段 %s 不应通过白名单", column)
		}
	}
	for _, column := range []string{"name", "health_score", "status"} {
		if _, ok := clean[column]; !ok {
			t.Errorf("字段 %s 应当保留", column)
		}
	}
}

// TestSanitizeAssetUpdatesEmpty 空更新不应报错
func TestSanitizeAssetUpdatesEmpty(t *testing.T) {
	if got := sanitizeAssetUpdates(map[string]interface{}{}); len(got) != 0 {
		t.Errorf("期望空结果, 实际 %v", got)
	}
}
