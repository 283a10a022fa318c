package services

import (
	"testing"

	"github.com/projectteamlcet-droid/civic-eye/models"
)

// TestUserCanSeeAsset 测试资产数据范围谓词
func TestUserCanSeeAsset(t *testing.T) {
	assetA := &models.Asset{Zone: "Zone-A"}
	assetA.ID = 1
	assetB := &models.Asset{Zone: "Zone-B"}
	assetB.ID = 2

	admin := &models.User{Role: models.RoleSuperAdmin}
	officer := &models.User{Role: models.RoleZoneOfficer, AssignedZone: "Zone-A"}
	inspector := &models.User{
		Role:           models.RoleFieldInspector,
		AssignedAssets: []models.Asset{*assetA},
	}
	idleInspector := &models.User{Role: models.RoleFieldInspector}
	stranger := &models.User{Role: models.UserRole("Contractor"), AssignedZone: "Zone-A"}

	cases := []struct {
		name     string
		user     *models.User
		asset    *models.Asset
		expected bool
	}{
		{"管理员可见任意资产", admin, assetB, true},
		{"片区负责人可见本片区资产", officer, assetA, true},
		{"片区负责人不可见其他片区资产", officer, assetB, false},
		{"巡检员可见被指派资产", inspector, assetA, true},
		{"巡检员不可见未指派资产", inspector, assetB, false},
		{"未指派巡检员不可见任何资产", idleInspector, assetA, false},
		{"未知角色不可见任何资产", stranger, assetA, false},
	}

	for _, c := range cases {
		if got := UserCanSeeAsset(c.user, c.asset); got != c.expected {
			t.Errorf("%s: 结果 %v, 期望 %v", c.name, got, c.expected)
		}
	}
}

// TestUserCanSeeAlert 测试告警数据范围谓词
func TestUserCanSeeAlert(t *testing.T) {
	alertA := &models.Alert{Zone: "Zone-A"}
	alertB := &models.Alert{Zone: "Zone-B"}

	admin := &models.User{Role: models.RoleSuperAdmin}
	officer := &models.User{Role: models.RoleZoneOfficer, AssignedZone: "Zone-A"}
	inspector := &models.User{Role: models.RoleFieldInspector, AssignedZone: "Zone-A"}
	stranger := &models.User{Role: models.UserRole("Contractor"), AssignedZone: "Zone-A"}

	cases := []struct {
		name     string
		user     *models.User
		alert    *models.Alert
		expected bool
	}{
		{"管理员可见任意告警", admin, alertB, true},
		{"片区负责人可见本片区告警", officer, alertA, true},
		{"片区负责人不可见其他片区告警", officer, alertB, false},
		{"巡检员按片区匹配告警", inspector, alertA, true},
		{"巡检员不可见其他片区告警", inspector, alertB, false},
		{"未知角色不可见任何告警", stranger, alertA, false},
	}

	for _, c := range cases {
		if got := UserCanSeeAlert(c.user, c.alert); got != c.expected {
			t.Errorf("%s: 结果 %v, 期望 %v", c.name, got, c.expected)
		}
	}
}
