package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/models"
	"github.com/projectteamlcet-droid/civic-eye/utils"
)

// demoAccount 演示账户的入库前形态，密码为明文，写库时哈希
type demoAccount struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
	Zone     string
}

// demoAccounts 演示账户：管理员、片区负责人、巡检员各一个
func demoAccounts() []demoAccount {
	return []demoAccount{
		{Name: "City Admin", Email: "admin@civicai.com", Password: "admin123", Role: models.RoleSuperAdmin},
		{Name: "Zone A Officer", Email: "zonea@civicai.com", Password: "officer123", Role: models.RoleZoneOfficer, Zone: "Zone A"},
		{Name: "Field Inspector 1", Email: "inspector@civicai.com", Password: "inspector123", Role: models.RoleFieldInspector, Zone: "Zone A"},
	}
}

// demoAssets 演示资产，风险等级由健康评分推导，
// 每个资产带一条与当前评分一致的初始健康记录
func demoAssets(createdByID uint) []models.Asset {
	risk := NewRiskService()
	now := time.Now()

	seed := []struct {
		name      string
		assetType models.AssetType
		zone      string
		latitude  float64
		longitude float64
		score     int
	}{
		{"MG Road Flyover", models.AssetTypeRoad, "Zone A", 12.9716, 77.5946, 34},
		{"Koramangala Water Main", models.AssetTypeWater, "Zone B", 12.9352, 77.6245, 72},
		{"Indiranagar Bridge", models.AssetTypeRoad, "Zone A", 12.9784, 77.6408, 88},
		{"Whitefield Treatment Plant", models.AssetTypeWater, "Zone C", 12.9698, 77.7500, 45},
		{"Jayanagar Community Hall", models.AssetTypeBuilding, "Zone B", 12.9250, 77.5830, 91},
		{"Hebbal Flyover Section B", models.AssetTypeRoad, "Zone A", 13.0358, 77.5970, 28},
	}

	assets := make([]models.Asset, 0, len(seed))
	for _, s := range seed {
		level := risk.CalculateRiskLevel(s.score)
		assets = append(assets, models.Asset{
			Name:               s.name,
			Type:               s.assetType,
			Zone:               s.zone,
			Latitude:           s.latitude,
			Longitude:          s.longitude,
			HealthScore:        s.score,
			RiskLevel:          level,
			LastInspectionDate: now,
			Status:             models.AssetStatusGood,
			CreatedByID:        createdByID,
			History: []models.HealthRecord{{
				Score:      s.score,
				RiskLevel:  level,
				RecordedAt: now,
				Source:     models.SourceManual,
			}},
		})
	}
	return assets
}

// demoAlerts 演示告警，资产名称和片区按创建时刻快照冗余
func demoAlerts(assets []models.Asset) []models.Alert {
	risk := NewRiskService()

	seed := []struct {
		assetIdx  int
		riskScore int
		alertType string
		status    models.AlertStatus
	}{
		{0, 89, "Structural Crack Detected", models.AlertStatusPending},
		{5, 94, "Load Bearing Failure Risk", models.AlertStatusPending},
		{3, 72, "Water Quality Below Threshold", models.AlertStatusResolved},
	}

	alerts := make([]models.Alert, 0, len(seed))
	for _, s := range seed {
		asset := assets[s.assetIdx]
		alerts = append(alerts, models.Alert{
			AssetID:     asset.ID,
			AssetName:   asset.Name,
			Zone:        asset.Zone,
			RiskScore:   s.riskScore,
			AlertType:   s.alertType,
			Severity:    risk.DetermineSeverity(s.riskScore),
			Status:      s.status,
			Description: fmt.Sprintf("%s detected on %s. Risk score: %d.", s.alertType, asset.Name, s.riskScore),
		})
	}
	return alerts
}

// SeedDemoData 向空库写入演示数据（账户、资产、告警），
// 库中已有资产时跳过，避免重复写入
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := make([]models.User, 0, len(demoAccounts()))
	for _, account := range demoAccounts() {
		hashed, err := utils.HashPassword(account.Password)
		if err != nil {
			return err
		}
		users = append(users, models.User{
			Name:         account.Name,
			Email:        account.Email,
			Password:     hashed,
			Role:         account.Role,
			AssignedZone: account.Zone,
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	assets := demoAssets(users[0].ID)
	if err := db.Create(&assets).Error; err != nil {
		return err
	}

	// 为巡检员指派Zone A的三个资产
	inspector := &users[2]
	assigned := []models.Asset{assets[0], assets[2], assets[5]}
	if err := db.Model(inspector).Association("AssignedAssets").Append(assigned); err != nil {
		return err
	}

	alerts := demoAlerts(assets)
	if err := db.Create(&alerts).Error; err != nil {
		return err
	}

	return nil
}
