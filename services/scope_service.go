package services

import (
	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/models"
)

// 角色数据范围过滤。封闭角色集合逐一穷举，
// 未知角色一律不匹配任何数据，而不是放行。

// ScopeAssets 返回按用户角色限制资产可见范围的gorm查询范围
// SuperAdmin不受限；ZoneOfficer限定所辖片区；FieldInspector限定被指派资产
func ScopeAssets(user *models.User) func(*gorm.DB) *gorm.DB {
	switch user.Role {
	case models.RoleSuperAdmin:
		return func(db *gorm.DB) *gorm.DB {
			return db
		}
	case models.RoleZoneOfficer:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("zone = ?", user.AssignedZone)
		}
	case models.RoleFieldInspector:
		ids := user.AssignedAssetIDs()
		return func(db *gorm.DB) *gorm.DB {
			if len(ids) == 0 {
				return db.Where("1 = 0")
			}
			return db.Where("id IN ?", ids)
		}
	default:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("1 = 0")
		}
	}
}

// ScopeAlerts 返回按用户角色限制告警可见范围的gorm查询范围
// 告警没有按巡检员指派的维度，FieldInspector回退到片区匹配
func ScopeAlerts(user *models.User) func(*gorm.DB) *gorm.DB {
	switch user.Role {
	case models.RoleSuperAdmin:
		return func(db *gorm.DB) *gorm.DB {
			return db
		}
	case models.RoleZoneOfficer, models.RoleFieldInspector:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("zone = ?", user.AssignedZone)
		}
	default:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("1 = 0")
		}
	}
}

// UserCanSeeAsset 判断用户是否可以访问指定资产（与ScopeAssets语义一致的纯谓词）
func UserCanSeeAsset(user *models.User, asset *models.Asset) bool {
	switch user.Role {
	case models.RoleSuperAdmin:
		return true
	case models.RoleZoneOfficer:
		return asset.Zone == user.AssignedZone
	case models.RoleFieldInspector:
		for _, id := range user.AssignedAssetIDs() {
			if id == asset.ID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// UserCanSeeAlert 判断用户是否可以访问指定告警
func UserCanSeeAlert(user *models.User, alert *models.Alert) bool {
	switch user.Role {
	case models.RoleSuperAdmin:
		return true
	case models.RoleZoneOfficer, models.RoleFieldInspector:
		return alert.Zone == user.AssignedZone
	default:
		return false
	}
}
