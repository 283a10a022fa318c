package models

// UserRole 表示系统内的封闭角色集合
type UserRole string

const (
	RoleSuperAdmin     UserRole = "SuperAdmin"     // 超级管理员，不受数据范围限制
	RoleZoneOfficer    UserRole = "ZoneOfficer"    // 片区负责人，只能访问所辖片区
	RoleFieldInspector UserRole = "FieldInspector" // 巡检员，只能访问被指派的资产
)

// User 表示系统用户
type User struct {
	BaseModel
	Name         string   `gorm:"type:varchar(100);not null" json:"name"`
	Email        string   `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password     string   `gorm:"type:varchar(100);not null" json:"-"` // bcrypt哈希，不参与序列化
	Role         UserRole `gorm:"type:varchar(20);not null;default:'FieldInspector'" json:"role"`
	AssignedZone string   `gorm:"type:varchar(100)" json:"assigned_zone"` // ZoneOfficer所辖片区

	// 关联关系 - 巡检员与被指派资产为多对多
	AssignedAssets []Asset `gorm:"many2many:user_asset_assignments;" json:"assigned_assets,omitempty"`
}

// AssignedAssetIDs 返回被指派资产的ID列表（未指派时为空切片）
func (u *User) AssignedAssetIDs() []uint {
	ids := make([]uint, 0, len(u.AssignedAssets))
	for _, a := range u.AssignedAssets {
		ids = append(ids, a.ID)
	}
	return ids
}
