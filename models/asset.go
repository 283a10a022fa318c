package models

import (
	"time"
)

// AssetType 表示基础设施资产的类别
type AssetType string

const (
	AssetTypeRoad     AssetType = "road"
	AssetTypeWater    AssetType = "water"
	AssetTypeBuilding AssetType = "building"
)

// RiskLevel 表示资产当前状况的三级风险分类
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// AssetStatus 表示资产的运维状态（独立标签，不由风险引擎推导）
type AssetStatus string

const (
	AssetStatusGood        AssetStatus = "good"
	AssetStatusMonitoring  AssetStatus = "monitoring"
	AssetStatusScheduled   AssetStatus = "scheduled"
	AssetStatusUnderReview AssetStatus = "under_review"
	AssetStatusNeedsRepair AssetStatus = "needs_repair"
	AssetStatusCritical    AssetStatus = "critical"
	AssetStatusUrgent      AssetStatus = "urgent"
)

// HealthTrend 表示资产健康走势的定性判断
type HealthTrend string

const (
	TrendDeclining HealthTrend = "declining"
	TrendStable    HealthTrend = "stable"
	TrendImproving HealthTrend = "improving"
)

// HealthRecordSource 健康记录来源
type HealthRecordSource string

const (
	SourceManual     HealthRecordSource = "manual"
	SourceAIAnalysis HealthRecordSource = "ai_analysis"
)

// Asset 表示市政基础设施资产（道路、供水、建筑）
type Asset struct {
	BaseModel
	Name               string      `gorm:"type:varchar(200);not null" json:"name"`                      // 资产名称，如"NH-48 Service Road"
	Type               AssetType   `gorm:"type:varchar(20);not null;index" json:"type"`                 // 类别：road, water, building
	Zone               string      `gorm:"type:varchar(100);not null;index" json:"zone"`                // 所属片区，用于权限过滤
	Latitude           float64     `gorm:"not null" json:"latitude"`                                    // 纬度 [-90, 90]
	Longitude          float64     `gorm:"not null" json:"longitude"`                                   // 经度 [-180, 180]
	HealthScore        int         `gorm:"not null;default:100" json:"health_score"`                    // 健康评分 0-100，分数越高状况越好
	RiskLevel          RiskLevel   `gorm:"type:varchar(10);default:'low';index" json:"risk_level"`      // 由健康评分推导，风险引擎为唯一权威来源
	LastInspectionDate time.Time   `json:"last_inspection_date"`                                        // 最近一次巡检时间
	Status             AssetStatus `gorm:"type:varchar(20);default:'good'" json:"status"`               // 运维状态
	CreatedByID        uint        `gorm:"index" json:"created_by_id"`                                  // 创建人
	CreatedBy          *User       `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`

	// 关联关系
	History []HealthRecord `gorm:"foreignKey:AssetID" json:"history,omitempty"` // 健康记录序列，只追加、不修改
}

// HealthRecord 表示一次健康测量记录。记录一旦写入即不可变。
type HealthRecord struct {
	ID         uint               `gorm:"primaryKey" json:"id"`
	AssetID    uint               `gorm:"index;not null" json:"asset_id"`
	Score      int                `gorm:"not null" json:"score"`                              // 健康评分 0-100
	RiskLevel  RiskLevel          `gorm:"type:varchar(10);not null" json:"risk_level"`        // 记录时刻的风险等级
	RecordedAt time.Time          `json:"recorded_at"`
	Source     HealthRecordSource `gorm:"type:varchar(20);default:'manual'" json:"source"` // manual | ai_analysis
}
