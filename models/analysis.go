package models

// AIAnalysis 表示一次模拟损伤检测的分析记录
type AIAnalysis struct {
	BaseModel
	AssetID         uint     `gorm:"index;not null" json:"asset_id"`
	Asset           *Asset   `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	ImageURL        *string  `gorm:"type:varchar(500)" json:"image_url"`              // 预留字段，当前不提供上传入口
	DamageType      string   `gorm:"type:varchar(100);not null" json:"damage_type"`   // 损伤类型，如"Pipe Corrosion"
	ConfidenceScore float64  `gorm:"not null" json:"confidence_score"`                // 置信度 0-100，保留一位小数
	RiskScore       int      `gorm:"not null" json:"risk_score"`                      // 风险评分 0-100
	Severity        Severity `gorm:"type:varchar(10);not null" json:"severity"`       // 由风险评分推导
	Explanation     string   `gorm:"type:varchar(500);not null" json:"explanation"`   // 检测说明
	AnalyzedByID    *uint    `gorm:"index" json:"analyzed_by_id"`                     // 发起分析的用户
	AnalyzedBy      *User    `gorm:"foreignKey:AnalyzedByID" json:"analyzed_by,omitempty"`
}
