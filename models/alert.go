package models

// Severity 表示单次风险事件的四级严重程度
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AlertStatus 告警状态：pending（初始）-> resolved（终态），不允许其他流转
type AlertStatus string

const (
	AlertStatusPending  AlertStatus = "pending"
	AlertStatusResolved AlertStatus = "resolved"
)

// Alert 表示由风险引擎触发的告警记录。
// AssetName 和 Zone 在创建时从资产冗余拷贝，之后资产变更不再回写。
type Alert struct {
	BaseModel
	AssetID     uint        `gorm:"index;not null" json:"asset_id"`
	Asset       *Asset      `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	AssetName   string      `gorm:"type:varchar(200);not null" json:"asset_name"`           // 创建时的资产名称快照
	Zone        string      `gorm:"type:varchar(100);not null;index" json:"zone"`           // 创建时的片区快照
	RiskScore   int         `gorm:"not null" json:"risk_score"`                             // 风险评分 0-100
	AlertType   string      `gorm:"type:varchar(100);not null" json:"alert_type"`           // 损伤类型，如"Pothole"
	Severity    Severity    `gorm:"type:varchar(10);not null;index" json:"severity"`        // low, medium, high, critical
	Status      AlertStatus `gorm:"type:varchar(10);default:'pending';index" json:"status"` // pending, resolved
	Description string      `gorm:"type:varchar(500)" json:"description"`
}
