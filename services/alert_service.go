package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/models"
)

// 告警服务的业务错误
var (
	ErrAlertNotFound      = errors.New("告警不存在")
	ErrAlertStatusInvalid = errors.New("告警状态只能是pending或resolved")
)

// AlertFilter 告警列表的过滤条件
type AlertFilter struct {
	Status   string
	Severity string
}

// InterfaceAlertService defines the alert service interface
type InterfaceAlertService interface {
	GetAllAlerts(user *models.User, filter AlertFilter, page, limit int) ([]models.Alert, int64, error)
	GetCriticalAlerts(user *models.User) ([]models.Alert, error)
	UpdateAlertStatus(user *models.User, id uint, status models.AlertStatus) (*models.Alert, error)
	CreateAlertForAsset(tx *gorm.DB, asset *models.Asset, riskScore int, alertType string) (*models.Alert, error)
}

// AlertService 提供告警相关的服务
type AlertService struct {
	DB     *gorm.DB
	Config *config.Config
	Risk   InterfaceRiskService
}

// NewAlertService 创建一个新的告警服务
func NewAlertService(db *gorm.DB, cfg *config.Config, risk InterfaceRiskService) InterfaceAlertService {
	return &AlertService{
		DB:     db,
		Config: cfg,
		Risk:   risk,
	}
}

// 1 GetAllAlerts 按用户数据范围获取告警列表，创建时间倒序
func (s *AlertService) GetAllAlerts(user *models.User, filter AlertFilter, page, limit int) ([]models.Alert, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := s.DB.Model(&models.Alert{}).Scopes(ScopeAlerts(user))

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var alerts []models.Alert
	offset := (page - 1) * limit
	if err := query.Preload("Asset").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&alerts).Error; err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

// 2 GetCriticalAlerts 获取待处理的高危告警（severity为high或critical），
// 按风险评分倒序，最多返回20条
func (s *AlertService) GetCriticalAlerts(user *models.User) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := s.DB.Scopes(ScopeAlerts(user)).
		Where("severity IN ?", []models.Severity{models.SeverityCritical, models.SeverityHigh}).
		Where("status = ?", models.AlertStatusPending).
		Order("risk_score DESC").
		Limit(20).
		Preload("Asset").
		Find(&alerts).Error; err != nil {
		return nil, err
	}

	return alerts, nil
}

// 3 UpdateAlertStatus 更新告警状态，仅允许pending和resolved两种取值。
// 范围外的告警与不存在的告警返回同样的错误，避免泄露存在性
func (s *AlertService) UpdateAlertStatus(user *models.User, id uint, status models.AlertStatus) (*models.Alert, error) {
	if status != models.AlertStatusPending && status != models.AlertStatusResolved {
		return nil, ErrAlertStatusInvalid
	}

	var alert models.Alert
	if err := s.DB.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}

	if !UserCanSeeAlert(user, &alert) {
		return nil, ErrAlertNotFound
	}

	if err := s.DB.Model(&alert).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &alert, nil
}

// 4 CreateAlertForAsset 为资产创建告警记录
// 资产名称和片区在此刻快照冗余，描述由损伤类型模板化生成；
// 传入tx以便与分析流程共用同一事务
func (s *AlertService) CreateAlertForAsset(tx *gorm.DB, asset *models.Asset, riskScore int, alertType string) (*models.Alert, error) {
	if tx == nil {
		tx = s.DB
	}

	alert := &models.Alert{
		AssetID:     asset.ID,
		AssetName:   asset.Name,
		Zone:        asset.Zone,
		RiskScore:   riskScore,
		AlertType:   alertType,
		Severity:    s.Risk.DetermineSeverity(riskScore),
		Status:      models.AlertStatusPending,
		Description: fmt.Sprintf("Automated alert: %s detected on %s with risk score %d", alertType, asset.Name, riskScore),
	}

	if err := tx.Create(alert).Error; err != nil {
		return nil, err
	}

	return alert, nil
}
