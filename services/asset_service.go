package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/models"
)

// 资产服务的业务错误
var (
	ErrAssetNotFound         = errors.New("资产不存在")
	ErrAssetTypeInvalid      = errors.New("资产类别无效")
	ErrHealthScoreOutOfRange = errors.New("健康评分必须在0到100之间")
	ErrLocationInvalid       = errors.New("经纬度超出有效范围")
)

// AssetFilter 资产列表的过滤条件
type AssetFilter struct {
	Type      string
	RiskLevel string
	Zone      string
}

// CreateAssetInput 创建资产的输入
type CreateAssetInput struct {
	Name        string
	Type        models.AssetType
	Zone        string
	Latitude    float64
	Longitude   float64
	HealthScore *int // 缺省为100
	Status      models.AssetStatus
}

// InterfaceAssetService defines the asset service interface
type InterfaceAssetService interface {
	GetAllAssets(user *models.User, filter AssetFilter, page, limit int) ([]models.Asset, int64, error)
	GetAssetByID(id uint) (*models.Asset, error)
	CreateAsset(user *models.User, input CreateAssetInput) (*models.Asset, error)
	UpdateAsset(id uint, updates map[string]interface{}) (*models.Asset, error)
	DeleteAsset(id uint) error
	GetAssetTrend(id uint) (models.HealthTrend, error)
}

// AssetService 提供基础设施资产相关的服务
type AssetService struct {
	DB     *gorm.DB
	Config *config.Config
	Risk   InterfaceRiskService
}

// NewAssetService 创建一个新的资产服务
func NewAssetService(db *gorm.DB, cfg *config.Config, risk InterfaceRiskService) InterfaceAssetService {
	return &AssetService{
		DB:     db,
		Config: cfg,
		Risk:   risk,
	}
}

// 1 GetAllAssets 按用户数据范围获取资产列表，健康评分升序（最差在前）
func (s *AssetService) GetAllAssets(user *models.User, filter AssetFilter, page, limit int) ([]models.Asset, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := s.DB.Model(&models.Asset{}).Scopes(ScopeAssets(user))

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.RiskLevel != "" {
		query = query.Where("risk_level = ?", filter.RiskLevel)
	}
	// 片区过滤仅对SuperAdmin开放，其他角色由数据范围决定
	if filter.Zone != "" && user.Role == models.RoleSuperAdmin {
		query = query.Where("zone = ?", filter.Zone)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assets []models.Asset
	offset := (page - 1) * limit
	if err := query.Preload("CreatedBy").
		Order("health_score ASC").
		Offset(offset).Limit(limit).
		Find(&assets).Error; err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

// 2 GetAssetByID 根据ID获取资产（含健康记录历史）
func (s *AssetService) GetAssetByID(id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.DB.Preload("CreatedBy").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("health_records.id ASC")
		}).
		First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	return &asset, nil
}

// 3 CreateAsset 创建新资产，同时写入首条健康记录（来源manual）
func (s *AssetService) CreateAsset(user *models.User, input CreateAssetInput) (*models.Asset, error) {
	if err := validateAssetType(input.Type); err != nil {
		return nil, err
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, ErrLocationInvalid
	}

	healthScore := 100
	if input.HealthScore != nil {
		if *input.HealthScore < 0 || *input.HealthScore > 100 {
			return nil, ErrHealthScoreOutOfRange
		}
		healthScore = *input.HealthScore
	}

	riskLevel := s.Risk.CalculateRiskLevel(healthScore)

	status := input.Status
	if status == "" {
		status = models.AssetStatusGood
	}

	asset := &models.Asset{
		Name:               input.Name,
		Type:               input.Type,
		Zone:               input.Zone,
		Latitude:           input.Latitude,
		Longitude:          input.Longitude,
		HealthScore:        healthScore,
		RiskLevel:          riskLevel,
		LastInspectionDate: time.Now(),
		Status:             status,
		CreatedByID:        user.ID,
		History: []models.HealthRecord{{
			Score:      healthScore,
			RiskLevel:  riskLevel,
			RecordedAt: time.Now(),
			Source:     models.SourceManual,
		}},
	}

	if err := s.DB.Create(asset).Error; err != nil {
		return nil, err
	}

	return asset, nil
}

// assetUpdatableColumns 更新接口允许写入的列白名单。
// risk_level只能由健康评分推导，不接受外部写入
var assetUpdatableColumns = map[string]bool{
	"name":         true,
	"type":         true,
	"zone":         true,
	"latitude":     true,
	"longitude":    true,
	"status":       true,
	"health_score": true,
}

// sanitizeAssetUpdates 丢弃白名单之外的更新字段
func sanitizeAssetUpdates(updates map[string]interface{}) map[string]interface{} {
	clean := make(map[string]interface{}, len(updates))
	for column, value := range updates {
		if assetUpdatableColumns[column] {
			clean[column] = value
		}
	}
	return clean
}

// 4 UpdateAsset 更新资产信息
// 健康评分变更会重新推导风险等级并追加一条manual健康记录，
// 字段更新与历史追加在同一事务内完成
func (s *AssetService) UpdateAsset(id uint, updates map[string]interface{}) (*models.Asset, error) {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return nil, err
	}

	updates = sanitizeAssetUpdates(updates)

	if t, ok := updates["type"]; ok {
		if err := validateAssetType(models.AssetType(toString(t))); err != nil {
			return nil, err
		}
	}

	var newScore *int
	if raw, ok := updates["health_score"]; ok {
		score, ok := toInt(raw)
		if !ok || score < 0 || score > 100 {
			return nil, ErrHealthScoreOutOfRange
		}
		newScore = &score
		updates["health_score"] = score
		updates["risk_level"] = s.Risk.CalculateRiskLevel(score)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(asset).Updates(updates).Error; err != nil {
			return err
		}

		if newScore != nil {
			record := models.HealthRecord{
				AssetID:    asset.ID,
				Score:      *newScore,
				RiskLevel:  s.Risk.CalculateRiskLevel(*newScore),
				RecordedAt: time.Now(),
				Source:     models.SourceManual,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 重新获取更新后的资产信息
	return s.GetAssetByID(id)
}

// 5 DeleteAsset 删除资产
func (s *AssetService) DeleteAsset(id uint) error {
	result := s.DB.Delete(&models.Asset{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

// 6 GetAssetTrend 计算资产的健康走势（用于报表视图）
func (s *AssetService) GetAssetTrend(id uint) (models.HealthTrend, error) {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return "", err
	}
	return s.Risk.CalculateHealthTrend(asset.History), nil
}

// validateAssetType 校验资产类别是否在枚举范围内
func validateAssetType(t models.AssetType) error {
	switch t {
	case models.AssetTypeRoad, models.AssetTypeWater, models.AssetTypeBuilding:
		return nil
	default:
		return ErrAssetTypeInvalid
	}
}

// toInt 将JSON解析出的数值统一转为int
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// toString 将任意值转为字符串（仅用于枚举校验）
func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
