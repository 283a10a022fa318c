package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/models"
	"github.com/projectteamlcet-droid/civic-eye/utils"
)

// 用户服务的业务错误
var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailTaken         = errors.New("邮箱已注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrRoleInvalid        = errors.New("角色无效")
)

// RegisterInput 注册用户的输入
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         models.UserRole
	AssignedZone string
}

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AssignAssets(userID uint, assetIDs []uint) error
}

// UserService 提供用户账户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Register 注册新用户，密码使用bcrypt哈希存储
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	role := input.Role
	if role == "" {
		role = models.RoleFieldInspector
	}
	switch role {
	case models.RoleSuperAdmin, models.RoleZoneOfficer, models.RoleFieldInspector:
	default:
		return nil, ErrRoleInvalid
	}

	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     hashed,
		Role:         role,
		AssignedZone: input.AssignedZone,
	}

	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// 2 Login 校验邮箱和密码，成功返回用户
func (s *UserService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// 3 GetUserByID 根据ID获取用户（含被指派资产，供数据范围过滤使用）
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("AssignedAssets").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// 4 AssignAssets 为巡检员指派资产
func (s *UserService) AssignAssets(userID uint, assetIDs []uint) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	var assets []models.Asset
	if err := s.DB.Find(&assets, assetIDs).Error; err != nil {
		return err
	}
	if len(assets) != len(assetIDs) {
		return ErrAssetNotFound
	}

	return s.DB.Model(user).Association("AssignedAssets").Replace(assets)
}
