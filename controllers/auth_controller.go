package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectteamlcet-droid/civic-eye/internal/error/code"
	"github.com/projectteamlcet-droid/civic-eye/internal/error/response"
	"github.com/projectteamlcet-droid/civic-eye/middleware"
	"github.com/projectteamlcet-droid/civic-eye/models"
	"github.com/projectteamlcet-droid/civic-eye/services"
	"github.com/projectteamlcet-droid/civic-eye/services/container"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Register()
	Login()
	GetMe()
}

// AuthController 处理身份验证请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Name         string `json:"name" binding:"required,max=100" example:"Asha Nair"`
	Email        string `json:"email" binding:"required,email" example:"asha@civic-eye.local"`
	Password     string `json:"password" binding:"required,min=6" example:"secret123"`
	Role         string `json:"role" example:"ZoneOfficer"` // SuperAdmin, ZoneOfficer, FieldInspector
	AssignedZone string `json:"assigned_zone" example:"North Zone"`
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@civic-eye.local"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// AuthData 登录/注册成功后返回的数据
type AuthData struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// UserInfo 用户概要信息
type UserInfo struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	AssignedZone string          `json:"assigned_zone"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "getMe":
			controller.GetMe()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Register 注册新用户
// @Summary      User Registration
// @Description  Register a new user account and return a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration parameters"
// @Success      200  {object}  response.Response{data=AuthData}
// @Failure      400  {object}  response.Response
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	user, err := c.Container.GetUserService().Register(services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         models.UserRole(req.Role),
		AssignedZone: req.AssignedZone,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			response.Fail(c.Ctx, code.ErrUserAlreadyExist, nil)
		case errors.Is(err, services.ErrRoleInvalid):
			response.Fail(c.Ctx, code.ErrUserRoleInvalid, nil)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	c.respondWithToken(user)
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Verify credentials and return a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login parameters"
// @Success      200  {object}  response.Response{data=AuthData}
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	user, err := c.Container.GetUserService().Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	c.respondWithToken(user)
}

// GetMe 返回当前登录用户信息
// @Summary      Current User
// @Description  Return the profile of the authenticated user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=UserInfo}
// @Router       /auth/me [get]
func (c *AuthController) GetMe() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	response.Success(c.Ctx, UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		AssignedZone: user.AssignedZone,
	})
}

// respondWithToken 签发令牌并返回认证数据
func (c *AuthController) respondWithToken(user *models.User) {
	token, err := c.Container.GetJWTService().GenerateToken(user)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, AuthData{
		Token: token,
		User: UserInfo{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Role:         user.Role,
			AssignedZone: user.AssignedZone,
		},
	})
}
