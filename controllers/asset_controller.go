package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projectteamlcet-droid/civic-eye/internal/error/code"
	"github.com/projectteamlcet-droid/civic-eye/internal/error/response"
	"github.com/projectteamlcet-droid/civic-eye/middleware"
	"github.com/projectteamlcet-droid/civic-eye/models"
	"github.com/projectteamlcet-droid/civic-eye/services"
	"github.com/projectteamlcet-droid/civic-eye/services/container"
)

// InterfaceAssetController 定义资产控制器接口
type InterfaceAssetController interface {
	GetAssets()
	GetAsset()
	CreateAsset()
	UpdateAsset()
	DeleteAsset()
	GetAssetTrend()
}

// AssetController 处理基础设施资产相关的请求
type AssetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAssetController 创建一个新的资产控制器
func NewAssetController(ctx *gin.Context, container *container.ServiceContainer) *AssetController {
	return &AssetController{
		Ctx:       ctx,
		Container: container,
	}
}

// LocationInput 资产位置
type LocationInput struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90" example:"9.5916"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180" example:"76.5222"`
}

// CreateAssetRequest 表示创建资产请求
type CreateAssetRequest struct {
	Name        string        `json:"name" binding:"required,max=200" example:"MC Road Stretch 4"`
	Type        string        `json:"type" binding:"required" example:"road"` // road, water, building
	Zone        string        `json:"zone" binding:"required" example:"North Zone"`
	Location    LocationInput `json:"location" binding:"required"`
	HealthScore *int          `json:"health_score" example:"85"` // 缺省为100
	Status      string        `json:"status" example:"good"`
}

// PagedData 带分页信息的列表响应
type PagedData struct {
	Items      interface{}             `json:"items"`
	Pagination models.PaginationResult `json:"pagination"`
}

// HandleAssetFunc 返回一个处理资产请求的Gin处理函数
func HandleAssetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAssetController(ctx, container)

		switch method {
		case "getAssets":
			controller.GetAssets()
		case "getAsset":
			controller.GetAsset()
		case "createAsset":
			controller.CreateAsset()
		case "updateAsset":
			controller.UpdateAsset()
		case "deleteAsset":
			controller.DeleteAsset()
		case "getAssetTrend":
			controller.GetAssetTrend()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1 GetAssets 获取资产列表
// @Summary      List Assets
// @Description  List assets visible to the current user, worst health first
// @Tags         Assets
// @Produce      json
// @Security     BearerAuth
// @Param        type        query  string  false  "Asset type filter"
// @Param        risk_level  query  string  false  "Risk level filter"
// @Param        zone        query  string  false  "Zone filter (SuperAdmin only)"
// @Param        page        query  int     false  "Page number"
// @Param        limit       query  int     false  "Page size"
// @Success      200  {object}  response.Response{data=PagedData}
// @Router       /assets [get]
func (c *AssetController) GetAssets() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "50"))

	filter := services.AssetFilter{
		Type:      c.Ctx.Query("type"),
		RiskLevel: c.Ctx.Query("risk_level"),
		Zone:      c.Ctx.Query("zone"),
	}

	assets, total, err := c.Container.GetAssetService().GetAllAssets(user, filter, page, limit)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, PagedData{
		Items:      assets,
		Pagination: models.NewPaginationResult(int(total), page, limit),
	})
}

// 2 GetAsset 根据ID获取资产详情（含健康记录历史）
// @Summary      Get Asset
// @Tags         Assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Asset ID"
// @Success      200  {object}  response.Response{data=models.Asset}
// @Failure      404  {object}  response.Response
// @Router       /assets/{id} [get]
func (c *AssetController) GetAsset() {
	id, err := c.parseID()
	if err != nil {
		return
	}

	asset, ok := c.loadScopedAsset(id)
	if !ok {
		return
	}

	response.Success(c.Ctx, asset)
}

// 3 CreateAsset 创建新资产
// @Summary      Create Asset
// @Description  Create an asset with its initial health record
// @Tags         Assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAssetRequest true "Asset parameters"
// @Success      200  {object}  response.Response{data=models.Asset}
// @Failure      400  {object}  response.Response
// @Router       /assets [post]
func (c *AssetController) CreateAsset() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req CreateAssetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	asset, err := c.Container.GetAssetService().CreateAsset(user, services.CreateAssetInput{
		Name:        req.Name,
		Type:        models.AssetType(req.Type),
		Zone:        req.Zone,
		Latitude:    req.Location.Latitude,
		Longitude:   req.Location.Longitude,
		HealthScore: req.HealthScore,
		Status:      models.AssetStatus(req.Status),
	})
	if err != nil {
		c.failAsset(err)
		return
	}

	response.Success(c.Ctx, asset)
}

// 4 UpdateAsset 更新资产信息
// @Summary      Update Asset
// @Description  Update asset fields; a health score change re-derives the risk level and appends a manual health record
// @Tags         Assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int                     true  "Asset ID"
// @Param        request body  map[string]interface{}  true  "Fields to update"
// @Success      200  {object}  response.Response{data=models.Asset}
// @Failure      404  {object}  response.Response
// @Router       /assets/{id} [put]
func (c *AssetController) UpdateAsset() {
	id, err := c.parseID()
	if err != nil {
		return
	}

	if _, ok := c.loadScopedAsset(id); !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	asset, err := c.Container.GetAssetService().UpdateAsset(id, updates)
	if err != nil {
		c.failAsset(err)
		return
	}

	response.Success(c.Ctx, asset)
}

// 5 DeleteAsset 删除资产
// @Summary      Delete Asset
// @Tags         Assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Asset ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /assets/{id} [delete]
func (c *AssetController) DeleteAsset() {
	id, err := c.parseID()
	if err != nil {
		return
	}

	if err := c.Container.GetAssetService().DeleteAsset(id); err != nil {
		c.failAsset(err)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6 GetAssetTrend 获取资产健康走势
// @Summary      Asset Health Trend
// @Description  Qualitative trend (declining/stable/improving) computed from the asset's health history
// @Tags         Assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Asset ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /assets/{id}/trend [get]
func (c *AssetController) GetAssetTrend() {
	id, err := c.parseID()
	if err != nil {
		return
	}

	if _, ok := c.loadScopedAsset(id); !ok {
		return
	}

	trend, err := c.Container.GetAssetService().GetAssetTrend(id)
	if err != nil {
		c.failAsset(err)
		return
	}

	response.Success(c.Ctx, gin.H{"trend": trend})
}

// loadScopedAsset 加载资产并校验当前用户的数据范围，
// 范围外的资产与不存在的资产返回同样的错误，避免泄露存在性
func (c *AssetController) loadScopedAsset(id uint) (*models.Asset, bool) {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return nil, false
	}

	asset, err := c.Container.GetAssetService().GetAssetByID(id)
	if err != nil {
		c.failAsset(err)
		return nil, false
	}

	if !services.UserCanSeeAsset(user, asset) {
		response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
		return nil, false
	}

	return asset, true
}

// parseID 解析路径中的资产ID
func (c *AssetController) parseID() (uint, error) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的资产ID")
		return 0, err
	}
	return uint(id), nil
}

// failAsset 将资产服务错误映射为统一响应
func (c *AssetController) failAsset(err error) {
	switch {
	case errors.Is(err, services.ErrAssetNotFound):
		response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
	case errors.Is(err, services.ErrAssetTypeInvalid):
		response.Fail(c.Ctx, code.ErrAssetTypeInvalid, nil)
	case errors.Is(err, services.ErrHealthScoreOutOfRange):
		response.Fail(c.Ctx, code.ErrHealthScoreOutOfRange, nil)
	case errors.Is(err, services.ErrLocationInvalid):
		response.Fail(c.Ctx, code.ErrLocationInvalid, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}
