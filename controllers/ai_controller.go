package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projectteamlcet-droid/civic-eye/internal/error/code"
	"github.com/projectteamlcet-droid/civic-eye/internal/error/response"
	"github.com/projectteamlcet-droid/civic-eye/middleware"
	"github.com/projectteamlcet-droid/civic-eye/services"
	"github.com/projectteamlcet-droid/civic-eye/services/container"
)

// InterfaceAIController 定义AI分析控制器接口
type InterfaceAIController interface {
	AnalyzeAsset()
	GetAnalysisHistory()
}

// AIController 处理模拟AI分析相关的请求
type AIController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAIController 创建一个新的AI分析控制器
func NewAIController(ctx *gin.Context, container *container.ServiceContainer) *AIController {
	return &AIController{
		Ctx:       ctx,
		Container: container,
	}
}

// AnalyzeRequest 表示发起分析的请求
type AnalyzeRequest struct {
	AssetID uint `json:"asset_id" binding:"required" example:"1"`
}

// HandleAIFunc 返回一个处理AI分析请求的Gin处理函数
func HandleAIFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAIController(ctx, container)

		switch method {
		case "analyzeAsset":
			controller.AnalyzeAsset()
		case "getAnalysisHistory":
			controller.GetAnalysisHistory()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1 AnalyzeAsset 对资产执行一次模拟AI分析
// @Summary      Analyze Asset
// @Description  Run a simulated damage detection on the asset, update its health state and raise an alert when the policy triggers
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AnalyzeRequest true "Analysis request"
// @Success      200  {object}  response.Response{data=services.AnalysisOutcome}
// @Failure      404  {object}  response.Response
// @Router       /ai/analyze [post]
func (c *AIController) AnalyzeAsset() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req AnalyzeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	// 范围外的资产与不存在的资产返回同样的错误
	asset, err := c.Container.GetAssetService().GetAssetByID(req.AssetID)
	if err != nil || !services.UserCanSeeAsset(user, asset) {
		response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
		return
	}

	analyzedBy := user.ID
	outcome, err := c.Container.GetAnalysisService().AnalyzeAsset(req.AssetID, &analyzedBy)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrAnalysisFailed, nil)
		return
	}

	response.Success(c.Ctx, outcome)
}

// 2 GetAnalysisHistory 获取资产最近的分析记录
// @Summary      Analysis History
// @Description  Latest 20 analysis records of the asset, newest first
// @Tags         AI
// @Produce      json
// @Security     BearerAuth
// @Param        assetId  path  int  true  "Asset ID"
// @Success      200  {object}  response.Response{data=[]models.AIAnalysis}
// @Router       /ai/history/{assetId} [get]
func (c *AIController) GetAnalysisHistory() {
	assetID, err := strconv.ParseUint(c.Ctx.Param("assetId"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的资产ID")
		return
	}

	analyses, err := c.Container.GetAnalysisService().GetAnalysisHistory(uint(assetID))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, analyses)
}
