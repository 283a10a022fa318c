package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectteamlcet-droid/civic-eye/internal/error/code"
	"github.com/projectteamlcet-droid/civic-eye/internal/error/response"
	"github.com/projectteamlcet-droid/civic-eye/middleware"
	"github.com/projectteamlcet-droid/civic-eye/services/container"
)

// DashboardController 处理看板统计相关的请求
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController 创建一个新的看板控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc 返回一个处理看板请求的Gin处理函数
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getOverview":
			controller.GetOverview()
		case "getHeatmap":
			controller.GetHeatmap()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1 GetOverview 获取看板总览统计
// @Summary      Dashboard Overview
// @Description  Aggregate statistics over assets and alerts in the current user's scope
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=services.DashboardOverview}
// @Router       /dashboard/overview [get]
func (c *DashboardController) GetOverview() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	overview, err := c.Container.GetDashboardService().GetOverview(user)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, overview)
}

// 2 GetHeatmap 获取热力图数据
// @Summary      Heatmap Data
// @Description  Slim asset rows (location, health, risk) for map rendering
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]services.HeatmapAsset}
// @Router       /dashboard/heatmap [get]
func (c *DashboardController) GetHeatmap() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	data, err := c.Container.GetDashboardService().GetHeatmapData(user)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, data)
}
