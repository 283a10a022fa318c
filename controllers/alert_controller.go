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

// InterfaceAlertController 定义告警控制器接口
type InterfaceAlertController interface {
	GetAlerts()
	GetCriticalAlerts()
	UpdateAlertStatus()
}

// AlertController 处理告警相关的请求
type AlertController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAlertController 创建一个新的告警控制器
func NewAlertController(ctx *gin.Context, container *container.ServiceContainer) *AlertController {
	return &AlertController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateAlertStatusRequest 表示更新告警状态的请求
type UpdateAlertStatusRequest struct {
	Status string `json:"status" binding:"required" example:"resolved"` // pending, resolved
}

// HandleAlertFunc 返回一个处理告警请求的Gin处理函数
func HandleAlertFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAlertController(ctx, container)

		switch method {
		case "getAlerts":
			controller.GetAlerts()
		case "getCriticalAlerts":
			controller.GetCriticalAlerts()
		case "updateAlertStatus":
			controller.UpdateAlertStatus()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1 GetAlerts 获取告警列表
// @Summary      List Alerts
// @Description  List alerts visible to the current user, newest first
// @Tags         Alerts
// @Produce      json
// @Security     BearerAuth
// @Param        status    query  string  false  "Status filter (pending/resolved)"
// @Param        severity  query  string  false  "Severity filter"
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size"
// @Success      200  {object}  response.Response{data=PagedData}
// @Router       /alerts [get]
func (c *AlertController) GetAlerts() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "50"))

	filter := services.AlertFilter{
		Status:   c.Ctx.Query("status"),
		Severity: c.Ctx.Query("severity"),
	}

	alerts, total, err := c.Container.GetAlertService().GetAllAlerts(user, filter, page, limit)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, PagedData{
		Items:      alerts,
		Pagination: models.NewPaginationResult(int(total), page, limit),
	})
}

// 2 GetCriticalAlerts 获取待处理的高危告警
// @Summary      Critical Alerts
// @Description  Pending alerts with high or critical severity, highest risk first, at most 20
// @Tags         Alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]models.Alert}
// @Router       /alerts/critical [get]
func (c *AlertController) GetCriticalAlerts() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	alerts, err := c.Container.GetAlertService().GetCriticalAlerts(user)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, alerts)
}

// 3 UpdateAlertStatus 更新告警状态
// @Summary      Update Alert Status
// @Description  Transition an alert between pending and resolved
// @Tags         Alerts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int                       true  "Alert ID"
// @Param        request body  UpdateAlertStatusRequest  true  "New status"
// @Success      200  {object}  response.Response{data=models.Alert}
// @Failure      404  {object}  response.Response
// @Router       /alerts/{id}/status [put]
func (c *AlertController) UpdateAlertStatus() {
	user, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的告警ID")
		return
	}

	var req UpdateAlertStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	alert, err := c.Container.GetAlertService().UpdateAlertStatus(user, uint(id), models.AlertStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlertNotFound):
			response.Fail(c.Ctx, code.ErrAlertNotFound, nil)
		case errors.Is(err, services.ErrAlertStatusInvalid):
			response.Fail(c.Ctx, code.ErrAlertStatusInvalid, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, alert)
}
