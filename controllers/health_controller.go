package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController 处理健康检查请求
type HealthController struct {
	Ctx *gin.Context
}

// NewHealthController 创建一个新的健康检查控制器
func NewHealthController(ctx *gin.Context) *HealthController {
	return &HealthController{
		Ctx: ctx,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx)

		switch method {
		case "ping":
			controller.Ping()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Ping 健康检查
// @Summary      Health Check
// @Description  Service liveness check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (c *HealthController) Ping() {
	c.Ctx.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
