package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/projectteamlcet-droid/civic-eye/models"
)

// newRoleTestContext 构造一个带当前用户的测试上下文
func newRoleTestContext(role models.UserRole) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", nil)
	c.Set("currentUser", &models.User{Role: role})
	return c, w
}

// TestRequireRolesAllowed 验证白名单内的角色可以通过
func TestRequireRolesAllowed(t *testing.T) {
	handler := RequireRoles(models.RoleSuperAdmin, models.RoleZoneOfficer)

	for _, role := range []models.UserRole{models.RoleSuperAdmin, models.RoleZoneOfficer} {
		c, _ := newRoleTestContext(role)
		handler(c)
		if c.IsAborted() {
			t.Errorf("角色 %s 应当允许访问", role)
		}
	}
}

// TestRequireRolesForbidden 验证白名单外的角色被拒绝，
// 巡检员不能处置资产变更和告警状态
func TestRequireRolesForbidden(t *testing.T) {
	handler := RequireRoles(models.RoleSuperAdmin, models.RoleZoneOfficer)

	c, w := newRoleTestContext(models.RoleFieldInspector)
	handler(c)

	if !c.IsAborted() {
		t.Fatal("FieldInspector 应当被拒绝")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("期望状态码 %d, 实际 %d", http.StatusForbidden, w.Code)
	}
}

// TestRequireRolesUnauthenticated 验证未注入用户时返回401
func TestRequireRolesUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", nil)

	RequireRoles(models.RoleSuperAdmin)(c)

	if !c.IsAborted() {
		t.Fatal("未认证的请求应当被拒绝")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望状态码 %d, 实际 %d", http.StatusUnauthorized, w.Code)
	}
}
