package services

import (
	"testing"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/models"
)

func newTestJWTService() InterfaceJWTService {
	return NewJWTService(&config.Config{JWTSecretKey: "test-secret"})
}

// TestGenerateAndExtractToken 测试令牌签发与解析的往返
func TestGenerateAndExtractToken(t *testing.T) {
	svc := newTestJWTService()

	user := &models.User{
		Email:        "officer@civic-eye.local",
		Role:         models.RoleZoneOfficer,
		AssignedZone: "Zone-A",
	}
	user.ID = 42

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, 期望 42", claims.UserID)
	}
	if claims.Role != models.RoleZoneOfficer {
		t.Errorf("Role = %s, 期望 %s", claims.Role, models.RoleZoneOfficer)
	}
	if claims.AssignedZone != "Zone-A" {
		t.Errorf("AssignedZone = %s, 期望 Zone-A", claims.AssignedZone)
	}
}

// TestValidateTokenWrongSecret 测试错误密钥签发的令牌被拒绝
func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(&config.Config{JWTSecretKey: "other-secret"})

	user := &models.User{Role: models.RoleFieldInspector}
	user.ID = 1

	token, err := other.GenerateToken(user)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	if _, err := svc.ExtractClaims(token); err == nil {
		t.Error("错误密钥签发的令牌应当解析失败")
	}
}

// TestValidateTokenMalformed 测试畸形令牌被拒绝
func TestValidateTokenMalformed(t *testing.T) {
	svc := newTestJWTService()

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("畸形令牌应当校验失败")
	}
}
