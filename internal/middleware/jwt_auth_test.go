package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGenerateAndParseToken(t *testing.T) {
	SetJWTConfig(DefaultJWTConfig())

	token, err := GenerateToken("admin", []string{"ROLE_ADMIN"})
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("sub = %s, want admin", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "ROLE_ADMIN" {
		t.Errorf("roles = %v, want [ROLE_ADMIN]", claims.Roles)
	}
}

func TestParseToken_Expired(t *testing.T) {
	SetJWTConfig(&JWTConfig{
		SecretKey: "test-secret",
		TokenTTL:  -time.Minute, // 已过期
		Issuer:    "test",
	})
	defer SetJWTConfig(DefaultJWTConfig())

	token, err := GenerateToken("admin", nil)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Error("过期令牌应解析失败")
	}
	if ValidateToken(token) {
		t.Error("过期令牌校验应返回 false")
	}
}

func TestParseToken_Tampered(t *testing.T) {
	SetJWTConfig(DefaultJWTConfig())

	token, err := GenerateToken("admin", nil)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	tampered := token + "x"
	if _, err := ParseToken(tampered); err == nil {
		t.Error("被篡改的令牌应解析失败")
	}

	// 换密钥签发的令牌同样拒绝
	SetJWTConfig(&JWTConfig{SecretKey: "another-secret", TokenTTL: time.Hour, Issuer: "test"})
	foreign, _ := GenerateToken("admin", nil)
	SetJWTConfig(DefaultJWTConfig())
	if ValidateToken(foreign) {
		t.Error("其他密钥签发的令牌应校验失败")
	}
}

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	authed := r.Group("/", JWTAuth())
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": GetUsername(c)})
	})
	admin := authed.Group("/admin", RequireRole("ADMIN"))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func TestJWTAuth_MissingToken(t *testing.T) {
	SetJWTConfig(DefaultJWTConfig())
	r := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("无令牌: code = %d, want 401", w.Code)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	SetJWTConfig(DefaultJWTConfig())
	r := setupAuthRouter()

	token, _ := GenerateToken("admin", []string{"ROLE_ADMIN"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("有效令牌: code = %d, want 200", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	SetJWTConfig(DefaultJWTConfig())
	r := setupAuthRouter()

	// 普通用户访问管理员接口
	userToken, _ := GenerateToken("zhangsan", []string{"ROLE_USER"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("角色不足: code = %d, want 403", w.Code)
	}

	// 管理员放行
	adminToken, _ := GenerateToken("admin", []string{"ROLE_ADMIN"})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("管理员: code = %d, want 200", w.Code)
	}
}
