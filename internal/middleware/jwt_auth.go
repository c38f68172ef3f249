package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"property_mgmt_v1/internal/api/dto"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey string        // 对称签名密钥，签发与校验共用
	TokenTTL  time.Duration // 令牌有效期
	Issuer    string        // 签发者
}

// DefaultJWTConfig 默认配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey: "property-mgmt-secret-key-change-in-production",
		TokenTTL:  120 * time.Minute,
		Issuer:    "property-mgmt",
	}
}

// 全局配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 设置 JWT 配置
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 获取 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims 定义 ====================

// UserClaims 用户声明
// sub 为用户名，roles 为带 ROLE_ 前缀的权限串列表
type UserClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// ==================== Token 生成 / 解析 ====================

var errInvalidToken = errors.New("invalid token")

// GenerateToken 签发令牌
func GenerateToken(username string, authorities []string) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		Roles: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ParseToken 解析令牌
func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errInvalidToken
}

// ValidateToken 校验令牌是否有效
// 过期、篡改、格式错误一律返回 false，不向外抛错
func ValidateToken(tokenString string) bool {
	_, err := ParseToken(tokenString)
	return err == nil
}

// GetUsernameFromToken 提取用户名，无效令牌返回错误
func GetUsernameFromToken(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

// GetRolesFromToken 提取权限串列表，无效令牌返回错误
func GetRolesFromToken(tokenString string) ([]string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, errInvalidToken
	}
	return claims.Roles, nil
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyUsername = "username"
	ContextKeyRoles    = "roles"
	ContextKeyClaims   = "claims"
)

// JWTAuth JWT 认证中间件
// 无令牌/无效令牌 -> 401，响应体保持统一包裹格式
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.Fail("未授权访问，请检查您的认证信息"))
			c.Abort()
			return
		}

		// 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, dto.Fail("认证格式错误，应为 Bearer {token}"))
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.Fail("Token 无效或已过期"))
			c.Abort()
			return
		}

		// 注入用户信息到 Context
		c.Set(ContextKeyUsername, claims.Subject)
		c.Set(ContextKeyRoles, claims.Roles)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// RequireRole 角色权限校验中间件
// 需在 JWTAuth 之后挂载；codes 传角色编码（不带 ROLE_ 前缀）
// 已认证但权限不足 -> 403
func RequireRole(codes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, exists := c.Get(ContextKeyRoles)
		if !exists {
			c.JSON(http.StatusUnauthorized, dto.Fail("未获取到用户角色"))
			c.Abort()
			return
		}

		authorities := roles.([]string)
		for _, code := range codes {
			for _, authority := range authorities {
				if authority == "ROLE_"+code {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, dto.Fail("无权限访问该资源"))
		c.Abort()
	}
}

// ==================== 辅助函数 ====================

// GetUsername 从 Context 获取用户名
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		return name.(string)
	}
	return ""
}

// GetRoles 从 Context 获取权限串列表
func GetRoles(c *gin.Context) []string {
	if roles, exists := c.Get(ContextKeyRoles); exists {
		return roles.([]string)
	}
	return nil
}
