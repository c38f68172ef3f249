package dto

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token       string   `json:"token"`
	TokenType   string   `json:"tokenType"`
	ExpiresIn   int64    `json:"expiresIn"` // 秒
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName"`
	Roles       []string `json:"roles"` // 带 ROLE_ 前缀
}
