package dto

// ApiResponse 统一响应包裹
// 业务失败同样返回 HTTP 200，success=false，前端按 success 分支
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK 成功响应
func OK(data interface{}) ApiResponse {
	return ApiResponse{Success: true, Data: data}
}

// OKMsg 带提示的成功响应
func OKMsg(message string, data interface{}) ApiResponse {
	return ApiResponse{Success: true, Message: message, Data: data}
}

// Fail 失败响应
func Fail(message string) ApiResponse {
	return ApiResponse{Success: false, Message: message}
}

// PageResult 分页数据
type PageResult struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
}
