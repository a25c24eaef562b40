package handler

import (
	"VidTube/internal/apperr"
	"VidTube/internal/ident"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiResponse 是统一的成功响应信封
type ApiResponse struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// ApiError 是统一的错误响应信封，data恒为null
type ApiError struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Errors     []string    `json:"errors"`
}

func sendSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, ApiResponse{
		StatusCode: code,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

// sendError 按apperr的分类翻译成HTTP状态码和可展示的信息
func sendError(c *gin.Context, err error) {
	code := apperr.HTTPStatus(err)
	c.AbortWithStatusJSON(code, ApiError{
		StatusCode: code,
		Success:    false,
		Message:    apperr.Message(err),
		Data:       nil,
		Errors:     []string{},
	})
}

func sendBadRequest(c *gin.Context, message string) {
	sendError(c, apperr.New(apperr.KindBadRequest, message))
}

// pathID 从URL路径参数里取ID并校验
// 校验失败直接回400，绝不让坏ID进入任何查询
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := ident.Parse(c.Param(name))
	if err != nil {
		sendBadRequest(c, "无效的ID")
		return 0, false
	}
	return id, true
}

func sendUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ApiError{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "用户未认证",
		Data:       nil,
		Errors:     []string{},
	})
}

// currentUserID 取出认证中间件放进context的调用方ID
func currentUserID(c *gin.Context) (uint64, bool) {
	// 理论上中间件会拦截未认证请求，但防御性编程是好习惯
	v, exists := c.Get("userID")
	if !exists {
		sendUnauthorized(c)
		return 0, false
	}
	userID, ok := v.(uint64)
	if !ok || userID == 0 {
		sendUnauthorized(c)
		return 0, false
	}
	return userID, true
}
