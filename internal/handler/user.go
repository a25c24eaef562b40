package handler

import (
	"VidTube/internal/service"
	"VidTube/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GetProfile(c *gin.Context)
}

// 对Service进行封装
type userHandler struct {
	UserService service.UserService
}

func NewUserHandler(userService service.UserService) UserHandler {
	return &userHandler{UserService: userService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// 注册：1、解析注册请求 2、service层注册 3、返回脱敏后的用户信息
func (h *userHandler) Register(c *gin.Context) {
	var req RegisterRequest
	// c.ShouldBindJSON绑定和校验，缺少required字段直接报错
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("注册请求参数解析失败")
		sendBadRequest(c, "无效的参数")
		return
	}

	logCtx := logger.Log.WithField("username", req.Username)
	logCtx.Info("开始处理用户注册请求")

	user, err := h.UserService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		logCtx.WithError(err).Error("用户注册业务逻辑处理失败")
		sendError(c, err)
		return
	}

	logCtx.WithField("user_id", user.ID).Info("用户注册成功")
	sendSuccess(c, http.StatusCreated, "注册成功", gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"full_name": user.FullName,
	})
}

// 登录：1、解析登录请求 2、service层验证 3、成功则返回token
func (h *userHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("登录请求参数解析失败")
		sendBadRequest(c, "无效的参数")
		return
	}

	logCtx := logger.Log.WithField("username", req.Username)
	logCtx.Info("开始处理用户登录请求")

	token, err := h.UserService.Login(req.Username, req.Password)
	if err != nil {
		logCtx.WithError(err).Error("用户登录业务逻辑处理失败")
		// 模糊的错误提示，更安全
		sendError(c, err)
		return
	}

	logCtx.Info("用户登录成功")
	sendSuccess(c, http.StatusOK, "登录成功", gin.H{"token": token})
}

// 获取当前用户信息：全部来自认证中间件放进context的数据
func (h *userHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	username, _ := c.Get("username")

	sendSuccess(c, http.StatusOK, "成功获取用户信息", gin.H{
		"user_id":  userID,
		"username": username,
	})
}
