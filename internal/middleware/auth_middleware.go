package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// 解析"Bearer [token]"格式的请求头，返回token本体
func bearerToken(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("授权令牌格式不正确")
	}
	return parts[1], nil
}

// AuthMiddleware 负责把调用方身份解析进context
// 流程：1、取Authorization头 2、验证Bearer格式 3、用secretKey验证token 4、把userID/username放入context
// jwt.MapClaims里的数字会被解析成float64，这里统一转成uint64再入context，
// 后续handler拿到的就是干净的ID类型
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// 立刻Abort，阻止后续handler执行
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "请求未包含授权令牌"})
			return
		}

		tokenString, err := bearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		secretKey := []byte(os.Getenv("JWT_SECRET_KEY"))
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// 确保签名方法是对称加密族
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("非预期的签名方法")
			}
			return secretKey, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "无效的授权令牌"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "无效的授权令牌"})
			return
		}
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok || userIDFloat <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "无效的授权令牌"})
			return
		}
		c.Set("userID", uint64(userIDFloat))
		c.Set("username", claims["username"])

		// 放行，继续处理请求
		c.Next()
	}
}
