// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"fmt"
	"net/http"
	"time"

	"zyron-go/pkg/log"
	"zyron-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// SessionHandler 负责客户端会话的创建。
type SessionHandler struct {
	jwtManager *token.JWTManager
}

// NewSessionHandler 创建一个新的 SessionHandler。
func NewSessionHandler(jwtManager *token.JWTManager) *SessionHandler {
	return &SessionHandler{jwtManager: jwtManager}
}

// Create 处理创建会话的请求：生成客户端标识并签发会话令牌。
func (h *SessionHandler) Create(c *gin.Context) {
	// 时间戳 + 随机后缀，避免引入额外的 ID 依赖
	clientID := fmt.Sprintf("%d-%s", time.Now().UnixNano(), token.GenerateRandomString(4))

	tokenString, err := h.jwtManager.GenerateToken(clientID)
	if err != nil {
		log.Errorf("签发会话令牌失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "无法创建会话",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    gin.H{"clientId": clientID, "token": tokenString},
	})
}
