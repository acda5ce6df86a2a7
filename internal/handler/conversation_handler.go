package handler

import (
	"net/http"

	"zyron-go/internal/middleware"
	"zyron-go/internal/service"

	"github.com/gin-gonic/gin"
)

// ConversationHandler 处理与对话记录相关的 API 请求。
type ConversationHandler struct {
	sessionService service.SessionService
}

// NewConversationHandler 创建一个新的 ConversationHandler。
func NewConversationHandler(sessionService service.SessionService) *ConversationHandler {
	return &ConversationHandler{sessionService: sessionService}
}

// Get 返回客户端的完整会话状态：对话记录、当前语言与用户名。
func (h *ConversationHandler) Get(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(string)
	session := h.sessionService.Restore(c.Request.Context(), clientID)

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"conversationLog": session.Log,
			"activeLanguage":  session.ActiveLanguage,
			"userDisplayName": session.UserDisplayName,
		},
	})
}

// Clear 清空对话记录，返回重置后的唯一一条欢迎消息。
func (h *ConversationHandler) Clear(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(string)
	session := h.sessionService.Restore(c.Request.Context(), clientID)
	welcome := h.sessionService.Clear(c.Request.Context(), session)

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    gin.H{"turn": welcome},
	})
}
