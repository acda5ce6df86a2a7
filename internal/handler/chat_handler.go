package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"zyron-go/internal/middleware"
	"zyron-go/internal/model"
	"zyron-go/internal/service"
	"zyron-go/pkg/log"
	"zyron-go/pkg/token"
	"zyron-go/pkg/voice"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源
	},
}

// ChatHandler 负责处理聊天连接：WebSocket 双工通道与普通 HTTP 提交。
type ChatHandler struct {
	assistantService service.AssistantService
	sessionService   service.SessionService
	jwtManager       *token.JWTManager
}

// NewChatHandler 创建一个新的 ChatHandler。
func NewChatHandler(assistantService service.AssistantService, sessionService service.SessionService, jwtManager *token.JWTManager) *ChatHandler {
	return &ChatHandler{
		assistantService: assistantService,
		sessionService:   sessionService,
		jwtManager:       jwtManager,
	}
}

// inboundFrame 是客户端帧。type 取值:
// message / transcript（提交输入）、input（实时输入，驱动语言检测）、
// clear（清空对话）、language（快捷切换语言）。
type inboundFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Handle 处理一个传入的 WebSocket 连接。
// 读循环天然串行，配合会话锁保证对话记录的顺序。
func (h *ChatHandler) Handle(c *gin.Context) {
	tokenString := c.Param("token")
	claims, err := h.jwtManager.VerifyToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "无效的 token", "data": nil})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket 升级失败", err)
		return
	}
	defer conn.Close()

	log.Infof("WebSocket 连接已建立，客户端: %s", claims.ClientID)

	// 连接建立后先还原会话并下发历史快照，客户端据此恢复界面
	session := h.sessionService.Restore(c.Request.Context(), claims.ClientID)
	h.writeFrame(conn, map[string]interface{}{
		"type":            "history",
		"conversationLog": session.Log,
		"activeLanguage":  session.ActiveLanguage,
		"userDisplayName": session.UserDisplayName,
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Warnf("从 WebSocket 读取消息失败: %v", err)
			break
		}

		var frame inboundFrame
		if len(message) > 0 && message[0] == '{' && json.Unmarshal(message, &frame) == nil && frame.Type != "" {
			// 已解析为控制帧
		} else {
			// 裸文本按普通消息处理
			frame = inboundFrame{Type: "message", Text: string(message)}
		}

		switch frame.Type {
		case "message":
			h.submitAndReply(c, conn, session, frame.Text, false)
		case "transcript":
			h.submitAndReply(c, conn, session, frame.Text, true)
		case "input":
			h.assistantService.OnInput(session, frame.Text)
		case "clear":
			welcome := h.sessionService.Clear(c.Request.Context(), session)
			h.writeTurn(conn, "clear", welcome, session.ActiveLanguage)
		case "language":
			turn := h.assistantService.ToggleLanguage(c.Request.Context(), session)
			h.writeTurn(conn, "turn", turn, session.ActiveLanguage)
		default:
			h.writeFrame(conn, map[string]interface{}{"type": "error", "message": "未知的消息类型"})
		}
	}
}

// submitAndReply 提交一条输入并把生成的回复连同朗读指令写回连接。
func (h *ChatHandler) submitAndReply(c *gin.Context, conn *websocket.Conn, session *model.Session, text string, transcript bool) {
	var turn model.Turn
	if transcript {
		turn = h.assistantService.OnTranscript(c.Request.Context(), session, text)
	} else {
		turn = h.assistantService.SubmitMessage(c.Request.Context(), session, text)
	}
	if turn.Content == "" {
		// 空输入不产生回合
		return
	}
	h.writeTurn(conn, "turn", turn, session.ActiveLanguage)
}

// writeTurn 下发一条助手回复帧，附带当前语言的朗读指令。
func (h *ChatHandler) writeTurn(conn *websocket.Conn, frameType string, turn model.Turn, lang model.Language) {
	h.writeFrame(conn, map[string]interface{}{
		"type":      frameType,
		"turn":      turn,
		"speech":    voice.Speak(turn.Content, lang),
		"timestamp": time.Now().UnixMilli(),
		"date":      model.LocalTime(time.Now()),
	})
}

func (h *ChatHandler) writeFrame(conn *websocket.Conn, payload map[string]interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("序列化 WebSocket 帧失败: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		log.Warnf("写入 WebSocket 消息失败: %v", err)
	}
}

// messageRequest 是 HTTP 提交路径的请求体。
type messageRequest struct {
	Text string `json:"text" binding:"required"`
}

// PostMessage 是不走 WebSocket 的提交入口，供无语音客户端使用。
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "消息不能为空", "data": nil})
		return
	}

	clientID := c.MustGet(middleware.ContextClientID).(string)
	session := h.sessionService.Restore(c.Request.Context(), clientID)

	turn := h.assistantService.SubmitMessage(c.Request.Context(), session, req.Text)
	if turn.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "消息不能为空", "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"turn":           turn,
			"speech":         voice.Speak(turn.Content, session.ActiveLanguage),
			"activeLanguage": session.ActiveLanguage,
		},
	})
}
