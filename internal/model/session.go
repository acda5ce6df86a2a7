// Package model 包含了应用的数据模型定义。
package model

import (
	"sync"
	"time"
)

// Language 表示助手当前使用的语言。
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageUrdu    Language = "urdu"
)

// ParseLanguage 解析存储中的语言值，无法识别的值回退到英语。
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageEnglish, LanguageUrdu:
		return Language(s)
	default:
		return LanguageEnglish
	}
}

// SpeechTag 返回该语言对应的 BCP-47 语音标签，供 speak(text, languageTag) 协作方使用。
func (l Language) SpeechTag() string {
	if l == LanguageUrdu {
		return "ur-PK"
	}
	return "en-US"
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn 代表对话记录中的单条消息。
type Turn struct {
	Role      string    `json:"role"` // "user" 或 "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session 是每个客户端的会话状态：当前语言、显示名称与对话记录。
// 通过指针传递；mu 用于串行化同一会话上的回合处理。
type Session struct {
	ClientID        string     `json:"clientId"`
	ActiveLanguage  Language   `json:"activeLanguage"`
	UserDisplayName string     `json:"userDisplayName,omitempty"`
	FirstTurn       bool       `json:"-"`
	Log             []Turn     `json:"conversationLog"`
	mu              sync.Mutex `json:"-"`
}

// NewSession 创建一个默认英语的全新会话。
func NewSession(clientID string) *Session {
	return &Session{
		ClientID:       clientID,
		ActiveLanguage: LanguageEnglish,
		FirstTurn:      true,
	}
}

// Lock 获取会话级别的回合锁，保证同一会话内一次只处理一条消息。
func (s *Session) Lock() { s.mu.Lock() }

// Unlock 释放会话级别的回合锁。
func (s *Session) Unlock() { s.mu.Unlock() }

// AppendTurn 以追加方式记录一条消息并返回它。记录顺序即时间顺序。
func (s *Session) AppendTurn(role, content string) Turn {
	turn := Turn{Role: role, Content: content, Timestamp: time.Now()}
	s.Log = append(s.Log, turn)
	return turn
}

// LastTurn 返回记录中的最后一条消息；记录为空时返回零值。
func (s *Session) LastTurn() Turn {
	if len(s.Log) == 0 {
		return Turn{}
	}
	return s.Log[len(s.Log)-1]
}
