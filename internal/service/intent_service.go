// Package service 包含了应用的业务逻辑层。
package service

import (
	"strings"

	"zyron-go/internal/lexicon"
	"zyron-go/internal/model"
)

// IntentService 定义了语言检测与意图识别的接口。
type IntentService interface {
	// Detect 是纯函数：文本包含任意阿拉伯文区段字符时返回乌尔都语，否则返回英语。
	Detect(text string) model.Language
	// Classify 把一条输入归入唯一的意图标签。
	Classify(text string) model.Intent
}

type intentService struct{}

// NewIntentService 创建一个新的 IntentService 实例。
func NewIntentService() IntentService {
	return &intentService{}
}

// Detect 检查文本是否含有阿拉伯文区段 (U+0600–U+06FF) 的字符。
func (s *intentService) Detect(text string) model.Language {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return model.LanguageUrdu
		}
	}
	return model.LanguageEnglish
}

// Classify 将输入小写并去除首尾空白后，按固定优先级做子串匹配，
// 返回第一个命中类别的标签；全部未命中返回 unknown。
// 子串匹配不做词边界保护（例如 "hi" 会命中包含它的单词），这是既有行为。
func (s *intentService) Classify(text string) model.Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, rule := range lexicon.Rules() {
		for _, trigger := range rule.Triggers {
			if strings.Contains(normalized, trigger) {
				return rule.Intent
			}
		}
	}
	return model.IntentUnknown
}
