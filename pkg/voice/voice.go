// Package voice 定义了语音协作方的下行指令。
// 服务端不做语音合成；speak(text, languageTag) 由客户端执行，
// 这里只负责把回复包装成带语言标签的朗读指令。
package voice

import "zyron-go/internal/model"

// Directive 是随助手回复下发的朗读指令。
type Directive struct {
	Text string `json:"text"`
	Lang string `json:"lang"` // BCP-47 标签: en-US 或 ur-PK
}

// Speak 为一条回复构造朗读指令。
func Speak(text string, lang model.Language) Directive {
	return Directive{
		Text: text,
		Lang: lang.SpeechTag(),
	}
}
