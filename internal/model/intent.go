package model

// Intent 是分配给一条用户输入的唯一类别标签，决定使用哪一族回复。
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentFarewell       Intent = "farewell"
	IntentAboutSubject   Intent = "about-subject"
	IntentProjectInquiry Intent = "project-inquiry"
	IntentSkillInquiry   Intent = "skill-inquiry"
	IntentContactRequest Intent = "contact-request"
	IntentJokeRequest    Intent = "joke-request"
	IntentSearchQuery    Intent = "search-query"
	IntentLanguageChange Intent = "language-change"
	IntentHelpRequest    Intent = "help-request"
	IntentUnknown        Intent = "unknown"
)

// SearchResult 是模拟搜索的结果。
// Default 为 true 表示没有命中任何话题，Answer 是嵌入原始查询的兜底模板，
// 调用方据此区分真实话题回答与通用填充。
type SearchResult struct {
	Answer  string `json:"answer"`
	Default bool   `json:"default"`
}
