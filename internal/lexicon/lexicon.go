// Package lexicon 存放驱动意图识别与回复生成的静态双语词表。
// 数据按 (类别, 语言) 组织；乌尔都语缺失的类别由调用方回退到英语。
package lexicon

import (
	"fmt"
	"regexp"

	"zyron-go/internal/model"
)

// NameSlot 是模板中的用户名占位符。有名字时替换为 " <name>"，否则替换为空串。
const NameSlot = "{name}"

// Rule 将一个意图和它的触发子串绑定在一起。
type Rule struct {
	Intent   model.Intent
	Triggers []string
}

// rules 按固定优先级排列，首个匹配即胜出。该顺序是对外行为的一部分，不能调整。
var rules = []Rule{
	{model.IntentGreeting, []string{
		"hello", "hi", "hey", "hola", "namaste", "salam", "assalam",
		"good morning", "good afternoon", "good evening",
		"السلام علیکم", "ہیلو", "ہائے", "آداب",
	}},
	{model.IntentFarewell, []string{
		"bye", "goodbye", "see you", "farewell", "take care",
		"خدا حافظ", "اللہ حافظ", "بائے", "چلتا ہوں",
	}},
	{model.IntentAboutSubject, []string{
		"zain", "about", "who are you", "yourself", "introduce",
		"تعارف", "ذین", "اپنے بارے", "کون ہو",
	}},
	{model.IntentProjectInquiry, []string{
		"project", "work", "portfolio", "build", "create", "developed",
		"پراجیکٹ", "کام", "پورٹفولیو", "بنایا",
	}},
	{model.IntentSkillInquiry, []string{
		"skill", "technology", "know", "expert", "learn", "able to",
		"ہنر", "مہارت", "ٹیکنالوجی", "آتا ہے",
	}},
	{model.IntentContactRequest, []string{
		"contact", "email", "phone", "number", "reach", "get in touch",
		"رابطہ", "ای میل", "فون", "نمبر",
	}},
	{model.IntentJokeRequest, []string{
		"joke", "funny", "laugh", "humor", "comedy", "entertain",
		"مذاق", "جوك", "ہنسی", "تفریح",
	}},
	{model.IntentSearchQuery, []string{
		"search", "find", "look up", "what is", "who is", "how to",
		"تلاش", "ڈھونڈ", "کیا ہے", "کس طرح",
	}},
	{model.IntentLanguageChange, []string{
		"english", "urdu", "hindi", "arabic", "language",
		"زبان", "انگریزی", "اردو", "ہندی", "عربی",
	}},
	{model.IntentHelpRequest, []string{
		"help", "assist", "support", "guide", "what can you do",
		"مدد", "سہارا", "رہنمائی", "کیا کر سکتے",
	}},
}

// Rules 返回按优先级排列的意图触发规则。
func Rules() []Rule {
	return rules
}

// templates 是 (类别, 语言) 到回复模板序列的映射。
var templates = map[model.Intent]map[model.Language][]string{
	model.IntentGreeting: {
		model.LanguageEnglish: {
			"Hello{name}! I'm Zyron, your AI assistant. How can I help you today?",
			"Hi there{name}! I'm Zyron. What would you like to know?",
			"Hey{name}! Great to see you. How can I assist you?",
		},
		model.LanguageUrdu: {
			"السلام علیکم{name}! میں زیڈرون ہوں، آپ کا AI اسسٹنٹ۔ میں آپ کی کس طرح مدد کر سکتا ہوں؟",
			"ہیلو{name}! میں زیڈرون ہوں۔ آپ کیا جاننا چاہیں گے؟",
			"آداب{name}! آپ کو دیکھ کر اچھا لگا۔ میں آپ کی کس طرح مدد کر سکتا ہوں؟",
		},
	},
	model.IntentFarewell: {
		model.LanguageEnglish: {
			"Goodbye{name}! It was great talking with you. Feel free to come back anytime!",
			"See you later{name}! Don't hesitate to ask if you need anything else.",
			"Take care{name}! I'm always here when you need assistance.",
		},
		model.LanguageUrdu: {
			"اللہ حافظ{name}! آپ سے بات کر کے اچھا لگا۔ کسی بھی وقت واپس آئیے!",
			"پھر ملیں گے{name}! اگر آپ کو کچھ اور چاہیے تو ضرور پوچھیں۔",
			"خدا حافظ{name}! جب بھی آپ کو مدد کی ضرورت ہو، میں یہیں ہوں۔",
		},
	},
	model.IntentAboutSubject: {
		model.LanguageEnglish: {
			"I'm Zyron, the AI assistant for Zain-ul-Abideen's portfolio. Zain is a 16-year-old web developer from Mian Channu, Pakistan. He scored 1107/1200 in Matric and is currently studying Intermediate Part 1. He's passionate about web development and has skills in HTML, CSS, JavaScript, and MS Office.",
		},
		model.LanguageUrdu: {
			"میں زیڈرون ہوں، زین ال عابدین کے پورٹفولیو کا AI اسسٹنٹ۔ زین میاں چنو، پاکستان کا ایک 16 سالہ ویب ڈویلپر ہے۔ اس نے میٹرک میں 1107/1200 نمبر حاصل کیے اور فی الحال انٹرمیڈیٹ پارٹ 1 کی تعلیم حاصل کر رہا ہے۔ اسے ویب ڈویلپمنٹ کا شوق ہے اور اسے HTML، CSS، JavaScript اور MS Office میں مہارت حاصل ہے۔",
		},
	},
	model.IntentProjectInquiry: {
		model.LanguageEnglish: {
			"Zain has worked on several projects:\n\n• Portfolio Website: A responsive website with dark mode and animations\n• Amazon Clone: A practice project replicating Amazon's UI\n\nYou can view these projects in the Projects section above. Would you like to know more about any specific project?",
		},
		model.LanguageUrdu: {
			"زین نے کئی پراجیکٹس پر کام کیا ہے:\n\n• پورٹفولیو ویب سائٹ: ڈارک موڈ اور اینیمیشنز والی ریسپانسیو ویب سائٹ\n• ایمیزون کلون: ایمیزون کے UI کی نقل کرتا ہوا ایک پریکٹس پراجیکٹ\n\nآپ ان پراجیکٹس کو اوپر والے پراجیکٹس سیکشن میں دیکھ سکتے ہیں۔ کیا آپ کسی خاص پراجیکٹ کے بارے میں مزید جاننا چاہیں گے؟",
		},
	},
	model.IntentSkillInquiry: {
		model.LanguageEnglish: {
			"Zain's technical skills include:\n\n• HTML5 & CSS3: Advanced level\n• JavaScript: Intermediate level\n• Responsive Design: Expert level\n• Git & GitHub: Basic level\n• MS Office: Advanced level\n\nHe's constantly learning and improving his skills!",
		},
		model.LanguageUrdu: {
			"زین کی تکنیکی مہارتیں شامل ہیں:\n\n• HTML5 & CSS3: ایڈوانسڈ لیول\n• JavaScript: انٹرمیڈیٹ لیول\n• ریسپانسیو ڈیزائن: ایکسپرٹ لیول\n• Git & GitHub: بیسک لیول\n• MS Office: ایڈوانسڈ لیول\n\nوہ مسلسل سیکھ رہا ہے اور اپنی مہارتیں بہتر کر رہا ہے!",
		},
	},
	model.IntentContactRequest: {
		model.LanguageEnglish: {
			"You can contact Zain through:\n\n📧 Email: bloodprince798@gmail.com\n📞 Phone: +92 309 0476955\n📍 Location: Mian Channu, Punjab, Pakistan\n\nFeel free to reach out for collaborations or questions!",
		},
		model.LanguageUrdu: {
			"آپ زین سے اس طرح رابطہ کر سکتے ہیں:\n\n📧 ای میل: bloodprince798@gmail.com\n📞 فون: +92 309 0476955\n📍 مقام: میاں چنو، پنجاب، پاکستان\n\nتعاون یا سوالات کے لیے بلا جھجھک رابطہ کریں!",
		},
	},
	model.IntentJokeRequest: {
		model.LanguageEnglish: {
			"Why do programmers prefer dark mode? Because light attracts bugs! 🐛",
			"Why did the developer go broke? Because he used up all his cache! 💰",
			"What's a programmer's favorite hangout place? The Foo Bar! 🍻",
			"Why do programmers confuse Halloween and Christmas? Because Oct 31 equals Dec 25! 🎃🎄",
		},
		model.LanguageUrdu: {
			"پروگرامر ڈارک موڈ کیوں پسند کرتے ہیں؟ کیونکہ روشنی کیڑوں کو کھینچتی ہے! 🐛",
			"ڈویلپر کنگال کیوں ہو گیا؟ کیونکہ اس نے اپنی تمام کیش استعمال کر لی! 💰",
			"پروگرامر کی پسندیدہ جگہ کون سی ہے؟ فو بار! 🍻",
			"پروگرامر ہالووین اور کرسمس میں کیوں الجھن میں پڑتے ہیں؟ کیونکہ اکتوبر 31 دسمبر 25 کے برابر ہے! 🎃🎄",
		},
	},
	model.IntentHelpRequest: {
		model.LanguageEnglish: {
			"I can help you with:\n\n• Information about Zain\n• Project details\n• Skills and technologies\n• Contact information\n• Web searches\n• Jokes and fun facts\n• Language switching (English/Urdu)\n\nJust ask me anything!",
		},
		model.LanguageUrdu: {
			"میں آپ کی ان چیزوں میں مدد کر سکتا ہوں:\n\n• زین کے بارے میں معلومات\n• پراجیکٹ کی تفصیلات\n• مہارتیں اور ٹیکنالوجیز\n• رابطہ کی معلومات\n• ویب سرچز\n• لطیفے اور دلچسپ حقائق\n• زبان کی تبدیلی (انگریزی/اردو)\n\nمجھ سے کچھ بھی پوچھیں!",
		},
	},
	model.IntentUnknown: {
		model.LanguageEnglish: {
			"That's an interesting question! I'm still learning, but I'd be happy to help with information about Zain, his projects, or web development in general.",
			"I'm not sure I understand completely. Could you rephrase that? I'm great at answering questions about Zain's portfolio and skills!",
			"I'm constantly learning new things. Right now, I can best assist you with questions about Zain's work, projects, and web development topics.",
		},
		model.LanguageUrdu: {
			"یہ ایک دلچسپ سوال ہے! میں ابھی سیکھ رہا ہوں، لیکن میں زین، اس کے پراجیکٹس، یا ویب ڈویلپمنٹ کے بارے میں معلومات دے کر مدد کرنے میں خوش ہوں گا۔",
			"مجھے یقین نہیں کہ میں مکمل طور پر سمجھ پایا۔ کیا آپ اسے دوبارہ کہہ سکتے ہیں؟ میں زین کے پورٹفولیو اور مہارتوں کے بارے میں سوالات کے جواب دینے میں ماہر ہوں!",
			"میں مسلسل نئی چیزیں سیکھ رہا ہوں۔ فی الحال، میں زین کے کام، پراجیکٹس، اور ویب ڈویلپمنٹ کے موضوعات کے بارے میں سوالات میں بہترین مدد کر سکتا ہوں۔",
		},
	},
}

// Templates 返回 (类别, 语言) 对应的模板序列；不存在时返回 nil，由调用方回退到英语。
func Templates(category model.Intent, lang model.Language) []string {
	byLang, ok := templates[category]
	if !ok {
		return nil
	}
	return byLang[lang]
}

// TopicAnswer 是模拟搜索词表中的一条 话题→答案 记录。
type TopicAnswer struct {
	Topic  string
	Answer string
}

// searchAnswers 按插入顺序匹配，与原始行为保持一致。
var searchAnswers = map[model.Language][]TopicAnswer{
	model.LanguageEnglish: {
		{"web development trends 2024", "Latest trends in 2024: AI integration, Web3, Progressive Web Apps, Serverless architecture, and enhanced cybersecurity measures."},
		{"latest javascript features", "Recent JavaScript features: ES2023 added Array findLast(), toSorted(), toReversed(). Top-level await, private class fields, and pattern matching are upcoming."},
		{"best programming practices", "Best practices: Write clean code, use version control, test-driven development, code reviews, continuous integration, and proper documentation."},
		{"how to learn web development", "Start with HTML/CSS, then JavaScript, learn responsive design, practice with projects, learn Git, explore frameworks like React, and build a portfolio."},
		{"what is react js", "React is a JavaScript library for building user interfaces, maintained by Facebook. It uses component-based architecture and virtual DOM for efficient updates."},
	},
	model.LanguageUrdu: {
		{"ویب ڈویلپمنٹ", "ویب ڈویلپمنٹ میں HTML، CSS اور JavaScript سیکھیں۔ جدید ٹرینڈز میں React، Vue، اور Node.js شامل ہیں۔"},
		{"جاوا سکرپٹ کیا ہے", "جاوا سکرپٹ ایک پروگرامنگ زبان ہے جو ویب صفحات کو انٹریکٹو بناتی ہے۔ یہ کلائنٹ سائیڈ اور سرور سائیڈ دونوں پر کام کرتی ہے۔"},
		{"پروگرامنگ کیسے سیکھیں", "پروگرامنگ سیکھنے کے لیے: پیایک زبان سے شروع کریں، معمول کی مشق کریں، پروجیکٹس بنائیں، آن لائن وسائل استعمال کریں، اور کمیونٹی میں شامل ہوں۔"},
	},
}

// SearchAnswers 返回指定语言的搜索词表；该语言没有词表时返回 nil。
func SearchAnswers(lang model.Language) []TopicAnswer {
	return searchAnswers[lang]
}

// DefaultSearchAnswer 构造未命中任何话题时的兜底回答，原样嵌入查询文本。
func DefaultSearchAnswer(query string, lang model.Language) string {
	if lang == model.LanguageUrdu {
		return fmt.Sprintf("میں نے \"%s\" کے بارے میں معلومات تلاش کی ہیں۔ یہ عام موضوع ہے، براہ کرم مزید مخصوص سوال کریں۔", query)
	}
	return fmt.Sprintf("I found information about \"%s\". This is a common topic, please be more specific with your question.", query)
}

// SearchUnavailable 返回模拟搜索自身失败时的静态致歉文案。
func SearchUnavailable(lang model.Language) string {
	if lang == model.LanguageUrdu {
		return "مجھے فی الحال live information تک رسائی میں دشواری ہو رہی ہے۔ براہ کرم کچھ دیر بعد کوشش کریں یا مجھ سے عمومی موضوعات کے بارے میں پوچھیں۔"
	}
	return "I'm having trouble accessing real-time information right now. Please try again later or ask me about general topics."
}

// Welcome 返回会话开始或清空后的欢迎语。
func Welcome(lang model.Language) string {
	if lang == model.LanguageUrdu {
		return "السلام علیکم! میں زیڈرون ہوں، آپ کا AI اسسٹنٹ۔ میں آپ کی کس طرح مدد کر سکتا ہوں؟"
	}
	return "Hello! I'm Zyron, your AI assistant. How can I help you today?"
}

// ProcessingError 返回管道异常时的通用错误回复。
func ProcessingError(lang model.Language) string {
	if lang == model.LanguageUrdu {
		return "آپ کی درخواست پر کارروائی میں دشواری ہو رہی ہے۔ براہ کرم دوبارہ کوشش کریں۔"
	}
	return "I'm having trouble processing your request. Please try again."
}

// LanguageKeywords 返回显式切换到某语言的关键字。
func LanguageKeywords(lang model.Language) []string {
	if lang == model.LanguageUrdu {
		return []string{"urdu", "اردو"}
	}
	return []string{"english", "انگریزی"}
}

// LanguageConfirmation 返回切换成功的确认语，使用切换后的新语言。
func LanguageConfirmation(lang model.Language) string {
	if lang == model.LanguageUrdu {
		return "زبان اردو میں تبدیل کر دی گئی ہے! اب میں اردو میں بات کروں گا۔"
	}
	return "Language changed to English! I'll now speak in English."
}

// LanguageToggleConfirmation 返回快捷切换动作的简短确认语。
func LanguageToggleConfirmation(lang model.Language) string {
	if lang == model.LanguageUrdu {
		return "زبان اردو میں تبدیل کر دی گئی ہے!"
	}
	return "Language changed to English!"
}

// LanguageCapabilityNotice 返回未指明目标语言时的能力说明，使用当前语言。
func LanguageCapabilityNotice(lang model.Language) string {
	if lang == model.LanguageUrdu {
		return "میں انگریزی اور اردو دونوں بول سکتا ہوں۔ زبان تبدیل کرنے کے لیے 'انگریزی بولو' یا 'اردو بولو' کہیں۔"
	}
	return "I can speak both English and Urdu. Just say 'speak Urdu' or 'speak English' to switch."
}

// NamePatterns 是首次交互时用于提取用户名的短语模式，按顺序尝试，首个匹配胜出。
var NamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:my name is|i am|call me) (\w+)`),
	regexp.MustCompile(`(?:میرا نام|نام) ([\p{L}\p{M}]+)`),
}
