package lexicon

import (
	"strings"
	"testing"

	"zyron-go/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEveryRuleIntentHasEnglishCoverage(t *testing.T) {
	assert := assert.New(t)

	for _, rule := range Rules() {
		switch rule.Intent {
		case model.IntentSearchQuery, model.IntentLanguageChange:
			// 这两个意图不走模板，由搜索兜底和语言切换逻辑处理
			continue
		}
		assert.NotEmpty(Templates(rule.Intent, model.LanguageEnglish), "intent %s", rule.Intent)
	}
	assert.NotEmpty(Templates(model.IntentUnknown, model.LanguageEnglish))
}

func TestGreetingAndFarewellTemplatesCarryNameSlot(t *testing.T) {
	assert := assert.New(t)

	for _, intent := range []model.Intent{model.IntentGreeting, model.IntentFarewell} {
		for _, lang := range []model.Language{model.LanguageEnglish, model.LanguageUrdu} {
			for _, tmpl := range Templates(intent, lang) {
				assert.Contains(tmpl, NameSlot, "intent %s lang %s", intent, lang)
			}
		}
	}
}

func TestTriggersAreLowercase(t *testing.T) {
	assert := assert.New(t)

	// 分类前输入会统一转小写，触发词必须已是小写才可能命中
	for _, rule := range Rules() {
		for _, trigger := range rule.Triggers {
			assert.Equal(strings.ToLower(trigger), trigger, "intent %s trigger %q", rule.Intent, trigger)
		}
	}
}

func TestDefaultSearchAnswerEmbedsQuery(t *testing.T) {
	assert := assert.New(t)

	assert.Contains(DefaultSearchAnswer("xyzzy", model.LanguageEnglish), `"xyzzy"`)
	assert.Contains(DefaultSearchAnswer("xyzzy", model.LanguageUrdu), `"xyzzy"`)
}

func TestBilingualCoverageOfFixedPhrases(t *testing.T) {
	assert := assert.New(t)

	for _, lang := range []model.Language{model.LanguageEnglish, model.LanguageUrdu} {
		assert.NotEmpty(Welcome(lang))
		assert.NotEmpty(ProcessingError(lang))
		assert.NotEmpty(SearchUnavailable(lang))
		assert.NotEmpty(LanguageKeywords(lang))
		assert.NotEmpty(LanguageConfirmation(lang))
		assert.NotEmpty(LanguageToggleConfirmation(lang))
		assert.NotEmpty(LanguageCapabilityNotice(lang))
	}
}
