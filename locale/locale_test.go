package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	lang, err := Parse("en")
	assert.NoError(t, err)
	assert.Equal(t, English, lang)

	lang, err = Parse("ar")
	assert.NoError(t, err)
	assert.Equal(t, Arabic, lang)

	for _, raw := range []string{"", "EN", "fr", "arabic"} {
		_, err := Parse(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestDirectionAndToggle(t *testing.T) {
	assert.Equal(t, "ltr", English.Direction())
	assert.Equal(t, "rtl", Arabic.Direction())
	assert.Equal(t, Arabic, English.Toggle())
	assert.Equal(t, English, Arabic.Toggle())
}

func TestTablesComplete(t *testing.T) {
	for _, lang := range []Language{English, Arabic} {
		s := T(lang)
		assert.NotEmpty(t, s.Title, "lang=%s", lang)
		assert.NotEmpty(t, s.Success, "lang=%s", lang)
		assert.NotEmpty(t, s.Apology, "lang=%s", lang)
		assert.NotEmpty(t, s.PaymentNotDone, "lang=%s", lang)
		assert.NotEmpty(t, s.RatingThanks, "lang=%s", lang)
		assert.NotEmpty(t, s.TipsPrompt, "lang=%s", lang)
		assert.NotEmpty(t, s.ContactPrompt, "lang=%s", lang)
		for i, star := range s.Stars {
			assert.NotEmpty(t, star, "lang=%s star=%d", lang, i+1)
		}
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, T(English), T(Language("xx")))
}

func TestStarLabel(t *testing.T) {
	assert.Equal(t, "Poor", English.StarLabel(1))
	assert.Equal(t, "Excellent", English.StarLabel(5))
	assert.Equal(t, "ممتاز", Arabic.StarLabel(5))
	assert.Empty(t, English.StarLabel(0))
	assert.Empty(t, English.StarLabel(6))
}
