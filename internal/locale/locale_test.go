package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hi", Normalize("hi"))
	assert.Equal(t, "en", Normalize(""))
	assert.Equal(t, "en", Normalize("xx"))
	assert.Equal(t, "en", Normalize("EN"), "codes are case sensitive")
}

func TestLookupsFallBackToEnglish(t *testing.T) {
	// Only a subset of languages has localized fallback text; the rest
	// read the English entry rather than an empty string.
	assert.Equal(t, FallbackMessage("en"), FallbackMessage("gu"))
	assert.NotEmpty(t, WelcomeMessage("ur"))
	assert.NotEqual(t, WelcomeMessage("en"), WelcomeMessage("ur"))
}

func TestEnsureDisclaimer(t *testing.T) {
	out := EnsureDisclaimer("You can contest the eviction notice.", "en")
	assert.True(t, strings.Contains(out, DisclaimerMarker))
	assert.True(t, strings.HasPrefix(out, "You can contest"))

	// A reply that already carries the marker is left untouched.
	assert.Equal(t, out, EnsureDisclaimer(out, "en"))

	hindi := EnsureDisclaimer("उत्तर", "hi")
	assert.Contains(t, hindi, Disclaimer("hi"))
}

func TestSystemPromptLocalized(t *testing.T) {
	assert.NotEqual(t, SystemPrompt("en"), SystemPrompt("hi"))
	assert.Equal(t, SystemPrompt("en"), SystemPrompt("xx"))
}

func TestUploadPromptMentionsFile(t *testing.T) {
	assert.Contains(t, UploadPrompt("lease.pdf", "en"), "lease.pdf")
}
