package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchTermsPromptIncludesQuery(t *testing.T) {
	prompt := searchTermsPrompt("a cozy mystery set in a lighthouse")
	assert.Contains(t, prompt, "a cozy mystery set in a lighthouse")
	assert.Contains(t, prompt, "ONLY the keywords")
}

func TestRecommendationPromptWithHistory(t *testing.T) {
	prompt := recommendationPrompt([]string{"Dune", "Hyperion"}, "something with less sand")
	assert.Contains(t, prompt, "- Dune\n")
	assert.Contains(t, prompt, "- Hyperion\n")
	assert.Contains(t, prompt, "something with less sand")
	assert.NotContains(t, prompt, "no purchase history")
}

func TestRecommendationPromptWithoutHistory(t *testing.T) {
	prompt := recommendationPrompt(nil, "")
	assert.Contains(t, prompt, "no purchase history")
	assert.NotContains(t, prompt, "The reader says:")
}

func TestSummaryPrompt(t *testing.T) {
	prompt := summaryPrompt("Piranesi", []string{"Susanna Clarke"}, "A man lives in a strange house.")
	assert.Contains(t, prompt, `"Piranesi"`)
	assert.Contains(t, prompt, "Susanna Clarke")
	assert.Contains(t, prompt, "A man lives in a strange house.")

	// Missing authors fall back to a placeholder byline.
	prompt = summaryPrompt("Anonymous Work", nil, "desc")
	assert.Contains(t, prompt, "unknown author")
}
