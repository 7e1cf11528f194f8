package sentiment

import (
	"strings"

	"github.com/spacesedan/chatlog/internal/models"
)

const (
	CategoryPositive = "Positive"
	CategoryNegative = "Negative"
	CategoryNeutral  = "Neutral"
)

var (
	PositiveKeywords = []string{"happy", "great", "satisfied", "good", "excellent"}
	NegativeKeywords = []string{"problem", "issue", "complaint", "bad", "unsatisfied"}
)

// Score counts keyword occurrences across the whole conversation. Matching is
// plain substring counting, so "bad" inside "badge" counts and "unsatisfied"
// also counts as "satisfied".
func Score(messages []models.MessageRecord) models.SentimentResult {
	text := joinLower(messages)

	result := models.SentimentResult{
		PositiveCount: countAll(text, PositiveKeywords),
		NegativeCount: countAll(text, NegativeKeywords),
	}
	result.Score = result.PositiveCount - result.NegativeCount

	switch {
	case result.Score > 0:
		result.Category = CategoryPositive
	case result.Score < 0:
		result.Category = CategoryNegative
	default:
		result.Category = CategoryNeutral
	}
	return result
}

func joinLower(messages []models.MessageRecord) string {
	lowered := make([]string, 0, len(messages))
	for _, msg := range messages {
		lowered = append(lowered, strings.ToLower(msg.Message))
	}
	return strings.Join(lowered, " ")
}

func countAll(text string, keywords []string) int {
	total := 0
	for _, keyword := range keywords {
		total += strings.Count(text, keyword)
	}
	return total
}
