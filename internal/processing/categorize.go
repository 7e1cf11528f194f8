package processing

import (
	"slices"
	"strings"

	"github.com/spacesedan/chatlog/internal/models"
)

// Categorize counts, per category, how many messages matched it and picks the
// dominant category. Each message lands in exactly one bucket.
func Categorize(messages []models.MessageRecord) models.CategorizationResult {
	counts := make(map[string]int, len(CategoryPriority))

	for _, msg := range messages {
		counts[matchCategory(strings.ToLower(msg.Message))]++
	}

	ordered := make([]models.CategoryCount, 0, len(CategoryMatchOrder)+1)
	maxCount := 0
	for _, category := range append(append([]string(nil), CategoryMatchOrder...), CategoryOther) {
		count := counts[category]
		ordered = append(ordered, models.CategoryCount{Category: category, Count: count})
		if count > maxCount {
			maxCount = count
		}
	}

	var top []string
	for _, c := range ordered {
		if c.Count == maxCount {
			top = append(top, c.Category)
		}
	}

	dominant := top[0]
	if len(top) > 1 {
		dominant = breakTie(top)
	}

	return models.CategorizationResult{
		Counts:         ordered,
		Dominant:       dominant,
		Tied:           len(top) > 1,
		Recommendation: CategoryRecommendations[dominant],
	}
}

func matchCategory(text string) string {
	for _, category := range CategoryMatchOrder {
		for _, keyword := range CategoryKeywords[category] {
			if strings.Contains(text, strings.ToLower(keyword)) {
				return category
			}
		}
	}
	return CategoryOther
}

func breakTie(tied []string) string {
	for _, category := range CategoryPriority {
		if slices.Contains(tied, category) {
			return category
		}
	}
	return tied[0]
}
