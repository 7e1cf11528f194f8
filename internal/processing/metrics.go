package processing

import (
	"strconv"
	"strings"

	"github.com/spacesedan/chatlog/internal/models"
)

const (
	DetailDetailed = "Detailed"
	DetailBrief    = "Brief"

	// DetailedThreshold is the average words per message at which a
	// conversation counts as detailed.
	DetailedThreshold = 20.0
)

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CalculateMetrics derives message and word counts for one conversation.
func CalculateMetrics(messages []models.MessageRecord) models.ConversationMetrics {
	metrics := models.ConversationMetrics{
		TotalMessages: len(messages),
	}
	for _, msg := range messages {
		metrics.TotalWords += WordCount(msg.Message)
	}

	if metrics.TotalMessages > 0 {
		metrics.AvgWords = roundTo2(float64(metrics.TotalWords) / float64(metrics.TotalMessages))
	}

	metrics.Detail = DetailBrief
	if metrics.AvgWords >= DetailedThreshold {
		metrics.Detail = DetailDetailed
	}
	return metrics
}

// roundTo2 rounds through the shortest decimal formatting so exact binary
// halves (e.g. 2.125) round to even, the same as a correctly rounded decimal
// conversion.
func roundTo2(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
