package models

type ConversationMetrics struct {
	TotalMessages int     `json:"total_messages"`
	TotalWords    int     `json:"total_words"`
	AvgWords      float64 `json:"avg_words"`
	Detail        string  `json:"conversation_detail"`
}

type SentimentResult struct {
	PositiveCount int    `json:"positive_count"`
	NegativeCount int    `json:"negative_count"`
	Score         int    `json:"sentiment_score"`
	Category      string `json:"sentiment_category"`
}

// LexiconCheck is the VADER compound score for a whole conversation. It is
// reported next to the keyword sentiment and never replaces it.
type LexiconCheck struct {
	Compound float64 `json:"compound"`
	Label    string  `json:"label"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CategorizationResult struct {
	// Counts follows the category match order with Other last.
	Counts         []CategoryCount `json:"category_counts"`
	Dominant       string          `json:"dominant_category"`
	Tied           bool            `json:"tied"`
	Recommendation string          `json:"recommendation"`
}
