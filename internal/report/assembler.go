package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spacesedan/chatlog/internal/models"
	"github.com/spacesedan/chatlog/internal/processing"
	"github.com/spacesedan/chatlog/internal/sentiment"
)

type Options struct {
	// LexiconCheck appends a VADER cross-check block to every conversation.
	LexiconCheck bool
}

// Analysis holds everything derived for one conversation.
type Analysis struct {
	ConversationID string
	Messages       []models.MessageRecord
	Metrics        models.ConversationMetrics
	Sentiment      models.SentimentResult
	Categorization models.CategorizationResult
	Lexicon        *models.LexiconCheck
}

// Analyze runs every calculator over one conversation.
func Analyze(id string, messages []models.MessageRecord, opts Options) Analysis {
	a := Analysis{
		ConversationID: id,
		Messages:       messages,
		Metrics:        processing.CalculateMetrics(messages),
		Sentiment:      sentiment.Score(messages),
		Categorization: processing.Categorize(messages),
	}
	if opts.LexiconCheck {
		check := sentiment.CrossCheck(messages)
		a.Lexicon = &check
	}
	return a
}

// Assemble builds the analysis report for every conversation in first-seen order.
func Assemble(conversations *models.ConversationSet, opts Options) string {
	var b strings.Builder

	writeFormulas(&b)

	b.WriteString("# Conversation Analysis Summary:\n")
	b.WriteString(fmt.Sprintf("- Total Conversations Evaluated: %d\n\n", conversations.Len()))

	b.WriteString("# Detailed Analysis for Each Conversation:\n")
	for _, id := range conversations.IDs() {
		writeConversation(&b, Analyze(id, conversations.Messages(id), opts))
	}

	b.WriteString("# Feedback Request\n\n")
	b.WriteString("Would you like detailed calculations for any specific conversation? Please rate this analysis on a scale of 1-5.\n")

	return b.String()
}

func writeFormulas(b *strings.Builder) {
	b.WriteString("# Formulas Used:\n")
	b.WriteString("1. Average Words per Message:\n")
	b.WriteString("   $$ \\text{Average Words} = \\frac{\\text{Total Words}}{\\text{Total Messages}} $$\n")
	b.WriteString("2. Sentiment Score:\n")
	b.WriteString("   $$ \\text{Sentiment Score} = \\text{(Count of Positive Words)} - \\text{(Count of Negative Words)} $$\n\n")
}

func writeConversation(b *strings.Builder, a Analysis) {
	m := a.Metrics
	s := a.Sentiment
	c := a.Categorization

	b.WriteString(fmt.Sprintf("## Conversation ID: %s\n\n", a.ConversationID))

	b.WriteString("### Input Data Summary:\n")
	b.WriteString(fmt.Sprintf("- Total Messages: %d\n", m.TotalMessages))
	b.WriteString(fmt.Sprintf("- Total Words: %d\n", m.TotalWords))
	b.WriteString(fmt.Sprintf("- Average Words per Message: %s words\n\n", formatAverage(m.AvgWords)))

	b.WriteString("### Step-by-Step Calculations:\n")
	b.WriteString("1. **Calculate Total Messages:**\n")
	b.WriteString(fmt.Sprintf("   - Count of messages in conversation: %d\n\n", m.TotalMessages))

	b.WriteString("2. **Calculate Total Words:**\n")
	b.WriteString("   - Words from each message:\n")
	for i, msg := range a.Messages {
		b.WriteString(fmt.Sprintf("     - Message %d: %d words\n", i+1, processing.WordCount(msg.Message)))
	}
	b.WriteString(fmt.Sprintf("   - Sum of all word counts: %d words\n\n", m.TotalWords))

	b.WriteString("3. **Calculate the Average Words per Message:**\n")
	b.WriteString("   - Average Words = Total Words / Total Messages\n")
	b.WriteString(fmt.Sprintf("   - Average Words = %d / %d = %s words\n\n", m.TotalWords, m.TotalMessages, formatAverage(m.AvgWords)))

	b.WriteString("4. **Determine Conversation Detail Level:**\n")
	b.WriteString(fmt.Sprintf("   - IF Average Words (%s) ≥ 20, THEN \"Detailed\"\n", formatAverage(m.AvgWords)))
	b.WriteString("   - ELSE \"Brief\"\n")
	b.WriteString(fmt.Sprintf("   - Result: Conversation is \"%s\"\n\n", m.Detail))

	b.WriteString("5. **Sentiment Analysis:**\n")
	b.WriteString("   - Count of positive words in all messages:\n")
	b.WriteString(fmt.Sprintf("     - Words checked: %s\n", strings.Join(sentiment.PositiveKeywords, ", ")))
	b.WriteString(fmt.Sprintf("     - Count: %d\n", s.PositiveCount))
	b.WriteString("   - Count of negative words in all messages:\n")
	b.WriteString(fmt.Sprintf("     - Words checked: %s\n", strings.Join(sentiment.NegativeKeywords, ", ")))
	b.WriteString(fmt.Sprintf("     - Count: %d\n", s.NegativeCount))
	b.WriteString("   - Sentiment Score calculation:\n")
	b.WriteString("     - Sentiment Score = Positive Words Count - Negative Words Count\n")
	b.WriteString(fmt.Sprintf("     - Sentiment Score = %d - %d = %d\n", s.PositiveCount, s.NegativeCount, s.Score))
	b.WriteString("   - Sentiment categorization:\n")
	b.WriteString(fmt.Sprintf("     - IF Score (%d) > 0, THEN \"Positive\"\n", s.Score))
	b.WriteString(fmt.Sprintf("     - ELSE IF Score (%d) < 0, THEN \"Negative\"\n", s.Score))
	b.WriteString("     - ELSE \"Neutral\"\n")
	b.WriteString(fmt.Sprintf("     - Result: Sentiment is \"%s\"\n\n", s.Category))

	b.WriteString("6. **Chat Categorization:**\n")
	b.WriteString("   - Keyword counts for each category:\n")
	for _, cc := range c.Counts {
		if cc.Category == processing.CategoryOther {
			b.WriteString(fmt.Sprintf("     - %s: %d (No specific keywords matched)\n", cc.Category, cc.Count))
			continue
		}
		keywords := strings.Join(processing.CategoryKeywords[cc.Category], ", ")
		b.WriteString(fmt.Sprintf("     - %s: %d (Keywords: %s)\n", cc.Category, cc.Count, keywords))
	}

	b.WriteString("   - Determining dominant category:\n")
	if c.Tied {
		b.WriteString("     - Multiple categories tied with highest count\n")
		b.WriteString(fmt.Sprintf("     - Using priority order: %s\n", strings.Join(processing.CategoryPriority, " > ")))
		b.WriteString(fmt.Sprintf("     - Highest priority category among ties: %s\n", c.Dominant))
	} else {
		b.WriteString(fmt.Sprintf("     - Category with highest count: %s\n", c.Dominant))
	}

	b.WriteString("\n7. **Customer Service Enhancement Recommendation:**\n")
	b.WriteString(fmt.Sprintf("   - Based on dominant category \"%s\"\n", c.Dominant))
	b.WriteString(fmt.Sprintf("   - Recommendation: %s\n\n", c.Recommendation))

	b.WriteString("### Final Summary:\n")
	b.WriteString(fmt.Sprintf("- Conversation Detail: %s\n", m.Detail))
	b.WriteString(fmt.Sprintf("- Sentiment Category: %s\n", s.Category))
	b.WriteString(fmt.Sprintf("- Dominant Chat Category: %s\n", c.Dominant))
	b.WriteString(fmt.Sprintf("- Service Recommendation: %s\n\n", c.Recommendation))

	if a.Lexicon != nil {
		b.WriteString("### Lexicon Cross-Check:\n")
		b.WriteString(fmt.Sprintf("- VADER Compound Score: %.4f\n", a.Lexicon.Compound))
		b.WriteString(fmt.Sprintf("- VADER Label: %s\n", a.Lexicon.Label))
		b.WriteString(fmt.Sprintf("- Agrees with Keyword Sentiment: %s\n\n", yesNo(strings.EqualFold(a.Lexicon.Label, s.Category))))
	}
}

// formatAverage prints the shortest decimal that round-trips, keeping at least
// one fractional digit: 5.0, 7.8, 2.12.
func formatAverage(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
