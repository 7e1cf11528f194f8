package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/chatlog/internal/models"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"

	compoundThreshold = 0.20
)

var (
	analyzer = govader.NewSentimentIntensityAnalyzer()

	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders Markdown and strips the resulting tags so
// chat messages pasted with formatting score like plain text.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)

	// No smartypants: curly quotes would hide contractions from the lexicon.
	plainRenderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{})
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(plainRenderer),
	)
	plain := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))
	return strings.Join(strings.Fields(plain), " ")
}

// CrossCheck scores a conversation with the VADER lexicon. It sits next to the
// keyword score in the report and does not feed into it.
func CrossCheck(messages []models.MessageRecord) models.LexiconCheck {
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, ConvertMarkdownToText(msg.Message))
	}

	score := analyzer.PolarityScores(strings.Join(parts, " ")).Compound

	label := LabelNeutral
	if score >= compoundThreshold {
		label = LabelPositive
	} else if score <= -compoundThreshold {
		label = LabelNegative
	}

	return models.LexiconCheck{Compound: score, Label: label}
}
