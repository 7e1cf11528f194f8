package greeting

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	urgentWords = []string{"urgent", "asap", "emergency"}
	happyWords  = []string{"happy", "excited", "joyful", "great"}
	sadWords    = []string{"sad", "down", "unhappy"}
	angryWords  = []string{"angry", "frustrated", "mad"}

	namePattern = regexp.MustCompile(`my name is ([\p{L}\p{N}_]+)`)
)

const (
	urgentGreeting  = "ChatLogSummarizer-AI here! Let's quickly analyze your chat logs."
	namedGreeting   = "Hello, %s! I'm ChatLogSummarizer-AI, here to assist you with your chat log analysis."
	happyGreeting   = "Hello! It's great to see your positive tone. I'm here to help summarize your chat logs!"
	sadGreeting     = "Hello. I'm sorry you're feeling down. Let's work together to analyze your chat logs for insights."
	angryGreeting   = "Hello. I understand you're frustrated. Let's carefully review your chat logs for actionable insights."
	defaultGreeting = "Greetings! I am ChatLogSummarizer-AI, your assistant for categorizing and summarizing chat/email logs. Please share your chat log data in CSV or JSON format to begin."
)

// Greet picks a canned greeting for free text. Checks run in a fixed order and
// the first hit wins; all word checks are substring checks on the lower-cased
// text, so "download" reads as sad.
func Greet(text string) string {
	lower := strings.ToLower(text)

	if containsAny(lower, urgentWords) {
		return urgentGreeting
	}
	if m := namePattern.FindStringSubmatch(lower); m != nil {
		return fmt.Sprintf(namedGreeting, m[1])
	}
	if containsAny(lower, happyWords) {
		return happyGreeting
	}
	if containsAny(lower, sadWords) {
		return sadGreeting
	}
	if containsAny(lower, angryWords) {
		return angryGreeting
	}
	return defaultGreeting
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
