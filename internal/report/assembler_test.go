package report

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/spacesedan/chatlog/internal/models"
)

func buildSet(records ...models.MessageRecord) *models.ConversationSet {
	set := models.NewConversationSet()
	for _, r := range records {
		set.Add(r)
	}
	return set
}

func rec(id, text string) models.MessageRecord {
	return models.MessageRecord{ConversationID: id, Sender: "customer", Timestamp: "01-02-2023", Message: text}
}

func TestAssemble_SectionsInOrder(t *testing.T) {
	t.Parallel()

	out := Assemble(buildSet(rec("conv2", "hello there"), rec("conv1", "hi")), Options{})

	order := []string{
		"# Formulas Used:\n",
		"# Conversation Analysis Summary:\n- Total Conversations Evaluated: 2\n\n",
		"# Detailed Analysis for Each Conversation:\n",
		"## Conversation ID: conv2\n",
		"## Conversation ID: conv1\n",
		"# Feedback Request\n\n",
	}
	last := -1
	for _, token := range order {
		idx := strings.Index(out, token)
		if idx < 0 {
			t.Fatalf("report missing %q", token)
		}
		if idx <= last {
			t.Fatalf("%q out of order", token)
		}
		last = idx
	}
	if !strings.HasSuffix(out, "Please rate this analysis on a scale of 1-5.\n") {
		t.Fatalf("report missing feedback footer")
	}
	if strings.Contains(out, "Lexicon Cross-Check") {
		t.Fatalf("lexicon block rendered without being enabled")
	}
}

func TestAssemble_WorkedConversation(t *testing.T) {
	t.Parallel()

	out := Assemble(buildSet(
		rec("conv1", "Hello, I have a problem with my order."),
		rec("conv1", "This is great service, thank you."),
		rec("conv1", "ok"),
	), Options{})

	for _, token := range []string{
		"- Total Messages: 3\n",
		"- Total Words: 15\n",
		"- Average Words per Message: 5.0 words\n",
		"     - Message 1: 8 words\n",
		"     - Message 2: 6 words\n",
		"     - Message 3: 1 words\n",
		"   - Average Words = 15 / 3 = 5.0 words\n",
		"   - IF Average Words (5.0) ≥ 20, THEN \"Detailed\"\n",
		"   - Result: Conversation is \"Brief\"\n",
		"     - Sentiment Score = 1 - 1 = 0\n",
		"     - Result: Sentiment is \"Neutral\"\n",
		"     - Critique: 0 (Keywords: criticize, dislike, disappointed)\n",
		"     - Positive Response: 1 (Keywords: thank you, great, happy, appreciate)\n",
		"     - Complaint: 1 (Keywords: complaint, issue, problem, unsatisfied)\n",
		"     - Other: 1 (No specific keywords matched)\n",
		"     - Multiple categories tied with highest count\n",
		"     - Using priority order: Complaint > Critique > Feedback > Positive Response > Other\n",
		"     - Highest priority category among ties: Complaint\n",
		"- Dominant Chat Category: Complaint\n",
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("report missing %q\n%s", token, out)
		}
	}
}

func TestAssemble_SingleDominantCategory(t *testing.T) {
	t.Parallel()

	out := Assemble(buildSet(rec("c", "I dislike this"), rec("c", "hello")), Options{})
	// Critique and Other tie at 1.
	if !strings.Contains(out, "Highest priority category among ties: Critique\n") {
		t.Fatalf("expected tie explanation:\n%s", out)
	}

	out = Assemble(buildSet(rec("c", "I dislike this"), rec("c", "disappointed again"), rec("c", "hello")), Options{})
	if !strings.Contains(out, "     - Category with highest count: Critique\n") {
		t.Fatalf("expected single winner line:\n%s", out)
	}
	if strings.Contains(out, "Multiple categories tied") {
		t.Fatalf("unexpected tie explanation:\n%s", out)
	}
}

var (
	perMessagePattern = regexp.MustCompile(`     - Message \d+: (\d+) words`)
	averagePattern    = regexp.MustCompile(`Average Words = (\d+) / (\d+) = ([0-9.]+) words`)
	scorePattern      = regexp.MustCompile(`Sentiment Score = (\d+) - (\d+) = (-?\d+)`)
)

func TestAssemble_NumbersRecompute(t *testing.T) {
	t.Parallel()

	texts := []string{
		"I recently updated the software and noticed several performance issues, including slow loading times.",
		"We apologize for the inconvenience; our team is investigating these issues.",
		"Thank you for your detailed feedback.",
	}
	set := models.NewConversationSet()
	for _, text := range texts {
		set.Add(rec("conv101", text))
	}
	out := Assemble(set, Options{})

	sum := 0
	for _, m := range perMessagePattern.FindAllStringSubmatch(out, -1) {
		n, _ := strconv.Atoi(m[1])
		sum += n
	}
	wantSum := 0
	for _, text := range texts {
		wantSum += len(strings.Fields(text))
	}
	if sum != wantSum {
		t.Fatalf("per-message sum=%d, want %d", sum, wantSum)
	}

	avg := averagePattern.FindStringSubmatch(out)
	if avg == nil {
		t.Fatalf("average line missing")
	}
	total, _ := strconv.Atoi(avg[1])
	count, _ := strconv.Atoi(avg[2])
	if total != wantSum || count != len(texts) {
		t.Fatalf("average inputs %d/%d, want %d/%d", total, count, wantSum, len(texts))
	}
	got, err := strconv.ParseFloat(avg[3], 64)
	if err != nil {
		t.Fatalf("average %q: %v", avg[3], err)
	}
	if want := float64(total) / float64(count); math.Abs(got-want) > 0.005 {
		t.Fatalf("average=%s, want %.2f", avg[3], want)
	}

	score := scorePattern.FindStringSubmatch(out)
	if score == nil {
		t.Fatalf("score line missing")
	}
	pos, _ := strconv.Atoi(score[1])
	neg, _ := strconv.Atoi(score[2])
	net, _ := strconv.Atoi(score[3])
	if pos-neg != net {
		t.Fatalf("score %d - %d != %d", pos, neg, net)
	}
	if neg != 2 {
		t.Fatalf("negative count=%d, want 2", neg)
	}
}

func TestAssemble_LexiconCheck(t *testing.T) {
	t.Parallel()

	out := Assemble(buildSet(rec("c", "I love it, wonderful and great!")), Options{LexiconCheck: true})
	for _, token := range []string{
		"### Lexicon Cross-Check:\n",
		"- VADER Label: positive\n",
		"- Agrees with Keyword Sentiment: yes\n",
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("report missing %q\n%s", token, out)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	page := string(RenderHTML("# Formulas Used:\n- Total Messages: 2\n", "Chat Log Analysis"))
	for _, token := range []string{"<title>Chat Log Analysis</title>", "<h1>Formulas Used:</h1>", "<li>Total Messages: 2</li>"} {
		if !strings.Contains(page, token) {
			t.Fatalf("html missing %q\n%s", token, page)
		}
	}
}

func TestFormatAverage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{5, "5.0"},
		{23, "23.0"},
		{7.8, "7.8"},
		{2.12, "2.12"},
		{3.33, "3.33"},
		{0, "0.0"},
	}
	for _, tc := range cases {
		if got := formatAverage(tc.in); got != tc.want {
			t.Fatalf("formatAverage(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAssemble_AverageMatchesRoundedValue(t *testing.T) {
	t.Parallel()

	// 39 words over 5 messages averages 7.8.
	set := buildSet(
		rec("c", "one two three four five six seven eight"),
		rec("c", "one two three four five six seven eight"),
		rec("c", "one two three four five six seven eight"),
		rec("c", "one two three four five six seven eight"),
		rec("c", "one two three four five six seven"),
	)
	out := Assemble(set, Options{})
	for _, token := range []string{
		"- Average Words per Message: 7.8 words\n",
		"   - Average Words = 39 / 5 = 7.8 words\n",
		"   - IF Average Words (7.8) ≥ 20, THEN \"Detailed\"\n",
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("output missing %q", token)
		}
	}
}
