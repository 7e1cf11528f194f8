package summarizer

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spacesedan/chatlog/internal/parser"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProcess_CSVEndToEnd(t *testing.T) {
	t.Parallel()

	in := "conversation_id,sender,timestamp,message\n" +
		"conv1,customer,01-02-2023,\"This is great, thanks.\"\n" +
		"conv1,agent,01-02-2023,\"Sorry, what is the problem?\"\n"

	out := New(quiet()).Process(in, "csv")

	for _, token := range []string{
		"# Data Validation Report\n",
		"- Total conversations processed: 1\n",
		"## Conversation ID: conv1\n",
		"- Total Messages: 2\n",
		"- Sentiment Category: Neutral\n",
		"# Feedback Request\n",
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("report missing %q\n%s", token, out)
		}
	}
	if !strings.HasPrefix(out, "# Data Validation Report\n") {
		t.Fatalf("report should start with the validation section")
	}
	if strings.Index(out, "Proceeding with analysis") > strings.Index(out, "# Formulas Used:") {
		t.Fatalf("validation section must precede the analysis")
	}
}

func TestAnalyze_ErrorsHaltPipeline(t *testing.T) {
	t.Parallel()

	in := `{"conversations":[
		{"conversation_id":"c1","sender":"a","timestamp":"t","message":"fine"},
		{"conversation_id":"c1","timestamp":"t","message":""}
	]}`

	out, err := New(quiet()).Analyze(in, "json")
	if err == nil {
		t.Fatalf("expected error")
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) || len(inputErr.Errs) != 1 {
		t.Fatalf("err=%v, want InputError with 1 entry", err)
	}
	var fieldErr *parser.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Row != 2 {
		t.Fatalf("err=%v, want FieldError for row 2", err)
	}
	if out != "ERROR: 'message' field cannot be empty in row 2." {
		t.Fatalf("out=%q", out)
	}
}

func TestProcess_InvalidFormat(t *testing.T) {
	t.Parallel()

	out := New(quiet()).Process("anything", "yaml")
	if out != "ERROR: Invalid data format. Please provide data in CSV or JSON format." {
		t.Fatalf("out=%q", out)
	}
}

func TestProcess_LexiconCheckOption(t *testing.T) {
	t.Parallel()

	in := `{"conversations":[{"conversation_id":"c1","sender":"a","timestamp":"t","message":"I am very happy"}]}`

	plain := New(quiet()).Process(in, "json")
	if strings.Contains(plain, "Lexicon Cross-Check") {
		t.Fatalf("lexicon block present without option")
	}
	checked := New(quiet(), WithLexiconCheck(true)).Process(in, "json")
	if !strings.Contains(checked, "### Lexicon Cross-Check:\n") {
		t.Fatalf("lexicon block missing with option")
	}
}
