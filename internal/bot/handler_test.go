package bot

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/gaonkarsahil14/CODTECH/internal/config"
	"github.com/gaonkarsahil14/CODTECH/internal/knowledge"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(knowledge.NewStore(cfg, logger))
}

// breakDataDir replaces the data directory with a plain file so every
// subsequent save fails.
func breakDataDir(t *testing.T, dir string) {
	t.Helper()
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestEmptyInput(t *testing.T) {
	h := newTestHandler(t)
	rep := h.Handle("   ")
	if rep.Text != "Please type something." {
		t.Errorf("blank input reply = %q", rep.Text)
	}
	if rep.Learned || rep.Exit {
		t.Error("blank input must not learn or exit")
	}
}

func TestHelpCommand(t *testing.T) {
	h := newTestHandler(t)
	for _, in := range []string{"help", "HELP", "  Help  "} {
		rep := h.Handle(in)
		if !strings.Contains(rep.Text, "teach: Q => A") {
			t.Errorf("help reply for %q missing command list: %q", in, rep.Text)
		}
	}
}

func TestShowCommand(t *testing.T) {
	h := newTestHandler(t)
	rep := h.Handle("show")
	if !strings.Contains(rep.Text, "1. Q: hello") {
		t.Errorf("show reply missing numbered starter entry: %q", rep.Text)
	}
	if got := strings.Count(rep.Text, "=>"); got != 5 {
		t.Errorf("show listed %d pairs, want 5", got)
	}
}

func TestSaveCommand(t *testing.T) {
	h := newTestHandler(t)
	rep := h.Handle("save")
	if rep.Text != "Knowledge saved." {
		t.Errorf("save reply = %q", rep.Text)
	}
	if rep.SaveStatus != SaveOK {
		t.Errorf("save status = %v, want SaveOK", rep.SaveStatus)
	}
}

func TestExitSentinel(t *testing.T) {
	h := newTestHandler(t)
	before := len(h.Base())

	rep := h.Handle("EXIT")
	if !rep.Exit {
		t.Fatal("exit did not set the sentinel")
	}
	if rep.Text != "" {
		t.Errorf("sentinel reply carries user-visible text: %q", rep.Text)
	}
	if len(h.Base()) != before {
		t.Error("exit mutated the knowledge base")
	}
}

func TestQueryHighConfidence(t *testing.T) {
	h := newTestHandler(t)
	rep := h.Handle("hello")
	if !strings.Contains(rep.Text, "Hello! How can I help you today?") {
		t.Errorf("high-band reply missing starter answer: %q", rep.Text)
	}
	if !strings.Contains(rep.Text, "matched: hello") || !strings.Contains(rep.Text, "score 1.00") {
		t.Errorf("high-band reply missing match annotation: %q", rep.Text)
	}
}

func TestQueryMediumConfidence(t *testing.T) {
	h := newTestHandler(t)
	// "hello there" vs "hello": 2*5/16 = 0.625, inside [0.55, 0.70)
	rep := h.Handle("hello there")
	if !strings.Contains(rep.Text, "somewhat confident") {
		t.Errorf("expected hedged medium-band reply, got %q", rep.Text)
	}
	if !strings.Contains(rep.Text, "Hello! How can I help you today?") {
		t.Errorf("medium-band reply missing probable answer: %q", rep.Text)
	}
}

func TestQueryNoMatchFallback(t *testing.T) {
	h := newTestHandler(t)
	rep := h.Handle("xyzzy plugh quux")
	if !strings.Contains(rep.Text, "I don't have a good answer for that yet.") {
		t.Errorf("expected fallback, got %q", rep.Text)
	}
	if rep.Learned {
		t.Error("fallback must not learn")
	}
}

func TestQueryEmptyBase(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := knowledge.NewStore(cfg, logger)

	// Force an empty base by corrupting the file before load.
	if err := store.Save(knowledge.Base{}); err != nil {
		t.Fatal(err)
	}
	h := New(store)

	rep := h.Handle("anything at all")
	if !strings.Contains(rep.Text, "I don't have a good answer") {
		t.Errorf("empty base should hit fallback, got %q", rep.Text)
	}
}

func TestNonLatinQueriesStayDistinct(t *testing.T) {
	h := newTestHandler(t)

	rep := h.Handle("teach: привет => Привет! Чем могу помочь?")
	if !rep.Learned {
		t.Fatalf("cyrillic teach rejected: %q", rep.Text)
	}

	// An unrelated Cyrillic query must not ride the taught answer into
	// the high-confidence band.
	rep = h.Handle("здравствуйте")
	if strings.Contains(rep.Text, "Чем могу помочь?") && strings.Contains(rep.Text, "score 1.00") {
		t.Errorf("unrelated cyrillic query matched at full confidence: %q", rep.Text)
	}
	if !strings.Contains(rep.Text, "I don't have a good answer") {
		t.Errorf("expected fallback for unrelated cyrillic query, got %q", rep.Text)
	}

	rep = h.Handle("привет")
	if !strings.Contains(rep.Text, "Чем могу помочь?") {
		t.Errorf("taught cyrillic question not retrievable: %q", rep.Text)
	}
}

func TestTeachSuccess(t *testing.T) {
	h := newTestHandler(t)
	before := len(h.Base())

	rep := h.Handle("teach: What is AI? => AI stands for Artificial Intelligence.")
	if !rep.Learned {
		t.Fatal("teach did not set Learned")
	}
	if rep.SaveStatus != SaveOK {
		t.Errorf("teach save status = %v, want SaveOK", rep.SaveStatus)
	}
	if len(h.Base()) != before+1 {
		t.Errorf("base length = %d, want %d", len(h.Base()), before+1)
	}

	// The new pair is immediately retrievable at score 1.0.
	rep = h.Handle("What is AI?")
	if !strings.Contains(rep.Text, "AI stands for Artificial Intelligence.") {
		t.Errorf("taught answer not retrievable: %q", rep.Text)
	}
	if !strings.Contains(rep.Text, "score 1.00") {
		t.Errorf("taught query should score 1.0: %q", rep.Text)
	}
}

func TestTeachDuplicate(t *testing.T) {
	h := newTestHandler(t)
	before := len(h.Base())

	// "hello" is in the starter set; case and spacing must not matter.
	rep := h.Handle("teach:   HELLO  => something else")
	if rep.Learned {
		t.Error("duplicate teach set Learned")
	}
	if !strings.Contains(rep.Text, "already have a similar question") {
		t.Errorf("duplicate reply = %q", rep.Text)
	}
	if len(h.Base()) != before {
		t.Error("duplicate teach changed base length")
	}
}

func TestTeachEmptyAnswerFallsThrough(t *testing.T) {
	h := newTestHandler(t)
	before := len(h.Base())

	// Nothing after "=>" means the directive regex doesn't match at all;
	// like a missing separator, the line is handled as a query.
	rep := h.Handle("teach: something =>")
	if rep.Learned {
		t.Error("empty-answer teach set Learned")
	}
	if len(h.Base()) != before {
		t.Error("empty-answer teach mutated the base")
	}
}

func TestTeachErrors(t *testing.T) {
	h := newTestHandler(t)

	if _, err := h.Teach(" ", "answer"); err != ErrEmptyField {
		t.Errorf("Teach empty question err = %v, want ErrEmptyField", err)
	}
	if _, err := h.Teach("hello", "answer"); err != ErrDuplicateQuestion {
		t.Errorf("Teach duplicate err = %v, want ErrDuplicateQuestion", err)
	}
}

func TestMalformedTeachFallsThroughToQuery(t *testing.T) {
	h := newTestHandler(t)
	before := len(h.Base())

	// No "=>" separator: treated as a query, not a parse error.
	rep := h.Handle("teach: question without separator")
	if rep.Learned {
		t.Error("malformed teach learned something")
	}
	if len(h.Base()) != before {
		t.Error("malformed teach mutated the base")
	}
	if rep.Text == "" {
		t.Error("malformed teach produced no reply")
	}
}

func TestTeachKeywordCaseInsensitive(t *testing.T) {
	h := newTestHandler(t)
	rep := h.Handle("TEACH:  Who wrote Go? =>  Griesemer, Pike and Thompson.")
	if !rep.Learned {
		t.Errorf("uppercase teach keyword not recognized: %q", rep.Text)
	}
}

func TestFindCommand(t *testing.T) {
	h := newTestHandler(t)

	rep := h.Handle("find name")
	if !strings.Contains(rep.Text, "what is your name") {
		t.Errorf("find missed the name question: %q", rep.Text)
	}

	rep = h.Handle("find qqqqqq")
	if !strings.Contains(rep.Text, "No known questions match") {
		t.Errorf("find with no hits = %q", rep.Text)
	}
}

func TestTeachPersistenceFailureStillLearns(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := knowledge.NewStore(cfg, logger)
	h := New(store)

	// Replace the data dir with a file so the atomic rename fails.
	breakDataDir(t, cfg.DataDir)

	rep := h.Handle("teach: new question => new answer")
	if !rep.Learned {
		t.Error("teach must learn in-memory even when persistence fails")
	}
	if rep.SaveStatus != SaveFailed {
		t.Errorf("save status = %v, want SaveFailed", rep.SaveStatus)
	}
	if !strings.Contains(rep.Text, "failed to save") {
		t.Errorf("reply should mention the failed save: %q", rep.Text)
	}

	// Still retrievable this session.
	rep = h.Handle("new question")
	if !strings.Contains(rep.Text, "new answer") {
		t.Errorf("unsaved pair not retrievable: %q", rep.Text)
	}
}
