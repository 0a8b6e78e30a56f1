// Package bot interprets one line of user text at a time: built-in
// commands, teach directives, or fuzzy-matched queries.
package bot

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/gaonkarsahil14/CODTECH/internal/knowledge"
	"github.com/gaonkarsahil14/CODTECH/internal/match"
)

// Confidence bands for query responses. A match at or above
// HighConfidence is answered directly; between MediumConfidence and
// HighConfidence the answer is hedged with a teach hint; below that the
// bot asks to be taught.
const (
	HighConfidence   = 0.70
	MediumConfidence = 0.55
)

var (
	ErrEmptyField        = errors.New("question and answer must be non-empty")
	ErrDuplicateQuestion = errors.New("a matching question already exists")
)

// teachRe matches "teach: <question> => <answer>" with a case-insensitive
// keyword and flexible whitespace. Inputs without the "=>" separator do
// not match and fall through to the query path.
var teachRe = regexp.MustCompile(`(?is)^\s*teach\s*:\s*(.+?)\s*=>\s*(.+)$`)

// SaveStatus reports what happened to persistence during a turn.
type SaveStatus int

const (
	SaveNotAttempted SaveStatus = iota
	SaveOK
	SaveFailed
)

// Reply is the outcome of one dialogue turn.
type Reply struct {
	Text       string
	Learned    bool
	Exit       bool // sentinel: the caller should end the session
	SaveStatus SaveStatus
	SaveErr    error
}

// Handler owns the in-memory knowledge base for the duration of a
// session. Persistence is a side effect of teach/save turns, never the
// source of truth mid-session.
type Handler struct {
	store   *knowledge.Store
	base    knowledge.Base
	matcher *match.Matcher
}

func New(store *knowledge.Store) *Handler {
	h := &Handler{
		store:   store,
		base:    store.Load(),
		matcher: match.NewMatcher(),
	}
	for _, rec := range h.base {
		h.matcher.Add(rec.Question, rec.Answer)
	}
	return h
}

// Base returns the current in-memory knowledge base.
func (h *Handler) Base() knowledge.Base {
	return h.base
}

// GoodbyeText is the closing line frontends print for an Exit reply.
// The reply itself carries no text so the sentinel can never collide
// with a stored answer.
const GoodbyeText = "Goodbye! (chat saved)"

const helpText = `Commands:
 - help : show this message
 - show : list known questions
 - find <text> : search known questions
 - save : save knowledge to disk
 - exit : quit chatbot
 - teach: Q => A  (teach a new mapping in one line)
You can also ask normal questions.`

const fallbackText = `I don't have a good answer for that yet.
You can teach me in one line like:
teach: Your question text => The answer you want me to give
Or type 'help' for commands.`

// Handle processes one line of user input and produces the bot's reply.
// Dispatch order: blank input, exact commands, find, teach directive,
// then free-form query.
func (h *Handler) Handle(input string) Reply {
	text := strings.TrimSpace(input)
	if text == "" {
		return Reply{Text: "Please type something."}
	}

	switch strings.ToLower(text) {
	case "help":
		return Reply{Text: helpText}
	case "show":
		return Reply{Text: h.show()}
	case "save":
		return h.save()
	case "exit":
		return Reply{Exit: true}
	}

	if fields := strings.Fields(text); len(fields) > 1 && strings.EqualFold(fields[0], "find") {
		return Reply{Text: h.find(strings.TrimSpace(text[len(fields[0]):]))}
	}

	if m := teachRe.FindStringSubmatch(text); m != nil {
		rep, err := h.Teach(m[1], m[2])
		switch {
		case errors.Is(err, ErrEmptyField):
			return Reply{Text: "Question and answer must be non-empty."}
		case errors.Is(err, ErrDuplicateQuestion):
			return Reply{Text: "I already have a similar question in my knowledge base."}
		}
		return rep
	}

	return h.query(text)
}

func (h *Handler) show() string {
	lines := []string{"Known Q->A pairs:"}
	for i, rec := range h.base {
		lines = append(lines, fmt.Sprintf("%d. Q: %s  =>  A: %s", i+1, rec.Question, rec.Answer))
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) save() Reply {
	if err := h.store.Save(h.base); err != nil {
		return Reply{Text: "Failed to save knowledge.", SaveStatus: SaveFailed, SaveErr: err}
	}
	return Reply{Text: "Knowledge saved.", SaveStatus: SaveOK}
}

// find ranks known questions against the pattern and lists the hits.
func (h *Handler) find(pattern string) string {
	questions := make([]string, len(h.base))
	for i, rec := range h.base {
		questions[i] = rec.Question
	}
	matches := fuzzy.Find(pattern, questions)
	if len(matches) == 0 {
		return fmt.Sprintf("No known questions match %q.", pattern)
	}
	lines := []string{fmt.Sprintf("Questions matching %q:", pattern)}
	for i, m := range matches {
		rec := h.base[m.Index]
		lines = append(lines, fmt.Sprintf("%d. Q: %s  =>  A: %s", i+1, rec.Question, rec.Answer))
	}
	return strings.Join(lines, "\n")
}

// Teach validates and appends a new pair, then attempts to persist the
// whole base. It reports ErrEmptyField or ErrDuplicateQuestion on
// rejection; on acceptance Learned is true even if the disk write
// failed, and the reply text distinguishes the two outcomes.
func (h *Handler) Teach(question, answer string) (Reply, error) {
	q := strings.TrimSpace(question)
	a := strings.TrimSpace(answer)
	if q == "" || a == "" {
		return Reply{}, ErrEmptyField
	}

	norm := match.Normalize(q)
	for _, rec := range h.base {
		if match.Normalize(rec.Question) == norm {
			return Reply{}, ErrDuplicateQuestion
		}
	}

	h.base = append(h.base, knowledge.Record{Question: q, Answer: a})
	h.matcher.Add(q, a)

	if err := h.store.Save(h.base); err != nil {
		return Reply{
			Text:       "Learned successfully but failed to save to disk.",
			Learned:    true,
			SaveStatus: SaveFailed,
			SaveErr:    err,
		}, nil
	}
	return Reply{Text: "Learned successfully and saved to knowledge.", Learned: true, SaveStatus: SaveOK}, nil
}

func (h *Handler) query(text string) Reply {
	res, ok := h.matcher.Best(text)
	if !ok {
		return Reply{Text: fallbackText}
	}

	switch {
	case res.Score >= HighConfidence:
		return Reply{Text: fmt.Sprintf("%s\n\n( matched: %s — score %.2f )", res.Answer, res.Question, res.Score)}
	case res.Score >= MediumConfidence && res.Answer != "":
		return Reply{Text: fmt.Sprintf(
			"%s\n\n( I'm somewhat confident — matched: %s — score %.2f )\n"+
				"If this is not correct, you can teach me the right answer using:\n"+
				"teach: your question => correct answer",
			res.Answer, res.Question, res.Score)}
	default:
		return Reply{Text: fallbackText}
	}
}
