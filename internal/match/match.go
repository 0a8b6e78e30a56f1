// Package match scores user input against stored questions using a
// contiguous matching-block ratio over normalized text.
package match

import (
	"regexp"
	"strings"
)

var (
	// Letters and digits from any script survive, not just ASCII.
	punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s?']`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases, trims, collapses internal whitespace and strips
// everything except alphanumerics, whitespace, apostrophes and question
// marks. Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = punctRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Ratio returns a similarity score in [0,1] for two strings: twice the
// total length of their longest contiguous matching blocks divided by the
// combined length. Identical strings score 1.0, disjoint strings 0.0.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	// Positions of every rune in b, for the block search.
	b2j := make(map[rune][]int, len(rb))
	for j, r := range rb {
		b2j[r] = append(b2j[r], j)
	}

	matched := matchingSize(ra, rb, b2j, 0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(total)
}

// matchingSize sums the sizes of all matching blocks between a[alo:ahi]
// and b[blo:bhi] by finding the longest block and recursing on both sides.
func matchingSize(a, b []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) int {
	i, j, k := longestBlock(a, b2j, alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	size := k
	size += matchingSize(a, b, b2j, alo, i, blo, j)
	size += matchingSize(a, b, b2j, i+k, ahi, j+k, bhi)
	return size
}

// longestBlock finds the longest contiguous run shared by a[alo:ahi] and
// b[blo:bhi], returning its start in a, start in b and length.
func longestBlock(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	runs := map[int]int{} // end position in b -> run length
	for i := alo; i < ahi; i++ {
		newRuns := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := runs[j-1] + 1
			newRuns[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		runs = newRuns
	}
	return besti, bestj, bestsize
}

// Result is the outcome of a best-match scan.
type Result struct {
	Score    float64
	Question string // the stored question as taught
	Answer   string
}

type entry struct {
	norm     string
	question string
	answer   string
}

// Matcher holds pre-normalized questions so repeated queries don't pay
// for normalization of the whole knowledge base every turn.
type Matcher struct {
	entries []entry
}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// Add registers a question/answer pair for matching.
func (m *Matcher) Add(question, answer string) {
	m.entries = append(m.entries, entry{
		norm:     Normalize(question),
		question: question,
		answer:   answer,
	})
}

// Len reports the number of registered pairs.
func (m *Matcher) Len() int {
	return len(m.entries)
}

// Best returns the highest-scoring pair for the query. On exact score
// ties the earliest-added pair wins. ok is false if nothing is registered.
func (m *Matcher) Best(query string) (res Result, ok bool) {
	if len(m.entries) == 0 {
		return Result{}, false
	}
	q := Normalize(query)
	best := Result{Score: -1}
	for _, e := range m.entries {
		score := Ratio(q, e.norm)
		if score > best.Score {
			best = Result{Score: score, Question: e.question, Answer: e.answer}
		}
	}
	return best, true
}
