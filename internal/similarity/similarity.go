// Package similarity decides whether two differently-worded headlines
// describe the same underlying story.
package similarity

import (
	"strings"

	"tenguard.watch/trends/internal/textnorm"
)

const (
	// DefaultThreshold is the minimum overlap score treated as a match.
	DefaultThreshold = 0.7
	// DefaultSubstringMinLength gates the containment shortcut: both
	// normalized titles must exceed this many characters before one being a
	// substring of the other counts as a match.
	DefaultSubstringMinLength = 20
	// DefaultSignificantTokenLength: tokens longer than this are the
	// "significant words" scored on their own channel.
	DefaultSignificantTokenLength = 4
)

// Options carries the scoring knobs. Zero values fall back to the defaults
// above; a nil Stopwords falls back to the title stopword list.
type Options struct {
	Threshold              float64
	SubstringMinLength     int
	SignificantTokenLength int
	Stopwords              textnorm.StopwordSet
}

type Scorer struct {
	opts Options
}

func NewScorer(opts Options) *Scorer {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.SubstringMinLength <= 0 {
		opts.SubstringMinLength = DefaultSubstringMinLength
	}
	if opts.SignificantTokenLength <= 0 {
		opts.SignificantTokenLength = DefaultSignificantTokenLength
	}
	if opts.Stopwords == nil {
		opts.Stopwords = textnorm.DefaultTitleStopwords
	}
	return &Scorer{opts: opts}
}

// Similar reports whether the two titles refer to the same story. Checks
// short-circuit in order: exact normalized match, substring containment for
// long titles, significant-word overlap, then full-token Jaccard. Titles
// whose token sets are empty after stopword removal are never similar.
func (s *Scorer) Similar(titleA, titleB string) bool {
	if strings.TrimSpace(titleA) == "" || strings.TrimSpace(titleB) == "" {
		return false
	}

	normA := textnorm.Normalize(titleA)
	normB := textnorm.Normalize(titleB)
	if normA == "" || normB == "" {
		return false
	}
	if normA == normB {
		return true
	}

	if len(normA) > s.opts.SubstringMinLength && len(normB) > s.opts.SubstringMinLength {
		if strings.Contains(normA, normB) || strings.Contains(normB, normA) {
			return true
		}
	}

	tokensA := textnorm.TokenSet(normA, s.opts.Stopwords)
	tokensB := textnorm.TokenSet(normB, s.opts.Stopwords)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return false
	}

	sigA := significantTokens(tokensA, s.opts.SignificantTokenLength)
	sigB := significantTokens(tokensB, s.opts.SignificantTokenLength)
	if Overlap(sigA, sigB) >= s.opts.Threshold {
		return true
	}

	return Jaccard(tokensA, tokensB) >= s.opts.Threshold
}

// Jaccard is intersection size over union size. Either set being empty
// scores zero.
func Jaccard(left, right map[string]struct{}) float64 {
	if len(left) == 0 || len(right) == 0 {
		return 0
	}
	intersection := intersectionSize(left, right)
	union := len(left) + len(right) - intersection
	if union <= 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Overlap is intersection size over the smaller set's size. It weights
// shared content words more generously than Jaccard when one title carries
// extra qualifiers the other lacks.
func Overlap(left, right map[string]struct{}) float64 {
	if len(left) == 0 || len(right) == 0 {
		return 0
	}
	smaller := len(left)
	if len(right) < smaller {
		smaller = len(right)
	}
	return float64(intersectionSize(left, right)) / float64(smaller)
}

func intersectionSize(left, right map[string]struct{}) int {
	if len(right) < len(left) {
		left, right = right, left
	}
	n := 0
	for token := range left {
		if _, ok := right[token]; ok {
			n++
		}
	}
	return n
}

func significantTokens(tokens map[string]struct{}, minLength int) map[string]struct{} {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(tokens))
	for token := range tokens {
		if len(token) > minLength {
			out[token] = struct{}{}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
