package textnorm

import (
	"strings"
	"unicode"
)

// StopwordSet is an immutable membership set of lower-cased words.
type StopwordSet map[string]struct{}

func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return set
}

func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Normalize lower-cases the input, drops every rune that is neither a word
// character (letter, digit, underscore) nor whitespace, and collapses runs of
// whitespace to single spaces. Idempotent; empty input yields "".
func Normalize(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	lastSpace := false
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			if !lastSpace && b.Len() > 0 {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}

// Tokenize splits a normalized string into its whitespace-delimited words.
func Tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}

// TokenSet returns the distinct tokens of the normalized form of text,
// with every word in stop removed. A nil stop set keeps everything.
func TokenSet(text string, stop StopwordSet) map[string]struct{} {
	tokens := Tokenize(Normalize(text))
	if len(tokens) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if stop.Contains(token) {
			continue
		}
		set[token] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// Keywords extracts lower-cased alphabetic tokens of at least minLength runes
// from text, dropping stopwords. Digits and punctuation break tokens.
func Keywords(text string, minLength int, stop StopwordSet) []string {
	lowered := strings.ToLower(text)
	keywords := make([]string, 0, 16)

	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		word.Reset()
		if len(w) < minLength {
			return
		}
		if stop.Contains(w) {
			return
		}
		keywords = append(keywords, w)
	}

	for _, r := range lowered {
		if r >= 'a' && r <= 'z' {
			word.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return keywords
}

const maxSlugLength = 50

// Slug derives a URL-safe identifier from a title: lower-cased, runs of
// non-alphanumeric runes become single hyphens, truncated to 50 characters
// without leaving a trailing hyphen.
func Slug(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	if lowered == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(lowered))
	lastHyphen := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}
