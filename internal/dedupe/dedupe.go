// Package dedupe removes later near-duplicate articles from a batch,
// keeping the first occurrence.
package dedupe

import (
	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/article"
	"tenguard.watch/trends/internal/similarity"
)

type Deduper struct {
	scorer *similarity.Scorer
	logger zerolog.Logger
}

func New(scorer *similarity.Scorer, logger zerolog.Logger) *Deduper {
	if scorer == nil {
		scorer = similarity.NewScorer(similarity.Options{})
	}
	return &Deduper{scorer: scorer, logger: logger}
}

// Dedupe walks the batch in order and drops every article whose title is
// similar to one already accepted. Relative order of survivors is preserved.
// The linear scan over accepted titles is O(n^2) worst case, which is fine
// for daily batches of tens of items.
func (d *Deduper) Dedupe(items []article.Article) []article.Article {
	if len(items) == 0 {
		return nil
	}

	accepted := make([]article.Article, 0, len(items))
	acceptedTitles := make([]string, 0, len(items))

	for _, item := range items {
		if d.isDuplicate(item.Title, acceptedTitles) {
			d.logger.Info().
				Str("title", titlePrefix(item.Title, 60)).
				Str("source", item.Source).
				Msg("dropped duplicate article")
			continue
		}
		accepted = append(accepted, item)
		acceptedTitles = append(acceptedTitles, item.Title)
	}
	return accepted
}

func (d *Deduper) isDuplicate(title string, acceptedTitles []string) bool {
	for _, seen := range acceptedTitles {
		if d.scorer.Similar(title, seen) {
			return true
		}
	}
	return false
}

func titlePrefix(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max]) + "..."
}
