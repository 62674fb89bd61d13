// Package classify assigns topical tags and an urgency level to articles
// using keyword-triggered rules.
package classify

import (
	"strings"

	"tenguard.watch/trends/internal/article"
	"tenguard.watch/trends/internal/textnorm"
)

type Classifier struct {
	rules Rules
}

func New(rules Rules) *Classifier {
	if err := rules.Validate(); err != nil {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the matching tags (never empty; the default tag stands in
// when nothing triggers) and exactly one urgency level. Pure function of the
// article's title and summary.
func (c *Classifier) Classify(a article.Article) ([]string, string) {
	text := strings.ToLower(a.Text())

	var tags []string
	for _, rule := range c.rules.Tags {
		if containsAny(text, rule.Keywords) {
			tags = append(tags, rule.Name)
		}
	}
	if len(tags) == 0 {
		tags = []string{c.rules.DefaultTag}
	}

	urgency := article.UrgencyLow
	switch {
	case containsAny(text, c.rules.HighUrgency):
		urgency = article.UrgencyHigh
	case containsAny(text, c.rules.MediumUrgency):
		urgency = article.UrgencyMedium
	}

	return tags, urgency
}

// Apply returns a copy of the article enriched with tags, urgency, and a
// title-derived slug.
func (c *Classifier) Apply(a article.Article) article.Article {
	tags, urgency := c.Classify(a)
	a.Tags = tags
	a.Urgency = urgency
	a.Slug = textnorm.Slug(a.Title)
	return a
}

// ApplyAll classifies a raw batch, skipping items without a title and
// stamping the batch date onto items that arrived without one.
func (c *Classifier) ApplyAll(items []article.Article, date string) []article.Article {
	if len(items) == 0 {
		return nil
	}
	out := make([]article.Article, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		enriched := c.Apply(item)
		if enriched.Date == "" {
			enriched.Date = date
		}
		out = append(out, enriched)
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" {
			continue
		}
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
