package article

import "strings"

// Urgency levels, mutually exclusive per article.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

// Article is one scraped news item as it flows through classification,
// deduplication, and aggregation. Raw items arrive with only title, link,
// summary, source, and date; the classifier fills in tags, urgency, and slug.
type Article struct {
	Title   string   `json:"title"`
	Link    string   `json:"link,omitempty"`
	Summary string   `json:"summary,omitempty"`
	Source  string   `json:"source,omitempty"`
	Date    string   `json:"date,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Urgency string   `json:"urgency,omitempty"`
	Slug    string   `json:"slug,omitempty"`
}

// UrgencyPriority ranks urgency for top-article ordering. Unknown or missing
// values rank as Medium.
func UrgencyPriority(urgency string) int {
	switch urgency {
	case UrgencyHigh:
		return 3
	case UrgencyLow:
		return 1
	default:
		return 2
	}
}

// Text returns the title and summary joined for keyword matching.
func (a Article) Text() string {
	if strings.TrimSpace(a.Summary) == "" {
		return a.Title
	}
	return a.Title + " " + a.Summary
}
