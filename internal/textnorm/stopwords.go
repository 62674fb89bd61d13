package textnorm

// DefaultKeywordStopwords is the common-English stopword list used for
// keyword frequency extraction over titles and summaries.
var DefaultKeywordStopwords = NewStopwordSet(
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their",
	"what", "so", "up", "out", "if", "about", "who", "get", "which", "go",
	"me", "when", "make", "can", "like", "time", "no", "just", "him", "know",
	"take", "people", "into", "year", "your", "good", "some", "could", "them",
	"see", "other", "than", "then", "now", "look", "only", "come", "its", "over",
	"think", "also", "back", "after", "use", "two", "how", "our", "work",
	"first", "well", "way", "even", "new", "want", "because", "any", "these",
	"give", "day", "most", "us", "is", "was", "are", "been", "has", "had",
	"were", "said", "did", "having", "may", "should", "am", "being", "more",
)

// DefaultTitleStopwords is the small closed-class list removed before title
// overlap scoring: articles, auxiliary verbs, conjunctions, and a handful of
// prepositions that carry no story content.
var DefaultTitleStopwords = NewStopwordSet(
	"a", "an", "the",
	"is", "are", "was", "were", "be", "been", "being", "am",
	"do", "does", "did", "done",
	"have", "has", "had", "having",
	"will", "would", "shall", "should", "can", "could", "may", "might", "must",
	"and", "or", "but", "nor", "so", "yet",
	"for", "of", "to", "in", "on", "at", "by", "with", "from", "as",
	"that", "this", "it", "its",
)
