package trends

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/article"
	"tenguard.watch/trends/internal/globaltime"
)

func mockClock(t *testing.T, value string) {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("parse mock time: %v", err)
	}
	globaltime.SetMockTime(parsed)
	t.Cleanup(globaltime.ResetTime)
}

func newAggregator() *Aggregator {
	return NewAggregator(Options{}, zerolog.Nop())
}

func TestAggregateEmptyInput(t *testing.T) {
	mockClock(t, "2025-02-01 10:00:00")

	metrics := newAggregator().Aggregate(nil, nil, nil)

	if metrics.KPIs.Total7Days != 0 || metrics.KPIs.Total30Days != 0 {
		t.Fatalf("expected zero totals, got %+v", metrics.KPIs)
	}
	if metrics.KPIs.TopTag != NoTopTag {
		t.Fatalf("expected top_tag sentinel %q, got %q", NoTopTag, metrics.KPIs.TopTag)
	}
	if len(metrics.TagCounts.Days30) != 0 {
		t.Fatalf("expected empty tag counts, got %v", metrics.TagCounts.Days30)
	}
	if len(metrics.DailyCounts) != 0 {
		t.Fatalf("expected empty daily counts, got %v", metrics.DailyCounts)
	}
	if len(metrics.TopArticles) != 0 {
		t.Fatalf("expected empty top articles, got %v", metrics.TopArticles)
	}
	for _, level := range []string{article.UrgencyHigh, article.UrgencyMedium, article.UrgencyLow} {
		if got := metrics.UrgencyCounts.Days30.Get(level); got != 0 {
			t.Fatalf("urgency %s = %d, want 0", level, got)
		}
	}
}

func TestAggregateUrgencyBuckets(t *testing.T) {
	mockClock(t, "2025-02-01 10:00:00")

	items := make([]article.Article, 0, 30)
	for i := 0; i < 30; i++ {
		urgency := article.UrgencyLow
		if i < 10 {
			urgency = article.UrgencyHigh
		} else if i < 20 {
			urgency = article.UrgencyMedium
		}
		tags := []string{"phishing"}
		if i%2 == 0 {
			tags = []string{"malware", "vulnerability"}
		}
		items = append(items, article.Article{
			Title:   fmt.Sprintf("Article %d", i),
			Date:    fmt.Sprintf("2025-01-%02d", (i%28)+1),
			Tags:    tags,
			Urgency: urgency,
		})
	}

	metrics := newAggregator().Aggregate(items, nil, items)

	urgency30 := metrics.UrgencyCounts.Days30
	for _, level := range []string{article.UrgencyHigh, article.UrgencyMedium, article.UrgencyLow} {
		if got := urgency30.Get(level); got != 10 {
			t.Fatalf("urgency %s = %d, want 10", level, got)
		}
	}
	if metrics.KPIs.Total30Days != 30 {
		t.Fatalf("total_30_days = %d, want 30", metrics.KPIs.Total30Days)
	}
	if metrics.KPIs.TopTag != "malware" && metrics.KPIs.TopTag != "phishing" {
		t.Fatalf("unexpected top tag %q", metrics.KPIs.TopTag)
	}
	if got := metrics.TagCounts.Days30.Get("malware"); got != 15 {
		t.Fatalf("malware tag count = %d, want 15", got)
	}
	if got := metrics.TagCounts.Days30.Get("phishing"); got != 15 {
		t.Fatalf("phishing tag count = %d, want 15", got)
	}
}

func TestAggregateMissingUrgencyCountsAsMedium(t *testing.T) {
	mockClock(t, "2025-02-01 10:00:00")

	items := []article.Article{
		{Title: "A", Date: "2025-01-30"},
		{Title: "B", Date: "2025-01-30", Urgency: "bogus"},
	}
	metrics := newAggregator().Aggregate(items, items, items)
	if got := metrics.UrgencyCounts.Days7.Get(article.UrgencyMedium); got != 2 {
		t.Fatalf("Medium = %d, want 2", got)
	}
}

func TestAggregateSourceFallbackToDomain(t *testing.T) {
	mockClock(t, "2025-02-01 10:00:00")

	items := []article.Article{
		{Title: "A", Date: "2025-01-30", Source: "The Hacker News"},
		{Title: "B", Date: "2025-01-30", Link: "https://www.bleepingcomputer.com/news/security/x/"},
		{Title: "C", Date: "2025-01-30", Link: "https://www.bleepingcomputer.com/news/security/y/"},
		{Title: "D", Date: "2025-01-30"},
	}

	metrics := newAggregator().Aggregate(items, items, items)
	if got := metrics.TopSources.Get("bleepingcomputer.com"); got != 2 {
		t.Fatalf("bleepingcomputer.com = %d, want 2", got)
	}
	if got := metrics.TopSources.Get("The Hacker News"); got != 1 {
		t.Fatalf("The Hacker News = %d, want 1", got)
	}
	if got := metrics.TopSources.Get("unknown"); got != 1 {
		t.Fatalf("unknown = %d, want 1", got)
	}
}

func TestAggregateDailyCountsAscending(t *testing.T) {
	mockClock(t, "2025-02-01 10:00:00")

	items := []article.Article{
		{Title: "A", Date: "2025-01-30"},
		{Title: "B", Date: "2025-01-10"},
		{Title: "C", Date: "2025-01-30"},
		{Title: "D", Date: "2025-01-20"},
	}

	metrics := newAggregator().Aggregate(items, nil, items)
	want := []DailyCount{
		{Date: "2025-01-10", Count: 1},
		{Date: "2025-01-20", Count: 1},
		{Date: "2025-01-30", Count: 2},
	}
	if len(metrics.DailyCounts) != len(want) {
		t.Fatalf("daily counts length = %d, want %d", len(metrics.DailyCounts), len(want))
	}
	for i, entry := range want {
		if metrics.DailyCounts[i] != entry {
			t.Fatalf("daily_counts[%d] = %+v, want %+v", i, metrics.DailyCounts[i], entry)
		}
	}
}

func TestAggregateTopArticlesRanking(t *testing.T) {
	mockClock(t, "2025-02-01 10:00:00")

	all := []article.Article{
		{Title: "old low", Date: "2025-01-01", Urgency: article.UrgencyLow},
		{Title: "old high", Date: "2025-01-02", Urgency: article.UrgencyHigh},
		{Title: "new medium", Date: "2025-01-31", Urgency: article.UrgencyMedium},
		{Title: "new high", Date: "2025-01-30", Urgency: article.UrgencyHigh},
	}

	metrics := newAggregator().Aggregate(all, nil, all)
	gotTitles := make([]string, 0, len(metrics.TopArticles))
	for _, item := range metrics.TopArticles {
		gotTitles = append(gotTitles, item.Title)
	}

	want := []string{"new high", "old high", "new medium", "old low"}
	for i, title := range want {
		if gotTitles[i] != title {
			t.Fatalf("top_articles[%d] = %q, want %q (full order %v)", i, gotTitles[i], title, gotTitles)
		}
	}
}

func TestAggregateTopArticleDefaults(t *testing.T) {
	mockClock(t, "2025-02-01 10:00:00")

	long := make([]rune, 250)
	for i := range long {
		long[i] = 'x'
	}
	all := []article.Article{{Title: "A", Date: "2025-01-30", Summary: string(long)}}

	metrics := newAggregator().Aggregate(all, nil, all)
	top := metrics.TopArticles[0]
	if top.Link != "#" {
		t.Fatalf("missing link must default to #, got %q", top.Link)
	}
	if top.Urgency != article.UrgencyMedium {
		t.Fatalf("missing urgency must default to Medium, got %q", top.Urgency)
	}
	if len([]rune(top.Summary)) != 200 {
		t.Fatalf("summary must be truncated to 200 runes, got %d", len([]rune(top.Summary)))
	}
	if top.Tags == nil {
		t.Fatalf("tags must serialize as an empty list, not null")
	}
}

func TestAggregateKeywords(t *testing.T) {
	mockClock(t, "2025-02-01 10:00:00")

	items := []article.Article{
		{Title: "Ransomware attack disrupts logistics", Date: "2025-01-30", Summary: "The ransomware spread fast"},
		{Title: "Second ransomware incident", Date: "2025-01-30"},
	}

	metrics := newAggregator().Aggregate(items, items, items)
	if got := metrics.TopKeywords.Get("ransomware"); got != 3 {
		t.Fatalf("ransomware keyword count = %d, want 3", got)
	}
	if got := metrics.TopKeywords.Get("the"); got != 0 {
		t.Fatalf("stopword leaked into keywords: %v", metrics.TopKeywords)
	}
}

func TestWindow(t *testing.T) {
	items := []article.Article{
		{Title: "old", Date: "2025-01-01"},
		{Title: "edge", Date: "2025-01-25"},
		{Title: "new", Date: "2025-01-31"},
	}
	got := Window(items, "2025-01-25")
	if len(got) != 2 {
		t.Fatalf("expected 2 items in window, got %d", len(got))
	}
	if got[0].Title != "edge" || got[1].Title != "new" {
		t.Fatalf("unexpected window contents: %v", got)
	}
}

func TestExtractDomain(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"https://www.bleepingcomputer.com/news/security/", "bleepingcomputer.com"},
		{"http://thehackernews.com/2025/01/story.html", "thehackernews.com"},
		{"thehackernews.com/2025/01/story.html", "thehackernews.com"},
		{"", "unknown"},
		{"   ", "unknown"},
	}
	for _, tc := range cases {
		if got := ExtractDomain(tc.link); got != tc.want {
			t.Fatalf("ExtractDomain(%q) = %q, want %q", tc.link, got, tc.want)
		}
	}
}
