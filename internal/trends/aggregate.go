// Package trends rebuilds the time-windowed aggregate statistics from the
// retained daily snapshots.
package trends

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/article"
	"tenguard.watch/trends/internal/globaltime"
	"tenguard.watch/trends/internal/textnorm"
)

const (
	DefaultTopTags     = 20
	DefaultTopSources  = 10
	DefaultTopKeywords = 20
	DefaultTopArticles = 10
	// DefaultKeywordMinLength is the shortest keyword counted.
	DefaultKeywordMinLength = 3
	// topArticleSummaryLimit caps summaries carried into top_articles.
	topArticleSummaryLimit = 200
)

// Options carries the aggregation knobs. Zero values fall back to the
// defaults above.
type Options struct {
	TopTags          int
	TopSources       int
	TopKeywords      int
	TopArticles      int
	KeywordMinLength int
	KeywordStopwords textnorm.StopwordSet
}

type Aggregator struct {
	opts   Options
	logger zerolog.Logger
}

func NewAggregator(opts Options, logger zerolog.Logger) *Aggregator {
	if opts.TopTags <= 0 {
		opts.TopTags = DefaultTopTags
	}
	if opts.TopSources <= 0 {
		opts.TopSources = DefaultTopSources
	}
	if opts.TopKeywords <= 0 {
		opts.TopKeywords = DefaultTopKeywords
	}
	if opts.TopArticles <= 0 {
		opts.TopArticles = DefaultTopArticles
	}
	if opts.KeywordMinLength <= 0 {
		opts.KeywordMinLength = DefaultKeywordMinLength
	}
	if opts.KeywordStopwords == nil {
		opts.KeywordStopwords = textnorm.DefaultKeywordStopwords
	}
	return &Aggregator{opts: opts, logger: logger}
}

// Window returns the items whose date falls on or after sinceDate. ISO dates
// are fixed-width, so plain string comparison orders them correctly.
func Window(items []article.Article, sinceDate string) []article.Article {
	out := make([]article.Article, 0, len(items))
	for _, item := range items {
		if item.Date >= sinceDate {
			out = append(out, item)
		}
	}
	return out
}

// Aggregate computes the full metrics structure. All-empty input yields the
// zero-valued structure with the N/A top-tag sentinel.
func (a *Aggregator) Aggregate(all, items7, items30 []article.Article) Metrics {
	tags7 := NewCounter()
	tags30 := NewCounter()
	for _, item := range items7 {
		tags7.AddAll(item.Tags)
	}
	for _, item := range items30 {
		tags30.AddAll(item.Tags)
	}

	sources := NewCounter()
	keywords := NewCounter()
	daily := map[string]int{}
	for _, item := range items30 {
		source := strings.TrimSpace(item.Source)
		if source == "" {
			source = ExtractDomain(item.Link)
		}
		sources.Add(source)

		keywords.AddAll(textnorm.Keywords(item.Text(), a.opts.KeywordMinLength, a.opts.KeywordStopwords))

		if item.Date != "" {
			daily[item.Date]++
		}
	}

	metrics := Metrics{
		TagCounts: WindowedCounts{
			Days7:  tags7.MostCommon(a.opts.TopTags),
			Days30: tags30.MostCommon(a.opts.TopTags),
		},
		UrgencyCounts: WindowedCounts{
			Days7:  urgencyCounts(items7),
			Days30: urgencyCounts(items30),
		},
		TopSources:  sources.MostCommon(a.opts.TopSources),
		TopKeywords: keywords.MostCommon(a.opts.TopKeywords),
		DailyCounts: dailySeries(daily),
		TopArticles: a.topArticles(all),
		KPIs: KPIs{
			Total7Days:  len(items7),
			Total30Days: len(items30),
			TopTag:      topTag(tags30),
			LastUpdate:  globaltime.Now().Format(time.RFC3339),
		},
	}

	a.logger.Info().
		Int("items_7_days", len(items7)).
		Int("items_30_days", len(items30)).
		Str("top_tag", metrics.KPIs.TopTag).
		Msg("metrics computed")
	return metrics
}

// urgencyCounts always reports all three levels, zero or not, in severity
// order. Items without an urgency count as Medium.
func urgencyCounts(items []article.Article) CountList {
	counts := map[string]int{}
	for _, item := range items {
		switch item.Urgency {
		case article.UrgencyHigh, article.UrgencyLow:
			counts[item.Urgency]++
		default:
			counts[article.UrgencyMedium]++
		}
	}
	return CountList{
		{Key: article.UrgencyHigh, Count: counts[article.UrgencyHigh]},
		{Key: article.UrgencyMedium, Count: counts[article.UrgencyMedium]},
		{Key: article.UrgencyLow, Count: counts[article.UrgencyLow]},
	}
}

func dailySeries(daily map[string]int) []DailyCount {
	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]DailyCount, 0, len(dates))
	for _, date := range dates {
		series = append(series, DailyCount{Date: date, Count: daily[date]})
	}
	return series
}

func (a *Aggregator) topArticles(all []article.Article) []TopArticle {
	ranked := make([]article.Article, len(all))
	copy(ranked, all)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := article.UrgencyPriority(ranked[i].Urgency), article.UrgencyPriority(ranked[j].Urgency)
		if pi != pj {
			return pi > pj
		}
		return ranked[i].Date > ranked[j].Date
	})
	if len(ranked) > a.opts.TopArticles {
		ranked = ranked[:a.opts.TopArticles]
	}

	top := make([]TopArticle, 0, len(ranked))
	for _, item := range ranked {
		title := item.Title
		if strings.TrimSpace(title) == "" {
			title = "Untitled"
		}
		link := item.Link
		if link == "" {
			link = "#"
		}
		urgency := item.Urgency
		if urgency == "" {
			urgency = article.UrgencyMedium
		}
		tags := item.Tags
		if tags == nil {
			tags = []string{}
		}
		top = append(top, TopArticle{
			Title:   title,
			Link:    link,
			Summary: truncateRunes(item.Summary, topArticleSummaryLimit),
			Urgency: urgency,
			Date:    item.Date,
			Tags:    tags,
		})
	}
	return top
}

func topTag(tags30 *Counter) string {
	top := tags30.MostCommon(1)
	if len(top) == 0 {
		return NoTopTag
	}
	return top[0].Key
}

// ExtractDomain pulls the registrable domain out of a URL for source
// attribution: scheme and leading www. stripped, anything after the first
// slash dropped, "unknown" when nothing usable remains.
func ExtractDomain(link string) string {
	trimmed := strings.TrimSpace(link)
	if trimmed == "" {
		return "unknown"
	}

	domain := ""
	if parsed, err := url.Parse(trimmed); err == nil {
		domain = parsed.Host
		if domain == "" {
			domain = parsed.Path
		}
	} else {
		domain = trimmed
	}

	domain = strings.TrimPrefix(domain, "www.")
	if slash := strings.IndexByte(domain, '/'); slash >= 0 {
		domain = domain[:slash]
	}
	if domain == "" {
		return "unknown"
	}
	return domain
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
