package trends

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NoTopTag is the KPI sentinel when the 30-day window holds no tags at all.
const NoTopTag = "N/A"

// CountList is an ordered key→count mapping. It marshals to a JSON object
// whose key order is the ranking order, and unmarshals back preserving the
// order found in the document, so write/read round-trips keep ranking
// determinism.
type CountList []Entry

func (cl CountList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range cl {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", entry.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (cl *CountList) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	tok, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("count mapping must be a JSON object, got %v", tok)
	}

	entries := CountList{}
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("count mapping key must be a string, got %v", keyTok)
		}
		var count int
		if err := decoder.Decode(&count); err != nil {
			return fmt.Errorf("count for %q: %w", key, err)
		}
		entries = append(entries, Entry{Key: key, Count: count})
	}

	*cl = entries
	return nil
}

// Get returns the count for key, zero when absent.
func (cl CountList) Get(key string) int {
	for _, entry := range cl {
		if entry.Key == key {
			return entry.Count
		}
	}
	return 0
}

// WindowedCounts holds the same mapping computed over both trend windows.
type WindowedCounts struct {
	Days7  CountList `json:"7_days"`
	Days30 CountList `json:"30_days"`
}

// DailyCount is one point of the daily volume series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TopArticle is the trimmed article summary ranked into top_articles.
type TopArticle struct {
	Title   string   `json:"title"`
	Link    string   `json:"link"`
	Summary string   `json:"summary"`
	Urgency string   `json:"urgency"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
}

type KPIs struct {
	Total7Days  int    `json:"total_7_days"`
	Total30Days int    `json:"total_30_days"`
	TopTag      string `json:"top_tag"`
	LastUpdate  string `json:"last_update"`
}

// Metrics is the aggregate rebuilt from scratch on every run and persisted
// as both the latest record and a dated archive record.
type Metrics struct {
	TagCounts     WindowedCounts `json:"tag_counts"`
	UrgencyCounts WindowedCounts `json:"urgency_counts"`
	TopSources    CountList      `json:"top_sources"`
	TopKeywords   CountList      `json:"top_keywords"`
	DailyCounts   []DailyCount   `json:"daily_counts"`
	TopArticles   []TopArticle   `json:"top_articles"`
	KPIs          KPIs           `json:"kpis"`
}
