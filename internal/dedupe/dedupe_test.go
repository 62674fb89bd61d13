package dedupe

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/article"
	"tenguard.watch/trends/internal/similarity"
)

func newDeduper() *Deduper {
	return New(similarity.NewScorer(similarity.Options{}), zerolog.Nop())
}

func titles(items []article.Article) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestDedupeEmptyInput(t *testing.T) {
	if got := newDeduper().Dedupe(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %d items", len(got))
	}
}

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	first := article.Article{
		Title:  "Critical Windows Vulnerability Exploited in Wild",
		Source: "The Hacker News",
	}
	second := article.Article{
		Title:   "Windows Vulnerability Being Actively Exploited",
		Source:  "SecurityWeek",
		Summary: "richer metadata on the later duplicate",
	}

	got := newDeduper().Dedupe([]article.Article{first, second})
	if len(got) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(got))
	}
	if got[0].Title != first.Title {
		t.Fatalf("first occurrence must win, got %q", got[0].Title)
	}
}

func TestDedupePreservesSurvivorOrder(t *testing.T) {
	batch := []article.Article{
		{Title: "Ransomware Gang Extorts Hospital Chain"},
		{Title: "Apple Ships iOS Security Update"},
		{Title: "EU Proposes Stricter Cyber Resilience Rules"},
		{Title: "New Phishing Kit Spoofs Banking Portals"},
	}

	got := newDeduper().Dedupe(batch)
	want := []string{
		"Ransomware Gang Extorts Hospital Chain",
		"Apple Ships iOS Security Update",
		"EU Proposes Stricter Cyber Resilience Rules",
		"New Phishing Kit Spoofs Banking Portals",
	}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("order mismatch: got %v, want %v", titles(got), want)
	}
}

func TestDedupeDropsNearDuplicates(t *testing.T) {
	batch := []article.Article{
		{Title: "Zero-Day in Chrome Actively Exploited, Patch Released"},
		{Title: "Chrome Zero-Day Actively Exploited; Patch Released"},
		{Title: "Unrelated Supply Chain Attack Hits npm Packages"},
	}

	got := newDeduper().Dedupe(batch)
	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %d: %v", len(got), titles(got))
	}
}

func TestDedupeIdempotent(t *testing.T) {
	batch := []article.Article{
		{Title: "Critical Windows Vulnerability Exploited in Wild"},
		{Title: "Windows Vulnerability Being Actively Exploited"},
		{Title: "New Phishing Kit Spoofs Banking Portals"},
	}

	d := newDeduper()
	once := d.Dedupe(batch)
	twice := d.Dedupe(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedupe not idempotent:\nonce:  %v\ntwice: %v", titles(once), titles(twice))
	}
}
