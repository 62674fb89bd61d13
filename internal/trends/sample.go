package trends

import (
	"time"

	"tenguard.watch/trends/internal/globaltime"
)

// SampleMetrics builds representative preview metrics for dashboard work.
func SampleMetrics() Metrics {
	now := globaltime.Now()

	daily := make([]DailyCount, 0, 31)
	for i := 30; i >= 0; i-- {
		daily = append(daily, DailyCount{
			Date:  now.AddDate(0, 0, -i).Format(globaltime.ISODate),
			Count: 3 + (i % 5),
		})
	}

	return Metrics{
		TagCounts: WindowedCounts{
			Days7: CountList{
				{Key: "malware", Count: 15}, {Key: "ransomware", Count: 12},
				{Key: "phishing", Count: 10}, {Key: "vulnerability", Count: 8},
			},
			Days30: CountList{
				{Key: "malware", Count: 45}, {Key: "ransomware", Count: 38},
				{Key: "phishing", Count: 35}, {Key: "vulnerability", Count: 30},
			},
		},
		UrgencyCounts: WindowedCounts{
			Days7: CountList{
				{Key: "High", Count: 8}, {Key: "Medium", Count: 12}, {Key: "Low", Count: 5},
			},
			Days30: CountList{
				{Key: "High", Count: 25}, {Key: "Medium", Count: 40}, {Key: "Low", Count: 15},
			},
		},
		TopSources: CountList{
			{Key: "thehackernews.com", Count: 30},
			{Key: "securityweek.com", Count: 25},
			{Key: "bleepingcomputer.com", Count: 20},
		},
		TopKeywords: CountList{
			{Key: "vulnerability", Count: 45}, {Key: "attack", Count: 40},
			{Key: "security", Count: 38}, {Key: "data", Count: 35},
			{Key: "breach", Count: 30}, {Key: "malware", Count: 28},
			{Key: "ransomware", Count: 25}, {Key: "exploit", Count: 22},
		},
		DailyCounts: daily,
		TopArticles: []TopArticle{
			{
				Title:   "Critical Windows Vulnerability Exploited in Wild",
				Link:    "https://example.com/article1",
				Summary: "A critical vulnerability in Windows is being actively exploited...",
				Urgency: "High",
				Date:    now.Format(globaltime.ISODate),
				Tags:    []string{"vulnerability", "windows", "exploit"},
			},
		},
		KPIs: KPIs{
			Total7Days:  25,
			Total30Days: 80,
			TopTag:      "malware",
			LastUpdate:  now.Format(time.RFC3339),
		},
	}
}
