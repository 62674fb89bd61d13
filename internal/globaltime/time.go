package globaltime

import (
	"sync"
	"time"
)

// ISODate is the calendar-date layout used for snapshot and archive names.
const ISODate = "2006-01-02"

var (
	mu      sync.RWMutex
	nowFunc = time.Now
)

func Now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return nowFunc()
}

func UTC() time.Time {
	return Now().UTC()
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return Now().Format(ISODate)
}

// DaysAgo returns the calendar date windowDays before today as YYYY-MM-DD.
func DaysAgo(days int) string {
	return Now().AddDate(0, 0, -days).Format(ISODate)
}

func SetMockTime(t time.Time) {
	mu.Lock()
	defer mu.Unlock()
	nowFunc = func() time.Time { return t }
}

func ResetTime() {
	mu.Lock()
	defer mu.Unlock()
	nowFunc = time.Now
}
