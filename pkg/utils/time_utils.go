package utils

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseDate accepts the API's YYYY-MM-DD date strings.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween counts inclusive calendar days between two API date strings,
// returning 0 when either side does not parse. "2025-07-01".."2025-07-03" is 3.
func DaysBetween(start, end string) int {
	from, ok := ParseDate(start)
	if !ok {
		return 0
	}
	to, ok := ParseDate(end)
	if !ok {
		return 0
	}
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
