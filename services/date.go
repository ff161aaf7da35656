package services

import (
	"fmt"
	"time"
)

// ParseDate parses a YYYY-MM-DD date as midnight in loc (UTC when nil)
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	parsedTime, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return parsedTime, nil
}
