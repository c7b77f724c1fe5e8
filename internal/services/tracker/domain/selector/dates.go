package selector

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const day = 24 * time.Hour

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// ParseDate reads a stored date string. Date-only values are midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// ceilDays converts d to whole days, rounding up.
func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(day)))
}
