package enums

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for a 1-based month number.
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("invalid month number %d", month)
	}
	return monthNames[month-1], nil
}

// MonthNumber resolves an English month name to its 1-based number.
func MonthNumber(name string) (int, error) {
	for i, candidate := range monthNames {
		if strings.EqualFold(candidate, strings.TrimSpace(name)) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("invalid month name %q", name)
}

// MonthOf returns the English name of t's month.
func MonthOf(t time.Time) string {
	return monthNames[int(t.Month())-1]
}
