package payroll

import (
	"strconv"
	"strings"
	"time"
)

func FormatPayPeriod(month time.Month, year int) string {
	return month.String() + " " + strconv.Itoa(year)
}

// ParsePayPeriod accepts "January 2024" and returns it normalised.
func ParsePayPeriod(raw string) (string, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return "", ErrInvalidPayPeriod
	}
	parsed, err := time.Parse("January 2006", fields[0]+" "+fields[1])
	if err != nil {
		return "", ErrInvalidPayPeriod
	}
	return FormatPayPeriod(parsed.Month(), parsed.Year()), nil
}
