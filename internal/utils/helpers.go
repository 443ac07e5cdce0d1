package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseAmount extracts a numeric value from a table cell such as "$70,000",
// "95K", "0.1" or "12%". Percentages are returned as fractions.
func ParseAmount(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "$", "")
	text = strings.ReplaceAll(text, ",", "")
	text = strings.ReplaceAll(text, " ", "")
	if text == "" {
		return 0, false
	}

	multiplier := 1.0
	switch upper := strings.ToUpper(text); {
	case strings.HasSuffix(upper, "%"):
		multiplier = 0.01
		text = text[:len(text)-1]
	case strings.HasSuffix(upper, "K"):
		multiplier = 1000
		text = text[:len(text)-1]
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value * multiplier, true
}

// FormatSalary formats an amount as whole dollars with comma separators
func FormatSalary(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return fmt.Sprintf("-$%s", humanize.Comma(-rounded))
	}
	return fmt.Sprintf("$%s", humanize.Comma(rounded))
}

// FormatPercent formats a fractional rate such as 0.025 as "2.5%"
func FormatPercent(rate float64) string {
	return humanize.FtoaWithDigits(rate*100, 2) + "%"
}
