package discord

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

// formatMoney renders whole dollars with thousands separators
func formatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + formatNumber(int64(math.Round(v)))
}

// formatNumber adds commas to large numbers
func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var b strings.Builder
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}

// formatMoneyShort formats large amounts with K/M suffix
func formatMoneyShort(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1000000:
		return fmt.Sprintf("%s$%.2fM", sign, v/1000000)
	case v >= 1000:
		return fmt.Sprintf("%s$%.0fK", sign, v/1000)
	}
	return fmt.Sprintf("%s$%.0f", sign, v)
}

// findSimilarFranchises finds franchises whose names overlap the search
func findSimilarFranchises(search string, all []models.FranchiseID) []models.FranchiseID {
	searchLower := strings.ToLower(strings.TrimSpace(search))
	var matches []models.FranchiseID

	for _, id := range all {
		key := id.Key()
		if strings.Contains(key, searchLower) || strings.Contains(searchLower, key) {
			matches = append(matches, id)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })

	// Limit to 5 suggestions
	if len(matches) > 5 {
		matches = matches[:5]
	}

	return matches
}
