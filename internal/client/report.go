package client

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
)

// barWidth is the width in characters of the longest chart bar.
const barWidth = 40

// Total returns the sum of all expense amounts.
func Total(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// PerCategory aggregates amounts by description. The description doubles
// as the category key; there is no separate category field.
func PerCategory(expenses []models.Expense) map[string]float64 {
	categories := make(map[string]float64)
	for _, e := range expenses {
		categories[e.Description] += e.Amount
	}
	return categories
}

// RenderBarChart writes one proportional bar per expense, unaggregated.
func RenderBarChart(w io.Writer, expenses []models.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, "No expenses to chart.")
		return
	}

	max := expenses[0].Amount
	for _, e := range expenses {
		if e.Amount > max {
			max = e.Amount
		}
	}

	for _, e := range expenses {
		fmt.Fprintf(w, "%-20s %s %.2f\n", truncate(e.Description, 20), bar(e.Amount, max), e.Amount)
	}
}

// RenderPieChart writes one line per distinct description with its
// aggregated amount and share of the total, largest first.
func RenderPieChart(w io.Writer, expenses []models.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, "No expenses to chart.")
		return
	}

	total := Total(expenses)
	categories := PerCategory(expenses)

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if categories[names[i]] != categories[names[j]] {
			return categories[names[i]] > categories[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		amount := categories[name]
		share := 0.0
		if total != 0 {
			share = amount / total * 100
		}
		fmt.Fprintf(w, "%-20s %s %.2f (%.1f%%)\n", truncate(name, 20), bar(amount, total), amount, share)
	}
}

// bar renders a proportional bar of at most barWidth characters.
func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n < 0 {
		n = 0
	}
	return strings.Repeat("#", n)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
