package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pocketledger/backend/internal/analytics"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// currency renders an amount with grouped digits and two decimals.
func currency(amount decimal.Decimal) string {
	return printer.Sprintf("$%.2f", amount.InexactFloat64())
}

// signedCurrency renders an amount with an explicit sign.
func signedCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + currency(amount.Neg())
	}

	return "+" + currency(amount)
}

// FormatText renders the structured report in a fixed, human-readable
// layout. The numbers are taken verbatim from the report.
func FormatText(r Report) string {
	var out strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(&out, "POCKET LEDGER MONTHLY REPORT\n")
	fmt.Fprintf(&out, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&out, "Period: %s to %s\n%s\n\n", r.Period.Start, r.Period.End, rule)

	fmt.Fprintf(&out, "SUMMARY\n")
	fmt.Fprintf(&out, "Total Income:  %s\n", currency(r.Summary.TotalIncome))
	fmt.Fprintf(&out, "Total Expense: %s\n", currency(r.Summary.TotalExpense))
	fmt.Fprintf(&out, "Net Income:    %s\n", currency(r.Summary.Balance))
	fmt.Fprintf(&out, "Transactions:  %d\n\n", r.Summary.TransactionCount)

	fmt.Fprintf(&out, "MONTH-OVER-MONTH\n")
	fmt.Fprintf(&out, "Income Change:  %s (%.1f%%)\n", signedCurrency(r.PreviousMonth.IncomeChange), r.PreviousMonth.IncomeChangePercent)
	fmt.Fprintf(&out, "Expense Change: %s (%.1f%%)\n\n", signedCurrency(r.PreviousMonth.ExpenseChange), r.PreviousMonth.ExpenseChangePercent)

	fmt.Fprintf(&out, "EXPENSE BREAKDOWN BY CATEGORY\n")
	total := decimal.Zero
	for _, amount := range r.Categories {
		total = total.Add(amount)
	}
	for _, category := range categoriesByAmount(r.Categories) {
		percentage := 0.0
		if total.IsPositive() {
			percentage = r.Categories[category].Div(total).InexactFloat64() * 100
		}
		fmt.Fprintf(&out, "%-15s: %10s (%5.1f%%)\n", category, currency(r.Categories[category]), percentage)
	}

	if len(r.Insights.Patterns) > 0 {
		fmt.Fprintf(&out, "\nSPENDING PATTERNS\n")
		for _, day := range analytics.Weekdays {
			pattern, ok := r.Insights.Patterns[day]
			if !ok {
				continue
			}
			fmt.Fprintf(&out, "%-10s: Avg %s (%d transactions)\n", day, currency(pattern.Average), pattern.Count)
		}
	}

	fmt.Fprintf(&out, "\nRECOMMENDATIONS\n")
	for i, suggestion := range r.Suggestions {
		fmt.Fprintf(&out, "%d. %s\n", i+1, suggestion)
	}

	if len(r.BudgetAlerts) > 0 {
		fmt.Fprintf(&out, "\nBUDGET ALERTS\n")
		for _, alert := range r.BudgetAlerts {
			fmt.Fprintf(&out, "[%s] %s\n", alert.Level, alert.Message)
		}
	}

	fmt.Fprintf(&out, "\n%s\nEnd of Report\n", rule)
	return out.String()
}

// categoriesByAmount orders categories by descending amount, ties by
// name.
func categoriesByAmount(categories map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if categories[names[i]].Equal(categories[names[j]]) {
			return names[i] < names[j]
		}
		return categories[names[i]].GreaterThan(categories[names[j]])
	})

	return names
}
