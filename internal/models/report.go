package models

import "github.com/shopspring/decimal"

const (
	// UncategorizedLabel groups entries whose category was deleted or never set.
	UncategorizedLabel = "Uncategorized"

	DefaultIncomeColor   = "#10b981"
	DefaultPurchaseColor = "#ef4444"
)

// FinancialSummary is the headline view over a user's entries.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetBalance    decimal.Decimal `json:"netBalance"`
}

// CategoryTotal is one per-category aggregate within a breakdown. Color is the
// category's display color, or a kind-specific default for uncategorized rows.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
	Color string          `json:"color"`
}

// CategoryBreakdown holds per-category totals for both entry kinds, each in
// first-occurrence order of the underlying entries.
type CategoryBreakdown struct {
	IncomeByCategory    []CategoryTotal `json:"incomeByCategory"`
	PurchasesByCategory []CategoryTotal `json:"purchasesByCategory"`
}

// MonthlyTrend is the income and expense total for one YYYY-MM month.
type MonthlyTrend struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
