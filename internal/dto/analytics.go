package dto

import "accubooks/internal/models"

// Analytics Response DTOs

// SummaryResponse is the headline totals report
type SummaryResponse struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	NetBalance    string `json:"netBalance"`
}

// CategoryTotalResponse is one per-category aggregate row
type CategoryTotalResponse struct {
	Name  string `json:"name"`
	Total string `json:"total"`
	Color string `json:"color"`
}

// BreakdownResponse holds per-category totals for both entry kinds
type BreakdownResponse struct {
	IncomeByCategory    []CategoryTotalResponse `json:"incomeByCategory"`
	PurchasesByCategory []CategoryTotalResponse `json:"purchasesByCategory"`
}

// TrendResponse is one month's income and expense totals
type TrendResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// Amounts are rendered as fixed two-decimal strings so clients never see
// float artifacts.

// NewSummaryResponse builds a summary response from the computed report
func NewSummaryResponse(summary *models.FinancialSummary) *SummaryResponse {
	return &SummaryResponse{
		TotalIncome:   summary.TotalIncome.StringFixed(2),
		TotalExpenses: summary.TotalExpenses.StringFixed(2),
		NetBalance:    summary.NetBalance.StringFixed(2),
	}
}

// NewBreakdownResponse builds a breakdown response from the computed report
func NewBreakdownResponse(breakdown *models.CategoryBreakdown) *BreakdownResponse {
	return &BreakdownResponse{
		IncomeByCategory:    newCategoryTotals(breakdown.IncomeByCategory),
		PurchasesByCategory: newCategoryTotals(breakdown.PurchasesByCategory),
	}
}

func newCategoryTotals(totals []models.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		responses = append(responses, CategoryTotalResponse{
			Name:  total.Name,
			Total: total.Total.StringFixed(2),
			Color: total.Color,
		})
	}
	return responses
}

// NewTrendListResponse builds the monthly trend list from the computed report
func NewTrendListResponse(trends []models.MonthlyTrend) []TrendResponse {
	responses := make([]TrendResponse, 0, len(trends))
	for _, trend := range trends {
		responses = append(responses, TrendResponse{
			Month:    trend.Month,
			Income:   trend.Income.StringFixed(2),
			Expenses: trend.Expenses.StringFixed(2),
		})
	}
	return responses
}
