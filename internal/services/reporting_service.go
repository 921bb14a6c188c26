package services

import (
	"sort"

	"accubooks/internal/models"

	"github.com/shopspring/decimal"
)

// ReportingService computes financial reports from in-memory entry slices.
// It is stateless and safe for concurrent use; callers fetch the entries and
// hand them over.
type ReportingService struct{}

// NewReportingService creates a new reporting service
func NewReportingService() ReportingServiceInterface {
	return &ReportingService{}
}

// ComputeSummary totals all income and purchase amounts and derives the net
// balance. Amounts are aggregated with exact decimal arithmetic.
func (s *ReportingService) ComputeSummary(income []models.Income, purchases []models.Purchase) *models.FinancialSummary {
	totalIncome := decimal.Zero
	for i := range income {
		totalIncome = totalIncome.Add(income[i].Amount)
	}

	totalExpenses := decimal.Zero
	for i := range purchases {
		totalExpenses = totalExpenses.Add(purchases[i].Amount)
	}

	return &models.FinancialSummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetBalance:    totalIncome.Sub(totalExpenses),
	}
}

// ComputeCategoryBreakdown groups entries by category name. Entries without a
// category, including those whose category was deleted, fall into the
// "Uncategorized" group with a kind-specific default color. Groups appear in
// first-occurrence order of the underlying entries.
func (s *ReportingService) ComputeCategoryBreakdown(income []models.Income, purchases []models.Purchase) *models.CategoryBreakdown {
	incomeTotals := newBreakdownAccumulator(models.DefaultIncomeColor)
	for i := range income {
		incomeTotals.add(income[i].Category, income[i].Amount)
	}

	purchaseTotals := newBreakdownAccumulator(models.DefaultPurchaseColor)
	for i := range purchases {
		purchaseTotals.add(purchases[i].Category, purchases[i].Amount)
	}

	return &models.CategoryBreakdown{
		IncomeByCategory:    incomeTotals.totals(),
		PurchasesByCategory: purchaseTotals.totals(),
	}
}

// ComputeMonthlyTrends buckets entries by the YYYY-MM prefix of their date and
// totals each side per month. Months appear in ascending order; a month seen
// on only one side reports zero for the other.
func (s *ReportingService) ComputeMonthlyTrends(income []models.Income, purchases []models.Purchase) []models.MonthlyTrend {
	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}

	buckets := make(map[string]*bucket)
	get := func(month string) *bucket {
		b, ok := buckets[month]
		if !ok {
			b = &bucket{income: decimal.Zero, expenses: decimal.Zero}
			buckets[month] = b
		}
		return b
	}

	for i := range income {
		b := get(models.MonthKey(income[i].Date))
		b.income = b.income.Add(income[i].Amount)
	}

	for i := range purchases {
		b := get(models.MonthKey(purchases[i].Date))
		b.expenses = b.expenses.Add(purchases[i].Amount)
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	trends := make([]models.MonthlyTrend, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		trends = append(trends, models.MonthlyTrend{
			Month:    month,
			Income:   b.income,
			Expenses: b.expenses,
		})
	}

	return trends
}

// breakdownAccumulator keeps per-name running totals in insertion order.
// Duplicate category names merge into one group; the first-seen color wins.
type breakdownAccumulator struct {
	defaultColor string
	order        []string
	byName       map[string]*models.CategoryTotal
}

func newBreakdownAccumulator(defaultColor string) *breakdownAccumulator {
	return &breakdownAccumulator{
		defaultColor: defaultColor,
		byName:       make(map[string]*models.CategoryTotal),
	}
}

func (a *breakdownAccumulator) add(category *models.Category, amount decimal.Decimal) {
	name := models.UncategorizedLabel
	color := a.defaultColor
	if category != nil {
		name = category.Name
		color = category.Color
	}

	total, ok := a.byName[name]
	if !ok {
		total = &models.CategoryTotal{
			Name:  name,
			Total: decimal.Zero,
			Color: color,
		}
		a.byName[name] = total
		a.order = append(a.order, name)
	}

	total.Total = total.Total.Add(amount)
}

func (a *breakdownAccumulator) totals() []models.CategoryTotal {
	result := make([]models.CategoryTotal, 0, len(a.order))
	for _, name := range a.order {
		result = append(result, *a.byName[name])
	}
	return result
}
