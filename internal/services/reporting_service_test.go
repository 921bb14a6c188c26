package services

import (
	"testing"

	"accubooks/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	reporting ReportingServiceInterface
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.reporting = NewReportingService()
}

func TestReportingServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) income(amount, date string, category *models.Category) models.Income {
	return models.Income{
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
		Category: category,
	}
}

func (s *ReportingServiceTestSuite) purchase(amount, date string, category *models.Category) models.Purchase {
	return models.Purchase{
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
		Category: category,
	}
}

func category(name, color string) *models.Category {
	return &models.Category{Name: name, Color: color}
}

// Summary

func (s *ReportingServiceTestSuite) TestComputeSummary_Empty() {
	summary := s.reporting.ComputeSummary(nil, nil)

	s.True(summary.TotalIncome.IsZero())
	s.True(summary.TotalExpenses.IsZero())
	s.True(summary.NetBalance.IsZero())
}

func (s *ReportingServiceTestSuite) TestComputeSummary_Totals() {
	income := []models.Income{
		s.income("1200.50", "2024-01-15", nil),
		s.income("300.25", "2024-02-01", nil),
	}
	purchases := []models.Purchase{
		s.purchase("450.75", "2024-01-20", nil),
	}

	summary := s.reporting.ComputeSummary(income, purchases)

	s.Equal("1500.75", summary.TotalIncome.String())
	s.Equal("450.75", summary.TotalExpenses.String())
	s.Equal("1050", summary.NetBalance.String())
}

func (s *ReportingServiceTestSuite) TestComputeSummary_ExactDecimalArithmetic() {
	// 0.1 + 0.2 must be exactly 0.3, not a float artifact
	income := []models.Income{
		s.income("0.10", "2024-01-01", nil),
		s.income("0.20", "2024-01-02", nil),
	}

	summary := s.reporting.ComputeSummary(income, nil)

	s.True(summary.TotalIncome.Equal(decimal.RequireFromString("0.3")))
}

func (s *ReportingServiceTestSuite) TestComputeSummary_ManySmallAmounts() {
	income := make([]models.Income, 100)
	for i := range income {
		income[i] = s.income("0.30", "2024-01-01", nil)
	}

	summary := s.reporting.ComputeSummary(income, nil)

	s.True(summary.TotalIncome.Equal(decimal.RequireFromString("30.00")))
}

func (s *ReportingServiceTestSuite) TestComputeSummary_NegativeNetBalance() {
	income := []models.Income{s.income("100.00", "2024-01-01", nil)}
	purchases := []models.Purchase{s.purchase("250.00", "2024-01-02", nil)}

	summary := s.reporting.ComputeSummary(income, purchases)

	s.Equal("-150", summary.NetBalance.String())
}

// Category breakdown

func (s *ReportingServiceTestSuite) TestComputeCategoryBreakdown_Empty() {
	breakdown := s.reporting.ComputeCategoryBreakdown(nil, nil)

	s.Empty(breakdown.IncomeByCategory)
	s.Empty(breakdown.PurchasesByCategory)
}

func (s *ReportingServiceTestSuite) TestComputeCategoryBreakdown_GroupsByName() {
	salary := category("Salary", "#336699")
	groceries := category("Groceries", "#aa3311")

	income := []models.Income{
		s.income("1000.00", "2024-01-01", salary),
		s.income("500.00", "2024-02-01", salary),
	}
	purchases := []models.Purchase{
		s.purchase("75.50", "2024-01-05", groceries),
		s.purchase("24.50", "2024-01-12", groceries),
	}

	breakdown := s.reporting.ComputeCategoryBreakdown(income, purchases)

	s.Require().Len(breakdown.IncomeByCategory, 1)
	s.Equal("Salary", breakdown.IncomeByCategory[0].Name)
	s.Equal("1500", breakdown.IncomeByCategory[0].Total.String())
	s.Equal("#336699", breakdown.IncomeByCategory[0].Color)

	s.Require().Len(breakdown.PurchasesByCategory, 1)
	s.Equal("Groceries", breakdown.PurchasesByCategory[0].Name)
	s.Equal("100", breakdown.PurchasesByCategory[0].Total.String())
}

func (s *ReportingServiceTestSuite) TestComputeCategoryBreakdown_UncategorizedDefaults() {
	income := []models.Income{s.income("50.00", "2024-01-01", nil)}
	purchases := []models.Purchase{s.purchase("20.00", "2024-01-01", nil)}

	breakdown := s.reporting.ComputeCategoryBreakdown(income, purchases)

	s.Require().Len(breakdown.IncomeByCategory, 1)
	s.Equal(models.UncategorizedLabel, breakdown.IncomeByCategory[0].Name)
	s.Equal(models.DefaultIncomeColor, breakdown.IncomeByCategory[0].Color)

	s.Require().Len(breakdown.PurchasesByCategory, 1)
	s.Equal(models.UncategorizedLabel, breakdown.PurchasesByCategory[0].Name)
	s.Equal(models.DefaultPurchaseColor, breakdown.PurchasesByCategory[0].Color)
}

func (s *ReportingServiceTestSuite) TestComputeCategoryBreakdown_FirstOccurrenceOrder() {
	income := []models.Income{
		s.income("10.00", "2024-03-01", category("Bonus", "#111111")),
		s.income("20.00", "2024-01-01", nil),
		s.income("30.00", "2024-02-01", category("Salary", "#222222")),
		s.income("40.00", "2024-04-01", category("Bonus", "#111111")),
	}

	breakdown := s.reporting.ComputeCategoryBreakdown(income, nil)

	s.Require().Len(breakdown.IncomeByCategory, 3)
	s.Equal("Bonus", breakdown.IncomeByCategory[0].Name)
	s.Equal(models.UncategorizedLabel, breakdown.IncomeByCategory[1].Name)
	s.Equal("Salary", breakdown.IncomeByCategory[2].Name)
	s.Equal("50", breakdown.IncomeByCategory[0].Total.String())
}

func (s *ReportingServiceTestSuite) TestComputeCategoryBreakdown_DuplicateNamesMergeFirstColorWins() {
	// Two distinct categories sharing a name collapse into one group
	income := []models.Income{
		s.income("10.00", "2024-01-01", category("Freelance", "#aaaaaa")),
		s.income("15.00", "2024-01-02", category("Freelance", "#bbbbbb")),
	}

	breakdown := s.reporting.ComputeCategoryBreakdown(income, nil)

	s.Require().Len(breakdown.IncomeByCategory, 1)
	s.Equal("Freelance", breakdown.IncomeByCategory[0].Name)
	s.Equal("25", breakdown.IncomeByCategory[0].Total.String())
	s.Equal("#aaaaaa", breakdown.IncomeByCategory[0].Color)
}

// Monthly trends

func (s *ReportingServiceTestSuite) TestComputeMonthlyTrends_Empty() {
	trends := s.reporting.ComputeMonthlyTrends(nil, nil)

	s.Empty(trends)
}

func (s *ReportingServiceTestSuite) TestComputeMonthlyTrends_AscendingMonths() {
	income := []models.Income{
		s.income("100.00", "2024-03-10", nil),
		s.income("200.00", "2024-01-05", nil),
		s.income("300.00", "2023-12-31", nil),
	}

	trends := s.reporting.ComputeMonthlyTrends(income, nil)

	s.Require().Len(trends, 3)
	s.Equal("2023-12", trends[0].Month)
	s.Equal("2024-01", trends[1].Month)
	s.Equal("2024-03", trends[2].Month)
}

func (s *ReportingServiceTestSuite) TestComputeMonthlyTrends_ZeroFillsMissingSide() {
	income := []models.Income{s.income("500.00", "2024-01-15", nil)}
	purchases := []models.Purchase{s.purchase("80.00", "2024-02-20", nil)}

	trends := s.reporting.ComputeMonthlyTrends(income, purchases)

	s.Require().Len(trends, 2)
	s.Equal("2024-01", trends[0].Month)
	s.Equal("500", trends[0].Income.String())
	s.True(trends[0].Expenses.IsZero())

	s.Equal("2024-02", trends[1].Month)
	s.True(trends[1].Income.IsZero())
	s.Equal("80", trends[1].Expenses.String())
}

func (s *ReportingServiceTestSuite) TestComputeMonthlyTrends_AggregatesWithinMonth() {
	income := []models.Income{
		s.income("100.10", "2024-05-01", nil),
		s.income("200.20", "2024-05-31", nil),
	}
	purchases := []models.Purchase{
		s.purchase("50.05", "2024-05-15", nil),
		s.purchase("49.95", "2024-05-16", nil),
	}

	trends := s.reporting.ComputeMonthlyTrends(income, purchases)

	s.Require().Len(trends, 1)
	s.Equal("2024-05", trends[0].Month)
	s.Equal("300.3", trends[0].Income.String())
	s.Equal("100", trends[0].Expenses.String())
}
