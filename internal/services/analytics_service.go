package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"accubooks/internal/models"
	"accubooks/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService fetches a user's income and purchase entries and feeds
// them through the reporting engine. The two fetches run concurrently; if
// either fails the whole report fails.
type AnalyticsService struct {
	incomeRepo   repositories.IncomeRepositoryInterface
	purchaseRepo repositories.PurchaseRepositoryInterface
	reporting    ReportingServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	incomeRepo repositories.IncomeRepositoryInterface,
	purchaseRepo repositories.PurchaseRepositoryInterface,
	reporting ReportingServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		incomeRepo:   incomeRepo,
		purchaseRepo: purchaseRepo,
		reporting:    reporting,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetSummary computes the headline totals for a user
func (s *AnalyticsService) GetSummary(ctx context.Context, userID uuid.UUID) (*models.FinancialSummary, error) {
	income, purchases, err := s.fetchEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.recordReport("summary", userID)
	return s.reporting.ComputeSummary(income, purchases), nil
}

// GetCategoryBreakdown computes per-category totals for a user
func (s *AnalyticsService) GetCategoryBreakdown(ctx context.Context, userID uuid.UUID) (*models.CategoryBreakdown, error) {
	income, purchases, err := s.fetchEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.recordReport("by-category", userID)
	return s.reporting.ComputeCategoryBreakdown(income, purchases), nil
}

// GetMonthlyTrends computes per-month totals for a user
func (s *AnalyticsService) GetMonthlyTrends(ctx context.Context, userID uuid.UUID) ([]models.MonthlyTrend, error) {
	income, purchases, err := s.fetchEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.recordReport("trends", userID)
	return s.reporting.ComputeMonthlyTrends(income, purchases), nil
}

// fetchEntries loads both entry sets concurrently
func (s *AnalyticsService) fetchEntries(ctx context.Context, userID uuid.UUID) ([]models.Income, []models.Purchase, error) {
	start := time.Now()

	var income []models.Income
	var purchases []models.Purchase

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		income, err = s.incomeRepo.ListByUser(userID)
		if err != nil {
			return fmt.Errorf("failed to load income entries: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		purchases, err = s.purchaseRepo.ListByUser(userID)
		if err != nil {
			return fmt.Errorf("failed to load purchase entries: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("analytics fetch failed",
			"error", err,
			"user_id", userID)
		return nil, nil, err
	}

	s.metrics.RecordProcessingTime("analytics.fetch", time.Since(start))

	return income, purchases, nil
}

func (s *AnalyticsService) recordReport(report string, userID uuid.UUID) {
	s.metrics.IncrementCounter("analytics_request", map[string]string{"report": report})
	s.logger.Debug("analytics report computed",
		"report", report,
		"user_id", userID)
}
