package services

import (
	"context"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	cacheport "github.com/fintrackr/finance_tracker_app/internal/core/ports/cache"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/core/query"
	"github.com/fintrackr/finance_tracker_app/internal/core/reporting"
)

// Cache keys for the derived dashboard views. Only unfiltered views are
// cached; a custom date range always recomputes.
const (
	cacheKeySummary    = "dashboard:summary"
	cacheKeyMonthly    = "dashboard:monthly"
	cacheKeyCategories = "dashboard:categories"
	cacheKeyBudgets    = "dashboard:budgets"
	cacheKeyInsights   = "dashboard:insights"
)

// reportingService computes the derived dashboard views on top of the
// transaction and budget stores. It owns no state of its own: every view is
// recomputed from the current snapshot, with an optional cache in front.
type reportingService struct {
	BaseService
	transactions portssvc.TransactionReaderSvc
	budgets      portssvc.BudgetReaderSvc
	cache        cacheport.SnapshotCache
	now          func() time.Time
}

// NewReportingService creates the dashboard reporting service. cache may be
// nil to disable caching.
func NewReportingService(transactions portssvc.TransactionReaderSvc, budgets portssvc.BudgetReaderSvc, cache cacheport.SnapshotCache) portssvc.ReportingSvcFacade {
	return &reportingService{
		transactions: transactions,
		budgets:      budgets,
		cache:        cache,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// snapshot fetches the transaction set narrowed to the optional inclusive
// date range. No ordering is applied; the aggregations don't need one.
func (s *reportingService) snapshot(ctx context.Context, from, to time.Time) ([]domain.Transaction, domain.Source, error) {
	return s.transactions.ListTransactions(ctx, query.Filter{From: from, To: to}, query.Sort{})
}

// DashboardSummary returns the headline totals and the month-over-month
// comparison for the dashboard cards.
func (s *reportingService) DashboardSummary(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error) {
	cacheable := from.IsZero() && to.IsZero()
	if cacheable && s.cache != nil {
		var cached domain.DashboardSummary
		if s.cache.Get(ctx, cacheKeySummary, &cached) {
			return &cached, nil
		}
	}

	txns, source, err := s.snapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := &domain.DashboardSummary{
		Summary:        reporting.Summarize(txns),
		MonthOverMonth: reporting.CompareMonths(txns, s.now()),
		Source:         source,
	}
	if cacheable && s.cache != nil {
		s.cache.Set(ctx, cacheKeySummary, result)
	}
	return result, nil
}

// MonthlySeries returns the trailing six-month income-vs-expense chart data.
func (s *reportingService) MonthlySeries(ctx context.Context, from, to time.Time) ([]domain.MonthlyPoint, error) {
	cacheable := from.IsZero() && to.IsZero()
	if cacheable && s.cache != nil {
		var cached []domain.MonthlyPoint
		if s.cache.Get(ctx, cacheKeyMonthly, &cached) {
			return cached, nil
		}
	}

	txns, _, err := s.snapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	series := reporting.MonthlySeries(txns, s.now())
	if cacheable && s.cache != nil {
		s.cache.Set(ctx, cacheKeyMonthly, series)
	}
	return series, nil
}

// CategoryBreakdown returns per-category expense totals for the pie chart.
func (s *reportingService) CategoryBreakdown(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	cacheable := from.IsZero() && to.IsZero()
	if cacheable && s.cache != nil {
		var cached []domain.CategoryTotal
		if s.cache.Get(ctx, cacheKeyCategories, &cached) {
			return cached, nil
		}
	}

	txns, _, err := s.snapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	breakdown := reporting.CategoryBreakdown(txns)
	if cacheable && s.cache != nil {
		s.cache.Set(ctx, cacheKeyCategories, breakdown)
	}
	return breakdown, nil
}

// BudgetOverview compares every category budget against actual spending.
func (s *reportingService) BudgetOverview(ctx context.Context) (*domain.BudgetOverview, error) {
	if s.cache != nil {
		var cached domain.BudgetOverview
		if s.cache.Get(ctx, cacheKeyBudgets, &cached) {
			return &cached, nil
		}
	}

	txns, _, err := s.snapshot(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	budgets, _, err := s.budgets.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}

	overview := reporting.BudgetUtilization(txns, budgets)
	if s.cache != nil {
		s.cache.Set(ctx, cacheKeyBudgets, overview)
	}
	return &overview, nil
}

// DashboardInsights returns the derived highlights: top spending category,
// over-budget categories and upcoming bill reminders.
func (s *reportingService) DashboardInsights(ctx context.Context, from, to time.Time) (*domain.Insights, error) {
	cacheable := from.IsZero() && to.IsZero()
	if cacheable && s.cache != nil {
		var cached domain.Insights
		if s.cache.Get(ctx, cacheKeyInsights, &cached) {
			return &cached, nil
		}
	}

	txns, _, err := s.snapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}
	budgets, _, err := s.budgets.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}

	insights := reporting.Insights(txns, budgets, s.now())
	if cacheable && s.cache != nil {
		s.cache.Set(ctx, cacheKeyInsights, insights)
	}
	return &insights, nil
}
