package services

import (
	"context"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// ReportingSvcFacade computes the derived dashboard views. The optional
// from/to bounds narrow the snapshot to an inclusive date range before
// aggregating; zero times mean unbounded.
type ReportingSvcFacade interface {
	DashboardSummary(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error)
	MonthlySeries(ctx context.Context, from, to time.Time) ([]domain.MonthlyPoint, error)
	CategoryBreakdown(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error)
	BudgetOverview(ctx context.Context) (*domain.BudgetOverview, error)
	DashboardInsights(ctx context.Context, from, to time.Time) (*domain.Insights, error)
}
