package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	cacheport "github.com/fintrackr/finance_tracker_app/internal/core/ports/cache"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
)

// budgetService is the budget store. It mirrors the transaction store's
// degraded-durability behavior: an unreachable repository downgrades reads to
// the in-memory replica and mutations to memory-only writes.
type budgetService struct {
	BaseService
	repo  portsrepo.BudgetRepository
	cache cacheport.SnapshotCache

	mu    sync.RWMutex
	local []domain.Budget
}

// NewBudgetService creates a budget store backed by repo. cache may be nil.
func NewBudgetService(repo portsrepo.BudgetRepository, cache cacheport.SnapshotCache) portssvc.BudgetSvcFacade {
	return &budgetService{
		repo:  repo,
		cache: cache,
	}
}

// ListBudgets returns all category budgets, falling back to the in-memory
// replica when the repository is unreachable.
func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, domain.Source, error) {
	budgets, err := s.repo.FindBudgets(ctx)
	source := domain.SourceDatabase
	if err != nil {
		s.LogWarn(ctx, "Serving budgets from in-memory replica", slog.String("error", err.Error()))
		budgets = s.replica()
		source = domain.SourceMemory
	} else {
		s.refreshReplica(budgets)
	}
	return budgets, source, nil
}

// GetBudgetAmount returns the spending ceiling for a category, zero when no
// budget is set.
func (s *budgetService) GetBudgetAmount(ctx context.Context, category domain.Category) (decimal.Decimal, error) {
	budgets, _, err := s.ListBudgets(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	for i := range budgets {
		if budgets[i].Category == category {
			return budgets[i].Amount, nil
		}
	}
	return decimal.Zero, nil
}

// TotalBudget returns the sum of all category ceilings.
func (s *budgetService) TotalBudget(ctx context.Context) (decimal.Decimal, error) {
	budgets, _, err := s.ListBudgets(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range budgets {
		total = total.Add(budgets[i].Amount)
	}
	return total, nil
}

// SetBudget creates or replaces the ceiling for a category. Validation
// failures leave the store untouched.
func (s *budgetService) SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, domain.Durability, error) {
	now := time.Now().UTC()
	budget := domain.Budget{
		Category: req.Category,
		Amount:   req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := budget.Validate(); err != nil {
		return nil, "", err
	}

	if prev, ok := s.findLocal(budget.Category); ok {
		budget.CreatedAt = prev.CreatedAt
	}

	durability := domain.DurabilityPersisted
	if err := s.repo.UpsertBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to persist budget, keeping it in memory only", slog.String("category", string(budget.Category)))
		durability = domain.DurabilityMemoryOnly
	}

	s.upsertLocal(budget)
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.LogInfo(ctx, "Budget set", slog.String("category", string(budget.Category)), slog.String("durability", string(durability)))
	return &budget, durability, nil
}

func (s *budgetService) replica() []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Budget, len(s.local))
	copy(out, s.local)
	return out
}

func (s *budgetService) refreshReplica(budgets []domain.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = make([]domain.Budget, len(budgets))
	copy(s.local, budgets)
}

func (s *budgetService) findLocal(category domain.Category) (domain.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.local {
		if s.local[i].Category == category {
			return s.local[i], true
		}
	}
	return domain.Budget{}, false
}

func (s *budgetService) upsertLocal(budget domain.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.local {
		if s.local[i].Category == budget.Category {
			s.local[i] = budget
			return
		}
	}
	s.local = append(s.local, budget)
}
