package services

import (
	cacheport "github.com/fintrackr/finance_tracker_app/internal/core/ports/cache"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
)

// NewServiceContainer wires the stores and the reporting service together.
// cache may be nil; when set, the stores invalidate it on mutation and the
// reporting service serves derived views from it.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cache cacheport.SnapshotCache) *portssvc.ServiceContainer {
	transactionSvc := NewTransactionService(repos.TransactionRepo, cache)
	budgetSvc := NewBudgetService(repos.BudgetRepo, cache)
	reportingSvc := NewReportingService(transactionSvc, budgetSvc, cache)

	return &portssvc.ServiceContainer{
		Transaction: transactionSvc,
		Budget:      budgetSvc,
		Reporting:   reportingSvc,
	}
}
