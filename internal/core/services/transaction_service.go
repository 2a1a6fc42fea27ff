package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	cacheport "github.com/fintrackr/finance_tracker_app/internal/core/ports/cache"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/core/query"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
)

// transactionService is the transaction store. It keeps an in-memory replica
// of the transaction set alongside the repository: reads refresh the replica
// when the database answers, and mutations that fail to persist are applied
// to the replica anyway so the session keeps a consistent view. The achieved
// durability is reported back to the caller on every mutation.
type transactionService struct {
	BaseService
	repo  portsrepo.TransactionRepository
	cache cacheport.SnapshotCache

	mu    sync.RWMutex
	local []domain.Transaction
}

// NewTransactionService creates a transaction store backed by repo.
// cache may be nil; when set, it is invalidated after every mutation.
func NewTransactionService(repo portsrepo.TransactionRepository, cache cacheport.SnapshotCache) portssvc.TransactionSvcFacade {
	return &transactionService{
		repo:  repo,
		cache: cache,
	}
}

// normalizeRecord re-derives the canonical field forms for a record loaded
// from persistence: categories collapse to the known set and dates lose any
// time-of-day component.
func normalizeRecord(txn domain.Transaction) domain.Transaction {
	txn.Category = domain.NormalizeCategory(string(txn.Category))
	txn.Date = domain.DateOnly(txn.Date)
	return txn
}

// ListTransactions returns the filtered, sorted transaction set. A failing
// repository downgrades the read to the in-memory replica.
func (s *transactionService) ListTransactions(ctx context.Context, filter query.Filter, sort query.Sort) ([]domain.Transaction, domain.Source, error) {
	txns, err := s.repo.FindTransactions(ctx)
	source := domain.SourceDatabase
	if err != nil {
		s.LogWarn(ctx, "Serving transactions from in-memory replica", slog.String("error", err.Error()))
		txns = s.replica()
		source = domain.SourceMemory
	} else {
		for i := range txns {
			txns[i] = normalizeRecord(txns[i])
		}
		s.refreshReplica(txns)
	}

	return sort.Apply(filter.Apply(txns)), source, nil
}

// GetTransactionByID fetches a single transaction. A missing ID is
// apperrors.ErrNotFound; a failing repository falls back to the replica.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.repo.FindTransactionByID(ctx, transactionID)
	if err == nil {
		normalized := normalizeRecord(*txn)
		return &normalized, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	s.LogWarn(ctx, "Looking up transaction in in-memory replica", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
	if local, ok := s.findLocal(transactionID); ok {
		return &local, nil
	}
	return nil, apperrors.ErrNotFound
}

// CreateTransaction validates and records a new transaction. When the
// repository is unreachable the record is still applied to the replica and
// the returned durability is memory_only.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, domain.Durability, error) {
	fields, err := req.Fields()
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	txn := fields
	txn.TransactionID = uuid.NewString()
	txn.CreatedAt = now
	txn.UpdatedAt = now
	if err := txn.Validate(); err != nil {
		return nil, "", err
	}

	durability := domain.DurabilityPersisted
	if err := s.repo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction, keeping it in memory only", slog.String("transaction_id", txn.TransactionID))
		durability = domain.DurabilityMemoryOnly
	}

	s.appendLocal(txn)
	s.invalidateCache(ctx)
	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("durability", string(durability)))
	return &txn, durability, nil
}

// UpdateTransaction replaces every mutable field of an existing transaction.
// Validation failures leave the store untouched, and an unknown ID is
// apperrors.ErrNotFound even when persistence is down.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, domain.Durability, error) {
	fields, err := req.Fields()
	if err != nil {
		return nil, "", err
	}

	txn := fields
	txn.TransactionID = transactionID
	txn.UpdatedAt = time.Now().UTC()
	if err := txn.Validate(); err != nil {
		return nil, "", err
	}

	prev, known := s.findLocal(transactionID)
	if known {
		txn.CreatedAt = prev.CreatedAt
	} else if stored, lookupErr := s.repo.FindTransactionByID(ctx, transactionID); lookupErr == nil {
		txn.CreatedAt = stored.CreatedAt
	}

	durability := domain.DurabilityPersisted
	err = s.repo.UpdateTransaction(ctx, txn)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrNotFound):
		return nil, "", err
	default:
		if !known {
			return nil, "", apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to persist transaction update, applying it in memory only", slog.String("transaction_id", transactionID))
		durability = domain.DurabilityMemoryOnly
	}

	s.replaceLocal(txn)
	s.invalidateCache(ctx)
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID), slog.String("durability", string(durability)))
	return &txn, durability, nil
}

// DeleteTransaction removes a transaction. An unknown ID is
// apperrors.ErrNotFound even when persistence is down.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) (domain.Durability, error) {
	_, known := s.findLocal(transactionID)

	durability := domain.DurabilityPersisted
	err := s.repo.DeleteTransaction(ctx, transactionID)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrNotFound):
		return "", err
	default:
		if !known {
			return "", apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to persist transaction deletion, applying it in memory only", slog.String("transaction_id", transactionID))
		durability = domain.DurabilityMemoryOnly
	}

	s.removeLocal(transactionID)
	s.invalidateCache(ctx)
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID), slog.String("durability", string(durability)))
	return durability, nil
}

func (s *transactionService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// replica returns a copy of the in-memory transaction set.
func (s *transactionService) replica() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, len(s.local))
	copy(out, s.local)
	return out
}

func (s *transactionService) refreshReplica(txns []domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = make([]domain.Transaction, len(txns))
	copy(s.local, txns)
}

func (s *transactionService) findLocal(transactionID string) (domain.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.local {
		if s.local[i].TransactionID == transactionID {
			return s.local[i], true
		}
	}
	return domain.Transaction{}, false
}

func (s *transactionService) appendLocal(txn domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = append(s.local, txn)
}

func (s *transactionService) replaceLocal(txn domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.local {
		if s.local[i].TransactionID == txn.TransactionID {
			s.local[i] = txn
			return
		}
	}
	s.local = append(s.local, txn)
}

func (s *transactionService) removeLocal(transactionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.local {
		if s.local[i].TransactionID == transactionID {
			s.local = append(s.local[:i], s.local[i+1:]...)
			return
		}
	}
}
