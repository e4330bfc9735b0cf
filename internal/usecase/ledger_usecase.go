package usecase

import (
	"context"
	"sort"

	"github.com/iho/txledger/internal/domain"
)

// LedgerUseCase is the facade external callers use: process one
// transaction, dump the summaries of every account ever touched.
//
// Callers may process transactions concurrently, but must not have more
// than one transaction with the same tx id in flight at a time: the two
// stores serialize individual operations, not the read-check-write sequence
// spanning both, so concurrent submissions sharing a tx id could both pass
// the lock checks on stale reads.
type LedgerUseCase struct {
	txUC        *TransactionUseCase
	accountRepo AccountRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(txUC *TransactionUseCase, accountRepo AccountRepository) *LedgerUseCase {
	return &LedgerUseCase{
		txUC:        txUC,
		accountRepo: accountRepo,
	}
}

// ProcessTransaction applies one transaction. A failure never aborts the
// run; the caller reports it and moves on.
func (uc *LedgerUseCase) ProcessTransaction(ctx context.Context, tx domain.Tx) error {
	return uc.txUC.Process(ctx, tx)
}

// DumpAccounts returns a snapshot summary per account, sorted by client id.
// The ordering is a convenience for deterministic output, not a contract.
func (uc *LedgerUseCase) DumpAccounts(ctx context.Context) ([]domain.AccountSummary, error) {
	summaries, err := uc.accountRepo.DumpAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Client < summaries[j].Client
	})

	return summaries, nil
}
