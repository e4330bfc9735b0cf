package memory

import (
	"context"
	"sync"

	"github.com/iho/txledger/internal/domain"
)

// AccountRepository implements usecase.AccountRepository with a map behind
// one coarse mutex. Every operation takes the table lock for its whole
// read-modify-write, so no two mutations interleave.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[uint16]domain.Account
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[uint16]domain.Account),
	}
}

// GetOrCreate returns the client's account, inserting a zeroed one on first
// reference. It never fails.
func (r *AccountRepository) GetOrCreate(_ context.Context, clientID uint16) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account, ok := r.accounts[clientID]; ok {
		return account, nil
	}

	account := domain.NewAccount(clientID)
	r.accounts[clientID] = account

	return account, nil
}

// Hold moves funds from available to held.
func (r *AccountRepository) Hold(_ context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(clientID, func(a *domain.Account) error {
		a.Hold(amount)
		return nil
	})
}

// Release moves held funds back to available.
func (r *AccountRepository) Release(_ context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(clientID, func(a *domain.Account) error {
		a.Release(amount)
		return nil
	})
}

// Deposit credits available funds.
func (r *AccountRepository) Deposit(_ context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(clientID, func(a *domain.Account) error {
		a.Deposit(amount)
		return nil
	})
}

// Withdraw debits available funds, failing if the balance is insufficient.
func (r *AccountRepository) Withdraw(_ context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(clientID, func(a *domain.Account) error {
		if amount.GreaterThan(a.Available) {
			return domain.ErrInsufficientFunds
		}

		a.Withdraw(amount)
		return nil
	})
}

// WithdrawAndLock removes held funds and locks the account. It does not
// check held sufficiency: a chargeback is allowed to drive the balance
// negative.
func (r *AccountRepository) WithdrawAndLock(_ context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(clientID, func(a *domain.Account) error {
		a.WithdrawAndLock(amount)
		return nil
	})
}

// DumpAll returns a summary snapshot of every account, in map order.
func (r *AccountRepository) DumpAll(_ context.Context) ([]domain.AccountSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]domain.AccountSummary, 0, len(r.accounts))
	for _, account := range r.accounts {
		summaries = append(summaries, account.Summary())
	}

	return summaries, nil
}

// mutate loads the account, rejects mutations on locked accounts, applies
// fn and stores the result, all under the table lock.
func (r *AccountRepository) mutate(clientID uint16, fn func(*domain.Account) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[clientID]
	if !ok {
		return domain.ErrAccountDoesNotExist
	}

	if account.Locked {
		return domain.ErrAccountLocked
	}

	if err := fn(&account); err != nil {
		return err
	}

	r.accounts[clientID] = account

	return nil
}
