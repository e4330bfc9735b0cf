package usecase

import (
	"context"
	"time"

	"github.com/iho/txledger/internal/domain"
)

// AccountRepository defines data access for accounts. It is the exclusive
// owner of the account table: every operation is atomic with respect to the
// other operations on the same repository, and each balance mutation fails
// with domain.ErrAccountLocked once the account has been locked.
type AccountRepository interface {
	GetOrCreate(ctx context.Context, clientID uint16) (domain.Account, error)
	Hold(ctx context.Context, clientID uint16, amount domain.Amount) error
	Release(ctx context.Context, clientID uint16, amount domain.Amount) error
	Deposit(ctx context.Context, clientID uint16, amount domain.Amount) error
	// Withdraw fails with domain.ErrInsufficientFunds when amount exceeds
	// the available balance.
	Withdraw(ctx context.Context, clientID uint16, amount domain.Amount) error
	// WithdrawAndLock removes held funds and locks the account. It does not
	// fail on insufficient held funds; a negative balance is accepted.
	WithdrawAndLock(ctx context.Context, clientID uint16, amount domain.Amount) error
	DumpAll(ctx context.Context) ([]domain.AccountSummary, error)
}

// BookingRepository defines data access for bookings, over a lock domain
// separate from the account table.
type BookingRepository interface {
	// GetOrCreate returns the existing booking for tx.TxID, or creates a
	// pristine one from the supplied record. The record's amount and client
	// are only consulted at creation time; a missing or negative amount on
	// creation fails with domain.ErrMalformedTransaction.
	GetOrCreate(ctx context.Context, tx domain.Tx) (domain.Booking, error)
	Update(ctx context.Context, txID uint32, booking domain.Booking) error
}

// IdempotencyStore handles idempotency key storage for the HTTP surface.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
