package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/txledger/internal/domain"
)

// AccountRepository implements usecase.AccountRepository on PostgreSQL.
// Row locks (SELECT ... FOR UPDATE) give each mutation the same
// no-interleaving guarantee the in-memory table mutex provides.
type AccountRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// GetOrCreate returns the client's account, inserting a zeroed one on
// first reference.
func (r *AccountRepository) GetOrCreate(ctx context.Context, clientID uint16) (domain.Account, error) {
	var account domain.Account

	err := r.retrier.Retry(ctx, func() error {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO accounts (client_id, available, held, locked)
			VALUES ($1, 0, 0, false)
			ON CONFLICT (client_id) DO UPDATE SET client_id = EXCLUDED.client_id
			RETURNING client_id, available, held, locked`,
			int32(clientID))

		return scanAccount(row, &account)
	})

	return account, err
}

// Hold moves funds from available to held.
func (r *AccountRepository) Hold(ctx context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(ctx, clientID, func(a *domain.Account) error {
		a.Hold(amount)
		return nil
	})
}

// Release moves held funds back to available.
func (r *AccountRepository) Release(ctx context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(ctx, clientID, func(a *domain.Account) error {
		a.Release(amount)
		return nil
	})
}

// Deposit credits available funds.
func (r *AccountRepository) Deposit(ctx context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(ctx, clientID, func(a *domain.Account) error {
		a.Deposit(amount)
		return nil
	})
}

// Withdraw debits available funds, failing if the balance is insufficient.
func (r *AccountRepository) Withdraw(ctx context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(ctx, clientID, func(a *domain.Account) error {
		if amount.GreaterThan(a.Available) {
			return domain.ErrInsufficientFunds
		}

		a.Withdraw(amount)
		return nil
	})
}

// WithdrawAndLock removes held funds and locks the account, accepting a
// negative resulting balance.
func (r *AccountRepository) WithdrawAndLock(ctx context.Context, clientID uint16, amount domain.Amount) error {
	return r.mutate(ctx, clientID, func(a *domain.Account) error {
		a.WithdrawAndLock(amount)
		return nil
	})
}

// DumpAll returns a summary snapshot of every account.
func (r *AccountRepository) DumpAll(ctx context.Context) ([]domain.AccountSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT client_id, available, held, locked
		FROM accounts
		ORDER BY client_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.AccountSummary
	for rows.Next() {
		var account domain.Account
		if err := scanAccount(rows, &account); err != nil {
			return nil, err
		}

		summaries = append(summaries, account.Summary())
	}

	return summaries, rows.Err()
}

func (r *AccountRepository) mutate(ctx context.Context, clientID uint16, fn func(*domain.Account) error) error {
	return r.retrier.Retry(ctx, func() error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		row := tx.QueryRow(ctx, `
			SELECT client_id, available, held, locked
			FROM accounts
			WHERE client_id = $1
			FOR UPDATE`,
			int32(clientID))

		var account domain.Account
		if err := scanAccount(row, &account); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrAccountDoesNotExist
			}

			return err
		}

		if account.Locked {
			return domain.ErrAccountLocked
		}

		if err := fn(&account); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE accounts
			SET available = $2, held = $3, locked = $4
			WHERE client_id = $1`,
			int32(clientID), account.Available.Scaled(), account.Held.Scaled(), account.Locked)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
}

func scanAccount(row pgx.Row, account *domain.Account) error {
	var (
		clientID        int32
		available, held int64
	)

	if err := row.Scan(&clientID, &available, &held, &account.Locked); err != nil {
		return err
	}

	account.ClientID = uint16(clientID)
	account.Available = domain.NewAmount(available)
	account.Held = domain.NewAmount(held)

	return nil
}
