package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/txledger/internal/domain"
)

// BookingRepository implements usecase.BookingRepository on PostgreSQL.
type BookingRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// GetOrCreate returns the booking for tx.TxID, creating a pristine one on
// first reference. The record's amount is validated on creation only.
func (r *BookingRepository) GetOrCreate(ctx context.Context, tx domain.Tx) (domain.Booking, error) {
	var booking domain.Booking

	err := r.retrier.Retry(ctx, func() error {
		dbtx, err := r.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer dbtx.Rollback(ctx)

		row := dbtx.QueryRow(ctx, `
			SELECT tx_id, client_id, amount, state, locked
			FROM bookings
			WHERE tx_id = $1
			FOR UPDATE`,
			int64(tx.TxID))

		err = scanBooking(row, &booking)
		if err == nil {
			return dbtx.Commit(ctx)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		if tx.Amount == nil {
			return fmt.Errorf("%w: missing amount", domain.ErrMalformedTransaction)
		}

		if tx.Amount.IsNegative() {
			return fmt.Errorf("%w: negative amount", domain.ErrMalformedTransaction)
		}

		booking = domain.NewBooking(tx.TxID, tx.ClientID, *tx.Amount)

		_, err = dbtx.Exec(ctx, `
			INSERT INTO bookings (tx_id, client_id, amount, state, locked)
			VALUES ($1, $2, $3, $4, $5)`,
			int64(booking.TxID), int32(booking.ClientID), booking.Amount.Scaled(),
			string(booking.State), booking.Locked)
		if err != nil {
			return err
		}

		return dbtx.Commit(ctx)
	})

	return booking, err
}

// Update replaces the stored booking's mutable fields.
func (r *BookingRepository) Update(ctx context.Context, txID uint32, booking domain.Booking) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, `
			UPDATE bookings
			SET state = $2, locked = $3
			WHERE tx_id = $1`,
			int64(txID), string(booking.State), booking.Locked)

		return err
	})
}

func scanBooking(row pgx.Row, booking *domain.Booking) error {
	var (
		txID     int64
		clientID int32
		amount   int64
		state    string
	)

	if err := row.Scan(&txID, &clientID, &amount, &state, &booking.Locked); err != nil {
		return err
	}

	booking.TxID = uint32(txID)
	booking.ClientID = uint16(clientID)
	booking.Amount = domain.NewAmount(amount)
	booking.State = domain.BookingState(state)

	return nil
}
