package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/txledger/internal/domain"
)

// BookingRepository implements usecase.BookingRepository with a map behind
// one coarse mutex, a lock domain separate from the account table.
type BookingRepository struct {
	mu       sync.Mutex
	bookings map[uint32]domain.Booking
}

// NewBookingRepository creates an empty in-memory booking repository.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		bookings: make(map[uint32]domain.Booking),
	}
}

// GetOrCreate returns the booking for tx.TxID, creating a pristine one on
// first reference. The supplied amount is validated on creation only; an
// existing booking is returned as-is regardless of the record's amount or
// client.
func (r *BookingRepository) GetOrCreate(_ context.Context, tx domain.Tx) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking, ok := r.bookings[tx.TxID]; ok {
		return booking, nil
	}

	if tx.Amount == nil {
		return domain.Booking{}, fmt.Errorf("%w: missing amount", domain.ErrMalformedTransaction)
	}

	if tx.Amount.IsNegative() {
		return domain.Booking{}, fmt.Errorf("%w: negative amount", domain.ErrMalformedTransaction)
	}

	booking := domain.NewBooking(tx.TxID, tx.ClientID, *tx.Amount)
	r.bookings[tx.TxID] = booking

	return booking, nil
}

// Update replaces the stored booking.
func (r *BookingRepository) Update(_ context.Context, txID uint32, booking domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[txID] = booking

	return nil
}
