package usecase

import (
	"context"
	"fmt"

	"github.com/iho/txledger/internal/domain"
)

// TransactionUseCase applies one transaction against the account and
// booking stores. Each transaction type is only legal from one prior
// booking state, which makes replays of the same (tx id, type) pair fail
// the state check and gives at-most-once application per type per booking.
//
// Chargebacks may drive held and total balances negative. The reference
// behavior treats this as accepted, not rejected; it is a policy decision
// pending product sign-off, not an oversight.
type TransactionUseCase struct {
	accountRepo AccountRepository
	bookingRepo BookingRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(accountRepo AccountRepository, bookingRepo BookingRepository) *TransactionUseCase {
	return &TransactionUseCase{
		accountRepo: accountRepo,
		bookingRepo: bookingRepo,
	}
}

// Process validates and applies a single transaction. On failure the
// transaction has no effect; on success exactly one account mutation and
// one booking update have been applied.
func (uc *TransactionUseCase) Process(ctx context.Context, tx domain.Tx) error {
	account, err := uc.accountRepo.GetOrCreate(ctx, tx.ClientID)
	if err != nil {
		return err
	}

	if account.Locked {
		return domain.ErrAccountLocked
	}

	booking, err := uc.bookingRepo.GetOrCreate(ctx, tx)
	if err != nil {
		return err
	}

	if booking.Locked {
		return domain.ErrBookingLocked
	}

	// A later transaction reusing the tx id under a different client must
	// not touch either account.
	if booking.ClientID != account.ClientID {
		return domain.ErrInvalidTransaction
	}

	switch tx.Type {
	case domain.TxDeposit:
		if err := requireState(booking, domain.BookingPristine); err != nil {
			return err
		}
		if err := uc.accountRepo.Deposit(ctx, booking.ClientID, booking.Amount); err != nil {
			return err
		}
		booking.SetState(domain.BookingNormal)

	case domain.TxWithdrawal:
		// A withdrawal cannot be disputed, so its booking locks
		// immediately.
		if err := requireState(booking, domain.BookingPristine); err != nil {
			return err
		}
		if err := uc.accountRepo.Withdraw(ctx, booking.ClientID, booking.Amount); err != nil {
			return err
		}
		booking.SetStateAndLock(domain.BookingNormal)

	case domain.TxDispute:
		if err := requireState(booking, domain.BookingNormal); err != nil {
			return err
		}
		if err := uc.accountRepo.Hold(ctx, booking.ClientID, booking.Amount); err != nil {
			return err
		}
		booking.SetState(domain.BookingDisputed)

	case domain.TxResolve:
		if err := requireState(booking, domain.BookingDisputed); err != nil {
			return err
		}
		if err := uc.accountRepo.Release(ctx, booking.ClientID, booking.Amount); err != nil {
			return err
		}
		booking.SetStateAndLock(domain.BookingResolved)

	case domain.TxChargeback:
		if err := requireState(booking, domain.BookingDisputed); err != nil {
			return err
		}
		if err := uc.accountRepo.WithdrawAndLock(ctx, booking.ClientID, booking.Amount); err != nil {
			return err
		}
		booking.SetStateAndLock(domain.BookingChargeback)

	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownTxType, tx.Type)
	}

	return uc.bookingRepo.Update(ctx, tx.TxID, booking)
}

func requireState(booking domain.Booking, want domain.BookingState) error {
	if booking.State != want {
		return domain.ErrInvalidTransition
	}

	return nil
}
