package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/usecase"
	"github.com/iho/txledger/internal/usecase/mocks"
)

func amountPtr(scaled int64) *domain.Amount {
	a := domain.NewAmount(scaled)
	return &a
}

func newProcessor(t *testing.T) (*usecase.TransactionUseCase, *mocks.MockAccountRepository, *mocks.MockBookingRepository) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	bookingRepo := mocks.NewMockBookingRepository(ctrl)

	return usecase.NewTransactionUseCase(accountRepo, bookingRepo), accountRepo, bookingRepo
}

func TestTransactionUseCase_DepositAppliesAndUpdatesBooking(t *testing.T) {
	uc, accountRepo, bookingRepo := newProcessor(t)
	ctx := context.Background()

	tx := domain.Tx{TxID: 1, ClientID: 1, Type: domain.TxDeposit, Amount: amountPtr(100000)}
	booking := domain.NewBooking(1, 1, domain.NewAmount(100000))

	accountRepo.EXPECT().GetOrCreate(ctx, uint16(1)).Return(domain.NewAccount(1), nil)
	bookingRepo.EXPECT().GetOrCreate(ctx, tx).Return(booking, nil)
	accountRepo.EXPECT().Deposit(ctx, uint16(1), domain.NewAmount(100000)).Return(nil)
	bookingRepo.EXPECT().Update(ctx, uint32(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint32, updated domain.Booking) error {
			assert.Equal(t, domain.BookingNormal, updated.State)
			assert.False(t, updated.Locked)
			return nil
		})

	require.NoError(t, uc.Process(ctx, tx))
}

func TestTransactionUseCase_WithdrawalLocksBooking(t *testing.T) {
	uc, accountRepo, bookingRepo := newProcessor(t)
	ctx := context.Background()

	tx := domain.Tx{TxID: 2, ClientID: 1, Type: domain.TxWithdrawal, Amount: amountPtr(50000)}
	booking := domain.NewBooking(2, 1, domain.NewAmount(50000))

	accountRepo.EXPECT().GetOrCreate(ctx, uint16(1)).Return(domain.NewAccount(1), nil)
	bookingRepo.EXPECT().GetOrCreate(ctx, tx).Return(booking, nil)
	accountRepo.EXPECT().Withdraw(ctx, uint16(1), domain.NewAmount(50000)).Return(nil)
	bookingRepo.EXPECT().Update(ctx, uint32(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint32, updated domain.Booking) error {
			assert.Equal(t, domain.BookingNormal, updated.State)
			assert.True(t, updated.Locked)
			return nil
		})

	require.NoError(t, uc.Process(ctx, tx))
}

func TestTransactionUseCase_LockedAccountShortCircuits(t *testing.T) {
	uc, accountRepo, _ := newProcessor(t)
	ctx := context.Background()

	locked := domain.NewAccount(1)
	locked.Locked = true
	accountRepo.EXPECT().GetOrCreate(ctx, uint16(1)).Return(locked, nil)

	err := uc.Process(ctx, domain.Tx{TxID: 1, ClientID: 1, Type: domain.TxDeposit, Amount: amountPtr(10000)})
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}

func TestTransactionUseCase_LockedBookingShortCircuits(t *testing.T) {
	uc, accountRepo, bookingRepo := newProcessor(t)
	ctx := context.Background()

	tx := domain.Tx{TxID: 1, ClientID: 1, Type: domain.TxDispute}
	booking := domain.NewBooking(1, 1, domain.NewAmount(10000))
	booking.SetStateAndLock(domain.BookingResolved)

	accountRepo.EXPECT().GetOrCreate(ctx, uint16(1)).Return(domain.NewAccount(1), nil)
	bookingRepo.EXPECT().GetOrCreate(ctx, tx).Return(booking, nil)

	err := uc.Process(ctx, tx)
	assert.ErrorIs(t, err, domain.ErrBookingLocked)
}

func TestTransactionUseCase_ClientMismatchRejected(t *testing.T) {
	uc, accountRepo, bookingRepo := newProcessor(t)
	ctx := context.Background()

	// tx id 1 was booked for client 1; client 2 tries to resolve it.
	tx := domain.Tx{TxID: 1, ClientID: 2, Type: domain.TxResolve}
	booking := domain.NewBooking(1, 1, domain.NewAmount(10000))
	booking.SetState(domain.BookingDisputed)

	accountRepo.EXPECT().GetOrCreate(ctx, uint16(2)).Return(domain.NewAccount(2), nil)
	bookingRepo.EXPECT().GetOrCreate(ctx, tx).Return(booking, nil)

	err := uc.Process(ctx, tx)
	assert.ErrorIs(t, err, domain.ErrInvalidTransaction)
}

func TestTransactionUseCase_WrongPriorStateRejected(t *testing.T) {
	uc, accountRepo, bookingRepo := newProcessor(t)
	ctx := context.Background()

	// Dispute requires a normal booking; this one is still pristine.
	tx := domain.Tx{TxID: 1, ClientID: 1, Type: domain.TxDispute}
	booking := domain.NewBooking(1, 1, domain.NewAmount(10000))

	accountRepo.EXPECT().GetOrCreate(ctx, uint16(1)).Return(domain.NewAccount(1), nil)
	bookingRepo.EXPECT().GetOrCreate(ctx, tx).Return(booking, nil)

	err := uc.Process(ctx, tx)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransactionUseCase_FailedWithdrawalLeavesBookingPristine(t *testing.T) {
	uc, accountRepo, bookingRepo := newProcessor(t)
	ctx := context.Background()

	tx := domain.Tx{TxID: 3, ClientID: 1, Type: domain.TxWithdrawal, Amount: amountPtr(90000)}
	booking := domain.NewBooking(3, 1, domain.NewAmount(90000))

	accountRepo.EXPECT().GetOrCreate(ctx, uint16(1)).Return(domain.NewAccount(1), nil)
	bookingRepo.EXPECT().GetOrCreate(ctx, tx).Return(booking, nil)
	accountRepo.EXPECT().Withdraw(ctx, uint16(1), domain.NewAmount(90000)).Return(domain.ErrInsufficientFunds)
	// No booking update when the account mutation fails.

	err := uc.Process(ctx, tx)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestTransactionUseCase_ChargebackLocksBooking(t *testing.T) {
	uc, accountRepo, bookingRepo := newProcessor(t)
	ctx := context.Background()

	tx := domain.Tx{TxID: 4, ClientID: 1, Type: domain.TxChargeback}
	booking := domain.NewBooking(4, 1, domain.NewAmount(100000))
	booking.SetState(domain.BookingDisputed)

	accountRepo.EXPECT().GetOrCreate(ctx, uint16(1)).Return(domain.NewAccount(1), nil)
	bookingRepo.EXPECT().GetOrCreate(ctx, tx).Return(booking, nil)
	accountRepo.EXPECT().WithdrawAndLock(ctx, uint16(1), domain.NewAmount(100000)).Return(nil)
	bookingRepo.EXPECT().Update(ctx, uint32(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint32, updated domain.Booking) error {
			assert.Equal(t, domain.BookingChargeback, updated.State)
			assert.True(t, updated.Locked)
			return nil
		})

	require.NoError(t, uc.Process(ctx, tx))
}

func TestTransactionUseCase_UnknownType(t *testing.T) {
	uc, accountRepo, bookingRepo := newProcessor(t)
	ctx := context.Background()

	tx := domain.Tx{TxID: 1, ClientID: 1, Type: domain.TxType("refund"), Amount: amountPtr(10000)}

	accountRepo.EXPECT().GetOrCreate(ctx, uint16(1)).Return(domain.NewAccount(1), nil)
	bookingRepo.EXPECT().GetOrCreate(ctx, tx).Return(domain.NewBooking(1, 1, domain.NewAmount(10000)), nil)

	err := uc.Process(ctx, tx)
	assert.ErrorIs(t, err, domain.ErrUnknownTxType)
}
