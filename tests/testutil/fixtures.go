package testutil

import (
	"github.com/iho/txledger/internal/adapter/repository/memory"
	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/usecase"
)

// NewLedger builds a ledger facade backed by fresh in-memory stores.
func NewLedger() *usecase.LedgerUseCase {
	accountRepo := memory.NewAccountRepository()
	bookingRepo := memory.NewBookingRepository()

	return usecase.NewLedgerUseCase(
		usecase.NewTransactionUseCase(accountRepo, bookingRepo),
		accountRepo,
	)
}

// Deposit builds a deposit record with the scaled amount.
func Deposit(txID uint32, clientID uint16, scaled int64) domain.Tx {
	amount := domain.NewAmount(scaled)
	return domain.Tx{TxID: txID, ClientID: clientID, Type: domain.TxDeposit, Amount: &amount}
}

// Withdrawal builds a withdrawal record with the scaled amount.
func Withdrawal(txID uint32, clientID uint16, scaled int64) domain.Tx {
	amount := domain.NewAmount(scaled)
	return domain.Tx{TxID: txID, ClientID: clientID, Type: domain.TxWithdrawal, Amount: &amount}
}

// Dispute builds a dispute record; disputes carry no amount.
func Dispute(txID uint32, clientID uint16) domain.Tx {
	return domain.Tx{TxID: txID, ClientID: clientID, Type: domain.TxDispute}
}

// Resolve builds a resolve record.
func Resolve(txID uint32, clientID uint16) domain.Tx {
	return domain.Tx{TxID: txID, ClientID: clientID, Type: domain.TxResolve}
}

// Chargeback builds a chargeback record.
func Chargeback(txID uint32, clientID uint16) domain.Tx {
	return domain.Tx{TxID: txID, ClientID: clientID, Type: domain.TxChargeback}
}

// Summary builds an expected account summary from scaled integers.
func Summary(client uint16, available, held int64, locked bool) domain.AccountSummary {
	return domain.AccountSummary{
		Client:    client,
		Available: domain.NewAmount(available),
		Held:      domain.NewAmount(held),
		Total:     domain.NewAmount(available + held),
		Locked:    locked,
	}
}
