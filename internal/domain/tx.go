package domain

import (
	"fmt"
	"strings"
)

// TxType is the kind of transaction being applied to a booking.
type TxType string

const (
	TxDeposit    TxType = "deposit"
	TxWithdrawal TxType = "withdrawal"
	TxDispute    TxType = "dispute"
	TxResolve    TxType = "resolve"
	TxChargeback TxType = "chargeback"
)

// ParseTxType parses a transaction type token case-insensitively.
func ParseTxType(token string) (TxType, error) {
	switch TxType(strings.ToLower(strings.TrimSpace(token))) {
	case TxDeposit:
		return TxDeposit, nil
	case TxWithdrawal:
		return TxWithdrawal, nil
	case TxDispute:
		return TxDispute, nil
	case TxResolve:
		return TxResolve, nil
	case TxChargeback:
		return TxChargeback, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTxType, token)
	}
}

// Tx is one transaction record as supplied by the input adapter. Amount is
// present for deposits and withdrawals and absent for the dispute cycle
// types.
type Tx struct {
	TxID     uint32
	ClientID uint16
	Type     TxType
	Amount   *Amount
}
