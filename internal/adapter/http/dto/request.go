package dto

import (
	"github.com/iho/txledger/internal/domain"
)

// SubmitTransactionRequest is the JSON body for submitting one transaction.
// Field names match the tabular input columns.
type SubmitTransactionRequest struct {
	Type   string  `json:"type"`
	Client uint16  `json:"client"`
	Tx     uint32  `json:"tx"`
	Amount *string `json:"amount,omitempty"`
}

// ToDomain converts the request into a domain transaction.
func (r *SubmitTransactionRequest) ToDomain() (domain.Tx, error) {
	txType, err := domain.ParseTxType(r.Type)
	if err != nil {
		return domain.Tx{}, err
	}

	tx := domain.Tx{
		TxID:     r.Tx,
		ClientID: r.Client,
		Type:     txType,
	}

	if r.Amount != nil {
		amount, err := domain.ParseAmount(*r.Amount)
		if err != nil {
			return domain.Tx{}, err
		}
		tx.Amount = &amount
	}

	return tx, nil
}
