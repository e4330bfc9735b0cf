package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iho/txledger/internal/domain"
)

// Reader streams transaction records from tabular input with the columns
// type, client, tx, amount. The amount column is absent or empty for
// dispute, resolve and chargeback rows.
type Reader struct {
	csv   *csv.Reader
	first bool
}

// NewReader wraps r. A leading header row is skipped if present.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr, first: true}
}

// Read returns the next transaction, or io.EOF at end of input. A
// malformed row yields an error for that row only; the reader stays usable
// for subsequent rows.
func (r *Reader) Read() (domain.Tx, error) {
	record, err := r.csv.Read()
	if err != nil {
		return domain.Tx{}, err
	}

	if r.first {
		r.first = false
		if isHeader(record) {
			return r.Read()
		}
	}

	return parseRecord(record)
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "type")
}

func parseRecord(record []string) (domain.Tx, error) {
	if len(record) < 3 {
		return domain.Tx{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	txType, err := domain.ParseTxType(record[0])
	if err != nil {
		return domain.Tx{}, err
	}

	clientID, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return domain.Tx{}, fmt.Errorf("parse client id: %w", err)
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return domain.Tx{}, fmt.Errorf("parse tx id: %w", err)
	}

	tx := domain.Tx{
		TxID:     uint32(txID),
		ClientID: uint16(clientID),
		Type:     txType,
	}

	if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
		amount, err := domain.ParseAmount(record[3])
		if err != nil {
			return domain.Tx{}, err
		}
		tx.Amount = &amount
	}

	return tx, nil
}
