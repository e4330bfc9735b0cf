package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/iho/txledger/internal/domain"
)

// Writer renders account summaries as tabular output with the columns
// client, available, held, total, locked.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write appends one summary row, emitting the header first if needed.
func (w *Writer) Write(summary domain.AccountSummary) error {
	if !w.wroteHeader {
		if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	return w.csv.Write([]string{
		strconv.FormatUint(uint64(summary.Client), 10),
		summary.Available.String(),
		summary.Held.String(),
		summary.Total.String(),
		strconv.FormatBool(summary.Locked),
	})
}

// Flush writes buffered rows to the underlying io.Writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
