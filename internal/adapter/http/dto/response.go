package dto

import (
	"github.com/iho/txledger/internal/domain"
)

// TransactionResponse reports the outcome of one submitted transaction.
type TransactionResponse struct {
	Tx     uint32 `json:"tx"`
	Status string `json:"status"`
}

// AccountSummaryResponse is the reporting view of one account. Monetary
// fields are decimal strings to keep the fixed-point values exact.
type AccountSummaryResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

// FromSummary converts a domain summary to its response form.
func FromSummary(s domain.AccountSummary) AccountSummaryResponse {
	return AccountSummaryResponse{
		Client:    s.Client,
		Available: s.Available.String(),
		Held:      s.Held.String(),
		Total:     s.Total.String(),
		Locked:    s.Locked,
	}
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
