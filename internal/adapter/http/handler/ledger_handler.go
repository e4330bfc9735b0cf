package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iho/txledger/internal/adapter/http/dto"
	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/infrastructure/metrics"
	"github.com/iho/txledger/internal/usecase"
)

// LedgerHandler exposes the ledger facade over HTTP.
type LedgerHandler struct {
	ledgerUC *usecase.LedgerUseCase
	metrics  *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
		metrics:  m,
	}
}

// SubmitTransaction handles POST /api/v1/transactions.
func (h *LedgerHandler) SubmitTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction record", err.Error())
		return
	}

	start := time.Now()
	err = h.ledgerUC.ProcessTransaction(r.Context(), tx)
	h.metrics.TransactionDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		h.metrics.TransactionsProcessed.WithLabelValues(string(tx.Type), "rejected").Inc()
		log.Warn().Err(err).Uint32("tx_id", tx.TxID).Uint16("client_id", tx.ClientID).
			Str("type", string(tx.Type)).Msg("transaction rejected")
		writeError(w, mapDomainError(err), "transaction rejected", err.Error())
		return
	}

	h.metrics.TransactionsProcessed.WithLabelValues(string(tx.Type), "applied").Inc()
	h.metrics.BookingTransitions.WithLabelValues(string(resultingState(tx.Type))).Inc()
	if tx.Type == domain.TxChargeback {
		h.metrics.AccountsLocked.Inc()
	}

	writeJSON(w, http.StatusOK, dto.TransactionResponse{
		Tx:     tx.TxID,
		Status: "applied",
	})
}

// ListAccounts handles GET /api/v1/accounts.
func (h *LedgerHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.ledgerUC.DumpAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to dump accounts", err.Error())
		return
	}

	resp := make([]dto.AccountSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, dto.FromSummary(s))
	}

	writeJSON(w, http.StatusOK, resp)
}

// resultingState is the booking state a successful transaction of the
// given type leaves behind.
func resultingState(txType domain.TxType) domain.BookingState {
	switch txType {
	case domain.TxDeposit, domain.TxWithdrawal:
		return domain.BookingNormal
	case domain.TxDispute:
		return domain.BookingDisputed
	case domain.TxResolve:
		return domain.BookingResolved
	default:
		return domain.BookingChargeback
	}
}
