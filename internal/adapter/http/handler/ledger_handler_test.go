package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/txledger/internal/adapter/http/dto"
	"github.com/iho/txledger/internal/adapter/http/handler"
	"github.com/iho/txledger/internal/adapter/repository/memory"
	"github.com/iho/txledger/internal/infrastructure/metrics"
	"github.com/iho/txledger/internal/usecase"
)

// Collectors register against the default prometheus registry, so the
// metrics bundle is created once for the whole package.
var testMetrics = metrics.New()

func newHandler() *handler.LedgerHandler {
	accounts := memory.NewAccountRepository()
	txUC := usecase.NewTransactionUseCase(accounts, memory.NewBookingRepository())
	return handler.NewLedgerHandler(usecase.NewLedgerUseCase(txUC, accounts), testMetrics)
}

func submit(t *testing.T, h *handler.LedgerHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.SubmitTransaction(rec, req)
	return rec
}

func TestSubmitTransaction_Applied(t *testing.T) {
	h := newHandler()

	rec := submit(t, h, `{"type":"deposit","client":1,"tx":1,"amount":"2.5"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint32(1), resp.Tx)
	assert.Equal(t, "applied", resp.Status)
}

func TestSubmitTransaction_InvalidBody(t *testing.T) {
	h := newHandler()

	rec := submit(t, h, `{"type":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitTransaction_UnknownType(t *testing.T) {
	h := newHandler()

	rec := submit(t, h, `{"type":"refund","client":1,"tx":1,"amount":"1.0"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitTransaction_RejectedStatusCodes(t *testing.T) {
	h := newHandler()

	require.Equal(t, http.StatusOK, submit(t, h, `{"type":"deposit","client":1,"tx":1,"amount":"1.0"}`).Code)

	// Overdraw.
	rec := submit(t, h, `{"type":"withdrawal","client":1,"tx":2,"amount":"5.0"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Dispute then chargeback locks the account.
	require.Equal(t, http.StatusOK, submit(t, h, `{"type":"dispute","client":1,"tx":1}`).Code)
	require.Equal(t, http.StatusOK, submit(t, h, `{"type":"chargeback","client":1,"tx":1}`).Code)

	rec = submit(t, h, `{"type":"deposit","client":1,"tx":3,"amount":"1.0"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListAccounts(t *testing.T) {
	h := newHandler()

	require.Equal(t, http.StatusOK, submit(t, h, `{"type":"deposit","client":2,"tx":1,"amount":"3.0"}`).Code)
	require.Equal(t, http.StatusOK, submit(t, h, `{"type":"deposit","client":1,"tx":2,"amount":"1.5"}`).Code)
	require.Equal(t, http.StatusOK, submit(t, h, `{"type":"dispute","client":2,"tx":1}`).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	rec := httptest.NewRecorder()
	h.ListAccounts(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.AccountSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	assert.Equal(t, uint16(1), resp[0].Client)
	assert.Equal(t, "1.5", resp[0].Available)
	assert.Equal(t, "0.0", resp[0].Held)
	assert.False(t, resp[0].Locked)

	assert.Equal(t, uint16(2), resp[1].Client)
	assert.Equal(t, "0.0", resp[1].Available)
	assert.Equal(t, "3.0", resp[1].Held)
	assert.Equal(t, "3.0", resp[1].Total)
	assert.False(t, resp[1].Locked)
}
