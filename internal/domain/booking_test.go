package domain

import (
	"errors"
	"testing"
)

func TestNewBooking(t *testing.T) {
	booking := NewBooking(42, 7, NewAmount(10000))

	if booking.State != BookingPristine {
		t.Errorf("expected pristine state, got %q", booking.State)
	}
	if booking.Locked {
		t.Error("expected unlocked booking")
	}
	if booking.TxID != 42 || booking.ClientID != 7 {
		t.Errorf("unexpected identity: tx=%d client=%d", booking.TxID, booking.ClientID)
	}
}

func TestBooking_SetStateAndLock(t *testing.T) {
	booking := NewBooking(1, 1, NewAmount(10000))

	booking.SetState(BookingNormal)
	if booking.State != BookingNormal || booking.Locked {
		t.Errorf("SetState: got state=%q locked=%v", booking.State, booking.Locked)
	}

	booking.SetStateAndLock(BookingChargeback)
	if booking.State != BookingChargeback || !booking.Locked {
		t.Errorf("SetStateAndLock: got state=%q locked=%v", booking.State, booking.Locked)
	}
}

func TestParseTxType(t *testing.T) {
	tests := []struct {
		token    string
		expected TxType
	}{
		{"deposit", TxDeposit},
		{"Withdrawal", TxWithdrawal},
		{"DISPUTE", TxDispute},
		{" resolve ", TxResolve},
		{"chargeback", TxChargeback},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseTxType(tt.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}

	if _, err := ParseTxType("refund"); !errors.Is(err, ErrUnknownTxType) {
		t.Errorf("expected ErrUnknownTxType, got %v", err)
	}
}
