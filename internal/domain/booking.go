package domain

// BookingState is the lifecycle state of a transaction's booking.
type BookingState string

const (
	// BookingPristine is the initial state, before the deposit or
	// withdrawal effect has been applied.
	BookingPristine BookingState = "pristine"
	// BookingNormal means the balance effect was applied.
	BookingNormal BookingState = "normal"
	// BookingDisputed means the booked funds are under dispute.
	BookingDisputed BookingState = "disputed"
	// BookingResolved is terminal: the dispute was settled in the client's
	// favor.
	BookingResolved BookingState = "resolved"
	// BookingChargeback is terminal: the dispute was lost and the funds
	// withdrawn.
	BookingChargeback BookingState = "chargeback"
)

// Booking tracks the lifecycle of a single transaction id. The amount and
// owning client are fixed at creation; only the state and lock flag change
// afterwards. A locked booking accepts no further transitions.
type Booking struct {
	TxID     uint32
	ClientID uint16
	Amount   Amount
	State    BookingState
	Locked   bool
}

// NewBooking creates a pristine, unlocked booking.
func NewBooking(txID uint32, clientID uint16, amount Amount) Booking {
	return Booking{
		TxID:     txID,
		ClientID: clientID,
		Amount:   amount,
		State:    BookingPristine,
	}
}

// SetState advances the booking to the given state.
func (b *Booking) SetState(state BookingState) {
	b.State = state
}

// SetStateAndLock advances the booking and locks it against any further
// transition.
func (b *Booking) SetStateAndLock(state BookingState) {
	b.State = state
	b.Locked = true
}
