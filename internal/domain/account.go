package domain

// Account holds the balance state for a single client: funds available for
// withdrawal, funds held under dispute, and a permanent lock flag set by a
// chargeback. The total balance is always Available + Held; it is never
// stored separately.
type Account struct {
	ClientID  uint16
	Available Amount
	Held      Amount
	Locked    bool
}

// NewAccount creates a zeroed, unlocked account for the client.
func NewAccount(clientID uint16) Account {
	return Account{ClientID: clientID}
}

// Total returns the account's total balance.
func (a *Account) Total() Amount {
	return a.Available.Add(a.Held)
}

// Hold moves funds from available to held (dispute effect).
func (a *Account) Hold(amount Amount) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// Release moves held funds back to available (resolve effect).
func (a *Account) Release(amount Amount) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// Deposit credits available funds.
func (a *Account) Deposit(amount Amount) {
	a.Available = a.Available.Add(amount)
}

// Withdraw debits available funds. The caller checks sufficiency.
func (a *Account) Withdraw(amount Amount) {
	a.Available = a.Available.Sub(amount)
}

// WithdrawAndLock removes held funds and permanently locks the account
// (chargeback effect). A negative held or total balance is an accepted end
// state here; see the chargeback policy note on TransactionUseCase.
func (a *Account) WithdrawAndLock(amount Amount) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}

// Summary returns a read-only snapshot of the account.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		Client:    a.ClientID,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}

// AccountSummary is the reporting view of an account.
type AccountSummary struct {
	Client    uint16
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}
