package account

import "github.com/shopspring/decimal"

// Current is a transactional account that may run a negative balance up to
// its overdraft limit. Dipping into overdraft costs a flat fee per
// withdrawal, debited before the principal.
type Current struct {
	Base
	OverdraftLimit decimal.Decimal
	OverdraftFee   decimal.Decimal
}

// NewCurrent opens a current account.
func NewCurrent(number, identityNumber, branch string, balance, overdraftLimit, overdraftFee decimal.Decimal) *Current {
	return &Current{
		Base:           newBase(number, identityNumber, branch, balance),
		OverdraftLimit: overdraftLimit,
		OverdraftFee:   overdraftFee,
	}
}

func (c *Current) Variant() Variant { return VariantCurrent }

// Withdraw allows the balance to go negative up to the overdraft limit. When
// the requested amount exceeds the balance, the flat overdraft fee is debited
// first and emitted as a separate fee entry.
func (c *Current) Withdraw(amount decimal.Decimal, description string) ([]Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if amount.GreaterThan(c.Bal.Add(c.OverdraftLimit)) {
		return nil, ErrOverdraftExceeded
	}
	var entries []Transaction
	if amount.GreaterThan(c.Bal) {
		c.Bal = c.Bal.Sub(c.OverdraftFee)
		entries = append(entries, newTransaction(c.AccountNumber, c.OverdraftFee, KindFee,
			"overdraft fee: "+description))
		description += " (overdraft-assisted)"
	}
	c.Bal = c.Bal.Sub(amount)
	entries = append(entries, newTransaction(c.AccountNumber, amount, KindWithdrawal, description))
	return entries, nil
}

// Interest is always zero for current accounts.
func (c *Current) Interest() decimal.Decimal {
	return decimal.Zero
}
