package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FixedDeposit locks funds for a fixed term. Withdrawing before maturity
// debits a penalty (a percentage of the withdrawn amount) ahead of the
// principal.
type FixedDeposit struct {
	Base
	TermMonths     int
	InterestRate   decimal.Decimal
	MaturityAt     time.Time
	PenaltyPercent decimal.Decimal
}

// NewFixedDeposit opens a fixed deposit. Maturity is derived from the opening
// time plus the term, with calendar-correct month rollover.
func NewFixedDeposit(number, identityNumber, branch string, balance decimal.Decimal, termMonths int, interestRate, penaltyPercent decimal.Decimal) *FixedDeposit {
	base := newBase(number, identityNumber, branch, balance)
	return &FixedDeposit{
		Base:           base,
		TermMonths:     termMonths,
		InterestRate:   interestRate,
		MaturityAt:     base.OpenedAt.AddDate(0, termMonths, 0),
		PenaltyPercent: penaltyPercent,
	}
}

func (f *FixedDeposit) Variant() Variant { return VariantFixedDeposit }

// Withdraw debits the requested amount. Before MaturityAt an early-withdrawal
// penalty of amount × PenaltyPercent / 100 is debited first and emitted as a
// separate fee entry.
func (f *FixedDeposit) Withdraw(amount decimal.Decimal, description string) ([]Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	var entries []Transaction
	if time.Now().Before(f.MaturityAt) {
		penalty := amount.Mul(f.PenaltyPercent).Div(hundred)
		f.Bal = f.Bal.Sub(penalty)
		entries = append(entries, newTransaction(f.AccountNumber, penalty, KindFee,
			fmt.Sprintf("early withdrawal penalty %s: %s", penalty, description)))
	}
	f.Bal = f.Bal.Sub(amount)
	entries = append(entries, newTransaction(f.AccountNumber, amount, KindWithdrawal, description))
	return entries, nil
}

// Interest projects interest over the full term: balance × rate / 100 × months / 12.
func (f *FixedDeposit) Interest() decimal.Decimal {
	return f.Bal.Mul(f.InterestRate).Div(hundred).
		Mul(decimal.NewFromInt(int64(f.TermMonths))).
		Div(decimal.NewFromInt(12))
}
