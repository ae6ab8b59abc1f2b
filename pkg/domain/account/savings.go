package account

import "github.com/shopspring/decimal"

// DefaultMinimumBalance applies when a savings account is opened without an
// explicit minimum.
var DefaultMinimumBalance = decimal.NewFromInt(1000)

// Savings is an interest-bearing account that must never fall below its
// minimum balance.
type Savings struct {
	Base
	InterestRate   decimal.Decimal
	MinimumBalance decimal.Decimal
}

// NewSavings opens a savings account. A zero minimumBalance selects
// DefaultMinimumBalance.
func NewSavings(number, identityNumber, branch string, balance, interestRate, minimumBalance decimal.Decimal) *Savings {
	if minimumBalance.IsZero() {
		minimumBalance = DefaultMinimumBalance
	}
	return &Savings{
		Base:           newBase(number, identityNumber, branch, balance),
		InterestRate:   interestRate,
		MinimumBalance: minimumBalance,
	}
}

func (s *Savings) Variant() Variant { return VariantSavings }

// Withdraw rejects any debit that would leave the balance below the minimum.
func (s *Savings) Withdraw(amount decimal.Decimal, description string) ([]Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if s.Bal.Sub(amount).LessThan(s.MinimumBalance) {
		return nil, ErrMinimumBalanceViolation
	}
	s.Bal = s.Bal.Sub(amount)
	return []Transaction{newTransaction(s.AccountNumber, amount, KindWithdrawal, description)}, nil
}

// Interest projects annual interest: balance × rate / 100.
func (s *Savings) Interest() decimal.Decimal {
	return s.Bal.Mul(s.InterestRate).Div(hundred)
}
