// Package account models the polymorphic bank account entity. Each variant
// (Savings, Current, FixedDeposit) enforces its own withdrawal and interest
// policy; every balance mutation yields immutable Transaction records so the
// caller can append them to the durable ledger.
//
// Invariants:
//   - A rejected operation never mutates the account.
//   - Fee and penalty transactions are emitted, and their debit applied,
//     strictly before the principal withdrawal transaction.
//   - Interest is a pure projection; it never touches the balance.
package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrMinimumBalanceViolation is returned when a withdrawal would push a
	// savings account below its minimum balance.
	ErrMinimumBalanceViolation = errors.New("withdrawal would breach minimum balance")

	// ErrOverdraftExceeded is returned when a withdrawal exceeds a current
	// account's balance plus its overdraft limit.
	ErrOverdraftExceeded = errors.New("withdrawal exceeds overdraft limit")

	// ErrUnknownVariant is returned when a stored record carries a variant
	// tag no account type implements.
	ErrUnknownVariant = errors.New("unknown account variant")
)

var hundred = decimal.NewFromInt(100)

// Kind classifies a ledger transaction.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindFee        Kind = "fee"
)

// Status is the lifecycle state of an account.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusClosed   Status = "closed"
)

// Variant is the discriminant tag stored alongside an account record.
type Variant string

const (
	VariantSavings      Variant = "savings"
	VariantCurrent      Variant = "current"
	VariantFixedDeposit Variant = "fixed_deposit"
)

// TransactionCompleted is the only transaction status this model produces;
// partial transaction states are not modeled.
const TransactionCompleted = "completed"

// Transaction is a single immutable ledger entry. Amount is always a positive
// magnitude; Kind carries the direction.
type Transaction struct {
	ID            uuid.UUID
	AccountNumber string
	Amount        decimal.Decimal
	Kind          Kind
	Description   string
	CreatedAt     time.Time
	Status        string
}

func newTransaction(number string, amount decimal.Decimal, kind Kind, description string) Transaction {
	return Transaction{
		ID:            uuid.New(),
		AccountNumber: number,
		Amount:        amount,
		Kind:          kind,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
		Status:        TransactionCompleted,
	}
}

// Account is the capability set shared by all variants. Implementations are
// transient views over a stored record: mutate in memory, then write the new
// state back through the store.
type Account interface {
	Number() string
	IdentityNumber() string
	Balance() decimal.Decimal
	Variant() Variant

	// Deposit increases the balance and returns the resulting ledger entry.
	Deposit(amount decimal.Decimal, description string) (Transaction, error)

	// Withdraw debits the balance subject to the variant's policy. Entries
	// are returned in emission order: any fee entry first, the principal
	// withdrawal last.
	Withdraw(amount decimal.Decimal, description string) ([]Transaction, error)

	// Interest projects the annual interest this account would earn at its
	// current balance. It does not mutate the account.
	Interest() decimal.Decimal
}

// Base carries the fields common to all variants. Exported so the persistence
// layer can flatten and rehydrate accounts without reflection.
type Base struct {
	AccountNumber string
	HolderID      string
	Bal           decimal.Decimal
	BranchName    string
	OpenedAt      time.Time
	AccountStatus Status
}

func newBase(number, identityNumber, branch string, balance decimal.Decimal) Base {
	return Base{
		AccountNumber: number,
		HolderID:      identityNumber,
		Bal:           balance,
		BranchName:    branch,
		OpenedAt:      time.Now().UTC(),
		AccountStatus: StatusActive,
	}
}

func (b *Base) Number() string           { return b.AccountNumber }
func (b *Base) IdentityNumber() string   { return b.HolderID }
func (b *Base) Balance() decimal.Decimal { return b.Bal }
func (b *Base) Status() Status           { return b.AccountStatus }
func (b *Base) Branch() string           { return b.BranchName }
func (b *Base) Opened() time.Time        { return b.OpenedAt }

// Deposit is shared by every variant: any positive amount is accepted.
func (b *Base) Deposit(amount decimal.Decimal, description string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	b.Bal = b.Bal.Add(amount)
	return newTransaction(b.AccountNumber, amount, KindDeposit, description), nil
}
