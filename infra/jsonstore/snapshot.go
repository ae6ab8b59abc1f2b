package jsonstore

import (
	"time"

	"github.com/shopspring/decimal"
)

// CitizenRecord is the durable form of a citizen.
type CitizenRecord struct {
	IdentityNumber string `json:"identity_number" validate:"required,identity_number"`
	Name           string `json:"name" validate:"required"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
}

// AccountRecord is the durable, flattened form of an account. Variant-specific
// fields are pointers so absent fields stay absent on the wire.
type AccountRecord struct {
	AccountNumber  string          `json:"account_number" validate:"required,account_number"`
	IdentityNumber string          `json:"identity_number" validate:"required,identity_number"`
	Balance        decimal.Decimal `json:"balance"`
	BranchName     string          `json:"branch_name"`
	Variant        string          `json:"account_variant" validate:"required"`
	OpenedAt       time.Time       `json:"opened_at"`
	Status         string          `json:"status"`

	// Savings
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
	MinimumBalance *decimal.Decimal `json:"minimum_balance,omitempty"`

	// Current
	OverdraftLimit *decimal.Decimal `json:"overdraft_limit,omitempty"`
	OverdraftFee   *decimal.Decimal `json:"overdraft_fee,omitempty"`

	// FixedDeposit (InterestRate shared with Savings)
	TermMonths     int              `json:"term_months,omitempty"`
	MaturityAt     *time.Time       `json:"maturity_at,omitempty"`
	PenaltyPercent *decimal.Decimal `json:"early_withdrawal_penalty_percent,omitempty"`
}

// TransactionRecord is the durable form of a ledger entry.
type TransactionRecord struct {
	TransactionID string          `json:"transaction_id" validate:"required"`
	AccountNumber string          `json:"account_number" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind" validate:"required"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
	Status        string          `json:"status"`
}

// Snapshot is the complete durable state: three collections serialized as
// ordered arrays. Internally lookups go by natural key.
type Snapshot struct {
	Citizens     []CitizenRecord     `json:"citizens"`
	Accounts     []AccountRecord     `json:"accounts"`
	Transactions []TransactionRecord `json:"transactions"`
}

func (s *Snapshot) citizenIndex(identityNumber string) int {
	for i, c := range s.Citizens {
		if c.IdentityNumber == identityNumber {
			return i
		}
	}
	return -1
}

func (s *Snapshot) accountIndex(accountNumber string) int {
	for i, a := range s.Accounts {
		if a.AccountNumber == accountNumber {
			return i
		}
	}
	return -1
}
