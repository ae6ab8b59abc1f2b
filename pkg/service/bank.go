// Package service provides the business operations over the store: citizen
// registration, account opening, deposits, withdrawals, interest projections,
// and statements. Each operation loads the stored record, rebuilds the typed
// account, applies the domain operation, then persists the updated record and
// appends the resulting ledger entries — two separate writes under the
// store's atomic-save discipline.
package service

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"panbank/infra/jsonstore"
	"panbank/pkg/domain/account"
	"panbank/pkg/domain/citizen"
	"panbank/pkg/domain/ledger"
)

// BankService wires the account model to the persistence store.
type BankService struct {
	store  *jsonstore.Store
	logger *slog.Logger
}

// New builds a BankService over the given store.
func New(store *jsonstore.Store, logger *slog.Logger) *BankService {
	return &BankService{store: store, logger: logger}
}

// RegisterCitizen validates and persists a new citizen record.
func (s *BankService) RegisterCitizen(identityNumber, name, dateOfBirth, address string) (citizen.Citizen, error) {
	c, err := citizen.New(identityNumber, name, dateOfBirth, address)
	if err != nil {
		return citizen.Citizen{}, err
	}
	if err := s.store.CreateCitizen(jsonstore.CitizenToRecord(c)); err != nil {
		return citizen.Citizen{}, err
	}
	s.logger.Info("citizen registered", "identity_number", c.IdentityNumber)
	return c, nil
}

// OpenSavings opens a savings account for an existing citizen. A zero
// minimumBalance selects the default minimum.
func (s *BankService) OpenSavings(number, identityNumber, branch string, balance, interestRate, minimumBalance decimal.Decimal) (account.Account, error) {
	return s.open(account.NewSavings(number, identityNumber, branch, balance, interestRate, minimumBalance))
}

// OpenCurrent opens a current account with an overdraft facility.
func (s *BankService) OpenCurrent(number, identityNumber, branch string, balance, overdraftLimit, overdraftFee decimal.Decimal) (account.Account, error) {
	return s.open(account.NewCurrent(number, identityNumber, branch, balance, overdraftLimit, overdraftFee))
}

// OpenFixedDeposit opens a fixed deposit for the given term in months.
func (s *BankService) OpenFixedDeposit(number, identityNumber, branch string, balance decimal.Decimal, termMonths int, interestRate, penaltyPercent decimal.Decimal) (account.Account, error) {
	return s.open(account.NewFixedDeposit(number, identityNumber, branch, balance, termMonths, interestRate, penaltyPercent))
}

func (s *BankService) open(a account.Account) (account.Account, error) {
	if err := s.store.CreateAccount(jsonstore.AccountToRecord(a)); err != nil {
		return nil, err
	}
	s.logger.Info("account opened",
		"account_number", a.Number(),
		"variant", a.Variant(),
		"identity_number", a.IdentityNumber(),
	)
	return a, nil
}

// Deposit credits an account and appends the resulting ledger entry.
func (s *BankService) Deposit(accountNumber string, amount decimal.Decimal, description string) (account.Transaction, error) {
	a, err := s.loadAccount(accountNumber)
	if err != nil {
		return account.Transaction{}, err
	}
	tx, err := a.Deposit(amount, description)
	if err != nil {
		return account.Transaction{}, err
	}
	if err := s.persist(a, tx); err != nil {
		return account.Transaction{}, err
	}
	s.logger.Info("deposit", "account_number", accountNumber, "amount", amount)
	return tx, nil
}

// Withdraw debits an account under its variant policy and appends the
// resulting ledger entries in emission order, fees before the principal.
func (s *BankService) Withdraw(accountNumber string, amount decimal.Decimal, description string) ([]account.Transaction, error) {
	a, err := s.loadAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	entries, err := a.Withdraw(amount, description)
	if err != nil {
		return nil, err
	}
	if err := s.persist(a, entries...); err != nil {
		return nil, err
	}
	s.logger.Info("withdrawal", "account_number", accountNumber, "amount", amount, "entries", len(entries))
	return entries, nil
}

// ProjectedInterest returns the account's interest projection without
// mutating anything.
func (s *BankService) ProjectedInterest(accountNumber string) (decimal.Decimal, error) {
	a, err := s.loadAccount(accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Interest(), nil
}

// Balance returns the stored balance for an account.
func (s *BankService) Balance(accountNumber string) (decimal.Decimal, error) {
	a, err := s.loadAccount(accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance(), nil
}

// Statement returns the durable ledger entries for one account in insertion
// order.
func (s *BankService) Statement(accountNumber string) (*ledger.Ledger, error) {
	recs, err := s.store.ListTransactionsForAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	l := ledger.New()
	for _, rec := range recs {
		tx, err := jsonstore.TransactionFromRecord(rec)
		if err != nil {
			return nil, err
		}
		l.Append(tx)
	}
	return l, nil
}

func (s *BankService) loadAccount(accountNumber string) (account.Account, error) {
	rec, ok, err := s.store.FindAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: account %q", jsonstore.ErrNotFound, accountNumber)
	}
	return jsonstore.AccountFromRecord(rec)
}

// persist writes the updated account record, then appends each ledger entry
// in order. The stored balance is authoritative between operations; the
// ledger is a write-only audit trail and is never replayed to reconstruct it.
func (s *BankService) persist(a account.Account, entries ...account.Transaction) error {
	if err := s.store.UpdateAccount(a.Number(), jsonstore.AccountToRecord(a)); err != nil {
		return err
	}
	for _, tx := range entries {
		if err := s.store.AppendTransaction(jsonstore.TransactionToRecord(tx)); err != nil {
			return err
		}
	}
	return nil
}
