package jsonstore

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"panbank/pkg/domain/account"
	"panbank/pkg/domain/citizen"
)

// CitizenToRecord flattens a citizen for storage.
func CitizenToRecord(c citizen.Citizen) CitizenRecord {
	return CitizenRecord{
		IdentityNumber: c.IdentityNumber,
		Name:           c.Name,
		DateOfBirth:    c.DateOfBirth,
		Address:        c.Address,
	}
}

// CitizenFromRecord rebuilds the domain citizen.
func CitizenFromRecord(rec CitizenRecord) citizen.Citizen {
	return citizen.Citizen{
		IdentityNumber: rec.IdentityNumber,
		Name:           rec.Name,
		DateOfBirth:    rec.DateOfBirth,
		Address:        rec.Address,
	}
}

// AccountToRecord flattens a typed account into its durable record.
func AccountToRecord(a account.Account) AccountRecord {
	rec := AccountRecord{
		AccountNumber:  a.Number(),
		IdentityNumber: a.IdentityNumber(),
		Balance:        a.Balance(),
		Variant:        string(a.Variant()),
	}
	switch v := a.(type) {
	case *account.Savings:
		rec.BranchName = v.BranchName
		rec.OpenedAt = v.OpenedAt
		rec.Status = string(v.AccountStatus)
		rec.InterestRate = dptr(v.InterestRate)
		rec.MinimumBalance = dptr(v.MinimumBalance)
	case *account.Current:
		rec.BranchName = v.BranchName
		rec.OpenedAt = v.OpenedAt
		rec.Status = string(v.AccountStatus)
		rec.OverdraftLimit = dptr(v.OverdraftLimit)
		rec.OverdraftFee = dptr(v.OverdraftFee)
	case *account.FixedDeposit:
		rec.BranchName = v.BranchName
		rec.OpenedAt = v.OpenedAt
		rec.Status = string(v.AccountStatus)
		rec.TermMonths = v.TermMonths
		rec.InterestRate = dptr(v.InterestRate)
		maturity := v.MaturityAt
		rec.MaturityAt = &maturity
		rec.PenaltyPercent = dptr(v.PenaltyPercent)
	}
	return rec
}

// AccountFromRecord rebuilds the typed account a record describes. The
// record's variant tag selects the concrete type.
func AccountFromRecord(rec AccountRecord) (account.Account, error) {
	base := account.Base{
		AccountNumber: rec.AccountNumber,
		HolderID:      rec.IdentityNumber,
		Bal:           rec.Balance,
		BranchName:    rec.BranchName,
		OpenedAt:      rec.OpenedAt,
		AccountStatus: account.Status(rec.Status),
	}
	switch account.Variant(rec.Variant) {
	case account.VariantSavings:
		return &account.Savings{
			Base:           base,
			InterestRate:   dval(rec.InterestRate),
			MinimumBalance: dval(rec.MinimumBalance),
		}, nil
	case account.VariantCurrent:
		return &account.Current{
			Base:           base,
			OverdraftLimit: dval(rec.OverdraftLimit),
			OverdraftFee:   dval(rec.OverdraftFee),
		}, nil
	case account.VariantFixedDeposit:
		fd := &account.FixedDeposit{
			Base:           base,
			TermMonths:     rec.TermMonths,
			InterestRate:   dval(rec.InterestRate),
			PenaltyPercent: dval(rec.PenaltyPercent),
		}
		if rec.MaturityAt != nil {
			fd.MaturityAt = *rec.MaturityAt
		} else {
			fd.MaturityAt = rec.OpenedAt.AddDate(0, rec.TermMonths, 0)
		}
		return fd, nil
	default:
		return nil, fmt.Errorf("%w: %q", account.ErrUnknownVariant, rec.Variant)
	}
}

// TransactionToRecord flattens a ledger entry for storage.
func TransactionToRecord(tx account.Transaction) TransactionRecord {
	return TransactionRecord{
		TransactionID: tx.ID.String(),
		AccountNumber: tx.AccountNumber,
		Amount:        tx.Amount,
		Kind:          string(tx.Kind),
		Description:   tx.Description,
		CreatedAt:     tx.CreatedAt,
		Status:        tx.Status,
	}
}

// TransactionFromRecord rebuilds a ledger entry from storage.
func TransactionFromRecord(rec TransactionRecord) (account.Transaction, error) {
	id, err := uuid.Parse(rec.TransactionID)
	if err != nil {
		return account.Transaction{}, fmt.Errorf("parse transaction id %q: %w", rec.TransactionID, err)
	}
	return account.Transaction{
		ID:            id,
		AccountNumber: rec.AccountNumber,
		Amount:        rec.Amount,
		Kind:          account.Kind(rec.Kind),
		Description:   rec.Description,
		CreatedAt:     rec.CreatedAt,
		Status:        rec.Status,
	}, nil
}

func dptr(d decimal.Decimal) *decimal.Decimal { return &d }

func dval(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
