// Package ledger provides an append-only sequence of transactions. It is
// deliberately separate from the per-operation result lists the account model
// returns: the ledger is the durable, independently queryable audit trail;
// operation results are transient.
package ledger

import "panbank/pkg/domain/account"

// Ledger is an append-only, insertion-ordered collection of transactions.
// Entries are never updated or removed.
type Ledger struct {
	entries []account.Transaction
}

// New builds a ledger seeded with existing entries, preserving their order.
func New(entries ...account.Transaction) *Ledger {
	l := &Ledger{}
	l.entries = append(l.entries, entries...)
	return l
}

// Append records a transaction. No validation happens here beyond the entry
// being well-formed at construction.
func (l *Ledger) Append(tx account.Transaction) {
	l.entries = append(l.entries, tx)
}

// ForAccount returns the entries for one account in insertion order.
func (l *Ledger) ForAccount(accountNumber string) []account.Transaction {
	var out []account.Transaction
	for _, tx := range l.entries {
		if tx.AccountNumber == accountNumber {
			out = append(out, tx)
		}
	}
	return out
}

// Entries returns a copy of all entries in insertion order.
func (l *Ledger) Entries() []account.Transaction {
	out := make([]account.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }
