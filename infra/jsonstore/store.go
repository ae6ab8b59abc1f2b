// Package jsonstore owns the durable representation of citizens, accounts,
// and the transaction ledger in a single flat JSON file.
//
// Durability discipline: every save first copies the current file into the
// backup directory (best effort), then writes the new snapshot to a temporary
// file and atomically renames it over the durable file. A crash mid-write
// leaves either the old or the new complete snapshot, never a torn one.
//
// Every mutating operation runs a full load-modify-save cycle; there is no
// cross-call cache, so each call observes the latest durable state. The store
// assumes a single writer: two concurrent load-modify-save cycles can lose
// updates, and no lock guards against that.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"panbank/pkg/config"
	"panbank/pkg/validation"
)

var (
	// ErrInvalidFormat is returned when a record's key fails its format check.
	ErrInvalidFormat = errors.New("invalid record format")

	// ErrDuplicateKey is returned when a create collides with an existing key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownReference is returned when an account is created against a
	// citizen that does not exist.
	ErrUnknownReference = errors.New("unknown citizen reference")

	// ErrNotFound is returned by update and delete operations on a missing key.
	ErrNotFound = errors.New("record not found")

	// ErrCorruptStore is returned when the durable file exists but cannot be
	// parsed. The store never silently resets a corrupt file.
	ErrCorruptStore = errors.New("corrupt store file")
)

// Store reads and writes the durable snapshot under an explicit config.
type Store struct {
	cfg      config.Store
	logger   *slog.Logger
	validate *validator.Validate
}

// New builds a store over the given paths. The logger is used for best-effort
// backup failures, which are reported but never block a save.
func New(cfg config.Store, logger *slog.Logger) *Store {
	return &Store{
		cfg:      cfg,
		logger:   logger,
		validate: validation.New(),
	}
}

// Load reads the durable file. A missing file yields an empty snapshot; an
// unparsable file yields ErrCorruptStore. Missing collections are normalized
// to empty.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.cfg.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file %s: %w", s.cfg.Path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrCorruptStore, s.cfg.Path, err)
	}
	return &snap, nil
}

// Save replaces the durable file with the snapshot. The current file is first
// copied into the backup directory; backup failures are logged and swallowed.
// The snapshot is written to a temporary file and renamed over the durable
// file, so readers never observe a partial write. On failure the temporary
// file is removed and the error returned.
func (s *Store) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	s.backup()

	dir := filepath.Dir(s.cfg.Path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.cfg.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// backup copies the current durable file into the backup directory with a
// timestamped name. Best effort only: a full backup disk must never block a
// save.
func (s *Store) backup() {
	data, err := os.ReadFile(s.cfg.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		s.logger.Warn("backup skipped: cannot read current store file", "error", err)
		return
	}
	if err := os.MkdirAll(s.cfg.BackupDir, 0o755); err != nil {
		s.logger.Warn("backup skipped: cannot create backup directory", "dir", s.cfg.BackupDir, "error", err)
		return
	}
	name := fmt.Sprintf("snapshot-%s.json", time.Now().UTC().Format("20060102-150405.000000000"))
	if err := os.WriteFile(filepath.Join(s.cfg.BackupDir, name), data, 0o644); err != nil {
		s.logger.Warn("backup write failed", "file", name, "error", err)
	}
}

// CreateCitizen appends a citizen after format and uniqueness checks.
func (s *Store) CreateCitizen(rec CitizenRecord) error {
	if err := s.validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: citizen %q: %v", ErrInvalidFormat, rec.IdentityNumber, err)
	}
	snap, err := s.Load()
	if err != nil {
		return err
	}
	if snap.citizenIndex(rec.IdentityNumber) >= 0 {
		return fmt.Errorf("%w: citizen %q", ErrDuplicateKey, rec.IdentityNumber)
	}
	snap.Citizens = append(snap.Citizens, rec)
	return s.Save(snap)
}

// FindCitizen returns the stored record; absence is a normal outcome, not an
// error.
func (s *Store) FindCitizen(identityNumber string) (CitizenRecord, bool, error) {
	snap, err := s.Load()
	if err != nil {
		return CitizenRecord{}, false, err
	}
	if i := snap.citizenIndex(identityNumber); i >= 0 {
		return snap.Citizens[i], true, nil
	}
	return CitizenRecord{}, false, nil
}

// UpdateCitizen overwrites the stored record with the replacement. The
// identity number is force-set back to the stored key regardless of the
// caller's input, so the key can never drift.
func (s *Store) UpdateCitizen(identityNumber string, replacement CitizenRecord) error {
	snap, err := s.Load()
	if err != nil {
		return err
	}
	i := snap.citizenIndex(identityNumber)
	if i < 0 {
		return fmt.Errorf("%w: citizen %q", ErrNotFound, identityNumber)
	}
	replacement.IdentityNumber = identityNumber
	snap.Citizens[i] = replacement
	return s.Save(snap)
}

// DeleteCitizen removes the record if present and reports whether it did.
// Deleting a missing key is a no-op, not an error.
func (s *Store) DeleteCitizen(identityNumber string) (bool, error) {
	snap, err := s.Load()
	if err != nil {
		return false, err
	}
	i := snap.citizenIndex(identityNumber)
	if i < 0 {
		return false, nil
	}
	snap.Citizens = append(snap.Citizens[:i], snap.Citizens[i+1:]...)
	if err := s.Save(snap); err != nil {
		return false, err
	}
	return true, nil
}

// CreateAccount appends an account after format, uniqueness, and referential
// integrity checks: the referenced citizen must already exist.
func (s *Store) CreateAccount(rec AccountRecord) error {
	if err := s.validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: account %q: %v", ErrInvalidFormat, rec.AccountNumber, err)
	}
	snap, err := s.Load()
	if err != nil {
		return err
	}
	if snap.accountIndex(rec.AccountNumber) >= 0 {
		return fmt.Errorf("%w: account %q", ErrDuplicateKey, rec.AccountNumber)
	}
	if snap.citizenIndex(rec.IdentityNumber) < 0 {
		return fmt.Errorf("%w: citizen %q", ErrUnknownReference, rec.IdentityNumber)
	}
	snap.Accounts = append(snap.Accounts, rec)
	return s.Save(snap)
}

// FindAccount returns the stored record; absence is a normal outcome.
func (s *Store) FindAccount(accountNumber string) (AccountRecord, bool, error) {
	snap, err := s.Load()
	if err != nil {
		return AccountRecord{}, false, err
	}
	if i := snap.accountIndex(accountNumber); i >= 0 {
		return snap.Accounts[i], true, nil
	}
	return AccountRecord{}, false, nil
}

// UpdateAccount overwrites the stored record, force-preserving the account
// number key.
func (s *Store) UpdateAccount(accountNumber string, replacement AccountRecord) error {
	snap, err := s.Load()
	if err != nil {
		return err
	}
	i := snap.accountIndex(accountNumber)
	if i < 0 {
		return fmt.Errorf("%w: account %q", ErrNotFound, accountNumber)
	}
	replacement.AccountNumber = accountNumber
	snap.Accounts[i] = replacement
	return s.Save(snap)
}

// DeleteAccount removes the record if present and reports whether it did.
func (s *Store) DeleteAccount(accountNumber string) (bool, error) {
	snap, err := s.Load()
	if err != nil {
		return false, err
	}
	i := snap.accountIndex(accountNumber)
	if i < 0 {
		return false, nil
	}
	snap.Accounts = append(snap.Accounts[:i], snap.Accounts[i+1:]...)
	if err := s.Save(snap); err != nil {
		return false, err
	}
	return true, nil
}

// AppendTransaction appends a ledger entry. The ledger is append-only: no
// update or delete exists for transactions.
func (s *Store) AppendTransaction(rec TransactionRecord) error {
	if err := s.validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: transaction %q: %v", ErrInvalidFormat, rec.TransactionID, err)
	}
	snap, err := s.Load()
	if err != nil {
		return err
	}
	snap.Transactions = append(snap.Transactions, rec)
	return s.Save(snap)
}

// ListCitizens returns all citizens in stored order.
func (s *Store) ListCitizens() ([]CitizenRecord, error) {
	snap, err := s.Load()
	if err != nil {
		return nil, err
	}
	return snap.Citizens, nil
}

// ListAccounts returns all accounts in stored order.
func (s *Store) ListAccounts() ([]AccountRecord, error) {
	snap, err := s.Load()
	if err != nil {
		return nil, err
	}
	return snap.Accounts, nil
}

// ListAccountsForCitizen returns the accounts referencing one citizen.
func (s *Store) ListAccountsForCitizen(identityNumber string) ([]AccountRecord, error) {
	snap, err := s.Load()
	if err != nil {
		return nil, err
	}
	var out []AccountRecord
	for _, a := range snap.Accounts {
		if a.IdentityNumber == identityNumber {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListTransactionsForAccount returns one account's ledger entries in
// insertion order.
func (s *Store) ListTransactionsForAccount(accountNumber string) ([]TransactionRecord, error) {
	snap, err := s.Load()
	if err != nil {
		return nil, err
	}
	var out []TransactionRecord
	for _, tx := range snap.Transactions {
		if tx.AccountNumber == accountNumber {
			out = append(out, tx)
		}
	}
	return out, nil
}
