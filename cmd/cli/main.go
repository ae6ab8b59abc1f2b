// Command cli is the interactive surface over the banking core. It holds no
// state of its own: every subcommand calls into the service layer and formats
// the result.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"panbank/infra/jsonstore"
	"panbank/pkg/config"
	"panbank/pkg/logging"
	"panbank/pkg/service"
	"panbank/pkg/xmlexchange"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	bootLogger := logging.New("info")
	cfg, err := config.Load(bootLogger)
	if err != nil {
		fail("load config: %v", err)
	}
	logger := logging.New(cfg.Log.Level)
	store := jsonstore.New(cfg.Store, logger)
	svc := service.New(store, logger)

	switch os.Args[1] {
	case "register":
		requireArgs(6, "register <identity_number> <name> <dob> <address>")
		c, err := svc.RegisterCitizen(os.Args[2], os.Args[3], os.Args[4], os.Args[5])
		if err != nil {
			fail("register citizen: %v", err)
		}
		color.Green("citizen registered: %s", c)
	case "open-savings":
		requireArgs(8, "open-savings <account_number> <identity_number> <branch> <balance> <rate> <min_balance>")
		a, err := svc.OpenSavings(os.Args[2], os.Args[3], os.Args[4],
			mustDecimal(os.Args[5]), mustDecimal(os.Args[6]), mustDecimal(os.Args[7]))
		if err != nil {
			fail("open savings account: %v", err)
		}
		color.Green("savings account %s opened with balance %s", a.Number(), a.Balance())
	case "open-current":
		requireArgs(8, "open-current <account_number> <identity_number> <branch> <balance> <overdraft_limit> <overdraft_fee>")
		a, err := svc.OpenCurrent(os.Args[2], os.Args[3], os.Args[4],
			mustDecimal(os.Args[5]), mustDecimal(os.Args[6]), mustDecimal(os.Args[7]))
		if err != nil {
			fail("open current account: %v", err)
		}
		color.Green("current account %s opened with balance %s", a.Number(), a.Balance())
	case "open-fd":
		requireArgs(9, "open-fd <account_number> <identity_number> <branch> <balance> <term_months> <rate> <penalty_percent>")
		a, err := svc.OpenFixedDeposit(os.Args[2], os.Args[3], os.Args[4],
			mustDecimal(os.Args[5]), mustInt(os.Args[6]), mustDecimal(os.Args[7]), mustDecimal(os.Args[8]))
		if err != nil {
			fail("open fixed deposit: %v", err)
		}
		color.Green("fixed deposit %s opened with balance %s", a.Number(), a.Balance())
	case "deposit":
		requireArgs(5, "deposit <account_number> <amount> <description>")
		tx, err := svc.Deposit(os.Args[2], mustDecimal(os.Args[3]), os.Args[4])
		if err != nil {
			fail("deposit: %v", err)
		}
		color.Green("deposited %s (transaction %s)", tx.Amount, tx.ID)
	case "withdraw":
		requireArgs(5, "withdraw <account_number> <amount> <description>")
		entries, err := svc.Withdraw(os.Args[2], mustDecimal(os.Args[3]), os.Args[4])
		if err != nil {
			fail("withdraw: %v", err)
		}
		for _, tx := range entries {
			color.Yellow("%-10s %12s  %s", tx.Kind, tx.Amount, tx.Description)
		}
	case "balance":
		requireArgs(3, "balance <account_number>")
		bal, err := svc.Balance(os.Args[2])
		if err != nil {
			fail("balance: %v", err)
		}
		fmt.Printf("balance: %s\n", bal)
	case "interest":
		requireArgs(3, "interest <account_number>")
		in, err := svc.ProjectedInterest(os.Args[2])
		if err != nil {
			fail("interest: %v", err)
		}
		fmt.Printf("projected interest: %s\n", in)
	case "statement":
		requireArgs(3, "statement <account_number>")
		l, err := svc.Statement(os.Args[2])
		if err != nil {
			fail("statement: %v", err)
		}
		for _, tx := range l.Entries() {
			fmt.Printf("%s  %-10s %12s  %s\n", tx.CreatedAt.Format("2006-01-02 15:04:05"), tx.Kind, tx.Amount, tx.Description)
		}
	case "export":
		requireArgs(3, "export <file>")
		snap, err := store.Load()
		if err != nil {
			fail("load store: %v", err)
		}
		f, err := os.Create(os.Args[2])
		if err != nil {
			fail("create export file: %v", err)
		}
		digest, err := xmlexchange.Export(snap, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fail("export: %v", err)
		}
		color.Green("exported %d citizens, sha256 %s", len(snap.Citizens), digest)
	case "import":
		requireArgs(3, "import <file>")
		f, err := os.Open(os.Args[2])
		if err != nil {
			fail("open import file: %v", err)
		}
		res, err := xmlexchange.Import(f, store)
		f.Close()
		if err != nil {
			fail("import: %v", err)
		}
		color.Green("imported %d citizens", res.Created)
		for _, rej := range res.Rejected {
			color.Red("rejected %s: %v", rej.IdentityNumber, rej.Err)
		}
	case "check":
		requireArgs(3, "check <file>")
		f, err := os.Open(os.Args[2])
		if err != nil {
			fail("open file: %v", err)
		}
		errs := xmlexchange.CheckDocument(f)
		f.Close()
		if len(errs) == 0 {
			color.Green("document is valid")
			return
		}
		for _, e := range errs {
			color.Red("%v", e)
		}
		os.Exit(1)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  register <identity_number> <name> <dob> <address>")
	fmt.Println("  open-savings <account_number> <identity_number> <branch> <balance> <rate> <min_balance>")
	fmt.Println("  open-current <account_number> <identity_number> <branch> <balance> <overdraft_limit> <overdraft_fee>")
	fmt.Println("  open-fd <account_number> <identity_number> <branch> <balance> <term_months> <rate> <penalty_percent>")
	fmt.Println("  deposit <account_number> <amount> <description>")
	fmt.Println("  withdraw <account_number> <amount> <description>")
	fmt.Println("  balance | interest | statement <account_number>")
	fmt.Println("  export <file> | import <file> | check <file>")
}

func requireArgs(n int, usageLine string) {
	if len(os.Args) < n {
		fail("usage: cli %s", usageLine)
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		fail("invalid amount %q: %v", s, err)
	}
	return d
}

func mustInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		fail("invalid integer %q: %v", s, err)
	}
	return n
}

func fail(format string, args ...any) {
	color.Red(format, args...)
	if len(args) > 0 {
		if err, ok := args[len(args)-1].(error); ok && errors.Is(err, jsonstore.ErrCorruptStore) {
			color.Red("the store file is unreadable; restore it from a backup before retrying")
		}
	}
	os.Exit(1)
}
