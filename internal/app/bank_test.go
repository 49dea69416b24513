package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/Moxjohn2099/banking-app/internal/domain"
)

// scriptedIDGenerator replays a fixed list of account numbers and hands out
// sequential transaction ids, so collision handling is deterministic.
type scriptedIDGenerator struct {
	numbers []string
	next    int
	txn     int
}

func (g *scriptedIDGenerator) AccountNumber() string {
	n := g.numbers[g.next]
	g.next++
	return n
}

func (g *scriptedIDGenerator) TransactionID(at time.Time) string {
	g.txn++
	return fmt.Sprintf("TXN%s%04d", at.Format("20060102150405"), g.txn)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHolder(email string) domain.Person {
	return domain.Person{
		FirstName:   "Grace",
		LastName:    "Hopper",
		Email:       email,
		Phone:       "555-0101",
		Address:     domain.Address{Street: "1 Navy Yard", City: "Arlington", State: "VA", ZipCode: "22202", Country: "USA"},
		DateOfBirth: "1906-12-09",
	}
}

func newTestBank(t *testing.T, numbers ...string) (*Bank, *time.Time) {
	t.Helper()
	if len(numbers) == 0 {
		numbers = []string{"10000001", "20000002", "30000003", "40000004"}
	}
	b := NewBank("Test Bank", "123456789", discardLogger())
	b.ids = &scriptedIDGenerator{numbers: numbers}
	clock := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return clock }
	return b, &clock
}

func TestCreateAccountRejectsNegativeInitialDeposit(t *testing.T) {
	b, _ := newTestBank(t)
	_, err := b.CreateAccount(testHolder("grace@example.com"), domain.AccountTypeSavings, -1)
	if !errors.Is(err, domain.ErrNegativeInitialDeposit) {
		t.Fatalf("expected ErrNegativeInitialDeposit, got %v", err)
	}
	if b.TotalAccounts() != 0 {
		t.Fatal("no account should be created on failure")
	}
}

func TestCreateAccountSeedsBalanceWithoutLedgerEntry(t *testing.T) {
	b, _ := newTestBank(t)
	account, err := b.CreateAccount(testHolder("grace@example.com"), domain.AccountTypeSavings, 100)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if account.Balance != 100 {
		t.Fatalf("expected balance 100, got %v", account.Balance)
	}
	if len(account.Transactions) != 0 {
		t.Fatalf("initial deposit must not produce a ledger entry, got %d", len(account.Transactions))
	}
	if account.InterestRate != 0.02 {
		t.Fatalf("expected savings rate 0.02, got %v", account.InterestRate)
	}
	if !account.IsActive {
		t.Fatal("new accounts must be active")
	}
}

func TestCreateAccountRetriesOnNumberCollision(t *testing.T) {
	b, _ := newTestBank(t, "11111111", "11111111", "22222222")

	first, err := b.CreateAccount(testHolder("a@example.com"), domain.AccountTypeChecking, 0)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := b.CreateAccount(testHolder("b@example.com"), domain.AccountTypeChecking, 0)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.AccountNumber != "11111111" {
		t.Fatalf("unexpected first number %q", first.AccountNumber)
	}
	if second.AccountNumber != "22222222" {
		t.Fatalf("expected collision retry to yield 22222222, got %q", second.AccountNumber)
	}
}

func TestCreateAccountOverwritesCustomerByEmail(t *testing.T) {
	b, _ := newTestBank(t)

	if _, err := b.CreateAccount(testHolder("same@example.com"), domain.AccountTypeSavings, 0); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other := testHolder("same@example.com")
	other.FirstName = "Replacement"
	if _, err := b.CreateAccount(other, domain.AccountTypeChecking, 0); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if b.TotalAccounts() != 2 {
		t.Fatalf("expected 2 accounts, got %d", b.TotalAccounts())
	}
	if b.TotalCustomers() != 1 {
		t.Fatalf("same email must overwrite the customer record, got %d", b.TotalCustomers())
	}
}

func TestDepositAndWithdrawUpdateBalance(t *testing.T) {
	b, _ := newTestBank(t)
	account, _ := b.CreateAccount(testHolder("grace@example.com"), domain.AccountTypeSavings, 500)

	balance, err := b.Deposit(account.AccountNumber, 200, "bonus")
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if balance != 700 {
		t.Fatalf("expected 700, got %v", balance)
	}

	balance, err = b.Withdraw(account.AccountNumber, 100, "rent")
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if balance != 600 {
		t.Fatalf("expected 600, got %v", balance)
	}

	snap, ok := b.Account(account.AccountNumber)
	if !ok {
		t.Fatal("account disappeared")
	}
	if len(snap.Transactions) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(snap.Transactions))
	}
	if snap.Transactions[0].Type != domain.TransactionDeposit || snap.Transactions[0].Amount != 200 {
		t.Fatalf("unexpected first entry: %+v", snap.Transactions[0])
	}
	if snap.Transactions[1].Type != domain.TransactionWithdrawal || snap.Transactions[1].Amount != 100 {
		t.Fatalf("unexpected second entry: %+v", snap.Transactions[1])
	}
}

func TestOperationsOnUnknownAccount(t *testing.T) {
	b, _ := newTestBank(t)

	if _, err := b.Deposit("99999999", 10, ""); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("deposit: expected ErrAccountNotFound, got %v", err)
	}
	if _, err := b.Withdraw("99999999", 10, ""); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("withdraw: expected ErrAccountNotFound, got %v", err)
	}
	if _, err := b.TransactionHistory("99999999", 30); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("history: expected ErrAccountNotFound, got %v", err)
	}
	if _, ok := b.Account("99999999"); ok {
		t.Fatal("lookup of unknown account must report not found")
	}
}

func TestTransferBetweenAccounts(t *testing.T) {
	b, _ := newTestBank(t)
	from, _ := b.CreateAccount(testHolder("from@example.com"), domain.AccountTypeSavings, 300)
	to, _ := b.CreateAccount(testHolder("to@example.com"), domain.AccountTypeChecking, 50)

	if err := b.Transfer(from.AccountNumber, to.AccountNumber, 120, "shared rent"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	fromSnap, _ := b.Account(from.AccountNumber)
	toSnap, _ := b.Account(to.AccountNumber)
	if fromSnap.Balance != 180 || toSnap.Balance != 170 {
		t.Fatalf("unexpected balances: %v / %v", fromSnap.Balance, toSnap.Balance)
	}
	if len(fromSnap.Transactions) != 1 || fromSnap.Transactions[0].Type != domain.TransactionWithdrawal {
		t.Fatalf("source must gain one withdrawal, got %+v", fromSnap.Transactions)
	}
	if len(toSnap.Transactions) != 1 || toSnap.Transactions[0].Type != domain.TransactionDeposit {
		t.Fatalf("destination must gain one deposit, got %+v", toSnap.Transactions)
	}
}

func TestTransferMissingAccounts(t *testing.T) {
	b, _ := newTestBank(t)
	account, _ := b.CreateAccount(testHolder("only@example.com"), domain.AccountTypeSavings, 100)

	if err := b.Transfer("99999999", account.AccountNumber, 10, ""); !errors.Is(err, domain.ErrSourceAccountNotFound) {
		t.Fatalf("expected ErrSourceAccountNotFound, got %v", err)
	}
	if err := b.Transfer(account.AccountNumber, "99999999", 10, ""); !errors.Is(err, domain.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestTransferInsufficientFundsLeavesStateUnchanged(t *testing.T) {
	b, _ := newTestBank(t)
	from, _ := b.CreateAccount(testHolder("from@example.com"), domain.AccountTypeSavings, 30)
	to, _ := b.CreateAccount(testHolder("to@example.com"), domain.AccountTypeSavings, 0)

	if err := b.Transfer(from.AccountNumber, to.AccountNumber, 100, ""); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	fromSnap, _ := b.Account(from.AccountNumber)
	toSnap, _ := b.Account(to.AccountNumber)
	if fromSnap.Balance != 30 || toSnap.Balance != 0 {
		t.Fatal("failed transfer must not move funds")
	}
	if len(fromSnap.Transactions) != 0 || len(toSnap.Transactions) != 0 {
		t.Fatal("failed transfer must not append ledger entries")
	}
}

func TestTransactionHistoryWindow(t *testing.T) {
	b, clock := newTestBank(t)
	account, _ := b.CreateAccount(testHolder("grace@example.com"), domain.AccountTypeSavings, 0)

	start := *clock
	if _, err := b.Deposit(account.AccountNumber, 10, "old"); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	*clock = start.AddDate(0, 0, 40)
	if _, err := b.Deposit(account.AccountNumber, 20, "recent"); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	recent, err := b.TransactionHistory(account.AccountNumber, 30)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Description != "recent" {
		t.Fatalf("expected only the recent entry, got %+v", recent)
	}

	full, err := b.TransactionHistory(account.AccountNumber, 365)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(full) != 2 {
		t.Fatalf("window larger than account age must return everything, got %d", len(full))
	}
	if full[0].Description != "old" || full[1].Description != "recent" {
		t.Fatal("history must preserve insertion order")
	}
}

// Scenario from the service contract: savings account opened with 500, then
// deposit 200 and withdraw 100.
func TestSavingsScenario(t *testing.T) {
	b, _ := newTestBank(t)
	account, err := b.CreateAccount(testHolder("grace@example.com"), domain.AccountTypeSavings, 500)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := b.Deposit(account.AccountNumber, 200, ""); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if _, err := b.Withdraw(account.AccountNumber, 100, ""); err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	snap, _ := b.Account(account.AccountNumber)
	if snap.Balance != 600 {
		t.Fatalf("expected balance 600, got %v", snap.Balance)
	}
	if snap.InterestRate != 0.02 {
		t.Fatalf("expected interest rate 0.02, got %v", snap.InterestRate)
	}
	if len(snap.Transactions) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(snap.Transactions))
	}
}

func TestRandomIDGeneratorFormats(t *testing.T) {
	gen := NewRandomIDGenerator()
	accountRe := regexp.MustCompile(`^[1-9]\d{7}$`)
	txnRe := regexp.MustCompile(`^TXN20260601120000[1-9]\d{3}$`)
	at := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		if n := gen.AccountNumber(); !accountRe.MatchString(n) {
			t.Fatalf("account number %q is not 8 digits", n)
		}
		if id := gen.TransactionID(at); !txnRe.MatchString(id) {
			t.Fatalf("transaction id %q has unexpected format", id)
		}
	}
}
