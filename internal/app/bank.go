/**
 * @description
 * This file contains the core business logic for the banking service. The
 * Bank owns the account and customer registries and routes every operation
 * through a single mutex, so concurrent HTTP requests observe the same
 * serialized semantics the domain rules assume. Reads hand out deep copies;
 * no caller ever holds a pointer into the registries.
 */
package app

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Moxjohn2099/banking-app/internal/domain"
)

// Bank is the in-memory aggregate of all accounts and customers. State lives
// only for the process lifetime; nothing is persisted.
type Bank struct {
	mu            sync.Mutex
	name          string
	routingNumber string
	accounts      map[string]*domain.Account
	customers     map[string]domain.Person
	ids           IDGenerator
	now           func() time.Time
	logger        *slog.Logger
}

// NewBank creates an empty bank. A nil logger falls back to slog.Default.
func NewBank(name, routingNumber string, logger *slog.Logger) *Bank {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bank{
		name:          name,
		routingNumber: routingNumber,
		accounts:      make(map[string]*domain.Account),
		customers:     make(map[string]domain.Person),
		ids:           NewRandomIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}
}

// Name returns the bank's display name.
func (b *Bank) Name() string { return b.name }

// RoutingNumber returns the bank's routing number.
func (b *Bank) RoutingNumber() string { return b.routingNumber }

// TotalAccounts returns the number of open accounts.
func (b *Bank) TotalAccounts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accounts)
}

// TotalCustomers returns the number of known customers.
func (b *Bank) TotalCustomers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.customers)
}

// CreateAccount opens an account for holder with the given initial deposit.
// The holder is registered (or overwritten) under their email. The initial
// deposit seeds the balance directly and does not produce a ledger entry.
func (b *Bank) CreateAccount(holder domain.Person, accountType domain.AccountType, initialDeposit float64) (domain.Account, error) {
	if initialDeposit < 0 {
		return domain.Account{}, domain.ErrNegativeInitialDeposit
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	number := b.unusedAccountNumber()
	account := domain.NewAccount(number, holder, accountType, initialDeposit, b.now())
	b.accounts[number] = account
	b.customers[holder.Email] = holder

	b.logger.Info("account created",
		"account_number", number,
		"account_type", accountType,
		"customer", holder.Email,
	)
	return account.Snapshot(), nil
}

// unusedAccountNumber draws candidates until one is free. Callers must hold
// the lock. With an 8-digit space a retry is practically never taken, but the
// loop is load-bearing: the generator makes no uniqueness promise.
func (b *Bank) unusedAccountNumber() string {
	for {
		number := b.ids.AccountNumber()
		if _, taken := b.accounts[number]; !taken {
			return number
		}
	}
}

// Account returns a snapshot of the account, or false if it does not exist.
func (b *Bank) Account(number string) (domain.Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	account, ok := b.accounts[number]
	if !ok {
		return domain.Account{}, false
	}
	return account.Snapshot(), true
}

// Deposit credits the account and returns the new balance.
func (b *Bank) Deposit(number string, amount float64, description string) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[number]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}
	at := b.now()
	if err := account.Deposit(amount, description, b.ids.TransactionID(at), at); err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Withdraw debits the account and returns the new balance.
func (b *Bank) Withdraw(number string, amount float64, description string) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[number]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}
	at := b.now()
	if err := account.Withdraw(amount, description, b.ids.TransactionID(at), at); err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Transfer moves amount between two accounts. Both must exist. The legs are
// applied withdraw-first with no rollback; each leg's ledger description
// names the counterparty, and the caller-supplied description is accepted
// for API compatibility but not recorded.
func (b *Bank) Transfer(fromNumber, toNumber string, amount float64, description string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	source, ok := b.accounts[fromNumber]
	if !ok {
		return domain.ErrSourceAccountNotFound
	}
	destination, ok := b.accounts[toNumber]
	if !ok {
		return domain.ErrDestinationNotFound
	}

	at := b.now()
	withdrawID := b.ids.TransactionID(at)
	depositID := b.ids.TransactionID(at)
	if err := source.Transfer(amount, destination, withdrawID, depositID, at); err != nil {
		return err
	}

	b.logger.Info("transfer completed",
		"from", fromNumber,
		"to", toNumber,
		"amount", amount,
	)
	return nil
}

// TransactionHistory returns the account's ledger entries from the last
// `days` days, in insertion order. A window larger than the account's age
// returns the full history; a negative window returns nothing.
func (b *Bank) TransactionHistory(number string, days int) ([]domain.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cutoff := b.now().Add(-time.Duration(days) * 24 * time.Hour)
	return account.HistorySince(cutoff), nil
}

// AccrueInterest applies one month of interest (annual rate / 12) to every
// active account with a positive balance and records an interest ledger
// entry on each. It returns the number of accounts credited and the total
// interest paid out.
func (b *Bank) AccrueInterest() (int, float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	credited := 0
	total := 0.0
	at := b.now()
	for _, account := range b.accounts {
		if !account.IsActive || account.Balance <= 0 {
			continue
		}
		interest := account.Balance * account.InterestRate / 12
		account.ApplyInterest(interest, "Monthly interest accrual", b.ids.TransactionID(at), at)
		credited++
		total += interest
	}
	return credited, total
}
