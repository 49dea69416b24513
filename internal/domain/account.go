/**
 * @description
 * Core domain models for the banking service: customer records (Address,
 * Person), the Account aggregate, and the balance rules it enforces.
 * This package has no knowledge of HTTP or the service layer; time and
 * identifier generation are passed in by the caller so the rules stay
 * deterministic under test.
 */
package domain

import (
	"fmt"
	"time"
)

// AccountType is the closed set of account products the bank offers.
type AccountType string

const (
	AccountTypeSavings  AccountType = "savings"
	AccountTypeChecking AccountType = "checking"
	AccountTypeBusiness AccountType = "business"
	AccountTypeStudent  AccountType = "student"
)

// ParseAccountType converts a wire value into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(s); t {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeBusiness, AccountTypeStudent:
		return t, nil
	default:
		return "", NewValidationError(fmt.Sprintf("%q is not a valid account type", s))
	}
}

// InterestRate returns the fixed annual rate assigned to accounts of this type
// at creation time. Unknown types fall back to 1%.
func (t AccountType) InterestRate() float64 {
	switch t {
	case AccountTypeSavings:
		return 0.02
	case AccountTypeChecking:
		return 0.001
	case AccountTypeBusiness:
		return 0.015
	case AccountTypeStudent:
		return 0.025
	default:
		return 0.01
	}
}

// Address is a customer's mailing address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Person identifies a customer. Email doubles as the customer key within a
// bank, so it must be unique per bank.
type Person struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     Address `json:"address"`
	DateOfBirth string  `json:"date_of_birth"`
}

// FullName returns the customer's display name.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Account holds a balance and the ordered ledger of transactions applied to
// it. The balance invariant (never negative) is enforced by Withdraw.
type Account struct {
	AccountNumber string        `json:"account_number"`
	AccountHolder Person        `json:"account_holder"`
	AccountType   AccountType   `json:"account_type"`
	Balance       float64       `json:"balance"`
	InterestRate  float64       `json:"interest_rate"`
	IsActive      bool          `json:"is_active"`
	DateOpened    time.Time     `json:"date_opened"`
	Transactions  []Transaction `json:"transactions"`
}

// NewAccount opens an account with the given initial balance. The interest
// rate is derived from the account type once and never changes.
func NewAccount(number string, holder Person, accountType AccountType, initialBalance float64, openedAt time.Time) *Account {
	return &Account{
		AccountNumber: number,
		AccountHolder: holder,
		AccountType:   accountType,
		Balance:       initialBalance,
		InterestRate:  accountType.InterestRate(),
		IsActive:      true,
		DateOpened:    openedAt,
		Transactions:  []Transaction{},
	}
}

// Deposit credits the account and appends a deposit ledger entry.
func (a *Account) Deposit(amount float64, description, transactionID string, at time.Time) error {
	if amount <= 0 {
		return NewValidationError("Deposit amount must be positive")
	}
	if !a.IsActive {
		return ErrAccountInactive
	}
	a.Balance += amount
	a.Transactions = append(a.Transactions, NewTransaction(transactionID, a.AccountNumber, TransactionDeposit, amount, description, at))
	return nil
}

// Withdraw debits the account and appends a withdrawal ledger entry. The
// balance never goes negative.
func (a *Account) Withdraw(amount float64, description, transactionID string, at time.Time) error {
	if amount <= 0 {
		return NewValidationError("Withdrawal amount must be positive")
	}
	if !a.IsActive {
		return ErrAccountInactive
	}
	if amount > a.Balance {
		return ErrInsufficientFunds
	}
	a.Balance -= amount
	a.Transactions = append(a.Transactions, NewTransaction(transactionID, a.AccountNumber, TransactionWithdrawal, amount, description, at))
	return nil
}

// Transfer withdraws from this account and deposits into target, labelling
// each leg with the counterparty's account number. The two legs are applied
// in sequence with no rollback; a failed deposit after a successful withdraw
// leaves the withdrawal in place.
func (a *Account) Transfer(amount float64, target *Account, withdrawID, depositID string, at time.Time) error {
	if err := a.Withdraw(amount, "Transfer to "+target.AccountNumber, withdrawID, at); err != nil {
		return err
	}
	return target.Deposit(amount, "Transfer from "+a.AccountNumber, depositID, at)
}

// ApplyInterest credits accrued interest directly and records an interest
// ledger entry. Callers are expected to skip inactive accounts.
func (a *Account) ApplyInterest(amount float64, description, transactionID string, at time.Time) {
	a.Balance += amount
	a.Transactions = append(a.Transactions, NewTransaction(transactionID, a.AccountNumber, TransactionInterest, amount, description, at))
}

// HistorySince returns the ledger entries with a timestamp at or after
// cutoff, preserving insertion order.
func (a *Account) HistorySince(cutoff time.Time) []Transaction {
	out := []Transaction{}
	for _, t := range a.Transactions {
		if !t.Timestamp.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// Snapshot returns a deep copy safe to hand outside the bank's lock.
func (a *Account) Snapshot() Account {
	cp := *a
	cp.Transactions = make([]Transaction, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return cp
}
