package domain

import "time"

// TransactionType is the closed set of ledger event kinds.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionTransfer   TransactionType = "transfer"
	TransactionInterest   TransactionType = "interest"
)

// StatusCompleted is the only transaction status in the lifecycle; entries
// are recorded after the balance change has already been applied.
const StatusCompleted = "completed"

// Transaction is an immutable record of a single balance-affecting event.
// Once appended to an account's ledger it is never mutated or removed.
type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	AccountNumber string          `json:"account_number"`
	Type          TransactionType `json:"transaction_type"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description"`
	Timestamp     time.Time       `json:"timestamp"`
	Status        string          `json:"status"`
}

// NewTransaction builds a completed ledger entry.
func NewTransaction(id, accountNumber string, transactionType TransactionType, amount float64, description string, at time.Time) Transaction {
	return Transaction{
		TransactionID: id,
		AccountNumber: accountNumber,
		Type:          transactionType,
		Amount:        amount,
		Description:   description,
		Timestamp:     at,
		Status:        StatusCompleted,
	}
}
