package app

import (
	"fmt"
	"math/rand"
	"time"
)

// IDGenerator produces account numbers and transaction identifiers. The bank
// retries AccountNumber until the value is unused, so implementations may
// collide; putting the source behind an interface keeps that retry loop
// testable without depending on randomness.
type IDGenerator interface {
	// AccountNumber returns a candidate 8-digit account number.
	AccountNumber() string
	// TransactionID returns a ledger entry id for an event at the given time.
	TransactionID(at time.Time) string
}

type randomIDGenerator struct{}

// NewRandomIDGenerator returns the production generator: random 8-digit
// account numbers and TXN-prefixed transaction ids built from the event
// timestamp plus a random 4-digit suffix. Transaction id collisions are
// possible within the same second and are not deduplicated.
func NewRandomIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

func (randomIDGenerator) AccountNumber() string {
	return fmt.Sprintf("%d", rand.Intn(90000000)+10000000)
}

func (randomIDGenerator) TransactionID(at time.Time) string {
	return fmt.Sprintf("TXN%s%d", at.Format("20060102150405"), rand.Intn(9000)+1000)
}
