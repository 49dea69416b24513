package app

import (
	"testing"

	"github.com/Moxjohn2099/banking-app/internal/domain"
)

func TestAccrueInterestCreditsActiveAccounts(t *testing.T) {
	b, _ := newTestBank(t)
	savings, _ := b.CreateAccount(testHolder("savings@example.com"), domain.AccountTypeSavings, 1200)
	checking, _ := b.CreateAccount(testHolder("checking@example.com"), domain.AccountTypeChecking, 0)

	credited, total := b.AccrueInterest()

	// Only the funded account earns interest: 1200 * 0.02 / 12 = 2.
	if credited != 1 {
		t.Fatalf("expected 1 credited account, got %d", credited)
	}
	if total != 2 {
		t.Fatalf("expected total interest 2, got %v", total)
	}

	snap, _ := b.Account(savings.AccountNumber)
	if snap.Balance != 1202 {
		t.Fatalf("expected balance 1202, got %v", snap.Balance)
	}
	last := snap.Transactions[len(snap.Transactions)-1]
	if last.Type != domain.TransactionInterest {
		t.Fatalf("expected interest entry, got %q", last.Type)
	}
	if last.Description != "Monthly interest accrual" || last.Amount != 2 {
		t.Fatalf("unexpected interest entry: %+v", last)
	}

	zeroSnap, _ := b.Account(checking.AccountNumber)
	if len(zeroSnap.Transactions) != 0 {
		t.Fatal("zero-balance accounts must not accrue interest")
	}
}

func TestInterestSchedulerRejectsBadSchedule(t *testing.T) {
	b, _ := newTestBank(t)
	s := NewInterestScheduler(b, discardLogger(), "not a cron spec")
	if err := s.Start(); err == nil {
		t.Fatal("expected an error for an invalid cron schedule")
	}
}

func TestInterestSchedulerStartStop(t *testing.T) {
	b, _ := newTestBank(t)
	s := NewInterestScheduler(b, discardLogger(), "0 0 1 * *")
	if err := s.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	<-s.Stop().Done()
}
