package model

import (
	"testing"
	"time"
)

func TestSessionClone_IsIndependent(t *testing.T) {
	now := time.Now().UTC()
	paid := now.AddDate(0, -1, 0)
	orig := &Session{
		User:         &User{ID: "usr-1", Points: 100, Level: LevelBronze},
		Wallet:       Wallet{BalanceMain: 10_000},
		Transactions: []Transaction{{ID: "txn-1", Amount: -5_000}},
		Bills: []Bill{
			{ID: "bil-1", Status: BillPaid, PaidAt: &paid},
		},
		Installments: []Installment{
			{ID: "ins-1", History: []InstallmentPayment{{Period: 1, Amount: 450_000}}},
		},
	}

	cp := orig.Clone()
	cp.User.Points = 999
	cp.Wallet.BalanceMain = 0
	cp.Transactions[0].Amount = 0
	*cp.Bills[0].PaidAt = now
	cp.Installments[0].History[0].Amount = 0

	if orig.User.Points != 100 {
		t.Fatal("clone shares user")
	}
	if orig.Wallet.BalanceMain != 10_000 {
		t.Fatal("clone shares wallet")
	}
	if orig.Transactions[0].Amount != -5_000 {
		t.Fatal("clone shares transactions")
	}
	if !orig.Bills[0].PaidAt.Equal(paid) {
		t.Fatal("clone shares bill paid-at")
	}
	if orig.Installments[0].History[0].Amount != 450_000 {
		t.Fatal("clone shares installment history")
	}
}

func TestSortBills_PendingFirstByDueDate(t *testing.T) {
	now := time.Now().UTC()
	s := &Session{Bills: []Bill{
		{ID: "paid", Status: BillPaid, DueDate: now},
		{ID: "late", Status: BillPending, DueDate: now.AddDate(0, 0, 20)},
		{ID: "soon", Status: BillPending, DueDate: now.AddDate(0, 0, 3)},
	}}
	s.SortBills()

	want := []string{"soon", "late", "paid"}
	for i, id := range want {
		if s.Bills[i].ID != id {
			t.Fatalf("bill %d = %s, want %s", i, s.Bills[i].ID, id)
		}
	}
}
