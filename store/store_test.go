// store/store_test.go
package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"superwallet/model"
	snapshotrepo "superwallet/repository/snapshot"
	"superwallet/store"

	"github.com/stretchr/testify/require"
)

func fileStore(t *testing.T, path string) *store.Store {
	t.Helper()
	repo, err := snapshotrepo.NewFile(path)
	require.NoError(t, err)
	st, err := store.Open(context.Background(), repo)
	require.NoError(t, err)
	return st
}

func sampleSession() *model.Session {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return &model.Session{
		User: &model.User{
			ID: "usr-1", Identifier: "rt@superwallet.id",
			FullName: "Rai", Phone: "+62811", Points: 380,
			Level: model.LevelBronze, CreatedAt: now,
		},
		IsProfileComplete: true,
		Wallet: model.Wallet{
			BalanceMain: 615_000, BalanceSavings: 1_500_000, BalancePoints: 380,
		},
		Transactions: []model.Transaction{
			{ID: "txn-1", Type: model.TxBillPayment, Amount: -385_000, Fee: 2_500,
				Status: model.TxSuccess, Description: "PLN 2026-08", CreatedAt: now},
		},
		Bills: []model.Bill{
			{ID: "bil-1", Type: model.BillElectricity, Name: "PLN", CustomerID: "5213",
				Amount: 392_000, Period: "2026-09", DueDate: now.AddDate(0, 1, 0),
				Status: model.BillPending, CreatedAt: now},
		},
		Installments: []model.Installment{
			{ID: "ins-1", Name: "Phone", Tenure: 12, PaidTenure: 5,
				MonthlyPayment: 450_000, TotalAmount: 5_400_000, PaidAmount: 2_250_000,
				NextDueDate: now.AddDate(0, 0, 15), Status: model.InstallmentActive,
				History: []model.InstallmentPayment{{Period: 5, Amount: 450_000, PaidAt: now}},
				CreatedAt: now},
		},
		Missions: []model.Mission{
			{ID: "msn-1", Title: "First Payment", Target: 1, Progress: 1,
				RewardType: model.RewardPoints, RewardAmount: 50, IsCompleted: true},
		},
		Notifications: []model.Notification{
			{ID: "ntf-1", Type: model.NotifyPayment, Title: "Bill paid",
				Message: "PLN paid", CreatedAt: now},
		},
	}
}

func TestRoundTrip_ReopenedStoreIsDeepEqual(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshot.json")

	st := fileStore(t, path)
	require.NoError(t, st.PutSession(ctx, "rt@superwallet.id", sampleSession()))
	before, ok := st.Session("rt@superwallet.id")
	require.True(t, ok)
	rev := st.Revision()
	require.NoError(t, st.Close())

	reopened := fileStore(t, path)
	after, ok := reopened.Session("rt@superwallet.id")
	require.True(t, ok)
	require.Equal(t, rev, reopened.Revision())

	require.Equal(t, before.Wallet, after.Wallet)
	require.Equal(t, before.Transactions, after.Transactions)
	require.Equal(t, before.Bills, after.Bills)
	require.Equal(t, before.Installments, after.Installments)
	require.Equal(t, before.Missions, after.Missions)
	require.Equal(t, before.User, after.User)
}

func TestUpdateSession_BumpsRevisionPerCommit(t *testing.T) {
	ctx := context.Background()
	st := fileStore(t, filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, st.PutSession(ctx, "a", sampleSession()))
	rev := st.Revision()

	require.NoError(t, st.UpdateSession(ctx, "a", func(s *model.Session) error {
		s.Wallet.BalanceMain += 1
		return nil
	}))
	require.Equal(t, rev+1, st.Revision())
}

func TestUpdateSession_FailedMutationLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	st := fileStore(t, filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, st.PutSession(ctx, "a", sampleSession()))
	rev := st.Revision()

	boom := errors.New("precondition failed")
	err := st.UpdateSession(ctx, "a", func(s *model.Session) error {
		s.Wallet.BalanceMain = 0 // partial write on the copy
		s.Transactions = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	sess, _ := st.Session("a")
	require.Equal(t, int64(615_000), sess.Wallet.BalanceMain)
	require.Len(t, sess.Transactions, 1)
	require.Equal(t, rev, st.Revision())
}

func TestUpdateSession_UnknownIdentifier(t *testing.T) {
	ctx := context.Background()
	st := fileStore(t, filepath.Join(t.TempDir(), "snapshot.json"))

	err := st.UpdateSession(ctx, "ghost", func(s *model.Session) error { return nil })
	require.ErrorIs(t, err, store.ErrSessionNotFound)
}
