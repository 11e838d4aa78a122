// service/bill/bill_service_test.go
package billsvc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"superwallet/model"
	"superwallet/store"

	"github.com/stretchr/testify/require"
)

type memRepo struct{ saved []byte }

func (m *memRepo) Load(ctx context.Context) (*model.State, error) { return nil, nil }
func (m *memRepo) Save(ctx context.Context, st *model.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	m.saved = b
	return nil
}
func (m *memRepo) Close() error { return nil }

func newTestStore(t *testing.T) (*store.Store, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	st, err := store.Open(context.Background(), repo)
	require.NoError(t, err)
	return st, repo
}

func seedSession(t *testing.T, st *store.Store, balance int64, bills ...model.Bill) string {
	t.Helper()
	const identifier = "tester@superwallet.id"
	sess := &model.Session{
		User: &model.User{
			ID:         "usr-test",
			Identifier: identifier,
			Level:      model.LevelBronze,
		},
		Wallet: model.Wallet{BalanceMain: balance},
		Bills:  bills,
	}
	require.NoError(t, st.PutSession(context.Background(), identifier, sess))
	return identifier
}

func pendingBill(id string, amount int64, due time.Time) model.Bill {
	return model.Bill{
		ID:         id,
		Type:       model.BillElectricity,
		Name:       "PLN Postpaid",
		CustomerID: "521300012345",
		Amount:     amount,
		Period:     due.AddDate(0, -1, 0).Format("2006-01"),
		DueDate:    due,
		Status:     model.BillPending,
	}
}

func TestPay_DebitsExactAmountAndRegeneratesNextPeriod(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	due := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	id := seedSession(t, st, 1_000_000,
		pendingBill("bil-1", 385_000, due),
		pendingBill("bil-2", 315_000, due.AddDate(0, 0, 8)),
	)
	svc := New(st)

	paid, err := svc.Pay(ctx, id, "bil-1")
	require.NoError(t, err)
	require.Equal(t, model.BillPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	sess, ok := st.Session(id)
	require.True(t, ok)

	// balance drops by exactly the amount; the fee is recorded, not deducted
	require.Equal(t, int64(615_000), sess.Wallet.BalanceMain)

	// floor(385000/10000)*10 = 380 points
	require.Equal(t, int64(380), sess.Wallet.BalancePoints)
	require.Equal(t, int64(380), sess.User.Points)

	// one removed from pending, one freshly generated: pending count unchanged
	var pending, settled []model.Bill
	for _, b := range sess.Bills {
		if b.Status == model.BillPending {
			pending = append(pending, b)
		} else {
			settled = append(settled, b)
		}
	}
	require.Len(t, pending, 2)
	require.Len(t, settled, 1)

	require.Len(t, sess.Transactions, 1)
	tx := sess.Transactions[0]
	require.Equal(t, model.TxBillPayment, tx.Type)
	require.Equal(t, int64(-385_000), tx.Amount)
	require.Equal(t, int64(2_500), tx.Fee)
}

func TestPay_SuccessorIsOneMonthLaterWithinJitter(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	due := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	id := seedSession(t, st, 1_000_000, pendingBill("bil-1", 385_000, due))
	svc := New(st)

	_, err := svc.Pay(ctx, id, "bil-1")
	require.NoError(t, err)

	sess, _ := st.Session(id)
	var next *model.Bill
	for i := range sess.Bills {
		if sess.Bills[i].Status == model.BillPending {
			next = &sess.Bills[i]
		}
	}
	require.NotNil(t, next)
	require.Equal(t, due.AddDate(0, 1, 0), next.DueDate)
	require.Equal(t, "2026-10", next.Period)
	require.InDelta(t, 385_000, float64(next.Amount), 25_000)
	require.Equal(t, "521300012345", next.CustomerID)
}

func TestPay_SortsPendingFirstByDueDate(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	due := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	id := seedSession(t, st, 2_000_000,
		pendingBill("bil-late", 100_000, due.AddDate(0, 0, 10)),
		pendingBill("bil-early", 100_000, due),
	)
	svc := New(st)

	_, err := svc.Pay(ctx, id, "bil-early")
	require.NoError(t, err)

	sess, _ := st.Session(id)
	require.Equal(t, model.BillPending, sess.Bills[0].Status)
	require.Equal(t, "bil-late", sess.Bills[0].ID)
	// the paid bill sinks to the end
	last := sess.Bills[len(sess.Bills)-1]
	require.Equal(t, model.BillPaid, last.Status)
	require.Equal(t, "bil-early", last.ID)
}

func TestPay_AlreadyPaid(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	due := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	id := seedSession(t, st, 1_000_000, pendingBill("bil-1", 100_000, due))
	svc := New(st)

	_, err := svc.Pay(ctx, id, "bil-1")
	require.NoError(t, err)

	_, err = svc.Pay(ctx, id, "bil-1")
	require.Error(t, err)
	require.Equal(t, ErrAlreadyPaid, Code(err))
}

func TestPay_InsufficientBalanceLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	st, repo := newTestStore(t)
	due := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	id := seedSession(t, st, 50_000, pendingBill("bil-1", 385_000, due))
	svc := New(st)

	revBefore := st.Revision()
	snapBefore := string(repo.saved)

	_, err := svc.Pay(ctx, id, "bil-1")
	require.Error(t, err)
	require.Equal(t, ErrInsufficientBalance, Code(err))

	sess, _ := st.Session(id)
	require.Equal(t, int64(50_000), sess.Wallet.BalanceMain)
	require.Len(t, sess.Transactions, 0)
	require.Equal(t, revBefore, st.Revision())
	require.Equal(t, snapBefore, string(repo.saved))
}

func TestPay_NotFound(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	id := seedSession(t, st, 1_000_000)
	svc := New(st)

	_, err := svc.Pay(ctx, id, "bil-missing")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))

	_, err = svc.Pay(ctx, "nobody", "bil-1")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}
