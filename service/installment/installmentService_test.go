// service/installment/installment_service_test.go
package installmentsvc

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

func seedInstallment(t *testing.T, balance int64, ins model.Installment) (*store.Store, string) {
	t.Helper()
	repo := &memRepo{}
	st, err := store.Open(context.Background(), repo)
	require.NoError(t, err)

	const identifier = "tester@superwallet.id"
	sess := &model.Session{
		User:         &model.User{ID: "usr-test", Identifier: identifier, Level: model.LevelBronze},
		Wallet:       model.Wallet{BalanceMain: balance},
		Installments: []model.Installment{ins},
	}
	require.NoError(t, st.PutSession(context.Background(), identifier, sess))
	return st, identifier
}

func activeInstallment(tenure, paidTenure int, monthly int64, due time.Time) model.Installment {
	return model.Installment{
		ID:             "ins-1",
		Name:           "Smartphone financing",
		Tenure:         tenure,
		PaidTenure:     paidTenure,
		MonthlyPayment: monthly,
		TotalAmount:    int64(tenure) * monthly,
		PaidAmount:     int64(paidTenure) * monthly,
		NextDueDate:    due,
		Status:         model.InstallmentActive,
	}
}

func TestPay_IncrementsTenureByExactlyOne(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	st, id := seedInstallment(t, 2_000_000, activeInstallment(12, 4, 450_000, due))
	svc := New(st)

	ins, err := svc.Pay(ctx, id, "ins-1")
	require.NoError(t, err)
	require.Equal(t, 5, ins.PaidTenure)
	require.Equal(t, model.InstallmentActive, ins.Status)
	require.Equal(t, due.AddDate(0, 1, 0), ins.NextDueDate)
	require.Equal(t, int64(5*450_000), ins.PaidAmount)
	require.Len(t, ins.History, 1)
	require.Equal(t, 5, ins.History[0].Period)

	sess, _ := st.Session(id)
	require.Equal(t, int64(2_000_000-450_000), sess.Wallet.BalanceMain)
	// floor(450000/10000)*15 = 675 points
	require.Equal(t, int64(675), sess.Wallet.BalancePoints)
	require.Equal(t, int64(-450_000), sess.Transactions[0].Amount)
	require.Equal(t, int64(2_500), sess.Transactions[0].Fee)
}

func TestPay_CompletesExactlyAtTenureAndFreezesDueDate(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	st, id := seedInstallment(t, 1_000_000, activeInstallment(12, 11, 450_000, due))
	svc := New(st)

	ins, err := svc.Pay(ctx, id, "ins-1")
	require.NoError(t, err)
	require.Equal(t, model.InstallmentCompleted, ins.Status)
	require.Equal(t, 12, ins.PaidTenure)
	// due date freezes on completion
	require.Equal(t, due, ins.NextDueDate)

	sess, _ := st.Session(id)
	require.Contains(t, sess.Notifications[len(sess.Notifications)-1].Message, "fully paid off")
}

func TestPay_AfterCompletionIsRefusedWithoutBalanceChange(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	st, id := seedInstallment(t, 1_000_000, activeInstallment(12, 11, 450_000, due))
	svc := New(st)

	_, err := svc.Pay(ctx, id, "ins-1")
	require.NoError(t, err)

	sess, _ := st.Session(id)
	balanceAfter := sess.Wallet.BalanceMain

	_, err = svc.Pay(ctx, id, "ins-1")
	require.Error(t, err)
	require.Equal(t, ErrCompleted, Code(err))

	sess, _ = st.Session(id)
	require.Equal(t, balanceAfter, sess.Wallet.BalanceMain)
	require.Equal(t, 12, sess.Installments[0].PaidTenure)
}

func TestPay_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	st, id := seedInstallment(t, 100_000, activeInstallment(12, 4, 450_000, due))
	svc := New(st)

	_, err := svc.Pay(ctx, id, "ins-1")
	require.Error(t, err)
	require.Equal(t, ErrInsufficientBalance, Code(err))

	sess, _ := st.Session(id)
	require.Equal(t, int64(100_000), sess.Wallet.BalanceMain)
	require.Equal(t, 4, sess.Installments[0].PaidTenure)
}

func TestPay_NotFound(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	st, id := seedInstallment(t, 1_000_000, activeInstallment(12, 4, 450_000, due))
	svc := New(st)

	_, err := svc.Pay(ctx, id, "ins-missing")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}
