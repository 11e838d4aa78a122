package billsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"superwallet/model"
	"superwallet/store"
)

type ErrCode string

const (
	ErrNotFound            ErrCode = "NOT_FOUND"
	ErrAlreadyPaid         ErrCode = "ALREADY_PAID"
	ErrInsufficientBalance ErrCode = "INSUFFICIENT_BALANCE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const (
	// flat admin fee, recorded on the transaction but absorbed by the
	// platform: it never reduces BalanceMain
	paymentFee = 2_500

	// points earned per Rp10.000 paid
	pointsPer10k = 10

	// the next period's amount moves by at most this much either way
	amountJitter = 25_000
)

type Service interface {
	// List returns the session's bills, pending first by due date.
	List(ctx context.Context, identifier string) ([]model.Bill, error)

	// Pay settles a pending bill and lazily generates the next period's
	// instance, so the subscription never runs out.
	Pay(ctx context.Context, identifier, billID string) (*model.Bill, error)
}

type service struct{ st *store.Store }

func New(st *store.Store) Service { return &service{st: st} }

func (s *service) List(ctx context.Context, identifier string) ([]model.Bill, error) {
	sess, ok := s.st.Session(identifier)
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	return sess.Bills, nil
}

func (s *service) Pay(ctx context.Context, identifier, billID string) (*model.Bill, error) {
	var paid model.Bill
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		idx := -1
		for i := range sess.Bills {
			if sess.Bills[i].ID == billID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return makeErr(ErrNotFound)
		}
		bill := &sess.Bills[idx]
		if bill.Status == model.BillPaid {
			return makeErr(ErrAlreadyPaid)
		}
		if sess.Wallet.BalanceMain < bill.Amount {
			return makeErr(ErrInsufficientBalance)
		}
		now := time.Now().UTC()

		sess.Wallet.BalanceMain -= bill.Amount
		points := bill.Amount / 10_000 * pointsPer10k
		from, to := sess.CreditPoints(points)

		bill.Status = model.BillPaid
		bill.PaidAt = &now

		sess.Bills = append(sess.Bills, nextPeriodBill(*bill, now))

		sess.PushTransaction(model.Transaction{
			ID:          model.NewID("txn"),
			Type:        model.TxBillPayment,
			Amount:      -bill.Amount,
			Fee:         paymentFee,
			Status:      model.TxSuccess,
			Description: fmt.Sprintf("%s %s", bill.Name, bill.Period),
			CreatedAt:   now,
		})
		sess.Notify(model.NotifyPayment, "Bill paid",
			fmt.Sprintf("%s for period %s paid. You earned %d points.", bill.Name, bill.Period, points), now)
		if from != to {
			sess.Notify(model.NotifyLevelUp, "Level up!",
				fmt.Sprintf("You reached %s level. Keep going!", to), now)
		}

		sess.SortBills()
		for i := range sess.Bills {
			if sess.Bills[i].ID == billID {
				paid = sess.Bills[i]
			}
		}
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &paid, nil
}

// nextPeriodBill synthesizes the successor one month later with the amount
// perturbed uniformly within ±amountJitter, floored at zero.
func nextPeriodBill(paid model.Bill, now time.Time) model.Bill {
	due := paid.DueDate.AddDate(0, 1, 0)
	amount := paid.Amount + rand.Int63n(2*amountJitter+1) - amountJitter
	if amount < 0 {
		amount = 0
	}
	return model.Bill{
		ID:         model.NewID("bil"),
		Type:       paid.Type,
		Name:       paid.Name,
		CustomerID: paid.CustomerID,
		Amount:     amount,
		Period:     due.Format("2006-01"),
		DueDate:    due,
		Status:     model.BillPending,
		CreatedAt:  now,
	}
}
