package installmentsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"superwallet/model"
	"superwallet/store"
)

type ErrCode string

const (
	ErrNotFound            ErrCode = "NOT_FOUND"
	ErrCompleted           ErrCode = "COMPLETED"
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
	// flat admin fee, recorded only; never deducted from BalanceMain
	paymentFee = 2_500

	// installments earn points at a higher rate than bills
	pointsPer10k = 15
)

type Service interface {
	List(ctx context.Context, identifier string) ([]model.Installment, error)

	// Pay settles one tenure period. PaidTenure increases by exactly one;
	// the installment completes when PaidTenure reaches Tenure, after
	// which further payments are refused and the due date freezes.
	Pay(ctx context.Context, identifier, installmentID string) (*model.Installment, error)
}

type service struct{ st *store.Store }

func New(st *store.Store) Service { return &service{st: st} }

func (s *service) List(ctx context.Context, identifier string) ([]model.Installment, error) {
	sess, ok := s.st.Session(identifier)
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	return sess.Installments, nil
}

func (s *service) Pay(ctx context.Context, identifier, installmentID string) (*model.Installment, error) {
	var out model.Installment
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		idx := -1
		for i := range sess.Installments {
			if sess.Installments[i].ID == installmentID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return makeErr(ErrNotFound)
		}
		ins := &sess.Installments[idx]
		if ins.Status == model.InstallmentCompleted {
			return makeErr(ErrCompleted)
		}
		if sess.Wallet.BalanceMain < ins.MonthlyPayment {
			return makeErr(ErrInsufficientBalance)
		}
		now := time.Now().UTC()

		sess.Wallet.BalanceMain -= ins.MonthlyPayment
		points := ins.MonthlyPayment / 10_000 * pointsPer10k
		from, to := sess.CreditPoints(points)

		ins.PaidTenure++
		ins.PaidAmount += ins.MonthlyPayment
		ins.History = append(ins.History, model.InstallmentPayment{
			Period: ins.PaidTenure,
			Amount: ins.MonthlyPayment,
			PaidAt: now,
		})

		completed := ins.PaidTenure == ins.Tenure
		if completed {
			ins.Status = model.InstallmentCompleted
			// due date freezes on completion
		} else {
			ins.NextDueDate = ins.NextDueDate.AddDate(0, 1, 0)
		}

		sess.PushTransaction(model.Transaction{
			ID:          model.NewID("txn"),
			Type:        model.TxInstallment,
			Amount:      -ins.MonthlyPayment,
			Fee:         paymentFee,
			Status:      model.TxSuccess,
			Description: fmt.Sprintf("%s installment %d/%d", ins.Name, ins.PaidTenure, ins.Tenure),
			CreatedAt:   now,
		})
		if completed {
			sess.Notify(model.NotifyInstallment, "Installment completed",
				fmt.Sprintf("Congratulations! %s is fully paid off.", ins.Name), now)
		} else {
			sess.Notify(model.NotifyInstallment, "Installment paid",
				fmt.Sprintf("%s period %d of %d paid. You earned %d points.",
					ins.Name, ins.PaidTenure, ins.Tenure, points), now)
		}
		if from != to {
			sess.Notify(model.NotifyLevelUp, "Level up!",
				fmt.Sprintf("You reached %s level. Keep going!", to), now)
		}

		out = sess.Installments[idx]
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
