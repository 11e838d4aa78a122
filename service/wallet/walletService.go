package walletsvc

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
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
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

type Service interface {
	// Wallet returns the current balances.
	Wallet(ctx context.Context, identifier string) (*model.Wallet, error)

	// Patch shallow-merges non-nil balance fields. A patch that would
	// leave any balance negative is refused whole.
	Patch(ctx context.Context, identifier string, req model.WalletPatchReq) (*model.Wallet, error)

	// AddTransaction appends to the ledger without touching balances.
	AddTransaction(ctx context.Context, identifier string, tx model.Transaction) error

	// AddPoints credits wallet and user points, recomputes the level and
	// notifies on a tier change.
	AddPoints(ctx context.Context, identifier string, points int64) error

	// Ledger lists transactions, newest first.
	Ledger(ctx context.Context, identifier string) ([]model.Transaction, error)
}

type service struct{ st *store.Store }

func New(st *store.Store) Service { return &service{st: st} }

func (s *service) Wallet(ctx context.Context, identifier string) (*model.Wallet, error) {
	sess, ok := s.st.Session(identifier)
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	w := sess.Wallet
	return &w, nil
}

func (s *service) Patch(ctx context.Context, identifier string, req model.WalletPatchReq) (*model.Wallet, error) {
	var out model.Wallet
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		w := sess.Wallet
		if req.BalanceMain != nil {
			w.BalanceMain = *req.BalanceMain
		}
		if req.BalanceMarket != nil {
			w.BalanceMarket = *req.BalanceMarket
		}
		if req.BalanceSavings != nil {
			w.BalanceSavings = *req.BalanceSavings
		}
		if req.BalancePoints != nil {
			w.BalancePoints = *req.BalancePoints
		}
		if w.BalanceMain < 0 || w.BalanceMarket < 0 || w.BalanceSavings < 0 || w.BalancePoints < 0 {
			return makeErr(ErrBadInput)
		}
		sess.Wallet = w
		out = w
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

func (s *service) AddTransaction(ctx context.Context, identifier string, tx model.Transaction) error {
	if tx.Amount == 0 || tx.Type == "" {
		return makeErr(ErrBadInput)
	}
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		if tx.ID == "" {
			tx.ID = model.NewID("txn")
		}
		if tx.Status == "" {
			tx.Status = model.TxSuccess
		}
		if tx.CreatedAt.IsZero() {
			tx.CreatedAt = time.Now().UTC()
		}
		sess.PushTransaction(tx)
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}

func (s *service) AddPoints(ctx context.Context, identifier string, points int64) error {
	if points <= 0 {
		return makeErr(ErrBadInput)
	}
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		from, to := sess.CreditPoints(points)
		if from != to {
			sess.Notify(model.NotifyLevelUp, "Level up!",
				fmt.Sprintf("You reached %s level. Keep going!", to), time.Now().UTC())
		}
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}

func (s *service) Ledger(ctx context.Context, identifier string) ([]model.Transaction, error) {
	sess, ok := s.st.Session(identifier)
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	return sess.Transactions, nil
}
