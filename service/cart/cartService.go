package cartsvc

import (
	"context"
	"errors"

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
	List(ctx context.Context, identifier string) ([]model.CartItem, error)

	// Add merges quantity into an existing line with the same id.
	Add(ctx context.Context, identifier string, req model.CartAddReq) error

	// SetQuantity sets a line's quantity; zero removes the line.
	SetQuantity(ctx context.Context, identifier, itemID string, quantity int) error

	Remove(ctx context.Context, identifier, itemID string) error
	Clear(ctx context.Context, identifier string) error
}

type service struct{ st *store.Store }

func New(st *store.Store) Service { return &service{st: st} }

func (s *service) List(ctx context.Context, identifier string) ([]model.CartItem, error) {
	sess, ok := s.st.Session(identifier)
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	return sess.Cart, nil
}

func (s *service) Add(ctx context.Context, identifier string, req model.CartAddReq) error {
	if req.ID == "" || req.Quantity <= 0 || req.Price < 0 {
		return makeErr(ErrBadInput)
	}
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		for i := range sess.Cart {
			if sess.Cart[i].ID == req.ID {
				sess.Cart[i].Quantity += req.Quantity
				return nil
			}
		}
		sess.Cart = append(sess.Cart, model.CartItem{
			ID:       req.ID,
			Name:     req.Name,
			Merchant: req.Merchant,
			Price:    req.Price,
			Quantity: req.Quantity,
		})
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}

func (s *service) SetQuantity(ctx context.Context, identifier, itemID string, quantity int) error {
	if quantity < 0 {
		return makeErr(ErrBadInput)
	}
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		for i := range sess.Cart {
			if sess.Cart[i].ID == itemID {
				if quantity == 0 {
					sess.Cart = append(sess.Cart[:i], sess.Cart[i+1:]...)
				} else {
					sess.Cart[i].Quantity = quantity
				}
				return nil
			}
		}
		return makeErr(ErrNotFound)
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}

func (s *service) Remove(ctx context.Context, identifier, itemID string) error {
	return s.SetQuantity(ctx, identifier, itemID, 0)
}

func (s *service) Clear(ctx context.Context, identifier string) error {
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		sess.Cart = nil
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}
