package notificationsvc

import (
	"context"
	"errors"

	"superwallet/model"
	"superwallet/store"
)

type ErrCode string

const ErrNotFound ErrCode = "NOT_FOUND"

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
	List(ctx context.Context, identifier string) ([]model.Notification, error)
	MarkRead(ctx context.Context, identifier, notificationID string) error
	MarkAllRead(ctx context.Context, identifier string) error
}

type service struct{ st *store.Store }

func New(st *store.Store) Service { return &service{st: st} }

func (s *service) List(ctx context.Context, identifier string) ([]model.Notification, error) {
	sess, ok := s.st.Session(identifier)
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	return sess.Notifications, nil
}

func (s *service) MarkRead(ctx context.Context, identifier, notificationID string) error {
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		for i := range sess.Notifications {
			if sess.Notifications[i].ID == notificationID {
				sess.Notifications[i].IsRead = true
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

func (s *service) MarkAllRead(ctx context.Context, identifier string) error {
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		for i := range sess.Notifications {
			sess.Notifications[i].IsRead = true
		}
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}
