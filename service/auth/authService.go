package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"superwallet/model"
	"superwallet/store"
	"superwallet/util/hash"
	jwtutil "superwallet/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadInput        ErrCode = "BAD_INPUT"
	ErrTaken           ErrCode = "IDENTIFIER_TAKEN"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrProfileComplete ErrCode = "PROFILE_COMPLETE"
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
	profileBonusBalance = 50_000
	profileBonusPoints  = 100
)

type Service interface {
	// Login rehydrates a known session or fabricates a new one. Any
	// non-empty identifier+password pair is accepted.
	Login(ctx context.Context, req model.LoginReq) (*model.Session, string, error)

	// Register is the new-session branch of Login; it refuses an
	// identifier that already has a session.
	Register(ctx context.Context, req model.RegisterReq) (*model.Session, string, error)

	// CompleteProfile is one-time: it sets the profile fields and grants
	// the welcome bonus. A second call is refused.
	CompleteProfile(ctx context.Context, identifier string, req model.CompleteProfileReq) (*model.Session, error)

	// Logout clears the new-user flag; the session stays persisted for a
	// later rehydration.
	Logout(ctx context.Context, identifier string) error
}

type service struct {
	st     *store.Store
	secret string
}

func New(st *store.Store, secret string) Service { return &service{st: st, secret: secret} }

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.Session, string, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, "", makeErr(ErrBadInput)
	}

	if !s.st.HasSession(identifier) {
		sess, err := s.fabricate(ctx, identifier, req.Password)
		if err != nil {
			return nil, "", err
		}
		token, err := jwtutil.Issue(s.secret, identifier, 24)
		if err != nil {
			return nil, "", err
		}
		return sess, token, nil
	}

	sess, _ := s.st.Session(identifier)
	token, err := jwtutil.Issue(s.secret, identifier, 24)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.Session, string, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, "", makeErr(ErrBadInput)
	}
	if s.st.HasSession(identifier) {
		return nil, "", makeErr(ErrTaken)
	}
	sess, err := s.fabricate(ctx, identifier, req.Password)
	if err != nil {
		return nil, "", err
	}
	token, err := jwtutil.Issue(s.secret, identifier, 24)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

// fabricate builds and persists the session for an identifier the store has
// never seen: the seeded demo profile when one matches, a zero-balance new
// user otherwise.
func (s *service) fabricate(ctx context.Context, identifier, password string) (*model.Session, error) {
	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	sess := demoSession(identifier)
	if sess == nil {
		sess = newSession(identifier)
	}
	sess.PasswordHash = hashed

	if err := s.st.PutSession(ctx, identifier, sess); err != nil {
		return nil, err
	}
	return sess.Clone(), nil
}

func (s *service) CompleteProfile(ctx context.Context, identifier string, req model.CompleteProfileReq) (*model.Session, error) {
	fullName := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.Phone)
	if fullName == "" || phone == "" {
		return nil, makeErr(ErrBadInput)
	}

	var out *model.Session
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		if sess.IsProfileComplete {
			return makeErr(ErrProfileComplete)
		}
		now := time.Now().UTC()

		sess.User.FullName = fullName
		sess.User.Phone = phone
		if u := strings.TrimSpace(req.Username); u != "" {
			sess.User.Username = u
		}
		sess.IsProfileComplete = true

		sess.Wallet.BalanceMain += profileBonusBalance
		sess.CreditPoints(profileBonusPoints)
		sess.PushTransaction(model.Transaction{
			ID:          model.NewID("txn"),
			Type:        model.TxBonus,
			Amount:      profileBonusBalance,
			Status:      model.TxSuccess,
			Description: "Profile completion bonus",
			CreatedAt:   now,
		})
		sess.Notify(model.NotifyWelcome, "Welcome aboard!",
			"Your profile is complete. Enjoy a Rp50.000 balance bonus and 100 points.", now)

		out = sess.Clone()
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Logout(ctx context.Context, identifier string) error {
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		sess.IsNewUser = false
		return nil
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}
