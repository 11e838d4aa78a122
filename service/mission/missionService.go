package missionsvc

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
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrNotCompleted      ErrCode = "NOT_COMPLETED"
	ErrAlreadyClaimed    ErrCode = "ALREADY_CLAIMED"
	ErrRewardUnsupported ErrCode = "REWARD_UNSUPPORTED"
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
	List(ctx context.Context, identifier string) ([]model.Mission, error)

	// UpdateProgress reports absolute progress, clamped to [0, Target].
	// Completion latches: a later lower value never un-completes.
	UpdateProgress(ctx context.Context, identifier, missionID string, progress int64) (*model.Mission, error)

	// ClaimReward grants the reward at most once, and only after
	// completion. Only the points reward type has crediting semantics.
	ClaimReward(ctx context.Context, identifier, missionID string) (*model.Mission, error)
}

type service struct{ st *store.Store }

func New(st *store.Store) Service { return &service{st: st} }

func (s *service) List(ctx context.Context, identifier string) ([]model.Mission, error) {
	sess, ok := s.st.Session(identifier)
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	return sess.Missions, nil
}

func (s *service) UpdateProgress(ctx context.Context, identifier, missionID string, progress int64) (*model.Mission, error) {
	var out model.Mission
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		m := findMission(sess, missionID)
		if m == nil {
			return makeErr(ErrNotFound)
		}
		if progress < 0 {
			progress = 0
		}
		if progress > m.Target {
			progress = m.Target
		}
		// completion latches; a stale lower report cannot regress it
		if !m.IsCompleted || progress > m.Progress {
			m.Progress = progress
		}
		if m.Progress >= m.Target {
			m.IsCompleted = true
		}
		out = *m
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

func (s *service) ClaimReward(ctx context.Context, identifier, missionID string) (*model.Mission, error) {
	var out model.Mission
	err := s.st.UpdateSession(ctx, identifier, func(sess *model.Session) error {
		m := findMission(sess, missionID)
		if m == nil {
			return makeErr(ErrNotFound)
		}
		if !m.IsCompleted {
			return makeErr(ErrNotCompleted)
		}
		if m.IsClaimed {
			return makeErr(ErrAlreadyClaimed)
		}
		if m.RewardType != model.RewardPoints {
			// cashback and voucher crediting semantics are undefined
			// upstream; refuse instead of guessing
			return makeErr(ErrRewardUnsupported)
		}
		now := time.Now().UTC()

		m.IsClaimed = true
		m.ClaimedAt = &now
		from, to := sess.CreditPoints(m.RewardAmount)
		sess.Notify(model.NotifyReward, "Mission reward claimed",
			fmt.Sprintf("%s: +%d points.", m.Title, m.RewardAmount), now)
		if from != to {
			sess.Notify(model.NotifyLevelUp, "Level up!",
				fmt.Sprintf("You reached %s level. Keep going!", to), now)
		}
		out = *m
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

func findMission(sess *model.Session, id string) *model.Mission {
	for i := range sess.Missions {
		if sess.Missions[i].ID == id {
			return &sess.Missions[i]
		}
	}
	return nil
}
