// Package store is the application state container: one in-memory snapshot
// behind a lock, persisted whole through a snapshot repo on every committed
// mutation.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"superwallet/model"
	snapshotrepo "superwallet/repository/snapshot"
)

var ErrSessionNotFound = errors.New("session not found")

type Store struct {
	mu   sync.RWMutex
	repo snapshotrepo.Repo
	st   *model.State
}

// Open rehydrates the persisted snapshot, or starts empty when none exists.
func Open(ctx context.Context, repo snapshotrepo.Repo) (*Store, error) {
	st, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		st = model.NewState()
	}
	if st.Sessions == nil {
		st.Sessions = map[string]*model.Session{}
	}
	return &Store{repo: repo, st: st}, nil
}

// Session returns a deep copy of the identifier's session.
func (s *Store) Session(identifier string) (*model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.st.Sessions[identifier]
	if !ok {
		return nil, false
	}
	return sess.Clone(), true
}

// HasSession reports whether the identifier is known without copying.
func (s *Store) HasSession(identifier string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.st.Sessions[identifier]
	return ok
}

// PutSession installs a new session and persists the snapshot.
func (s *Store) PutSession(ctx context.Context, identifier string, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.st.Sessions[identifier]
	s.st.Sessions[identifier] = sess
	if err := s.commit(ctx); err != nil {
		if had {
			s.st.Sessions[identifier] = prev
		} else {
			delete(s.st.Sessions, identifier)
		}
		return err
	}
	return nil
}

// UpdateSession runs fn against a deep copy of the session and swaps the copy
// in only when fn succeeds and the snapshot persists. A failed mutation
// leaves both memory and disk untouched.
func (s *Store) UpdateSession(ctx context.Context, identifier string, fn func(*model.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.st.Sessions[identifier]
	if !ok {
		return ErrSessionNotFound
	}
	next := cur.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.st.Sessions[identifier] = next
	if err := s.commit(ctx); err != nil {
		s.st.Sessions[identifier] = cur
		return err
	}
	return nil
}

func (s *Store) commit(ctx context.Context) error {
	rev, at := s.st.Revision, s.st.UpdatedAt
	s.st.Revision++
	s.st.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, s.st); err != nil {
		s.st.Revision, s.st.UpdatedAt = rev, at
		return err
	}
	return nil
}

func (s *Store) Revision() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Revision
}

func (s *Store) Close() error { return s.repo.Close() }
