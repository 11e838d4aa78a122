package model

import (
	"sort"
	"time"
)

// CreditPoints adds points to both the wallet bucket and the user total and
// recomputes the level. It returns the level before and after so the caller
// can emit a level-up notification exactly once per change.
func (s *Session) CreditPoints(n int64) (from, to Level) {
	s.Wallet.BalancePoints += n
	if s.User == nil {
		return LevelBronze, LevelBronze
	}
	from = s.User.Level
	s.User.Points += n
	s.User.Level = LevelForPoints(s.User.Points)
	return from, s.User.Level
}

// PushTransaction prepends to the append-only ledger, newest first.
func (s *Session) PushTransaction(tx Transaction) {
	s.Transactions = append([]Transaction{tx}, s.Transactions...)
}

// Notify appends an unread notification.
func (s *Session) Notify(typ NotificationType, title, message string, now time.Time) {
	s.Notifications = append(s.Notifications, Notification{
		ID:        NewID("ntf"),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: now,
	})
}

// SortBills orders pending bills by due date ascending and sinks paid bills
// to the end, newest payment last.
func (s *Session) SortBills() {
	sort.SliceStable(s.Bills, func(i, j int) bool {
		bi, bj := s.Bills[i], s.Bills[j]
		if bi.Status != bj.Status {
			return bi.Status == BillPending
		}
		if bi.Status == BillPending {
			return bi.DueDate.Before(bj.DueDate)
		}
		return bi.DueDate.Before(bj.DueDate)
	})
}
