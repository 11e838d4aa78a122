// model/state.go
package model

import "time"

// SchemaVersion guards snapshot rehydration. A mismatch on load discards the
// persisted blob and starts empty; there is no migration path.
const SchemaVersion = 1

// Session is the persisted whitelist of one identifier's state: everything a
// paying or earning action can touch.
type Session struct {
	User              *User          `json:"user"`
	PasswordHash      string         `json:"password_hash"`
	IsProfileComplete bool           `json:"is_profile_complete"`
	IsNewUser         bool           `json:"is_new_user"`
	Wallet            Wallet         `json:"wallet"`
	Transactions      []Transaction  `json:"transactions"`
	Notifications     []Notification `json:"notifications"`
	Missions          []Mission      `json:"missions"`
	Bills             []Bill         `json:"bills"`
	Installments      []Installment  `json:"installments"`
	Cart              []CartItem     `json:"cart"`
}

// State is the whole store snapshot. Revision increases by one per committed
// mutation and backs the optimistic check in the postgres snapshot repo.
type State struct {
	SchemaVersion int                 `json:"schema_version"`
	Revision      int64               `json:"revision"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Sessions      map[string]*Session `json:"sessions"`
}

func NewState() *State {
	return &State{
		SchemaVersion: SchemaVersion,
		Sessions:      map[string]*Session{},
		UpdatedAt:     time.Now().UTC(),
	}
}

// Clone deep-copies a session so a mutation can be abandoned without leaving
// partial writes behind.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.Notifications = append([]Notification(nil), s.Notifications...)
	out.Missions = cloneMissions(s.Missions)
	out.Bills = cloneBills(s.Bills)
	out.Installments = cloneInstallments(s.Installments)
	out.Cart = append([]CartItem(nil), s.Cart...)
	return &out
}

func cloneBills(in []Bill) []Bill {
	out := append([]Bill(nil), in...)
	for i := range out {
		if out[i].PaidAt != nil {
			t := *out[i].PaidAt
			out[i].PaidAt = &t
		}
	}
	return out
}

func cloneInstallments(in []Installment) []Installment {
	out := append([]Installment(nil), in...)
	for i := range out {
		out[i].History = append([]InstallmentPayment(nil), in[i].History...)
	}
	return out
}

func cloneMissions(in []Mission) []Mission {
	out := append([]Mission(nil), in...)
	for i := range out {
		if out[i].ClaimedAt != nil {
			t := *out[i].ClaimedAt
			out[i].ClaimedAt = &t
		}
	}
	return out
}
