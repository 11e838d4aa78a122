// service/notification/notification_service_test.go
package notificationsvc

import (
	"context"
	"testing"

	"superwallet/model"
	"superwallet/store"

	"github.com/stretchr/testify/require"
)

type memRepo struct{}

func (memRepo) Load(ctx context.Context) (*model.State, error) { return nil, nil }

func (memRepo) Save(ctx context.Context, st *model.State) error { return nil }

func (memRepo) Close() error { return nil }

func seedNotifications(t *testing.T, rows ...model.Notification) (*store.Store, string) {
	t.Helper()
	st, err := store.Open(context.Background(), memRepo{})
	require.NoError(t, err)

	const identifier = "tester@superwallet.id"
	sess := &model.Session{
		User:          &model.User{ID: "usr-test", Identifier: identifier, Level: model.LevelBronze},
		Notifications: rows,
	}
	require.NoError(t, st.PutSession(context.Background(), identifier, sess))
	return st, identifier
}

func TestMarkRead_FlipsOnlyTheTarget(t *testing.T) {
	ctx := context.Background()
	st, id := seedNotifications(t,
		model.Notification{ID: "ntf-1", Type: model.NotifyWelcome, Title: "Welcome"},
		model.Notification{ID: "ntf-2", Type: model.NotifyPayment, Title: "Bill paid"},
	)
	svc := New(st)

	require.NoError(t, svc.MarkRead(ctx, id, "ntf-2"))

	rows, err := svc.List(ctx, id)
	require.NoError(t, err)
	require.False(t, rows[0].IsRead)
	require.True(t, rows[1].IsRead)
}

func TestMarkRead_UnknownNotification(t *testing.T) {
	st, id := seedNotifications(t)
	svc := New(st)

	err := svc.MarkRead(context.Background(), id, "ghost")
	require.Equal(t, ErrNotFound, Code(err))
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	st, id := seedNotifications(t,
		model.Notification{ID: "ntf-1", Type: model.NotifyWelcome},
		model.Notification{ID: "ntf-2", Type: model.NotifyPayment},
		model.Notification{ID: "ntf-3", Type: model.NotifyLevelUp},
	)
	svc := New(st)

	require.NoError(t, svc.MarkAllRead(ctx, id))

	rows, err := svc.List(ctx, id)
	require.NoError(t, err)
	for _, n := range rows {
		require.True(t, n.IsRead)
	}
}
