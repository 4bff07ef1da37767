package state_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subchain-io/subchain-go/pkg/subchain"
	"github.com/subchain-io/subchain-go/pkg/subchain/state"
)

// stubNotificationsClient implements subchain.NotificationsClient and records
// the bulk mark-all payloads it receives.
type stubNotificationsClient struct {
	notifications []subchain.Notification
	markAllIDs    [][]int64
	deleted       []int64
}

func (c *stubNotificationsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Notification], error) {
	return &subchain.ListResponse[subchain.Notification]{
		Count:   len(c.notifications),
		Results: c.notifications,
	}, nil
}

func (c *stubNotificationsClient) MarkRead(ctx context.Context, id int64) (*subchain.Notification, error) {
	for _, n := range c.notifications {
		if n.ID == id {
			n.IsRead = true

			return &n, nil
		}
	}

	return nil, &subchain.APIError{Status: 404, Message: "notification not found"}
}

func (c *stubNotificationsClient) Delete(ctx context.Context, id int64) error {
	c.deleted = append(c.deleted, id)

	return nil
}

func (c *stubNotificationsClient) MarkAllRead(ctx context.Context, unreadIDs []int64) error {
	c.markAllIDs = append(c.markAllIDs, unreadIDs)

	return nil
}

func (c *stubNotificationsClient) Send(ctx context.Context, request *subchain.SendNotificationRequest) error {
	return nil
}

func notificationFeed() []subchain.Notification {
	return []subchain.Notification{
		{Resource: subchain.Resource{ID: 1}, Title: "Payment received", IsRead: false},
		{Resource: subchain.Resource{ID: 2}, Title: "Invoice overdue", IsRead: false},
		{Resource: subchain.Resource{ID: 3}, Title: "Welcome", IsRead: true},
	}
}

func TestNotifications_UnreadCount(t *testing.T) {
	t.Parallel()

	client := &stubNotificationsClient{notifications: notificationFeed()}
	store := state.NewNotifications(client, nil)

	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, 2, store.UnreadCount())
}

func TestNotifications_MarkRead(t *testing.T) {
	t.Parallel()

	client := &stubNotificationsClient{notifications: notificationFeed()}
	store := state.NewNotifications(client, nil)
	require.NoError(t, store.Load(context.Background()))

	updated, err := store.MarkRead(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
	assert.Equal(t, 1, store.UnreadCount())
}

func TestNotifications_MarkAllRead(t *testing.T) {
	t.Parallel()

	client := &stubNotificationsClient{notifications: notificationFeed()}
	store := state.NewNotifications(client, nil)
	require.NoError(t, store.Load(context.Background()))

	require.NoError(t, store.MarkAllRead(context.Background()))

	// Only the unread IDs go to the server; the whole snapshot is patched
	// locally without a refetch.
	require.Len(t, client.markAllIDs, 1)
	assert.Equal(t, []int64{1, 2}, client.markAllIDs[0])
	assert.Zero(t, store.UnreadCount())
}

func TestNotifications_Delete(t *testing.T) {
	t.Parallel()

	client := &stubNotificationsClient{notifications: notificationFeed()}
	store := state.NewNotifications(client, nil)
	require.NoError(t, store.Load(context.Background()))

	require.NoError(t, store.Delete(context.Background(), 2))
	assert.Equal(t, []int64{2}, client.deleted)

	snapshot := store.Snapshot()
	assert.Equal(t, 2, snapshot.Count)
	for _, item := range snapshot.Items {
		assert.NotEqual(t, int64(2), item.ID)
	}
}
