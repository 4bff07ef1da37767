package state

import (
	"context"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// Notifications tracks the merchant notification feed.
type Notifications struct {
	*Collection[subchain.Notification]

	client subchain.NotificationsClient
}

// NewNotifications creates a notifications store.
func NewNotifications(client subchain.NotificationsClient, authenticated func() bool) *Notifications {
	return &Notifications{
		Collection: NewCollection(client.List, authenticated, func(n subchain.Notification) int64 {
			return n.ID
		}),
		client: client,
	}
}

// UnreadCount returns the number of unread notifications in the snapshot.
func (n *Notifications) UnreadCount() int {
	count := 0
	for _, item := range n.Snapshot().Items {
		if !item.IsRead {
			count++
		}
	}

	return count
}

// MarkRead marks one notification read and patches it in the snapshot.
func (n *Notifications) MarkRead(ctx context.Context, id int64) (*subchain.Notification, error) {
	return n.Update(ctx, id, func(ctx context.Context) (*subchain.Notification, error) {
		return n.client.MarkRead(ctx, id)
	})
}

// MarkAllRead marks every unread notification read and patches the whole
// snapshot, so the unread count drops to zero without a refetch.
func (n *Notifications) MarkAllRead(ctx context.Context) error {
	unread := make([]int64, 0)
	for _, item := range n.Snapshot().Items {
		if !item.IsRead {
			unread = append(unread, item.ID)
		}
	}

	if err := n.client.MarkAllRead(ctx, unread); err != nil {
		return err
	}

	n.Patch(func(item *subchain.Notification) {
		item.IsRead = true
	})

	return nil
}

// Delete removes a notification and drops it from the snapshot.
func (n *Notifications) Delete(ctx context.Context, id int64) error {
	return n.Remove(ctx, id, func(ctx context.Context) error {
		return n.client.Delete(ctx, id)
	})
}
