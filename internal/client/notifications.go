package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// markAllConcurrency bounds the per-notification fallback fan-out.
const markAllConcurrency = 4

// NotificationsClient implements subchain.NotificationsClient.
type NotificationsClient struct {
	httpClient *http.Client
}

// NewNotificationsClient creates a new notifications client.
func NewNotificationsClient(httpClient *http.Client) *NotificationsClient {
	return &NotificationsClient{httpClient: httpClient}
}

// List implements subchain.NotificationsClient.List.
func (c *NotificationsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Notification], error) {
	resp, err := c.httpClient.Get(ctx, "/api/notifications/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	return decodeList[subchain.Notification](resp)
}

// MarkRead implements subchain.NotificationsClient.MarkRead.
func (c *NotificationsClient) MarkRead(ctx context.Context, id int64) (*subchain.Notification, error) {
	path := fmt.Sprintf("/api/notifications/%d/", id)
	read := true

	resp, err := c.httpClient.Patch(ctx, path, &subchain.NotificationUpdateRequest{IsRead: &read})
	if err != nil {
		return nil, fmt.Errorf("marking notification read: %w", err)
	}

	return decode[subchain.Notification](resp)
}

// Delete implements subchain.NotificationsClient.Delete.
func (c *NotificationsClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/notifications/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting notification: %w", err)
	}

	return nil
}

// MarkAllRead implements subchain.NotificationsClient.MarkAllRead. The bulk
// endpoint is preferred; a 404 means this deployment does not ship it, in
// which case each unread notification is marked individually with bounded
// concurrency. The fallback is a compatibility shim, not an error path.
func (c *NotificationsClient) MarkAllRead(ctx context.Context, unreadIDs []int64) error {
	_, err := c.httpClient.Post(ctx, "/api/notifications/mark-all-read/", nil)
	if err == nil {
		return nil
	}

	if !subchain.IsNotFound(err) {
		return fmt.Errorf("marking all notifications read: %w", err)
	}

	var (
		waitGroup sync.WaitGroup
		mutex     sync.Mutex
		firstErr  error
	)

	semaphore := make(chan struct{}, markAllConcurrency)

	for _, id := range unreadIDs {
		waitGroup.Add(1)

		go func(id int64) {
			defer waitGroup.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if _, err := c.MarkRead(ctx, id); err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mutex.Unlock()
			}
		}(id)
	}

	waitGroup.Wait()

	return firstErr
}

// Send implements subchain.NotificationsClient.Send.
func (c *NotificationsClient) Send(ctx context.Context, request *subchain.SendNotificationRequest) error {
	_, err := c.httpClient.Post(ctx, "/api/notifications/send-notification/", request)
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	return nil
}
