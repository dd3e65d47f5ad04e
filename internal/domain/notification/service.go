package notification

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
)

// Publisher is what the request workflows need to tell people about decisions.
// Failures are logged by the implementation and never fail the caller.
type Publisher interface {
	NotifyEmployee(ctx context.Context, employeeID string, req CreateNotificationRequest)
	NotifyRoles(ctx context.Context, roles []user.Role, req CreateNotificationRequest)
}

// Discard drops every notification.
var Discard Publisher = discard{}

type discard struct{}

func (discard) NotifyEmployee(context.Context, string, CreateNotificationRequest) {}

func (discard) NotifyRoles(context.Context, []user.Role, CreateNotificationRequest) {}

// Service defines the notification service interface
type Service interface {
	Publisher

	// Queue notification (async processing via background workers)
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error

	GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, userID string, req MarkAsReadRequest) error
	MarkAllAsRead(ctx context.Context, userID string) error

	// SSE subscription
	Subscribe(ctx context.Context, userID string) (<-chan SSEEvent, func())

	// Lifecycle
	Stop()
}
