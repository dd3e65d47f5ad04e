package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
)

type notificationRepositoryImpl struct {
	store *Store
}

func NewNotificationRepository(store *Store) notification.Repository {
	return &notificationRepositoryImpl{store: store}
}

// Create implements notification.Repository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	return r.CreateBatch(ctx, []*notification.Notification{n})
}

// CreateBatch stores the notifications, assigning ids and creation time when missing.
func (r *notificationRepositoryImpl) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	unlock := r.store.write(ctx)
	defer unlock()

	for _, n := range notifications {
		if n.ID == "" {
			n.ID = newID()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = r.store.timestamp()
		}
		r.store.notifications.insert(n.ID, *n)
	}
	return nil
}

// GetByUserID returns one page of the user's notifications, newest first, with the total.
func (r *notificationRepositoryImpl) GetByUserID(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error) {
	unlock := r.store.read(ctx)
	defer unlock()

	rows := r.store.notifications.filter(func(n notification.Notification) bool {
		return n.RecipientID == userID && (!unreadOnly || !n.IsRead)
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	total := len(rows)
	offset := (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	result := make([]*notification.Notification, 0, end-offset)
	for i := offset; i < end; i++ {
		n := rows[i]
		result = append(result, &n)
	}
	return result, total, nil
}

// GetUnreadCount implements notification.Repository.
func (r *notificationRepositoryImpl) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	unlock := r.store.read(ctx)
	defer unlock()

	return len(r.store.notifications.filter(func(n notification.Notification) bool {
		return n.RecipientID == userID && !n.IsRead
	})), nil
}

// MarkAsRead only touches notifications owned by userID.
func (r *notificationRepositoryImpl) MarkAsRead(ctx context.Context, ids []string, userID string) (int, error) {
	unlock := r.store.write(ctx)
	defer unlock()

	marked := 0
	now := r.store.timestamp()
	for _, id := range ids {
		n, ok := r.store.notifications.get(id)
		if !ok || n.RecipientID != userID || n.IsRead {
			continue
		}
		n.IsRead = true
		n.ReadAt = &now
		r.store.notifications.replace(id, n)
		marked++
	}
	return marked, nil
}

// MarkAllAsRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkAllAsRead(ctx context.Context, userID string) (int, error) {
	unlock := r.store.write(ctx)
	defer unlock()

	marked := 0
	now := r.store.timestamp()
	for _, n := range r.store.notifications.filter(func(n notification.Notification) bool {
		return n.RecipientID == userID && !n.IsRead
	}) {
		n.IsRead = true
		n.ReadAt = &now
		r.store.notifications.replace(n.ID, n)
		marked++
	}
	return marked, nil
}
