package notification

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     notification.Service
	hub     *sse.Hub
	admin   user.User
	manager user.User
	staff   user.User
}

func setup(t *testing.T, cfg Config) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)

	create := func(email string, role user.Role, employeeID string) user.User {
		u, err := userRepo.Create(ctx, user.User{Email: email, PasswordHash: "x", Role: role, EmployeeID: &employeeID})
		require.NoError(t, err)
		return u
	}

	hub := sse.NewHub()
	svc := NewNotificationService(memory.NewNotificationRepository(store), userRepo, hub, cfg)
	t.Cleanup(svc.Stop)

	return fixture{
		svc:     svc,
		hub:     hub,
		admin:   create("admin@hris.local", user.RoleAdmin, "emp-admin"),
		manager: create("manager@hris.local", user.RoleManager, "emp-manager"),
		staff:   create("staff@hris.local", user.RoleEmployee, "emp-staff"),
	}
}

func approved() notification.CreateNotificationRequest {
	return notification.CreateNotificationRequest{
		Type:    notification.WorkflowType(notification.SubjectLeave, workflow.StatusApproved),
		Title:   "Leave approved",
		Message: "Your leave was approved",
		Data:    map[string]interface{}{"leave_id": "l1"},
	}
}

func TestNotifyEmployee_StoredAndStreamed(t *testing.T) {
	f := setup(t, Config{FlushInterval: 10 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := f.svc.Subscribe(ctx, f.staff.ID)
	defer cleanup()

	f.svc.NotifyEmployee(ctx, "emp-staff", approved())

	select {
	case ev := <-events:
		assert.Equal(t, "leave.approved", ev.Event)
		assert.Equal(t, "Leave approved", ev.Data.Title)
		assert.NotEmpty(t, ev.Data.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not streamed")
	}

	list, err := f.svc.GetNotifications(ctx, f.staff.ID, 1, 20, false)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.UnreadCount)

	others, err := f.svc.GetNotifications(ctx, f.admin.ID, 1, 20, false)
	require.NoError(t, err)
	assert.Zero(t, others.Total)
}

func TestNotifyRoles_FansOut(t *testing.T) {
	f := setup(t, Config{FlushInterval: time.Hour})
	ctx := context.Background()

	f.svc.NotifyRoles(ctx, []user.Role{user.RoleAdmin, user.RoleManager}, approved())
	f.svc.Stop()

	for _, u := range []user.User{f.admin, f.manager} {
		count, err := f.svc.GetUnreadCount(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count, u.Email)
	}
	count, err := f.svc.GetUnreadCount(ctx, f.staff.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQueueFull_FallsBackToDirectInsert(t *testing.T) {
	f := setup(t, Config{QueueSize: 1, WorkerCount: 1, FlushInterval: time.Hour, BatchSize: 100})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		req := approved()
		req.RecipientID = f.staff.ID
		require.NoError(t, f.svc.QueueNotification(ctx, req))
	}
	f.svc.Stop()

	count, err := f.svc.GetUnreadCount(ctx, f.staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestMarkAsRead(t *testing.T) {
	f := setup(t, Config{FlushInterval: time.Hour})
	ctx := context.Background()

	f.svc.NotifyEmployee(ctx, "emp-staff", approved())
	f.svc.NotifyEmployee(ctx, "emp-staff", approved())
	f.svc.NotifyEmployee(ctx, "emp-admin", approved())
	f.svc.Stop()

	list, err := f.svc.GetNotifications(ctx, f.staff.ID, 1, 20, false)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)

	adminList, err := f.svc.GetNotifications(ctx, f.admin.ID, 1, 20, false)
	require.NoError(t, err)
	require.Len(t, adminList.Notifications, 1)

	// the admin's id is ignored for the staff account
	err = f.svc.MarkAsRead(ctx, f.staff.ID, notification.MarkAsReadRequest{
		NotificationIDs: []string{list.Notifications[0].ID, adminList.Notifications[0].ID},
	})
	require.NoError(t, err)

	count, _ := f.svc.GetUnreadCount(ctx, f.staff.ID)
	assert.Equal(t, 1, count)
	count, _ = f.svc.GetUnreadCount(ctx, f.admin.ID)
	assert.Equal(t, 1, count)

	require.NoError(t, f.svc.MarkAllAsRead(ctx, f.staff.ID))
	unread, err := f.svc.GetNotifications(ctx, f.staff.ID, 1, 20, true)
	require.NoError(t, err)
	assert.Empty(t, unread.Notifications)
}
