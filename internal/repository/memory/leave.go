package memory

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
)

type leaveTypeRepositoryImpl struct {
	*crud[leave.LeaveType]
}

func NewLeaveTypeRepository(store *Store) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{&crud[leave.LeaveType]{
		store: store,
		table: store.leaveTypes,
		id:    func(t leave.LeaveType) string { return t.ID },
		assign: func(t *leave.LeaveType, id string, now time.Time) {
			t.ID, t.CreatedAt, t.UpdatedAt = id, now, now
		},
		touch: func(t *leave.LeaveType, old leave.LeaveType, now time.Time) {
			t.CreatedAt, t.UpdatedAt = old.CreatedAt, now
		},
		notFound: leave.ErrLeaveTypeNotFound,
	}}
}

type leaveRepositoryImpl struct {
	*crud[leave.Leave]
}

func NewLeaveRepository(store *Store) leave.LeaveRepository {
	return &leaveRepositoryImpl{&crud[leave.Leave]{
		store: store,
		table: store.leaves,
		id:    func(l leave.Leave) string { return l.ID },
		assign: func(l *leave.Leave, id string, now time.Time) {
			l.ID, l.CreatedAt, l.UpdatedAt = id, now, now
		},
		touch: func(l *leave.Leave, old leave.Leave, now time.Time) {
			l.CreatedAt, l.UpdatedAt = old.CreatedAt, now
		},
		notFound: leave.ErrLeaveNotFound,
	}}
}
