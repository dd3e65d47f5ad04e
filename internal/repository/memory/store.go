package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/timekeeping"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/google/uuid"
)

// Store is the application state. It is created once by main and handed to every
// repository constructor; nothing in it survives a restart.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	employees           *table[employee.Employee]
	departmentMembers   []employee.DepartmentMembership
	positionAssignments []employee.PositionAssignment

	organizations *table[organization.Organization]
	departments   *table[organization.Department]
	positions     *table[position.Position]

	leaveTypes    *table[leave.LeaveType]
	leaves        *table[leave.Leave]
	overtimeTypes *table[overtime.OvertimeType]
	overtimes     *table[overtime.Overtime]
	workReports   *table[report.WorkReport]

	timeEntries *table[timekeeping.TimeEntry]
	devices     *table[timekeeping.TimekeepingDevice]
	rawTimeData *table[timekeeping.RawTimeData]
	workShifts  *table[schedule.WorkShift]

	jobOpenings *table[recruitment.JobOpening]
	candidates  *table[recruitment.Candidate]

	users         *table[user.User]
	notifications *table[notification.Notification]
}

func NewStore() *Store {
	return &Store{
		now:           time.Now,
		employees:     newTable[employee.Employee](),
		organizations: newTable[organization.Organization](),
		departments:   newTable[organization.Department](),
		positions:     newTable[position.Position](),
		leaveTypes:    newTable[leave.LeaveType](),
		leaves:        newTable[leave.Leave](),
		overtimeTypes: newTable[overtime.OvertimeType](),
		overtimes:     newTable[overtime.Overtime](),
		workReports:   newTable[report.WorkReport](),
		timeEntries:   newTable[timekeeping.TimeEntry](),
		devices:       newTable[timekeeping.TimekeepingDevice](),
		rawTimeData:   newTable[timekeeping.RawTimeData](),
		workShifts:    newTable[schedule.WorkShift](),
		jobOpenings:   newTable[recruitment.JobOpening](),
		candidates:    newTable[recruitment.Candidate](),
		users:         newTable[user.User](),
		notifications: newTable[notification.Notification](),
	}
}

// WithClock replaces the time source used for created/updated timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

type txKey struct{}

// WithTransaction executes fn while holding the store's write lock. Repositories called
// with the ctx handed to fn see the lock as already held, so a read followed by a write
// inside fn is atomic with respect to other requests.
func WithTransaction(ctx context.Context, s *Store, fn func(ctx context.Context) error) error {
	if inTransaction(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}

func inTransaction(ctx context.Context) bool {
	held, _ := ctx.Value(txKey{}).(bool)
	return held
}

// read acquires the shared lock unless ctx already runs inside WithTransaction.
func (s *Store) read(ctx context.Context) func() {
	if inTransaction(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) write(ctx context.Context) func() {
	if inTransaction(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// table keeps rows in insertion order. Callers hold the store lock.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, row T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) get(id string) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) replace(id string, row T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) filter(keep func(T) bool) []T {
	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			result = append(result, row)
		}
	}
	return result
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}
