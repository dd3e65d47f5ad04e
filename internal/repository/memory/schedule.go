package memory

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/schedule"
)

type workShiftRepositoryImpl struct {
	*crud[schedule.WorkShift]
}

func NewWorkShiftRepository(store *Store) schedule.WorkShiftRepository {
	return &workShiftRepositoryImpl{&crud[schedule.WorkShift]{
		store: store,
		table: store.workShifts,
		id:    func(s schedule.WorkShift) string { return s.ID },
		assign: func(s *schedule.WorkShift, id string, now time.Time) {
			s.ID, s.CreatedAt, s.UpdatedAt = id, now, now
		},
		touch: func(s *schedule.WorkShift, old schedule.WorkShift, now time.Time) {
			s.CreatedAt, s.UpdatedAt = old.CreatedAt, now
		},
		notFound: schedule.ErrWorkShiftNotFound,
	}}
}
