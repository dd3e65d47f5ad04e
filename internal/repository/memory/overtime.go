package memory

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/overtime"
)

type overtimeTypeRepositoryImpl struct {
	*crud[overtime.OvertimeType]
}

func NewOvertimeTypeRepository(store *Store) overtime.OvertimeTypeRepository {
	return &overtimeTypeRepositoryImpl{&crud[overtime.OvertimeType]{
		store: store,
		table: store.overtimeTypes,
		id:    func(t overtime.OvertimeType) string { return t.ID },
		assign: func(t *overtime.OvertimeType, id string, now time.Time) {
			t.ID, t.CreatedAt, t.UpdatedAt = id, now, now
		},
		touch: func(t *overtime.OvertimeType, old overtime.OvertimeType, now time.Time) {
			t.CreatedAt, t.UpdatedAt = old.CreatedAt, now
		},
		notFound: overtime.ErrOvertimeTypeNotFound,
	}}
}

type overtimeRepositoryImpl struct {
	*crud[overtime.Overtime]
}

func NewOvertimeRepository(store *Store) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{&crud[overtime.Overtime]{
		store: store,
		table: store.overtimes,
		id:    func(o overtime.Overtime) string { return o.ID },
		assign: func(o *overtime.Overtime, id string, now time.Time) {
			o.ID, o.CreatedAt, o.UpdatedAt = id, now, now
		},
		touch: func(o *overtime.Overtime, old overtime.Overtime, now time.Time) {
			o.CreatedAt, o.UpdatedAt = old.CreatedAt, now
		},
		notFound: overtime.ErrOvertimeNotFound,
	}}
}
