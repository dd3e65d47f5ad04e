package memory

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
)

type positionRepositoryImpl struct {
	*crud[position.Position]
}

func NewPositionRepository(store *Store) position.PositionRepository {
	return &positionRepositoryImpl{&crud[position.Position]{
		store: store,
		table: store.positions,
		id:    func(p position.Position) string { return p.ID },
		assign: func(p *position.Position, id string, now time.Time) {
			p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
		},
		touch: func(p *position.Position, old position.Position, now time.Time) {
			p.CreatedAt, p.UpdatedAt = old.CreatedAt, now
		},
		notFound: position.ErrPositionNotFound,
	}}
}
