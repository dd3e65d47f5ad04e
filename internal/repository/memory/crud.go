package memory

import (
	"context"
	"time"
)

// crud implements the Create/GetByID/List/Update/Delete contract shared by every entity
// repository. The accessors bridge the generic table to the entity's id and timestamp fields.
type crud[T any] struct {
	store    *Store
	table    *table[T]
	id       func(T) string
	assign   func(row *T, id string, now time.Time)
	touch    func(row *T, old T, now time.Time)
	notFound error
}

// Create assigns a fresh id and timestamps, then appends the row.
func (c *crud[T]) Create(ctx context.Context, row T) (T, error) {
	unlock := c.store.write(ctx)
	defer unlock()

	c.assign(&row, newID(), c.store.timestamp())
	c.table.insert(c.id(row), row)
	return row, nil
}

func (c *crud[T]) GetByID(ctx context.Context, id string) (T, error) {
	unlock := c.store.read(ctx)
	defer unlock()

	row, ok := c.table.get(id)
	if !ok {
		var zero T
		return zero, c.notFound
	}
	return row, nil
}

// List returns every row in insertion order.
func (c *crud[T]) List(ctx context.Context) ([]T, error) {
	unlock := c.store.read(ctx)
	defer unlock()

	return c.table.filter(nil), nil
}

// Update replaces the stored row with the same id. It reports false and leaves the
// store untouched when no such row exists.
func (c *crud[T]) Update(ctx context.Context, row T) (bool, error) {
	unlock := c.store.write(ctx)
	defer unlock()

	old, ok := c.table.get(c.id(row))
	if !ok {
		return false, nil
	}
	c.touch(&row, old, c.store.timestamp())
	return c.table.replace(c.id(row), row), nil
}

// Delete removes the row by id without cascading.
func (c *crud[T]) Delete(ctx context.Context, id string) (bool, error) {
	unlock := c.store.write(ctx)
	defer unlock()

	return c.table.remove(id), nil
}

func (c *crud[T]) where(ctx context.Context, keep func(T) bool) []T {
	unlock := c.store.read(ctx)
	defer unlock()

	return c.table.filter(keep)
}

func (c *crud[T]) first(ctx context.Context, match func(T) bool) (T, bool) {
	unlock := c.store.read(ctx)
	defer unlock()

	return c.table.find(match)
}
