package position

import "time"

type Position struct {
	ID          string
	Name        string
	Code        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
