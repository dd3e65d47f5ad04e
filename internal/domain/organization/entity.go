package organization

import "time"

type Organization struct {
	ID        string
	Name      string
	Code      string
	Address   *string
	Phone     *string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Department struct {
	ID             string
	OrganizationID string
	Name           string
	Code           string
	ManagerID      *string
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
