package recruitment

import "time"

type OpeningStatus string

const (
	OpeningStatusOpen   OpeningStatus = "open"
	OpeningStatusClosed OpeningStatus = "closed"
)

var OpeningStatusValues = []string{string(OpeningStatusOpen), string(OpeningStatusClosed)}

type JobOpening struct {
	ID           string
	Title        string
	DepartmentID string
	PositionID   *string
	Quantity     int
	Description  *string
	Status       OpeningStatus
	Deadline     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageInterview Stage = "interview"
	StageOffered   Stage = "offered"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

var StageValues = []string{
	string(StageApplied),
	string(StageScreening),
	string(StageInterview),
	string(StageOffered),
	string(StageHired),
	string(StageRejected),
}

type Candidate struct {
	ID           string
	JobOpeningID string
	FullName     string
	Email        string
	PhoneNumber  *string
	Stage        Stage
	AppliedDate  time.Time
	Note         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
