package timekeeping

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

// ========================================
// TIME ENTRY DTOs
// ========================================

type CreateTimeEntryRequest struct {
	EmployeeID  string  `json:"employee_id"`
	WorkShiftID *string `json:"work_shift_id,omitempty"`
	Date        string  `json:"date"`
	CheckIn     *string `json:"check_in,omitempty"`
	CheckOut    *string `json:"check_out,omitempty"`
	Note        *string `json:"note,omitempty"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date is required and must be in YYYY-MM-DD format")
	}
	if r.CheckIn != nil && !utils.IsValidClock(*r.CheckIn) {
		errs.Add("check_in", "check_in must be in HH:MM format")
	}
	if r.CheckOut != nil && !utils.IsValidClock(*r.CheckOut) {
		errs.Add("check_out", "check_out must be in HH:MM format")
	}
	if r.CheckIn == nil && r.CheckOut != nil {
		errs.Add("check_in", "check_in is required when check_out is set")
	}

	return errs.Err()
}

func (r *CreateTimeEntryRequest) ToEntity() TimeEntry {
	e := TimeEntry{
		EmployeeID:  r.EmployeeID,
		WorkShiftID: r.WorkShiftID,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Source:      SourceManual,
		Note:        r.Note,
	}
	e.Date, _ = utils.ParseDate(r.Date)
	return e
}

type UpdateTimeEntryRequest struct {
	ID          string  `json:"-"`
	WorkShiftID *string `json:"work_shift_id,omitempty"`
	CheckIn     *string `json:"check_in,omitempty"`
	CheckOut    *string `json:"check_out,omitempty"`
	Note        *string `json:"note,omitempty"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.CheckIn != nil && !utils.IsValidClock(*r.CheckIn) {
		errs.Add("check_in", "check_in must be in HH:MM format")
	}
	if r.CheckOut != nil && !utils.IsValidClock(*r.CheckOut) {
		errs.Add("check_out", "check_out must be in HH:MM format")
	}

	return errs.Err()
}

func (r *UpdateTimeEntryRequest) Apply(e *TimeEntry) {
	if r.WorkShiftID != nil {
		e.WorkShiftID = r.WorkShiftID
	}
	if r.CheckIn != nil {
		e.CheckIn = r.CheckIn
	}
	if r.CheckOut != nil {
		e.CheckOut = r.CheckOut
	}
	if r.Note != nil {
		e.Note = r.Note
	}
}

type TimeEntryResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	WorkShiftID *string   `json:"work_shift_id,omitempty"`
	Date        string    `json:"date"`
	CheckIn     *string   `json:"check_in,omitempty"`
	CheckOut    *string   `json:"check_out,omitempty"`
	Hours       *float64  `json:"hours,omitempty"`
	Source      string    `json:"source"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToTimeEntryResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		WorkShiftID: e.WorkShiftID,
		Date:        e.Date.Format(utils.DateLayout),
		CheckIn:     e.CheckIn,
		CheckOut:    e.CheckOut,
		Hours:       e.Hours,
		Source:      string(e.Source),
		Note:        e.Note,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ========================================
// DEVICE DTOs
// ========================================

type CreateDeviceRequest struct {
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number"`
	Location     *string `json:"location,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
	Status       string  `json:"status,omitempty"`
}

func (r *CreateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if validator.IsEmpty(r.SerialNumber) {
		errs.Add("serial_number", "serial_number is required")
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, DeviceStatusValues) {
		errs.Add("status", "status must be one of: active, inactive")
	}

	return errs.Err()
}

func (r *CreateDeviceRequest) ToEntity() TimekeepingDevice {
	d := TimekeepingDevice{
		Name:         strings.TrimSpace(r.Name),
		SerialNumber: strings.TrimSpace(r.SerialNumber),
		Location:     r.Location,
		IPAddress:    r.IPAddress,
		Status:       DeviceStatusActive,
	}
	if r.Status != "" {
		d.Status = DeviceStatus(r.Status)
	}
	return d
}

type UpdateDeviceRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Location     *string `json:"location,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.SerialNumber != nil && validator.IsEmpty(*r.SerialNumber) {
		errs.Add("serial_number", "serial_number must not be empty")
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, DeviceStatusValues) {
		errs.Add("status", "status must be one of: active, inactive")
	}

	return errs.Err()
}

func (r *UpdateDeviceRequest) Apply(d *TimekeepingDevice) {
	if r.Name != nil {
		d.Name = strings.TrimSpace(*r.Name)
	}
	if r.SerialNumber != nil {
		d.SerialNumber = strings.TrimSpace(*r.SerialNumber)
	}
	if r.Location != nil {
		d.Location = r.Location
	}
	if r.IPAddress != nil {
		d.IPAddress = r.IPAddress
	}
	if r.Status != nil {
		d.Status = DeviceStatus(*r.Status)
	}
}

type DeviceResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number"`
	Location     *string `json:"location,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
	Status       string  `json:"status"`
}

func ToDeviceResponse(d TimekeepingDevice) DeviceResponse {
	return DeviceResponse{
		ID:           d.ID,
		Name:         d.Name,
		SerialNumber: d.SerialNumber,
		Location:     d.Location,
		IPAddress:    d.IPAddress,
		Status:       string(d.Status),
	}
}

// ========================================
// RAW PUNCH DTOs
// ========================================

type RawPunch struct {
	EmployeeCode string `json:"employee_code"`
	PunchedAt    string `json:"punched_at"` // RFC3339
}

type IngestRawDataRequest struct {
	DeviceID string     `json:"device_id"`
	Punches  []RawPunch `json:"punches"`
}

func (r *IngestRawDataRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceID) {
		errs.Add("device_id", "device_id is required")
	}
	if len(r.Punches) == 0 {
		errs.Add("punches", "at least one punch is required")
	}
	for _, p := range r.Punches {
		if validator.IsEmpty(p.EmployeeCode) {
			errs.Add("punches", "employee_code is required for every punch")
			break
		}
		if _, ok := validator.IsValidDateTime(p.PunchedAt); !ok {
			errs.Add("punches", "punched_at must be an RFC3339 timestamp")
			break
		}
	}

	return errs.Err()
}

type RawTimeDataResponse struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"device_id"`
	EmployeeCode string    `json:"employee_code"`
	PunchedAt    time.Time `json:"punched_at"`
	Processed    bool      `json:"processed"`
}

func ToRawTimeDataResponse(raw RawTimeData) RawTimeDataResponse {
	return RawTimeDataResponse{
		ID:           raw.ID,
		DeviceID:     raw.DeviceID,
		EmployeeCode: raw.EmployeeCode,
		PunchedAt:    raw.PunchedAt,
		Processed:    raw.Processed,
	}
}

// ProcessResult summarises one ProcessRawData run.
type ProcessResult struct {
	Processed      int      `json:"processed"`
	EntriesCreated int      `json:"entries_created"`
	EntriesUpdated int      `json:"entries_updated"`
	Skipped        int      `json:"skipped"`
	UnknownCodes   []string `json:"unknown_codes,omitempty"`
}
