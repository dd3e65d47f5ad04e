package timekeeping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/filter"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/timekeeping"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
)

const clockLayout = "15:04"

// DepartmentMembers resolves the employees of a department.
type DepartmentMembers interface {
	DepartmentEmployeeIDs(ctx context.Context, departmentID string) (map[string]struct{}, error)
}

type TimekeepingServiceImpl struct {
	store *memory.Store
	timekeeping.TimeEntryRepository
	timekeeping.DeviceRepository
	timekeeping.RawTimeDataRepository
	employee.EmployeeRepository
	schedule.WorkShiftRepository
	members  DepartmentMembers
	notifier notification.Publisher
}

func NewTimekeepingService(
	store *memory.Store,
	entryRepo timekeeping.TimeEntryRepository,
	deviceRepo timekeeping.DeviceRepository,
	rawRepo timekeeping.RawTimeDataRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo schedule.WorkShiftRepository,
	members DepartmentMembers,
	notifier notification.Publisher,
) *TimekeepingServiceImpl {
	if notifier == nil {
		notifier = notification.Discard
	}
	return &TimekeepingServiceImpl{
		store:                 store,
		TimeEntryRepository:   entryRepo,
		DeviceRepository:      deviceRepo,
		RawTimeDataRepository: rawRepo,
		EmployeeRepository:    employeeRepo,
		WorkShiftRepository:   shiftRepo,
		members:               members,
		notifier:              notifier,
	}
}

// CreateTimeEntry implements timekeeping.TimekeepingService.
func (s *TimekeepingServiceImpl) CreateTimeEntry(ctx context.Context, req timekeeping.CreateTimeEntryRequest) (timekeeping.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timekeeping.TimeEntryResponse{}, err
	}

	entry := req.ToEntity()
	if err := entry.Recalculate(); err != nil {
		return timekeeping.TimeEntryResponse{}, err
	}

	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if _, err := s.EmployeeRepository.GetByID(ctx, entry.EmployeeID); err != nil {
			return err
		}
		if entry.WorkShiftID != nil {
			if _, err := s.WorkShiftRepository.GetByID(ctx, *entry.WorkShiftID); err != nil {
				return err
			}
		}
		_, exists, err := s.TimeEntryRepository.FindByEmployeeDate(ctx, entry.EmployeeID, entry.Date)
		if err != nil {
			return fmt.Errorf("failed to look up time entry: %w", err)
		}
		if exists {
			return timekeeping.ErrTimeEntryExists
		}
		entry, err = s.TimeEntryRepository.Create(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to create time entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return timekeeping.TimeEntryResponse{}, err
	}
	return timekeeping.ToTimeEntryResponse(entry), nil
}

// ListTimeEntries filters on the entry date; the department predicate goes through memberships.
func (s *TimekeepingServiceImpl) ListTimeEntries(ctx context.Context, criteria filter.Criteria) ([]timekeeping.TimeEntryResponse, error) {
	var members map[string]struct{}
	if criteria.DepartmentID != nil {
		var err error
		members, err = s.members.DepartmentEmployeeIDs(ctx, *criteria.DepartmentID)
		if err != nil {
			return nil, err
		}
	}

	entries, err := s.TimeEntryRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]timekeeping.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		if criteria.MatchMembers(e.Date, e.EmployeeID, members) {
			responses = append(responses, timekeeping.ToTimeEntryResponse(e))
		}
	}
	return responses, nil
}

// UpdateTimeEntry implements timekeeping.TimekeepingService.
func (s *TimekeepingServiceImpl) UpdateTimeEntry(ctx context.Context, req timekeeping.UpdateTimeEntryRequest) (timekeeping.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timekeeping.TimeEntryResponse{}, err
	}

	var updated timekeeping.TimeEntry
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		entry, err := s.TimeEntryRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&entry)
		if entry.WorkShiftID != nil {
			if _, err := s.WorkShiftRepository.GetByID(ctx, *entry.WorkShiftID); err != nil {
				return err
			}
		}
		if err := entry.Recalculate(); err != nil {
			return err
		}
		found, err := s.TimeEntryRepository.Update(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to update time entry: %w", err)
		}
		if !found {
			return timekeeping.ErrTimeEntryNotFound
		}
		updated, err = s.TimeEntryRepository.GetByID(ctx, entry.ID)
		return err
	})
	if err != nil {
		return timekeeping.TimeEntryResponse{}, err
	}
	return timekeeping.ToTimeEntryResponse(updated), nil
}

// DeleteTimeEntry implements timekeeping.TimekeepingService.
func (s *TimekeepingServiceImpl) DeleteTimeEntry(ctx context.Context, id string) error {
	if _, err := s.TimeEntryRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

// CreateDevice implements timekeeping.TimekeepingService.
func (s *TimekeepingServiceImpl) CreateDevice(ctx context.Context, req timekeeping.CreateDeviceRequest) (timekeeping.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return timekeeping.DeviceResponse{}, err
	}

	device := req.ToEntity()
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if err := s.checkSerial(ctx, device.ID, device.SerialNumber); err != nil {
			return err
		}
		var err error
		device, err = s.DeviceRepository.Create(ctx, device)
		if err != nil {
			return fmt.Errorf("failed to create device: %w", err)
		}
		return nil
	})
	if err != nil {
		return timekeeping.DeviceResponse{}, err
	}

	slog.Info("Timekeeping device registered", "device_id", device.ID, "serial_number", device.SerialNumber)
	return timekeeping.ToDeviceResponse(device), nil
}

// ListDevices implements timekeeping.TimekeepingService.
func (s *TimekeepingServiceImpl) ListDevices(ctx context.Context) ([]timekeeping.DeviceResponse, error) {
	devices, err := s.DeviceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	responses := make([]timekeeping.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		responses = append(responses, timekeeping.ToDeviceResponse(d))
	}
	return responses, nil
}

// UpdateDevice implements timekeeping.TimekeepingService.
func (s *TimekeepingServiceImpl) UpdateDevice(ctx context.Context, req timekeeping.UpdateDeviceRequest) (timekeeping.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return timekeeping.DeviceResponse{}, err
	}

	var updated timekeeping.TimekeepingDevice
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		device, err := s.DeviceRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&device)
		if err := s.checkSerial(ctx, device.ID, device.SerialNumber); err != nil {
			return err
		}
		found, err := s.DeviceRepository.Update(ctx, device)
		if err != nil {
			return fmt.Errorf("failed to update device: %w", err)
		}
		if !found {
			return timekeeping.ErrDeviceNotFound
		}
		updated, err = s.DeviceRepository.GetByID(ctx, device.ID)
		return err
	})
	if err != nil {
		return timekeeping.DeviceResponse{}, err
	}
	return timekeeping.ToDeviceResponse(updated), nil
}

// DeleteDevice implements timekeeping.TimekeepingService.
func (s *TimekeepingServiceImpl) DeleteDevice(ctx context.Context, id string) error {
	if _, err := s.DeviceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	return nil
}

func (s *TimekeepingServiceImpl) checkSerial(ctx context.Context, excludeID, serial string) error {
	devices, err := s.DeviceRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}
	for _, d := range devices {
		if d.ID != excludeID && strings.EqualFold(d.SerialNumber, serial) {
			return timekeeping.ErrDeviceSerialExists
		}
	}
	return nil
}

// IngestRawData stores punches read from an active device.
func (s *TimekeepingServiceImpl) IngestRawData(ctx context.Context, req timekeeping.IngestRawDataRequest) ([]timekeeping.RawTimeDataResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses := make([]timekeeping.RawTimeDataResponse, 0, len(req.Punches))
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		device, err := s.DeviceRepository.GetByID(ctx, req.DeviceID)
		if err != nil {
			return err
		}
		if device.Status != timekeeping.DeviceStatusActive {
			return timekeeping.ErrDeviceInactive
		}
		for _, p := range req.Punches {
			punchedAt, err := time.Parse(time.RFC3339, p.PunchedAt)
			if err != nil {
				return fmt.Errorf("failed to parse punched_at: %w", err)
			}
			raw, err := s.RawTimeDataRepository.Create(ctx, timekeeping.RawTimeData{
				DeviceID:     device.ID,
				EmployeeCode: strings.TrimSpace(p.EmployeeCode),
				PunchedAt:    punchedAt.UTC(),
			})
			if err != nil {
				return fmt.Errorf("failed to store raw punch: %w", err)
			}
			responses = append(responses, timekeeping.ToRawTimeDataResponse(raw))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Raw punches ingested", "device_id", req.DeviceID, "count", len(responses))
	return responses, nil
}

// ListRawData implements timekeeping.TimekeepingService.
func (s *TimekeepingServiceImpl) ListRawData(ctx context.Context, processed *bool) ([]timekeeping.RawTimeDataResponse, error) {
	rows, err := s.RawTimeDataRepository.List(ctx, processed)
	if err != nil {
		return nil, fmt.Errorf("failed to list raw punches: %w", err)
	}
	responses := make([]timekeeping.RawTimeDataResponse, 0, len(rows))
	for _, raw := range rows {
		responses = append(responses, timekeeping.ToRawTimeDataResponse(raw))
	}
	return responses, nil
}

type punchKey struct {
	employeeCode string
	date         time.Time
}

type punchGroup struct {
	employeeID string
	ids        []string
	clocks     []string
}

// ProcessRawData groups unprocessed punches per employee code and UTC date, then folds each
// group into a device-sourced time entry: earliest clock is the check-in, latest the check-out.
// Punches with an unknown employee code stay unprocessed.
func (s *TimekeepingServiceImpl) ProcessRawData(ctx context.Context) (timekeeping.ProcessResult, error) {
	var result timekeeping.ProcessResult

	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		unprocessed := false
		rows, err := s.RawTimeDataRepository.List(ctx, &unprocessed)
		if err != nil {
			return fmt.Errorf("failed to list raw punches: %w", err)
		}

		groups := make(map[punchKey]*punchGroup)
		var order []punchKey
		unknown := make(map[string]struct{})
		for _, raw := range rows {
			emp, err := s.EmployeeRepository.GetByEmployeeCode(ctx, raw.EmployeeCode)
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				if _, seen := unknown[raw.EmployeeCode]; !seen {
					unknown[raw.EmployeeCode] = struct{}{}
					result.UnknownCodes = append(result.UnknownCodes, raw.EmployeeCode)
				}
				result.Skipped++
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to resolve employee code: %w", err)
			}

			at := raw.PunchedAt.UTC()
			key := punchKey{employeeCode: strings.ToUpper(raw.EmployeeCode), date: utils.StartOfDay(at)}
			g, ok := groups[key]
			if !ok {
				g = &punchGroup{employeeID: emp.ID}
				groups[key] = g
				order = append(order, key)
			}
			g.ids = append(g.ids, raw.ID)
			g.clocks = append(g.clocks, at.Format(clockLayout))
		}

		for _, key := range order {
			g := groups[key]
			created, err := s.foldPunches(ctx, g.employeeID, key.date, g.clocks)
			if err != nil {
				return err
			}
			if created {
				result.EntriesCreated++
			} else {
				result.EntriesUpdated++
			}
			marked, err := s.RawTimeDataRepository.MarkProcessed(ctx, g.ids)
			if err != nil {
				return fmt.Errorf("failed to mark punches processed: %w", err)
			}
			result.Processed += marked
		}
		return nil
	})
	if err != nil {
		return timekeeping.ProcessResult{}, err
	}

	if len(result.UnknownCodes) > 0 {
		slog.Warn("Raw punches with unknown employee codes left unprocessed", "codes", result.UnknownCodes, "skipped", result.Skipped)
	}
	if result.Processed == 0 {
		slog.Debug("No raw punches to process")
		return result, nil
	}

	slog.Info("Raw punches processed",
		"processed", result.Processed,
		"entries_created", result.EntriesCreated,
		"entries_updated", result.EntriesUpdated,
	)
	s.notifier.NotifyRoles(ctx, []user.Role{user.RoleAdmin}, notification.CreateNotificationRequest{
		Type:    notification.TypeRawDataProcessed,
		Title:   "Raw punches processed",
		Message: fmt.Sprintf("%d punches were folded into time entries", result.Processed),
		Data: map[string]interface{}{
			"processed":       result.Processed,
			"entries_created": result.EntriesCreated,
			"entries_updated": result.EntriesUpdated,
			"skipped":         result.Skipped,
		},
	})
	return result, nil
}

// foldPunches merges clocks into the employee's entry for date, creating it when missing.
func (s *TimekeepingServiceImpl) foldPunches(ctx context.Context, employeeID string, date time.Time, clocks []string) (bool, error) {
	entry, exists, err := s.TimeEntryRepository.FindByEmployeeDate(ctx, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to look up time entry: %w", err)
	}

	if exists {
		if entry.CheckIn != nil {
			clocks = append(clocks, *entry.CheckIn)
		}
		if entry.CheckOut != nil {
			clocks = append(clocks, *entry.CheckOut)
		}
	}
	sort.Strings(clocks)

	checkIn := clocks[0]
	entry.CheckIn = &checkIn
	entry.CheckOut = nil
	if last := clocks[len(clocks)-1]; last != checkIn {
		entry.CheckOut = &last
	}
	entry.Source = timekeeping.SourceDevice
	if err := entry.Recalculate(); err != nil {
		return false, err
	}

	if !exists {
		entry.EmployeeID = employeeID
		entry.Date = date
		if _, err := s.TimeEntryRepository.Create(ctx, entry); err != nil {
			return false, fmt.Errorf("failed to create time entry: %w", err)
		}
		return true, nil
	}
	if _, err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
		return false, fmt.Errorf("failed to update time entry: %w", err)
	}
	return false, nil
}

// SyncRawData is the cron entry point for ProcessRawData.
func (s *TimekeepingServiceImpl) SyncRawData(ctx context.Context) error {
	_, err := s.ProcessRawData(ctx)
	return err
}
